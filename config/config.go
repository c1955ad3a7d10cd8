package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	DatabaseName      string `mapstructure:"DATABASE_NAME"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisOTPDB    int    `mapstructure:"REDIS_OTP_DB"`

	// OTP delivery (MSG91 WhatsApp gateway).
	OTPProvider           string `mapstructure:"OTP_PROVIDER"`
	Msg91AuthKey          string `mapstructure:"MSG91_AUTHKEY"`
	Msg91WhatsappTemplate string `mapstructure:"MSG91_WHATSAPP_TEMPLATE_ID"`
	Msg91WhatsappSender   string `mapstructure:"MSG91_WHATSAPP_SENDER"`

	// Static bearer token guarding /api/admin.
	AdminToken string `mapstructure:"ADMIN_TOKEN"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "allride")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_OTP_DB", 2)
	viper.SetDefault("OTP_PROVIDER", "msg91_whatsapp")
	viper.SetDefault("MSG91_AUTHKEY", "")
	viper.SetDefault("MSG91_WHATSAPP_TEMPLATE_ID", "")
	viper.SetDefault("MSG91_WHATSAPP_SENDER", "919999999999")
	viper.SetDefault("ADMIN_TOKEN", "")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
