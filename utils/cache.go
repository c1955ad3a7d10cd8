// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"allride/config"

	"github.com/go-redis/redis/v8"
)

// OTPCacheClient is the dedicated client for OTP state.
var OTPCacheClient *redis.Client

// InitRedis initializes the Redis client for OTP state (using the OTP DB from AppConfig).
func InitRedis() {
	OTPCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisOTPDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := OTPCacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (OTP): %v", err)
	}
}

// GetOTPCacheClient returns the Redis client for OTP state.
func GetOTPCacheClient() *redis.Client {
	if OTPCacheClient == nil {
		InitRedis()
	}
	return OTPCacheClient
}
