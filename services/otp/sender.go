package otp

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"allride/config"
	"allride/utils"

	"go.uber.org/zap"
)

const msg91WhatsappURL = "https://api.msg91.com/api/v5/whatsapp"

// Sender delivers a verification code to a phone number.
type Sender interface {
	Send(phone, code string) error
}

// Msg91WhatsappSender delivers codes through the MSG91 WhatsApp template API.
type Msg91WhatsappSender struct {
	AuthKey    string
	TemplateID string
	SenderID   string
	HTTPClient *http.Client
}

// NewMsg91Sender builds a sender from the loaded app configuration.
func NewMsg91Sender() *Msg91WhatsappSender {
	return &Msg91WhatsappSender{
		AuthKey:    config.AppConfig.Msg91AuthKey,
		TemplateID: config.AppConfig.Msg91WhatsappTemplate,
		SenderID:   config.AppConfig.Msg91WhatsappSender,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
}

type msg91Response struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// Send posts the WhatsApp template message. MSG91 expects the mobile number
// with a 91 country prefix and the code as the first template parameter; the
// second parameter is the validity window in minutes.
func (s *Msg91WhatsappSender) Send(phone, code string) error {
	body := map[string]interface{}{
		"template_id": s.TemplateID,
		"sender":      s.SenderID,
		"short_url":   "0",
		"mobile":      "91" + phone,
		"parameters": map[string]string{
			"1": code,
			"2": "5",
		},
	}
	raw, err := json.Marshal(body)
	if err != nil {
		return utils.NewExternalServiceError("msg91", err)
	}

	req, err := http.NewRequest(http.MethodPost, msg91WhatsappURL, bytes.NewReader(raw))
	if err != nil {
		return utils.NewExternalServiceError("msg91", err)
	}
	req.Header.Set("authkey", s.AuthKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.HTTPClient.Do(req)
	if err != nil {
		return utils.NewExternalServiceError("msg91", err)
	}
	defer resp.Body.Close()

	var parsed msg91Response
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return utils.NewExternalServiceError("msg91", fmt.Errorf("unreadable response: %w", err))
	}
	if parsed.Type != "success" {
		return utils.NewExternalServiceError("msg91", fmt.Errorf("gateway rejected message: %s", parsed.Message))
	}
	utils.GetLogger().Info("whatsapp otp delivered", zap.String("phone", phone))
	return nil
}
