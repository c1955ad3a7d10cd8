package otp

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"allride/utils"

	"go.uber.org/zap"
)

const (
	codeLength  = 6
	ttl         = 5 * time.Minute
	resendAfter = 30 * time.Second
	maxAttempts = 5
)

// OTPService issues and verifies one-time passcodes for phone login.
type OTPService interface {
	SendOTP(phone string) (string, error)
	VerifyOTP(phone, code string) error
}

// DefaultOTPService implements OTPService over a pluggable store and sender.
type DefaultOTPService struct {
	Store  Store
	Sender Sender

	now func() time.Time
}

// NewOTPService wires the OTP service. Pass a MemoryStore for single-instance
// deployments or a RedisStore when running replicas.
func NewOTPService(store Store, sender Sender) *DefaultOTPService {
	return &DefaultOTPService{Store: store, Sender: sender, now: time.Now}
}

func generateCode() string {
	max := big.NewInt(1)
	for i := 0; i < codeLength; i++ {
		max.Mul(max, big.NewInt(10))
	}
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		// crypto/rand only fails if the OS entropy source is broken.
		panic(err)
	}
	return fmt.Sprintf("%0*d", codeLength, n)
}

// SendOTP generates a fresh code and delivers it. A resend inside the
// cooldown window is rejected with the remaining wait time. Delivery failure
// does not fail the request: the code stays valid and is logged so that
// development setups without a gateway key still work.
func (svc *DefaultOTPService) SendOTP(phone string) (string, error) {
	if err := svc.Store.Sweep(ttl); err != nil {
		return "", err
	}

	existing, ok, err := svc.Store.Get(phone)
	if err != nil {
		return "", err
	}
	if ok {
		elapsed := svc.now().Sub(existing.CreatedAt)
		if elapsed < resendAfter {
			remaining := int((resendAfter - elapsed).Seconds())
			return "", utils.NewThrottledError(
				fmt.Sprintf("Please wait %d seconds before requesting new OTP", remaining))
		}
	}

	code := generateCode()
	entry := Entry{Code: code, CreatedAt: svc.now()}
	if err := svc.Store.Put(phone, entry, ttl); err != nil {
		return "", err
	}

	if err := svc.Sender.Send(phone, code); err != nil {
		utils.GetLogger().Warn("otp delivery failed, code kept valid",
			zap.String("phone", phone),
			zap.String("code", code),
			zap.Error(err))
		return "OTP generated. Check console for OTP: " + code, nil
	}
	return "OTP sent successfully to your mobile number", nil
}

// VerifyOTP checks a submitted code. Wrong codes burn an attempt; after the
// cap the entry is removed and the user must request a new code. A correct
// code consumes the entry.
func (svc *DefaultOTPService) VerifyOTP(phone, code string) error {
	if err := svc.Store.Sweep(ttl); err != nil {
		return err
	}

	entry, ok, err := svc.Store.Get(phone)
	if err != nil {
		return err
	}
	if !ok {
		return utils.NewValidationError("OTP expired or not found. Please request a new OTP.")
	}
	if svc.now().Sub(entry.CreatedAt) > ttl {
		if err := svc.Store.Delete(phone); err != nil {
			return err
		}
		return utils.NewValidationError("OTP has expired. Please request a new OTP.")
	}

	entry.Attempts++
	if entry.Attempts > maxAttempts {
		if err := svc.Store.Delete(phone); err != nil {
			return err
		}
		return utils.NewValidationError("Too many failed attempts. Please request a new OTP.")
	}

	if entry.Code == code {
		if err := svc.Store.Delete(phone); err != nil {
			return err
		}
		utils.GetLogger().Info("otp verified", zap.String("phone", phone))
		return nil
	}

	remainingTTL := ttl - svc.now().Sub(entry.CreatedAt)
	if err := svc.Store.Put(phone, entry, remainingTTL); err != nil {
		return err
	}
	return utils.NewValidationError(
		fmt.Sprintf("Invalid OTP. Attempts remaining: %d", maxAttempts-entry.Attempts))
}
