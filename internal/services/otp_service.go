package services

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/fam-OS/truenorth-sub002/domain"
)

// OTPServiceImpl implements domain.OTPService using Redis persistence
type OTPServiceImpl struct {
	notificationSvc domain.NotificationService
	redisClient     *redis.Client
	config          OTPConfig
}

type OTPConfig struct {
	Length      int
	TTL         time.Duration
	MaxAttempts int
}

// NewOTPService creates a new Redis-based OTP service
func NewOTPService(notificationSvc domain.NotificationService, redisClient *redis.Client, config OTPConfig) domain.OTPService {
	return &OTPServiceImpl{
		notificationSvc: notificationSvc,
		redisClient:     redisClient,
		config:          config,
	}
}

// Request implements domain.OTPService. When an unexpired code is already
// pending for the user nothing is sent and resent=false comes back with a
// nil error: the pending code still works, so there is nothing to do.
func (s *OTPServiceImpl) Request(ctx context.Context, userID uint, email string) (bool, error) {
	otpKey := fmt.Sprintf("otp:%d", userID)
	attemptsKey := fmt.Sprintf("otp:att:%d", userID)

	exists, err := s.redisClient.Exists(ctx, otpKey).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check pending OTP: %w", err)
	}
	if exists == 1 {
		return false, nil
	}

	code, err := s.generateSecureCode()
	if err != nil {
		return false, fmt.Errorf("failed to generate OTP code: %w", err)
	}

	if err := s.redisClient.Set(ctx, otpKey, code, s.config.TTL).Err(); err != nil {
		return false, fmt.Errorf("failed to store OTP in Redis: %w", err)
	}
	if err := s.redisClient.Set(ctx, attemptsKey, 0, s.config.TTL).Err(); err != nil {
		return false, fmt.Errorf("failed to initialize attempts counter: %w", err)
	}

	body := fmt.Sprintf("Your verification code is: %s. Valid for %d minutes.", code, int(s.config.TTL.Minutes()))
	if err := s.notificationSvc.SendEmail(email, "Your TrueNorth verification code", body); err != nil {
		// Clean up Redis entries if delivery fails
		s.redisClient.Del(ctx, otpKey, attemptsKey)
		return false, fmt.Errorf("failed to send OTP email: %w", err)
	}

	return true, nil
}

// Verify implements domain.OTPService with Redis persistence
func (s *OTPServiceImpl) Verify(ctx context.Context, userID uint, code string) error {
	otpKey := fmt.Sprintf("otp:%d", userID)
	attemptsKey := fmt.Sprintf("otp:att:%d", userID)

	// Increment attempts counter atomically
	attempts, err := s.redisClient.Incr(ctx, attemptsKey).Result()
	if err != nil {
		return fmt.Errorf("failed to increment attempts: %w", err)
	}

	if attempts > int64(s.config.MaxAttempts) {
		s.redisClient.Del(ctx, otpKey, attemptsKey)
		return domain.ErrOTPMaxAttempts
	}

	storedCode, err := s.redisClient.Get(ctx, otpKey).Result()
	if errors.Is(err, redis.Nil) {
		return domain.ErrOTPNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to get OTP from Redis: %w", err)
	}

	if storedCode != code {
		return domain.ErrOTPInvalid
	}

	// Success - a code is single use
	s.redisClient.Del(ctx, otpKey, attemptsKey)

	return nil
}

// generateSecureCode generates a cryptographically secure OTP code
func (s *OTPServiceImpl) generateSecureCode() (string, error) {
	digits := make([]byte, s.config.Length)

	for i := 0; i < s.config.Length; i++ {
		num, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", fmt.Errorf("failed to generate random digit: %w", err)
		}
		digits[i] = byte('0' + num.Int64())
	}

	return string(digits), nil
}
