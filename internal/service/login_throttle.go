package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/healthcare-service/internal/config"
	apperrors "github.com/spec-kit/healthcare-service/pkg/util/errorutil"
)

const loginThrottleGroup = "LOGIN"

// AttemptCounter stores fixed-window counters.
type AttemptCounter interface {
	IncrementWithTTL(ctx context.Context, key string, ttl time.Duration) (int64, error)
	Count(ctx context.Context, key string) (int64, error)
}

// LoginThrottle refuses login attempts for an email once it has accumulated
// MaxAttempts failures inside the current window. Counter errors fail open.
type LoginThrottle struct {
	counter   AttemptCounter
	max       int64
	windowSec int64
	now       func() time.Time
	log       *zap.Logger
}

func NewLoginThrottle(counter AttemptCounter, cfg config.LoginThrottleConfig, logger *zap.Logger) *LoginThrottle {
	windowSec := int64(cfg.WindowSeconds)
	if windowSec <= 0 {
		windowSec = 60
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LoginThrottle{
		counter:   counter,
		max:       int64(cfg.MaxAttempts),
		windowSec: windowSec,
		now:       func() time.Time { return time.Now().UTC() },
		log:       logger,
	}
}

func (t *LoginThrottle) enabled() bool {
	return t != nil && t.counter != nil && t.max > 0
}

// Allow returns a TOO_MANY_REQUESTS error when email is over quota.
func (t *LoginThrottle) Allow(ctx context.Context, email string) error {
	if !t.enabled() {
		return nil
	}
	now := t.now()
	key, windowID := t.key(email, now)

	count, err := t.counter.Count(ctx, key)
	if err != nil {
		t.log.Warn("login throttle unavailable", zap.String("key", key), zap.Error(err))
		return nil
	}
	if count < t.max {
		return nil
	}

	retryAfter := int((windowID+1)*t.windowSec-now.Unix()) + 1
	return apperrors.NewTooManyRequests("too many failed login attempts, try again later", retryAfter)
}

// RecordFailure counts one failed attempt for email in the current window.
func (t *LoginThrottle) RecordFailure(ctx context.Context, email string) {
	if !t.enabled() {
		return
	}
	key, _ := t.key(email, t.now())
	ttl := time.Duration(t.windowSec)*time.Second + time.Second

	count, err := t.counter.IncrementWithTTL(ctx, key, ttl)
	if err != nil {
		t.log.Warn("login throttle increment failed", zap.String("key", key), zap.Error(err))
		return
	}
	if count == t.max {
		t.log.Info("login throttled", zap.String("key", key), zap.Int64("failures", count))
	}
}

func (t *LoginThrottle) key(email string, now time.Time) (string, int64) {
	windowID := now.Unix() / t.windowSec
	return fmt.Sprintf("%s:%s:%d", loginThrottleGroup, normalizeEmail(email), windowID), windowID
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
