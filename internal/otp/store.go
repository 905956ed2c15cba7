package otp

import (
	"context"
	"errors"
	"time"
)

var (
	ErrCodeNotFound = errors.New("otp code not found or expired")
	ErrThrottled    = errors.New("otp resend throttled")
)

// Store хранит хеши одноразовых кодов с TTL и окном повторной отправки.
type Store interface {
	// Save записывает хеш кода для номера, перезаписывая прежний.
	Save(ctx context.Context, phone, codeHash string, ttl time.Duration) error

	// Get возвращает хеш актуального кода или ErrCodeNotFound.
	Get(ctx context.Context, phone string) (string, error)

	// Delete удаляет код после успешной проверки (одноразовость).
	Delete(ctx context.Context, phone string) error

	// Throttle атомарно проверяет и взводит окно повторной отправки.
	// Возвращает ErrThrottled, если окно еще не истекло.
	Throttle(ctx context.Context, phone string, window time.Duration) error
}
