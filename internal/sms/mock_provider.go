package sms

import (
	"context"

	"jobswipe_backend/internal/logger"
)

// MockProvider пишет код в лог вместо отправки SMS.
// Для локальной разработки и тестов.
type MockProvider struct{}

func NewMockProvider() *MockProvider {
	return &MockProvider{}
}

func (p *MockProvider) SendOTP(_ context.Context, phone, code string) error {
	logger.Warn("mock sms provider: otp code not delivered", "phone", phone, "code", code)
	return nil
}
