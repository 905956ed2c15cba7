package email

import "jobswipe_backend/internal/logger"

// MockProvider пишет письма в лог вместо реальной отправки.
// Используется, когда email выключен в конфигурации.
type MockProvider struct{}

func NewMockProvider() *MockProvider {
	return &MockProvider{}
}

func (p *MockProvider) Send(to, subject, _ string) error {
	logger.Info("mock email sent", "to", to, "subject", subject)
	return nil
}

func (p *MockProvider) SendMatchNotification(to, counterpartName string) error {
	logger.Info("mock match email sent", "to", to, "counterpart", counterpartName)
	return nil
}
