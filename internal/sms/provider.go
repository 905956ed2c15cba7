package sms

import "context"

// Provider отправляет одноразовые коды на телефон
type Provider interface {
	SendOTP(ctx context.Context, phone, code string) error
}
