package dto

// RequestOTPInput представляет тело запроса на отправку кода
type RequestOTPInput struct {
	PhoneNumber string `json:"phone_number" validate:"required,e164-phone"`
}

// VerifyOTPInput представляет тело запроса на проверку кода
type VerifyOTPInput struct {
	PhoneNumber string `json:"phone_number" validate:"required,e164-phone"`
	Code        string `json:"code" validate:"required,len=6"`
}

// AuthResponse — выданные учетные данные сессии
type AuthResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	UserID       string `json:"user_id"`
	IsNewUser    bool   `json:"is_new_user"`
}

type RefreshInput struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type LogoutInput struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}
