package apperrors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
)

// ErrorCode - тип для кодов ошибок
type ErrorCode string

// AppError - основная структура ошибки приложения
type AppError struct {
	Code     ErrorCode   `json:"code"`
	Message  string      `json:"message"`
	Details  interface{} `json:"details,omitempty"`
	Err      error       `json:"-"`
	HTTPCode int         `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Конструктор
func New(code ErrorCode, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		HTTPCode: httpCode,
	}
}

// С цепочкой ошибок
func Wrap(err error, code ErrorCode, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		Err:      err,
		HTTPCode: httpCode,
	}
}

func (e *AppError) WithDetails(details interface{}) *AppError {
	return &AppError{
		Code:     e.Code,
		Message:  e.Message,
		Details:  details,
		Err:      e.Err,
		HTTPCode: e.HTTPCode,
	}
}

// Для маршалинга в JSON
func (e *AppError) MarshalJSON() ([]byte, error) {
	type alias struct {
		Code    ErrorCode   `json:"code"`
		Message string      `json:"message"`
		Details interface{} `json:"details,omitempty"`
	}
	return json.Marshal(&alias{
		Code:    e.Code,
		Message: e.Message,
		Details: e.Details,
	})
}

// Is - обертка над стандартной функцией errors.Is
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As - обертка над стандартной функцией errors.As
func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// Предопределенные ошибки
var (
	// Аутентификация
	ErrUnauthorized = New(CodeUnauthorized, "Authentication required", http.StatusUnauthorized)
	ErrForbidden    = New(CodeForbidden, "Access denied", http.StatusForbidden)
	ErrInvalidToken = New(CodeInvalidToken, "Invalid or expired token", http.StatusUnauthorized)
	ErrInvalidOTP   = New(CodeInvalidOTP, "Invalid or expired verification code", http.StatusUnauthorized)
	ErrOTPThrottled = New(CodeOTPThrottled, "Verification code was requested too recently", http.StatusTooManyRequests)

	// Пользователи и профили
	ErrUserNotFound    = New(CodeUserNotFound, "User not found", http.StatusNotFound)
	ErrProfileNotFound = New(CodeProfileNotFound, "Profile not found", http.StatusNotFound)
	ErrItemNotFound    = New(CodeItemNotFound, "Swiped item not found", http.StatusNotFound)

	// Свайпы
	ErrMissingSwipeIDs      = New(CodeMissingSwipeIDs, "User and item IDs must be provided", http.StatusBadRequest)
	ErrInvalidDirection     = New(CodeInvalidDirection, "Swipe direction must be left or right", http.StatusBadRequest)
	ErrCannotSwipeOwnItem   = New(CodeCannotSwipeOwnItem, "Cannot swipe on your own item", http.StatusBadRequest)
	ErrInvalidRole          = New(CodeInvalidRole, "Active role must be worker or employer", http.StatusBadRequest)
	ErrNotificationNotFound = New(CodeNotificationNotFound, "Notification not found", http.StatusNotFound)

	// Валидация
	ErrValidationFailed = New(CodeValidationFailed, "Validation failed", http.StatusBadRequest)
)

// Функции-помощники для создания ошибок с деталями
func ValidationError(details interface{}) *AppError {
	return ErrValidationFailed.WithDetails(details)
}

func InternalError(err error) *AppError {
	return Wrap(err, CodeInternalError, "Internal server error", http.StatusInternalServerError)
}

func NewBadRequestError(message string) *AppError {
	return New(CodeValidationFailed, message, http.StatusBadRequest)
}

func NewUnauthorizedError(message string) *AppError {
	return New(CodeUnauthorized, message, http.StatusUnauthorized)
}

func NewNotFoundError(message string) *AppError {
	return New(CodeItemNotFound, message, http.StatusNotFound)
}
