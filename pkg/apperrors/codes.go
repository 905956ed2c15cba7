package apperrors

// Коды ошибок сгруппированные по доменам
const (
	// Аутентификация и авторизация
	CodeUnauthorized ErrorCode = "UNAUTHORIZED"
	CodeForbidden    ErrorCode = "FORBIDDEN"
	CodeInvalidToken ErrorCode = "INVALID_TOKEN"
	CodeInvalidOTP   ErrorCode = "INVALID_OTP"
	CodeOTPThrottled ErrorCode = "OTP_THROTTLED"

	// Валидация
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	CodeInvalidDirection ErrorCode = "INVALID_DIRECTION"
	CodeInvalidRole      ErrorCode = "INVALID_ROLE"
	CodeMissingSwipeIDs  ErrorCode = "MISSING_SWIPE_IDS"

	// Ресурсы
	CodeUserNotFound         ErrorCode = "USER_NOT_FOUND"
	CodeProfileNotFound      ErrorCode = "PROFILE_NOT_FOUND"
	CodeItemNotFound         ErrorCode = "ITEM_NOT_FOUND"
	CodeNotificationNotFound ErrorCode = "NOTIFICATION_NOT_FOUND"

	// Бизнес-логика
	CodeCannotSwipeOwnItem ErrorCode = "CANNOT_SWIPE_OWN_ITEM"

	// Системные ошибки
	CodeInternalError ErrorCode = "INTERNAL_ERROR"
	CodeDatabaseError ErrorCode = "DATABASE_ERROR"
)
