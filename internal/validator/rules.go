package validator

import (
	"log"
	"regexp"

	"jobswipe_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// Телефон в международном формате: + и 8-15 цифр
var phoneRegexp = regexp.MustCompile(`^\+[1-9][0-9]{7,14}$`)

// registerCustomRules регистрирует все кастомные функции валидации в
// переданном экземпляре валидатора.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// Если правило не удалось зарегистрировать, приложение
			// не должно запускаться.
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("e164-phone", validatePhone)
	mustRegister("is-swipe-direction", validateSwipeDirection)
	mustRegister("is-availability", validateAvailability)
	mustRegister("is-active-role", validateActiveRole)
}

// --- Функции валидации ---

func validatePhone(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // 'required' обрабатывает пустые
	}
	return phoneRegexp.MatchString(value)
}

func validateSwipeDirection(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.SwipeDirection(value) {
	case models.SwipeDirectionLeft, models.SwipeDirectionRight:
		return true
	default:
		return false
	}
}

func validateAvailability(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.Availability(value) {
	case models.AvailabilityFullTime, models.AvailabilityPartTime, models.AvailabilityContract:
		return true
	default:
		return false
	}
}

func validateActiveRole(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.Role(value) {
	case models.RoleWorker, models.RoleEmployer:
		return true
	default:
		return false
	}
}
