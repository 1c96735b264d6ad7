package validator

import (
	"fmt"
	"reflect"
	"regexp"
	"slices"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/metinatakli/cinema-booking-system/internal/domain"
)

const (
	ErrRequired        = "is required"
	ErrInvalidEmail    = "must be a valid email address"
	ErrMinValue        = "must be at least %s"
	ErrMaxValue        = "must be at most %s"
	ErrMinLength       = "must be at least %s characters long"
	ErrMaxLength       = "must be at most %s characters long"
	ErrMinItems        = "must contain at least %s items"
	ErrMaxItems        = "must contain at most %s items"
	ErrOneOf           = "must be one of: %s"
	ErrUniqueItems     = "must not contain duplicates"
	ErrInvalidShowTime = "must be a time in HH:MM format"
	ErrInvalidSort     = "must be one of id, title, price, createdAt optionally prefixed with '-'"
	ErrInvalidPassword = "must be at least 8 characters long and include at least one uppercase letter, " +
		"one lowercase letter, one number, and one special character (!@#$%^&*)."
	ErrDefaultInvalid = "is invalid"
)

var (
	hasSpecialRgx = regexp.MustCompile(`[!@#$%^&*]`)

	MovieSortSafelist = []string{"id", "title", "price", "createdAt"}
)

func NewValidator() *validator.Validate {
	validator := validator.New(validator.WithRequiredStructEnabled())

	validator.RegisterValidation("password", validatePassword)
	validator.RegisterValidation("showtime", validateShowTime)
	validator.RegisterValidation("moviesort", validateMovieSort)
	validator.RegisterValidation("notblank", validateNotBlank)

	return validator
}

func validatePassword(fl validator.FieldLevel) bool {
	password := fl.Field().String()

	if len(password) < 8 || len(password) > 25 {
		return false
	}

	containsUpper, containsLower, containsDigit, containsSpecial := false, false, false, false

	for _, ch := range password {
		switch {
		case unicode.IsUpper(ch):
			containsUpper = true
		case unicode.IsLower(ch):
			containsLower = true
		case unicode.IsDigit(ch):
			containsDigit = true
		case hasSpecialRgx.MatchString(string(ch)):
			containsSpecial = true
		}
	}

	return containsUpper && containsLower && containsDigit && containsSpecial
}

func validateShowTime(fl validator.FieldLevel) bool {
	return domain.ValidShowTime(fl.Field().String())
}

func validateMovieSort(fl validator.FieldLevel) bool {
	return slices.Contains(MovieSortSafelist, strings.TrimPrefix(fl.Field().String(), "-"))
}

func validateNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// ValidationMessage converts validator errors into readable messages
func ValidationMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required", "notblank":
		return ErrRequired
	case "email":
		return ErrInvalidEmail
	case "min":
		return boundMessage(err, ErrMinLength, ErrMinItems, ErrMinValue)
	case "max":
		return boundMessage(err, ErrMaxLength, ErrMaxItems, ErrMaxValue)
	case "oneof":
		return fmt.Sprintf(ErrOneOf, strings.Join(strings.Fields(err.Param()), ", "))
	case "unique":
		return ErrUniqueItems
	case "password":
		return ErrInvalidPassword
	case "showtime":
		return ErrInvalidShowTime
	case "moviesort":
		return ErrInvalidSort
	default:
		return ErrDefaultInvalid
	}
}

func boundMessage(err validator.FieldError, forString, forSlice, forNumber string) string {
	switch err.Kind() {
	case reflect.String:
		return fmt.Sprintf(forString, err.Param())
	case reflect.Slice, reflect.Array, reflect.Map:
		return fmt.Sprintf(forSlice, err.Param())
	default:
		return fmt.Sprintf(forNumber, err.Param())
	}
}
