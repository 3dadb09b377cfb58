package validators

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	validate.RegisterValidation("latitude_value", validateLatitude)
	validate.RegisterValidation("longitude_value", validateLongitude)
	validate.RegisterValidation("travel_mode", validateTravelMode)
	validate.RegisterValidation("username", validateUsername)
}

var (
	ErrInvalidCoordinates = errors.New("invalid GPS coordinates")
	ErrInvalidTravelMode  = errors.New("invalid travel mode")
	ErrInvalidUsername    = errors.New("invalid username format")
)

// ValidationError represents a field validation error
type ValidationError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Value   string `json:"value"`
	Message string `json:"message"`
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var messages []string
	for _, err := range v {
		messages = append(messages, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return strings.Join(messages, "; ")
}

// ValidateStruct validates a struct and returns detailed errors
func ValidateStruct(s interface{}) ValidationErrors {
	var validationErrors ValidationErrors

	err := validate.Struct(s)
	if err != nil {
		for _, err := range err.(validator.ValidationErrors) {
			validationError := ValidationError{
				Field:   err.Field(),
				Tag:     err.Tag(),
				Value:   fmt.Sprintf("%v", err.Value()),
				Message: getErrorMessage(err),
			}
			validationErrors = append(validationErrors, validationError)
		}
	}

	return validationErrors
}

func getErrorMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", err.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", err.Field(), err.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", err.Field(), err.Param())
	case "latitude_value":
		return "Latitude must be a finite value between -90 and 90"
	case "longitude_value":
		return "Longitude must be a finite value between -180 and 180"
	case "travel_mode":
		return "Travel mode must be one of DRIVING, WALKING, BICYCLING, TRANSIT"
	case "username":
		return "Username may only contain letters, digits, dots, hyphens and underscores"
	default:
		return fmt.Sprintf("Validation failed for %s", err.Field())
	}
}

func validateLatitude(fl validator.FieldLevel) bool {
	value := fl.Field().Float()
	return !math.IsNaN(value) && !math.IsInf(value, 0) && value >= -90 && value <= 90
}

func validateLongitude(fl validator.FieldLevel) bool {
	value := fl.Field().Float()
	return !math.IsNaN(value) && !math.IsInf(value, 0) && value >= -180 && value <= 180
}

func validateTravelMode(fl validator.FieldLevel) bool {
	switch strings.ToUpper(fl.Field().String()) {
	case "DRIVING", "WALKING", "BICYCLING", "TRANSIT":
		return true
	}
	return false
}

func validateUsername(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // Let required tag handle empty values
	}
	for _, r := range value {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == '.', r == '-', r == '_':
		default:
			return false
		}
	}
	return true
}
