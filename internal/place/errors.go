package place

import "fmt"

type ValidationKind string

const (
	// KindMissingCoordinates: no coordinate shape was present on the input.
	KindMissingCoordinates ValidationKind = "MISSING_COORDINATES"
	// KindInvalidCoordinates: a coordinate resolved to a non-finite number.
	KindInvalidCoordinates ValidationKind = "INVALID_COORDINATES"
)

// ValidationError reports why a place-like input could not be normalized.
type ValidationError struct {
	Kind    ValidationKind
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func newValidationError(kind ValidationKind, format string, args ...interface{}) *ValidationError {
	return &ValidationError{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
	}
}
