package contracts

import (
	"errors"
	"strings"
)

// Sentinel errors for catalog lookups.
var (
	ErrUnknownEntity        = errors.New("unknown entity")
	ErrUnsupportedOperation = errors.New("operation not supported for entity")
)

const (
	// MsgNoFieldsForUpdate is reported at the root when an update payload carries no fields.
	MsgNoFieldsForUpdate = "At least one field must be provided for update"
	msgExpectedObject    = "Expected object"
)

// FieldError describes one violated rule. An empty Path refers to the payload as a whole.
type FieldError struct {
	Path    []string `json:"path"`
	Message string   `json:"message"`
}

// String renders the error as "path: message".
func (e FieldError) String() string {
	if len(e.Path) == 0 {
		return e.Message
	}
	return strings.Join(e.Path, ".") + ": " + e.Message
}

// FieldErrors is the ordered list of violations produced by a single validation call.
type FieldErrors []FieldError

func (fe FieldErrors) Error() string {
	if len(fe) == 0 {
		return "validation failed"
	}
	parts := make([]string, 0, len(fe))
	for _, e := range fe {
		parts = append(parts, e.String())
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// ByPath returns the messages recorded for the dotted path ("" for root errors).
func (fe FieldErrors) ByPath(path string) []string {
	var out []string
	for _, e := range fe {
		if strings.Join(e.Path, ".") == path {
			out = append(out, e.Message)
		}
	}
	return out
}

// AsFieldErrors extracts the violation list from err.
func AsFieldErrors(err error) (FieldErrors, bool) {
	var fe FieldErrors
	if errors.As(err, &fe) {
		return fe, true
	}
	return nil, false
}

func rootError(message string) FieldError {
	return FieldError{Path: []string{}, Message: message}
}
