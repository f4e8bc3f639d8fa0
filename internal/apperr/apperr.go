package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

// Kind classifies every failure the core can produce. Handlers translate
// kinds to HTTP statuses; services never touch status codes.
type Kind string

const (
	NotFound                  Kind = "NOT_FOUND"
	SizeMismatch              Kind = "SIZE_MISMATCH"
	Configuration             Kind = "CONFIGURATION"
	NotInComposition          Kind = "NOT_IN_COMPOSITION"
	InvalidQuantity           Kind = "INVALID_QUANTITY"
	BelowMinimum              Kind = "BELOW_MINIMUM"
	AboveMaximum              Kind = "ABOVE_MAXIMUM"
	QuantityExceeded          Kind = "QUANTITY_EXCEEDED"
	RequiredIngredientMissing Kind = "REQUIRED_INGREDIENT_MISSING"
	PerIngredientLimit        Kind = "PER_INGREDIENT_LIMIT"
	Validation                Kind = "VALIDATION"
	Authorization             Kind = "AUTHORIZATION"
	Persistence               Kind = "PERSISTENCE"
	NotImplemented            Kind = "NOT_IMPLEMENTED"
)

// Error is a tagged failure value. Fields is only populated for
// field-format validation, which accumulates every failing field;
// all other checks abort on the first violation.
type Error struct {
	Kind    Kind
	Message string
	Fields  map[string]string
}

func (e *Error) Error() string {
	if len(e.Fields) == 0 {
		return e.Message
	}

	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	msgs := make([]string, 0, len(keys))
	for _, k := range keys {
		msgs = append(msgs, e.Fields[k])
	}
	return strings.Join(msgs, " ")
}

func New(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// NewValidation wraps an accumulated field->message map.
func NewValidation(fields map[string]string) *Error {
	return &Error{Kind: Validation, Message: "Invalid input.", Fields: fields}
}

// Is reports whether err is an *Error of the given kind.
func Is(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// KindOf returns the kind of err, or Persistence for anything untyped
// (untyped errors only ever come from the storage layer).
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Persistence
}

// Status maps an error to the HTTP status its handler should answer with.
func Status(err error) int {
	switch KindOf(err) {
	case NotFound:
		return http.StatusNotFound
	case Authorization:
		return http.StatusForbidden
	case Persistence:
		return http.StatusInternalServerError
	case NotImplemented:
		return http.StatusNotImplemented
	default:
		return http.StatusBadRequest
	}
}
