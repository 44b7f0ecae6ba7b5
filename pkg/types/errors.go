package types

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrUnauthenticated = errors.New("authentication required")
	ErrNeedNotFound    = errors.New("need not found")
	ErrUserNotFound    = errors.New("user not found")

	// ErrAlreadyParticipating signals the duplicate-participation
	// conflict. It is an idempotency signal, not a retryable failure.
	ErrAlreadyParticipating = errors.New("already participating in this need")
)

// InvalidInputError carries every violated rule keyed by field name so
// the caller can render inline messages. No partial write happens when
// it is returned.
type InvalidInputError struct {
	Fields map[string][]string
}

func (e *InvalidInputError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	return fmt.Sprintf("invalid input: %s", strings.Join(names, ", "))
}

func NewInvalidInputError() *InvalidInputError {
	return &InvalidInputError{Fields: make(map[string][]string)}
}

func (e *InvalidInputError) Add(field, rule string) {
	e.Fields[field] = append(e.Fields[field], rule)
}

func (e *InvalidInputError) HasErrors() bool {
	return len(e.Fields) > 0
}

func (e *InvalidInputError) OrNil() error {
	if e.HasErrors() {
		return e
	}
	return nil
}
