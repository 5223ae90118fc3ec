package pricing

import (
	"errors"
	"strings"

	"github.com/anomredux/tokencalc/internal/i18n"
)

// ErrInvalidParameters is matched by every *ValidationError.
var ErrInvalidParameters = errors.New("invalid parameters")

// ValidationError carries the messages produced by Validate.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return i18n.Tf("invalid_parameters", strings.Join(e.Messages, ", "))
}

func (e *ValidationError) Unwrap() error { return ErrInvalidParameters }
