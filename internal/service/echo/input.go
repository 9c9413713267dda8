package echo

import (
	"fmt"
	"strings"

	"github.com/probelab/gqlprobe/internal/domain"
)

// EchoInput holds the parameters for the Echo operation.
type EchoInput struct {
	Message string
}

// Validate checks the message against the configured limits. The message is
// never trimmed or normalized: validation rejects blank input, but an accepted
// message is stored and returned exactly as received.
func (i EchoInput) Validate(maxLength int) error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Message) == "" {
		errs = append(errs, domain.FieldError{Field: "message", Message: "required"})
	}
	if len(i.Message) > maxLength {
		errs = append(errs, domain.FieldError{
			Field:   "message",
			Message: fmt.Sprintf("max %d bytes", maxLength),
		})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
