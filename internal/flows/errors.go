package flows

import (
	"errors"
	"fmt"
)

// ErrSchemaViolation marks a provider response that parsed but did not
// conform to the flow's output contract.
var ErrSchemaViolation = errors.New("response violates output schema")

// GenerationError wraps any failure at the generative boundary: provider
// faults, unparseable output, and schema or contract violations. The stage
// tells callers which flow and which step failed.
type GenerationError struct {
	Stage string
	Err   error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("generation failed at %s: %v", e.Stage, e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

func generationErr(stage string, err error) error {
	return &GenerationError{Stage: stage, Err: err}
}

// IsGenerationError reports whether err came from the generative boundary.
func IsGenerationError(err error) bool {
	var ge *GenerationError
	return errors.As(err, &ge)
}
