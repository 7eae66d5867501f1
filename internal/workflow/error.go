package workflow

import (
	"strings"
)

type CompensationError struct {
	step             string
	executionErr     error
	compensationErrs []error
}

// Step returns the name of the step which failed.
func (e *CompensationError) Step() string {
	return e.step
}

func (e *CompensationError) ExecutionError() error {
	return e.executionErr
}

func (e *CompensationError) CompensationErrors() []error {
	return e.compensationErrs
}

func (e *CompensationError) Unwrap() error {
	return e.executionErr
}

func (e *CompensationError) Error() string {
	var sb strings.Builder

	sb.WriteString("step '")
	sb.WriteString(e.step)
	sb.WriteString("' failed: ")
	sb.WriteString(e.executionErr.Error())
	sb.WriteString(" (rollback errors: ")

	for idx, err := range e.compensationErrs {
		if idx > 0 {
			sb.WriteString("; ")
		}

		sb.WriteString(err.Error())
	}

	sb.WriteString(")")

	return sb.String()
}

func NewCompensationError(step string, executionErr error, compensationErrs ...error) *CompensationError {
	return &CompensationError{
		step:             step,
		executionErr:     executionErr,
		compensationErrs: compensationErrs,
	}
}

var _ error = &CompensationError{}
