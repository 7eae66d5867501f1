package docdata

import (
	"fmt"

	"github.com/pkg/errors"
)

var ErrMalformedResponse = errors.New("malformed response")

const maxFragmentLength = 120

// RowParseError is returned when a row has the shape of a document row but
// its content does not match what the portal is known to emit.
type RowParseError struct {
	Fragment string
	Reason   string
}

func (e *RowParseError) Error() string {
	fragment := e.Fragment
	if len(fragment) > maxFragmentLength {
		fragment = fragment[:maxFragmentLength] + "..."
	}

	return fmt.Sprintf("could not parse row: %s (fragment: %q)", e.Reason, fragment)
}

func newRowParseError(fragment string, reason string) *RowParseError {
	return &RowParseError{
		Fragment: fragment,
		Reason:   reason,
	}
}
