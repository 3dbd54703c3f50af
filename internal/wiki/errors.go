package wiki

import (
	"fmt"

	"github.com/jonathan/wikiwally/internal/types"
)

// CountError reports random-count input that is not an integer in range.
// Kind is types.ErrInvalidCount or types.ErrInvalidType.
type CountError struct {
	Kind types.ErrorKind
	Raw  string
}

func (e *CountError) Error() string {
	if e.Kind == types.ErrInvalidType {
		return fmt.Sprintf("count %q is not a valid integer", e.Raw)
	}
	return fmt.Sprintf("count %q is not in the range %d to %d", e.Raw, MinRandomCount, MaxRandomCount)
}
