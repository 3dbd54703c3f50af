package wiki

import (
	"errors"
	"strconv"
	"strings"

	"github.com/jonathan/wikiwally/internal/types"
)

// Bounds of a random-article request.
const (
	MinRandomCount = 1
	MaxRandomCount = types.MaxListEntries
)

// RandomCountRequest is a validated random-article count.
type RandomCountRequest struct {
	Count int
}

// NormalizeCount validates the raw count text of a random request.
// A nil raw defaults to one article. Surrounding whitespace is ignored.
// Integers outside [1,10] fail with ErrInvalidCount; anything that is not
// an integer fails with ErrInvalidType. Both carry the raw text.
func NormalizeCount(raw *string) (RandomCountRequest, error) {
	if raw == nil {
		return RandomCountRequest{Count: MinRandomCount}, nil
	}

	n, err := strconv.Atoi(strings.TrimSpace(*raw))
	if err != nil {
		// A syntactically valid integer that overflows is still an integer.
		if errors.Is(err, strconv.ErrRange) {
			return RandomCountRequest{}, &CountError{Kind: types.ErrInvalidCount, Raw: *raw}
		}
		return RandomCountRequest{}, &CountError{Kind: types.ErrInvalidType, Raw: *raw}
	}

	if n < MinRandomCount || n > MaxRandomCount {
		return RandomCountRequest{}, &CountError{Kind: types.ErrInvalidCount, Raw: *raw}
	}
	return RandomCountRequest{Count: n}, nil
}
