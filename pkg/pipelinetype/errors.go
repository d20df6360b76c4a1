package pipelinetype

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrLookup is matched by every LookupError.
var ErrLookup = errors.New("unknown pipeline type")

// LookupError reports an identifier that is not a member of the registry.
type LookupError struct {
	ID string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("unknown pipeline type %q", e.ID)
}

// Is makes errors.Is(err, ErrLookup) hold for any LookupError.
func (e *LookupError) Is(target error) bool {
	return target == ErrLookup //nolint:errorlint // sentinel comparison
}

func lookupError(id string) error {
	return errors.WithStack(&LookupError{ID: id})
}
