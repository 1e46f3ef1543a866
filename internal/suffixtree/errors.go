package suffixtree

import "errors"

// ErrInvalidInput indicates a construction contract violation: a code point
// fell outside the permitted range, or collided with the reserved sentinel.
// It is fatal to [Build].
var ErrInvalidInput = errors.New("suffixtree: invalid input")

// A CorruptionError indicates an internal invariant violation: a lookup that
// the construction invariants guarantee to succeed came back empty. It is
// never recovered from within this package and always indicates a bug in the
// construction or search algorithm, not a problem with the input text.
type CorruptionError struct {
	reason string
}

func (e *CorruptionError) Error() string {
	return "suffixtree: corruption: " + e.reason
}

func corrupted(reason string) error {
	return &CorruptionError{reason: reason}
}

// IsCorruption reports whether err (or some error it wraps) is a
// [*CorruptionError].
func IsCorruption(err error) bool {
	var c *CorruptionError
	return errors.As(err, &c)
}
