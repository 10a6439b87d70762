// Package buildgenerrors provides errors returned by generated builders at
// runtime. Generated code is the only intended producer of these errors, but
// the types and sentinels are exported so that callers can inspect them with
// errors.Is and errors.As.
package buildgenerrors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrIncomplete indicates that a builder was finished while some required
// members were never set.
var ErrIncomplete = errors.New("incomplete builder")

// IncompleteError reports which required members of a builder were never set
// before finishing. It unwraps to [ErrIncomplete].
type IncompleteError struct {
	// Target is the name of the type or function the builder builds.
	Target string

	// Missing lists the unset required members in declaration order.
	Missing []string
}

// Incomplete creates an error reporting that the builder for target was
// finished while the given required members were unset.
func Incomplete(target string, missing ...string) error {
	return &IncompleteError{Target: target, Missing: missing}
}

func (e *IncompleteError) Error() string {
	return fmt.Sprintf("building %s: missing %s", e.Target, strings.Join(e.Missing, ", "))
}

func (e *IncompleteError) Unwrap() error { return ErrIncomplete }
