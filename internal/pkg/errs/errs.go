package errs

import (
	"errors"
	"fmt"
	"strings"

	cr "github.com/cockroachdb/errors"
)

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

func New(msg string) error {
	return cr.New(msg)
}

func Newf(format string, args ...any) error {
	return cr.Newf(format, args...)
}

// Mark attaches markErr as a match target for errors.Is while keeping err as
// the message and unwrap chain. cockroachdb's Mark records the marker in a
// form only its own Is sees; handlers match sentinels with the standard
// library, so the marker must be visible there too.
func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return &marked{cause: cr.Mark(err, markErr), mark: markErr}
}

type marked struct {
	cause error
	mark  error
}

func (e *marked) Error() string { return e.cause.Error() }
func (e *marked) Unwrap() error { return e.cause }

func (e *marked) Is(target error) bool {
	return target == e.mark || errors.Is(e.mark, target)
}

func ExtractStackLines(err error, maxLines int) []string {
	if err == nil {
		return nil
	}
	s := fmt.Sprintf("%+v", err)
	lines := strings.Split(s, "\n")
	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	return lines
}
