package aptagger

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrTrainerFinished is returned by a Trainer once Average has run.
var ErrTrainerFinished = errors.New("trainer already averaged")

// FormatError reports a corpus token that is not exactly one word and one
// tag joined by TokenSeparator.
type FormatError struct {
	// Token is the offending token.
	Token string
	// Sentence is the full line the token came from.
	Sentence string
	// Line is the 1-based line number in the corpus, or 0 if unknown.
	Line int
}

func (e *FormatError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: invalid token %q in sentence %q", e.Line, e.Token, e.Sentence)
	}
	return fmt.Sprintf("invalid token %q in sentence %q", e.Token, e.Sentence)
}

// IOError reports a failure to read a corpus or to read or write a model.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying cause.
func (e *IOError) Unwrap() error {
	return e.Err
}

// ConfigError reports an invalid option or an unusable model.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func configErrorf(field, format string, args ...interface{}) error {
	return errors.WithStack(&ConfigError{Field: field, Reason: fmt.Sprintf(format, args...)})
}

func ioError(op, path string, err error) error {
	return errors.WithStack(&IOError{Op: op, Path: path, Err: err})
}
