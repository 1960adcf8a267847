// Package errs is the project's thin layer over cockroachdb/errors.
// Everything here is nil-safe so call sites can wrap unconditionally.
package errs

import (
	"fmt"
	"strings"

	cr "github.com/cockroachdb/errors"
)

func New(msg string) error {
	return cr.New(msg)
}

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return cr.Wrapf(err, format, args...)
}

// Mark tags err with a sentinel so Is matches it without changing the message.
// A nil err yields the sentinel itself.
func Mark(err error, sentinel error) error {
	if err == nil {
		return sentinel
	}
	return cr.Mark(err, sentinel)
}

func Is(err, target error) bool {
	return cr.Is(err, target)
}

func IsAny(err error, targets ...error) bool {
	if err == nil {
		return false
	}
	return cr.IsAny(err, targets...)
}

// ExtractStackLines renders err with its stack and keeps the first maxLines lines.
func ExtractStackLines(err error, maxLines int) []string {
	if err == nil {
		return nil
	}
	lines := strings.Split(fmt.Sprintf("%+v", err), "\n")
	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	return lines
}
