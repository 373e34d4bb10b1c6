//go:build !tinygo

package errs

import "fmt"

// Wrapf returns err prefixed with the formatted context. errors.Is still
// matches err.
func Wrapf(err error, format string, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, err)...)
}
