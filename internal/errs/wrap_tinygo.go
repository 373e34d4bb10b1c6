//go:build tinygo

package errs

// Wrapf returns err unchanged.
func Wrapf(err error, format string, args ...any) error {
	return err
}
