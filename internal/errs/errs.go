// Package errs adds context to the sentinel errors of the device packages.
// Host builds get the annotated message; TinyGo builds get the sentinel
// alone, so fmt stays out of the firmware image.
package errs
