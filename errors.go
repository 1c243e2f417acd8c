package somegen

import (
	"errors"
	"fmt"
)

// ConfigError reports a request that references configuration which does
// not exist: an unknown brand, an unregistered platform/content-type/layout
// triple, or an unknown template version. It is fatal: the caller must
// change the request, retrying is pointless.
type ConfigError struct {
	Kind string // "brand", "canvas", "template"
	Key  string // the identifier that failed to resolve
}

// Error returns the error message.
func (e *ConfigError) Error() string {
	return fmt.Sprintf("unknown %s %q", e.Kind, e.Key)
}

// NewConfigError creates a ConfigError for the given kind and key.
func NewConfigError(kind, key string) *ConfigError {
	return &ConfigError{Kind: kind, Key: key}
}

// IsConfig reports whether err (or any wrapped error) is a ConfigError.
func IsConfig(err error) bool {
	var ce *ConfigError
	return errors.As(err, &ce)
}

// EncoderError reports that video encoding failed after the primary codec
// and the fallback codec were both tried. No partial output remains.
type EncoderError struct {
	Primary  string // codec tried first, e.g. "h264"
	Fallback string // codec tried second, e.g. "mjpeg"
	Err      error  // failure of the fallback attempt
}

// Error returns the error message.
func (e *EncoderError) Error() string {
	return fmt.Sprintf("video encoding failed (%s, fallback %s): %v", e.Primary, e.Fallback, e.Err)
}

// Unwrap returns the underlying error.
func (e *EncoderError) Unwrap() error {
	return e.Err
}

// IsEncoder reports whether err (or any wrapped error) is an EncoderError.
func IsEncoder(err error) bool {
	var ee *EncoderError
	return errors.As(err, &ee)
}

// PartialWriteError reports a failure partway through writing an output
// artifact. The partial file and any temporary layers have already been
// removed by the time this error propagates.
type PartialWriteError struct {
	Path string // the output path that was being written
	Err  error
}

// Error returns the error message.
func (e *PartialWriteError) Error() string {
	return fmt.Sprintf("write aborted for %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *PartialWriteError) Unwrap() error {
	return e.Err
}
