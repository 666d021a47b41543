package collect

import "errors"

var (
	// ErrInvalidInterval indicates a non-positive interval in the config.
	ErrInvalidInterval = errors.New("collect: interval must be positive")
)
