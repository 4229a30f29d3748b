package bundle

import "errors"

var (
	ErrBundle        = errors.New("bundle assembly failed")
	ErrMissingBinary = errors.New("binary not found")
)
