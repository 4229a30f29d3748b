package target

import "errors"

var (
	ErrInvalidTarget     = errors.New("invalid target")
	ErrUnsupportedTarget = errors.New("unsupported target")
)
