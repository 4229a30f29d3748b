package toolchain

import "errors"

var (
	ErrToolchain = errors.New("toolchain error")
	ErrEnvFile   = errors.New("invalid env file")
)
