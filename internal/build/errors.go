package build

import "errors"

var (
	ErrBuild               = errors.New("build failed")
	ErrFileSystemOperation = errors.New("file system operation failed")
	ErrCompile             = errors.New("compilation failed")
	ErrDiagnostic          = errors.New("compiler reported diagnostics")
)
