package project

import "errors"

var (
	ErrConfig = errors.New("invalid configuration")
	ErrFormat = errors.New("unsupported configuration format")
)
