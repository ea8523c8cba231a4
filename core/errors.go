package core

import "errors"

var (
	ErrConfigNotFound = errors.New("config file not found")
	ErrWindowInit     = errors.New("window initialisation failed")
)
