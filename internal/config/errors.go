package config

import "errors"

var (
	ErrInvalid       = errors.New("config: invalid value")
	ErrUnknownPreset = errors.New("config: unknown rain preset")
)
