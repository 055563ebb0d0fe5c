package core

import (
	"errors"
)

var (
	ErrInvalidConfig        = errors.New("invalid configuration")
	ErrUnknownBackend       = errors.New("unknown renderer backend")
	ErrEngineNotInitialized = errors.New("engine not initialized")
	ErrWindowUnavailable    = errors.New("window unavailable")
	ErrUnknown              = errors.New("unknown")
)
