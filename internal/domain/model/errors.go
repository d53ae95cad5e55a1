package model

import "errors"

var (
	ErrEntityNotFound   = errors.New("Entity not found")
	ErrEntityNotExposed = errors.New("Entity not exposed")
	ErrInvalidJSON      = errors.New("Invalid JSON")
	ErrBadRequest       = errors.New("Bad request")
	ErrNotConfigured    = errors.New("Home Assistant is not configured")
)
