package domain

import "errors"

var (
	ErrUnavailable = errors.New("database unavailable")
)
