package backend

import "errors"

var (
	ErrEmptyConnectionURL = errors.New("backend: empty connection URL")
	ErrFailedToParseURL   = errors.New("backend: failed to parse connection URL")
	ErrConnectionFailed   = errors.New("backend: failed to establish connection")
	ErrHealthcheckFailed  = errors.New("backend: healthcheck failed")
)
