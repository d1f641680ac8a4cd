package adapter

import "errors"

var (
	ErrExternalService  = errors.New("external service error")
	ErrUnauthorized     = errors.New("external service rejected credentials")
	ErrBreakerOpen      = errors.New("analytics source temporarily unavailable")
	ErrMalformedPayload = errors.New("malformed response payload")
)
