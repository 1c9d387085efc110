package adapter

import "errors"

var (
	ErrNoToken             = errors.New("no bearer token configured")
	ErrTransport           = errors.New("remote store unreachable")
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")
	ErrServiceUnavailable  = errors.New("service unavailable")
	ErrDecodingResponse    = errors.New("cannot decode response")
)
