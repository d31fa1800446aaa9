package adapter

import "errors"

// Sentinel errors mapped from HTTP status codes by mapHTTPError. Callers of
// the typed operations match them with errors.Is; the Request façade
// flattens all of them into the empty-map signal.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrRateLimited         = errors.New("rate limited")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
)
