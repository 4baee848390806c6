package fieldsvc

import "errors"

var (
	// ErrBadRequest indicates a malformed message or parameter.
	ErrBadRequest = errors.New("fieldsvc: bad request")

	// ErrUnknownKind indicates a request kind the service does not compute.
	ErrUnknownKind = errors.New("fieldsvc: unknown kind")

	// ErrTooLarge indicates a request above the configured limits.
	ErrTooLarge = errors.New("fieldsvc: request too large")

	// ErrCacheMiss is returned by Store.Get for an absent key.
	ErrCacheMiss = errors.New("fieldsvc: cache miss")

	// ErrUnauthorized indicates a handshake without a valid token.
	ErrUnauthorized = errors.New("fieldsvc: unauthorized")
)
