package credentials

import "errors"

var (
	// ErrNoCredential indicates the request carries no credential cookie.
	ErrNoCredential = errors.New("no credential present")
	// ErrInvalidCookie indicates the cookie failed signature or structural
	// validation and cannot be trusted.
	ErrInvalidCookie = errors.New("invalid credential cookie")
	// ErrExpiredCookie indicates the cookie wrapper has expired.
	ErrExpiredCookie = errors.New("expired credential cookie")
)
