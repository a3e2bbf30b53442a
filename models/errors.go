package models

import "errors"

// Sentinel errors shared by the database layer and the HTTP handlers. The
// handlers map them onto status codes: 404 for ErrNotFound, 400 for the rest.
var (
	ErrNotFound      = errors.New("not found")
	ErrEmailInUse    = errors.New("email already in use")
	ErrInvalidEmail  = errors.New("email is not valid")
	ErrWeakPassword  = errors.New("password is not strong enough")
	ErrUnknownEmail  = errors.New("incorrect email")
	ErrWrongPassword = errors.New("incorrect password")
	ErrInvalidToken  = errors.New("invalid or expired token")
)
