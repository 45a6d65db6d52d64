package domain

import "errors"

// ErrNotFound is returned when a country code is not part of the current
// document, or when no persisted document exists yet.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned when visit data fails a business rule
// (e.g. end date before start date, rating outside 0-5).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrIndexOutOfRange is returned by update and delete when the visit index
// does not address an existing visit. The country is left untouched.
var ErrIndexOutOfRange = errors.New("visit index out of range")
