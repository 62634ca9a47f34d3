package domain

import "errors"

// ErrValidation is returned by service functions when input fails
// validation (e.g. a blank name).
// Handlers re-render the list without inserting anything.
var ErrValidation = errors.New("validation error")

// ErrStorage is returned by repo functions when the storage medium rejects
// a read or write: connection failures, disk errors, schema constraint
// violations such as a name longer than MaxNameLength.
// Handlers should map this to HTTP 500.
var ErrStorage = errors.New("storage error")
