package model

import "errors"

// Error strings double as wire messages, so they keep their user-facing
// capitalization.
var ErrBookNotFound = errors.New("Book not found")
