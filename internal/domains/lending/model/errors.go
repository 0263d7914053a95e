package model

import "errors"

// Error strings double as wire messages, so they keep their user-facing
// capitalization.
var (
	ErrRecordNotFound  = errors.New("Record not found")
	ErrInvalidCategory = errors.New("Invalid book type")
)

// MsgUnexpected is the fallback message for failures the contract does not
// enumerate.
const MsgUnexpected = "Unexpected error occured"
