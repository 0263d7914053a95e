package model

import "errors"

var ErrCustomerNotFound = errors.New("Customer not found")

// Customer is created by the import process and never mutated by the API.
type Customer struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}
