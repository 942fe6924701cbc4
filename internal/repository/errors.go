package repository

import "errors"

var (
	ErrNotFound         = errors.New("resource not found")
	ErrDuplicate        = errors.New("duplicate resource")
	ErrCustomerNotFound = errors.New("customer not found")
	ErrProductNotFound  = errors.New("product not found")
)

// uniqueViolation is the Postgres error code for unique constraint failures.
const uniqueViolation = "23505"
