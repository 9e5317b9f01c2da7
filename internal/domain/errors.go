package domain

import "errors"

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrDuplicateProduct = errors.New("duplicate product id")
	ErrInvalidQuantity  = errors.New("quantity must be at least 1")
)
