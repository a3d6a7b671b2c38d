package domain

import "errors"

// Domain errors as sentinel values
var (
	// Validation errors
	ErrEmptyName         = errors.New("product name cannot be empty")
	ErrEmptyDescription  = errors.New("product description cannot be empty")
	ErrInvalidCategory   = errors.New("product category cannot be empty")
	ErrInvalidPrice      = errors.New("product price cannot be negative")
	ErrInvalidStock      = errors.New("stock count cannot be negative")
	ErrInvalidQuantity   = errors.New("sale quantity must be positive")
	ErrEmptyCustomerName = errors.New("customer name cannot be empty")
	ErrMissingProductRef = errors.New("product reference is required")

	// Lookup errors
	ErrProductNotFound = errors.New("product not found")

	// Sale errors
	ErrInsufficientStock = errors.New("sale quantity exceeds available stock")
	ErrPartialSale       = errors.New("sale outcome unconfirmed, manual reconciliation required")

	// Infrastructure errors
	ErrConcurrentUpdate   = errors.New("concurrent update conflict")
	ErrBackendUnavailable = errors.New("backend unavailable")
)
