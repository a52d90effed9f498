package entities

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by the order workflow wraps exactly one of them.
var (
	ErrValidation        = errors.New("validation failed")
	ErrNotFound          = errors.New("not found")
	ErrConflict          = errors.New("conflict")
	ErrForbidden         = errors.New("forbidden")
	ErrInsufficientStock = errors.New("insufficient stock")
)

var (
	ErrItemsRequired    = fmt.Errorf("%w: order items are required", ErrValidation)
	ErrItemIncomplete   = fmt.Errorf("%w: each order item must have a product and a quantity", ErrValidation)
	ErrInvalidProductID = fmt.Errorf("%w: invalid product id", ErrValidation)
	ErrQuantityTooSmall = fmt.Errorf("%w: quantity must be a number of at least %d", ErrValidation, MinLineQuantity)
	ErrQuantityTooLarge = fmt.Errorf("%w: quantity cannot exceed %d", ErrValidation, MaxLineQuantity)
	ErrQuantityNotWhole = fmt.Errorf("%w: quantity must be a whole number", ErrValidation)
	ErrInvalidStatus    = fmt.Errorf("%w: invalid status", ErrValidation)
	ErrInvalidProduct   = fmt.Errorf("%w: invalid product", ErrValidation)
	ErrInvalidCategory  = fmt.Errorf("%w: category name must be %d to %d characters", ErrValidation, MinCategoryName, MaxCategoryName)

	ErrOrderNotFound    = fmt.Errorf("order %w", ErrNotFound)
	ErrProductNotFound  = fmt.Errorf("product %w", ErrNotFound)
	ErrProductsNotFound = fmt.Errorf("one or more products %w", ErrNotFound)
	ErrCategoryNotFound = fmt.Errorf("category %w", ErrNotFound)

	ErrOrderAlreadyCancelled = fmt.Errorf("%w: order is already cancelled", ErrConflict)
	ErrOrderNotCancellable   = fmt.Errorf("%w: shipped or delivered orders cannot be cancelled", ErrConflict)
	ErrIllegalTransition     = fmt.Errorf("%w: illegal status transition", ErrConflict)
	// ErrStatusChanged is returned by conditional updates when the stored status moved on.
	ErrStatusChanged = fmt.Errorf("%w: order status changed concurrently", ErrConflict)

	ErrOwnOrdersOnly    = fmt.Errorf("%w: access denied, you can only access your own orders", ErrForbidden)
	ErrPermissionDenied = fmt.Errorf("%w: insufficient permissions", ErrForbidden)
)

// DetailError attaches structured fields to an error; the fields are surfaced to the client.
type DetailError struct {
	Err     error
	Details map[string]any
}

func (e *DetailError) Error() string {
	return e.Err.Error()
}

func (e *DetailError) Unwrap() error {
	return e.Err
}

func WithDetails(err error, details map[string]any) error {
	return &DetailError{Err: err, Details: details}
}

// InsufficientStockError reports the line that could not be served.
// RequestedQuantity is the quantity of that line; TotalRequested sums every line of the product.
type InsufficientStockError struct {
	ProductID         string
	ProductName       string
	AvailableStock    int
	RequestedQuantity int
	TotalRequested    int
}

func (e *InsufficientStockError) Error() string {
	requested := e.TotalRequested
	if requested == 0 {
		requested = e.RequestedQuantity
	}
	return fmt.Sprintf("insufficient stock for %q: available %d, requested %d",
		e.ProductName, e.AvailableStock, requested)
}

func (e *InsufficientStockError) Unwrap() error {
	return ErrInsufficientStock
}
