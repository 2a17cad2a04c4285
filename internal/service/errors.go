package service

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	ErrEmailExists        = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrPasswordTooShort   = errors.New("password must be at least 8 characters")
	ErrUserNotFound       = errors.New("user not found")

	ErrForbidden       = errors.New("forbidden")
	ErrProductNotFound = errors.New("product not found")
	ErrNameRequired    = errors.New("product name required")
	ErrPriceInvalid    = errors.New("price must be positive")
	ErrStockInvalid    = errors.New("stock must be >= 0")

	ErrCartNotFound     = errors.New("cart not found")
	ErrCartItemNotFound = errors.New("cart item not found")
	ErrCartEmpty        = errors.New("cart is empty")
	ErrQuantityInvalid  = errors.New("quantity must be > 0")

	ErrOrderNotFound   = errors.New("order not found")
	ErrOrderProcessed  = errors.New("order is already processed")
	ErrPaymentExists   = errors.New("order already has a crypto payment")
	ErrPaymentNotFound = errors.New("crypto payment not found")
	ErrWalletRequired  = errors.New("wallet address required")
)

// InsufficientStockError называет товар, которого не хватило, и его остаток —
// транспорт отдаёт это клиенту структурированно.
type InsufficientStockError struct {
	ProductID   uuid.UUID
	ProductName string
	Available   int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for product %q: available %d", e.ProductName, e.Available)
}
