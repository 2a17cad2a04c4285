package dto

import "time"

type MessageResponse struct {
	Message string `json:"message"`
}

type UserResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

type RegisterResponse struct {
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
}

type LoginResponse struct {
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
}

// Денежные поля отдаём строками с фиксированной точностью.
type ProductResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       string    `json:"price"`
	Stock       int       `json:"stock"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CartItemResponse struct {
	ID          string `json:"id"`
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	Price       string `json:"price"`
	Quantity    int    `json:"quantity"`
}

type CartResponse struct {
	CartID string             `json:"cart_id"`
	UserID string             `json:"user_id"`
	Items  []CartItemResponse `json:"items"`
}

type OrderItemResponse struct {
	ID        string `json:"id"`
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
	Price     string `json:"price"`
}

type OrderResponse struct {
	ID            string              `json:"id"`
	UserID        string              `json:"user_id"`
	TotalPrice    string              `json:"total_price"`
	Status        string              `json:"status"`
	PaymentMethod string              `json:"payment_method"`
	CreatedAt     time.Time           `json:"created_at"`
	Items         []OrderItemResponse `json:"items"`
}

type CryptoPaymentResponse struct {
	ID              string    `json:"id"`
	OrderID         string    `json:"order_id"`
	WalletAddress   string    `json:"wallet_address"`
	CryptoAmount    string    `json:"crypto_amount"`
	CryptoCurrency  string    `json:"crypto_currency"`
	TransactionHash string    `json:"transaction_hash"`
	IsConfirmed     bool      `json:"is_confirmed"`
	CreatedAt       time.Time `json:"created_at"`
}
