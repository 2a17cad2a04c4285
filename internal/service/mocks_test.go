package service_test

import (
	"context"
	"time"

	"eshop-service/internal/models"
	"eshop-service/internal/repository"
	"eshop-service/internal/service"

	"github.com/google/uuid"
)

// Моки для всех зависимостей сервисов

// MockUserRepo
type MockUserRepo struct {
	CreateFunc        func(ctx context.Context, u *models.User) error
	GetByEmailFunc    func(ctx context.Context, email string) (*models.User, error)
	GetByIDFunc       func(ctx context.Context, id uuid.UUID) (*models.User, error)
	ExistsByEmailFunc func(ctx context.Context, email string) (bool, error)
	WithTxFunc        func(ctx context.Context, fn func(txUsers repository.UserRepo, txCarts repository.CartRepo) error) error

	// TxCarts подставляется в WithTx по умолчанию
	TxCarts repository.CartRepo
}

func (m *MockUserRepo) Create(ctx context.Context, u *models.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, u)
	}
	return nil
}

func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *MockUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if m.ExistsByEmailFunc != nil {
		return m.ExistsByEmailFunc(ctx, email)
	}
	return false, nil
}

func (m *MockUserRepo) WithTx(ctx context.Context, fn func(txUsers repository.UserRepo, txCarts repository.CartRepo) error) error {
	if m.WithTxFunc != nil {
		return m.WithTxFunc(ctx, fn)
	}
	carts := m.TxCarts
	if carts == nil {
		carts = &MockCartRepo{}
	}
	return fn(m, carts)
}

// MockProductRepo
type MockProductRepo struct {
	CreateFunc         func(ctx context.Context, p *models.Product) error
	GetByIDFunc        func(ctx context.Context, id uuid.UUID) (*models.Product, error)
	ListFunc           func(ctx context.Context) ([]models.Product, error)
	UpdateFieldsFunc   func(ctx context.Context, id uuid.UUID, fields map[string]any) error
	DeleteFunc         func(ctx context.Context, id uuid.UUID) (bool, error)
	TryDeductStockFunc func(ctx context.Context, id uuid.UUID, qty int) (bool, error)
}

func (m *MockProductRepo) Create(ctx context.Context, p *models.Product) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, p)
	}
	return nil
}

func (m *MockProductRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockProductRepo) List(ctx context.Context) ([]models.Product, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return []models.Product{}, nil
}

func (m *MockProductRepo) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]any) error {
	if m.UpdateFieldsFunc != nil {
		return m.UpdateFieldsFunc(ctx, id, fields)
	}
	return nil
}

func (m *MockProductRepo) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return true, nil
}

func (m *MockProductRepo) TryDeductStock(ctx context.Context, id uuid.UUID, qty int) (bool, error) {
	if m.TryDeductStockFunc != nil {
		return m.TryDeductStockFunc(ctx, id, qty)
	}
	return true, nil
}

// MockCartRepo
type MockCartRepo struct {
	CreateFunc      func(ctx context.Context, c *models.Cart) error
	GetByUserIDFunc func(ctx context.Context, userID uuid.UUID) (*models.Cart, error)
}

func (m *MockCartRepo) Create(ctx context.Context, c *models.Cart) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, c)
	}
	return nil
}

func (m *MockCartRepo) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Cart, error) {
	if m.GetByUserIDFunc != nil {
		return m.GetByUserIDFunc(ctx, userID)
	}
	return nil, nil
}

// MockCartItemRepo
type MockCartItemRepo struct {
	CreateFunc            func(ctx context.Context, it *models.CartItem) error
	GetByIDFunc           func(ctx context.Context, id uuid.UUID) (*models.CartItem, error)
	GetLineFunc           func(ctx context.Context, cartID, productID uuid.UUID) (*models.CartItem, error)
	ListByCartFunc        func(ctx context.Context, cartID uuid.UUID) ([]models.CartItem, error)
	IncrementQuantityFunc func(ctx context.Context, id uuid.UUID, delta int) error
	DeleteFunc            func(ctx context.Context, id uuid.UUID) (bool, error)
	DeleteAllByCartFunc   func(ctx context.Context, cartID uuid.UUID) (int64, error)
}

func (m *MockCartItemRepo) Create(ctx context.Context, it *models.CartItem) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, it)
	}
	return nil
}

func (m *MockCartItemRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.CartItem, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockCartItemRepo) GetLine(ctx context.Context, cartID, productID uuid.UUID) (*models.CartItem, error) {
	if m.GetLineFunc != nil {
		return m.GetLineFunc(ctx, cartID, productID)
	}
	return nil, nil
}

func (m *MockCartItemRepo) ListByCart(ctx context.Context, cartID uuid.UUID) ([]models.CartItem, error) {
	if m.ListByCartFunc != nil {
		return m.ListByCartFunc(ctx, cartID)
	}
	return []models.CartItem{}, nil
}

func (m *MockCartItemRepo) IncrementQuantity(ctx context.Context, id uuid.UUID, delta int) error {
	if m.IncrementQuantityFunc != nil {
		return m.IncrementQuantityFunc(ctx, id, delta)
	}
	return nil
}

func (m *MockCartItemRepo) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return true, nil
}

func (m *MockCartItemRepo) DeleteAllByCart(ctx context.Context, cartID uuid.UUID) (int64, error) {
	if m.DeleteAllByCartFunc != nil {
		return m.DeleteAllByCartFunc(ctx, cartID)
	}
	return 0, nil
}

// MockOrderRepo
type MockOrderRepo struct {
	CreateFunc              func(ctx context.Context, o *models.Order) error
	GetByIDFunc             func(ctx context.Context, id uuid.UUID) (*models.Order, error)
	ListByUserFunc          func(ctx context.Context, userID uuid.UUID) ([]models.Order, error)
	UpdateStatusFunc        func(ctx context.Context, id uuid.UUID, status models.OrderStatus) error
	UpdatePaymentMethodFunc func(ctx context.Context, id uuid.UUID, method models.PaymentMethod) error
	WithTxFunc              func(ctx context.Context, fn func(txOrders repository.OrderRepo, txItems repository.OrderItemRepo, txProducts repository.ProductRepo, txCartItems repository.CartItemRepo) error) error

	// Подставляются в WithTx по умолчанию
	TxItems     repository.OrderItemRepo
	TxProducts  repository.ProductRepo
	TxCartItems repository.CartItemRepo
}

func (m *MockOrderRepo) Create(ctx context.Context, o *models.Order) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, o)
	}
	return nil
}

func (m *MockOrderRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockOrderRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Order, error) {
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(ctx, userID)
	}
	return []models.Order{}, nil
}

func (m *MockOrderRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status models.OrderStatus) error {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, id, status)
	}
	return nil
}

func (m *MockOrderRepo) UpdatePaymentMethod(ctx context.Context, id uuid.UUID, method models.PaymentMethod) error {
	if m.UpdatePaymentMethodFunc != nil {
		return m.UpdatePaymentMethodFunc(ctx, id, method)
	}
	return nil
}

func (m *MockOrderRepo) WithTx(ctx context.Context, fn func(txOrders repository.OrderRepo, txItems repository.OrderItemRepo, txProducts repository.ProductRepo, txCartItems repository.CartItemRepo) error) error {
	if m.WithTxFunc != nil {
		return m.WithTxFunc(ctx, fn)
	}
	items := m.TxItems
	if items == nil {
		items = &MockOrderItemRepo{}
	}
	products := m.TxProducts
	if products == nil {
		products = &MockProductRepo{}
	}
	cartItems := m.TxCartItems
	if cartItems == nil {
		cartItems = &MockCartItemRepo{}
	}
	return fn(m, items, products, cartItems)
}

// MockOrderItemRepo
type MockOrderItemRepo struct {
	BulkCreateFunc func(ctx context.Context, items []models.OrderItem) error
}

func (m *MockOrderItemRepo) BulkCreate(ctx context.Context, items []models.OrderItem) error {
	if m.BulkCreateFunc != nil {
		return m.BulkCreateFunc(ctx, items)
	}
	return nil
}

// MockPaymentRepo
type MockPaymentRepo struct {
	CreateFunc       func(ctx context.Context, p *models.CryptoPayment) error
	GetByOrderIDFunc func(ctx context.Context, orderID uuid.UUID) (*models.CryptoPayment, error)
	SetConfirmedFunc func(ctx context.Context, id uuid.UUID) error
}

func (m *MockPaymentRepo) Create(ctx context.Context, p *models.CryptoPayment) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, p)
	}
	return nil
}

func (m *MockPaymentRepo) GetByOrderID(ctx context.Context, orderID uuid.UUID) (*models.CryptoPayment, error) {
	if m.GetByOrderIDFunc != nil {
		return m.GetByOrderIDFunc(ctx, orderID)
	}
	return nil, nil
}

func (m *MockPaymentRepo) SetConfirmed(ctx context.Context, id uuid.UUID) error {
	if m.SetConfirmedFunc != nil {
		return m.SetConfirmedFunc(ctx, id)
	}
	return nil
}

// MockPasswordHasher
type MockPasswordHasher struct {
	HashFunc    func(password string) (string, error)
	CompareFunc func(hash, password string) bool
}

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	if m.HashFunc != nil {
		return m.HashFunc(password)
	}
	return "hashed_" + password, nil
}

func (m *MockPasswordHasher) Compare(hash, password string) bool {
	if m.CompareFunc != nil {
		return m.CompareFunc(hash, password)
	}
	return hash == "hashed_"+password
}

// MockProductCache
type MockProductCache struct {
	SetProductFunc     func(ctx context.Context, id string, data []byte, ttl time.Duration) error
	GetProductFunc     func(ctx context.Context, id string) ([]byte, error)
	DelProductFunc     func(ctx context.Context, ids ...string) error
	SetProductListFunc func(ctx context.Context, data []byte, ttl time.Duration) error
	GetProductListFunc func(ctx context.Context) ([]byte, error)
}

func (m *MockProductCache) SetProduct(ctx context.Context, id string, data []byte, ttl time.Duration) error {
	if m.SetProductFunc != nil {
		return m.SetProductFunc(ctx, id, data, ttl)
	}
	return nil
}

func (m *MockProductCache) GetProduct(ctx context.Context, id string) ([]byte, error) {
	if m.GetProductFunc != nil {
		return m.GetProductFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockProductCache) DelProduct(ctx context.Context, ids ...string) error {
	if m.DelProductFunc != nil {
		return m.DelProductFunc(ctx, ids...)
	}
	return nil
}

func (m *MockProductCache) SetProductList(ctx context.Context, data []byte, ttl time.Duration) error {
	if m.SetProductListFunc != nil {
		return m.SetProductListFunc(ctx, data, ttl)
	}
	return nil
}

func (m *MockProductCache) GetProductList(ctx context.Context) ([]byte, error) {
	if m.GetProductListFunc != nil {
		return m.GetProductListFunc(ctx)
	}
	return nil, nil
}

// MockEventBus
type MockEventBus struct {
	PublishOrderCreatedFunc func(ctx context.Context, e service.OrderCreatedEvent) error
	PublishOrderPaidFunc    func(ctx context.Context, e service.OrderPaidEvent) error
}

func (m *MockEventBus) PublishOrderCreated(ctx context.Context, e service.OrderCreatedEvent) error {
	if m.PublishOrderCreatedFunc != nil {
		return m.PublishOrderCreatedFunc(ctx, e)
	}
	return nil
}

func (m *MockEventBus) PublishOrderPaid(ctx context.Context, e service.OrderPaidEvent) error {
	if m.PublishOrderPaidFunc != nil {
		return m.PublishOrderPaidFunc(ctx, e)
	}
	return nil
}
