package repository_test

import (
	"context"
	"errors"
	"testing"

	"eshop-service/internal/migrate"
	"eshop-service/internal/models"
	"eshop-service/internal/repository"
	"eshop-service/internal/testutil"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db := testutil.SetupTestPostgres(t)
	if err := migrate.MigrateShopDB(context.Background(), db, zap.NewNop(), migrate.DefaultMigrateOptions()); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func createUser(t *testing.T, users repository.UserRepo, email string) *models.User {
	t.Helper()
	u := &models.User{Username: "tester", Email: email, Password: "hash"}
	if err := users.Create(context.Background(), u); err != nil {
		t.Fatalf("create user: %v", err)
	}
	return u
}

func createProduct(t *testing.T, products repository.ProductRepo, name, price string, stock int) *models.Product {
	t.Helper()
	p := &models.Product{Name: name, Price: decimal.RequireFromString(price), Stock: stock}
	if err := products.Create(context.Background(), p); err != nil {
		t.Fatalf("create product: %v", err)
	}
	return p
}

func TestUserRepo(t *testing.T) {
	db := setupDB(t)
	users := repository.NewUserRepo(db)
	ctx := context.Background()

	u := createUser(t, users, "Test@Example.com")

	// Email уникален без учёта регистра
	dup := &models.User{Username: "other", Email: "test@example.com", Password: "hash"}
	if err := users.Create(ctx, dup); err == nil {
		t.Fatal("expected unique constraint error for same email in different case, got nil")
	}

	got, err := users.GetByEmail(ctx, "TEST@example.COM")
	if err != nil {
		t.Fatalf("GetByEmail: %v", err)
	}
	if got == nil || got.ID != u.ID {
		t.Fatalf("GetByEmail mismatch: %+v", got)
	}

	exists, err := users.ExistsByEmail(ctx, "test@example.com")
	if err != nil {
		t.Fatalf("ExistsByEmail: %v", err)
	}
	if !exists {
		t.Fatal("expected exists=true")
	}

	missing, err := users.GetByID(ctx, uuid.New())
	if err != nil {
		t.Fatalf("GetByID missing: %v", err)
	}
	if missing != nil {
		t.Fatalf("expected nil for missing user, got %+v", missing)
	}
}

func TestUserRepo_WithTx_Rollback(t *testing.T) {
	db := setupDB(t)
	users := repository.NewUserRepo(db)
	ctx := context.Background()

	boom := errors.New("boom")
	u := &models.User{Username: "tx", Email: "tx@example.com", Password: "hash"}

	err := users.WithTx(ctx, func(txUsers repository.UserRepo, txCarts repository.CartRepo) error {
		if err := txUsers.Create(ctx, u); err != nil {
			return err
		}
		if err := txCarts.Create(ctx, &models.Cart{UserID: u.ID}); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}

	// Откат: ни пользователя, ни корзины
	got, err := users.GetByEmail(ctx, "tx@example.com")
	if err != nil {
		t.Fatalf("GetByEmail: %v", err)
	}
	if got != nil {
		t.Fatal("expected user rollback")
	}

	carts := repository.NewCartRepo(db)
	cart, err := carts.GetByUserID(ctx, u.ID)
	if err != nil {
		t.Fatalf("GetByUserID: %v", err)
	}
	if cart != nil {
		t.Fatal("expected cart rollback")
	}
}

func TestProductRepo_CRUD(t *testing.T) {
	db := setupDB(t)
	products := repository.NewProductRepo(db)
	ctx := context.Background()

	p := createProduct(t, products, "Мышь", "19.90", 5)

	got, err := products.GetByID(ctx, p.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if !got.Price.Equal(decimal.RequireFromString("19.90")) {
		t.Fatalf("price mismatch: %s", got.Price)
	}

	if err := products.UpdateFields(ctx, p.ID, map[string]any{
		"name":  "Мышь беспроводная",
		"price": decimal.RequireFromString("24.50"),
	}); err != nil {
		t.Fatalf("UpdateFields: %v", err)
	}
	updated, _ := products.GetByID(ctx, p.ID)
	if updated.Name != "Мышь беспроводная" || !updated.Price.Equal(decimal.RequireFromString("24.50")) {
		t.Fatalf("UpdateFields mismatch: %+v", updated)
	}

	list, err := products.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected 1 product, got %d", len(list))
	}

	deleted, err := products.Delete(ctx, p.ID)
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if !deleted {
		t.Fatal("expected deleted=true")
	}
	deleted2, err := products.Delete(ctx, p.ID)
	if err != nil {
		t.Fatalf("Delete second: %v", err)
	}
	if deleted2 {
		t.Fatal("expected deleted2=false")
	}
}

func TestProductRepo_TryDeductStock(t *testing.T) {
	db := setupDB(t)
	products := repository.NewProductRepo(db)
	ctx := context.Background()

	p := createProduct(t, products, "Клавиатура", "49.90", 2)

	ok, err := products.TryDeductStock(ctx, p.ID, 2)
	if err != nil {
		t.Fatalf("TryDeductStock: %v", err)
	}
	if !ok {
		t.Fatal("expected deduction to succeed")
	}

	// Остатка больше нет — условное обновление не срабатывает
	ok, err = products.TryDeductStock(ctx, p.ID, 1)
	if err != nil {
		t.Fatalf("TryDeductStock second: %v", err)
	}
	if ok {
		t.Fatal("expected deduction to fail on empty stock")
	}

	got, _ := products.GetByID(ctx, p.ID)
	if got.Stock != 0 {
		t.Fatalf("expected stock 0, got %d", got.Stock)
	}
}

func TestCartItemRepo(t *testing.T) {
	db := setupDB(t)
	users := repository.NewUserRepo(db)
	carts := repository.NewCartRepo(db)
	items := repository.NewCartItemRepo(db)
	products := repository.NewProductRepo(db)
	ctx := context.Background()

	u := createUser(t, users, "cart@example.com")
	cart := &models.Cart{UserID: u.ID}
	if err := carts.Create(ctx, cart); err != nil {
		t.Fatalf("create cart: %v", err)
	}
	p := createProduct(t, products, "Коврик", "5.00", 10)

	line := &models.CartItem{CartID: cart.ID, ProductID: p.ID, Quantity: 1}
	if err := items.Create(ctx, line); err != nil {
		t.Fatalf("create line: %v", err)
	}

	// Один товар — одна строка корзины
	dup := &models.CartItem{CartID: cart.ID, ProductID: p.ID, Quantity: 2}
	if err := items.Create(ctx, dup); err == nil {
		t.Fatal("expected unique constraint error for duplicate line, got nil")
	}

	if err := items.IncrementQuantity(ctx, line.ID, 3); err != nil {
		t.Fatalf("IncrementQuantity: %v", err)
	}
	got, err := items.GetLine(ctx, cart.ID, p.ID)
	if err != nil {
		t.Fatalf("GetLine: %v", err)
	}
	if got.Quantity != 4 {
		t.Fatalf("expected quantity 4, got %d", got.Quantity)
	}

	n, err := items.DeleteAllByCart(ctx, cart.ID)
	if err != nil {
		t.Fatalf("DeleteAllByCart: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected 1 deleted line, got %d", n)
	}

	rest, _ := items.ListByCart(ctx, cart.ID)
	if len(rest) != 0 {
		t.Fatalf("expected empty cart, got %d lines", len(rest))
	}
}

func TestOrderRepo_CheckoutTxRollback(t *testing.T) {
	db := setupDB(t)
	users := repository.NewUserRepo(db)
	carts := repository.NewCartRepo(db)
	cartItems := repository.NewCartItemRepo(db)
	products := repository.NewProductRepo(db)
	orders := repository.NewOrderRepo(db)
	ctx := context.Background()

	u := createUser(t, users, "checkout@example.com")
	cart := &models.Cart{UserID: u.ID}
	if err := carts.Create(ctx, cart); err != nil {
		t.Fatalf("create cart: %v", err)
	}
	p := createProduct(t, products, "Монитор", "199.00", 3)
	if err := cartItems.Create(ctx, &models.CartItem{CartID: cart.ID, ProductID: p.ID, Quantity: 2}); err != nil {
		t.Fatalf("create line: %v", err)
	}

	boom := errors.New("boom")
	err := orders.WithTx(ctx, func(
		txOrders repository.OrderRepo,
		txItems repository.OrderItemRepo,
		txProducts repository.ProductRepo,
		txCartItems repository.CartItemRepo,
	) error {
		ok, err := txProducts.TryDeductStock(ctx, p.ID, 2)
		if err != nil {
			return err
		}
		if !ok {
			t.Fatal("expected deduction to succeed inside tx")
		}
		o := &models.Order{UserID: u.ID, TotalPrice: decimal.RequireFromString("398.00")}
		if err := txOrders.Create(ctx, o); err != nil {
			return err
		}
		if _, err := txCartItems.DeleteAllByCart(ctx, cart.ID); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}

	// Всё откатилось: склад, заказ, корзина
	got, _ := products.GetByID(ctx, p.ID)
	if got.Stock != 3 {
		t.Fatalf("expected stock restored to 3, got %d", got.Stock)
	}
	list, _ := orders.ListByUser(ctx, u.ID)
	if len(list) != 0 {
		t.Fatalf("expected no orders, got %d", len(list))
	}
	lines, _ := cartItems.ListByCart(ctx, cart.ID)
	if len(lines) != 1 {
		t.Fatalf("expected cart intact, got %d lines", len(lines))
	}
}

func TestOrderRepo_CreateAndList(t *testing.T) {
	db := setupDB(t)
	users := repository.NewUserRepo(db)
	products := repository.NewProductRepo(db)
	orders := repository.NewOrderRepo(db)
	orderItems := repository.NewOrderItemRepo(db)
	ctx := context.Background()

	u := createUser(t, users, "orders@example.com")
	p := createProduct(t, products, "Наушники", "89.00", 10)

	o := &models.Order{UserID: u.ID, TotalPrice: decimal.RequireFromString("178.00")}
	if err := orders.Create(ctx, o); err != nil {
		t.Fatalf("create order: %v", err)
	}
	if err := orderItems.BulkCreate(ctx, []models.OrderItem{
		{OrderID: o.ID, ProductID: p.ID, Quantity: 2, Price: decimal.RequireFromString("89.00")},
	}); err != nil {
		t.Fatalf("bulk create items: %v", err)
	}

	got, err := orders.GetByID(ctx, o.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Status != models.OrderStatusPending {
		t.Fatalf("expected default status pending, got %s", got.Status)
	}
	if got.PaymentMethod != models.PaymentMethodCash {
		t.Fatalf("expected default payment method cash, got %s", got.PaymentMethod)
	}
	if len(got.Items) != 1 {
		t.Fatalf("expected 1 preloaded item, got %d", len(got.Items))
	}

	if err := orders.UpdateStatus(ctx, o.ID, models.OrderStatusPaid); err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if err := orders.UpdatePaymentMethod(ctx, o.ID, models.PaymentMethodCrypto); err != nil {
		t.Fatalf("UpdatePaymentMethod: %v", err)
	}

	list, err := orders.ListByUser(ctx, u.ID)
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(list) != 1 || list[0].Status != models.OrderStatusPaid {
		t.Fatalf("ListByUser mismatch: %+v", list)
	}
}

func TestPaymentRepo(t *testing.T) {
	db := setupDB(t)
	users := repository.NewUserRepo(db)
	orders := repository.NewOrderRepo(db)
	payments := repository.NewPaymentRepo(db)
	ctx := context.Background()

	u := createUser(t, users, "pay@example.com")
	o := &models.Order{UserID: u.ID, TotalPrice: decimal.RequireFromString("50.00")}
	if err := orders.Create(ctx, o); err != nil {
		t.Fatalf("create order: %v", err)
	}

	p := &models.CryptoPayment{
		OrderID:         o.ID,
		WalletAddress:   "0xWallet",
		CryptoAmount:    decimal.RequireFromString("50.00"),
		CryptoCurrency:  "USDT",
		TransactionHash: "0xabc",
	}
	if err := payments.Create(ctx, p); err != nil {
		t.Fatalf("create payment: %v", err)
	}

	// Один платёж на заказ
	dup := &models.CryptoPayment{OrderID: o.ID, WalletAddress: "0xOther", CryptoAmount: decimal.NewFromInt(1)}
	if err := payments.Create(ctx, dup); err == nil {
		t.Fatal("expected unique constraint error for second payment, got nil")
	}

	got, err := payments.GetByOrderID(ctx, o.ID)
	if err != nil {
		t.Fatalf("GetByOrderID: %v", err)
	}
	if got == nil || got.IsConfirmed {
		t.Fatalf("expected unconfirmed payment, got %+v", got)
	}

	if err := payments.SetConfirmed(ctx, p.ID); err != nil {
		t.Fatalf("SetConfirmed: %v", err)
	}
	confirmed, _ := payments.GetByOrderID(ctx, o.ID)
	if !confirmed.IsConfirmed {
		t.Fatal("expected payment to be confirmed")
	}
}
