package migrate

import (
	"context"

	"eshop-service/internal/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type MigrateOptions struct {
	WithPayments        bool // crypto_payments
	CreateFunctionalIdx bool // lower(email) уникальный индекс
	CreateChecksViaSQL  bool // CHECK-ограничения на stock/quantity
	CreateFKsViaSQL     bool // создадим FK через Exec после AutoMigrate
}

func DefaultMigrateOptions() MigrateOptions {
	return MigrateOptions{
		WithPayments:        true,
		CreateFunctionalIdx: true,
		CreateChecksViaSQL:  true,
		CreateFKsViaSQL:     true,
	}
}

func MigrateShopDB(ctx context.Context, db *gorm.DB, log *zap.Logger, opt MigrateOptions) error {
	log.Info("Начало миграции базы данных магазина")

	// Расширения (генераторы UUID)
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto`).Error; err != nil {
		log.Error("Не удалось включить расширение pgcrypto", zap.Error(err))
		return err
	}
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		log.Error("Не удалось включить расширение uuid-ossp", zap.Error(err))
		return err
	}

	// Базовые таблицы
	log.Info("Создание базовых таблиц")
	modelsAny := []any{
		&models.User{},
		&models.Product{},
		&models.Cart{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
	}
	if err := db.AutoMigrate(modelsAny...); err != nil {
		log.Error("Не удалось создать базовые таблицы", zap.Error(err))
		return err
	}

	if opt.WithPayments {
		if err := db.AutoMigrate(&models.CryptoPayment{}); err != nil {
			log.Error("Не удалось создать таблицу крипто-платежей", zap.Error(err))
			return err
		}
		log.Info("Таблица крипто-платежей создана")
	}

	// Функциональный уникальный индекс на email (lower(email))
	if opt.CreateFunctionalIdx {
		if err := db.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS ux_users_email ON users (lower(email))`).Error; err != nil {
			log.Error("Не удалось создать уникальный индекс на lower(email)", zap.Error(err))
			return err
		}
	}

	// CHECK-ограничения: склад не уходит в минус, количество в корзине строго положительное
	if opt.CreateChecksViaSQL {
		if err := db.Exec(`
ALTER TABLE products
  DROP CONSTRAINT IF EXISTS ck_products_stock_nonneg,
  ADD CONSTRAINT ck_products_stock_nonneg CHECK (stock >= 0);
ALTER TABLE cart_items
  DROP CONSTRAINT IF EXISTS ck_cart_items_quantity_pos,
  ADD CONSTRAINT ck_cart_items_quantity_pos CHECK (quantity > 0);
ALTER TABLE order_items
  DROP CONSTRAINT IF EXISTS ck_order_items_quantity_pos,
  ADD CONSTRAINT ck_order_items_quantity_pos CHECK (quantity > 0);
`).Error; err != nil {
			log.Error("Не удалось создать CHECK-ограничения", zap.Error(err))
			return err
		}
	}

	// Внешние ключи через SQL
	if opt.CreateFKsViaSQL {
		log.Info("Создание внешних ключей")
		if err := db.Exec(`
ALTER TABLE carts
  DROP CONSTRAINT IF EXISTS fk_carts_user,
  ADD CONSTRAINT fk_carts_user FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE;
ALTER TABLE cart_items
  DROP CONSTRAINT IF EXISTS fk_cart_items_cart,
  ADD CONSTRAINT fk_cart_items_cart FOREIGN KEY (cart_id) REFERENCES carts(id) ON DELETE CASCADE;
ALTER TABLE cart_items
  DROP CONSTRAINT IF EXISTS fk_cart_items_product,
  ADD CONSTRAINT fk_cart_items_product FOREIGN KEY (product_id) REFERENCES products(id) ON DELETE CASCADE;
ALTER TABLE orders
  DROP CONSTRAINT IF EXISTS fk_orders_user,
  ADD CONSTRAINT fk_orders_user FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE;
ALTER TABLE order_items
  DROP CONSTRAINT IF EXISTS fk_order_items_order,
  ADD CONSTRAINT fk_order_items_order FOREIGN KEY (order_id) REFERENCES orders(id) ON DELETE CASCADE;
`).Error; err != nil {
			log.Error("Не удалось создать внешние ключи", zap.Error(err))
			return err
		}

		if opt.WithPayments {
			if err := db.Exec(`
ALTER TABLE crypto_payments
  DROP CONSTRAINT IF EXISTS fk_crypto_payments_order,
  ADD CONSTRAINT fk_crypto_payments_order FOREIGN KEY (order_id) REFERENCES orders(id) ON DELETE CASCADE;
`).Error; err != nil {
				log.Error("Не удалось создать FK crypto_payments.order_id -> orders.id", zap.Error(err))
				return err
			}
		}
		log.Info("Внешние ключи успешно созданы")
	}

	log.Info("Миграция базы данных магазина успешно завершена")
	return nil
}
