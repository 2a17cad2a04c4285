package service

import (
	"context"
	"time"

	"eshop-service/internal/models"
	"eshop-service/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type OrderService struct {
	users     repository.UserRepo
	products  repository.ProductRepo
	carts     repository.CartRepo
	cartItems repository.CartItemRepo
	orders    repository.OrderRepo
	events    EventBus // nil — события выключены

	now func() time.Time
	log *zap.Logger
}

func NewOrderService(
	users repository.UserRepo,
	products repository.ProductRepo,
	carts repository.CartRepo,
	cartItems repository.CartItemRepo,
	orders repository.OrderRepo,
	events EventBus,
	log *zap.Logger,
) *OrderService {
	return &OrderService{
		users:     users,
		products:  products,
		carts:     carts,
		cartItems: cartItems,
		orders:    orders,
		events:    events,
		now:       time.Now,
		log:       log,
	}
}

// CreateOrder оформляет заказ из корзины пользователя.
//
// Сначала проход-проверка остатков по всем строкам — без единой записи в БД.
// Затем одна транзакция: условное списание склада (stock >= qty), снимок цены
// в позиции заказа, создание заказа, очистка корзины. Если на фазе списания
// какой-то строки не хватило остатка, транзакция откатывается целиком —
// частичных списаний снаружи не видно.
func (s *OrderService) CreateOrder(ctx context.Context, userID uuid.UUID) (*models.Order, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	cart, err := s.carts.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		return nil, ErrCartNotFound
	}

	lines, err := s.cartItems.ListByCart(ctx, cart.ID)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, ErrCartEmpty
	}

	// Предварительная проверка остатков по всем строкам
	for _, line := range lines {
		p, err := s.products.GetByID(ctx, line.ProductID)
		if err != nil {
			return nil, err
		}
		if p == nil {
			return nil, ErrProductNotFound
		}
		if p.Stock < line.Quantity {
			return nil, &InsufficientStockError{
				ProductID:   p.ID,
				ProductName: p.Name,
				Available:   p.Stock,
			}
		}
	}

	var order *models.Order
	now := s.now()

	err = s.orders.WithTx(ctx, func(
		txOrders repository.OrderRepo,
		txItems repository.OrderItemRepo,
		txProducts repository.ProductRepo,
		txCartItems repository.CartItemRepo,
	) error {
		total := decimal.Zero
		snapshot := make([]models.OrderItem, 0, len(lines))

		for _, line := range lines {
			p, err := txProducts.GetByID(ctx, line.ProductID)
			if err != nil {
				return err
			}
			if p == nil {
				return ErrProductNotFound
			}

			// цена фиксируется до списания
			price := p.Price

			ok, err := txProducts.TryDeductStock(ctx, p.ID, line.Quantity)
			if err != nil {
				return err
			}
			if !ok {
				// остаток изменился после предварительной проверки — откат всего
				return &InsufficientStockError{
					ProductID:   p.ID,
					ProductName: p.Name,
					Available:   p.Stock,
				}
			}

			total = total.Add(price.Mul(decimal.NewFromInt(int64(line.Quantity))))
			snapshot = append(snapshot, models.OrderItem{
				ProductID: p.ID,
				Quantity:  line.Quantity,
				Price:     price,
				CreatedAt: now,
			})
		}

		order = &models.Order{
			UserID:        userID,
			TotalPrice:    total,
			Status:        models.OrderStatusPending,
			PaymentMethod: models.PaymentMethodCash,
			CreatedAt:     now,
		}
		if err := txOrders.Create(ctx, order); err != nil {
			return err
		}

		for i := range snapshot {
			snapshot[i].OrderID = order.ID
		}
		if err := txItems.BulkCreate(ctx, snapshot); err != nil {
			return err
		}

		if _, err := txCartItems.DeleteAllByCart(ctx, cart.ID); err != nil {
			return err
		}

		order.Items = snapshot
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("Заказ оформлен",
		zap.String("order_id", order.ID.String()),
		zap.String("total_price", order.TotalPrice.StringFixed(2)))

	if s.events != nil {
		evItems := make([]OrderItemEvent, 0, len(order.Items))
		for _, it := range order.Items {
			evItems = append(evItems, OrderItemEvent{
				ProductID: it.ProductID,
				Quantity:  it.Quantity,
				Price:     it.Price,
			})
		}
		_ = s.events.PublishOrderCreated(ctx, OrderCreatedEvent{
			OrderID:    order.ID,
			UserID:     order.UserID,
			Items:      evItems,
			TotalPrice: order.TotalPrice,
			CreatedAt:  order.CreatedAt,
		})
	}

	return order, nil
}

func (s *OrderService) ListOrders(ctx context.Context, userID uuid.UUID) ([]models.Order, error) {
	return s.orders.ListByUser(ctx, userID)
}

func (s *OrderService) GetOrder(ctx context.Context, orderID uuid.UUID) (*models.Order, error) {
	ord, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if ord == nil {
		return nil, ErrOrderNotFound
	}
	return ord, nil
}
