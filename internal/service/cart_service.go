package service

import (
	"context"

	"eshop-service/internal/models"
	"eshop-service/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// CartLine — строка корзины с подставленными названием и текущей ценой товара.
type CartLine struct {
	ID          uuid.UUID
	ProductID   uuid.UUID
	ProductName string
	Price       decimal.Decimal
	Quantity    int
}

type CartView struct {
	CartID uuid.UUID
	UserID uuid.UUID
	Lines  []CartLine
}

type CartService struct {
	users    repository.UserRepo
	products repository.ProductRepo
	carts    repository.CartRepo
	items    repository.CartItemRepo

	log *zap.Logger
}

func NewCartService(
	users repository.UserRepo,
	products repository.ProductRepo,
	carts repository.CartRepo,
	items repository.CartItemRepo,
	log *zap.Logger,
) *CartService {
	return &CartService{
		users:    users,
		products: products,
		carts:    carts,
		items:    items,
		log:      log,
	}
}

// getOrCreateCart — ленивое создание: корзина появляется при первом обращении,
// если её по какой-то причине ещё нет.
func (s *CartService) getOrCreateCart(ctx context.Context, userID uuid.UUID) (*models.Cart, error) {
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
	if cart != nil {
		return cart, nil
	}

	cart = &models.Cart{UserID: userID}
	if err := s.carts.Create(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// AddItem добавляет товар в корзину; повторное добавление того же товара
// увеличивает количество существующей строки, а не плодит дубликаты.
func (s *CartService) AddItem(ctx context.Context, userID, productID uuid.UUID, quantity int) (*CartLine, error) {
	if quantity <= 0 {
		return nil, ErrQuantityInvalid
	}

	cart, err := s.getOrCreateCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	product, err := s.products.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	line, err := s.items.GetLine(ctx, cart.ID, productID)
	if err != nil {
		return nil, err
	}

	if line != nil {
		if err := s.items.IncrementQuantity(ctx, line.ID, quantity); err != nil {
			return nil, err
		}
		line.Quantity += quantity
	} else {
		line = &models.CartItem{
			CartID:    cart.ID,
			ProductID: productID,
			Quantity:  quantity,
		}
		if err := s.items.Create(ctx, line); err != nil {
			return nil, err
		}
	}

	return &CartLine{
		ID:          line.ID,
		ProductID:   productID,
		ProductName: product.Name,
		Price:       product.Price,
		Quantity:    line.Quantity,
	}, nil
}

func (s *CartService) RemoveItem(ctx context.Context, userID, itemID uuid.UUID) error {
	cart, err := s.carts.GetByUserID(ctx, userID)
	if err != nil {
		return err
	}
	if cart == nil {
		return ErrCartNotFound
	}

	item, err := s.items.GetByID(ctx, itemID)
	if err != nil {
		return err
	}
	if item == nil || item.CartID != cart.ID {
		return ErrCartItemNotFound
	}

	_, err = s.items.Delete(ctx, itemID)
	return err
}

// Clear очищает корзину; очистка пустой корзины — успех.
func (s *CartService) Clear(ctx context.Context, userID uuid.UUID) error {
	cart, err := s.carts.GetByUserID(ctx, userID)
	if err != nil {
		return err
	}
	if cart == nil {
		return ErrCartNotFound
	}

	_, err = s.items.DeleteAllByCart(ctx, cart.ID)
	return err
}

func (s *CartService) View(ctx context.Context, userID uuid.UUID) (*CartView, error) {
	cart, err := s.getOrCreateCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	items, err := s.items.ListByCart(ctx, cart.ID)
	if err != nil {
		return nil, err
	}

	lines := make([]CartLine, 0, len(items))
	for _, it := range items {
		product, err := s.products.GetByID(ctx, it.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			// товар удалён из каталога — строку не показываем
			continue
		}
		lines = append(lines, CartLine{
			ID:          it.ID,
			ProductID:   it.ProductID,
			ProductName: product.Name,
			Price:       product.Price,
			Quantity:    it.Quantity,
		})
	}

	return &CartView{
		CartID: cart.ID,
		UserID: userID,
		Lines:  lines,
	}, nil
}
