package service

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"eshop-service/internal/models"
	"eshop-service/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type ProductInput struct {
	Name        string
	Description string
	Price       decimal.Decimal
	Stock       int
}

type ProductPatch struct {
	Name        *string
	Description *string
	Price       *decimal.Decimal
	Stock       *int
}

type CatalogService struct {
	products repository.ProductRepo
	cache    ProductCache // nil — кэш выключен
	policy   AccessPolicy
	cacheTTL time.Duration

	now func() time.Time
	log *zap.Logger
}

func NewCatalogService(products repository.ProductRepo, cache ProductCache, policy AccessPolicy, cacheTTL time.Duration, log *zap.Logger) *CatalogService {
	if policy == nil {
		policy = PermissivePolicy{}
	}
	return &CatalogService{
		products: products,
		cache:    cache,
		policy:   policy,
		cacheTTL: cacheTTL,
		now:      time.Now,
		log:      log,
	}
}

func (s *CatalogService) CreateProduct(ctx context.Context, in ProductInput) (*models.Product, error) {
	if !s.policy.CanManageCatalog(ctx) {
		return nil, ErrForbidden
	}

	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, ErrNameRequired
	}
	if !in.Price.IsPositive() {
		return nil, ErrPriceInvalid
	}
	if in.Stock < 0 {
		return nil, ErrStockInvalid
	}

	now := s.now()
	p := &models.Product{
		Name:        name,
		Description: strings.TrimSpace(in.Description),
		Price:       in.Price,
		Stock:       in.Stock,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.products.Create(ctx, p); err != nil {
		return nil, err
	}

	s.invalidate(ctx, p.ID)

	return p, nil
}

func (s *CatalogService) UpdateProduct(ctx context.Context, productID uuid.UUID, patch ProductPatch) (*models.Product, error) {
	if !s.policy.CanManageCatalog(ctx) {
		return nil, ErrForbidden
	}

	p, err := s.products.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrProductNotFound
	}

	fields := map[string]any{}

	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			return nil, ErrNameRequired
		}
		fields["name"] = name
	}
	if patch.Description != nil {
		fields["description"] = strings.TrimSpace(*patch.Description)
	}
	if patch.Price != nil {
		if !patch.Price.IsPositive() {
			return nil, ErrPriceInvalid
		}
		fields["price"] = *patch.Price
	}
	if patch.Stock != nil {
		if *patch.Stock < 0 {
			return nil, ErrStockInvalid
		}
		fields["stock"] = *patch.Stock
	}

	if len(fields) == 0 {
		return p, nil
	}

	fields["updated_at"] = s.now()

	if err := s.products.UpdateFields(ctx, productID, fields); err != nil {
		return nil, err
	}

	s.invalidate(ctx, productID)

	return s.products.GetByID(ctx, productID)
}

func (s *CatalogService) DeleteProduct(ctx context.Context, productID uuid.UUID) error {
	if !s.policy.CanManageCatalog(ctx) {
		return ErrForbidden
	}

	ok, err := s.products.Delete(ctx, productID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrProductNotFound
	}

	s.invalidate(ctx, productID)

	return nil
}

func (s *CatalogService) GetProduct(ctx context.Context, productID uuid.UUID) (*models.Product, error) {
	if s.cache != nil {
		if data, err := s.cache.GetProduct(ctx, productID.String()); err == nil {
			var p models.Product
			if json.Unmarshal(data, &p) == nil {
				return &p, nil
			}
		}
	}

	p, err := s.products.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrProductNotFound
	}

	if s.cache != nil {
		if data, err := json.Marshal(p); err == nil {
			if err := s.cache.SetProduct(ctx, p.ID.String(), data, s.cacheTTL); err != nil {
				s.log.Warn("Не удалось записать товар в кэш", zap.Error(err))
			}
		}
	}

	return p, nil
}

func (s *CatalogService) ListProducts(ctx context.Context) ([]models.Product, error) {
	if s.cache != nil {
		if data, err := s.cache.GetProductList(ctx); err == nil {
			var list []models.Product
			if json.Unmarshal(data, &list) == nil {
				return list, nil
			}
		}
	}

	list, err := s.products.List(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if data, err := json.Marshal(list); err == nil {
			if err := s.cache.SetProductList(ctx, data, s.cacheTTL); err != nil {
				s.log.Warn("Не удалось записать список товаров в кэш", zap.Error(err))
			}
		}
	}

	return list, nil
}

func (s *CatalogService) invalidate(ctx context.Context, productID uuid.UUID) {
	if s.cache == nil {
		return
	}
	if err := s.cache.DelProduct(ctx, productID.String()); err != nil {
		s.log.Warn("Не удалось инвалидировать кэш товара", zap.Error(err))
	}
}
