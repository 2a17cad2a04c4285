package repository

import (
	"context"
	"errors"

	"eshop-service/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PaymentRepo interface {
	Create(ctx context.Context, p *models.CryptoPayment) error
	GetByOrderID(ctx context.Context, orderID uuid.UUID) (*models.CryptoPayment, error)
	SetConfirmed(ctx context.Context, id uuid.UUID) error
}

type paymentRepo struct{ db *gorm.DB }

func NewPaymentRepo(db *gorm.DB) PaymentRepo { return &paymentRepo{db: db} }

func (r *paymentRepo) Create(ctx context.Context, p *models.CryptoPayment) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *paymentRepo) GetByOrderID(ctx context.Context, orderID uuid.UUID) (*models.CryptoPayment, error) {
	var p models.CryptoPayment
	err := r.db.WithContext(ctx).First(&p, "order_id = ?", orderID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *paymentRepo) SetConfirmed(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&models.CryptoPayment{}).Where("id = ?", id).Update("is_confirmed", true).Error
}
