package service

import (
	"context"
	"strings"
	"time"

	"eshop-service/internal/models"
	"eshop-service/internal/repository"
	"eshop-service/internal/util"

	"github.com/google/uuid"
	"github.com/nanorand/nanorand"
	"go.uber.org/zap"
)

// Сумма платежа равна сумме заказа 1:1 — курс к стейблкоину фиксированный.
const cryptoCurrency = "USDT"

type PaymentService struct {
	orders   repository.OrderRepo
	payments repository.PaymentRepo
	events   EventBus // nil — события выключены

	now func() time.Time
	log *zap.Logger
}

func NewPaymentService(orders repository.OrderRepo, payments repository.PaymentRepo, events EventBus, log *zap.Logger) *PaymentService {
	return &PaymentService{
		orders:   orders,
		payments: payments,
		events:   events,
		now:      time.Now,
		log:      log,
	}
}

// PayWithCrypto прикрепляет к ожидающему заказу симулированный крипто-платёж.
// Заказ остаётся pending до подтверждения.
func (s *PaymentService) PayWithCrypto(ctx context.Context, orderID uuid.UUID, walletAddress string) (*models.CryptoPayment, error) {
	walletAddress = strings.TrimSpace(walletAddress)
	if walletAddress == "" {
		return nil, ErrWalletRequired
	}

	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	if order.Status != models.OrderStatusPending {
		return nil, ErrOrderProcessed
	}

	existing, err := s.payments.GetByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrPaymentExists
	}

	rng, err := nanorand.Gen(32)
	if err != nil {
		return nil, err
	}

	payment := &models.CryptoPayment{
		OrderID:         orderID,
		WalletAddress:   walletAddress,
		CryptoAmount:    order.TotalPrice,
		CryptoCurrency:  cryptoCurrency,
		TransactionHash: "0x" + util.Sha256Hex(rng+orderID.String()),
		IsConfirmed:     false,
		CreatedAt:       s.now(),
	}

	if err := s.payments.Create(ctx, payment); err != nil {
		return nil, err
	}

	if err := s.orders.UpdatePaymentMethod(ctx, orderID, models.PaymentMethodCrypto); err != nil {
		return nil, err
	}

	s.log.Info("Крипто-платёж создан",
		zap.String("order_id", orderID.String()),
		zap.String("amount", payment.CryptoAmount.StringFixed(8)))

	return payment, nil
}

// ConfirmCryptoPayment — симуляция подтверждения из блокчейна: платёж
// помечается подтверждённым, заказ переходит в paid. Повторное подтверждение
// не считается ошибкой.
func (s *PaymentService) ConfirmCryptoPayment(ctx context.Context, orderID uuid.UUID) (*models.CryptoPayment, error) {
	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}

	payment, err := s.payments.GetByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, ErrPaymentNotFound
	}

	if err := s.payments.SetConfirmed(ctx, payment.ID); err != nil {
		return nil, err
	}
	payment.IsConfirmed = true

	if err := s.orders.UpdateStatus(ctx, orderID, models.OrderStatusPaid); err != nil {
		return nil, err
	}

	s.log.Info("Крипто-платёж подтверждён", zap.String("order_id", orderID.String()))

	if s.events != nil {
		_ = s.events.PublishOrderPaid(ctx, OrderPaidEvent{
			OrderID:         orderID,
			PaymentID:       payment.ID,
			CryptoAmount:    payment.CryptoAmount,
			CryptoCurrency:  payment.CryptoCurrency,
			TransactionHash: payment.TransactionHash,
			PaidAt:          s.now(),
		})
	}

	return payment, nil
}
