package handlers

import (
	"errors"
	"net/http"

	"eshop-service/internal/service"
	"eshop-service/internal/transport/http/dto"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type OrderHandler struct {
	orders   *service.OrderService
	payments *service.PaymentService
	log      *zap.Logger
}

func NewOrderHandler(orders *service.OrderService, payments *service.PaymentService, log *zap.Logger) *OrderHandler {
	return &OrderHandler{
		orders:   orders,
		payments: payments,
		log:      log,
	}
}

// CreateOrderHandler godoc
// @Summary Оформление заказа
// @Description Создаёт заказ из корзины: списывает остатки, фиксирует цены и очищает корзину атомарно
// @Tags orders
// @Produce json
// @Param userId path string true "ID пользователя"
// @Success 201 {object} dto.OrderResponse
// @Failure 400 {object} dto.InsufficientStockErrorResponse "Пустая корзина или нехватка остатков"
// @Failure 404 {object} dto.NotFoundErrorResponse "Пользователь не найден"
// @Failure 500 {object} dto.InternalErrorResponse "Внутренняя ошибка"
// @Router /orders/{userId}/create [post]
func (h *OrderHandler) Create(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewValidationError("invalid user id", []dto.FieldError{}))
		return
	}

	order, err := h.orders.CreateOrder(c.Request.Context(), userID)
	if err != nil {
		var stockErr *service.InsufficientStockError
		switch {
		case errors.As(err, &stockErr):
			h.log.Warn("Insufficient stock at checkout",
				zap.String("user_id", userID.String()),
				zap.String("product", stockErr.ProductName),
				zap.Int("available", stockErr.Available),
			)
			c.JSON(http.StatusBadRequest, dto.NewInsufficientStockError(
				"not enough stock for product", stockErr.ProductName, stockErr.Available))
		case errors.Is(err, service.ErrCartEmpty):
			c.JSON(http.StatusBadRequest, dto.NewValidationError("cart is empty", []dto.FieldError{}))
		case errors.Is(err, service.ErrUserNotFound):
			c.JSON(http.StatusNotFound, dto.NewNotFoundError("user not found"))
		case errors.Is(err, service.ErrCartNotFound):
			c.JSON(http.StatusNotFound, dto.NewNotFoundError("cart not found"))
		default:
			h.log.Error("Failed to create order", zap.String("user_id", userID.String()), zap.Error(err))
			c.JSON(http.StatusInternalServerError, dto.NewInternalError(""))
		}
		return
	}

	c.JSON(http.StatusCreated, toOrderResponse(order))
}

// ListOrdersHandler godoc
// @Summary История заказов пользователя
// @Description Возвращает заказы пользователя от новых к старым
// @Tags orders
// @Produce json
// @Param userId path string true "ID пользователя"
// @Success 200 {array} dto.OrderResponse
// @Failure 400 {object} dto.ValidationErrorResponse "Неверный ID"
// @Failure 404 {object} dto.NotFoundErrorResponse "Пользователь не найден"
// @Failure 500 {object} dto.InternalErrorResponse "Внутренняя ошибка"
// @Router /orders/{userId} [get]
func (h *OrderHandler) List(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewValidationError("invalid user id", []dto.FieldError{}))
		return
	}

	orders, err := h.orders.ListOrders(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, dto.NewNotFoundError("user not found"))
			return
		}
		h.log.Error("Failed to list orders", zap.String("user_id", userID.String()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.NewInternalError(""))
		return
	}

	c.JSON(http.StatusOK, toOrderListResponse(orders))
}

// PayCryptoHandler godoc
// @Summary Оплата заказа криптовалютой
// @Description Создаёт платёж с симулированным хэшем транзакции и переводит заказ на крипто-оплату
// @Tags payments
// @Accept json
// @Produce json
// @Param orderId path string true "ID заказа"
// @Param payment body dto.PayCryptoRequest true "Адрес кошелька"
// @Success 201 {object} dto.CryptoPaymentResponse
// @Failure 400 {object} dto.ValidationErrorResponse "Неверные данные"
// @Failure 404 {object} dto.NotFoundErrorResponse "Заказ не найден"
// @Failure 409 {object} dto.ConflictErrorResponse "Заказ уже обработан или платёж уже создан"
// @Failure 500 {object} dto.InternalErrorResponse "Внутренняя ошибка"
// @Router /orders/{orderId}/pay-crypto [post]
func (h *OrderHandler) PayCrypto(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewValidationError("invalid order id", []dto.FieldError{}))
		return
	}

	var req dto.PayCryptoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("Invalid pay-crypto request", zap.Error(err))
		c.JSON(http.StatusBadRequest, dto.NewValidationError("invalid request body", []dto.FieldError{}))
		return
	}

	payment, err := h.payments.PayWithCrypto(c.Request.Context(), orderID, req.WalletAddress)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrWalletRequired):
			c.JSON(http.StatusBadRequest, dto.NewValidationError("wallet address is required", []dto.FieldError{
				{Field: "wallet_address", Message: "required"},
			}))
		case errors.Is(err, service.ErrOrderNotFound):
			c.JSON(http.StatusNotFound, dto.NewNotFoundError("order not found"))
		case errors.Is(err, service.ErrOrderProcessed):
			c.JSON(http.StatusConflict, dto.NewConflictError("order is already processed"))
		case errors.Is(err, service.ErrPaymentExists):
			c.JSON(http.StatusConflict, dto.NewConflictError("payment for this order already exists"))
		default:
			h.log.Error("Failed to create crypto payment", zap.String("order_id", orderID.String()), zap.Error(err))
			c.JSON(http.StatusInternalServerError, dto.NewInternalError(""))
		}
		return
	}

	c.JSON(http.StatusCreated, toCryptoPaymentResponse(payment))
}

// ConfirmCryptoHandler godoc
// @Summary Подтверждение крипто-платежа
// @Description Подтверждает платёж и переводит заказ в статус paid
// @Tags payments
// @Produce json
// @Param orderId path string true "ID заказа"
// @Success 200 {object} dto.CryptoPaymentResponse
// @Failure 400 {object} dto.ValidationErrorResponse "Неверный ID"
// @Failure 404 {object} dto.NotFoundErrorResponse "Заказ или платёж не найден"
// @Failure 500 {object} dto.InternalErrorResponse "Внутренняя ошибка"
// @Router /orders/{orderId}/confirm-crypto [post]
func (h *OrderHandler) ConfirmCrypto(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewValidationError("invalid order id", []dto.FieldError{}))
		return
	}

	payment, err := h.payments.ConfirmCryptoPayment(c.Request.Context(), orderID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrOrderNotFound):
			c.JSON(http.StatusNotFound, dto.NewNotFoundError("order not found"))
		case errors.Is(err, service.ErrPaymentNotFound):
			c.JSON(http.StatusNotFound, dto.NewNotFoundError("payment for this order not found"))
		default:
			h.log.Error("Failed to confirm crypto payment", zap.String("order_id", orderID.String()), zap.Error(err))
			c.JSON(http.StatusInternalServerError, dto.NewInternalError(""))
		}
		return
	}

	c.JSON(http.StatusOK, toCryptoPaymentResponse(payment))
}
