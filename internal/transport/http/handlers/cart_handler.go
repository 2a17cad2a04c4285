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

type CartHandler struct {
	cart *service.CartService
	log  *zap.Logger
}

func NewCartHandler(cart *service.CartService, log *zap.Logger) *CartHandler {
	return &CartHandler{
		cart: cart,
		log:  log,
	}
}

// ViewCartHandler godoc
// @Summary Содержимое корзины
// @Description Возвращает корзину пользователя с актуальными ценами товаров
// @Tags cart
// @Produce json
// @Param userId path string true "ID пользователя"
// @Success 200 {object} dto.CartResponse
// @Failure 400 {object} dto.ValidationErrorResponse "Неверный ID"
// @Failure 404 {object} dto.NotFoundErrorResponse "Пользователь не найден"
// @Failure 500 {object} dto.InternalErrorResponse "Внутренняя ошибка"
// @Router /cart/{userId} [get]
func (h *CartHandler) View(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewValidationError("invalid user id", []dto.FieldError{}))
		return
	}

	view, err := h.cart.View(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, dto.NewNotFoundError("user not found"))
			return
		}
		h.log.Error("Failed to get cart", zap.String("user_id", userID.String()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.NewInternalError(""))
		return
	}

	c.JSON(http.StatusOK, toCartResponse(view))
}

// AddCartItemHandler godoc
// @Summary Добавление товара в корзину
// @Description Повторное добавление того же товара суммирует количество
// @Tags cart
// @Accept json
// @Produce json
// @Param userId path string true "ID пользователя"
// @Param item body dto.AddCartItemRequest true "Товар и количество"
// @Success 201 {object} dto.CartItemResponse
// @Failure 400 {object} dto.ValidationErrorResponse "Неверные данные"
// @Failure 404 {object} dto.NotFoundErrorResponse "Пользователь или товар не найден"
// @Failure 500 {object} dto.InternalErrorResponse "Внутренняя ошибка"
// @Router /cart/{userId}/add [post]
func (h *CartHandler) AddItem(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewValidationError("invalid user id", []dto.FieldError{}))
		return
	}

	var req dto.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("Invalid add cart item request", zap.Error(err))
		c.JSON(http.StatusBadRequest, dto.NewValidationError("invalid request body", []dto.FieldError{}))
		return
	}
	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewValidationError("invalid product id", []dto.FieldError{}))
		return
	}

	line, err := h.cart.AddItem(c.Request.Context(), userID, productID, req.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrQuantityInvalid):
			c.JSON(http.StatusBadRequest, dto.NewValidationError("quantity must be positive", []dto.FieldError{
				{Field: "quantity", Message: "must be greater than zero"},
			}))
		case errors.Is(err, service.ErrUserNotFound):
			c.JSON(http.StatusNotFound, dto.NewNotFoundError("user not found"))
		case errors.Is(err, service.ErrProductNotFound):
			c.JSON(http.StatusNotFound, dto.NewNotFoundError("product not found"))
		default:
			h.log.Error("Failed to add cart item", zap.String("user_id", userID.String()), zap.Error(err))
			c.JSON(http.StatusInternalServerError, dto.NewInternalError(""))
		}
		return
	}

	c.JSON(http.StatusCreated, toCartItemResponse(*line))
}

// RemoveCartItemHandler godoc
// @Summary Удаление позиции из корзины
// @Description Удаляет позицию целиком независимо от количества
// @Tags cart
// @Produce json
// @Param userId path string true "ID пользователя"
// @Param itemId path string true "ID позиции корзины"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ValidationErrorResponse "Неверный ID"
// @Failure 404 {object} dto.NotFoundErrorResponse "Корзина или позиция не найдена"
// @Failure 500 {object} dto.InternalErrorResponse "Внутренняя ошибка"
// @Router /cart/{userId}/items/{itemId} [delete]
func (h *CartHandler) RemoveItem(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewValidationError("invalid user id", []dto.FieldError{}))
		return
	}
	itemID, err := uuid.Parse(c.Param("itemId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewValidationError("invalid item id", []dto.FieldError{}))
		return
	}

	if err := h.cart.RemoveItem(c.Request.Context(), userID, itemID); err != nil {
		switch {
		case errors.Is(err, service.ErrCartNotFound):
			c.JSON(http.StatusNotFound, dto.NewNotFoundError("cart not found"))
		case errors.Is(err, service.ErrCartItemNotFound):
			c.JSON(http.StatusNotFound, dto.NewNotFoundError("cart item not found"))
		default:
			h.log.Error("Failed to remove cart item", zap.String("user_id", userID.String()), zap.Error(err))
			c.JSON(http.StatusInternalServerError, dto.NewInternalError(""))
		}
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "item removed"})
}

// ClearCartHandler godoc
// @Summary Очистка корзины
// @Description Удаляет все позиции; пустая корзина — не ошибка
// @Tags cart
// @Produce json
// @Param userId path string true "ID пользователя"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ValidationErrorResponse "Неверный ID"
// @Failure 404 {object} dto.NotFoundErrorResponse "Корзина не найдена"
// @Failure 500 {object} dto.InternalErrorResponse "Внутренняя ошибка"
// @Router /cart/{userId}/clear [delete]
func (h *CartHandler) Clear(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewValidationError("invalid user id", []dto.FieldError{}))
		return
	}

	if err := h.cart.Clear(c.Request.Context(), userID); err != nil {
		if errors.Is(err, service.ErrCartNotFound) {
			c.JSON(http.StatusNotFound, dto.NewNotFoundError("cart not found"))
			return
		}
		h.log.Error("Failed to clear cart", zap.String("user_id", userID.String()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.NewInternalError(""))
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "cart cleared"})
}
