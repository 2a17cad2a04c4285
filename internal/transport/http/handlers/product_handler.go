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

type ProductHandler struct {
	catalog *service.CatalogService
	log     *zap.Logger
}

func NewProductHandler(catalog *service.CatalogService, log *zap.Logger) *ProductHandler {
	return &ProductHandler{
		catalog: catalog,
		log:     log,
	}
}

// ListProductsHandler godoc
// @Summary Список товаров
// @Description Возвращает весь каталог, отсортированный по дате создания
// @Tags products
// @Produce json
// @Success 200 {array} dto.ProductResponse
// @Failure 500 {object} dto.InternalErrorResponse "Внутренняя ошибка"
// @Router /products [get]
func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.catalog.ListProducts(c.Request.Context())
	if err != nil {
		h.log.Error("Failed to list products", zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.NewInternalError(""))
		return
	}

	c.JSON(http.StatusOK, toProductListResponse(products))
}

// GetProductHandler godoc
// @Summary Карточка товара
// @Tags products
// @Produce json
// @Param productId path string true "ID товара"
// @Success 200 {object} dto.ProductResponse
// @Failure 400 {object} dto.ValidationErrorResponse "Неверный ID"
// @Failure 404 {object} dto.NotFoundErrorResponse "Товар не найден"
// @Failure 500 {object} dto.InternalErrorResponse "Внутренняя ошибка"
// @Router /products/{productId} [get]
func (h *ProductHandler) Get(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewValidationError("invalid product id", []dto.FieldError{}))
		return
	}

	product, err := h.catalog.GetProduct(c.Request.Context(), productID)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, dto.NewNotFoundError("product not found"))
			return
		}
		h.log.Error("Failed to get product", zap.String("product_id", productID.String()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.NewInternalError(""))
		return
	}

	c.JSON(http.StatusOK, toProductResponse(product))
}

// CreateProductHandler godoc
// @Summary Создание товара
// @Description Добавляет товар в каталог
// @Tags admin
// @Accept json
// @Produce json
// @Param product body dto.ProductCreateRequest true "Данные товара"
// @Success 201 {object} dto.ProductResponse
// @Failure 400 {object} dto.ValidationErrorResponse "Неверные данные"
// @Failure 403 {object} dto.ForbiddenErrorResponse "Нет прав на управление каталогом"
// @Failure 500 {object} dto.InternalErrorResponse "Внутренняя ошибка"
// @Router /admin/products/create [post]
func (h *ProductHandler) Create(c *gin.Context) {
	var req dto.ProductCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("Invalid create product request", zap.Error(err))
		c.JSON(http.StatusBadRequest, dto.NewValidationError("invalid request body", []dto.FieldError{}))
		return
	}

	product, err := h.catalog.CreateProduct(c.Request.Context(), service.ProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
	})
	if err != nil {
		h.respondCatalogError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toProductResponse(product))
}

// UpdateProductHandler godoc
// @Summary Частичное обновление товара
// @Description Обновляет только переданные поля
// @Tags admin
// @Accept json
// @Produce json
// @Param productId path string true "ID товара"
// @Param product body dto.ProductUpdateRequest true "Изменяемые поля"
// @Success 200 {object} dto.ProductResponse
// @Failure 400 {object} dto.ValidationErrorResponse "Неверные данные"
// @Failure 403 {object} dto.ForbiddenErrorResponse "Нет прав на управление каталогом"
// @Failure 404 {object} dto.NotFoundErrorResponse "Товар не найден"
// @Failure 500 {object} dto.InternalErrorResponse "Внутренняя ошибка"
// @Router /admin/products/{productId} [patch]
func (h *ProductHandler) Update(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewValidationError("invalid product id", []dto.FieldError{}))
		return
	}

	var req dto.ProductUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("Invalid update product request", zap.Error(err))
		c.JSON(http.StatusBadRequest, dto.NewValidationError("invalid request body", []dto.FieldError{}))
		return
	}

	product, err := h.catalog.UpdateProduct(c.Request.Context(), productID, service.ProductPatch{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
	})
	if err != nil {
		h.respondCatalogError(c, err)
		return
	}

	c.JSON(http.StatusOK, toProductResponse(product))
}

// DeleteProductHandler godoc
// @Summary Удаление товара
// @Tags admin
// @Produce json
// @Param productId path string true "ID товара"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ValidationErrorResponse "Неверный ID"
// @Failure 403 {object} dto.ForbiddenErrorResponse "Нет прав на управление каталогом"
// @Failure 404 {object} dto.NotFoundErrorResponse "Товар не найден"
// @Failure 500 {object} dto.InternalErrorResponse "Внутренняя ошибка"
// @Router /admin/products/{productId} [delete]
func (h *ProductHandler) Delete(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewValidationError("invalid product id", []dto.FieldError{}))
		return
	}

	if err := h.catalog.DeleteProduct(c.Request.Context(), productID); err != nil {
		h.respondCatalogError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "product deleted"})
}

func (h *ProductHandler) respondCatalogError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.NewForbiddenError("catalog management is not allowed for this role"))
	case errors.Is(err, service.ErrNameRequired):
		c.JSON(http.StatusBadRequest, dto.NewValidationError("invalid product data", []dto.FieldError{
			{Field: "name", Message: "required"},
		}))
	case errors.Is(err, service.ErrPriceInvalid):
		c.JSON(http.StatusBadRequest, dto.NewValidationError("invalid product data", []dto.FieldError{
			{Field: "price", Message: "must be positive"},
		}))
	case errors.Is(err, service.ErrStockInvalid):
		c.JSON(http.StatusBadRequest, dto.NewValidationError("invalid product data", []dto.FieldError{
			{Field: "stock", Message: "must not be negative"},
		}))
	case errors.Is(err, service.ErrProductNotFound):
		c.JSON(http.StatusNotFound, dto.NewNotFoundError("product not found"))
	default:
		h.log.Error("Catalog operation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.NewInternalError(""))
	}
}
