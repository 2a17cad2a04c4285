package handlers

import (
	"errors"
	"net/http"

	"eshop-service/internal/service"
	"eshop-service/internal/transport/http/dto"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AuthHandler struct {
	auth *service.AuthService
	log  *zap.Logger
}

func NewAuthHandler(auth *service.AuthService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		auth: auth,
		log:  log,
	}
}

// RegisterHandler godoc
// @Summary Регистрация пользователя
// @Description Создаёт пользователя и его постоянную корзину
// @Tags auth
// @Accept json
// @Produce json
// @Param register body dto.RegisterRequest true "Данные регистрации"
// @Success 201 {object} dto.RegisterResponse "Успешная регистрация"
// @Failure 400 {object} dto.ValidationErrorResponse "Неверные данные"
// @Failure 409 {object} dto.ConflictErrorResponse "Email уже занят"
// @Failure 500 {object} dto.InternalErrorResponse "Внутренняя ошибка"
// @Router /register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("Invalid registration request", zap.Error(err))
		c.JSON(http.StatusBadRequest, dto.NewValidationError("invalid request body", []dto.FieldError{}))
		return
	}

	user, err := h.auth.Register(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPasswordTooShort):
			h.log.Warn("Registration validation failed", zap.String("email", req.Email), zap.Error(err))
			c.JSON(http.StatusBadRequest, dto.NewValidationError("password must be at least 8 characters", []dto.FieldError{
				{Field: "password", Message: "too short"},
			}))
		case errors.Is(err, service.ErrEmailExists):
			h.log.Warn("User already exists", zap.String("email", req.Email))
			c.JSON(http.StatusConflict, dto.NewConflictError("user with this email already exists"))
		default:
			h.log.Error("Registration failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, dto.NewInternalError(""))
		}
		return
	}

	c.JSON(http.StatusCreated, dto.RegisterResponse{
		Message: "user registered",
		User:    toUserResponse(user),
	})
}

// LoginHandler godoc
// @Summary Авторизация пользователя
// @Description Проверяет email и пароль, возвращает данные пользователя
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Данные авторизации"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} dto.ValidationErrorResponse "Неверные данные или пароль"
// @Failure 404 {object} dto.NotFoundErrorResponse "Пользователь не найден"
// @Failure 500 {object} dto.InternalErrorResponse "Внутренняя ошибка"
// @Router /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("Invalid login request", zap.Error(err))
		c.JSON(http.StatusBadRequest, dto.NewValidationError("invalid request body", []dto.FieldError{}))
		return
	}

	user, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			h.log.Warn("User not found", zap.String("email", req.Email))
			c.JSON(http.StatusNotFound, dto.NewNotFoundError("user with this email not found"))
		case errors.Is(err, service.ErrInvalidCredentials):
			h.log.Warn("User not authenticated", zap.String("email", req.Email))
			c.JSON(http.StatusBadRequest, dto.NewValidationError("invalid email or password", []dto.FieldError{}))
		default:
			h.log.Error("Login failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, dto.NewInternalError(""))
		}
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		Message: "login successful",
		User:    toUserResponse(user),
	})
}
