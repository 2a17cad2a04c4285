package http

import (
	"eshop-service/internal/service"
	"eshop-service/internal/transport/http/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

type Services struct {
	Auth     *service.AuthService
	Catalog  *service.CatalogService
	Cart     *service.CartService
	Orders   *service.OrderService
	Payments *service.PaymentService
}

// roleMiddleware прокидывает роль из заголовка X-User-Role в контекст запроса.
// Без заголовка считаем, что пришёл покупатель.
func roleMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		role := service.RoleCustomer
		if v := c.GetHeader("X-User-Role"); v == string(service.RoleAdmin) {
			role = service.RoleAdmin
		}
		c.Request = c.Request.WithContext(service.WithRole(c.Request.Context(), role))
		c.Next()
	}
}

func Router(svc Services, log *zap.Logger) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-User-Role"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))
	r.Use(roleMiddleware())

	authHandler := handlers.NewAuthHandler(svc.Auth, log)
	productHandler := handlers.NewProductHandler(svc.Catalog, log)
	cartHandler := handlers.NewCartHandler(svc.Cart, log)
	orderHandler := handlers.NewOrderHandler(svc.Orders, svc.Payments, log)

	r.POST("/register", authHandler.Register)
	r.POST("/login", authHandler.Login)

	r.GET("/products", productHandler.List)
	r.GET("/products/:productId", productHandler.Get)

	admin := r.Group("/admin/products")
	{
		admin.POST("/create", productHandler.Create)
		admin.PATCH("/:productId", productHandler.Update)
		admin.DELETE("/:productId", productHandler.Delete)
	}

	cart := r.Group("/cart/:userId")
	{
		cart.GET("", cartHandler.View)
		cart.POST("/add", cartHandler.AddItem)
		cart.DELETE("/items/:itemId", cartHandler.RemoveItem)
		cart.DELETE("/clear", cartHandler.Clear)
	}

	// один сегмент — то userId, то orderId, поэтому в роутах общее имя :id
	orders := r.Group("/orders/:id")
	{
		orders.GET("", orderHandler.List)
		orders.POST("/create", orderHandler.Create)
		orders.POST("/pay-crypto", orderHandler.PayCrypto)
		orders.POST("/confirm-crypto", orderHandler.ConfirmCrypto)
	}

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	return r
}
