package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"eshop-service/config"
	_ "eshop-service/docs"
	"eshop-service/internal/cache"
	"eshop-service/internal/database"
	"eshop-service/internal/hashing"
	"eshop-service/internal/logger"
	"eshop-service/internal/producer"
	"eshop-service/internal/repository"
	"eshop-service/internal/service"
	transport "eshop-service/internal/transport/http"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// @Title E-Shop API
// @Version 1.0
// @Description API интернет-магазина: каталог, корзина, заказы и крипто-оплата
// @BasePath /
func main() {
	_ = godotenv.Load()
	isDev := os.Getenv("ENV") == "development"
	if err := logger.Init(isDev); err != nil {
		panic(err)
	}

	defer logger.Sync()

	log := logger.L()

	cfg := config.Load(log)
	db := database.ConnectDB(&cfg.DB.Config, log)
	defer database.CloseDB(db, log)

	repos := repository.New(db)

	// Кэш каталога опционален: nil-интерфейс отключает его в сервисе
	var productCache service.ProductCache
	if cfg.Redis.Enabled {
		redisClient, err := cache.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, log)
		if err != nil {
			log.Fatal("Не удалось подключиться к Redis", zap.Error(err))
		}
		defer redisClient.Close()
		productCache = redisClient
		log.Info("Кэш каталога включён", zap.String("addr", cfg.Redis.Addr))
	}

	var eventBus service.EventBus
	if cfg.Kafka.Enabled {
		orderProducer := producer.NewOrderEventProducer(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		defer orderProducer.Close()
		eventBus = producer.NewKafkaEventBus(orderProducer)
		log.Info("Публикация событий заказов включена", zap.String("topic", cfg.Kafka.Topic))
	}

	var policy service.AccessPolicy = service.PermissivePolicy{}
	if cfg.AdminEnforced {
		policy = service.AdminOnlyPolicy{}
	}

	hasher := hashing.NewBcrypt(0)
	cacheTTL := time.Duration(cfg.Redis.TTLSeconds) * time.Second

	svc := transport.Services{
		Auth:     service.NewAuthService(repos.Users, hasher, log),
		Catalog:  service.NewCatalogService(repos.Products, productCache, policy, cacheTTL, log),
		Cart:     service.NewCartService(repos.Users, repos.Products, repos.Carts, repos.CartItems, log),
		Orders:   service.NewOrderService(repos.Users, repos.Products, repos.Carts, repos.CartItems, repos.Orders, eventBus, log),
		Payments: service.NewPaymentService(repos.Orders, repos.Payments, eventBus, log),
	}

	r := transport.Router(svc, log)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Info("Starting HTTP server", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	<-quit
	log.Info("Shutting down HTTP server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("HTTP server shutdown failed", zap.Error(err))
	}
	log.Info("HTTP server stopped gracefully")
}
