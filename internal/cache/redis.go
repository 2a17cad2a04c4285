package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type RedisClient struct {
	client *redis.Client
	log    *zap.Logger
}

func NewRedisClient(addr, password string, db int, log *zap.Logger) (*RedisClient, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	log.Info("Redis connected successfully", zap.String("addr", addr))

	return &RedisClient{
		client: rdb,
		log:    log,
	}, nil
}

func (r *RedisClient) Close() error {
	return r.client.Close()
}

// Кэш карточек товаров
func (r *RedisClient) SetProduct(ctx context.Context, id string, data []byte, ttl time.Duration) error {
	return r.client.Set(ctx, productKey(id), data, ttl).Err()
}

func (r *RedisClient) GetProduct(ctx context.Context, id string) ([]byte, error) {
	return r.client.Get(ctx, productKey(id)).Bytes()
}

func (r *RedisClient) DelProduct(ctx context.Context, ids ...string) error {
	keys := make([]string, 0, len(ids)+1)
	for _, id := range ids {
		keys = append(keys, productKey(id))
	}
	// список инвалидируем вместе с карточками
	keys = append(keys, productListKey)
	return r.client.Del(ctx, keys...).Err()
}

func (r *RedisClient) SetProductList(ctx context.Context, data []byte, ttl time.Duration) error {
	return r.client.Set(ctx, productListKey, data, ttl).Err()
}

func (r *RedisClient) GetProductList(ctx context.Context) ([]byte, error) {
	return r.client.Get(ctx, productListKey).Bytes()
}

const productListKey = "products:all"

func productKey(id string) string {
	return fmt.Sprintf("product:%s", id)
}
