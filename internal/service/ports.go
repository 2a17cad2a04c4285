package service

import (
	"context"
	"time"
)

type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) bool
}

// ProductCache — опциональный кэш каталога (redis). nil — кэш выключен.
type ProductCache interface {
	SetProduct(ctx context.Context, id string, data []byte, ttl time.Duration) error
	GetProduct(ctx context.Context, id string) ([]byte, error)
	DelProduct(ctx context.Context, ids ...string) error
	SetProductList(ctx context.Context, data []byte, ttl time.Duration) error
	GetProductList(ctx context.Context) ([]byte, error)
}
