package service

import (
	"context"
	"strings"
	"time"

	"eshop-service/internal/models"
	"eshop-service/internal/repository"

	"go.uber.org/zap"
)

const minPasswordLen = 8

type AuthService struct {
	users  repository.UserRepo
	hasher PasswordHasher

	now func() time.Time
	log *zap.Logger
}

func NewAuthService(users repository.UserRepo, hasher PasswordHasher, log *zap.Logger) *AuthService {
	return &AuthService{
		users:  users,
		hasher: hasher,
		now:    time.Now,
		log:    log,
	}
}

// Register создаёт пользователя и его корзину в одной транзакции —
// у каждого пользователя корзина есть с момента регистрации.
func (s *AuthService) Register(ctx context.Context, username, email, password string) (*models.User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)

	if len(password) < minPasswordLen {
		return nil, ErrPasswordTooShort
	}

	exists, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailExists
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	u := &models.User{
		Username:  username,
		Email:     email,
		Password:  hash,
		CreatedAt: s.now(),
	}

	err = s.users.WithTx(ctx, func(txUsers repository.UserRepo, txCarts repository.CartRepo) error {
		if err := txUsers.Create(ctx, u); err != nil {
			return err
		}
		return txCarts.Create(ctx, &models.Cart{UserID: u.ID})
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("Пользователь зарегистрирован", zap.String("user_id", u.ID.String()))

	return u, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if !s.hasher.Compare(user.Password, password) {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}
