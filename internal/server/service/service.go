// Package service содержит бизнес-логику приложения Aura.
// Это прослойка между HTTP-обработчиками (api) и хранилищем данных (repository).
package service

import (
	"context"

	"github.com/kscius/aura-test/internal/server/config"
	"github.com/kscius/aura-test/internal/server/models"
)

// Repositories — набор интерфейсов, которые сервисный слой ожидает от слоя repository.
type Repositories struct {
	Users UsersRepo
}

// Services — агрегатор всех сервисов приложения.
type Services struct {
	Auth  *AuthService
	Users *UsersService
}

// NewServices собирает все сервисы приложения.
// cfg нужен AuthService (параметры хэширования пароля и JWT).
func NewServices(repos Repositories, cfg *config.Config) *Services {
	return &Services{
		Auth:  NewAuthService(repos.Users, cfg),
		Users: NewUsersService(repos.Users),
	}
}

//go:generate mockgen -destination=mocks/mocks.go -package=mocks github.com/kscius/aura-test/internal/server/service UsersRepo

// UsersRepo — репозиторий пользователей.
type UsersRepo interface {
	Create(ctx context.Context, email, firstName, lastName, passwordHash string) (models.User, error)
	GetByEmail(ctx context.Context, email string) (models.User, error)
	GetByID(ctx context.Context, id int64) (models.User, error)
	Update(ctx context.Context, user models.User) (models.User, error)
	List(ctx context.Context) ([]models.User, error)
}
