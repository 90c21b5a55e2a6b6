package service

import (
	"context"
	"errors"

	"github.com/kscius/aura-test/internal/server/models"
	serr "github.com/kscius/aura-test/internal/shared/errors"
)

// UsersService реализует бизнес-логику работы с профилями пользователей.
//
// Ответственность:
//   - чтение профиля
//   - частичное обновление профиля (patch)
//   - список всех пользователей
type UsersService struct {
	users UsersRepo
}

// NewUsersService создаёт UsersService поверх репозитория пользователей.
func NewUsersService(users UsersRepo) *UsersService {
	return &UsersService{users: users}
}

// GetProfile возвращает профиль пользователя по ID.
//
// Ошибки:
//   - ErrNotFound, если пользователя нет
func (s *UsersService) GetProfile(ctx context.Context, userID int64) (models.User, error) {
	return s.users.GetByID(ctx, userID)
}

// UpdateProfile применяет частичное обновление профиля.
//
// Поведение:
//   - применяются только присутствующие поля patch, отсутствующие не трогаются
//   - если patch меняет email на чужой занятый — ErrEmailTaken;
//     смена email на собственный текущий дубликатом не считается
//
// Ошибки:
//   - ErrNotFound
//   - ErrEmailTaken
func (s *UsersService) UpdateProfile(ctx context.Context, userID int64, patch models.ProfilePatch) (models.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return models.User{}, err
	}

	if patch.Email != nil && *patch.Email != user.Email {
		_, err := s.users.GetByEmail(ctx, *patch.Email)
		if err == nil {
			return models.User{}, serr.ErrEmailTaken
		}
		if !errors.Is(err, serr.ErrNotFound) {
			return models.User{}, err
		}
	}

	if patch.Email != nil {
		user.Email = *patch.Email
	}
	if patch.FirstName != nil {
		user.FirstName = *patch.FirstName
	}
	if patch.LastName != nil {
		user.LastName = *patch.LastName
	}

	return s.users.Update(ctx, user)
}

// ListUsers возвращает всех пользователей, новые первыми.
// Пагинации нет — полный скан.
func (s *UsersService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.users.List(ctx)
}
