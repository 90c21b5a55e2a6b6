package service

import (
	"context"
	"errors"

	"github.com/kscius/aura-test/internal/server/config"
	"github.com/kscius/aura-test/internal/server/crypto"
	"github.com/kscius/aura-test/internal/server/models"
	serr "github.com/kscius/aura-test/internal/shared/errors"
)

// AuthService реализует бизнес-логику аутентификации.
//
// Ответственность:
//   - регистрация пользователей (проверка уникальности email, хэширование,
//     сохранение, выпуск токена)
//   - аутентификация (логин) с выпуском access-токена
//
// Валидация формата входных данных выполняется до сервиса (пакет validation);
// здесь остаются только бизнес-правила.
type AuthService struct {
	users UsersRepo

	pass crypto.PasswordParams
	jwt  crypto.JWTConfig
}

// NewAuthService создаёт AuthService с зависимостями и настройками из конфига.
func NewAuthService(users UsersRepo, cfg *config.Config) *AuthService {
	return &AuthService{
		users: users,

		pass: crypto.PasswordParams{
			Hasher:     cfg.Password.Hasher,
			BcryptCost: cfg.Password.Bcrypt.Cost,
			Argon2: crypto.Argon2Params{
				Time:      cfg.Password.Argon2.Time,
				MemoryKiB: cfg.Password.Argon2.MemoryKiB,
				Threads:   cfg.Password.Argon2.Threads,
				KeyLen:    cfg.Password.Argon2.KeyLen,
				SaltLen:   cfg.Password.Argon2.SaltLen,
			},
		},
		jwt: crypto.JWTConfig{
			Issuer:     cfg.Auth.Issuer,
			Audience:   cfg.Auth.Audience,
			SigningKey: cfg.Auth.JWT.SigningKey,
			TokenTTL:   cfg.Auth.TokenTTL,
		},
	}
}

// Register регистрирует нового пользователя и сразу логинит его.
//
// Поведение:
//   - email проверяется на занятость до вставки, чтобы отдать понятную
//     ошибку; уникальный индекс в базе остаётся страховкой от гонки,
//     и его срабатывание тоже возвращается как ErrEmailTaken
//   - пароль хэшируется до сохранения, в открытом виде не хранится
//
// Возвращает access-токен и созданного пользователя.
//
// Ошибки:
//   - ErrEmailTaken, если email уже зарегистрирован
func (s *AuthService) Register(ctx context.Context, email, firstName, lastName, password string) (string, models.User, error) {
	_, err := s.users.GetByEmail(ctx, email)
	if err == nil {
		return "", models.User{}, serr.ErrEmailTaken
	}
	if !errors.Is(err, serr.ErrNotFound) {
		return "", models.User{}, err
	}

	hash, err := crypto.HashPassword(password, s.pass)
	if err != nil {
		return "", models.User{}, serr.ErrInternal
	}

	// гонка двух одновременных регистраций ловится уникальным индексом:
	// repository вернёт ErrEmailTaken и он уйдёт наружу как обычный дубликат
	user, err := s.users.Create(ctx, email, firstName, lastName, hash)
	if err != nil {
		return "", models.User{}, err
	}

	token, err := crypto.NewAccessToken(user.ID, user.Email, s.jwt)
	if err != nil {
		return "", models.User{}, serr.ErrInternal
	}

	return token, user, nil
}

// Login аутентифицирует пользователя и выдаёт свежий access-токен.
//
// Поведение:
//   - не раскрывает факт существования email: "нет такого пользователя"
//     и "неверный пароль" возвращают один и тот же ErrInvalidCredentials
//
// Ошибки:
//   - ErrInvalidCredentials
func (s *AuthService) Login(ctx context.Context, email, password string) (string, models.User, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		// не палим существование email
		if errors.Is(err, serr.ErrNotFound) {
			return "", models.User{}, serr.ErrInvalidCredentials
		}
		return "", models.User{}, err
	}

	ok, err := crypto.VerifyPassword(password, user.PasswordHash)
	if err != nil {
		return "", models.User{}, serr.ErrInternal
	}
	if !ok {
		return "", models.User{}, serr.ErrInvalidCredentials
	}

	token, err := crypto.NewAccessToken(user.ID, user.Email, s.jwt)
	if err != nil {
		return "", models.User{}, serr.ErrInternal
	}

	return token, user, nil
}
