// Package crypto содержит криптографические примитивы сервера Aura.
//
// В частности, пакет отвечает за:
//   - хэширование и проверку паролей (bcrypt / argon2id);
//   - генерацию и проверку JWT access-токенов;
//   - настройку параметров токенов (issuer, audience, TTL).
package crypto

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	serr "github.com/kscius/aura-test/internal/shared/errors"
)

// JWTConfig описывает параметры генерации и проверки JWT access-токена.
type JWTConfig struct {
	// Issuer — значение поля iss (кто выдал токен).
	Issuer string
	// Audience — значение поля aud (для кого предназначен токен).
	Audience string
	// SigningKey — секретный ключ для подписи токена (HS256).
	// Должен быть достаточно длинным и случайным.
	SigningKey string
	// TokenTTL — срок жизни access-токена (дефолт — 7 дней).
	TokenTTL time.Duration
}

// Claims — полезная нагрузка access-токена: {id, email}.
//
// Идентичность пользователя дублируется в стандартном Subject,
// но кастомные поля — первичный источник для сервера.
type Claims struct {
	UserID int64  `json:"id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// NewAccessToken создаёт и подписывает JWT access-токен для пользователя.
//
// Токен содержит кастомные claims {id, email} и стандартные
// RegisteredClaims (iss, aud, iat, exp). Используется алгоритм HS256.
func NewAccessToken(userID int64, email string, cfg JWTConfig) (string, error) {
	now := time.Now()

	claims := Claims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    cfg.Issuer,
			Audience:  []string{cfg.Audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(cfg.TokenTTL)),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(cfg.SigningKey))
}

// ParseAccessToken проверяет подпись и claims access-токена.
//
// Любая причина отказа — битая структура, неверная подпись, истёкший срок,
// чужой issuer/audience — схлопывается в одну ошибку serr.ErrInvalidToken:
// снаружи нельзя отличить "просрочен" от "подделан".
func ParseAccessToken(tokenStr string, cfg JWTConfig) (*Claims, error) {
	claims := &Claims{}

	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}))
	_, err := parser.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
		return []byte(cfg.SigningKey), nil
	})
	if err != nil {
		return nil, serr.ErrInvalidToken
	}

	if cfg.Issuer != "" && claims.Issuer != cfg.Issuer {
		return nil, serr.ErrInvalidToken
	}

	if cfg.Audience != "" {
		ok := false
		for _, aud := range claims.Audience {
			if aud == cfg.Audience {
				ok = true
				break
			}
		}
		if !ok {
			return nil, serr.ErrInvalidToken
		}
	}

	if claims.UserID <= 0 || claims.Email == "" {
		return nil, serr.ErrInvalidToken
	}

	return claims, nil
}
