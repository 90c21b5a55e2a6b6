// Package middleware содержит HTTP middleware сервера.
package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/kscius/aura-test/internal/server/crypto"
	serr "github.com/kscius/aura-test/internal/shared/errors"
)

// ctxKey используется как тип ключа для хранения значений в context.Context.
// Отдельный тип предотвращает коллизии ключей между пакетами.
type ctxKey string

// identityKey — ключ контекста, под которым хранится идентичность
// аутентифицированного пользователя.
const identityKey ctxKey = "identity"

// Identity — проверенная идентичность вызывающего: claims {id, email}
// из валидного access-токена.
type Identity struct {
	UserID int64
	Email  string
}

// JWTVerifier инкапсулирует параметры проверки JWT access-токенов.
//
// Используется в HTTP middleware для:
//   - проверки подписи токена и срока действия
//   - валидации issuer и audience
//   - извлечения идентичности {id, email} из claims
type JWTVerifier struct {
	cfg crypto.JWTConfig
}

// NewJWTVerifier создаёт новый JWTVerifier с заданными параметрами.
func NewJWTVerifier(signingKey, issuer, audience string) *JWTVerifier {
	return &JWTVerifier{cfg: crypto.JWTConfig{
		SigningKey: signingKey,
		Issuer:     issuer,
		Audience:   audience,
	}}
}

// IdentityFromContext извлекает идентичность аутентифицированного
// пользователя из контекста.
//
// Возвращает:
//   - идентичность
//   - false, если пользователь не аутентифицирован
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	v := ctx.Value(identityKey)
	id, ok := v.(Identity)
	return id, ok
}

// WithIdentity кладёт идентичность пользователя в контекст.
// Используется самим middleware и тестами хендлеров.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

// AuthMiddleware возвращает HTTP middleware для проверки JWT access-токенов.
//
// Middleware:
//   - ожидает заголовок Authorization: Bearer <token>
//   - валидирует подпись и claims токена
//   - сохраняет Identity{id, email} в context.Context
//
// Любой отказ — отсутствующий заголовок, битый/просроченный токен —
// возвращает HTTP 401 с envelope {error: UnauthorizedError, message}.
func (v *JWTVerifier) AuthMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr := ExtractBearer(r.Header.Get("Authorization"))
			if tokenStr == "" {
				writeUnauthorized(w, serr.ErrNoToken)
				return
			}

			claims, err := crypto.ParseAccessToken(tokenStr, v.cfg)
			if err != nil {
				writeUnauthorized(w, serr.ErrInvalidToken)
				return
			}

			ctx := WithIdentity(r.Context(), Identity{
				UserID: claims.UserID,
				Email:  claims.Email,
			})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ExtractBearer извлекает JWT из заголовка Authorization.
//
// Ожидаемый формат:
//
//	Authorization: Bearer <token>
//
// Возвращает пустую строку, если формат некорректен.
func ExtractBearer(h string) string {
	h = strings.TrimSpace(h)
	if h == "" {
		return ""
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// unauthorizedResponse — envelope 401 ответа guard'а.
// Дублирует формат api.ErrorResponse, но без details:
// api импортирует middleware, поэтому обратной зависимости быть не может.
type unauthorizedResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func writeUnauthorized(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(unauthorizedResponse{
		Error:   "UnauthorizedError",
		Message: err.Error(),
	})
}
