package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/kscius/aura-test/internal/server/config"
	"github.com/kscius/aura-test/internal/server/middleware"
)

// HealthResponse — ответ liveness-эндпоинта.
type HealthResponse struct {
	Status    string    `json:"status"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// NewRouter создаёт и настраивает HTTP-роутер сервера.
//
// Роутер использует chi.Router и регистрирует:
//   - middleware логирования и CORS для всех запросов;
//   - /health и swagger UI;
//   - публичные эндпоинты аутентификации под /api/auth;
//   - группу защищённых JWT эндпоинтов под /api/users;
//   - JSON-ответ 404 для неизвестных маршрутов.
func NewRouter(h *Handler, corsCfg config.CORSConfig) http.Handler {
	r := chi.NewRouter()
	// логирование всех запросов
	r.Use(middleware.LoggerMiddleware(h.Log))
	// CORS для браузерного SPA-клиента
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   corsCfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           corsCfg.MaxAge,
	}))

	r.Get("/health", h.Health)
	// добавляем swagger
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	// Публичные пути
	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/register", h.Register)
		r.Post("/login", h.Login)
	})
	// Защищённые пути
	r.Route("/api/users", func(r chi.Router) {
		// проверка access токена
		r.Use(h.Verifier.AuthMiddleware())
		r.Get("/profile", h.GetProfile)
		r.Put("/profile", h.UpdateProfile)
		r.Get("/", h.ListUsers)
	})

	// неизвестные маршруты тоже отвечают JSON envelope
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(ContentType, JsonContentType)
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(ErrorResponse{
			Error:   "NotFoundError",
			Message: "Route not found",
			Details: struct{}{},
		})
	})

	return r
}

// Health — liveness-проверка API.
//
// @Summary      Health check
// @Description  Reports that the API is up.
// @Tags         health
// @Produce      json
// @Success      200 {object} HealthResponse
// @Router       /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set(ContentType, JsonContentType)
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(HealthResponse{
		Status:    "ok",
		Message:   "AURA API is running",
		Timestamp: time.Now().UTC(),
	})
}
