// В этом файле описаны методы клиента для работы
// с эндпоинтами аутентификации: регистрация и вход.
package api

import "time"

// User — пользователь в том виде, в котором его отдаёт API.
// Password hash сервер не сериализует никогда.
type User struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AuthData — полезная нагрузка успешной регистрации/логина.
type AuthData struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// RegisterRequest описывает тело запроса регистрации пользователя.
type RegisterRequest struct {
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Password  string `json:"password"`
}

// LoginRequest описывает тело запроса входа пользователя.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// authEnvelope — envelope успешного ответа auth-эндпоинтов.
type authEnvelope struct {
	Message string   `json:"message"`
	Data    AuthData `json:"data"`
}

// Register выполняет регистрацию пользователя на сервере.
//
// Метод отправляет POST запрос на /api/auth/register и возвращает
// токен с профилем созданного пользователя.
func (c *Client) Register(email, firstName, lastName, password string) (AuthData, error) {
	var env authEnvelope
	err := c.PostJSON("/api/auth/register", RegisterRequest{
		Email:     email,
		FirstName: firstName,
		LastName:  lastName,
		Password:  password,
	}, &env, "")
	return env.Data, err
}

// Login выполняет вход пользователя и получает access-токен.
//
// Метод отправляет POST запрос на /api/auth/login и возвращает
// токен с профилем пользователя.
func (c *Client) Login(email, password string) (AuthData, error) {
	var env authEnvelope
	err := c.PostJSON("/api/auth/login", LoginRequest{
		Email:    email,
		Password: password,
	}, &env, "")
	return env.Data, err
}
