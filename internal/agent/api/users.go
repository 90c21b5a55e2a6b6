// Методы клиента для работы с профилем и списком пользователей.
package api

// UpdateProfileRequest — частичное обновление профиля.
// nil-поля не отправляются и сервером не трогаются.
type UpdateProfileRequest struct {
	Email     *string `json:"email,omitempty"`
	FirstName *string `json:"firstName,omitempty"`
	LastName  *string `json:"lastName,omitempty"`
}

// userEnvelope — envelope ответа с одним пользователем.
type userEnvelope struct {
	Message string `json:"message"`
	Data    User   `json:"data"`
}

// usersEnvelope — envelope ответа со списком пользователей.
type usersEnvelope struct {
	Message string `json:"message"`
	Data    []User `json:"data"`
}

// Profile запрашивает профиль текущего пользователя.
//
// Метод отправляет GET запрос на /api/users/profile
// и использует accessToken для авторизации.
func (c *Client) Profile(accessToken string) (User, error) {
	var env userEnvelope
	err := c.GetJSON("/api/users/profile", &env, accessToken)
	return env.Data, err
}

// UpdateProfile применяет частичное обновление профиля текущего пользователя.
//
// Метод отправляет PUT запрос на /api/users/profile
// и возвращает обновлённый профиль.
func (c *Client) UpdateProfile(accessToken string, patch UpdateProfileRequest) (User, error) {
	var env userEnvelope
	err := c.PutJSON("/api/users/profile", patch, &env, accessToken)
	return env.Data, err
}

// Users запрашивает список всех пользователей (новые первыми).
//
// Метод отправляет GET запрос на /api/users
// и использует accessToken для авторизации.
func (c *Client) Users(accessToken string) ([]User, error) {
	var env usersEnvelope
	err := c.GetJSON("/api/users", &env, accessToken)
	return env.Data, err
}
