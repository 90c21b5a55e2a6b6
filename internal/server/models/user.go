// Серверная модель пользователя
package models

import "time"

// User — единственная персистентная сущность приложения.
//
// PasswordHash никогда не сериализуется наружу (json:"-"),
// поэтому User можно отдавать в ответах API как есть.
type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// ProfilePatch — частичное обновление профиля.
//
// Поля — указатели, чтобы отличать "поле не передано" от пустой строки.
// Отсутствующие поля при обновлении не трогаются.
type ProfilePatch struct {
	Email     *string `json:"email,omitempty"`
	FirstName *string `json:"firstName,omitempty"`
	LastName  *string `json:"lastName,omitempty"`
}

// Empty сообщает, что в patch не передано ни одного поля.
func (p ProfilePatch) Empty() bool {
	return p.Email == nil && p.FirstName == nil && p.LastName == nil
}
