// Package validation содержит чистые функции валидации входных данных API.
//
// Валидаторы не бросают ошибок и не ходят в базу: каждый возвращает
// список замечаний по полям ([]Issue). Пустой список означает,
// что данные валидны. Тексты сообщений — часть публичного контракта API.
package validation

import "regexp"

// Issue — одно замечание валидации по конкретному полю.
type Issue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

const (
	// максимальная длина имени/фамилии
	maxNameLen = 100
	// минимальная длина пароля при регистрации
	minPasswordLen = 6
)

var emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// ValidateRegister проверяет входные данные регистрации.
//
// Правила:
//   - email синтаксически валиден;
//   - firstName/lastName непустые и не длиннее 100 символов;
//   - password не короче 6 символов.
func ValidateRegister(email, firstName, lastName, password string) []Issue {
	var issues []Issue

	if !emailRe.MatchString(email) {
		issues = append(issues, Issue{Field: "email", Message: "Invalid email format"})
	}
	issues = append(issues, checkName("firstName", "First name", firstName)...)
	issues = append(issues, checkName("lastName", "Last name", lastName)...)
	if len(password) < minPasswordLen {
		issues = append(issues, Issue{Field: "password", Message: "Password must be at least 6 characters"})
	}

	return issues
}

// ValidateLogin проверяет входные данные логина.
//
// Пароль здесь проверяется только на непустоту: нижняя граница длины
// применяется при регистрации, а на входе она бы только подсказывала
// атакующему формат существующих паролей.
func ValidateLogin(email, password string) []Issue {
	var issues []Issue

	if !emailRe.MatchString(email) {
		issues = append(issues, Issue{Field: "email", Message: "Invalid email format"})
	}
	if password == "" {
		issues = append(issues, Issue{Field: "password", Message: "Password is required"})
	}

	return issues
}

// ProfilePatchInput — поля частичного обновления профиля.
//
// nil означает "поле не передано" и не валидируется.
type ProfilePatchInput struct {
	Email     *string
	FirstName *string
	LastName  *string
}

// ValidateProfilePatch проверяет частичное обновление профиля.
//
// Каждое присутствующее поле валидируется независимо по правилам
// регистрации. Пустой patch — отдельное именованное правило:
// обновление без единого поля отклоняется ещё до сервиса.
func ValidateProfilePatch(patch ProfilePatchInput) []Issue {
	if patch.Email == nil && patch.FirstName == nil && patch.LastName == nil {
		return []Issue{{Field: "", Message: "At least one field must be provided"}}
	}

	var issues []Issue

	if patch.Email != nil && !emailRe.MatchString(*patch.Email) {
		issues = append(issues, Issue{Field: "email", Message: "Invalid email format"})
	}
	if patch.FirstName != nil {
		issues = append(issues, checkName("firstName", "First name", *patch.FirstName)...)
	}
	if patch.LastName != nil {
		issues = append(issues, checkName("lastName", "Last name", *patch.LastName)...)
	}

	return issues
}

// checkName проверяет имя/фамилию: непустое и не длиннее maxNameLen.
func checkName(field, label, value string) []Issue {
	if value == "" {
		return []Issue{{Field: field, Message: label + " is required"}}
	}
	if len([]rune(value)) > maxNameLen {
		return []Issue{{Field: field, Message: label + " must be at most 100 characters"}}
	}
	return nil
}
