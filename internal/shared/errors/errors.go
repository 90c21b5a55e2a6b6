// Package errors содержит общие доменные ошибки приложения.
//
// Эти ошибки используются в service и repository слоях
// и маппятся на HTTP-статусы и envelope в api слое.
//
// Тексты ошибок — это публичные сообщения API, менять их нельзя
// без изменения контракта (в частности, ErrInvalidCredentials обязан
// быть одинаковым для "нет такого пользователя" и "неверный пароль").
package errors

import "errors"

var (
	// Полученные JSON данные с ошибками
	ErrBadJSON = errors.New("Invalid JSON body")
	// Email уже занят другим пользователем
	ErrEmailTaken = errors.New("Email already in use")
	// Неверные учётные данные (одинаковая ошибка для несуществующего
	// email и неверного пароля — anti-enumeration)
	ErrInvalidCredentials = errors.New("Invalid email or password")
	// Пользователь не найден
	ErrNotFound = errors.New("User not found")
	// Токен отсутствует в заголовке Authorization
	ErrNoToken = errors.New("No token provided")
	// Токен битый, с неверной подписью или просроченный —
	// снаружи эти случаи не различаются
	ErrInvalidToken = errors.New("Invalid or expired token")
	// Получена непредвиденная ошибка
	ErrInternal = errors.New("An unexpected error occurred")
)
