// Package apperr определяет единую классификацию доменных ошибок сервиса.
//
// Каждая ошибка несёт вид (Kind), по которому HTTP-слой подбирает статус ответа,
// и опционально имя поля запроса, к которому ошибка относится. Ошибки с полем
// сериализуются клиенту в виде map {"field": "reason"}, остальные как плоский текст.
package apperr

import (
	"errors"
	"fmt"
)

// Kind описывает вид доменной ошибки.
type Kind int

const (
	// KindInternal — неожиданная ошибка хранилища или иного слоя, клиенту
	// уходит обезличенное сообщение, подробности остаются в логах.
	KindInternal Kind = iota
	// KindValidation — некорректное, отсутствующее или неприводимое значение поля.
	KindValidation
	// KindDuplicate — нарушение уникальности (username, email, имя проекта).
	KindDuplicate
	// KindNotFound — запрошенная или связанная сущность не существует.
	KindNotFound
	// KindUnauthenticated — отсутствует или не прошёл проверку токен либо учётные данные.
	KindUnauthenticated
	// KindForbidden — пользователь аутентифицирован, но не владеет ресурсом.
	KindForbidden
)

// Error — доменная ошибка с видом и необязательной привязкой к полю запроса.
type Error struct {
	Kind  Kind
	Field string // пустое значение означает ошибку без привязки к полю
	Msg   string
}

func (e *Error) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Msg)
	}
	return e.Msg
}

// Validation возвращает ошибку валидации, привязанную к полю.
func Validation(field, msg string) *Error {
	return &Error{Kind: KindValidation, Field: field, Msg: msg}
}

// Duplicate возвращает ошибку нарушения уникальности, привязанную к полю.
func Duplicate(field, msg string) *Error {
	return &Error{Kind: KindDuplicate, Field: field, Msg: msg}
}

// NotFound возвращает ошибку отсутствия сущности с готовым текстом для клиента.
func NotFound(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Msg: fmt.Sprintf(format, args...)}
}

// Unauthenticated возвращает ошибку аутентификации с плоским сообщением.
func Unauthenticated(msg string) *Error {
	return &Error{Kind: KindUnauthenticated, Msg: msg}
}

// UnauthenticatedField возвращает ошибку аутентификации, привязанную к полю,
// например неверный пароль при логине.
func UnauthenticatedField(field, msg string) *Error {
	return &Error{Kind: KindUnauthenticated, Field: field, Msg: msg}
}

// Forbidden возвращает ошибку доступа для чужого ресурса.
func Forbidden(msg string) *Error {
	return &Error{Kind: KindForbidden, Msg: msg}
}

// KindOf извлекает вид доменной ошибки из цепочки. Для ошибок, не созданных
// этим пакетом, возвращает KindInternal.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// FieldOf возвращает имя поля, к которому привязана ошибка, либо пустую строку.
func FieldOf(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Field
	}
	return ""
}
