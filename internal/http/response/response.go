// Package response содержит вспомогательные типы и функции для формирования
// JSON‑ответов HTTP‑обработчиков. Успешные ответы отдают сериализованную
// сущность или список на верхнем уровне, ошибки — объект {"error": ...},
// где значение либо строка, либо карта поле → сообщение.
package response

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/workfolio/internal/lib/apperr"
)

// ErrorResponse описывает тело ответа с ошибкой.
// Error содержит строку для общих ошибок или карту поле → сообщение
// для ошибок, привязанных к конкретным полям запроса.
type ErrorResponse struct {
	Error any `json:"error"`
}

// Error возвращает тело ошибки с общим сообщением.
func Error(msg string) ErrorResponse {
	return ErrorResponse{Error: msg}
}

// FieldError возвращает тело ошибки с сообщением, привязанным к полю.
func FieldError(field, msg string) ErrorResponse {
	return ErrorResponse{Error: map[string]string{field: msg}}
}

// ValidationError формирует тело ошибки из нарушений validator:
// карта json-имя поля → человеко‑читаемое сообщение.
func ValidationError(errs validator.ValidationErrors) ErrorResponse {
	fields := make(map[string]string, len(errs))

	for _, err := range errs {
		field := strings.ToLower(err.Field())
		switch err.ActualTag() {
		case "required":
			fields[field] = fmt.Sprintf("Field %s is required", field)
		case "gte":
			fields[field] = fmt.Sprintf("Field %s must be at least %s", field, err.Param())
		default:
			fields[field] = fmt.Sprintf("Field %s is not valid", field)
		}
	}
	return ErrorResponse{Error: fields}
}

// StatusOf возвращает HTTP-статус для ошибки бизнес-логики.
func StatusOf(err error) int {
	switch apperr.KindOf(err) {
	case apperr.KindValidation, apperr.KindDuplicate:
		return http.StatusBadRequest
	case apperr.KindNotFound:
		return http.StatusNotFound
	case apperr.KindUnauthenticated:
		return http.StatusUnauthorized
	case apperr.KindForbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// Body возвращает тело ошибки для ошибки бизнес-логики. Ошибки с привязкой
// к полю отдаются картой, внутренние ошибки наружу не раскрываются.
func Body(err error) ErrorResponse {
	if apperr.KindOf(err) == apperr.KindInternal {
		return Error("internal server error")
	}

	var appErr *apperr.Error
	if errors.As(err, &appErr) && appErr.Field != "" {
		return FieldError(appErr.Field, appErr.Msg)
	}
	return Error(err.Error())
}
