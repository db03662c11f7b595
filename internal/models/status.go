package models

import "fmt"

// ProjectStatus — закрытое перечисление статусов проекта.
// Переходы между статусами не ограничиваются, проверяется только само значение.
type ProjectStatus string

const (
	// StatusPending — проект создан, работа не начата. Значение по умолчанию.
	StatusPending ProjectStatus = "PENDING"
	// StatusProgress — проект в работе.
	StatusProgress ProjectStatus = "PROGRESS"
	// StatusFinished — проект завершён.
	StatusFinished ProjectStatus = "FINISHED"
)

// ParseProjectStatus разбирает строковое значение статуса.
// Неизвестное значение возвращает ошибку, а не панику или молчаливый дефолт.
func ParseProjectStatus(value string) (ProjectStatus, error) {
	switch ProjectStatus(value) {
	case StatusPending, StatusProgress, StatusFinished:
		return ProjectStatus(value), nil
	default:
		return "", fmt.Errorf("unknown project status %q", value)
	}
}
