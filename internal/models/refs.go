package models

import "fmt"

// Ref — навигационная ссылка на связанный ресурс: идентификатор
// и канонический путь его получения. Используется вместо вложения
// полного тела связанной сущности.
type Ref struct {
	ID  int    `json:"id"`
	URL string `json:"url"`
}

// UserURL возвращает канонический путь пользователя.
func UserURL(id int) string {
	return fmt.Sprintf("/api/v1/users/%d", id)
}

// UserProjectsURL возвращает путь списка проектов пользователя.
func UserProjectsURL(id int) string {
	return fmt.Sprintf("/api/v1/users/%d/projects", id)
}

// UserSubscriptionsURL возвращает путь списка подписок пользователя.
func UserSubscriptionsURL(id int) string {
	return fmt.Sprintf("/api/v1/users/%d/subscriptions", id)
}

// ProjectURL возвращает канонический путь проекта.
func ProjectURL(id int) string {
	return fmt.Sprintf("/api/v1/projects/%d", id)
}

// ProjectTasksURL возвращает путь списка задач проекта.
func ProjectTasksURL(id int) string {
	return fmt.Sprintf("/api/v1/projects/%d/tasks", id)
}
