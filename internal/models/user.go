// Package models содержит доменные структуры четырёх сущностей сервиса
// (User, Project, Task, Subscription), типы для приёма данных из JSON-запросов
// и каноничные JSON-представления с навигационными ссылками.
package models

import "time"

// User представляет зарегистрированного пользователя системы.
// Username и Email уникальны глобально, PasswordHash хранит только bcrypt-хэш.
type User struct {
	ID           int
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// DummyUser используется для приёма данных запроса на регистрацию.
// Форматные правила полей проверяются отдельно пакетом patterns.
type DummyUser struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UpdateUser — структура частичного обновления пользователя.
// nil в поле означает, что поле в запросе отсутствовало и сохраняет прежнее значение.
type UpdateUser struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

// UserView — каноничное JSON-представление пользователя.
// Хэш пароля наружу не отдаётся никогда.
type UserView struct {
	ID               int      `json:"id"`
	Username         string   `json:"username"`
	Email            string   `json:"email"`
	CreatedAt        DateTime `json:"created_at"`
	UpdatedAt        DateTime `json:"updated_at"`
	ProjectsURL      string   `json:"projects_url"`
	SubscriptionsURL string   `json:"subscriptions_url"`
}

// Serialize возвращает каноничное JSON-представление пользователя.
func (u *User) Serialize() UserView {
	return UserView{
		ID:               u.ID,
		Username:         u.Username,
		Email:            u.Email,
		CreatedAt:        DateTime{u.CreatedAt},
		UpdatedAt:        DateTime{u.UpdatedAt},
		ProjectsURL:      UserProjectsURL(u.ID),
		SubscriptionsURL: UserSubscriptionsURL(u.ID),
	}
}

// SerializeUsers сериализует список пользователей.
func SerializeUsers(users []*User) []UserView {
	views := make([]UserView, 0, len(users))
	for _, u := range users {
		views = append(views, u.Serialize())
	}
	return views
}
