package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Project представляет проект пользователя.
// Name уникально глобально, Budget хранится с двумя знаками после запятой,
// инвариант StartDate <= EndDate проверяется при создании и при каждом обновлении.
type Project struct {
	ID          int
	Name        string
	Description string
	Client      string
	Budget      decimal.Decimal
	Images      int
	Animation   int
	Status      ProjectStatus
	StartDate   time.Time
	EndDate     time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
	UserID      int
}

// DummyProject используется для приёма данных запроса на создание проекта.
// Даты приходят строками и парсятся отдельно, чтобы вернуть ошибку с привязкой к полю.
type DummyProject struct {
	Name        string           `json:"name" validate:"required"`
	Client      string           `json:"client" validate:"required"`
	Description *string          `json:"description"`
	Budget      *decimal.Decimal `json:"budget" validate:"required"`
	Images      *int             `json:"images" validate:"omitempty,gte=0"`
	Animation   *int             `json:"animation" validate:"omitempty,gte=0"`
	Status      *string          `json:"status"`
	StartDate   string           `json:"start_date" validate:"required"`
	EndDate     string           `json:"end_date" validate:"required"`
	UserID      int              `json:"user_id" validate:"required"`
}

// UpdateProject — структура частичного обновления проекта.
// nil в поле означает, что поле в запросе отсутствовало и сохраняет прежнее значение.
type UpdateProject struct {
	Name        *string          `json:"name"`
	Client      *string          `json:"client"`
	Description *string          `json:"description"`
	Budget      *decimal.Decimal `json:"budget"`
	Images      *int             `json:"images"`
	Animation   *int             `json:"animation"`
	Status      *string          `json:"status"`
	StartDate   *string          `json:"start_date"`
	EndDate     *string          `json:"end_date"`
}

// ProjectView — каноничное JSON-представление проекта. Владелец отдаётся
// навигационной ссылкой, список задач — ссылкой tasks_url, без вложения тел.
type ProjectView struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Client      string          `json:"client"`
	Budget      decimal.Decimal `json:"budget"`
	Images      int             `json:"images"`
	Animation   int             `json:"animation"`
	Status      ProjectStatus   `json:"status"`
	StartDate   DateTime        `json:"start_date"`
	EndDate     DateTime        `json:"end_date"`
	CreatedAt   DateTime        `json:"created_at"`
	UpdatedAt   DateTime        `json:"updated_at"`
	User        Ref             `json:"user"`
	TasksURL    string          `json:"tasks_url"`
}

// Serialize возвращает каноничное JSON-представление проекта.
func (p *Project) Serialize() ProjectView {
	return ProjectView{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Client:      p.Client,
		Budget:      p.Budget,
		Images:      p.Images,
		Animation:   p.Animation,
		Status:      p.Status,
		StartDate:   DateTime{p.StartDate},
		EndDate:     DateTime{p.EndDate},
		CreatedAt:   DateTime{p.CreatedAt},
		UpdatedAt:   DateTime{p.UpdatedAt},
		User:        Ref{ID: p.UserID, URL: UserURL(p.UserID)},
		TasksURL:    ProjectTasksURL(p.ID),
	}
}

// SerializeProjects сериализует список проектов.
func SerializeProjects(projects []*Project) []ProjectView {
	views := make([]ProjectView, 0, len(projects))
	for _, p := range projects {
		views = append(views, p.Serialize())
	}
	return views
}
