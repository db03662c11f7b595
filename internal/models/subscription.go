package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Subscription представляет подписку пользователя на внешний сервис.
// Инвариант StartDate <= EndDate такой же, как у Project.
type Subscription struct {
	ID        int
	Name      string
	Website   string
	Price     decimal.Decimal
	StartDate time.Time
	EndDate   time.Time
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
	UserID    int
}

// DummySubscription используется для приёма данных запроса на создание подписки.
type DummySubscription struct {
	Name      string           `json:"name" validate:"required"`
	Website   string           `json:"website" validate:"required"`
	Price     *decimal.Decimal `json:"price" validate:"required"`
	StartDate string           `json:"start_date" validate:"required"`
	EndDate   string           `json:"end_date" validate:"required"`
	Active    *bool            `json:"active"`
	UserID    int              `json:"user_id" validate:"required"`
}

// UpdateSubscription — структура частичного обновления подписки.
// nil в поле означает, что поле в запросе отсутствовало и сохраняет прежнее значение.
type UpdateSubscription struct {
	Name      *string          `json:"name"`
	Website   *string          `json:"website"`
	Price     *decimal.Decimal `json:"price"`
	StartDate *string          `json:"start_date"`
	EndDate   *string          `json:"end_date"`
	Active    *bool            `json:"active"`
}

// SubscriptionView — каноничное JSON-представление подписки.
type SubscriptionView struct {
	ID        int             `json:"id"`
	Name      string          `json:"name"`
	Website   string          `json:"website"`
	Price     decimal.Decimal `json:"price"`
	StartDate DateTime        `json:"start_date"`
	EndDate   DateTime        `json:"end_date"`
	Active    bool            `json:"active"`
	CreatedAt DateTime        `json:"created_at"`
	UpdatedAt DateTime        `json:"updated_at"`
	User      Ref             `json:"user"`
}

// Serialize возвращает каноничное JSON-представление подписки.
func (s *Subscription) Serialize() SubscriptionView {
	return SubscriptionView{
		ID:        s.ID,
		Name:      s.Name,
		Website:   s.Website,
		Price:     s.Price,
		StartDate: DateTime{s.StartDate},
		EndDate:   DateTime{s.EndDate},
		Active:    s.Active,
		CreatedAt: DateTime{s.CreatedAt},
		UpdatedAt: DateTime{s.UpdatedAt},
		User:      Ref{ID: s.UserID, URL: UserURL(s.UserID)},
	}
}

// SerializeSubscriptions сериализует список подписок.
func SerializeSubscriptions(subs []*Subscription) []SubscriptionView {
	views := make([]SubscriptionView, 0, len(subs))
	for _, s := range subs {
		views = append(views, s.Serialize())
	}
	return views
}
