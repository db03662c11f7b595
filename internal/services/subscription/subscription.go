// Package subscription содержит бизнес-логику подписок пользователя:
// создание с проверкой владельца и инварианта дат, частичное обновление,
// удаление с возвратом оставшегося списка.
package subscription

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/magabrotheeeer/workfolio/internal/lib/apperr"
	"github.com/magabrotheeeer/workfolio/internal/models"
)

// Repository описывает контракт хранилища для подписок.
type Repository interface {
	CreateSubscription(ctx context.Context, sub models.Subscription) (*models.Subscription, error)
	GetSubscription(ctx context.Context, id int) (*models.Subscription, error)
	ListSubscriptions(ctx context.Context) ([]*models.Subscription, error)
	UserExists(ctx context.Context, id int) (bool, error)
	UpdateSubscription(ctx context.Context, sub *models.Subscription) error
	DeleteSubscription(ctx context.Context, id int) error
}

// Service реализует операции над подписками.
type Service struct {
	repo Repository
}

// New создает новый экземпляр Service.
func New(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create создает новую подписку. Владелец обязан существовать,
// инвариант start_date <= end_date проверяется до записи.
func (s *Service) Create(ctx context.Context, req models.DummySubscription) (*models.Subscription, error) {
	exists, err := s.repo.UserExists(ctx, req.UserID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperr.NotFound("User with id %d does not exist", req.UserID)
	}

	startDate, endDate, err := parseDatePair(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	price, err := coerceAmount("price", *req.Price)
	if err != nil {
		return nil, err
	}

	sub := models.Subscription{
		Name:      strings.TrimSpace(req.Name),
		Website:   strings.TrimSpace(req.Website),
		Price:     price,
		StartDate: startDate,
		EndDate:   endDate,
		UserID:    req.UserID,
	}
	if req.Active != nil {
		sub.Active = *req.Active
	}

	return s.repo.CreateSubscription(ctx, sub)
}

// List возвращает все подписки.
func (s *Service) List(ctx context.Context) ([]*models.Subscription, error) {
	return s.repo.ListSubscriptions(ctx)
}

// Get возвращает подписку по id.
func (s *Service) Get(ctx context.Context, id int) (*models.Subscription, error) {
	return s.repo.GetSubscription(ctx, id)
}

// Update частично обновляет подписку. Мутация разрешена только владельцу.
// Инвариант дат перепроверяется по объединённой паре после слияния.
func (s *Service) Update(ctx context.Context, id int, req models.UpdateSubscription, actorID int) (*models.Subscription, error) {
	sub, err := s.repo.GetSubscription(ctx, id)
	if err != nil {
		return nil, err
	}
	if sub.UserID != actorID {
		return nil, apperr.Forbidden("You can only update your own subscriptions")
	}

	if req.Name != nil && strings.TrimSpace(*req.Name) != "" {
		sub.Name = strings.TrimSpace(*req.Name)
	}
	if req.Website != nil && strings.TrimSpace(*req.Website) != "" {
		sub.Website = strings.TrimSpace(*req.Website)
	}
	if req.Price != nil {
		price, err := coerceAmount("price", *req.Price)
		if err != nil {
			return nil, err
		}
		sub.Price = price
	}
	if req.Active != nil {
		sub.Active = *req.Active
	}
	if req.StartDate != nil {
		startDate, err := models.ParseDateTime(*req.StartDate)
		if err != nil {
			return nil, apperr.Validation("start_date", err.Error())
		}
		sub.StartDate = startDate
	}
	if req.EndDate != nil {
		endDate, err := models.ParseDateTime(*req.EndDate)
		if err != nil {
			return nil, apperr.Validation("end_date", err.Error())
		}
		sub.EndDate = endDate
	}

	if sub.EndDate.Before(sub.StartDate) {
		return nil, apperr.Validation("end_date", "End date must be after start date")
	}

	if err := s.repo.UpdateSubscription(ctx, sub); err != nil {
		return nil, err
	}
	return sub, nil
}

// Delete удаляет подписку и возвращает оставшийся список подписок владельца.
func (s *Service) Delete(ctx context.Context, id int, actorID int) ([]*models.Subscription, error) {
	sub, err := s.repo.GetSubscription(ctx, id)
	if err != nil {
		return nil, err
	}
	if sub.UserID != actorID {
		return nil, apperr.Forbidden("You can only delete your own subscriptions")
	}

	if err := s.repo.DeleteSubscription(ctx, id); err != nil {
		return nil, err
	}
	return s.repo.ListSubscriptions(ctx)
}

func parseDatePair(start, end string) (time.Time, time.Time, error) {
	startDate, err := models.ParseDateTime(start)
	if err != nil {
		return time.Time{}, time.Time{}, apperr.Validation("start_date", err.Error())
	}
	endDate, err := models.ParseDateTime(end)
	if err != nil {
		return time.Time{}, time.Time{}, apperr.Validation("end_date", err.Error())
	}
	if endDate.Before(startDate) {
		return time.Time{}, time.Time{}, apperr.Validation("end_date", "End date must be after start date")
	}
	return startDate, endDate, nil
}

func coerceAmount(field string, value decimal.Decimal) (decimal.Decimal, error) {
	if value.IsNegative() {
		return decimal.Decimal{}, apperr.Validation(field, "must be a non-negative number")
	}
	return value.Round(2), nil
}
