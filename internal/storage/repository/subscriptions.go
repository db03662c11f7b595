package repository

import (
	"context"
	"fmt"

	"github.com/magabrotheeeer/workfolio/internal/lib/apperr"
	"github.com/magabrotheeeer/workfolio/internal/models"
)

const subscriptionColumns = `id, name, website, price, start_date, end_date,
			      active, created_at, updated_at, user_id`

func scanSubscription(row interface{ Scan(dest ...any) error }) (*models.Subscription, error) {
	sub := &models.Subscription{}
	err := row.Scan(&sub.ID, &sub.Name, &sub.Website, &sub.Price,
		&sub.StartDate, &sub.EndDate, &sub.Active,
		&sub.CreatedAt, &sub.UpdatedAt, &sub.UserID)
	if err != nil {
		return nil, err
	}
	return sub, nil
}

// CreateSubscription вставляет новую подписку и возвращает её
// с проставленными id и таймстемпами.
func (s *Storage) CreateSubscription(ctx context.Context, sub models.Subscription) (*models.Subscription, error) {
	const op = "storage.CreateSubscription"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO subscriptions (name, website, price, start_date, end_date, active, user_id)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)
			  RETURNING id, created_at, updated_at`
	if err := s.DB.QueryRowContext(ctx, query,
		sub.Name, sub.Website, sub.Price, sub.StartDate, sub.EndDate,
		sub.Active, sub.UserID).
		Scan(&sub.ID, &sub.CreatedAt, &sub.UpdatedAt); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &sub, nil
}

// GetSubscription возвращает подписку по её id.
func (s *Storage) GetSubscription(ctx context.Context, id int) (*models.Subscription, error) {
	const op = "storage.GetSubscription"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT ` + subscriptionColumns + `
			  FROM subscriptions
			  WHERE id = $1`
	sub, err := scanSubscription(s.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		notFound := apperr.NotFound("Subscription with id %d not found", id)
		if translated := translateError(err, notFound); translated != err {
			return nil, translated
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return sub, nil
}

// ListSubscriptions возвращает список всех подписок.
func (s *Storage) ListSubscriptions(ctx context.Context) ([]*models.Subscription, error) {
	const op = "storage.ListSubscriptions"
	return s.listSubscriptions(ctx, op,
		`SELECT `+subscriptionColumns+` FROM subscriptions ORDER BY id`)
}

// ListSubscriptionsByUser возвращает все подписки пользователя.
func (s *Storage) ListSubscriptionsByUser(ctx context.Context, userID int) ([]*models.Subscription, error) {
	const op = "storage.ListSubscriptionsByUser"
	return s.listSubscriptions(ctx, op,
		`SELECT `+subscriptionColumns+` FROM subscriptions WHERE user_id = $1 ORDER BY id`, userID)
}

func (s *Storage) listSubscriptions(ctx context.Context, op, query string, args ...any) ([]*models.Subscription, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Subscription
	for rows.Next() {
		sub, err := scanSubscription(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, sub)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// UpdateSubscription сохраняет объединённую запись подписки и обновляет updated_at.
func (s *Storage) UpdateSubscription(ctx context.Context, sub *models.Subscription) error {
	const op = "storage.UpdateSubscription"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE subscriptions
			  SET name = $1, website = $2, price = $3, start_date = $4,
			      end_date = $5, active = $6, updated_at = now()
			  WHERE id = $7
			  RETURNING updated_at`
	if err := s.DB.QueryRowContext(ctx, query,
		sub.Name, sub.Website, sub.Price, sub.StartDate, sub.EndDate,
		sub.Active, sub.ID).
		Scan(&sub.UpdatedAt); err != nil {
		notFound := apperr.NotFound("Subscription with id %d not found", sub.ID)
		if translated := translateError(err, notFound); translated != err {
			return translated
		}
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// DeleteSubscription удаляет подписку по id.
func (s *Storage) DeleteSubscription(ctx context.Context, id int) error {
	const op = "storage.DeleteSubscription"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	result, err := s.DB.ExecContext(ctx, `DELETE FROM subscriptions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if rowsAffected == 0 {
		return apperr.NotFound("Subscription with id %d not found", id)
	}
	return nil
}
