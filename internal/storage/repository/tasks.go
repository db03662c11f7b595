package repository

import (
	"context"
	"fmt"

	"github.com/magabrotheeeer/workfolio/internal/lib/apperr"
	"github.com/magabrotheeeer/workfolio/internal/models"
)

// CreateTask вставляет новую задачу и возвращает её с проставленным id.
func (s *Storage) CreateTask(ctx context.Context, task models.Task) (*models.Task, error) {
	const op = "storage.CreateTask"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO tasks (title, description, completed, project_id)
			  VALUES ($1, $2, $3, $4)
			  RETURNING id`
	if err := s.DB.QueryRowContext(ctx, query,
		task.Title, task.Description, task.Completed, task.ProjectID).
		Scan(&task.ID); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &task, nil
}

// GetTask возвращает задачу по её id.
func (s *Storage) GetTask(ctx context.Context, id int) (*models.Task, error) {
	const op = "storage.GetTask"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, title, description, completed, project_id
			  FROM tasks
			  WHERE id = $1`
	t := &models.Task{}
	row := s.DB.QueryRowContext(ctx, query, id)
	if err := row.Scan(&t.ID, &t.Title, &t.Description, &t.Completed, &t.ProjectID); err != nil {
		notFound := apperr.NotFound("Task with id %d not found", id)
		if translated := translateError(err, notFound); translated != err {
			return nil, translated
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return t, nil
}

// ListTasks возвращает список всех задач.
func (s *Storage) ListTasks(ctx context.Context) ([]*models.Task, error) {
	const op = "storage.ListTasks"
	return s.listTasks(ctx, op,
		`SELECT id, title, description, completed, project_id FROM tasks ORDER BY id`)
}

// ListTasksByProject возвращает все задачи проекта.
func (s *Storage) ListTasksByProject(ctx context.Context, projectID int) ([]*models.Task, error) {
	const op = "storage.ListTasksByProject"
	return s.listTasks(ctx, op,
		`SELECT id, title, description, completed, project_id FROM tasks WHERE project_id = $1 ORDER BY id`,
		projectID)
}

func (s *Storage) listTasks(ctx context.Context, op, query string, args ...any) ([]*models.Task, error) {
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

	var result []*models.Task
	for rows.Next() {
		var t models.Task
		if err := rows.Scan(&t.ID, &t.Title, &t.Description, &t.Completed, &t.ProjectID); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// UpdateTask сохраняет объединённую запись задачи.
func (s *Storage) UpdateTask(ctx context.Context, task *models.Task) error {
	const op = "storage.UpdateTask"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE tasks
			  SET title = $1, description = $2, completed = $3
			  WHERE id = $4`
	result, err := s.DB.ExecContext(ctx, query,
		task.Title, task.Description, task.Completed, task.ID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if rowsAffected == 0 {
		return apperr.NotFound("Task with id %d not found", task.ID)
	}
	return nil
}

// DeleteTask удаляет задачу по id.
func (s *Storage) DeleteTask(ctx context.Context, id int) error {
	const op = "storage.DeleteTask"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	result, err := s.DB.ExecContext(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if rowsAffected == 0 {
		return apperr.NotFound("Task with id %d not found", id)
	}
	return nil
}
