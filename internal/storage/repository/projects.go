package repository

import (
	"context"
	"fmt"

	"github.com/magabrotheeeer/workfolio/internal/lib/apperr"
	"github.com/magabrotheeeer/workfolio/internal/models"
)

const projectColumns = `id, name, description, client, budget, images, animation,
			      status, start_date, end_date, created_at, updated_at, user_id`

func scanProject(row interface{ Scan(dest ...any) error }) (*models.Project, error) {
	p := &models.Project{}
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Client, &p.Budget,
		&p.Images, &p.Animation, &p.Status, &p.StartDate, &p.EndDate,
		&p.CreatedAt, &p.UpdatedAt, &p.UserID)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// CreateProject вставляет новый проект и возвращает его с проставленными
// id и таймстемпами. Нарушение уникальности имени возвращается как Duplicate.
func (s *Storage) CreateProject(ctx context.Context, project models.Project) (*models.Project, error) {
	const op = "storage.CreateProject"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO projects (name, description, client, budget, images,
			      animation, status, start_date, end_date, user_id)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			  RETURNING id, created_at, updated_at`
	if err := s.DB.QueryRowContext(ctx, query,
		project.Name, project.Description, project.Client, project.Budget,
		project.Images, project.Animation, project.Status,
		project.StartDate, project.EndDate, project.UserID).
		Scan(&project.ID, &project.CreatedAt, &project.UpdatedAt); err != nil {
		if translated := translateError(err, nil); translated != err {
			return nil, translated
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &project, nil
}

// GetProject возвращает проект по его id.
func (s *Storage) GetProject(ctx context.Context, id int) (*models.Project, error) {
	const op = "storage.GetProject"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT ` + projectColumns + `
			  FROM projects
			  WHERE id = $1`
	p, err := scanProject(s.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		notFound := apperr.NotFound("Project with id %d not found", id)
		if translated := translateError(err, notFound); translated != err {
			return nil, translated
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return p, nil
}

// ListProjects возвращает список всех проектов.
func (s *Storage) ListProjects(ctx context.Context) ([]*models.Project, error) {
	const op = "storage.ListProjects"
	return s.listProjects(ctx, op,
		`SELECT `+projectColumns+` FROM projects ORDER BY id`)
}

// ListProjectsByUser возвращает все проекты пользователя.
func (s *Storage) ListProjectsByUser(ctx context.Context, userID int) ([]*models.Project, error) {
	const op = "storage.ListProjectsByUser"
	return s.listProjects(ctx, op,
		`SELECT `+projectColumns+` FROM projects WHERE user_id = $1 ORDER BY id`, userID)
}

func (s *Storage) listProjects(ctx context.Context, op, query string, args ...any) ([]*models.Project, error) {
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

	var result []*models.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// ProjectNameTaken проверяет, занято ли имя проекта другой записью.
// excludeID исключает собственную строку при обновлении.
func (s *Storage) ProjectNameTaken(ctx context.Context, name string, excludeID int) (bool, error) {
	const op = "storage.ProjectNameTaken"
	var taken bool
	err := s.DB.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM projects WHERE name = $1 AND id <> $2)`,
		name, excludeID).Scan(&taken)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return taken, nil
}

// ProjectExists проверяет существование проекта по id.
func (s *Storage) ProjectExists(ctx context.Context, id int) (bool, error) {
	const op = "storage.ProjectExists"
	var exists bool
	err := s.DB.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM projects WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return exists, nil
}

// UpdateProject сохраняет объединённую запись проекта и обновляет updated_at.
func (s *Storage) UpdateProject(ctx context.Context, project *models.Project) error {
	const op = "storage.UpdateProject"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE projects
			  SET name = $1, description = $2, client = $3, budget = $4,
			      images = $5, animation = $6, status = $7,
			      start_date = $8, end_date = $9, updated_at = now()
			  WHERE id = $10
			  RETURNING updated_at`
	if err := s.DB.QueryRowContext(ctx, query,
		project.Name, project.Description, project.Client, project.Budget,
		project.Images, project.Animation, project.Status,
		project.StartDate, project.EndDate, project.ID).
		Scan(&project.UpdatedAt); err != nil {
		notFound := apperr.NotFound("Project with id %d not found", project.ID)
		if translated := translateError(err, notFound); translated != err {
			return translated
		}
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// DeleteProject удаляет проект и все его задачи в одной транзакции,
// задачи удаляются раньше проекта.
func (s *Storage) DeleteProject(ctx context.Context, id int) error {
	const op = "storage.DeleteProject"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, `DELETE FROM tasks WHERE project_id = $1`, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if rowsAffected == 0 {
		return apperr.NotFound("Project with id %d not found", id)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
