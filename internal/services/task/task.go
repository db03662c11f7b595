// Package task содержит бизнес-логику задач. Права на мутацию задачи
// определяются через владельца родительского проекта.
package task

import (
	"context"
	"strings"

	"github.com/magabrotheeeer/workfolio/internal/lib/apperr"
	"github.com/magabrotheeeer/workfolio/internal/models"
)

// Repository описывает контракт хранилища для задач.
type Repository interface {
	CreateTask(ctx context.Context, task models.Task) (*models.Task, error)
	GetTask(ctx context.Context, id int) (*models.Task, error)
	ListTasks(ctx context.Context) ([]*models.Task, error)
	UpdateTask(ctx context.Context, task *models.Task) error
	DeleteTask(ctx context.Context, id int) error
	GetProject(ctx context.Context, id int) (*models.Project, error)
	ListTasksByProject(ctx context.Context, projectID int) ([]*models.Task, error)
}

// Service реализует операции над задачами.
type Service struct {
	repo Repository
}

// New создает новый экземпляр Service.
func New(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create создает новую задачу. Родительский проект обязан существовать.
func (s *Service) Create(ctx context.Context, req models.DummyTask) (*models.Task, error) {
	if _, err := s.repo.GetProject(ctx, req.ProjectID); err != nil {
		return nil, err
	}

	task := models.Task{
		Title:     strings.TrimSpace(req.Title),
		ProjectID: req.ProjectID,
	}
	if req.Description != nil {
		task.Description = strings.TrimSpace(*req.Description)
	}
	if req.Completed != nil {
		task.Completed = *req.Completed
	}

	return s.repo.CreateTask(ctx, task)
}

// List возвращает все задачи.
func (s *Service) List(ctx context.Context) ([]*models.Task, error) {
	return s.repo.ListTasks(ctx)
}

// Get возвращает задачу по id.
func (s *Service) Get(ctx context.Context, id int) (*models.Task, error) {
	return s.repo.GetTask(ctx, id)
}

// Update частично обновляет задачу после проверки, что вызывающий
// владеет родительским проектом.
func (s *Service) Update(ctx context.Context, id int, req models.UpdateTask, actorID int) (*models.Task, error) {
	task, err := s.repo.GetTask(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.authorize(ctx, task, actorID, "You can only update tasks in your own projects"); err != nil {
		return nil, err
	}

	if req.Title != nil && strings.TrimSpace(*req.Title) != "" {
		task.Title = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		task.Description = strings.TrimSpace(*req.Description)
	}
	if req.Completed != nil {
		task.Completed = *req.Completed
	}

	if err := s.repo.UpdateTask(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// Delete удаляет задачу и возвращает оставшиеся задачи её проекта.
func (s *Service) Delete(ctx context.Context, id int, actorID int) ([]*models.Task, error) {
	task, err := s.repo.GetTask(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.authorize(ctx, task, actorID, "You can only delete tasks in your own projects"); err != nil {
		return nil, err
	}

	if err := s.repo.DeleteTask(ctx, id); err != nil {
		return nil, err
	}
	return s.repo.ListTasksByProject(ctx, task.ProjectID)
}

// authorize проверяет, что actorID владеет проектом задачи.
func (s *Service) authorize(ctx context.Context, task *models.Task, actorID int, msg string) error {
	project, err := s.repo.GetProject(ctx, task.ProjectID)
	if err != nil {
		return err
	}
	if project.UserID != actorID {
		return apperr.Forbidden(msg)
	}
	return nil
}
