// Package project содержит бизнес-логику жизненного цикла проектов:
// создание с проверкой владельца и уникальности имени, частичное обновление
// со слиянием полей и повторной проверкой инварианта дат, каскадное удаление задач.
package project

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/magabrotheeeer/workfolio/internal/lib/apperr"
	"github.com/magabrotheeeer/workfolio/internal/models"
)

// Repository описывает контракт хранилища для проектов.
type Repository interface {
	CreateProject(ctx context.Context, project models.Project) (*models.Project, error)
	GetProject(ctx context.Context, id int) (*models.Project, error)
	ListProjects(ctx context.Context) ([]*models.Project, error)
	ProjectNameTaken(ctx context.Context, name string, excludeID int) (bool, error)
	UserExists(ctx context.Context, id int) (bool, error)
	UpdateProject(ctx context.Context, project *models.Project) error
	DeleteProject(ctx context.Context, id int) error
	ListTasksByProject(ctx context.Context, projectID int) ([]*models.Task, error)
}

// Service реализует операции над проектами.
type Service struct {
	repo Repository
}

// New создает новый экземпляр Service.
func New(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create создает новый проект. Владелец обязан существовать, имя проекта
// уникально глобально, инвариант start_date <= end_date проверяется до записи.
// Бюджет приводится к двум знакам после запятой с банковским округлением half-up.
func (s *Service) Create(ctx context.Context, req models.DummyProject) (*models.Project, error) {
	exists, err := s.repo.UserExists(ctx, req.UserID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperr.NotFound("User with id %d does not exist", req.UserID)
	}

	name := strings.TrimSpace(req.Name)
	taken, err := s.repo.ProjectNameTaken(ctx, name, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperr.Duplicate("name", "Project name already in use")
	}

	startDate, endDate, err := parseDatePair(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	budget, err := coerceAmount("budget", *req.Budget)
	if err != nil {
		return nil, err
	}

	project := models.Project{
		Name:      name,
		Client:    strings.TrimSpace(req.Client),
		Budget:    budget,
		Status:    models.StatusPending,
		StartDate: startDate,
		EndDate:   endDate,
		UserID:    req.UserID,
	}
	if req.Description != nil {
		project.Description = strings.TrimSpace(*req.Description)
	}
	if req.Images != nil {
		if *req.Images < 0 {
			return nil, apperr.Validation("images", "must be a non-negative integer")
		}
		project.Images = *req.Images
	}
	if req.Animation != nil {
		if *req.Animation < 0 {
			return nil, apperr.Validation("animation", "must be a non-negative integer")
		}
		project.Animation = *req.Animation
	}
	if req.Status != nil && *req.Status != "" {
		status, err := models.ParseProjectStatus(*req.Status)
		if err != nil {
			return nil, apperr.Validation("status", "must be one of PENDING, PROGRESS, FINISHED")
		}
		project.Status = status
	}

	return s.repo.CreateProject(ctx, project)
}

// List возвращает все проекты.
func (s *Service) List(ctx context.Context) ([]*models.Project, error) {
	return s.repo.ListProjects(ctx)
}

// Get возвращает проект по id.
func (s *Service) Get(ctx context.Context, id int) (*models.Project, error) {
	return s.repo.GetProject(ctx, id)
}

// Update частично обновляет проект. Мутация разрешена только владельцу.
// Присутствующие в запросе поля валидируются и сливаются с сохранёнными,
// отсутствующие не трогаются. Инвариант дат перепроверяется после слияния,
// даже если в запросе пришла только одна из двух дат.
func (s *Service) Update(ctx context.Context, id int, req models.UpdateProject, actorID int) (*models.Project, error) {
	project, err := s.repo.GetProject(ctx, id)
	if err != nil {
		return nil, err
	}
	if project.UserID != actorID {
		return nil, apperr.Forbidden("You can only update your own projects")
	}

	if req.Name != nil && strings.TrimSpace(*req.Name) != "" {
		name := strings.TrimSpace(*req.Name)
		taken, err := s.repo.ProjectNameTaken(ctx, name, project.ID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, apperr.Duplicate("name", "Project name already in use")
		}
		project.Name = name
	}
	if req.Client != nil && strings.TrimSpace(*req.Client) != "" {
		project.Client = strings.TrimSpace(*req.Client)
	}
	if req.Description != nil {
		project.Description = strings.TrimSpace(*req.Description)
	}
	if req.Budget != nil {
		budget, err := coerceAmount("budget", *req.Budget)
		if err != nil {
			return nil, err
		}
		project.Budget = budget
	}
	if req.Images != nil {
		if *req.Images < 0 {
			return nil, apperr.Validation("images", "must be a non-negative integer")
		}
		project.Images = *req.Images
	}
	if req.Animation != nil {
		if *req.Animation < 0 {
			return nil, apperr.Validation("animation", "must be a non-negative integer")
		}
		project.Animation = *req.Animation
	}
	if req.Status != nil && *req.Status != "" {
		status, err := models.ParseProjectStatus(*req.Status)
		if err != nil {
			return nil, apperr.Validation("status", "must be one of PENDING, PROGRESS, FINISHED")
		}
		project.Status = status
	}
	if req.StartDate != nil {
		startDate, err := models.ParseDateTime(*req.StartDate)
		if err != nil {
			return nil, apperr.Validation("start_date", err.Error())
		}
		project.StartDate = startDate
	}
	if req.EndDate != nil {
		endDate, err := models.ParseDateTime(*req.EndDate)
		if err != nil {
			return nil, apperr.Validation("end_date", err.Error())
		}
		project.EndDate = endDate
	}

	// Инвариант проверяется по объединённой паре дат, а не по входным полям.
	if project.EndDate.Before(project.StartDate) {
		return nil, apperr.Validation("end_date", "End date must be after start date")
	}

	if err := s.repo.UpdateProject(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

// Delete удаляет проект вместе с его задачами и возвращает оставшийся список
// проектов, чтобы клиенту не требовался повторный запрос.
func (s *Service) Delete(ctx context.Context, id int, actorID int) ([]*models.Project, error) {
	project, err := s.repo.GetProject(ctx, id)
	if err != nil {
		return nil, err
	}
	if project.UserID != actorID {
		return nil, apperr.Forbidden("You can only delete your own projects")
	}

	if err := s.repo.DeleteProject(ctx, id); err != nil {
		return nil, err
	}
	return s.repo.ListProjects(ctx)
}

// Tasks возвращает задачи проекта, предварительно проверив, что проект существует.
func (s *Service) Tasks(ctx context.Context, id int) ([]*models.Task, error) {
	if _, err := s.repo.GetProject(ctx, id); err != nil {
		return nil, err
	}
	return s.repo.ListTasksByProject(ctx, id)
}

// parseDatePair разбирает обе даты и проверяет их порядок.
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

// coerceAmount приводит денежную сумму к двум знакам после запятой
// с округлением half-up и запрещает отрицательные значения.
func coerceAmount(field string, value decimal.Decimal) (decimal.Decimal, error) {
	if value.IsNegative() {
		return decimal.Decimal{}, apperr.Validation(field, "must be a non-negative number")
	}
	return value.Round(2), nil
}
