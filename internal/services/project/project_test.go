package project

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/workfolio/internal/lib/apperr"
	"github.com/magabrotheeeer/workfolio/internal/models"
)

type RepoMock struct{ mock.Mock }

func (m *RepoMock) CreateProject(ctx context.Context, project models.Project) (*models.Project, error) {
	args := m.Called(ctx, project)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Project), args.Error(1)
}
func (m *RepoMock) GetProject(ctx context.Context, id int) (*models.Project, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Project), args.Error(1)
}
func (m *RepoMock) ListProjects(ctx context.Context) ([]*models.Project, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Project), args.Error(1)
}
func (m *RepoMock) ProjectNameTaken(ctx context.Context, name string, excludeID int) (bool, error) {
	args := m.Called(ctx, name, excludeID)
	return args.Bool(0), args.Error(1)
}
func (m *RepoMock) UserExists(ctx context.Context, id int) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}
func (m *RepoMock) UpdateProject(ctx context.Context, project *models.Project) error {
	return m.Called(ctx, project).Error(0)
}
func (m *RepoMock) DeleteProject(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}
func (m *RepoMock) ListTasksByProject(ctx context.Context, projectID int) ([]*models.Task, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Task), args.Error(1)
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func validCreateReq() models.DummyProject {
	budget := decimal.NewFromFloat(1500.559)
	return models.DummyProject{
		Name:      "Landing page",
		Client:    "Acme",
		Budget:    &budget,
		StartDate: "2025-01-01T00:00:00.000Z",
		EndDate:   "2025-03-01T00:00:00.000Z",
		UserID:    1,
	}
}

func TestProjectService_Create(t *testing.T) {
	tests := []struct {
		name       string
		setupMocks func(r *RepoMock)
		mutate     func(req *models.DummyProject)
		check      func(t *testing.T, got *models.Project, err error)
	}{
		{
			name: "success with defaults and rounded budget",
			setupMocks: func(r *RepoMock) {
				r.On("UserExists", mock.Anything, 1).Return(true, nil).Once()
				r.On("ProjectNameTaken", mock.Anything, "Landing page", 0).Return(false, nil).Once()
				r.On("CreateProject", mock.Anything, mock.MatchedBy(func(p models.Project) bool {
					return p.Name == "Landing page" &&
						p.Status == models.StatusPending &&
						p.Description == "" &&
						p.Images == 0 &&
						p.Budget.Equal(decimal.NewFromFloat(1500.56))
				})).Return(&models.Project{ID: 42, Name: "Landing page"}, nil).Once()
			},
			mutate: func(_ *models.DummyProject) {},
			check: func(t *testing.T, got *models.Project, err error) {
				assert.NoError(t, err)
				assert.Equal(t, 42, got.ID)
			},
		},
		{
			name: "owner does not exist",
			setupMocks: func(r *RepoMock) {
				r.On("UserExists", mock.Anything, 99).Return(false, nil).Once()
			},
			mutate: func(req *models.DummyProject) { req.UserID = 99 },
			check: func(t *testing.T, got *models.Project, err error) {
				assert.Nil(t, got)
				assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
				assert.Contains(t, err.Error(), "User with id 99 does not exist")
			},
		},
		{
			name: "duplicate name",
			setupMocks: func(r *RepoMock) {
				r.On("UserExists", mock.Anything, 1).Return(true, nil).Once()
				r.On("ProjectNameTaken", mock.Anything, "Landing page", 0).Return(true, nil).Once()
			},
			mutate: func(_ *models.DummyProject) {},
			check: func(t *testing.T, got *models.Project, err error) {
				assert.Nil(t, got)
				assert.Equal(t, apperr.KindDuplicate, apperr.KindOf(err))
				assert.Equal(t, "name", apperr.FieldOf(err))
			},
		},
		{
			name: "end date before start date",
			setupMocks: func(r *RepoMock) {
				r.On("UserExists", mock.Anything, 1).Return(true, nil).Once()
				r.On("ProjectNameTaken", mock.Anything, "Landing page", 0).Return(false, nil).Once()
			},
			mutate: func(req *models.DummyProject) {
				req.StartDate = "2025-03-01T00:00:00.000Z"
				req.EndDate = "2025-01-01T00:00:00.000Z"
			},
			check: func(t *testing.T, got *models.Project, err error) {
				assert.Nil(t, got)
				assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
				assert.Equal(t, "end_date", apperr.FieldOf(err))
				assert.Contains(t, err.Error(), "End date must be after start date")
			},
		},
		{
			name: "invalid start date format",
			setupMocks: func(r *RepoMock) {
				r.On("UserExists", mock.Anything, 1).Return(true, nil).Once()
				r.On("ProjectNameTaken", mock.Anything, "Landing page", 0).Return(false, nil).Once()
			},
			mutate: func(req *models.DummyProject) { req.StartDate = "2025-01-01" },
			check: func(t *testing.T, got *models.Project, err error) {
				assert.Nil(t, got)
				assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
				assert.Equal(t, "start_date", apperr.FieldOf(err))
			},
		},
		{
			name: "unknown status",
			setupMocks: func(r *RepoMock) {
				r.On("UserExists", mock.Anything, 1).Return(true, nil).Once()
				r.On("ProjectNameTaken", mock.Anything, "Landing page", 0).Return(false, nil).Once()
			},
			mutate: func(req *models.DummyProject) { req.Status = strPtr("DONE") },
			check: func(t *testing.T, got *models.Project, err error) {
				assert.Nil(t, got)
				assert.Equal(t, "status", apperr.FieldOf(err))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(RepoMock)
			svc := New(repo)

			tt.setupMocks(repo)
			req := validCreateReq()
			tt.mutate(&req)

			got, err := svc.Create(context.Background(), req)
			tt.check(t, got, err)

			repo.AssertExpectations(t)
		})
	}
}

func TestProjectService_Update(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	stored := func() *models.Project {
		return &models.Project{
			ID:        7,
			Name:      "Landing page",
			Client:    "Acme",
			Budget:    decimal.NewFromFloat(1500.56),
			Status:    models.StatusPending,
			StartDate: start,
			EndDate:   end,
			UserID:    1,
		}
	}

	tests := []struct {
		name       string
		setupMocks func(r *RepoMock)
		req        models.UpdateProject
		actorID    int
		check      func(t *testing.T, got *models.Project, err error)
	}{
		{
			name: "partial update keeps absent fields",
			setupMocks: func(r *RepoMock) {
				r.On("GetProject", mock.Anything, 7).Return(stored(), nil).Once()
				r.On("UpdateProject", mock.Anything, mock.MatchedBy(func(p *models.Project) bool {
					return p.Images == 5 &&
						p.Name == "Landing page" &&
						p.Client == "Acme" &&
						p.Status == models.StatusPending
				})).Return(nil).Once()
			},
			req:     models.UpdateProject{Images: intPtr(5)},
			actorID: 1,
			check: func(t *testing.T, got *models.Project, err error) {
				assert.NoError(t, err)
				assert.Equal(t, 5, got.Images)
				assert.Equal(t, "Acme", got.Client)
			},
		},
		{
			name: "not the owner",
			setupMocks: func(r *RepoMock) {
				r.On("GetProject", mock.Anything, 7).Return(stored(), nil).Once()
			},
			req:     models.UpdateProject{Images: intPtr(5)},
			actorID: 2,
			check: func(t *testing.T, got *models.Project, err error) {
				assert.Nil(t, got)
				assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))
				assert.Contains(t, err.Error(), "You can only update your own projects")
			},
		},
		{
			name: "new end date breaks stored pair",
			setupMocks: func(r *RepoMock) {
				r.On("GetProject", mock.Anything, 7).Return(stored(), nil).Once()
			},
			// end_date раньше сохранённой start_date, start_date в запросе отсутствует
			req:     models.UpdateProject{EndDate: strPtr("2024-12-01T00:00:00.000Z")},
			actorID: 1,
			check: func(t *testing.T, got *models.Project, err error) {
				assert.Nil(t, got)
				assert.Equal(t, "end_date", apperr.FieldOf(err))
				assert.Contains(t, err.Error(), "End date must be after start date")
			},
		},
		{
			name: "rename to taken name",
			setupMocks: func(r *RepoMock) {
				r.On("GetProject", mock.Anything, 7).Return(stored(), nil).Once()
				r.On("ProjectNameTaken", mock.Anything, "Portfolio", 7).Return(true, nil).Once()
			},
			req:     models.UpdateProject{Name: strPtr("Portfolio")},
			actorID: 1,
			check: func(t *testing.T, got *models.Project, err error) {
				assert.Nil(t, got)
				assert.Equal(t, apperr.KindDuplicate, apperr.KindOf(err))
			},
		},
		{
			name: "status transition",
			setupMocks: func(r *RepoMock) {
				r.On("GetProject", mock.Anything, 7).Return(stored(), nil).Once()
				r.On("UpdateProject", mock.Anything, mock.MatchedBy(func(p *models.Project) bool {
					return p.Status == models.StatusFinished
				})).Return(nil).Once()
			},
			req:     models.UpdateProject{Status: strPtr("FINISHED")},
			actorID: 1,
			check: func(t *testing.T, got *models.Project, err error) {
				assert.NoError(t, err)
				assert.Equal(t, models.StatusFinished, got.Status)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(RepoMock)
			svc := New(repo)

			tt.setupMocks(repo)

			got, err := svc.Update(context.Background(), 7, tt.req, tt.actorID)
			tt.check(t, got, err)

			repo.AssertExpectations(t)
		})
	}
}

func TestProjectService_Delete(t *testing.T) {
	stored := &models.Project{ID: 7, Name: "Landing page", UserID: 1}
	remaining := []*models.Project{{ID: 8, Name: "Portfolio", UserID: 1}}

	tests := []struct {
		name       string
		setupMocks func(r *RepoMock)
		actorID    int
		want       []*models.Project
		wantErr    bool
	}{
		{
			name: "success returns remaining list",
			setupMocks: func(r *RepoMock) {
				r.On("GetProject", mock.Anything, 7).Return(stored, nil).Once()
				r.On("DeleteProject", mock.Anything, 7).Return(nil).Once()
				r.On("ListProjects", mock.Anything).Return(remaining, nil).Once()
			},
			actorID: 1,
			want:    remaining,
		},
		{
			name: "not the owner",
			setupMocks: func(r *RepoMock) {
				r.On("GetProject", mock.Anything, 7).Return(stored, nil).Once()
			},
			actorID: 2,
			wantErr: true,
		},
		{
			name: "repo delete error",
			setupMocks: func(r *RepoMock) {
				r.On("GetProject", mock.Anything, 7).Return(stored, nil).Once()
				r.On("DeleteProject", mock.Anything, 7).Return(errors.New("db error")).Once()
			},
			actorID: 1,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(RepoMock)
			svc := New(repo)

			tt.setupMocks(repo)

			got, err := svc.Delete(context.Background(), 7, tt.actorID)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}

			repo.AssertExpectations(t)
		})
	}
}

func TestProjectService_Tasks(t *testing.T) {
	tasks := []*models.Task{{ID: 1, Title: "Design", ProjectID: 7}}

	t.Run("success", func(t *testing.T) {
		repo := new(RepoMock)
		repo.On("GetProject", mock.Anything, 7).Return(&models.Project{ID: 7}, nil).Once()
		repo.On("ListTasksByProject", mock.Anything, 7).Return(tasks, nil).Once()

		got, err := New(repo).Tasks(context.Background(), 7)
		assert.NoError(t, err)
		assert.Equal(t, tasks, got)
		repo.AssertExpectations(t)
	})

	t.Run("project not found", func(t *testing.T) {
		repo := new(RepoMock)
		repo.On("GetProject", mock.Anything, 99).Return(nil, apperr.NotFound("Project with id %d not found", 99)).Once()

		got, err := New(repo).Tasks(context.Background(), 99)
		assert.Nil(t, got)
		assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
		repo.AssertExpectations(t)
	})
}
