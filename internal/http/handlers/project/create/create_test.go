package create

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/workfolio/internal/lib/apperr"
	"github.com/magabrotheeeer/workfolio/internal/models"
)

// MockService реализует интерфейс create.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Create(ctx context.Context, req models.DummyProject) (*models.Project, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Project), args.Error(1)
}

const validBody = `{
	"name": "Acme Launch",
	"client": "Acme",
	"budget": "1200.50",
	"start_date": "2024-01-01T00:00:00.000Z",
	"end_date": "2024-06-01T00:00:00.000Z",
	"user_id": 1
}`

func TestCreateProjectHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))

	tests := []struct {
		name           string
		requestBody    string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   []string
	}{
		{
			name:        "успешное создание с значениями по умолчанию",
			requestBody: validBody,
			setupMock: func(m *MockService) {
				m.On("Create", mock.Anything, mock.MatchedBy(func(req models.DummyProject) bool {
					return req.Name == "Acme Launch" && req.UserID == 1
				})).Return(&models.Project{
					ID:     10,
					Name:   "Acme Launch",
					Client: "Acme",
					Status: models.StatusPending,
					UserID: 1,
				}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody: []string{
				`"status":"PENDING"`,
				`"images":0`,
				`"animation":0`,
				`"user":{"id":1,"url":"/api/v1/users/1"}`,
			},
		},
		{
			name:           "отсутствуют обязательные поля",
			requestBody:    `{"name":"Acme Launch"}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   []string{`"client":"Field client is required"`},
		},
		{
			name:        "повторное имя проекта",
			requestBody: validBody,
			setupMock: func(m *MockService) {
				m.On("Create", mock.Anything, mock.AnythingOfType("models.DummyProject")).
					Return(nil, apperr.Duplicate("name", "Project name already in use"))
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   []string{`{"error":{"name":"Project name already in use"}}`},
		},
		{
			name:        "несуществующий владелец",
			requestBody: validBody,
			setupMock: func(m *MockService) {
				m.On("Create", mock.Anything, mock.AnythingOfType("models.DummyProject")).
					Return(nil, apperr.NotFound("User with id %d does not exist", 1))
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   []string{`{"error":"User with id 1 does not exist"}`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodPost, "/projects", bytes.NewReader([]byte(tt.requestBody)))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			for _, fragment := range tt.expectedBody {
				assert.Contains(t, w.Body.String(), fragment)
			}

			mockService.AssertExpectations(t)
		})
	}
}
