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

func (m *MockService) Register(ctx context.Context, req models.DummyUser) (*models.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func TestCreateUserHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))

	tests := []struct {
		name           string
		requestBody    string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "успешная регистрация",
			requestBody: `{"username":"johndoe","email":"john@example.com","password":"password123"}`,
			setupMock: func(m *MockService) {
				m.On("Register", mock.Anything, models.DummyUser{
					Username: "johndoe",
					Email:    "john@example.com",
					Password: "password123",
				}).Return(&models.User{ID: 1, Username: "johndoe", Email: "john@example.com"}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `"projects_url":"/api/v1/users/1/projects"`,
		},
		{
			name:           "некорректный JSON",
			requestBody:    "not a json",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"invalid request body"}`,
		},
		{
			name:           "отсутствует пароль",
			requestBody:    `{"username":"johndoe","email":"john@example.com"}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"password":"Field password is required"`,
		},
		{
			name:        "занятое имя пользователя",
			requestBody: `{"username":"johndoe","email":"john@example.com","password":"password123"}`,
			setupMock: func(m *MockService) {
				m.On("Register", mock.Anything, mock.AnythingOfType("models.DummyUser")).
					Return(nil, apperr.Duplicate("username", "Username already in use"))
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":{"username":"Username already in use"}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodPost, "/users", bytes.NewReader([]byte(tt.requestBody)))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)

			mockService.AssertExpectations(t)
		})
	}
}
