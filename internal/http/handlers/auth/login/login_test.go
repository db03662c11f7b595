package login

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

// MockService реализует интерфейс login.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Login(ctx context.Context, email, rawPassword string) (string, *models.User, error) {
	args := m.Called(ctx, email, rawPassword)
	if args.Get(1) == nil {
		return args.String(0), nil, args.Error(2)
	}
	return args.String(0), args.Get(1).(*models.User), args.Error(2)
}

func TestLoginHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))

	tests := []struct {
		name           string
		requestBody    string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "успешный вход",
			requestBody: `{"email":"john@example.com","password":"password123"}`,
			setupMock: func(m *MockService) {
				m.On("Login", mock.Anything, "john@example.com", "password123").
					Return("signed-token", &models.User{ID: 1, Username: "johndoe", Email: "john@example.com"}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"userToken":"signed-token"`,
		},
		{
			name:           "некорректный JSON",
			requestBody:    "not a json",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"invalid request body"}`,
		},
		{
			name:           "отсутствуют обязательные поля",
			requestBody:    `{"email":"john@example.com"}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"password":"Field password is required"`,
		},
		{
			name:        "несуществующий email",
			requestBody: `{"email":"ghost@example.com","password":"password123"}`,
			setupMock: func(m *MockService) {
				m.On("Login", mock.Anything, "ghost@example.com", "password123").
					Return("", nil, apperr.UnauthenticatedField("email", "User with this email does not exist"))
			},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"error":{"email":"User with this email does not exist"}}`,
		},
		{
			name:        "неверный пароль",
			requestBody: `{"email":"john@example.com","password":"wrongpass"}`,
			setupMock: func(m *MockService) {
				m.On("Login", mock.Anything, "john@example.com", "wrongpass").
					Return("", nil, apperr.UnauthenticatedField("password", "Invalid password"))
			},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"error":{"password":"Invalid password"}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader([]byte(tt.requestBody)))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)

			mockService.AssertExpectations(t)
		})
	}
}
