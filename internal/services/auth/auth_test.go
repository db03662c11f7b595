package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"github.com/magabrotheeeer/workfolio/internal/lib/apperr"
	"github.com/magabrotheeeer/workfolio/internal/lib/jwt"
	"github.com/magabrotheeeer/workfolio/internal/models"
)

type UsersMock struct{ mock.Mock }

func (m *UsersMock) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}
func (m *UsersMock) GetUser(ctx context.Context, id int) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

type MakerMock struct{ mock.Mock }

func (m *MakerMock) GenerateToken(userID int, username string) (string, error) {
	args := m.Called(userID, username)
	return args.String(0), args.Error(1)
}
func (m *MakerMock) ParseToken(tokenStr string) (*jwt.CustomClaims, error) {
	args := m.Called(tokenStr)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*jwt.CustomClaims), args.Error(1)
}

func TestAuthService_Login(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	assert.NoError(t, err)
	stored := &models.User{ID: 1, Username: "johndoe", Email: "john@example.com", PasswordHash: string(hash)}

	tests := []struct {
		name       string
		setupMocks func(u *UsersMock, j *MakerMock)
		email      string
		password   string
		wantToken  string
		check      func(t *testing.T, err error)
	}{
		{
			name: "success",
			setupMocks: func(u *UsersMock, j *MakerMock) {
				u.On("GetUserByEmail", mock.Anything, "john@example.com").Return(stored, nil).Once()
				j.On("GenerateToken", 1, "johndoe").Return("signed-token", nil).Once()
			},
			email:     "john@example.com",
			password:  "password123",
			wantToken: "signed-token",
			check: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name: "unknown email",
			setupMocks: func(u *UsersMock, _ *MakerMock) {
				u.On("GetUserByEmail", mock.Anything, "ghost@example.com").
					Return(nil, apperr.NotFound("User with email %s not found", "ghost@example.com")).Once()
			},
			email:    "ghost@example.com",
			password: "password123",
			check: func(t *testing.T, err error) {
				assert.Equal(t, apperr.KindUnauthenticated, apperr.KindOf(err))
				assert.Equal(t, "email", apperr.FieldOf(err))
				assert.Contains(t, err.Error(), "User with this email does not exist")
			},
		},
		{
			name: "wrong password",
			setupMocks: func(u *UsersMock, _ *MakerMock) {
				u.On("GetUserByEmail", mock.Anything, "john@example.com").Return(stored, nil).Once()
			},
			email:    "john@example.com",
			password: "wrongpassword",
			check: func(t *testing.T, err error) {
				assert.Equal(t, apperr.KindUnauthenticated, apperr.KindOf(err))
				assert.Equal(t, "password", apperr.FieldOf(err))
				assert.Contains(t, err.Error(), "Invalid password")
			},
		},
		{
			name: "storage error is not an auth error",
			setupMocks: func(u *UsersMock, _ *MakerMock) {
				u.On("GetUserByEmail", mock.Anything, "john@example.com").
					Return(nil, errors.New("connection refused")).Once()
			},
			email:    "john@example.com",
			password: "password123",
			check: func(t *testing.T, err error) {
				assert.Equal(t, apperr.KindInternal, apperr.KindOf(err))
				assert.Contains(t, err.Error(), "connection refused")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := new(UsersMock)
			maker := new(MakerMock)
			svc := New(users, maker)

			tt.setupMocks(users, maker)

			token, user, err := svc.Login(context.Background(), tt.email, tt.password)
			tt.check(t, err)
			if tt.wantToken != "" {
				assert.Equal(t, tt.wantToken, token)
				assert.Equal(t, stored, user)
			}

			users.AssertExpectations(t)
			maker.AssertExpectations(t)
		})
	}
}

func TestAuthService_Profile(t *testing.T) {
	stored := &models.User{ID: 1, Username: "johndoe"}

	t.Run("success", func(t *testing.T) {
		users := new(UsersMock)
		users.On("GetUser", mock.Anything, 1).Return(stored, nil).Once()

		got, err := New(users, new(MakerMock)).Profile(context.Background(), 1)
		assert.NoError(t, err)
		assert.Equal(t, stored, got)
		users.AssertExpectations(t)
	})

	t.Run("user not found", func(t *testing.T) {
		users := new(UsersMock)
		users.On("GetUser", mock.Anything, 9).Return(nil, apperr.NotFound("User with id %d not found", 9)).Once()

		got, err := New(users, new(MakerMock)).Profile(context.Background(), 9)
		assert.Nil(t, got)
		assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
		users.AssertExpectations(t)
	})
}
