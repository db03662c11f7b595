// Package auth содержит бизнес-логику аутентификации: вход по email и паролю
// с выпуском JWT и получение профиля текущего пользователя.
package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/magabrotheeeer/workfolio/internal/lib/apperr"
	"github.com/magabrotheeeer/workfolio/internal/lib/jwt"
	"github.com/magabrotheeeer/workfolio/internal/lib/password"
	"github.com/magabrotheeeer/workfolio/internal/models"
)

// UserRepository описывает контракт для чтения пользователей из хранилища.
type UserRepository interface {
	// GetUserByEmail возвращает пользователя по email или ошибку NotFound.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	// GetUser возвращает пользователя по id или ошибку NotFound.
	GetUser(ctx context.Context, id int) (*models.User, error)
}

// Service отвечает за вход пользователя и чтение профиля.
type Service struct {
	users    UserRepository
	jwtMaker jwt.Maker
}

// New создает новый экземпляр Service.
func New(users UserRepository, jwtMaker jwt.Maker) *Service {
	return &Service{
		users:    users,
		jwtMaker: jwtMaker,
	}
}

// Login проверяет учётные данные и возвращает JWT вместе с пользователем.
// Несуществующий email и неверный пароль возвращаются как разные ошибки
// аутентификации, каждая с привязкой к своему полю.
func (s *Service) Login(ctx context.Context, email, rawPassword string) (string, *models.User, error) {
	const op = "auth.Login"

	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if apperr.KindOf(err) == apperr.KindNotFound {
			return "", nil, apperr.UnauthenticatedField("email", "User with this email does not exist")
		}
		return "", nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := password.Verify(user.PasswordHash, rawPassword); err != nil {
		return "", nil, apperr.UnauthenticatedField("password", "Invalid password")
	}

	token, err := s.jwtMaker.GenerateToken(user.ID, user.Username)
	if err != nil {
		return "", nil, fmt.Errorf("%s: %w", op, err)
	}
	return token, user, nil
}

// Profile возвращает пользователя по идентификатору из токена.
func (s *Service) Profile(ctx context.Context, userID int) (*models.User, error) {
	const op = "auth.Profile"

	user, err := s.users.GetUser(ctx, userID)
	if err != nil {
		var appErr *apperr.Error
		if errors.As(err, &appErr) {
			return nil, err
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return user, nil
}
