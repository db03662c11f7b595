// Package user содержит бизнес-логику жизненного цикла пользователей:
// регистрацию с форматной проверкой полей, частичное обновление с сохранением
// незатронутых значений и каскадное удаление всех принадлежащих сущностей.
package user

import (
	"context"
	"strings"

	"github.com/magabrotheeeer/workfolio/internal/lib/apperr"
	"github.com/magabrotheeeer/workfolio/internal/lib/password"
	"github.com/magabrotheeeer/workfolio/internal/lib/patterns"
	"github.com/magabrotheeeer/workfolio/internal/models"
)

// Repository описывает контракт хранилища для пользователей и их коллекций.
type Repository interface {
	CreateUser(ctx context.Context, user models.User) (*models.User, error)
	GetUser(ctx context.Context, id int) (*models.User, error)
	ListUsers(ctx context.Context) ([]*models.User, error)
	UsernameTaken(ctx context.Context, username string, excludeID int) (bool, error)
	EmailTaken(ctx context.Context, email string, excludeID int) (bool, error)
	UpdateUser(ctx context.Context, user *models.User) error
	DeleteUser(ctx context.Context, id int) error
	ListProjectsByUser(ctx context.Context, userID int) ([]*models.Project, error)
	ListSubscriptionsByUser(ctx context.Context, userID int) ([]*models.Subscription, error)
}

// Service реализует операции над пользователями.
type Service struct {
	repo Repository
}

// New создает новый экземпляр Service.
func New(repo Repository) *Service {
	return &Service{repo: repo}
}

// Register создает нового пользователя. Поля проходят форматную проверку,
// уникальность username и email проверяется заранее как быстрый путь,
// а гонка параллельных регистраций ловится ограничением уникальности в БД.
func (s *Service) Register(ctx context.Context, req models.DummyUser) (*models.User, error) {
	username := strings.TrimSpace(req.Username)
	email := strings.TrimSpace(req.Email)
	rawPassword := strings.TrimSpace(req.Password)

	if err := patterns.Username.Validate(username); err != nil {
		return nil, err
	}
	if err := patterns.Email.Validate(email); err != nil {
		return nil, err
	}
	if err := patterns.Password.Validate(rawPassword); err != nil {
		return nil, err
	}

	taken, err := s.repo.UsernameTaken(ctx, username, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperr.Duplicate("username", "Username already in use")
	}
	taken, err = s.repo.EmailTaken(ctx, email, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperr.Duplicate("email", "Email already in use")
	}

	hashed, err := password.Hash(rawPassword)
	if err != nil {
		return nil, err
	}

	return s.repo.CreateUser(ctx, models.User{
		Username:     username,
		Email:        email,
		PasswordHash: hashed,
	})
}

// List возвращает всех пользователей.
func (s *Service) List(ctx context.Context) ([]*models.User, error) {
	return s.repo.ListUsers(ctx)
}

// Get возвращает пользователя по id.
func (s *Service) Get(ctx context.Context, id int) (*models.User, error) {
	return s.repo.GetUser(ctx, id)
}

// Update частично обновляет пользователя. Обновлять можно только собственную
// учётную запись. Присутствующие поля проходят те же форматные проверки,
// что и при регистрации, отсутствующие сохраняют прежние значения.
func (s *Service) Update(ctx context.Context, id int, req models.UpdateUser, actorID int) (*models.User, error) {
	user, err := s.repo.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}
	if user.ID != actorID {
		return nil, apperr.Forbidden("You can only update your own account")
	}

	if req.Username != nil {
		username := strings.TrimSpace(*req.Username)
		if err := patterns.Username.Validate(username); err != nil {
			return nil, err
		}
		taken, err := s.repo.UsernameTaken(ctx, username, user.ID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, apperr.Duplicate("username", "Username already in use")
		}
		user.Username = username
	}
	if req.Email != nil {
		email := strings.TrimSpace(*req.Email)
		if err := patterns.Email.Validate(email); err != nil {
			return nil, err
		}
		taken, err := s.repo.EmailTaken(ctx, email, user.ID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, apperr.Duplicate("email", "Email already in use")
		}
		user.Email = email
	}
	if req.Password != nil {
		rawPassword := strings.TrimSpace(*req.Password)
		if err := patterns.Password.Validate(rawPassword); err != nil {
			return nil, err
		}
		hashed, err := password.Hash(rawPassword)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hashed
	}

	if err := s.repo.UpdateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Delete удаляет пользователя вместе со всеми его проектами, задачами этих
// проектов и подписками. Удалять можно только собственную учётную запись.
func (s *Service) Delete(ctx context.Context, id int, actorID int) error {
	user, err := s.repo.GetUser(ctx, id)
	if err != nil {
		return err
	}
	if user.ID != actorID {
		return apperr.Forbidden("You can only delete your own account")
	}

	return s.repo.DeleteUser(ctx, id)
}

// Projects возвращает проекты пользователя, предварительно проверив,
// что пользователь существует.
func (s *Service) Projects(ctx context.Context, id int) ([]*models.Project, error) {
	if _, err := s.repo.GetUser(ctx, id); err != nil {
		return nil, err
	}
	return s.repo.ListProjectsByUser(ctx, id)
}

// Subscriptions возвращает подписки пользователя, предварительно проверив,
// что пользователь существует.
func (s *Service) Subscriptions(ctx context.Context, id int) ([]*models.Subscription, error) {
	if _, err := s.repo.GetUser(ctx, id); err != nil {
		return nil, err
	}
	return s.repo.ListSubscriptionsByUser(ctx, id)
}
