// Package workfolio собирает приложение: хранилище, миграции, сервисы,
// маршруты и HTTP-сервер с плавной остановкой.
package workfolio

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/magabrotheeeer/workfolio/internal/config"
	"github.com/magabrotheeeer/workfolio/internal/lib/jwt"
	"github.com/magabrotheeeer/workfolio/internal/migrations"
	authservice "github.com/magabrotheeeer/workfolio/internal/services/auth"
	projectservice "github.com/magabrotheeeer/workfolio/internal/services/project"
	subscriptionservice "github.com/magabrotheeeer/workfolio/internal/services/subscription"
	taskservice "github.com/magabrotheeeer/workfolio/internal/services/task"
	userservice "github.com/magabrotheeeer/workfolio/internal/services/user"
	"github.com/magabrotheeeer/workfolio/internal/storage/repository"
)

// App инкапсулирует HTTP-сервер и соединение с базой данных.
type App struct {
	server *http.Server
	logger *slog.Logger
	db     *repository.Storage
}

// New создает приложение: подключается к базе, применяет миграции,
// собирает сервисы и маршруты.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := repository.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, err
	}
	if err = migrations.Run(db.DB, cfg.MigrationsPath); err != nil {
		return nil, err
	}

	jwtMaker := jwt.NewJWTMaker(cfg.JWTSecretKey, cfg.TokenTTL)

	users := userservice.New(db)
	auth := authservice.New(db, jwtMaker)
	projects := projectservice.New(db)
	tasks := taskservice.New(db)
	subscriptions := subscriptionservice.New(db)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, jwtMaker, db, Services{
		Users:         users,
		Auth:          auth,
		Projects:      projects,
		Tasks:         tasks,
		Subscriptions: subscriptions,
	})

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
		db:     db,
	}, nil
}

// Run запускает HTTP-сервер и останавливает его при отмене контекста.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		_ = a.db.DB.Close()
		return err
	}
}
