// Package workfolio предоставляет маршруты приложения.
package workfolio

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/magabrotheeeer/workfolio/internal/http/handlers/auth/login"
	"github.com/magabrotheeeer/workfolio/internal/http/handlers/auth/profile"
	"github.com/magabrotheeeer/workfolio/internal/http/handlers/export"
	"github.com/magabrotheeeer/workfolio/internal/http/handlers/health"
	projectcreate "github.com/magabrotheeeer/workfolio/internal/http/handlers/project/create"
	projectlist "github.com/magabrotheeeer/workfolio/internal/http/handlers/project/list"
	projectread "github.com/magabrotheeeer/workfolio/internal/http/handlers/project/read"
	projectremove "github.com/magabrotheeeer/workfolio/internal/http/handlers/project/remove"
	projecttasks "github.com/magabrotheeeer/workfolio/internal/http/handlers/project/tasks"
	projectupdate "github.com/magabrotheeeer/workfolio/internal/http/handlers/project/update"
	subcreate "github.com/magabrotheeeer/workfolio/internal/http/handlers/subscription/create"
	sublist "github.com/magabrotheeeer/workfolio/internal/http/handlers/subscription/list"
	subread "github.com/magabrotheeeer/workfolio/internal/http/handlers/subscription/read"
	subremove "github.com/magabrotheeeer/workfolio/internal/http/handlers/subscription/remove"
	subupdate "github.com/magabrotheeeer/workfolio/internal/http/handlers/subscription/update"
	taskcreate "github.com/magabrotheeeer/workfolio/internal/http/handlers/task/create"
	tasklist "github.com/magabrotheeeer/workfolio/internal/http/handlers/task/list"
	taskread "github.com/magabrotheeeer/workfolio/internal/http/handlers/task/read"
	taskremove "github.com/magabrotheeeer/workfolio/internal/http/handlers/task/remove"
	taskupdate "github.com/magabrotheeeer/workfolio/internal/http/handlers/task/update"
	usercreate "github.com/magabrotheeeer/workfolio/internal/http/handlers/user/create"
	userlist "github.com/magabrotheeeer/workfolio/internal/http/handlers/user/list"
	userprojects "github.com/magabrotheeeer/workfolio/internal/http/handlers/user/projects"
	userread "github.com/magabrotheeeer/workfolio/internal/http/handlers/user/read"
	userremove "github.com/magabrotheeeer/workfolio/internal/http/handlers/user/remove"
	usersubscriptions "github.com/magabrotheeeer/workfolio/internal/http/handlers/user/subscriptions"
	userupdate "github.com/magabrotheeeer/workfolio/internal/http/handlers/user/update"
	"github.com/magabrotheeeer/workfolio/internal/http/middlewarectx"
	"github.com/magabrotheeeer/workfolio/internal/lib/jwt"
	"github.com/magabrotheeeer/workfolio/internal/lib/metrics"
	authservice "github.com/magabrotheeeer/workfolio/internal/services/auth"
	projectservice "github.com/magabrotheeeer/workfolio/internal/services/project"
	subscriptionservice "github.com/magabrotheeeer/workfolio/internal/services/subscription"
	taskservice "github.com/magabrotheeeer/workfolio/internal/services/task"
	userservice "github.com/magabrotheeeer/workfolio/internal/services/user"
	"github.com/magabrotheeeer/workfolio/internal/storage/repository"
)

// Services группирует бизнес-логику приложения для регистрации маршрутов.
type Services struct {
	Users         *userservice.Service
	Auth          *authservice.Service
	Projects      *projectservice.Service
	Tasks         *taskservice.Service
	Subscriptions *subscriptionservice.Service
}

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, jwtMaker jwt.Maker, db *repository.Storage, svc Services) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
		metrics.Middleware,
	)

	r.Route("/api/v1", func(r chi.Router) {
		// Открытые конечные точки
		r.Post("/users", usercreate.New(logger, svc.Users).ServeHTTP)
		r.Get("/users", userlist.New(logger, svc.Users).ServeHTTP)
		r.Get("/users/{id}", userread.New(logger, svc.Users).ServeHTTP)
		r.Get("/users/{id}/projects", userprojects.New(logger, svc.Users).ServeHTTP)
		r.Get("/users/{id}/subscriptions", usersubscriptions.New(logger, svc.Users).ServeHTTP)
		r.Post("/auth/login", login.New(logger, svc.Auth).ServeHTTP)
		r.Get("/projects", projectlist.New(logger, svc.Projects).ServeHTTP)
		r.Get("/projects/{id}", projectread.New(logger, svc.Projects).ServeHTTP)
		r.Get("/projects/{id}/tasks", projecttasks.New(logger, svc.Projects).ServeHTTP)
		r.Get("/tasks", tasklist.New(logger, svc.Tasks).ServeHTTP)
		r.Get("/tasks/{id}", taskread.New(logger, svc.Tasks).ServeHTTP)
		r.Get("/subscriptions", sublist.New(logger, svc.Subscriptions).ServeHTTP)
		r.Get("/subscriptions/{id}", subread.New(logger, svc.Subscriptions).ServeHTTP)
		r.Post("/export/csv", export.New(logger).ServeHTTP)

		// Группа с JWT аутентификацией
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.JWTMiddleware(jwtMaker, logger))
			r.Use(middlewarectx.RateLimitMiddleware(logger))
			r.Get("/auth/profile", profile.New(logger, svc.Auth).ServeHTTP)
			r.Put("/users/{id}", userupdate.New(logger, svc.Users).ServeHTTP)
			r.Delete("/users/{id}", userremove.New(logger, svc.Users).ServeHTTP)
			r.Post("/projects", projectcreate.New(logger, svc.Projects).ServeHTTP)
			r.Put("/projects/{id}", projectupdate.New(logger, svc.Projects).ServeHTTP)
			r.Delete("/projects/{id}", projectremove.New(logger, svc.Projects).ServeHTTP)
			r.Post("/tasks", taskcreate.New(logger, svc.Tasks).ServeHTTP)
			r.Put("/tasks/{id}", taskupdate.New(logger, svc.Tasks).ServeHTTP)
			r.Delete("/tasks/{id}", taskremove.New(logger, svc.Tasks).ServeHTTP)
			r.Post("/subscriptions", subcreate.New(logger, svc.Subscriptions).ServeHTTP)
			r.Put("/subscriptions/{id}", subupdate.New(logger, svc.Subscriptions).ServeHTTP)
			r.Delete("/subscriptions/{id}", subremove.New(logger, svc.Subscriptions).ServeHTTP)
		})
	})

	r.Get("/health", health.New(logger, db).ServeHTTP)
	r.Handle("/metrics", promhttp.Handler())

	// Swagger UI читает статическую спецификацию из docs/swagger.json.
	r.Get("/docs/swagger.json", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./docs/swagger.json")
	})
	r.Get("/docs/*", httpSwagger.Handler(
		httpSwagger.URL("/docs/swagger.json"),
	))
}
