// Package list реализует HTTP-обработчик получения списка проектов.
package list

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/workfolio/internal/http/response"
	"github.com/magabrotheeeer/workfolio/internal/lib/sl"
	"github.com/magabrotheeeer/workfolio/internal/models"
)

// Handler управляет HTTP-запросами на получение списка проектов.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики списка проектов.
type Service interface {
	List(ctx context.Context) ([]*models.Project, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Список проектов
// @Tags Projects
// @Produce  json
// @Success 200 {array} models.ProjectView
// @Router /projects [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.project.list"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	projects, err := h.service.List(r.Context())
	if err != nil {
		log.Error("failed to list projects", sl.Err(err))
		render.Status(r, response.StatusOf(err))
		render.JSON(w, r, response.Body(err))
		return
	}

	render.JSON(w, r, models.SerializeProjects(projects))
}
