// Package read реализует HTTP-обработчик получения проекта по id.
package read

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/workfolio/internal/http/response"
	"github.com/magabrotheeeer/workfolio/internal/lib/sl"
	"github.com/magabrotheeeer/workfolio/internal/models"
)

// Handler управляет HTTP-запросами на чтение проекта.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики чтения проекта.
type Service interface {
	Get(ctx context.Context, id int) (*models.Project, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Получить проект
// @Tags Projects
// @Produce  json
// @Param id path int true "ID проекта"
// @Success 200 {object} models.ProjectView
// @Failure 404 {object} response.ErrorResponse "Проект не найден"
// @Router /projects/{id} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.project.read"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		log.Error("invalid id", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid id"))
		return
	}

	project, err := h.service.Get(r.Context(), id)
	if err != nil {
		log.Error("failed to get project", sl.Err(err))
		render.Status(r, response.StatusOf(err))
		render.JSON(w, r, response.Body(err))
		return
	}

	render.JSON(w, r, project.Serialize())
}
