// Package remove реализует HTTP-обработчик удаления проекта.
//
// Удаление каскадно убирает задачи проекта. В ответ возвращается
// список оставшихся проектов.
package remove

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/workfolio/internal/http/middlewarectx"
	"github.com/magabrotheeeer/workfolio/internal/http/response"
	"github.com/magabrotheeeer/workfolio/internal/lib/sl"
	"github.com/magabrotheeeer/workfolio/internal/models"
)

// Handler управляет HTTP-запросами на удаление проекта.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики удаления проекта.
type Service interface {
	Delete(ctx context.Context, id int, actorID int) ([]*models.Project, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Удалить проект
// @Tags Projects
// @Produce  json
// @Security BearerAuth
// @Param id path int true "ID проекта"
// @Success 200 {array} models.ProjectView "Оставшиеся проекты"
// @Failure 403 {object} response.ErrorResponse "Чужой проект"
// @Failure 404 {object} response.ErrorResponse "Проект не найден"
// @Router /projects/{id} [delete]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.project.remove"
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

	actorID, ok := r.Context().Value(middlewarectx.UserID).(int)
	if !ok || actorID == 0 {
		log.Error("user id not found in context")
		render.Status(r, http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	projects, err := h.service.Delete(r.Context(), id, actorID)
	if err != nil {
		log.Error("failed to delete project", sl.Err(err))
		render.Status(r, response.StatusOf(err))
		render.JSON(w, r, response.Body(err))
		return
	}

	log.Info("project deleted", slog.Int("project_id", id))
	render.JSON(w, r, models.SerializeProjects(projects))
}
