// Package create реализует HTTP-обработчик создания нового проекта.
//
// Handler принимает JSON-запрос с данными проекта, валидирует обязательные
// поля, вызывает бизнес-логику создания и возвращает созданный проект.
package create

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/workfolio/internal/http/response"
	"github.com/magabrotheeeer/workfolio/internal/lib/sl"
	"github.com/magabrotheeeer/workfolio/internal/models"
)

// Handler управляет HTTP-запросами на создание проекта.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс бизнес-логики создания проекта.
type Service interface {
	Create(ctx context.Context, req models.DummyProject) (*models.Project, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Создать проект
// @Tags Projects
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param request body models.DummyProject true "Данные нового проекта"
// @Success 201 {object} models.ProjectView
// @Failure 400 {object} response.ErrorResponse "Ошибка валидации или дубликат имени"
// @Failure 404 {object} response.ErrorResponse "Владелец не найден"
// @Router /projects [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.project.create"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummyProject
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	project, err := h.service.Create(r.Context(), req)
	if err != nil {
		log.Error("failed to create project", sl.Err(err))
		render.Status(r, response.StatusOf(err))
		render.JSON(w, r, response.Body(err))
		return
	}

	log.Info("project created", slog.Int("project_id", project.ID))
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, project.Serialize())
}
