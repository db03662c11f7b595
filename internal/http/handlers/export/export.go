// Package export реализует HTTP-обработчик выгрузки данных в CSV.
//
// Handler принимает JSON-запрос со списком однородных записей и возвращает
// CSV-содержимое строкой. Заголовок собирается из ключей первой записи,
// отсортированных по алфавиту, чтобы выгрузка была детерминированной.
package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sort"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/workfolio/internal/http/response"
	"github.com/magabrotheeeer/workfolio/internal/lib/sl"
)

// Request описывает тело запроса на выгрузку.
type Request struct {
	Data []map[string]any `json:"data"`
}

// Handler управляет HTTP-запросами на выгрузку в CSV.
type Handler struct {
	log *slog.Logger
}

// New создает новый Handler с переданным логгером.
func New(log *slog.Logger) *Handler {
	return &Handler{log: log}
}

// ServeHTTP godoc
// @Summary Выгрузить записи в CSV
// @Tags Export
// @Accept  json
// @Produce  json
// @Param request body Request true "Записи для выгрузки"
// @Success 200 {object} map[string]string "Содержимое CSV"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON или пустой список"
// @Router /export/csv [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.export.csv"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	if len(req.Data) == 0 {
		log.Error("empty data list")
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.FieldError("data", "Field data must be a non-empty list"))
		return
	}

	content, err := renderCSV(req.Data)
	if err != nil {
		log.Error("failed to render csv", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("internal server error"))
		return
	}

	log.Info("csv exported", slog.Int("rows", len(req.Data)))
	render.JSON(w, r, map[string]string{"csv_content": content})
}

// renderCSV собирает CSV из однородных записей. Ключи, отсутствующие
// в какой-то из записей, дают пустую ячейку.
func renderCSV(records []map[string]any) (string, error) {
	header := make([]string, 0, len(records[0]))
	for key := range records[0] {
		header = append(header, key)
	}
	sort.Strings(header)

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)
	if err := writer.Write(header); err != nil {
		return "", err
	}

	row := make([]string, len(header))
	for _, record := range records {
		for i, key := range header {
			value, ok := record[key]
			if !ok || value == nil {
				row[i] = ""
				continue
			}
			row[i] = fmt.Sprintf("%v", value)
		}
		if err := writer.Write(row); err != nil {
			return "", err
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", err
	}
	return buf.String(), nil
}
