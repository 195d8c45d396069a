package handler

import (
	"net/http"
	"runtime"
	"time"

	"github.com/InQaaaaGit/mjml_render.git/internal/models"
)

// serviceName — имя сервиса в справочном ответе
const serviceName = "mjml-render"

// routesDirectory возвращает перечень маршрутов сервиса
func routesDirectory() []models.RouteInfo {
	return []models.RouteInfo{
		{Method: http.MethodPost, Path: "/render", Description: "Compile a single MJML document to HTML"},
		{Method: http.MethodPost, Path: "/render-batch", Description: "Compile up to 100 MJML documents in one request"},
		{Method: http.MethodGet, Path: "/health", Description: "Liveness probe"},
		{Method: http.MethodGet, Path: "/info", Description: "Service metadata"},
	}
}

// HandleHealth обрабатывает GET запрос проверки работоспособности.
// Сервис не держит внешних зависимостей, поэтому ответ всегда "ok".
func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, models.HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// HandleInfo обрабатывает GET запрос справочной информации о сервисе
func (h *Handler) HandleInfo(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	h.writeJSON(w, http.StatusOK, models.InfoResponse{
		Name:        serviceName,
		Version:     h.build.Version,
		MJMLVersion: h.service.EngineVersion(),
		GoVersion:   runtime.Version(),
		Uptime:      now.Sub(h.started).Seconds(),
		Timestamp:   now.UTC().Format(time.RFC3339),
		Endpoints:   routesDirectory(),
	})
}

// HandleNotFound обрабатывает запросы к несуществующим маршрутам
func (h *Handler) HandleNotFound(w http.ResponseWriter, r *http.Request) {
	h.writeError(w, http.StatusNotFound, models.ErrorResponse{
		Error: "route not found",
		Code:  models.CodeNotFound,
		Path:  r.URL.Path,
	})
}
