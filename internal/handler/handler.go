package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/InQaaaaGit/mjml_render.git/internal/buildinfo"
	"github.com/InQaaaaGit/mjml_render.git/internal/config"
	"github.com/InQaaaaGit/mjml_render.git/internal/middleware"
	"github.com/InQaaaaGit/mjml_render.git/internal/models"
	"github.com/InQaaaaGit/mjml_render.git/internal/service"
)

const contentTypeJSON = "application/json"

// Лимиты тела запроса по маршрутам: разметка плюс запас на служебные
// поля JSON; для пакета — на каждую запись.
const (
	renderBodyLimit int64 = service.MaxMarkupBytes + 64*1024
	batchBodyLimit  int64 = service.MaxBatchItems * (service.MaxMarkupBytes + 1024)
)

// Handler обслуживает HTTP-эндпоинты сервиса
type Handler struct {
	service service.RenderService
	cfg     *config.Config
	logger  *zap.Logger
	build   *buildinfo.Info
	started time.Time
}

// NewHandler создает новый экземпляр Handler
func NewHandler(service service.RenderService, cfg *config.Config, logger *zap.Logger, build *buildinfo.Info) *Handler {
	if build == nil {
		build = buildinfo.DefaultInfo()
	}
	return &Handler{
		service: service,
		cfg:     cfg,
		logger:  logger,
		build:   build,
		started: time.Now(),
	}
}

// HandleRender обрабатывает POST запрос на компиляцию одного документа
func (h *Handler) HandleRender(w http.ResponseWriter, r *http.Request) {
	var req models.RenderRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	html, err := h.service.RenderOne(r.Context(), req.MJML)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, models.RenderResponse{HTML: html})
}

// HandleRenderBatch обрабатывает POST запрос на пакетную компиляцию
func (h *Handler) HandleRenderBatch(w http.ResponseWriter, r *http.Request) {
	var req models.BatchRenderRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	if !h.validateBatch(w, req) {
		return
	}

	// Начатый пакет доводится до конца даже при обрыве соединения
	ctx := context.WithoutCancel(r.Context())
	results, summary := h.service.RenderBatch(ctx, req.Items)

	h.writeJSON(w, http.StatusOK, models.BatchRenderResponse{
		Summary: summary,
		Results: results,
	})
}

// validateBatch проверяет структуру пакета до запуска компиляции
func (h *Handler) validateBatch(w http.ResponseWriter, req models.BatchRenderRequest) bool {
	if len(req.Items) == 0 {
		h.writeError(w, http.StatusBadRequest, models.ErrorResponse{
			Error: "items must be a non-empty array",
			Code:  models.CodeInvalidInput,
		})
		return false
	}

	if len(req.Items) > service.MaxBatchItems {
		h.writeError(w, http.StatusRequestEntityTooLarge, models.ErrorResponse{
			Error: fmt.Sprintf("batch exceeds the limit of %d items", service.MaxBatchItems),
			Code:  models.CodeTooManyItems,
		})
		return false
	}

	for i, item := range req.Items {
		if !validItemID(item.ID) {
			h.writeError(w, http.StatusBadRequest, models.ErrorResponse{
				Error: fmt.Sprintf("item %d: id must be a string or a number", i),
				Code:  models.CodeInvalidInput,
			})
			return false
		}
	}

	return true
}

// validItemID принимает отсутствующий id, JSON null, строку или число
func validItemID(id json.RawMessage) bool {
	if len(id) == 0 || string(id) == "null" {
		return true
	}
	switch id[0] {
	case '"', '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return true
	default:
		return false
	}
}

// WithRequestID присваивает каждому запросу идентификатор
func (h *Handler) WithRequestID(next http.Handler) http.Handler {
	return middleware.RequestIDMiddleware(next)
}

// WithLogging добавляет логирование запросов
func (h *Handler) WithLogging(next http.Handler) http.Handler {
	return middleware.LoggerMiddleware(h.logger)(next)
}

// WithGzip добавляет поддержку gzip сжатия
func (h *Handler) WithGzip(next http.Handler) http.Handler {
	return middleware.GzipMiddleware(next)
}

// WithRecover перехватывает паники обработчиков и отвечает конвертом ошибки
func (h *Handler) WithRecover(next http.Handler) http.Handler {
	return middleware.RecoverMiddleware(h.logger, h.cfg.IsDevelopment())(next)
}

// WithRenderLimits ограничивает размер тела запроса одиночной компиляции
func (h *Handler) WithRenderLimits(next http.Handler) http.Handler {
	return middleware.BodyLimitMiddleware(renderBodyLimit)(next)
}

// WithBatchLimits ограничивает размер тела пакетного запроса
func (h *Handler) WithBatchLimits(next http.Handler) http.Handler {
	return middleware.BodyLimitMiddleware(batchBodyLimit)(next)
}

// WithBatchGate отклоняет негабаритные пакеты до полного разбора запроса
func (h *Handler) WithBatchGate(next http.Handler) http.Handler {
	return middleware.BatchGateMiddleware(service.MaxBatchItems, h.logger)(next)
}

// writeJSON пишет JSON-ответ с указанным статусом
func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("Error writing JSON response", zap.Error(err))
	}
}

// writeError пишет конверт ошибки с указанным статусом
func (h *Handler) writeError(w http.ResponseWriter, status int, resp models.ErrorResponse) {
	resp.StatusCode = status
	h.writeJSON(w, status, resp)
}
