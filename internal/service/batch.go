package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"runtime"
	"strconv"
	"sync"

	"go.uber.org/zap"

	"github.com/InQaaaaGit/mjml_render.git/internal/models"
)

// Границы пула обработчиков пакета
const (
	minBatchWorkers = 1
	maxBatchWorkers = 8
	cpuDivisor      = 2
)

// batchWorkers возвращает размер пула для пакета из n записей
func batchWorkers(n int) int {
	workers := runtime.GOMAXPROCS(0) / cpuDivisor
	if workers < minBatchWorkers {
		workers = minBatchWorkers
	}
	if workers > maxBatchWorkers {
		workers = maxBatchWorkers
	}
	if workers > n {
		workers = n
	}
	return workers
}

// RenderBatch компилирует записи пакета независимо друг от друга.
// Порядок results совпадает с порядком items; отказ одной записи
// не влияет на обработку остальных.
func (s *RenderServiceImpl) RenderBatch(ctx context.Context, items []models.BatchItem) ([]models.BatchItemResult, models.BatchSummary) {
	results := make([]models.BatchItemResult, len(items))
	if len(items) == 0 {
		return results, models.BatchSummary{}
	}

	jobs := make(chan int, len(items))
	var wg sync.WaitGroup

	for w := 0; w < batchWorkers(len(items)); w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				results[idx] = s.renderItem(ctx, idx, items[idx])
			}
		}()
	}

	for i := range items {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	summary := models.BatchSummary{Total: len(items)}
	for i := range results {
		if results[i].Success {
			summary.Success++
		} else {
			summary.Failed++
		}
	}

	return results, summary
}

// renderItem обрабатывает одну запись пакета. Паника при обработке
// превращается в отказ этой записи и не задевает соседние.
func (s *RenderServiceImpl) renderItem(ctx context.Context, idx int, item models.BatchItem) (result models.BatchItemResult) {
	result.ID = itemID(idx, item)

	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("batch item panic",
				zap.Int("index", idx),
				zap.Any("panic", r))
			result = models.BatchItemResult{
				ID:    result.ID,
				Code:  models.CodeProcessingError,
				Error: s.itemFailureMessage(fmt.Sprintf("panic: %v", r)),
			}
		}
	}()

	html, err := s.RenderOne(ctx, item.MJML)
	if err != nil {
		var svcErr *Error
		if errors.As(err, &svcErr) {
			result.Code = svcErr.Code
			result.Error = svcErr.Message
			result.Errors = svcErr.Diagnostics
			return result
		}

		s.logger.Error("batch item failed",
			zap.Int("index", idx),
			zap.Error(err))
		result.Code = models.CodeProcessingError
		result.Error = s.itemFailureMessage(err.Error())
		return result
	}

	result.Success = true
	result.HTML = html
	return result
}

// itemID возвращает идентификатор записи: заявленный клиентом — байт в байт,
// иначе порядковый номер записи в пакете
func itemID(idx int, item models.BatchItem) json.RawMessage {
	if len(item.ID) == 0 || string(item.ID) == "null" {
		return json.RawMessage(strconv.Itoa(idx))
	}
	return item.ID
}

// itemFailureMessage скрывает внутренние подробности вне режима разработки
func (s *RenderServiceImpl) itemFailureMessage(detail string) string {
	if s.config.IsDevelopment() {
		return detail
	}
	return "item processing failed"
}
