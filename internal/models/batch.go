package models

import "encoding/json"

// BatchItem представляет одну запись в запросе на пакетную компиляцию.
// ID хранится как json.RawMessage, чтобы вернуть его клиенту байт в байт:
// строка остаётся строкой, число — числом.
type BatchItem struct {
	ID   json.RawMessage `json:"id,omitempty"`
	MJML string          `json:"mjml"`
}

// BatchRenderRequest представляет тело запроса на пакетную компиляцию
type BatchRenderRequest struct {
	Items []BatchItem `json:"items"`
}

// BatchItemResult представляет результат компиляции одной записи пакета
type BatchItemResult struct {
	ID      json.RawMessage `json:"id"`
	Success bool            `json:"success"`
	HTML    string          `json:"html,omitempty"`
	Error   string          `json:"error,omitempty"`
	Code    string          `json:"code,omitempty"`
	Errors  []Diagnostic    `json:"errors,omitempty"`
}

// BatchSummary представляет сводку по обработанному пакету
type BatchSummary struct {
	Total   int `json:"total"`
	Success int `json:"success"`
	Failed  int `json:"failed"`
}

// BatchRenderResponse представляет тело ответа на пакетную компиляцию
type BatchRenderResponse struct {
	Summary BatchSummary      `json:"summary"`
	Results []BatchItemResult `json:"results"`
}
