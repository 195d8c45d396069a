package models

// RenderRequest представляет тело запроса на компиляцию одного MJML-документа
type RenderRequest struct {
	MJML string `json:"mjml"`
}

// RenderResponse представляет тело успешного ответа с результатом компиляции
type RenderResponse struct {
	HTML string `json:"html"`
}

// HealthResponse представляет ответ эндпоинта проверки работоспособности
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// RouteInfo описывает один маршрут сервиса в справочном ответе
type RouteInfo struct {
	Method      string `json:"method"`
	Path        string `json:"path"`
	Description string `json:"description"`
}

// InfoResponse представляет справочную информацию о сервисе
type InfoResponse struct {
	Name        string      `json:"name"`
	Version     string      `json:"version"`
	MJMLVersion string      `json:"mjmlVersion"`
	GoVersion   string      `json:"goVersion"`
	Uptime      float64     `json:"uptime"`
	Timestamp   string      `json:"timestamp"`
	Endpoints   []RouteInfo `json:"endpoints"`
}
