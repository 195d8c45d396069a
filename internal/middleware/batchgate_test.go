package middleware

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/InQaaaaGit/mjml_render.git/internal/models"
)

// batchBody собирает тело пакетного запроса с n записями
func batchBody(n int) string {
	items := make([]string, 0, n)
	for i := 0; i < n; i++ {
		items = append(items, fmt.Sprintf(`{"mjml":"doc-%d"}`, i))
	}
	return `{"items":[` + strings.Join(items, ",") + `]}`
}

func TestBatchGateMiddleware(t *testing.T) {
	const maxItems = 100

	tests := []struct {
		name          string
		body          string
		wantStatus    int
		wantCode      string
		handlerCalled bool
	}{
		{
			name:          "batch above the limit is rejected",
			body:          batchBody(maxItems + 1),
			wantStatus:    http.StatusRequestEntityTooLarge,
			wantCode:      models.CodeTooManyItems,
			handlerCalled: false,
		},
		{
			name:          "batch at the limit passes",
			body:          batchBody(maxItems),
			wantStatus:    http.StatusOK,
			handlerCalled: true,
		},
		{
			name:          "malformed JSON falls through to the handler",
			body:          `{"items": [{"mjml": "unterminated`,
			wantStatus:    http.StatusOK,
			handlerCalled: true,
		},
		{
			name:          "body without items passes",
			body:          `{"mjml":"<mjml></mjml>"}`,
			wantStatus:    http.StatusOK,
			handlerCalled: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var handlerCalled bool
			var handlerBody string
			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				handlerCalled = true
				body, err := io.ReadAll(r.Body)
				require.NoError(t, err)
				handlerBody = string(body)
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodPost, "/render-batch", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			BatchGateMiddleware(maxItems, zap.NewNop())(handler).ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.handlerCalled, handlerCalled)

			if tt.handlerCalled {
				// Тело должно дойти до обработчика нетронутым
				assert.Equal(t, tt.body, handlerBody)
				return
			}

			var resp models.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantCode, resp.Code)
		})
	}
}

func TestBatchGateMiddleware_BodyLimitOverflow(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler must not be called")
	})

	// Лимит в один килобайт, тело заметно больше
	chain := BodyLimitMiddleware(1024)(BatchGateMiddleware(100, zap.NewNop())(handler))

	req := httptest.NewRequest(http.MethodPost, "/render-batch", strings.NewReader(batchBody(100)))
	w := httptest.NewRecorder()

	chain.ServeHTTP(w, req)

	require.Equal(t, http.StatusRequestEntityTooLarge, w.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, models.CodeContentTooLarge, resp.Code)
}

func TestBodyLimitMiddleware_UnderLimit(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.Equal(t, "small body", string(body))
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/render", strings.NewReader("small body"))
	w := httptest.NewRecorder()

	BodyLimitMiddleware(1024)(handler).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
