package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"piecework_tracker/internal/adapter/persistence/repository"
	"piecework_tracker/internal/infrastructure/metrics"
	"piecework_tracker/internal/usecase"
	"piecework_tracker/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	clock := func() time.Time { return time.Date(2026, 1, 21, 10, 0, 0, 0, time.UTC) }
	state := repository.NewStateRepository(repository.NewKeyValueMemoryRepository())
	orders := usecase.NewOrderUseCase(state, clock)
	earnings := usecase.NewEarningsUseCase(orders, clock)

	return NewRouter(Dependencies{
		Orders:        orders,
		Earnings:      earnings,
		Reports:       usecase.NewReportUseCase(orders, state, nil, nil, time.Second, clock),
		Sync:          usecase.NewSyncUseCase(orders, nil, time.Second),
		Notifications: usecase.NewNotificationUseCase(orders, state, 12*time.Hour, clock),
		PlanThreshold: decimal.NewFromInt(3000),
		Metrics:       metrics.New(),
		Logger:        logger.Nop(),
	})
}

func call(t *testing.T, r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRouter_Ping(t *testing.T) {
	r := newTestRouter(t)
	w := call(t, r, http.MethodGet, "/v1/ping", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get(requestIDHeader))
}

func TestRouter_OrderLifecycle(t *testing.T) {
	r := newTestRouter(t)

	w := call(t, r, http.MethodPost, "/v1/orders", `{"number":"B-1","date":"2026-01-21","operation":{"kind":"TIME","quantity":2,"duration":1.5}}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var created map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	id := created["id"].(string)

	w = call(t, r, http.MethodPost, "/v1/orders/"+id+"/operations", `{"kind":"LINEAR_CUT","quantity":1,"length":3}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = call(t, r, http.MethodPost, "/v1/orders/"+id+"/finalize", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"order_id":"`+id+`","price":1068}`, w.Body.String())

	w = call(t, r, http.MethodPost, "/v1/orders/"+id+"/operations", `{"kind":"TIME","duration":1}`)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = call(t, r, http.MethodGet, "/v1/earnings/daily?date=2026-01-21", "")
	assert.JSONEq(t, `{"date":"2026-01-21","total":1068}`, w.Body.String())

	w = call(t, r, http.MethodGet, "/v1/earnings/plan?date=2026-01-21", "")
	assert.Contains(t, w.Body.String(), `"percent":35.6`)

	w = call(t, r, http.MethodGet, "/v1/reports/2026-01-21/txt", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Day total: 1068.00")

	w = call(t, r, http.MethodPost, "/v1/reports/2026-01-21/submit", "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	w = call(t, r, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), "piecework_orders_finalized_total 1"))
}

func TestRouter_ValidationErrors(t *testing.T) {
	r := newTestRouter(t)

	w := call(t, r, http.MethodPost, "/v1/orders", `{"number":"  ","operation":{"kind":"TIME","duration":1}}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = call(t, r, http.MethodPost, "/v1/orders", `{"number":"A-1","operation":{"kind":""}}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "OPERATION_KIND_REQUIRED")

	w = call(t, r, http.MethodGet, "/v1/orders", "")
	assert.JSONEq(t, `[]`, w.Body.String())
}
