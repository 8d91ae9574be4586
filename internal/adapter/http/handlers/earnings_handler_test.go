package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"piecework_tracker/internal/adapter/http/handlers/mocks"
	"piecework_tracker/internal/domain/earnings"
	"piecework_tracker/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newEarningsRouter(uc *mocks.MockIEarningsUseCase) *gin.Engine {
	h := NewEarningsHandler(uc, decimal.NewFromInt(3000))
	r := gin.New()
	r.GET("/v1/earnings/total", h.Total)
	r.GET("/v1/earnings/daily", h.Daily)
	r.GET("/v1/earnings/last7", h.Last7Days)
	r.GET("/v1/earnings/monthly", h.Monthly)
	r.GET("/v1/earnings/plan", h.Plan)
	r.GET("/v1/earnings/dates", h.Dates)
	r.GET("/v1/rates", h.Rates)
	return r
}

func TestEarningsHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIEarningsUseCase(ctrl)
	r := newEarningsRouter(uc)

	t.Run("total", func(t *testing.T) {
		uc.EXPECT().TotalEarnings(gomock.Any()).Return(decimal.RequireFromString("1850.5"), nil)
		w := doJSON(r, http.MethodGet, "/v1/earnings/total", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"total":1850.5}`, w.Body.String())
	})

	t.Run("daily", func(t *testing.T) {
		uc.EXPECT().DailyEarnings(gomock.Any(), "2026-01-21").Return(decimal.RequireFromString("162.5"), nil)
		w := doJSON(r, http.MethodGet, "/v1/earnings/daily?date=2026-01-21", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"date":"2026-01-21","total":162.5}`, w.Body.String())
	})

	t.Run("plan passes configured threshold", func(t *testing.T) {
		uc.EXPECT().PlanProgress(gomock.Any(), "", decimal.NewFromInt(3000)).Return(earnings.PlanProgress{
			Date:      "2026-01-21",
			Earned:    decimal.NewFromInt(1650),
			Threshold: decimal.NewFromInt(3000),
			Percent:   55,
		}, nil)
		w := doJSON(r, http.MethodGet, "/v1/earnings/plan", "")
		require.Equal(t, http.StatusOK, w.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, 55.0, body["percent"])
		assert.Equal(t, false, body["achieved"])
	})

	t.Run("monthly invalid month", func(t *testing.T) {
		uc.EXPECT().MonthlyMeasureTotals(gomock.Any(), "2026-13").
			Return(earnings.MeasureTotals{}, &usecase.ValidationError{Field: "month", Err: usecase.ErrInvalidMonth})
		w := doJSON(r, http.MethodGet, "/v1/earnings/monthly?month=2026-13", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "INVALID_MONTH", decodeHTTPError(t, w).Code)
	})

	t.Run("last 7 days", func(t *testing.T) {
		uc.EXPECT().Last7DaysSeries(gomock.Any(), "").Return(make([]earnings.DailyPoint, 7), nil)
		w := doJSON(r, http.MethodGet, "/v1/earnings/last7", "")
		var body []map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Len(t, body, 7)
	})

	t.Run("dates error", func(t *testing.T) {
		uc.EXPECT().DatesWithOrders(gomock.Any()).Return(nil, errors.New("db"))
		w := doJSON(r, http.MethodGet, "/v1/earnings/dates", "")
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})

	t.Run("rates", func(t *testing.T) {
		w := doJSON(r, http.MethodGet, "/v1/rates", "")
		var body []map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Len(t, body, 7)
	})
}
