package handlers

import (
	"net/http"

	response "piecework_tracker/internal/adapter/http/dto/response"
	"piecework_tracker/internal/domain/entities"
	"piecework_tracker/internal/domain/pricing"
	"piecework_tracker/internal/usecase"

	"github.com/gin-gonic/gin"
)

// EarningsHandler serves the derived earnings views and the rate table.
type EarningsHandler struct {
	usecase       usecase.IEarningsUseCase
	planThreshold entities.Money
}

func NewEarningsHandler(uc usecase.IEarningsUseCase, planThreshold entities.Money) *EarningsHandler {
	return &EarningsHandler{usecase: uc, planThreshold: planThreshold}
}

func (h *EarningsHandler) Total(c *gin.Context) {
	total, err := h.usecase.TotalEarnings(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.TotalResponse{Total: total.InexactFloat64()})
}

func (h *EarningsHandler) Daily(c *gin.Context) {
	date := c.Query("date")
	total, err := h.usecase.DailyEarnings(c.Request.Context(), date)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.DailyResponse{Date: date, Total: total.InexactFloat64()})
}

func (h *EarningsHandler) Last7Days(c *gin.Context) {
	series, err := h.usecase.Last7DaysSeries(c.Request.Context(), c.Query("date"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromSeries(series))
}

func (h *EarningsHandler) Monthly(c *gin.Context) {
	totals, err := h.usecase.MonthlyMeasureTotals(c.Request.Context(), c.Query("month"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromMonthly(totals))
}

func (h *EarningsHandler) Plan(c *gin.Context) {
	progress, err := h.usecase.PlanProgress(c.Request.Context(), c.Query("date"), h.planThreshold)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromPlan(progress))
}

// Dates lists the days that have at least one order, newest first.
func (h *EarningsHandler) Dates(c *gin.Context) {
	dates, err := h.usecase.DatesWithOrders(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dates)
}

func (h *EarningsHandler) Rates(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromRates(pricing.RateTable()))
}
