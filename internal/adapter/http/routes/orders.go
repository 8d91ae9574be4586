package routes

import (
	"piecework_tracker/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathOrders        = "/orders"
	PathEarnings      = "/earnings"
	PathReports       = "/reports"
	PathSync          = "/sync"
	PathNotifications = "/notifications"
	PathRates         = "/rates"
)

func addOrderRoutes(rg *gin.RouterGroup, h *handlers.OrderHandler) {
	orders := rg.Group(PathOrders)
	{
		orders.POST("", h.CreateOrder)
		orders.GET("", h.ListOrders)
		orders.GET("/:id", h.GetOrder)
		orders.POST("/:id/operations", h.AddOperation)
		orders.POST("/:id/finalize", h.FinalizeOrder)
		orders.PATCH("/:id/date", h.UpdateOrderDate)
		orders.DELETE("/:id", h.DeleteOrder)
	}
}

func addEarningsRoutes(rg *gin.RouterGroup, h *handlers.EarningsHandler) {
	earnings := rg.Group(PathEarnings)
	{
		earnings.GET("/total", h.Total)
		earnings.GET("/daily", h.Daily)
		earnings.GET("/last7", h.Last7Days)
		earnings.GET("/monthly", h.Monthly)
		earnings.GET("/plan", h.Plan)
		earnings.GET("/dates", h.Dates)
	}
	rg.GET(PathRates, h.Rates)
}

func addReportRoutes(rg *gin.RouterGroup, h *handlers.ReportHandler) {
	reports := rg.Group(PathReports)
	{
		reports.GET("", h.SentReports)
		reports.GET("/:date", h.GetReport)
		reports.GET("/:date/txt", h.ExportText)
		reports.GET("/:date/breakdown", h.Breakdown)
		reports.POST("/:date/submit", h.SubmitReport)
	}
}

func addSyncRoutes(rg *gin.RouterGroup, h *handlers.SyncHandler) {
	sync := rg.Group(PathSync)
	{
		sync.POST("/pull", h.Pull)
		sync.POST("/push/:date", h.Push)
	}
}

func addNotificationRoutes(rg *gin.RouterGroup, h *handlers.NotificationHandler) {
	notifications := rg.Group(PathNotifications)
	{
		notifications.GET("", h.List)
		notifications.PATCH("/:id/read", h.MarkRead)
	}
}
