package handlers

import (
	"errors"
	"net/http"

	"piecework_tracker/internal/usecase"
	"piecework_tracker/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidOrderPayload = pkg.NewDomainErrorSimple("INVALID_ORDER_INPUT", "Invalid order payload", http.StatusBadRequest)
	errInvalidDatePayload  = pkg.NewDomainErrorSimple("INVALID_DATE_INPUT", "Invalid date payload", http.StatusBadRequest)
)

func mapError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderNumber):
		return pkg.NewDomainError("INVALID_ORDER_NUMBER", "Order number is required", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOperationKindRequired):
		return pkg.NewDomainError("OPERATION_KIND_REQUIRED", "Select an operation kind", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidDate):
		return pkg.NewDomainError("INVALID_DATE", "Date must be YYYY-MM-DD", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidMonth):
		return pkg.NewDomainError("INVALID_MONTH", "Month must be YYYY-MM", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidOrderID):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainError("ORDER_NOT_FOUND", "Order not found", err, http.StatusNotFound)
	case errors.Is(err, usecase.ErrNotificationNotFound):
		return pkg.NewDomainError("NOTIFICATION_NOT_FOUND", "Notification not found", err, http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrderClosed):
		return pkg.NewDomainError("ORDER_CLOSED", "Order is closed", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrReportAlreadySent):
		return pkg.NewDomainError("REPORT_ALREADY_SENT", "Report for this date was already sent", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrNoClosedOrders):
		return pkg.NewDomainError("NO_CLOSED_ORDERS", "No closed orders for this date", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrSinkNotConfigured):
		return pkg.NewDomainError("SINK_NOT_CONFIGURED", "External sink is not configured", err, http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrSinkMalformed):
		return pkg.NewDomainError("SINK_MALFORMED", "External sink returned malformed data", err, http.StatusBadGateway)
	case errors.Is(err, usecase.ErrSinkUnavailable):
		return pkg.NewDomainError("SINK_UNAVAILABLE", "External sink unavailable", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func writeError(c *gin.Context, err error) {
	appErr := mapError(err)
	_ = c.Error(err)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func writeAppError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
