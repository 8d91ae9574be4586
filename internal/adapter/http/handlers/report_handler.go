package handlers

import (
	"fmt"
	"net/http"

	response "piecework_tracker/internal/adapter/http/dto/response"
	"piecework_tracker/internal/usecase"

	"github.com/gin-gonic/gin"
)

// ReportHandler serves shift reports and their submission.

type ReportHandler struct {
	reports  usecase.IReportUseCase
	earnings usecase.IEarningsUseCase
	recorder Recorder
}

func NewReportHandler(reports usecase.IReportUseCase, earnings usecase.IEarningsUseCase, recorder Recorder) *ReportHandler {
	return &ReportHandler{reports: reports, earnings: earnings, recorder: recorderOrNop(recorder)}
}

func (h *ReportHandler) GetReport(c *gin.Context) {
	rep, err := h.reports.ReportForDate(c.Request.Context(), c.Param("date"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromReport(rep))
}

// ExportText returns the plain-text export as a file download.
func (h *ReportHandler) ExportText(c *gin.Context) {
	date := c.Param("date")
	text, err := h.reports.ExportText(c.Request.Context(), date)
	if err != nil {
		writeError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="orders_%s.txt"`, date))
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(text))
}

func (h *ReportHandler) SubmitReport(c *gin.Context) {
	res, err := h.reports.SubmitReport(c.Request.Context(), c.Param("date"))
	if err != nil {
		if errorsIsSync(err) {
			h.recorder.SyncFailed("submit")
		}
		writeError(c, err)
		return
	}
	h.recorder.ReportSubmitted()
	c.JSON(http.StatusOK, response.FromSubmitResult(res))
}

func (h *ReportHandler) Breakdown(c *gin.Context) {
	rows, err := h.earnings.OperationBreakdown(c.Request.Context(), c.Param("date"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromBreakdown(rows))
}

func (h *ReportHandler) SentReports(c *gin.Context) {
	dates, err := h.reports.SentReports(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dates)
}
