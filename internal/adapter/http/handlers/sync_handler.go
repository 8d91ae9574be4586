package handlers

import (
	"errors"
	"net/http"

	response "piecework_tracker/internal/adapter/http/dto/response"
	"piecework_tracker/internal/usecase"

	"github.com/gin-gonic/gin"
)

type SyncHandler struct {
	usecase  usecase.ISyncUseCase
	recorder Recorder
}

func NewSyncHandler(uc usecase.ISyncUseCase, recorder Recorder) *SyncHandler {
	return &SyncHandler{usecase: uc, recorder: recorderOrNop(recorder)}
}

// Pull merges remote orders into the local store. Local orders always win.
func (h *SyncHandler) Pull(c *gin.Context) {
	res, err := h.usecase.PullFromSink(c.Request.Context())
	if err != nil {
		if errorsIsSync(err) {
			h.recorder.SyncFailed("pull")
		}
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromSyncResult(res))
}

// Push mirrors one date to the sink without marking it as reported.
func (h *SyncHandler) Push(c *gin.Context) {
	date := c.Param("date")
	n, err := h.usecase.PushDate(c.Request.Context(), date)
	if err != nil {
		if errorsIsSync(err) {
			h.recorder.SyncFailed("push")
		}
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.PushResponse{Date: date, Records: n})
}

func errorsIsSync(err error) bool {
	var sErr *usecase.SyncError
	return errors.As(err, &sErr)
}
