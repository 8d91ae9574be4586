package handlers

import (
	"errors"
	"net/http"
	"testing"

	"piecework_tracker/internal/adapter/http/handlers/mocks"
	"piecework_tracker/internal/domain/entities"
	"piecework_tracker/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestSyncHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantFail   bool
	}{
		{name: "success", wantStatus: http.StatusOK},
		{name: "not configured", err: &usecase.SyncError{Err: usecase.ErrSinkNotConfigured}, wantStatus: http.StatusServiceUnavailable, wantFail: true},
		{name: "malformed", err: &usecase.SyncError{Err: usecase.ErrSinkMalformed}, wantStatus: http.StatusBadGateway, wantFail: true},
		{name: "store error", err: errors.New("db"), wantStatus: http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc := mocks.NewMockISyncUseCase(ctrl)
			rec := &countingRecorder{}
			h := NewSyncHandler(uc, rec)

			r := gin.New()
			r.POST("/v1/sync/pull", h.Pull)

			uc.EXPECT().PullFromSink(gomock.Any()).Return(usecase.SyncResult{Fetched: 3, Orders: 2, Added: 1}, tc.err)

			w := doJSON(r, http.MethodPost, "/v1/sync/pull", "")
			if w.Code != tc.wantStatus {
				t.Fatalf("expected %d, got %d", tc.wantStatus, w.Code)
			}
			if tc.err == nil && w.Body.String() != `{"fetched":3,"orders":2,"added":1}` {
				t.Fatalf("unexpected body: %s", w.Body.String())
			}
			if got := len(rec.syncFailures) == 1; got != tc.wantFail {
				t.Fatalf("sync failure recorded=%v, want %v", got, tc.wantFail)
			}
		})
	}
}

func TestSyncHandler_Push(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockISyncUseCase(ctrl)
	h := NewSyncHandler(uc, nil)

	r := gin.New()
	r.POST("/v1/sync/push/:date", h.Push)

	uc.EXPECT().PushDate(gomock.Any(), "2026-01-21").Return(4, nil)

	w := doJSON(r, http.MethodPost, "/v1/sync/push/2026-01-21", "")
	if w.Code != http.StatusOK || w.Body.String() != `{"date":"2026-01-21","records":4}` {
		t.Fatalf("unexpected response %d: %s", w.Code, w.Body.String())
	}
}

func TestNotificationHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockINotificationUseCase(ctrl)
	h := NewNotificationHandler(uc)

	r := gin.New()
	r.GET("/v1/notifications", h.List)
	r.PATCH("/v1/notifications/:id/read", h.MarkRead)

	uc.EXPECT().ListNotifications(gomock.Any()).Return([]entities.Notification{{ID: "n1"}}, nil)
	uc.EXPECT().MarkRead(gomock.Any(), "n1").Return(entities.Notification{ID: "n1", Read: true}, nil)
	uc.EXPECT().MarkRead(gomock.Any(), "zz").Return(entities.Notification{}, &usecase.NotFoundError{ID: "zz", Err: usecase.ErrNotificationNotFound})

	if w := doJSON(r, http.MethodGet, "/v1/notifications", ""); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w := doJSON(r, http.MethodPatch, "/v1/notifications/n1/read", ""); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	w := doJSON(r, http.MethodPatch, "/v1/notifications/zz/read", "")
	if w.Code != http.StatusNotFound || decodeHTTPError(t, w).Code != "NOTIFICATION_NOT_FOUND" {
		t.Fatalf("expected 404, got %d %s", w.Code, w.Body.String())
	}
}
