package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"luthier_works/internal/adapter/http/handlers/mocks"
	"luthier_works/internal/domain/entities"
	"luthier_works/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestNotificationHandler_ListMine(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing identity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockINotificationUseCase(ctrl)
		h := NewNotificationHandler(uc)

		r := gin.New()
		r.GET("/v1/notifications", h.ListMine)

		req := httptest.NewRequest(http.MethodGet, "/v1/notifications", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockINotificationUseCase(ctrl)
		h := NewNotificationHandler(uc)

		r := gin.New()
		r.GET("/v1/notifications", h.ListMine)

		uc.EXPECT().ListMine(gomock.Any(), entities.Actor{UserID: "staff-1", Role: entities.RoleStaff}).
			Return([]entities.Notification{{ID: "n1", RecipientID: "staff-1"}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/notifications", nil)
		req.Header.Set("X-User-Id", "staff-1")
		req.Header.Set("X-User-Role", "staff")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body) != 1 || body[0]["id"] != "n1" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestNotificationHandler_MarkRead(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockINotificationUseCase(ctrl)
		h := NewNotificationHandler(uc)

		r := gin.New()
		r.PATCH("/v1/notifications/:notification_id/read", h.MarkRead)

		uc.EXPECT().MarkRead(gomock.Any(), gomock.Any(), "n1").
			Return(entities.Notification{}, usecase.ErrNotificationNotFound)

		req := httptest.NewRequest(http.MethodPatch, "/v1/notifications/n1/read", nil)
		req.Header.Set("X-User-Id", "client-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockINotificationUseCase(ctrl)
		h := NewNotificationHandler(uc)

		r := gin.New()
		r.PATCH("/v1/notifications/:notification_id/read", h.MarkRead)

		uc.EXPECT().MarkRead(gomock.Any(), gomock.Any(), "n1").
			Return(entities.Notification{ID: "n1", RecipientID: "client-1", Read: true}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/notifications/n1/read", nil)
		req.Header.Set("X-User-Id", "client-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestNotificationHandler_MarkAllRead(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockINotificationUseCase(ctrl)
	h := NewNotificationHandler(uc)

	r := gin.New()
	r.PATCH("/v1/notifications/read-all", h.MarkAllRead)

	uc.EXPECT().MarkAllRead(gomock.Any(), gomock.Any()).Return(3, nil)

	req := httptest.NewRequest(http.MethodPatch, "/v1/notifications/read-all", nil)
	req.Header.Set("X-User-Id", "client-1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if body["updated"] != float64(3) {
		t.Fatalf("unexpected response body: %s", w.Body.String())
	}
}

func TestNotificationHandler_Delete(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockINotificationUseCase(ctrl)
	h := NewNotificationHandler(uc)

	r := gin.New()
	r.DELETE("/v1/notifications/:notification_id", h.Delete)

	uc.EXPECT().Delete(gomock.Any(), gomock.Any(), "n1").Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/v1/notifications/n1", nil)
	req.Header.Set("X-User-Id", "client-1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
}

func TestMapNotificationError(t *testing.T) {
	if got := mapNotificationError(usecase.ErrInvalidNotificationID); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapNotificationError(usecase.ErrNotificationNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapNotificationError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
