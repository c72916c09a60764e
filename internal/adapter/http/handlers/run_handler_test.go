package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"luthier_works/internal/adapter/http/handlers/mocks"
	"luthier_works/internal/domain/entities"
	"luthier_works/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

const createRunBody = `{"name":"Spring 2026","site":"Nashville","stages":[{"label":"Woodshop","order":1},{"label":"Finish","order":2}]}`

func TestRunHandler_CreateRun(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing identity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRunUseCase(ctrl)
		h := NewRunHandler(uc)

		r := gin.New()
		r.POST("/v1/runs", h.CreateRun)

		req := httptest.NewRequest(http.MethodPost, "/v1/runs", bytes.NewBufferString(createRunBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRunUseCase(ctrl)
		h := NewRunHandler(uc)

		r := gin.New()
		r.POST("/v1/runs", h.CreateRun)

		req := httptest.NewRequest(http.MethodPost, "/v1/runs", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-User-Id", "staff-1")
		req.Header.Set("X-User-Role", "staff")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("client actor is forbidden", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRunUseCase(ctrl)
		h := NewRunHandler(uc)

		r := gin.New()
		r.POST("/v1/runs", h.CreateRun)

		uc.EXPECT().CreateRun(gomock.Any(), entities.Actor{UserID: "client-1", Role: entities.RoleClient}, "Spring 2026", "Nashville", gomock.Any()).
			Return(entities.Run{}, usecase.ErrActorNotStaff)

		req := httptest.NewRequest(http.MethodPost, "/v1/runs", bytes.NewBufferString(createRunBody))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-User-Id", "client-1")
		req.Header.Set("X-User-Role", "client")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRunUseCase(ctrl)
		h := NewRunHandler(uc)

		r := gin.New()
		r.POST("/v1/runs", h.CreateRun)

		now := time.Now().UTC()
		uc.EXPECT().CreateRun(gomock.Any(), gomock.Any(), "Spring 2026", "Nashville", gomock.Len(2)).
			Return(entities.Run{
				ID:   "run-1",
				Name: "Spring 2026",
				Site: "Nashville",
				Stages: []entities.Stage{
					{ID: "stage-a", Label: "Woodshop", Order: 1},
					{ID: "stage-b", Label: "Finish", Order: 2},
				},
				Active:    true,
				StartedAt: now,
			}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/runs", bytes.NewBufferString(createRunBody))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-User-Id", "staff-1")
		req.Header.Set("X-User-Role", "staff")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "run-1" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestRunHandler_GetRun(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRunUseCase(ctrl)
		h := NewRunHandler(uc)

		r := gin.New()
		r.GET("/v1/runs/:run_id", h.GetRun)

		uc.EXPECT().GetRun(gomock.Any(), "nope").Return(entities.Run{}, usecase.ErrRunNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/runs/nope", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRunUseCase(ctrl)
		h := NewRunHandler(uc)

		r := gin.New()
		r.GET("/v1/runs/:run_id", h.GetRun)

		uc.EXPECT().GetRun(gomock.Any(), "run-1").Return(entities.Run{ID: "run-1", Name: "Spring 2026"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/runs/run-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestRunHandler_ListRuns(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("archived excluded by default", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRunUseCase(ctrl)
		h := NewRunHandler(uc)

		r := gin.New()
		r.GET("/v1/runs", h.ListRuns)

		uc.EXPECT().ListRuns(gomock.Any(), false).Return([]entities.Run{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/runs", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("include archived flag", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRunUseCase(ctrl)
		h := NewRunHandler(uc)

		r := gin.New()
		r.GET("/v1/runs", h.ListRuns)

		uc.EXPECT().ListRuns(gomock.Any(), true).Return([]entities.Run{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/runs?include_archived=true", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestRunHandler_PostRunUpdate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("blank title", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRunUseCase(ctrl)
		h := NewRunHandler(uc)

		r := gin.New()
		r.POST("/v1/runs/:run_id/updates", h.PostRunUpdate)

		req := httptest.NewRequest(http.MethodPost, "/v1/runs/run-1/updates", bytes.NewBufferString(`{"body":"no title"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-User-Id", "staff-1")
		req.Header.Set("X-User-Role", "staff")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRunUseCase(ctrl)
		h := NewRunHandler(uc)

		r := gin.New()
		r.POST("/v1/runs/:run_id/updates", h.PostRunUpdate)

		uc.EXPECT().PostRunUpdate(gomock.Any(), gomock.Any(), "run-1", "Necks carved", "All 12 necks are shaped.", nil, true).
			Return(entities.RunUpdate{ID: "upd-1", RunID: "run-1", Title: "Necks carved"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/runs/run-1/updates", bytes.NewBufferString(`{"title":"Necks carved","body":"All 12 necks are shaped.","visible_to_clients":true}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-User-Id", "staff-1")
		req.Header.Set("X-User-Role", "staff")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})
}

func TestMapRunError(t *testing.T) {
	if got := mapRunError(usecase.ErrInvalidRunName); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapRunError(usecase.ErrDuplicateOrder); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapRunError(usecase.ErrActorNotStaff); got.HTTPStatus != http.StatusForbidden {
		t.Fatalf("expected 403")
	}
	if got := mapRunError(usecase.ErrRunNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapRunError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
