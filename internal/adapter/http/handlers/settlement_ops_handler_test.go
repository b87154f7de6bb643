package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"notesbytes_settlement/internal/adapter/http/handlers/mocks"
	"notesbytes_settlement/internal/domain/entities"
	"notesbytes_settlement/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestSettlementOpsHandler_ResetForRetry(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISettlementOpsUseCase(ctrl)
		h := NewSettlementOpsHandler(uc)

		r := gin.New()
		r.PATCH("/v1/settlements/:id/reset", h.ResetForRetry)

		uc.EXPECT().ResetForRetry(gomock.Any(), "rev-1").Return(entities.Revenue{ID: "rev-1", Status: entities.RevenueStatusPending}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/settlements/rev-1/reset", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("not resetable maps to conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISettlementOpsUseCase(ctrl)
		h := NewSettlementOpsHandler(uc)

		r := gin.New()
		r.PATCH("/v1/settlements/:id/reset", h.ResetForRetry)

		uc.EXPECT().ResetForRetry(gomock.Any(), "rev-1").Return(entities.Revenue{}, usecase.ErrRevenueNotResetable)

		req := httptest.NewRequest(http.MethodPatch, "/v1/settlements/rev-1/reset", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("unknown id maps to not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISettlementOpsUseCase(ctrl)
		h := NewSettlementOpsHandler(uc)

		r := gin.New()
		r.PATCH("/v1/settlements/:id/reset", h.ResetForRetry)

		uc.EXPECT().ResetForRetry(gomock.Any(), "rev-404").Return(entities.Revenue{}, usecase.ErrRevenueNotFound)

		req := httptest.NewRequest(http.MethodPatch, "/v1/settlements/rev-404/reset", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestSettlementOpsHandler_ListStale(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("passes parsed threshold", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISettlementOpsUseCase(ctrl)
		h := NewSettlementOpsHandler(uc)

		r := gin.New()
		r.GET("/v1/settlements/stale", h.ListStale)

		uc.EXPECT().ListStaleProcessing(gomock.Any(), 2*time.Hour).Return([]entities.Revenue{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/settlements/stale?older_than=2h", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("rejects bad duration", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISettlementOpsUseCase(ctrl)
		h := NewSettlementOpsHandler(uc)

		r := gin.New()
		r.GET("/v1/settlements/stale", h.ListStale)

		req := httptest.NewRequest(http.MethodGet, "/v1/settlements/stale?older_than=soon", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}
