package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"notesbytes_settlement/internal/domain/entities"
	mock_interfaces "notesbytes_settlement/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestSettlementOpsUseCase_ResetForRetry(t *testing.T) {
	staleThreshold := time.Hour

	t.Run("failed entry resets to pending", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		revs := mock_interfaces.NewMockIRevenueRepository(ctrl)
		uc := NewSettlementOpsUseCase(revs, nil, staleThreshold)

		failedAt := time.Now().UTC()
		revs.EXPECT().GetByID(gomock.Any(), "rev-1").Return(entities.Revenue{
			ID:            "rev-1",
			Status:        entities.RevenueStatusFailed,
			FailureReason: "gateway unavailable",
			FailedAt:      &failedAt,
		}, nil)

		var saved entities.Revenue
		revs.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, r entities.Revenue) (entities.Revenue, error) {
				saved = r
				return r, nil
			})

		got, err := uc.ResetForRetry(context.Background(), "rev-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != entities.RevenueStatusPending {
			t.Fatalf("expected PENDING, got %s", got.Status)
		}
		if saved.FailureReason != "" || saved.FailedAt != nil {
			t.Fatalf("expected failure fields cleared, got %+v", saved)
		}
	})

	t.Run("settled entry is never resetable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		revs := mock_interfaces.NewMockIRevenueRepository(ctrl)
		uc := NewSettlementOpsUseCase(revs, nil, staleThreshold)

		revs.EXPECT().GetByID(gomock.Any(), "rev-1").Return(entities.Revenue{
			ID:       "rev-1",
			Status:   entities.RevenueStatusSettled,
			PayoutID: "pout_1",
		}, nil)

		_, err := uc.ResetForRetry(context.Background(), "rev-1")
		if !errors.Is(err, ErrRevenueNotResetable) {
			t.Fatalf("expected ErrRevenueNotResetable, got %v", err)
		}
	})

	t.Run("fresh processing claim is not resetable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		revs := mock_interfaces.NewMockIRevenueRepository(ctrl)
		uc := NewSettlementOpsUseCase(revs, nil, staleThreshold)

		processingAt := time.Now().UTC().Add(-time.Minute)
		revs.EXPECT().GetByID(gomock.Any(), "rev-1").Return(entities.Revenue{
			ID:           "rev-1",
			Status:       entities.RevenueStatusProcessing,
			ProcessingAt: &processingAt,
		}, nil)

		_, err := uc.ResetForRetry(context.Background(), "rev-1")
		if !errors.Is(err, ErrRevenueNotResetable) {
			t.Fatalf("expected ErrRevenueNotResetable, got %v", err)
		}
	})

	t.Run("stale processing claim resets after review threshold", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		revs := mock_interfaces.NewMockIRevenueRepository(ctrl)
		uc := NewSettlementOpsUseCase(revs, nil, staleThreshold)

		processingAt := time.Now().UTC().Add(-2 * time.Hour)
		revs.EXPECT().GetByID(gomock.Any(), "rev-1").Return(entities.Revenue{
			ID:           "rev-1",
			Status:       entities.RevenueStatusProcessing,
			ProcessingAt: &processingAt,
		}, nil)
		revs.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, r entities.Revenue) (entities.Revenue, error) {
				return r, nil
			})

		got, err := uc.ResetForRetry(context.Background(), "rev-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != entities.RevenueStatusPending {
			t.Fatalf("expected PENDING, got %s", got.Status)
		}
	})

	t.Run("entry with payout id is never resetable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		revs := mock_interfaces.NewMockIRevenueRepository(ctrl)
		uc := NewSettlementOpsUseCase(revs, nil, staleThreshold)

		processingAt := time.Now().UTC().Add(-3 * time.Hour)
		revs.EXPECT().GetByID(gomock.Any(), "rev-1").Return(entities.Revenue{
			ID:           "rev-1",
			Status:       entities.RevenueStatusProcessing,
			PayoutID:     "pout_1",
			ProcessingAt: &processingAt,
		}, nil)

		_, err := uc.ResetForRetry(context.Background(), "rev-1")
		if !errors.Is(err, ErrRevenueNotResetable) {
			t.Fatalf("expected ErrRevenueNotResetable, got %v", err)
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		revs := mock_interfaces.NewMockIRevenueRepository(ctrl)
		uc := NewSettlementOpsUseCase(revs, nil, staleThreshold)

		revs.EXPECT().GetByID(gomock.Any(), "rev-404").Return(entities.Revenue{}, nil)

		_, err := uc.ResetForRetry(context.Background(), "rev-404")
		if !errors.Is(err, ErrRevenueNotFound) {
			t.Fatalf("expected ErrRevenueNotFound, got %v", err)
		}
	})

	t.Run("empty id", func(t *testing.T) {
		uc := NewSettlementOpsUseCase(nil, nil, staleThreshold)
		_, err := uc.ResetForRetry(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidRevenueID) {
			t.Fatalf("expected ErrInvalidRevenueID, got %v", err)
		}
	})
}

func TestSettlementOpsUseCase_ListStaleProcessing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	revs := mock_interfaces.NewMockIRevenueRepository(ctrl)
	uc := NewSettlementOpsUseCase(revs, nil, time.Hour)

	now := time.Now().UTC()
	revs.EXPECT().FindProcessingOlderThan(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cutoff time.Time) ([]entities.Revenue, error) {
			if d := now.Sub(cutoff); d < 59*time.Minute || d > 61*time.Minute {
				t.Fatalf("expected cutoff about one hour ago, got %v", d)
			}
			return []entities.Revenue{{ID: "rev-1", Status: entities.RevenueStatusProcessing}}, nil
		})

	stale, err := uc.ListStaleProcessing(context.Background(), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(stale) != 1 || stale[0].ID != "rev-1" {
		t.Fatalf("unexpected stale set: %+v", stale)
	}
}
