package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"notesbytes_settlement/internal/domain/entities"
	"notesbytes_settlement/internal/metrics"
	"notesbytes_settlement/internal/usecase/interfaces"
)

var (
	ErrRevenueNotFound     = errors.New("revenue not found")
	ErrInvalidRevenueID    = errors.New("invalid revenue id")
	ErrRevenueNotResetable = errors.New("revenue not eligible for reset")
)

// ISettlementOpsUseCase is the operator surface over the ledger.
//
// The engine never auto-retries a FAILED entry and never recovers an
// entry stuck PROCESSING after a crash; both paths require a human
// decision, which is what these operations exist for:
//   - ListStaleProcessing surfaces crash-orphaned claims for review
//   - ResetForRetry returns a reviewed entry to PENDING

type ISettlementOpsUseCase interface {
	GetRevenue(ctx context.Context, id string) (entities.Revenue, error)
	ListLogsByOrderID(ctx context.Context, orderID string) ([]entities.PaymentLog, error)
	ListStaleProcessing(ctx context.Context, olderThan time.Duration) ([]entities.Revenue, error)
	ResetForRetry(ctx context.Context, id string) (entities.Revenue, error)
}

type SettlementOpsUseCase struct {
	revenues       interfaces.IRevenueRepository
	logs           interfaces.IPaymentLogRepository
	staleThreshold time.Duration
	nowFn          func() time.Time
}

var _ ISettlementOpsUseCase = (*SettlementOpsUseCase)(nil)

func NewSettlementOpsUseCase(revenues interfaces.IRevenueRepository, logs interfaces.IPaymentLogRepository, staleThreshold time.Duration) *SettlementOpsUseCase {
	if staleThreshold <= 0 {
		staleThreshold = time.Hour
	}
	return &SettlementOpsUseCase{
		revenues:       revenues,
		logs:           logs,
		staleThreshold: staleThreshold,
		nowFn:          time.Now,
	}
}

func (u *SettlementOpsUseCase) GetRevenue(ctx context.Context, id string) (entities.Revenue, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Revenue{}, ErrInvalidRevenueID
	}
	rev, err := u.revenues.GetByID(ctx, id)
	if err != nil {
		return entities.Revenue{}, err
	}
	if rev.ID == "" {
		return entities.Revenue{}, ErrRevenueNotFound
	}
	return rev, nil
}

func (u *SettlementOpsUseCase) ListLogsByOrderID(ctx context.Context, orderID string) ([]entities.PaymentLog, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return nil, ErrInvalidRevenueID
	}
	return u.logs.ListByOrderID(ctx, orderID)
}

// ListStaleProcessing returns entries claimed before now-olderThan that
// never reached a terminal state. olderThan <= 0 uses the configured
// threshold.
func (u *SettlementOpsUseCase) ListStaleProcessing(ctx context.Context, olderThan time.Duration) ([]entities.Revenue, error) {
	if olderThan <= 0 {
		olderThan = u.staleThreshold
	}
	cutoff := u.nowFn().Add(-olderThan)
	stale, err := u.revenues.FindProcessingOlderThan(ctx, cutoff)
	if err != nil {
		return nil, err
	}
	metrics.StaleProcessing.Set(float64(len(stale)))
	return stale, nil
}

// ResetForRetry moves a reviewed entry back to PENDING so the next pass
// picks it up. Allowed from FAILED, and from PROCESSING only once the
// claim is older than the stale threshold (a fresh claim may still have
// a transfer in flight). An entry with a payout id has been paid and is
// never eligible.
func (u *SettlementOpsUseCase) ResetForRetry(ctx context.Context, id string) (entities.Revenue, error) {
	rev, err := u.GetRevenue(ctx, id)
	if err != nil {
		return entities.Revenue{}, err
	}
	if rev.PayoutID != "" {
		return entities.Revenue{}, ErrRevenueNotResetable
	}

	switch rev.Status {
	case entities.RevenueStatusFailed:
		// ok
	case entities.RevenueStatusProcessing:
		if rev.ProcessingAt == nil || u.nowFn().Sub(*rev.ProcessingAt) < u.staleThreshold {
			return entities.Revenue{}, ErrRevenueNotResetable
		}
	default:
		return entities.Revenue{}, ErrRevenueNotResetable
	}

	now := u.nowFn()
	rev.Status = entities.RevenueStatusPending
	rev.FailureReason = ""
	rev.ProcessingAt = nil
	rev.FailedAt = nil
	rev.UpdatedAt = now

	saved, err := u.revenues.Save(ctx, rev)
	if err != nil {
		return entities.Revenue{}, err
	}
	log.Printf("[settlement][ops] reset to pending revenue_id=%s", saved.ID)
	return saved, nil
}
