package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"notesbytes_settlement/internal/domain/entities"
	"notesbytes_settlement/internal/domain/money"
	"notesbytes_settlement/internal/metrics"
	"notesbytes_settlement/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrRevenueRepositoryNotConfigured = errors.New("revenue repository not configured")
	ErrPayoutGatewayNotConfigured     = errors.New("payout gateway not configured")
)

// SettlementConfig carries the per-deployment payout parameters. The
// account number and mode are gateway-side routing details; amounts and
// recipients always come from the ledger.
type SettlementConfig struct {
	AccountNumber  string
	Currency       string
	Mode           string
	Narration      string
	GatewayTimeout time.Duration
	BatchLimit     int
}

func (c SettlementConfig) withDefaults() SettlementConfig {
	if c.Currency == "" {
		c.Currency = "INR"
	}
	if c.Mode == "" {
		c.Mode = "IMPS"
	}
	if c.Narration == "" {
		c.Narration = "Seller payout"
	}
	if c.GatewayTimeout <= 0 {
		c.GatewayTimeout = 30 * time.Second
	}
	if c.BatchLimit <= 0 {
		c.BatchLimit = 100
	}
	return c
}

// PassReport summarizes one settlement pass for logs and tests.
type PassReport struct {
	Pending                  int
	Settled                  int
	Failed                   int
	SkippedNoFundDestination int
	SkippedAlreadyClaimed    int
	Errors                   int
}

// ISettlementUseCase runs one settlement pass over all pending revenue
// entries: claim, transfer through the gateway, finalize, audit, notify.

type ISettlementUseCase interface {
	RunPass(ctx context.Context) (PassReport, error)
}

type SettlementUseCase struct {
	revenues interfaces.IRevenueRepository
	logs     interfaces.IPaymentLogRepository
	sellers  interfaces.ISellerRepository
	gateway  interfaces.IPayoutGateway
	notifier interfaces.INotifier
	cfg      SettlementConfig
	nowFn    func() time.Time
}

var _ ISettlementUseCase = (*SettlementUseCase)(nil)

func NewSettlementUseCase(
	revenues interfaces.IRevenueRepository,
	logs interfaces.IPaymentLogRepository,
	sellers interfaces.ISellerRepository,
	gateway interfaces.IPayoutGateway,
	notifier interfaces.INotifier,
	cfg SettlementConfig,
) *SettlementUseCase {
	return &SettlementUseCase{
		revenues: revenues,
		logs:     logs,
		sellers:  sellers,
		gateway:  gateway,
		notifier: notifier,
		cfg:      cfg.withDefaults(),
		nowFn:    time.Now,
	}
}

// RunPass processes pending entries oldest-first, one at a time. A
// per-entry error never aborts the pass; only failing to query the
// pending set at all returns an error (nothing was touched, the next
// tick retries naturally).
func (u *SettlementUseCase) RunPass(ctx context.Context) (PassReport, error) {
	var report PassReport
	if u.revenues == nil {
		return report, ErrRevenueRepositoryNotConfigured
	}
	if u.gateway == nil {
		return report, ErrPayoutGatewayNotConfigured
	}

	start := u.nowFn()
	log.Printf("[settlement][engine] pass start")

	entries, err := u.revenues.FindPending(ctx, u.cfg.BatchLimit)
	if err != nil {
		metrics.PassesTotal.WithLabelValues("error").Inc()
		log.Printf("[settlement][engine] pass aborted: cannot query pending entries err=%v", err)
		return report, fmt.Errorf("find pending revenues: %w", err)
	}
	report.Pending = len(entries)

	for _, rev := range entries {
		u.settleOne(ctx, rev, &report)
	}

	metrics.PassesTotal.WithLabelValues("ok").Inc()
	metrics.PassDuration.Observe(u.nowFn().Sub(start).Seconds())
	log.Printf("[settlement][engine] pass done pending=%d settled=%d failed=%d skipped_no_fund_destination=%d skipped_claimed=%d errors=%d",
		report.Pending, report.Settled, report.Failed, report.SkippedNoFundDestination, report.SkippedAlreadyClaimed, report.Errors)
	return report, nil
}

func (u *SettlementUseCase) settleOne(ctx context.Context, rev entities.Revenue, report *PassReport) {
	if rev.Status != entities.RevenueStatusPending {
		log.Printf("[settlement][engine] skip non-pending entry revenue_id=%s status=%s", rev.ID, rev.Status)
		return
	}

	seller, err := u.sellers.GetByID(ctx, rev.SellerID)
	if err != nil {
		// Entry was not claimed yet; it stays PENDING for the next pass.
		log.Printf("[settlement][engine] seller lookup failed revenue_id=%s seller_id=%s err=%v", rev.ID, rev.SellerID, err)
		report.Errors++
		return
	}
	if seller.ID == "" {
		log.Printf("[settlement][engine] WARN seller not found revenue_id=%s seller_id=%s", rev.ID, rev.SellerID)
		report.Errors++
		return
	}
	if !seller.HasFundDestination() {
		// Onboarding incomplete. Not a failure: leave PENDING and no
		// audit entry; a later pass picks the entry up once the seller
		// registers a fund destination.
		log.Printf("[settlement][engine] WARN seller has no fund destination, skipping revenue_id=%s seller_id=%s", rev.ID, rev.SellerID)
		metrics.EntriesTotal.WithLabelValues(metrics.OutcomeSkippedNoFundDest).Inc()
		report.SkippedNoFundDestination++
		return
	}

	// Claim before calling the gateway. The conditional write is the
	// at-most-one-transfer guarantee: a concurrent pass or a restart
	// sees PROCESSING and skips the entry.
	claimed, err := u.revenues.Claim(ctx, rev.ID, u.nowFn())
	if errors.Is(err, interfaces.ErrRevenueAlreadyClaimed) {
		log.Printf("[settlement][engine] entry already claimed elsewhere, skipping revenue_id=%s", rev.ID)
		metrics.EntriesTotal.WithLabelValues(metrics.OutcomeSkippedClaimed).Inc()
		report.SkippedAlreadyClaimed++
		return
	}
	if err != nil {
		// Claim write failed: the entry is still PENDING and will be
		// retried next pass.
		log.Printf("[settlement][engine] claim write failed revenue_id=%s err=%v", rev.ID, err)
		metrics.EntriesTotal.WithLabelValues(metrics.OutcomeSkippedClaimFailed).Inc()
		report.Errors++
		return
	}

	result, err := u.transfer(ctx, claimed, seller)
	if err != nil {
		u.finalizeFailure(ctx, claimed, err, report)
		return
	}
	u.finalizeSuccess(ctx, claimed, seller, result, report)
}

func (u *SettlementUseCase) transfer(ctx context.Context, rev entities.Revenue, seller entities.Seller) (interfaces.PayoutResult, error) {
	minor, err := money.ToMinorUnits(rev.SellerAmount)
	if err != nil {
		return interfaces.PayoutResult{}, fmt.Errorf("convert seller amount: %w", err)
	}

	gwCtx, cancel := context.WithTimeout(ctx, u.cfg.GatewayTimeout)
	defer cancel()

	log.Printf("[settlement][engine] transfer start revenue_id=%s seller_id=%s amount_minor=%d %s", rev.ID, seller.ID, minor, u.cfg.Currency)
	return u.gateway.CreatePayout(gwCtx, interfaces.PayoutRequest{
		AccountNumber:    u.cfg.AccountNumber,
		FundDestination:  seller.FundDestination,
		AmountMinorUnits: minor,
		Currency:         u.cfg.Currency,
		Mode:             u.cfg.Mode,
		ReferenceID:      rev.ID,
		Narration:        u.cfg.Narration,
	})
}

func (u *SettlementUseCase) finalizeSuccess(ctx context.Context, rev entities.Revenue, seller entities.Seller, result interfaces.PayoutResult, report *PassReport) {
	now := u.nowFn()
	rev.Status = entities.RevenueStatusSettled
	rev.PayoutID = result.ID
	rev.Simulated = result.Simulated
	rev.FailureReason = ""
	rev.SettledAt = &now
	rev.UpdatedAt = now

	if _, err := u.revenues.Save(ctx, rev); err != nil {
		// Money has moved but the ledger does not reflect it. This is
		// financial divergence, not an ordinary failure: the entry must
		// NOT be marked FAILED (that would invite a double transfer)
		// and the payout id must be reconciled against gateway records.
		log.Printf("[settlement][DIVERGENCE] transfer succeeded but ledger finalize failed revenue_id=%s payout_id=%s err=%v", rev.ID, result.ID, err)
		metrics.DivergenceTotal.Inc()
		report.Errors++
		return
	}

	logEntry := entities.PaymentLog{
		ID:        uuid.NewString(),
		UserID:    rev.SellerID,
		Gateway:   u.gateway.Name(),
		PaymentID: result.ID,
		OrderID:   rev.OrderID,
		EventType: entities.PaymentLogEventPayoutSuccess,
		Amount:    rev.SellerAmount,
		Currency:  u.cfg.Currency,
		Status:    entities.PaymentLogStatusSuccess,
		LogData:   result.Raw,
		CreatedAt: now,
	}
	if _, err := u.logs.Append(ctx, logEntry); err != nil {
		// Entry is SETTLED without its success audit record.
		log.Printf("[settlement][DIVERGENCE] settled without audit log revenue_id=%s payout_id=%s err=%v", rev.ID, result.ID, err)
		metrics.DivergenceTotal.Inc()
	}

	u.notifySeller(ctx, rev, seller)

	metrics.EntriesTotal.WithLabelValues(metrics.OutcomeSettled).Inc()
	report.Settled++
	log.Printf("[settlement][engine] settled revenue_id=%s payout_id=%s simulated=%t", rev.ID, result.ID, result.Simulated)
}

func (u *SettlementUseCase) finalizeFailure(ctx context.Context, rev entities.Revenue, cause error, report *PassReport) {
	now := u.nowFn()
	rev.Status = entities.RevenueStatusFailed
	rev.FailureReason = cause.Error()
	rev.FailedAt = &now
	rev.UpdatedAt = now

	if _, err := u.revenues.Save(ctx, rev); err != nil {
		// The entry stays PROCESSING in the store; the stale-claim
		// surface exposes it for operator review.
		log.Printf("[settlement][engine] failed-finalize write error revenue_id=%s err=%v", rev.ID, err)
		report.Errors++
	}

	detail, _ := json.Marshal(map[string]string{"error": cause.Error()})
	logEntry := entities.PaymentLog{
		ID:        uuid.NewString(),
		UserID:    rev.SellerID,
		Gateway:   u.gateway.Name(),
		OrderID:   rev.OrderID,
		EventType: entities.PaymentLogEventPayoutFailed,
		Amount:    rev.SellerAmount,
		Currency:  u.cfg.Currency,
		Status:    entities.PaymentLogStatusFailed,
		LogData:   detail,
		CreatedAt: now,
	}
	if _, err := u.logs.Append(ctx, logEntry); err != nil {
		log.Printf("[settlement][engine] failed-attempt log append error revenue_id=%s err=%v", rev.ID, err)
	}

	metrics.EntriesTotal.WithLabelValues(metrics.OutcomeFailed).Inc()
	report.Failed++
	log.Printf("[settlement][engine] transfer failed revenue_id=%s err=%v", rev.ID, cause)
}

// notifySeller is best-effort: sellers hear about confirmed payouts
// only, and a delivery failure never alters the entry's terminal state.
func (u *SettlementUseCase) notifySeller(ctx context.Context, rev entities.Revenue, seller entities.Seller) {
	if u.notifier == nil {
		return
	}
	vars := map[string]string{
		"seller_name": seller.Name,
		"amount":      money.Format(rev.SellerAmount, u.cfg.Currency),
		"payout_id":   rev.PayoutID,
		"order_id":    rev.OrderID,
	}
	if err := u.notifier.Send(ctx, seller.Email, entities.TemplateKeySellerPayout, vars); err != nil {
		log.Printf("[settlement][engine] WARN payout notification failed revenue_id=%s seller_id=%s err=%v", rev.ID, seller.ID, err)
		metrics.NotifyFailuresTotal.Inc()
	}
}
