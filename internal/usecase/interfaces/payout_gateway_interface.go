package interfaces

import (
	"context"
	"encoding/json"
)

// PayoutRequest carries one transfer instruction to the gateway.
//
// ReferenceID must be the Revenue id so the gateway can deduplicate a
// retried call on its side (defense in depth alongside the claim step).
type PayoutRequest struct {
	AccountNumber    string
	FundDestination  string
	AmountMinorUnits int64
	Currency         string
	Mode             string
	ReferenceID      string
	Narration        string
}

// PayoutResult is the gateway's answer to a transfer instruction.
//
// Simulated marks results produced without a live gateway call; Raw
// keeps the full provider response for the audit trail.
type PayoutResult struct {
	ID        string
	Status    string
	Simulated bool
	Raw       json.RawMessage
}

// IPayoutGateway abstracts external payout providers.
//
// Implementations must not retry internally: retry policy lives in the
// engine's outer loop across scheduler ticks, and a duplicated call
// risks a duplicated transfer. Network/API errors are propagated
// unmodified.

type IPayoutGateway interface {
	Name() string
	CreatePayout(ctx context.Context, req PayoutRequest) (PayoutResult, error)
}
