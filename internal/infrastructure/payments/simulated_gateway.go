package payments

import (
	"context"
	"encoding/json"
	"log"
	"strings"
	"time"

	"notesbytes_settlement/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// SimulatedGateway produces deterministic synthetic payout results so
// the full settlement pipeline can run in environments without live
// payment credentials. Results are flagged Simulated and carry a
// generated id; no money moves.

type SimulatedGateway struct{}

var _ interfaces.IPayoutGateway = (*SimulatedGateway)(nil)

func NewSimulatedGateway() *SimulatedGateway {
	return &SimulatedGateway{}
}

func (g *SimulatedGateway) Name() string { return "simulated" }

func (g *SimulatedGateway) CreatePayout(_ context.Context, req interfaces.PayoutRequest) (interfaces.PayoutResult, error) {
	id := "sim_pout_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:14]
	now := time.Now().UTC().Format(time.RFC3339Nano)

	raw, err := json.Marshal(map[string]any{
		"id":           id,
		"status":       "processed",
		"simulated":    true,
		"amount":       req.AmountMinorUnits,
		"currency":     req.Currency,
		"mode":         req.Mode,
		"reference_id": req.ReferenceID,
		"created_at":   now,
	})
	if err != nil {
		return interfaces.PayoutResult{}, err
	}

	log.Printf("[payout][gateway] simulated payout id=%s reference_id=%s amount_minor=%d", id, req.ReferenceID, req.AmountMinorUnits)
	return interfaces.PayoutResult{
		ID:        id,
		Status:    "processed",
		Simulated: true,
		Raw:       raw,
	}, nil
}
