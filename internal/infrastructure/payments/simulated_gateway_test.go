package payments

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"notesbytes_settlement/internal/usecase/interfaces"
)

func TestSimulatedGateway_CreatePayout(t *testing.T) {
	g := NewSimulatedGateway()

	res, err := g.CreatePayout(context.Background(), interfaces.PayoutRequest{
		AccountNumber:    "acc_primary",
		FundDestination:  "fa_123",
		AmountMinorUnits: 49950,
		Currency:         "INR",
		Mode:             "IMPS",
		ReferenceID:      "rev-1",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Simulated {
		t.Fatalf("expected simulated flag set")
	}
	if !strings.HasPrefix(res.ID, "sim_pout_") {
		t.Fatalf("expected generated sim_pout_ id, got %q", res.ID)
	}
	if res.Status != "processed" {
		t.Fatalf("expected processed status, got %q", res.Status)
	}

	var raw map[string]any
	if err := json.Unmarshal(res.Raw, &raw); err != nil {
		t.Fatalf("raw payload not json: %v", err)
	}
	if raw["reference_id"] != "rev-1" {
		t.Fatalf("expected reference_id echoed in raw payload, got %v", raw["reference_id"])
	}
}

func TestNewPayoutGatewayFromEnv(t *testing.T) {
	t.Run("mock mode", func(t *testing.T) {
		t.Setenv("PAYOUT_GATEWAY_MOCK", "true")
		g, err := NewPayoutGatewayFromEnv()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if g.Name() != "simulated" {
			t.Fatalf("expected simulated gateway, got %s", g.Name())
		}
	})

	t.Run("no credentials falls back to simulated", func(t *testing.T) {
		t.Setenv("PAYOUT_GATEWAY_MOCK", "")
		t.Setenv("PAYOUT_KEY_ID", "")
		t.Setenv("PAYOUT_KEY_SECRET", "")
		g, err := NewPayoutGatewayFromEnv()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if g.Name() != "simulated" {
			t.Fatalf("expected simulated gateway, got %s", g.Name())
		}
	})

	t.Run("credentials select live client", func(t *testing.T) {
		t.Setenv("PAYOUT_GATEWAY_MOCK", "")
		t.Setenv("PAYOUT_KEY_ID", "rzp_test_key")
		t.Setenv("PAYOUT_KEY_SECRET", "secret")
		g, err := NewPayoutGatewayFromEnv()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if g.Name() != "razorpayx" {
			t.Fatalf("expected razorpayx gateway, got %s", g.Name())
		}
	})
}
