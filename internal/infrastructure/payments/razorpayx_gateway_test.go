package payments

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"notesbytes_settlement/internal/usecase/interfaces"
)

func TestRazorpayXGateway_CreatePayout(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/v1/payouts" {
				t.Fatalf("unexpected path %s", r.URL.Path)
			}
			user, pass, ok := r.BasicAuth()
			if !ok || user != "key" || pass != "secret" {
				t.Fatalf("expected basic auth credentials")
			}
			var body map[string]any
			if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
				t.Fatalf("bad request body: %v", err)
			}
			if body["fund_account_id"] != "fa_123" || body["reference_id"] != "rev-1" {
				t.Fatalf("unexpected payload: %v", body)
			}
			if body["amount"] != float64(49950) {
				t.Fatalf("unexpected amount: %v", body["amount"])
			}
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"id":"pout_1","status":"processed"}`))
		}))
		defer srv.Close()

		g := NewRazorpayXGateway("key", "secret")
		g.baseURL = srv.URL

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
		if res.ID != "pout_1" || res.Status != "processed" || res.Simulated {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("api error propagates with body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"error":{"description":"insufficient balance"}}`))
		}))
		defer srv.Close()

		g := NewRazorpayXGateway("key", "secret")
		g.baseURL = srv.URL

		_, err := g.CreatePayout(context.Background(), interfaces.PayoutRequest{ReferenceID: "rev-1"})
		if err == nil || !strings.Contains(err.Error(), "insufficient balance") {
			t.Fatalf("expected api error with detail, got %v", err)
		}
	})
}
