package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"

	"notesbytes_settlement/internal/usecase/interfaces"
)

const defaultPayoutBaseURL = "https://api.razorpay.com"

// RazorpayXGateway issues real-money transfers through the RazorpayX
// payouts REST API. The client never retries: a duplicated POST risks a
// duplicated transfer, and the request's reference_id lets the gateway
// deduplicate if a retry does happen upstream. Errors are returned
// unmodified to the engine.

type RazorpayXGateway struct {
	keyID     string
	keySecret string
	baseURL   string
	client    *http.Client
}

var _ interfaces.IPayoutGateway = (*RazorpayXGateway)(nil)

func NewRazorpayXGateway(keyID, keySecret string) *RazorpayXGateway {
	log.Printf("[payout][gateway] razorpayx client initialized key_id=%s", keyID)
	return &RazorpayXGateway{
		keyID:     keyID,
		keySecret: keySecret,
		baseURL:   defaultPayoutBaseURL,
		// Per-call deadlines come from the engine's context.
		client: &http.Client{},
	}
}

func (g *RazorpayXGateway) Name() string { return "razorpayx" }

type payoutAPIRequest struct {
	AccountNumber string `json:"account_number"`
	FundAccountID string `json:"fund_account_id"`
	Amount        int64  `json:"amount"`
	Currency      string `json:"currency"`
	Mode          string `json:"mode"`
	Purpose       string `json:"purpose"`
	ReferenceID   string `json:"reference_id"`
	Narration     string `json:"narration,omitempty"`
}

type payoutAPIResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

func (g *RazorpayXGateway) CreatePayout(ctx context.Context, req interfaces.PayoutRequest) (interfaces.PayoutResult, error) {
	body, err := json.Marshal(payoutAPIRequest{
		AccountNumber: req.AccountNumber,
		FundAccountID: req.FundDestination,
		Amount:        req.AmountMinorUnits,
		Currency:      req.Currency,
		Mode:          req.Mode,
		Purpose:       "payout",
		ReferenceID:   req.ReferenceID,
		Narration:     req.Narration,
	})
	if err != nil {
		return interfaces.PayoutResult{}, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/v1/payouts", bytes.NewReader(body))
	if err != nil {
		return interfaces.PayoutResult{}, err
	}
	httpReq.SetBasicAuth(g.keyID, g.keySecret)
	httpReq.Header.Set("Content-Type", "application/json")
	// Gateway-side idempotency key, in addition to reference_id.
	httpReq.Header.Set("X-Payout-Idempotency", req.ReferenceID)

	log.Printf("[payout][gateway] create start reference_id=%s amount_minor=%d %s", req.ReferenceID, req.AmountMinorUnits, req.Currency)
	resp, err := g.client.Do(httpReq)
	if err != nil {
		log.Printf("[payout][gateway] create failed reference_id=%s err=%v", req.ReferenceID, err)
		return interfaces.PayoutResult{}, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return interfaces.PayoutResult{}, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Printf("[payout][gateway] create rejected reference_id=%s status=%d", req.ReferenceID, resp.StatusCode)
		return interfaces.PayoutResult{}, fmt.Errorf("payout api status %d: %s", resp.StatusCode, raw)
	}

	var parsed payoutAPIResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return interfaces.PayoutResult{}, err
	}
	log.Printf("[payout][gateway] create success reference_id=%s payout_id=%s status=%s", req.ReferenceID, parsed.ID, parsed.Status)

	return interfaces.PayoutResult{
		ID:     parsed.ID,
		Status: parsed.Status,
		Raw:    raw,
	}, nil
}
