package entities

import (
	"encoding/json"
	"time"
)

type PaymentLogEvent string

const (
	PaymentLogEventPayoutSuccess PaymentLogEvent = "payout_success"
	PaymentLogEventPayoutFailed  PaymentLogEvent = "payout_failed"
)

type PaymentLogStatus string

const (
	PaymentLogStatusSuccess PaymentLogStatus = "SUCCESS"
	PaymentLogStatusFailed  PaymentLogStatus = "FAILED"
)

// PaymentLog is the append-only audit record of one settlement attempt.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (order_id-index): order_id (non-unique; each failed attempt
//     for the same order writes its own entry)
//
// LogData:
//   - LogData keeps the full gateway response (or error detail) as raw
//     JSON for traceability/audit. Entries are never mutated or deleted.

type PaymentLog struct {
	ID        string           `json:"id"`
	InvoiceID string           `json:"invoice_id,omitempty"`
	UserID    string           `json:"user_id"`
	Gateway   string           `json:"gateway"`
	PaymentID string           `json:"payment_id,omitempty"`
	OrderID   string           `json:"order_id"`
	EventType PaymentLogEvent  `json:"event_type"`
	Amount    float64          `json:"amount"`
	Currency  string           `json:"currency"`
	Status    PaymentLogStatus `json:"status"`
	LogData   json.RawMessage  `json:"log_data,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
}
