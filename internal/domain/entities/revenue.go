package entities

import (
	"math"
	"time"
)

// RevenueStatus represents the settlement lifecycle of a revenue entry.
//
// Domain notes:
//   - Entries are created PENDING by the order/commission pipeline.
//   - Only the settlement engine moves them forward; FAILED entries are
//     reset to PENDING by an operator, never automatically.

type RevenueStatus string

const (
	RevenueStatusPending    RevenueStatus = "PENDING"
	RevenueStatusProcessing RevenueStatus = "PROCESSING"
	RevenueStatusSettled    RevenueStatus = "SETTLED"
	RevenueStatusFailed     RevenueStatus = "FAILED"
)

func IsValidRevenueStatus(status RevenueStatus) bool {
	switch status {
	case RevenueStatusPending, RevenueStatusProcessing, RevenueStatusSettled, RevenueStatusFailed:
		return true
	default:
		return false
	}
}

// Revenue is the ledger record of money owed to a seller for one order.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (status-created_at-index): status / created_at
//
// Monetary representation:
//   - Amounts are fixed at order time; the settlement engine never
//     recomputes them, it only moves SellerAmount to the seller.
//   - PayoutID is written exactly once, on a confirmed transfer.

type Revenue struct {
	ID                string        `json:"id"`
	OrderID           string        `json:"order_id"`
	SellerID          string        `json:"seller_id"`
	BuyerID           string        `json:"buyer_id"`
	TotalAmount       float64       `json:"total_amount"`
	AdminCommission   float64       `json:"admin_commission"`
	SellerAmount      float64       `json:"seller_amount"`
	CommissionPercent float64       `json:"commission_percent"`
	PayoutID          string        `json:"payout_id,omitempty"`
	Simulated         bool          `json:"simulated,omitempty"`
	Status            RevenueStatus `json:"status"`
	FailureReason     string        `json:"failure_reason,omitempty"`
	ProcessingAt      *time.Time    `json:"processing_at,omitempty"`
	SettledAt         *time.Time    `json:"settled_at,omitempty"`
	FailedAt          *time.Time    `json:"failed_at,omitempty"`
	CreatedAt         time.Time     `json:"created_at"`
	UpdatedAt         time.Time     `json:"updated_at"`
}

// ValidateRevenueAmounts checks the creation-time invariant
// sellerAmount + adminCommission == totalAmount (to the cent).
func ValidateRevenueAmounts(totalAmount, adminCommission, sellerAmount float64) bool {
	return math.Abs(sellerAmount+adminCommission-totalAmount) < 0.005
}
