package entities

import "time"

// Seller is the read model of a marketplace seller as the settlement
// engine sees it. The seller aggregate is owned by the accounts service;
// only the fields the payout path needs are projected here.
//
// FundDestination is the opaque identifier the payment gateway uses to
// route money to the seller's bank account. An empty value means
// onboarding is incomplete: the engine skips the entry and leaves it
// PENDING rather than failing it.

type Seller struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	FundDestination string    `json:"fund_destination,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (s Seller) HasFundDestination() bool {
	return s.FundDestination != ""
}
