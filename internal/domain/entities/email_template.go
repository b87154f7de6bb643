package entities

import "time"

// EmailTemplate is a keyed notification template managed by the CMS.
// The settlement engine only reads templates; the SELLER_PAYOUT key is
// rendered after a confirmed transfer.

type EmailTemplate struct {
	Key       string    `json:"key"`
	Subject   string    `json:"subject"`
	Body      string    `json:"body"`
	Active    bool      `json:"active"`
	UpdatedAt time.Time `json:"updated_at"`
}

const TemplateKeySellerPayout = "SELLER_PAYOUT"
