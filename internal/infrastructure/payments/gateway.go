package payments

import (
	"errors"
	"log"
	"os"
	"strings"

	"notesbytes_settlement/internal/usecase/interfaces"
)

var ErrMissingPayoutCredentials = errors.New("missing PAYOUT_KEY_ID / PAYOUT_KEY_SECRET")

// NewPayoutGatewayFromEnv selects the gateway implementation at wire-up
// time: the simulated gateway when mock mode is on or no credentials
// are set, the live client otherwise. The engine never branches on
// gateway availability itself.
func NewPayoutGatewayFromEnv() (interfaces.IPayoutGateway, error) {
	if isPayoutGatewayMockEnabled() {
		log.Printf("[payout][gateway] mock mode enabled")
		return NewSimulatedGateway(), nil
	}

	keyID := strings.TrimSpace(os.Getenv("PAYOUT_KEY_ID"))
	keySecret := strings.TrimSpace(os.Getenv("PAYOUT_KEY_SECRET"))
	if keyID == "" || keySecret == "" {
		log.Printf("[payout][gateway] no live credentials configured, falling back to simulated payouts")
		return NewSimulatedGateway(), nil
	}

	return NewRazorpayXGateway(keyID, keySecret), nil
}

func isPayoutGatewayMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("PAYOUT_GATEWAY_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
