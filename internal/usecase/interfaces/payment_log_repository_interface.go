package interfaces

import (
	"context"

	"notesbytes_settlement/internal/domain/entities"
)

// IPaymentLogRepository abstracts DynamoDB persistence for PaymentLog.
//
// The audit trail is append-only: there is deliberately no update or
// delete operation on this port.

type IPaymentLogRepository interface {
	Append(ctx context.Context, l entities.PaymentLog) (entities.PaymentLog, error)
	ListByOrderID(ctx context.Context, orderID string) ([]entities.PaymentLog, error)
}
