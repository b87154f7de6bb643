package interfaces

import (
	"context"

	"notesbytes_settlement/internal/domain/entities"
)

// ISellerRepository is the read-only projection of sellers the payout
// path needs (name, email, fund destination).

type ISellerRepository interface {
	GetByID(ctx context.Context, id string) (entities.Seller, error)
}
