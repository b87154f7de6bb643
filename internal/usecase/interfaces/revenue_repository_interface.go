package interfaces

import (
	"context"
	"errors"
	"time"

	"notesbytes_settlement/internal/domain/entities"
)

// ErrRevenueAlreadyClaimed is returned by Claim when the conditional
// status write did not match, i.e. another pass (or process) owns the
// entry. Callers treat it as "skip", not as a failure.
var ErrRevenueAlreadyClaimed = errors.New("revenue already claimed")

// IRevenueRepository abstracts DynamoDB persistence for Revenue.
//
// The settlement engine must be able to:
//   - list PENDING entries oldest-first (fairness across passes)
//   - claim one entry atomically (PENDING -> PROCESSING, conditional)
//   - persist finalize transitions (SETTLED / FAILED)
//   - surface PROCESSING entries stuck since before a cutoff (operator review)

type IRevenueRepository interface {
	Create(ctx context.Context, r entities.Revenue) (entities.Revenue, error)
	GetByID(ctx context.Context, id string) (entities.Revenue, error)
	FindPending(ctx context.Context, limit int) ([]entities.Revenue, error)
	Claim(ctx context.Context, id string, at time.Time) (entities.Revenue, error)
	Save(ctx context.Context, r entities.Revenue) (entities.Revenue, error)
	FindProcessingOlderThan(ctx context.Context, cutoff time.Time) ([]entities.Revenue, error)
}
