package interfaces

import "context"

// INotifier delivers a templated message to a recipient. Templates are
// looked up by key and must be active.
//
// The settlement engine calls this best-effort: a delivery failure is
// logged and never rolls back a finalized settlement.

type INotifier interface {
	Send(ctx context.Context, to string, templateKey string, vars map[string]string) error
}
