package interfaces

import (
	"context"

	"midtrans_gateway/internal/domain/entities"
)

// ITokenStore is the shared cache of Snap tokens, keyed by invoice id.
//
// Get must return nil (not an error) for both a missing record and one
// past entities.SnapTokenTTL, evicting the stale record as a side effect.
// Put overwrites any existing record for the invoice.
type ITokenStore interface {
	Get(ctx context.Context, invoiceID string) (*entities.SnapToken, error)
	Put(ctx context.Context, invoiceID string, token entities.SnapToken) error
	Delete(ctx context.Context, invoiceID string) error
}
