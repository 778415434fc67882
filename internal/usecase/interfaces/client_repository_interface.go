package interfaces

import (
	"context"

	"midtrans_gateway/internal/domain/entities"
)

// IClientRepository abstracts DynamoDB persistence for Client.
//
// AddFunds credits the client balance with a settled payment and records
// the human-readable description plus provider metadata for the audit
// trail. It must be called at most once per paid invoice; the caller holds
// the idempotence guard (the invoice paid flag), not this repository.
type IClientRepository interface {
	GetByID(ctx context.Context, id string) (entities.Client, error)
	AddFunds(ctx context.Context, clientID string, amount float64, description string, meta map[string]string) error
}
