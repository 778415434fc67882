package interfaces

import (
	"context"

	"midtrans_gateway/internal/domain/entities"
)

// ITransactionRepository abstracts DynamoDB persistence for Transaction.
//
// One row per invoice: GetByInvoiceID returns the zero value when no row
// exists yet, and Save upserts so repeated notifications update in place.
type ITransactionRepository interface {
	GetByInvoiceID(ctx context.Context, invoiceID string) (entities.Transaction, error)
	Save(ctx context.Context, tx entities.Transaction) (entities.Transaction, error)
}
