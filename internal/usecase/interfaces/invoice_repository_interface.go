package interfaces

import (
	"context"

	"midtrans_gateway/internal/domain/entities"
)

// IInvoiceRepository abstracts DynamoDB persistence for Invoice.
//
// The gateway reads invoices to build checkout sessions and marks them
// paid when a settled notification arrives; everything else about the
// invoice lifecycle belongs to the billing system.
type IInvoiceRepository interface {
	GetByID(ctx context.Context, id string) (entities.Invoice, error)
	MarkAsPaid(ctx context.Context, id string) error
}
