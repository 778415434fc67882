package entities

import "time"

// TransactionStatus is the local coarse status derived from provider
// transaction_status values. Unknown provider statuses leave it untouched.
type TransactionStatus string

const (
	TransactionStatusPending  TransactionStatus = "pending"
	TransactionStatusComplete TransactionStatus = "complete"
	TransactionStatusFailed   TransactionStatus = "failed"
)

// Transaction is the single per-invoice payment record persisted in
// DynamoDB. It is created on the first notification for an invoice and
// updated in place afterwards; the provider snapshot fields are always
// overwritten with the latest notification, even for pending or failed
// events, so the row doubles as an audit trail of the last known state.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (invoice_id-index): invoice_id
type Transaction struct {
	ID        string `json:"id"`
	InvoiceID string `json:"invoice_id"`

	// Latest provider snapshot.
	TxnStatus   string `json:"txn_status"`
	TxnID       string `json:"txn_id"`
	Amount      string `json:"amount"` // gross_amount as received, decimal string
	Currency    string `json:"currency"`
	PaymentType string `json:"payment_type"`

	Status    TransactionStatus `json:"status"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}
