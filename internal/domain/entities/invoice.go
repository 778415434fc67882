package entities

// InvoiceStatus represents the billing lifecycle of an invoice.
//
// Domain notes:
//   - The invoice is owned by the billing system; this service only reads
//     it and flips it to paid when a settled notification arrives.
type InvoiceStatus string

const (
	InvoiceStatusUnpaid InvoiceStatus = "unpaid"
	InvoiceStatusPaid   InvoiceStatus = "paid"
)

// LineItem is one invoice line as fetched from storage. Immutable here;
// prices are upstream decimal values and are rounded to integer minor
// units only when the Snap payload is assembled.
type LineItem struct {
	ID       string  `json:"id"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Title    string  `json:"title"`
}

// Invoice is the billing invoice persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Monetary representation:
//   - TotalWithTax is the authoritative total; the Snap payload must sum
//     to round(TotalWithTax) exactly, whatever the per-line rounding does.
type Invoice struct {
	ID           string        `json:"id"`
	ClientID     string        `json:"client_id"`
	Items        []LineItem    `json:"items"`
	Tax          float64       `json:"tax"`
	TotalWithTax float64       `json:"total_with_tax"`
	Status       InvoiceStatus `json:"status"`
	Hash         string        `json:"hash"`
}
