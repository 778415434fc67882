package entities

import "strings"

// VANumber is one virtual-account entry of a bank_transfer notification.
type VANumber struct {
	Bank     string `json:"bank"`
	VANumber string `json:"va_number"`
}

// Notification is the inbound Midtrans HTTP notification (IPN) payload.
// It is ephemeral: only its derived effects on Invoice/Transaction/Client
// are persisted, never the payload itself.
//
// GrossAmount stays a string on purpose: the signature is SHA-512 over the
// raw field exactly as Midtrans sent it ("10000.00"), so re-rendering it
// as a number would break verification.
type Notification struct {
	OrderID           string `json:"order_id"`
	StatusCode        string `json:"status_code"`
	GrossAmount       string `json:"gross_amount"`
	Currency          string `json:"currency"`
	SignatureKey      string `json:"signature_key"`
	TransactionStatus string `json:"transaction_status"`
	TransactionID     string `json:"transaction_id"`
	PaymentType       string `json:"payment_type"`

	// Payment-type specific enrichment fields.
	Bank            string     `json:"bank"`
	CardType        string     `json:"card_type"`
	MaskedCard      string     `json:"masked_card"`
	VANumbers       []VANumber `json:"va_numbers"`
	PermataVANumber string     `json:"permata_va_number"`
	Store           string     `json:"store"`
	Acquirer        string     `json:"acquirer"`
}

// InvoiceID extracts the invoice identifier from the order id, which is
// synthesized as {invoiceID}-{unixTimestamp}-{attempt} at issuance time.
func (n Notification) InvoiceID() string {
	id, _, _ := strings.Cut(n.OrderID, "-")
	return id
}
