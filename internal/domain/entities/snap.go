package entities

import "time"

// SnapTokenTTL is how long a stored Snap token may be reused before a new
// session must be created with Midtrans.
const SnapTokenTTL = time.Hour

// SnapToken is one cached checkout session, keyed externally by invoice id.
// At most one non-expired token exists per invoice; the store evicts on read.
type SnapToken struct {
	Token     string    `json:"token"`
	OrderID   string    `json:"order_id"`
	CreatedAt time.Time `json:"created_at"`
}

// Expired reports whether the token has aged past SnapTokenTTL. The TTL is
// evaluated here, by the core, not delegated to the backing store's expiry.
func (t SnapToken) Expired(now time.Time) bool {
	return now.Sub(t.CreatedAt) >= SnapTokenTTL
}

// ItemDetail is one line of the Snap item_details payload. Price is in
// integer minor currency units; Midtrans rejects the order unless the item
// lines sum to transaction_details.gross_amount.
type ItemDetail struct {
	ID       string `json:"id"`
	Price    int64  `json:"price"`
	Quantity int    `json:"quantity"`
	Name     string `json:"name"`
}

// Address is the billing/shipping block of customer_details. Empty fields
// are omitted from the wire payload.
type Address struct {
	FirstName   string `json:"first_name,omitempty"`
	LastName    string `json:"last_name,omitempty"`
	Email       string `json:"email,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Address     string `json:"address,omitempty"`
	City        string `json:"city,omitempty"`
	PostalCode  string `json:"postal_code,omitempty"`
	CountryCode string `json:"country_code,omitempty"`
	State       string `json:"state,omitempty"`
}

type CustomerDetails struct {
	FirstName       string   `json:"first_name,omitempty"`
	LastName        string   `json:"last_name,omitempty"`
	Email           string   `json:"email,omitempty"`
	Phone           string   `json:"phone,omitempty"`
	BillingAddress  *Address `json:"billing_address,omitempty"`
	ShippingAddress *Address `json:"shipping_address,omitempty"`
}

type TransactionDetails struct {
	OrderID     string `json:"order_id"`
	GrossAmount int64  `json:"gross_amount"`
}

type Callbacks struct {
	Finish string `json:"finish,omitempty"`
}

// SnapRequest is the body POSTed to /snap/v1/transactions. One is
// synthesized per issuance attempt with a fresh order id.
type SnapRequest struct {
	TransactionDetails TransactionDetails `json:"transaction_details"`
	CustomerDetails    CustomerDetails    `json:"customer_details"`
	ItemDetails        []ItemDetail       `json:"item_details"`
	Callbacks          Callbacks          `json:"callbacks"`
}

// PhoneNumber is the normalized output of phone processing.
type PhoneNumber struct {
	CountryCode string `json:"country_code"`
	Number      string `json:"number"`
	FullNumber  string `json:"full_number"`
}
