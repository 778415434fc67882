package response

// CheckoutResponse carries everything the client-side Snap widget needs
// to render: the session token plus the public key, script URL and mode.
// The HTML/JS itself is assembled by the billing frontend.
type CheckoutResponse struct {
	InvoiceID   string `json:"invoice_id"`
	Token       string `json:"token"`
	ClientKey   string `json:"client_key"`
	SnapJSURL   string `json:"snap_js_url"`
	PaymentMode string `json:"payment_mode"`
}
