package entities

// Client is the paying customer an invoice belongs to. The contact and
// address block feeds the Snap customer_details section; Balance is the
// account credit the notification flow adds settled funds to.
type Client struct {
	ID        string  `json:"id"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Email     string  `json:"email"`
	Phone     string  `json:"phone"`
	Address   string  `json:"address"`
	City      string  `json:"city"`
	Postcode  string  `json:"postcode"`
	Country   string  `json:"country"` // ISO 3166-1 alpha-3
	State     string  `json:"state"`
	Balance   float64 `json:"balance"`
}
