package response

// NotificationAck is the acknowledgement body for webhook deliveries.
// Midtrans only looks at the HTTP status; the body is for humans reading
// delivery logs.
type NotificationAck struct {
	Status string `json:"status"`
}
