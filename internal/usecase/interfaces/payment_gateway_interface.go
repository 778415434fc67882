package interfaces

import (
	"context"
	"errors"

	"midtrans_gateway/internal/domain/entities"
)

// Typed gateway failures. The issuer retries only on ErrDuplicateOrderID;
// everything else aborts the attempt loop immediately.
var (
	ErrDuplicateOrderID  = errors.New("order_id has already been taken")
	ErrSnapTokenMissing  = errors.New("snap response missing token")
	ErrInvalidStatusResp = errors.New("status response missing transaction_status")
)

// IPaymentGateway abstracts the Midtrans HTTP API.
//
// CreateSnapTransaction opens a checkout session and returns the Snap
// token; GetTransactionStatus fetches /v2/{order_id}/status for
// reconciliation.
type IPaymentGateway interface {
	CreateSnapTransaction(ctx context.Context, req entities.SnapRequest) (string, error)
	GetTransactionStatus(ctx context.Context, orderID string) (map[string]any, error)
}
