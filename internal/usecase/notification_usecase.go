package usecase

import (
	"context"
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"midtrans_gateway/internal/domain/entities"
	"midtrans_gateway/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Provider transaction_status values with a local effect.
const (
	txnStatusCapture    = "capture"
	txnStatusSettlement = "settlement"
	txnStatusPending    = "pending"
	txnStatusDeny       = "deny"
	txnStatusExpire     = "expire"
	txnStatusCancel     = "cancel"
)

// INotificationUseCase processes inbound Midtrans HTTP notifications.
//
// Process never propagates an error: any failure collapses to false so
// the transport layer can ask the provider to redeliver.
type INotificationUseCase interface {
	Process(ctx context.Context, rawBody []byte) bool
	ValidateIPN(rawBody []byte) bool
	VerifyTransactionStatus(ctx context.Context, orderID string) (map[string]any, error)
}

type NotificationUseCase struct {
	invoices     interfaces.IInvoiceRepository
	clients      interfaces.IClientRepository
	transactions interfaces.ITransactionRepository
	gateway      interfaces.IPaymentGateway

	serverKey string
	logger    *zap.Logger
	now       func() time.Time
}

var _ INotificationUseCase = (*NotificationUseCase)(nil)

func NewNotificationUseCase(
	invoices interfaces.IInvoiceRepository,
	clients interfaces.IClientRepository,
	transactions interfaces.ITransactionRepository,
	gateway interfaces.IPaymentGateway,
	serverKey string,
	logger *zap.Logger,
) *NotificationUseCase {
	return &NotificationUseCase{
		invoices:     invoices,
		clients:      clients,
		transactions: transactions,
		gateway:      gateway,
		serverKey:    serverKey,
		logger:       logger,
		now:          time.Now,
	}
}

// Process verifies and applies one notification. Gates, in order: JSON
// shape, signature, invoice existence. Past the signature everything is
// trusted. The transaction snapshot is refreshed for every authentic
// notification; the balance credit and paid flip happen only on the first
// capture/settlement for an invoice.
func (u *NotificationUseCase) Process(ctx context.Context, rawBody []byte) bool {
	var n entities.Notification
	if err := json.Unmarshal(rawBody, &n); err != nil {
		u.logger.Error("invalid notification payload", zap.Error(err))
		return false
	}

	invoiceID := n.InvoiceID()
	if invoiceID == "" {
		u.logger.Error("notification missing order_id")
		return false
	}
	u.logger.Info("processing notification",
		zap.String("invoice_id", invoiceID),
		zap.String("order_id", n.OrderID),
		zap.String("transaction_status", n.TransactionStatus),
	)

	expected := SignatureFor(n.OrderID, n.StatusCode, n.GrossAmount, u.serverKey)
	if expected != n.SignatureKey {
		u.logger.Error("invalid notification signature",
			zap.String("order_id", n.OrderID),
			zap.String("received", n.SignatureKey),
		)
		return false
	}

	invoice, err := u.invoices.GetByID(ctx, invoiceID)
	if err != nil {
		u.logger.Error("failed loading invoice", zap.String("invoice_id", invoiceID), zap.Error(err))
		return false
	}
	if invoice.ID == "" {
		u.logger.Error("invoice not found", zap.String("invoice_id", invoiceID))
		return false
	}

	tx, err := u.transactions.GetByInvoiceID(ctx, invoiceID)
	if err != nil {
		u.logger.Error("failed loading transaction", zap.String("invoice_id", invoiceID), zap.Error(err))
		return false
	}
	if tx.ID == "" {
		tx = entities.Transaction{
			ID:        uuid.NewString(),
			InvoiceID: invoiceID,
			CreatedAt: u.now().UTC(),
		}
	}
	previousTxnID := tx.TxnID

	// Snapshot fields are refreshed unconditionally so pending and failed
	// events still leave a trail.
	tx.TxnStatus = n.TransactionStatus
	tx.TxnID = n.TransactionID
	tx.Amount = n.GrossAmount
	tx.Currency = n.Currency
	tx.PaymentType = n.PaymentType
	tx.UpdatedAt = u.now().UTC()

	switch n.TransactionStatus {
	case txnStatusCapture, txnStatusSettlement:
		if invoice.Status != entities.InvoiceStatusPaid {
			if !u.creditClient(ctx, invoice, n) {
				return false
			}
			tx.Status = entities.TransactionStatusComplete
		} else {
			if previousTxnID != "" && previousTxnID != n.TransactionID {
				u.logger.Warn("capture for a different transaction id on a paid invoice, skipping credit",
					zap.String("invoice_id", invoiceID),
					zap.String("previous_txn_id", previousTxnID),
					zap.String("txn_id", n.TransactionID),
				)
			}
			u.logger.Info("invoice already paid, notification is a no-op",
				zap.String("invoice_id", invoiceID),
				zap.String("txn_id", n.TransactionID),
			)
		}
	case txnStatusPending:
		tx.Status = entities.TransactionStatusPending
	case txnStatusDeny, txnStatusExpire, txnStatusCancel:
		tx.Status = entities.TransactionStatusFailed
	}

	if _, err := u.transactions.Save(ctx, tx); err != nil {
		u.logger.Error("failed persisting transaction", zap.String("invoice_id", invoiceID), zap.Error(err))
		return false
	}

	u.logger.Info("notification processed",
		zap.String("invoice_id", invoiceID),
		zap.String("status", string(tx.Status)),
	)
	return true
}

func (u *NotificationUseCase) creditClient(ctx context.Context, invoice entities.Invoice, n entities.Notification) bool {
	client, err := u.clients.GetByID(ctx, invoice.ClientID)
	if err != nil {
		u.logger.Error("failed loading client", zap.String("client_id", invoice.ClientID), zap.Error(err))
		return false
	}
	if client.ID == "" {
		u.logger.Error("client not found", zap.String("client_id", invoice.ClientID))
		return false
	}

	amount, err := strconv.ParseFloat(n.GrossAmount, 64)
	if err != nil {
		u.logger.Error("unparseable gross_amount", zap.String("gross_amount", n.GrossAmount), zap.Error(err))
		return false
	}

	method := DescribePaymentMethod(n)
	description := fmt.Sprintf("Payment for invoice #%s via %s", invoice.ID, method)

	if err := u.clients.AddFunds(ctx, client.ID, amount, description, map[string]string{
		"invoice_id":     invoice.ID,
		"payment_method": method,
		"transaction_id": n.TransactionID,
		"payment_type":   n.PaymentType,
	}); err != nil {
		u.logger.Error("failed crediting client balance", zap.String("client_id", client.ID), zap.Error(err))
		return false
	}
	u.logger.Info("funds added to client balance",
		zap.String("client_id", client.ID),
		zap.Float64("amount", amount),
		zap.String("payment_method", method),
	)

	if err := u.invoices.MarkAsPaid(ctx, invoice.ID); err != nil {
		u.logger.Error("failed marking invoice paid", zap.String("invoice_id", invoice.ID), zap.Error(err))
		return false
	}
	u.logger.Info("invoice marked as paid", zap.String("invoice_id", invoice.ID))
	return true
}

// ValidateIPN checks only shape and signature, with no side effects. Used
// by the transport layer as a cheap pre-gate before full processing.
func (u *NotificationUseCase) ValidateIPN(rawBody []byte) bool {
	var n entities.Notification
	if err := json.Unmarshal(rawBody, &n); err != nil {
		u.logger.Error("invalid IPN payload", zap.Error(err))
		return false
	}
	if SignatureFor(n.OrderID, n.StatusCode, n.GrossAmount, u.serverKey) != n.SignatureKey {
		u.logger.Error("invalid IPN signature", zap.String("order_id", n.OrderID))
		return false
	}
	return true
}

// VerifyTransactionStatus fetches the authoritative transaction state
// from the Midtrans v2 status API.
func (u *NotificationUseCase) VerifyTransactionStatus(ctx context.Context, orderID string) (map[string]any, error) {
	return u.gateway.GetTransactionStatus(ctx, orderID)
}

// SignatureFor recomputes the Midtrans notification signature:
// SHA-512 over order_id + status_code + gross_amount + server key, hex
// encoded. gross_amount must be the raw string from the payload.
func SignatureFor(orderID, statusCode, grossAmount, serverKey string) string {
	sum := sha512.Sum512([]byte(orderID + statusCode + grossAmount + serverKey))
	return hex.EncodeToString(sum[:])
}
