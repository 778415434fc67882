package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"midtrans_gateway/internal/domain/entities"
	"midtrans_gateway/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrInvalidInvoiceID     = errors.New("invalid invoice id")
	ErrInvoiceNotFound      = errors.New("invoice not found")
	ErrClientNotFound       = errors.New("client not found")
	ErrSnapTokenExhausted   = errors.New("failed to get unique snap token after 3 attempts")
	ErrGatewayNotConfigured = errors.New("payment gateway not configured")
)

const maxSnapAttempts = 3

// ISnapTokenUseCase issues the checkout session token for an invoice.
//
// Requested behavior:
//   - Reuse a cached, non-expired token so repeated checkout-page loads
//     are idempotent and make no remote calls.
//   - Absorb order-id collisions by retrying with a fresh suffix.
type ISnapTokenUseCase interface {
	Issue(ctx context.Context, invoiceID string) (string, error)
}

type SnapTokenUseCase struct {
	invoices interfaces.IInvoiceRepository
	clients  interfaces.IClientRepository
	tokens   interfaces.ITokenStore
	gateway  interfaces.IPaymentGateway
	phones   *PhoneNormalizer

	defaultCountry string
	finishBaseURL  string
	logger         *zap.Logger
	now            func() time.Time
}

var _ ISnapTokenUseCase = (*SnapTokenUseCase)(nil)

func NewSnapTokenUseCase(
	invoices interfaces.IInvoiceRepository,
	clients interfaces.IClientRepository,
	tokens interfaces.ITokenStore,
	gateway interfaces.IPaymentGateway,
	phones *PhoneNormalizer,
	defaultCountry string,
	finishBaseURL string,
	logger *zap.Logger,
) *SnapTokenUseCase {
	return &SnapTokenUseCase{
		invoices:       invoices,
		clients:        clients,
		tokens:         tokens,
		gateway:        gateway,
		phones:         phones,
		defaultCountry: defaultCountry,
		finishBaseURL:  finishBaseURL,
		logger:         logger,
		now:            time.Now,
	}
}

// Issue returns a Snap token for the invoice, creating a new session with
// Midtrans only when no valid cached token exists. Up to three attempts
// are made, each with a distinct order id; only a duplicate-order-id
// response from the gateway moves to the next attempt.
func (u *SnapTokenUseCase) Issue(ctx context.Context, invoiceID string) (string, error) {
	invoiceID = strings.TrimSpace(invoiceID)
	if invoiceID == "" {
		return "", ErrInvalidInvoiceID
	}
	if u.gateway == nil {
		return "", ErrGatewayNotConfigured
	}

	for attempt := 0; attempt < maxSnapAttempts; attempt++ {
		if cached := u.cachedToken(ctx, invoiceID); cached != nil {
			u.logger.Info("reusing cached snap token",
				zap.String("invoice_id", invoiceID),
				zap.String("order_id", cached.OrderID),
			)
			return cached.Token, nil
		}

		invoice, err := u.invoices.GetByID(ctx, invoiceID)
		if err != nil {
			return "", err
		}
		if invoice.ID == "" {
			return "", ErrInvoiceNotFound
		}

		client, err := u.clients.GetByID(ctx, invoice.ClientID)
		if err != nil {
			return "", err
		}
		if client.ID == "" {
			return "", ErrClientNotFound
		}

		// The attempt suffix keeps order ids distinct across retries
		// within the same second.
		orderID := fmt.Sprintf("%s-%d-%d", invoice.ID, u.now().Unix(), attempt)
		req := u.buildSnapRequest(ctx, invoice, client, orderID)

		u.logger.Info("requesting snap token",
			zap.String("invoice_id", invoiceID),
			zap.String("order_id", orderID),
			zap.Int64("gross_amount", req.TransactionDetails.GrossAmount),
			zap.Int("attempt", attempt),
		)

		token, err := u.gateway.CreateSnapTransaction(ctx, req)
		if errors.Is(err, interfaces.ErrDuplicateOrderID) {
			u.logger.Warn("order id already taken, retrying",
				zap.String("order_id", orderID),
				zap.Int("attempt", attempt),
			)
			continue
		}
		if err != nil {
			return "", err
		}

		if err := u.tokens.Put(ctx, invoiceID, entities.SnapToken{
			Token:     token,
			OrderID:   orderID,
			CreatedAt: u.now(),
		}); err != nil {
			// The token is still valid for this render; the next page
			// load just pays for a fresh session.
			u.logger.Warn("failed to cache snap token",
				zap.String("invoice_id", invoiceID),
				zap.Error(err),
			)
		}

		return token, nil
	}

	return "", ErrSnapTokenExhausted
}

func (u *SnapTokenUseCase) cachedToken(ctx context.Context, invoiceID string) *entities.SnapToken {
	if u.tokens == nil {
		return nil
	}
	cached, err := u.tokens.Get(ctx, invoiceID)
	if err != nil {
		u.logger.Warn("token store read failed, treating as miss",
			zap.String("invoice_id", invoiceID),
			zap.Error(err),
		)
		return nil
	}
	return cached
}

func (u *SnapTokenUseCase) buildSnapRequest(ctx context.Context, invoice entities.Invoice, client entities.Client, orderID string) entities.SnapRequest {
	details, grossAmount := BuildItemDetails(invoice.Items, invoice.Tax, invoice.TotalWithTax)

	phone := u.phones.Normalize(ctx, client.Phone, client.Country)

	address := entities.Address{
		FirstName:   client.FirstName,
		LastName:    client.LastName,
		Email:       client.Email,
		Phone:       phone.FullNumber,
		Address:     client.Address,
		City:        client.City,
		PostalCode:  client.Postcode,
		CountryCode: u.defaultCountry,
		State:       client.State,
	}

	return entities.SnapRequest{
		TransactionDetails: entities.TransactionDetails{
			OrderID:     orderID,
			GrossAmount: grossAmount,
		},
		CustomerDetails: entities.CustomerDetails{
			FirstName:       client.FirstName,
			LastName:        client.LastName,
			Email:           client.Email,
			Phone:           phone.FullNumber,
			BillingAddress:  &address,
			ShippingAddress: &address,
		},
		ItemDetails: details,
		Callbacks: entities.Callbacks{
			Finish: u.finishURL(invoice.Hash),
		},
	}
}

func (u *SnapTokenUseCase) finishURL(invoiceHash string) string {
	if u.finishBaseURL == "" {
		return ""
	}
	return fmt.Sprintf("%s/invoice/%s", strings.TrimRight(u.finishBaseURL, "/"), invoiceHash)
}
