package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"midtrans_gateway/internal/domain/entities"
	"midtrans_gateway/internal/usecase/interfaces"
	mock_interfaces "midtrans_gateway/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func testInvoice() entities.Invoice {
	return entities.Invoice{
		ID:       "inv42",
		ClientID: "cli-1",
		Items: []entities.LineItem{
			{ID: "line-1", Price: 10000, Quantity: 1, Title: "Hosting"},
		},
		Tax:          1000,
		TotalWithTax: 11000,
		Status:       entities.InvoiceStatusUnpaid,
		Hash:         "abc123",
	}
}

func testClient() entities.Client {
	return entities.Client{
		ID:        "cli-1",
		FirstName: "Agus",
		LastName:  "Santoso",
		Email:     "agus@example.com",
		Phone:     "08123456789",
		Country:   "IDN",
	}
}

func newTestIssuer(
	invoices interfaces.IInvoiceRepository,
	clients interfaces.IClientRepository,
	tokens interfaces.ITokenStore,
	gateway interfaces.IPaymentGateway,
) *SnapTokenUseCase {
	phones := NewPhoneNormalizer(nil, "IDN", zap.NewNop())
	return NewSnapTokenUseCase(invoices, clients, tokens, gateway, phones, "IDN", "https://billing.example.com", zap.NewNop())
}

func TestSnapTokenUseCase_Issue_Validations(t *testing.T) {
	t.Run("blank invoice id", func(t *testing.T) {
		uc := newTestIssuer(nil, nil, nil, nil)
		_, err := uc.Issue(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidInvoiceID) {
			t.Fatalf("expected ErrInvalidInvoiceID, got %v", err)
		}
	})

	t.Run("gateway not configured", func(t *testing.T) {
		uc := newTestIssuer(nil, nil, nil, nil)
		_, err := uc.Issue(context.Background(), "inv42")
		if !errors.Is(err, ErrGatewayNotConfigured) {
			t.Fatalf("expected ErrGatewayNotConfigured, got %v", err)
		}
	})

	t.Run("invoice not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		invoices := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		tokens := mock_interfaces.NewMockITokenStore(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)

		tokens.EXPECT().Get(gomock.Any(), "inv42").Return(nil, nil)
		invoices.EXPECT().GetByID(gomock.Any(), "inv42").Return(entities.Invoice{}, nil)

		uc := newTestIssuer(invoices, nil, tokens, gateway)
		_, err := uc.Issue(context.Background(), "inv42")
		if !errors.Is(err, ErrInvoiceNotFound) {
			t.Fatalf("expected ErrInvoiceNotFound, got %v", err)
		}
	})

	t.Run("client not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		invoices := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		clients := mock_interfaces.NewMockIClientRepository(ctrl)
		tokens := mock_interfaces.NewMockITokenStore(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)

		tokens.EXPECT().Get(gomock.Any(), "inv42").Return(nil, nil)
		invoices.EXPECT().GetByID(gomock.Any(), "inv42").Return(testInvoice(), nil)
		clients.EXPECT().GetByID(gomock.Any(), "cli-1").Return(entities.Client{}, nil)

		uc := newTestIssuer(invoices, clients, tokens, gateway)
		_, err := uc.Issue(context.Background(), "inv42")
		if !errors.Is(err, ErrClientNotFound) {
			t.Fatalf("expected ErrClientNotFound, got %v", err)
		}
	})
}

func TestSnapTokenUseCase_Issue_CachedTokenShortCircuits(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	tokens := mock_interfaces.NewMockITokenStore(ctrl)
	gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)

	tokens.EXPECT().Get(gomock.Any(), "inv42").Return(&entities.SnapToken{
		Token:     "cached-token",
		OrderID:   "inv42-1700000000-0",
		CreatedAt: time.Now(),
	}, nil)
	// No invoice/client/gateway calls at all on the cached path.

	uc := newTestIssuer(nil, nil, tokens, gateway)
	token, err := uc.Issue(context.Background(), "inv42")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token != "cached-token" {
		t.Fatalf("expected cached-token, got %s", token)
	}
}

func TestSnapTokenUseCase_Issue_CreatesAndCaches(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	invoices := mock_interfaces.NewMockIInvoiceRepository(ctrl)
	clients := mock_interfaces.NewMockIClientRepository(ctrl)
	tokens := mock_interfaces.NewMockITokenStore(ctrl)
	gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)

	fixed := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	wantOrderID := fmt.Sprintf("inv42-%d-0", fixed.Unix())

	tokens.EXPECT().Get(gomock.Any(), "inv42").Return(nil, nil)
	invoices.EXPECT().GetByID(gomock.Any(), "inv42").Return(testInvoice(), nil)
	clients.EXPECT().GetByID(gomock.Any(), "cli-1").Return(testClient(), nil)
	gateway.EXPECT().CreateSnapTransaction(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req entities.SnapRequest) (string, error) {
			if req.TransactionDetails.OrderID != wantOrderID {
				t.Fatalf("expected order id %s, got %s", wantOrderID, req.TransactionDetails.OrderID)
			}
			if req.TransactionDetails.GrossAmount != 11000 {
				t.Fatalf("expected gross 11000, got %d", req.TransactionDetails.GrossAmount)
			}
			if req.Callbacks.Finish != "https://billing.example.com/invoice/abc123" {
				t.Fatalf("unexpected finish url %s", req.Callbacks.Finish)
			}
			return "fresh-token", nil
		})
	tokens.EXPECT().Put(gomock.Any(), "inv42", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, tok entities.SnapToken) error {
			if tok.Token != "fresh-token" || tok.OrderID != wantOrderID {
				t.Fatalf("unexpected cached token %+v", tok)
			}
			return nil
		})

	uc := newTestIssuer(invoices, clients, tokens, gateway)
	uc.now = func() time.Time { return fixed }

	token, err := uc.Issue(context.Background(), "inv42")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token != "fresh-token" {
		t.Fatalf("expected fresh-token, got %s", token)
	}
}

func TestSnapTokenUseCase_Issue_RetriesOnDuplicateOrderID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	invoices := mock_interfaces.NewMockIInvoiceRepository(ctrl)
	clients := mock_interfaces.NewMockIClientRepository(ctrl)
	tokens := mock_interfaces.NewMockITokenStore(ctrl)
	gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)

	fixed := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	tokens.EXPECT().Get(gomock.Any(), "inv42").Return(nil, nil).Times(3)
	invoices.EXPECT().GetByID(gomock.Any(), "inv42").Return(testInvoice(), nil).Times(3)
	clients.EXPECT().GetByID(gomock.Any(), "cli-1").Return(testClient(), nil).Times(3)

	var seen []string
	gomock.InOrder(
		gateway.EXPECT().CreateSnapTransaction(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, req entities.SnapRequest) (string, error) {
				seen = append(seen, req.TransactionDetails.OrderID)
				return "", fmt.Errorf("create snap: %w", interfaces.ErrDuplicateOrderID)
			}),
		gateway.EXPECT().CreateSnapTransaction(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, req entities.SnapRequest) (string, error) {
				seen = append(seen, req.TransactionDetails.OrderID)
				return "", fmt.Errorf("create snap: %w", interfaces.ErrDuplicateOrderID)
			}),
		gateway.EXPECT().CreateSnapTransaction(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, req entities.SnapRequest) (string, error) {
				seen = append(seen, req.TransactionDetails.OrderID)
				return "third-try-token", nil
			}),
	)
	tokens.EXPECT().Put(gomock.Any(), "inv42", gomock.Any()).Return(nil)

	uc := newTestIssuer(invoices, clients, tokens, gateway)
	uc.now = func() time.Time { return fixed }

	token, err := uc.Issue(context.Background(), "inv42")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token != "third-try-token" {
		t.Fatalf("expected third-try-token, got %s", token)
	}

	if len(seen) != 3 {
		t.Fatalf("expected 3 attempts, got %d", len(seen))
	}
	for i, orderID := range seen {
		want := fmt.Sprintf("inv42-%d-%d", fixed.Unix(), i)
		if orderID != want {
			t.Fatalf("attempt %d: expected order id %s, got %s", i, want, orderID)
		}
	}
}

func TestSnapTokenUseCase_Issue_ExhaustsAfterThreeDuplicates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	invoices := mock_interfaces.NewMockIInvoiceRepository(ctrl)
	clients := mock_interfaces.NewMockIClientRepository(ctrl)
	tokens := mock_interfaces.NewMockITokenStore(ctrl)
	gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)

	tokens.EXPECT().Get(gomock.Any(), "inv42").Return(nil, nil).Times(3)
	invoices.EXPECT().GetByID(gomock.Any(), "inv42").Return(testInvoice(), nil).Times(3)
	clients.EXPECT().GetByID(gomock.Any(), "cli-1").Return(testClient(), nil).Times(3)
	gateway.EXPECT().CreateSnapTransaction(gomock.Any(), gomock.Any()).
		Return("", interfaces.ErrDuplicateOrderID).Times(3)

	uc := newTestIssuer(invoices, clients, tokens, gateway)
	_, err := uc.Issue(context.Background(), "inv42")
	if !errors.Is(err, ErrSnapTokenExhausted) {
		t.Fatalf("expected ErrSnapTokenExhausted, got %v", err)
	}
}

func TestSnapTokenUseCase_Issue_NonDuplicateGatewayErrorStops(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	invoices := mock_interfaces.NewMockIInvoiceRepository(ctrl)
	clients := mock_interfaces.NewMockIClientRepository(ctrl)
	tokens := mock_interfaces.NewMockITokenStore(ctrl)
	gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)

	tokens.EXPECT().Get(gomock.Any(), "inv42").Return(nil, nil)
	invoices.EXPECT().GetByID(gomock.Any(), "inv42").Return(testInvoice(), nil)
	clients.EXPECT().GetByID(gomock.Any(), "cli-1").Return(testClient(), nil)
	gateway.EXPECT().CreateSnapTransaction(gomock.Any(), gomock.Any()).
		Return("", errors.New("midtrans is down"))

	uc := newTestIssuer(invoices, clients, tokens, gateway)
	_, err := uc.Issue(context.Background(), "inv42")
	if err == nil || err.Error() != "midtrans is down" {
		t.Fatalf("expected the gateway error, got %v", err)
	}
}

func TestSnapTokenUseCase_Issue_CacheFailuresAreNonFatal(t *testing.T) {
	t.Run("store read error treated as miss", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		invoices := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		clients := mock_interfaces.NewMockIClientRepository(ctrl)
		tokens := mock_interfaces.NewMockITokenStore(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)

		tokens.EXPECT().Get(gomock.Any(), "inv42").Return(nil, errors.New("redis down"))
		invoices.EXPECT().GetByID(gomock.Any(), "inv42").Return(testInvoice(), nil)
		clients.EXPECT().GetByID(gomock.Any(), "cli-1").Return(testClient(), nil)
		gateway.EXPECT().CreateSnapTransaction(gomock.Any(), gomock.Any()).Return("tok", nil)
		tokens.EXPECT().Put(gomock.Any(), "inv42", gomock.Any()).Return(nil)

		uc := newTestIssuer(invoices, clients, tokens, gateway)
		token, err := uc.Issue(context.Background(), "inv42")
		if err != nil || token != "tok" {
			t.Fatalf("expected tok, got %q err=%v", token, err)
		}
	})

	t.Run("store write error still returns the token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		invoices := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		clients := mock_interfaces.NewMockIClientRepository(ctrl)
		tokens := mock_interfaces.NewMockITokenStore(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)

		tokens.EXPECT().Get(gomock.Any(), "inv42").Return(nil, nil)
		invoices.EXPECT().GetByID(gomock.Any(), "inv42").Return(testInvoice(), nil)
		clients.EXPECT().GetByID(gomock.Any(), "cli-1").Return(testClient(), nil)
		gateway.EXPECT().CreateSnapTransaction(gomock.Any(), gomock.Any()).Return("tok", nil)
		tokens.EXPECT().Put(gomock.Any(), "inv42", gomock.Any()).Return(errors.New("redis down"))

		uc := newTestIssuer(invoices, clients, tokens, gateway)
		token, err := uc.Issue(context.Background(), "inv42")
		if err != nil || token != "tok" {
			t.Fatalf("expected tok, got %q err=%v", token, err)
		}
	})
}
