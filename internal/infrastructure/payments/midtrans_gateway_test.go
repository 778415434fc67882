package payments

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"midtrans_gateway/internal/domain/entities"
	"midtrans_gateway/internal/usecase/interfaces"

	"go.uber.org/zap"
)

const testServerKey = "SB-Mid-server-test-key"

func newTestGateway(baseURL string) *MidtransGateway {
	return &MidtransGateway{
		client:      http.DefaultClient,
		snapBaseURL: baseURL,
		apiBaseURL:  baseURL,
		serverKey:   testServerKey,
		logger:      zap.NewNop(),
	}
}

func snapRequest() entities.SnapRequest {
	return entities.SnapRequest{
		TransactionDetails: entities.TransactionDetails{
			OrderID:     "inv42-1700000000-0",
			GrossAmount: 11000,
		},
		ItemDetails: []entities.ItemDetail{
			{ID: "line-1", Price: 11000, Quantity: 1, Name: "Hosting"},
		},
	}
}

func TestMidtransGateway_CreateSnapTransaction(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/snap/v1/transactions" {
				t.Fatalf("unexpected path %s", r.URL.Path)
			}
			wantAuth := "Basic " + base64.StdEncoding.EncodeToString([]byte(testServerKey))
			if got := r.Header.Get("Authorization"); got != wantAuth {
				t.Fatalf("unexpected auth header %s", got)
			}

			var req entities.SnapRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				t.Fatalf("decode request: %v", err)
			}
			if req.TransactionDetails.GrossAmount != 11000 {
				t.Fatalf("unexpected gross amount %d", req.TransactionDetails.GrossAmount)
			}

			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(map[string]string{
				"token":        "snap-token-1",
				"redirect_url": "https://app.midtrans.com/snap/v3/redirection/snap-token-1",
			})
		}))
		defer srv.Close()

		g := newTestGateway(srv.URL)
		token, err := g.CreateSnapTransaction(context.Background(), snapRequest())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if token != "snap-token-1" {
			t.Fatalf("expected snap-token-1, got %s", token)
		}
	})

	t.Run("duplicate order id", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]any{
				"error_messages": []string{"transaction_details.order_id has already been taken"},
			})
		}))
		defer srv.Close()

		g := newTestGateway(srv.URL)
		_, err := g.CreateSnapTransaction(context.Background(), snapRequest())
		if !errors.Is(err, interfaces.ErrDuplicateOrderID) {
			t.Fatalf("expected ErrDuplicateOrderID, got %v", err)
		}
	})

	t.Run("response without token", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]any{
				"error_messages": []string{"Access denied due to unauthorized transaction"},
			})
		}))
		defer srv.Close()

		g := newTestGateway(srv.URL)
		_, err := g.CreateSnapTransaction(context.Background(), snapRequest())
		if !errors.Is(err, interfaces.ErrSnapTokenMissing) {
			t.Fatalf("expected ErrSnapTokenMissing, got %v", err)
		}
	})

	t.Run("non-json response", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			w.Write([]byte("<html>bad gateway</html>"))
		}))
		defer srv.Close()

		g := newTestGateway(srv.URL)
		_, err := g.CreateSnapTransaction(context.Background(), snapRequest())
		if !errors.Is(err, interfaces.ErrSnapTokenMissing) {
			t.Fatalf("expected ErrSnapTokenMissing, got %v", err)
		}
	})

	t.Run("connection refused", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
		srv.Close()

		g := newTestGateway(srv.URL)
		_, err := g.CreateSnapTransaction(context.Background(), snapRequest())
		if err == nil {
			t.Fatal("expected a transport error")
		}
	})
}

func TestMidtransGateway_GetTransactionStatus(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/v2/inv42-1700000000-0/status" {
				t.Fatalf("unexpected path %s", r.URL.Path)
			}
			// The status API signs with serverKey + ":".
			wantAuth := "Basic " + base64.StdEncoding.EncodeToString([]byte(testServerKey+":"))
			if got := r.Header.Get("Authorization"); got != wantAuth {
				t.Fatalf("unexpected auth header %s", got)
			}
			json.NewEncoder(w).Encode(map[string]any{
				"transaction_status": "settlement",
				"status_code":        "200",
			})
		}))
		defer srv.Close()

		g := newTestGateway(srv.URL)
		status, err := g.GetTransactionStatus(context.Background(), "inv42-1700000000-0")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if status["transaction_status"] != "settlement" {
			t.Fatalf("unexpected status %+v", status)
		}
	})

	t.Run("missing transaction_status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			json.NewEncoder(w).Encode(map[string]any{"status_message": "not found"})
		}))
		defer srv.Close()

		g := newTestGateway(srv.URL)
		_, err := g.GetTransactionStatus(context.Background(), "missing-order")
		if !errors.Is(err, interfaces.ErrInvalidStatusResp) {
			t.Fatalf("expected ErrInvalidStatusResp, got %v", err)
		}
	})

	t.Run("non-json response", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Write([]byte("oops"))
		}))
		defer srv.Close()

		g := newTestGateway(srv.URL)
		_, err := g.GetTransactionStatus(context.Background(), "inv42-1700000000-0")
		if !errors.Is(err, interfaces.ErrInvalidStatusResp) {
			t.Fatalf("expected ErrInvalidStatusResp, got %v", err)
		}
	})
}
