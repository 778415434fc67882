package payments

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"midtrans_gateway/internal/config"
	"midtrans_gateway/internal/domain/entities"
	"midtrans_gateway/internal/usecase/interfaces"

	"go.uber.org/zap"
)

const defaultRequestTimeout = 30 * time.Second

// MidtransGateway talks to the Midtrans Snap and v2 status APIs.
//
// Auth quirk carried over from the provider docs: Snap creation signs with
// base64(serverKey), the status API with base64(serverKey + ":").
type MidtransGateway struct {
	client      *http.Client
	snapBaseURL string
	apiBaseURL  string
	serverKey   string
	logger      *zap.Logger
}

var _ interfaces.IPaymentGateway = (*MidtransGateway)(nil)

func NewMidtransGateway(cfg *config.Config, logger *zap.Logger) *MidtransGateway {
	return &MidtransGateway{
		client:      &http.Client{Timeout: defaultRequestTimeout},
		snapBaseURL: cfg.SnapBaseURL(),
		apiBaseURL:  cfg.APIBaseURL(),
		serverKey:   cfg.ActiveServerKey(),
		logger:      logger,
	}
}

type snapResponse struct {
	Token         string   `json:"token"`
	RedirectURL   string   `json:"redirect_url"`
	ErrorMessages []string `json:"error_messages"`
}

// CreateSnapTransaction opens a checkout session. Transport errors are
// returned as-is (connectivity, non-retryable by the caller); a duplicate
// order id maps to interfaces.ErrDuplicateOrderID so the issuer can retry
// with a fresh suffix; any response without a token is a protocol error.
func (g *MidtransGateway) CreateSnapTransaction(ctx context.Context, req entities.SnapRequest) (string, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return "", err
	}

	url := g.snapBaseURL + "/snap/v1/transactions"
	g.logger.Info("requesting snap transaction",
		zap.String("url", url),
		zap.String("order_id", req.TransactionDetails.OrderID),
	)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("Authorization", "Basic "+base64.StdEncoding.EncodeToString([]byte(g.serverKey)))

	resp, err := g.client.Do(httpReq)
	if err != nil {
		g.logger.Error("snap request failed", zap.Error(err))
		return "", fmt.Errorf("failed to connect to midtrans: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed reading snap response: %w", err)
	}
	g.logger.Info("snap transaction response",
		zap.Int("http_code", resp.StatusCode),
		zap.Int("body_len", len(raw)),
	)

	var snap snapResponse
	if err := json.Unmarshal(raw, &snap); err != nil {
		return "", fmt.Errorf("%w: %s", interfaces.ErrSnapTokenMissing, truncateBody(raw))
	}

	for _, msg := range snap.ErrorMessages {
		if strings.Contains(msg, "order_id has already been taken") {
			return "", fmt.Errorf("%w: %s", interfaces.ErrDuplicateOrderID, req.TransactionDetails.OrderID)
		}
	}

	if snap.Token == "" {
		g.logger.Error("snap response without token",
			zap.Int("http_code", resp.StatusCode),
			zap.Strings("error_messages", snap.ErrorMessages),
		)
		return "", fmt.Errorf("%w: %s", interfaces.ErrSnapTokenMissing, truncateBody(raw))
	}

	return snap.Token, nil
}

// GetTransactionStatus fetches /v2/{order_id}/status. The response must
// carry transaction_status to be considered valid.
func (g *MidtransGateway) GetTransactionStatus(ctx context.Context, orderID string) (map[string]any, error) {
	url := g.apiBaseURL + "/v2/" + orderID + "/status"

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Basic "+base64.StdEncoding.EncodeToString([]byte(g.serverKey+":")))

	resp, err := g.client.Do(httpReq)
	if err != nil {
		g.logger.Error("status request failed", zap.String("order_id", orderID), zap.Error(err))
		return nil, fmt.Errorf("failed to verify transaction status: %w", err)
	}
	defer resp.Body.Close()

	var status map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		return nil, fmt.Errorf("%w: %v", interfaces.ErrInvalidStatusResp, err)
	}
	if _, ok := status["transaction_status"]; !ok {
		g.logger.Error("status response missing transaction_status", zap.String("order_id", orderID))
		return nil, interfaces.ErrInvalidStatusResp
	}

	return status, nil
}

func truncateBody(raw []byte) string {
	const max = 512
	if len(raw) > max {
		return string(raw[:max]) + "..."
	}
	return string(raw)
}
