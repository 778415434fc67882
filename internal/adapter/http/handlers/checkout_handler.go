package handlers

import (
	"errors"
	"net/http"

	"midtrans_gateway/internal/adapter/http/dto/response"
	"midtrans_gateway/internal/config"
	"midtrans_gateway/internal/usecase"
	"midtrans_gateway/internal/usecase/interfaces"
	"midtrans_gateway/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CheckoutHandler serves the checkout render payload for an invoice.
type CheckoutHandler struct {
	usecase usecase.ISnapTokenUseCase
	cfg     *config.Config
	logger  *zap.Logger
}

func NewCheckoutHandler(uc usecase.ISnapTokenUseCase, cfg *config.Config, logger *zap.Logger) *CheckoutHandler {
	return &CheckoutHandler{usecase: uc, cfg: cfg, logger: logger}
}

// GetCheckout issues (or reuses) a Snap token for invoice_id in path.
//
// @Summary      Checkout session for an invoice
// @Tags         checkout
// @Produce      json
// @Param        invoice_id  path  string  true  "Invoice ID"
// @Success      200  {object}  response.CheckoutResponse
// @Failure      404  {object}  pkg.HTTPError
// @Failure      502  {object}  pkg.HTTPError
// @Router       /checkout/{invoice_id} [get]
func (h *CheckoutHandler) GetCheckout(c *gin.Context) {
	invoiceID := c.Param("invoice_id")
	h.logger.Info("checkout start", zap.String("invoice_id", invoiceID))

	token, err := h.usecase.Issue(c.Request.Context(), invoiceID)
	if err != nil {
		h.logger.Error("checkout failed", zap.String("invoice_id", invoiceID), zap.Error(err))
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	h.logger.Info("checkout success", zap.String("invoice_id", invoiceID))

	c.JSON(http.StatusOK, response.CheckoutResponse{
		InvoiceID:   invoiceID,
		Token:       token,
		ClientKey:   h.cfg.ActiveClientKey(),
		SnapJSURL:   h.cfg.SnapJSURL(),
		PaymentMode: h.cfg.PaymentMode,
	})
}

func mapCheckoutError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidInvoiceID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid invoice id", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvoiceNotFound):
		return pkg.NewDomainErrorSimple("INVOICE_NOT_FOUND", "Invoice not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrClientNotFound):
		return pkg.NewDomainErrorSimple("CLIENT_NOT_FOUND", "Client not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrSnapTokenExhausted):
		return pkg.NewDomainErrorSimple("ORDER_ID_CONFLICT", "Could not obtain a unique checkout session", http.StatusConflict)
	case errors.Is(err, interfaces.ErrSnapTokenMissing):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_ERROR", "Payment provider returned an invalid response", http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
