package handlers

import (
	"net/http"

	"midtrans_gateway/internal/adapter/http/dto/response"
	"midtrans_gateway/internal/usecase"
	"midtrans_gateway/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NotificationHandler receives Midtrans HTTP notifications (IPN) and the
// supporting status/recurring endpoints.
type NotificationHandler struct {
	usecase usecase.INotificationUseCase
	logger  *zap.Logger
}

func NewNotificationHandler(uc usecase.INotificationUseCase, logger *zap.Logger) *NotificationHandler {
	return &NotificationHandler{usecase: uc, logger: logger}
}

// HandleNotification processes one webhook delivery. Any processing
// failure answers 502 so Midtrans redelivers; acceptance is 200.
//
// @Summary      Midtrans payment notification webhook
// @Tags         payments
// @Accept       json
// @Produce      json
// @Success      200  {object}  response.NotificationAck
// @Failure      502  {object}  pkg.HTTPError
// @Router       /payments/midtrans/notifications [post]
func (h *NotificationHandler) HandleNotification(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		h.logger.Error("failed reading notification body", zap.Error(err))
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request body", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if !h.usecase.Process(c.Request.Context(), raw) {
		appErr := pkg.NewDomainErrorSimple("NOTIFICATION_REJECTED", "Notification could not be processed", http.StatusBadGateway)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.NotificationAck{Status: "ok"})
}

// GetTransactionStatus checks the authoritative status for an order id
// against the Midtrans v2 API.
//
// @Summary      Remote transaction status for an order
// @Tags         payments
// @Produce      json
// @Param        order_id  path  string  true  "Order ID"
// @Success      200  {object}  map[string]any
// @Failure      502  {object}  pkg.HTTPError
// @Router       /payments/midtrans/{order_id}/status [get]
func (h *NotificationHandler) GetTransactionStatus(c *gin.Context) {
	orderID := c.Param("order_id")

	status, err := h.usecase.VerifyTransactionStatus(c.Request.Context(), orderID)
	if err != nil {
		h.logger.Error("status check failed", zap.String("order_id", orderID), zap.Error(err))
		appErr := pkg.NewDomainError("PAYMENT_PROVIDER_ERROR", "Failed to verify transaction status", err, http.StatusBadGateway)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, status)
}

// HandleRecurring exists only to answer explicitly: Midtrans one-time
// checkout has no recurring support in this integration.
//
// @Summary      Recurring payments (unsupported)
// @Tags         payments
// @Produce      json
// @Failure      501  {object}  pkg.HTTPError
// @Router       /payments/midtrans/recurring [post]
func (h *NotificationHandler) HandleRecurring(c *gin.Context) {
	appErr := pkg.NewDomainErrorSimple("RECURRING_NOT_SUPPORTED", "Midtrans doesn't support recurrent payments", http.StatusNotImplemented)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
