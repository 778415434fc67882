package routes

import (
	"midtrans_gateway/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

func addPaymentRoutes(rg *gin.RouterGroup, checkout *handlers.CheckoutHandler, notifications *handlers.NotificationHandler) {
	rg.GET("/checkout/:invoice_id", checkout.GetCheckout)

	midtrans := rg.Group("/payments/midtrans")
	midtrans.POST("/notifications", notifications.HandleNotification)
	midtrans.GET("/:order_id/status", notifications.GetTransactionStatus)
	midtrans.POST("/recurring", notifications.HandleRecurring)
}
