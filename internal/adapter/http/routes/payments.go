package routes

import (
	"nibog_payments/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPayments     = "/payments"
	PathConfirmation = "/booking-confirmation"
)

func addPaymentRoutes(rg *gin.RouterGroup, paymentHandler *handlers.PaymentHandler, confirmationHandler *handlers.ConfirmationHandler) {
	payments := rg.Group(PathPayments)
	{
		payments.POST("/phonepe/initiate", paymentHandler.InitiatePayment)
		payments.GET("/phonepe/status/:transaction_id", paymentHandler.CheckStatus)
		payments.POST("/phonepe/callback", paymentHandler.HandleCallback)
	}

	rg.GET(PathConfirmation, confirmationHandler.GetConfirmation)
}
