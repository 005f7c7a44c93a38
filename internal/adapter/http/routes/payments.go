package routes

import (
	"payment_factory/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPayments = "/payments"
	PathGateways = "/gateways"
	PathPing     = "/ping"
)

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET(PathPing, handlers.Ping)
}

func addPaymentRoutes(rg *gin.RouterGroup, paymentHandler *handlers.PaymentHandler) {
	payments := rg.Group(PathPayments)
	{
		payments.POST("/:gateway", paymentHandler.CreatePayment)
	}

	rg.GET(PathGateways, paymentHandler.ListGateways)
}
