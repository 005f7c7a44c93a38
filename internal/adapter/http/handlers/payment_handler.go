package handlers

import (
	"errors"
	"log"
	"net/http"

	request "payment_factory/internal/adapter/http/dto/request"
	response "payment_factory/internal/adapter/http/dto/response"
	"payment_factory/internal/domain/entities"
	"payment_factory/internal/usecase"
	"payment_factory/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPaymentPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
)

// PaymentHandler exposes the gateway pipeline over HTTP.

type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
}

func NewPaymentHandler(uc usecase.IPaymentUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// CreatePayment godoc
// @Summary      Pay through a gateway
// @Description  Validates the card, processes the payment and logs the reference with the chosen gateway family.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        gateway  path      string                   true  "pagseguro, mercadopago or stripe"
// @Param        payload  body      request.PaymentRequest   true  "Payment"
// @Success      200      {object}  response.PaymentResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      422      {object}  response.PaymentResponse
// @Failure      500      {object}  pkg.HTTPError
// @Router       /payments/{gateway} [post]
func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	gateway := c.Param("gateway")
	log.Printf("[payment][handler] create start gateway=%s", gateway)

	var payload request.PaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[payment][handler] invalid payload gateway=%s err=%v", gateway, err)
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}

	result, err := h.usecase.Pay(c.Request.Context(), gateway, payload.ToEntity())
	if err != nil {
		log.Printf("[payment][handler] create failed gateway=%s err=%v", gateway, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	status := http.StatusOK
	if !result.Approved() {
		status = http.StatusUnprocessableEntity
	}
	log.Printf("[payment][handler] create done gateway=%s status=%s reference=%s", result.Gateway, result.Status, result.Reference)

	c.JSON(status, response.FromPaymentResult(result))
}

// ListGateways godoc
// @Summary      List gateways
// @Tags         payments
// @Produce      json
// @Success      200  {object}  response.GatewaysResponse
// @Router       /gateways [get]
func (h *PaymentHandler) ListGateways(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromGateways(h.usecase.Gateways()))
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, entities.ErrUnknownGateway):
		return pkg.NewDomainErrorSimple("UNKNOWN_GATEWAY", "Unknown payment gateway", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
