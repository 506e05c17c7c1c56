package handler

import (
	"context"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"go.uber.org/zap"

	"github.com/johncrouse123/cloud-portfolio/internal/domain"
)

func (h *Handler) checkoutOrder(ctx context.Context, req events.APIGatewayProxyRequest) events.APIGatewayProxyResponse {
	var cr domain.CheckoutRequest
	if err := parseBody(req.Body, &cr); err != nil {
		h.logger.Error("Checkout failed", zap.Error(err))
		return respondError(http.StatusInternalServerError, "Checkout failed", err)
	}

	orderID, err := h.checkout.Checkout(ctx, cr)
	if err != nil {
		h.logger.Error("Checkout failed", zap.Error(err))
		return respondError(http.StatusInternalServerError, "Checkout failed", err)
	}

	return respond(http.StatusOK, domain.CheckoutResponse{
		OrderID: orderID,
		Message: "Checkout successful",
	})
}
