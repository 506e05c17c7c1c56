package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	"go.uber.org/zap"
)

// Route dispatches on (path, method). Item-scoped routes match on the
// /products/ prefix only; whatever follows is taken as the id and any
// malformed remainder is left to fail downstream. Everything unmatched
// gets the same 400, with no method-not-allowed distinction.
func (h *Handler) Route(ctx context.Context, req events.APIGatewayProxyRequest) events.APIGatewayProxyResponse {
	h.logger.Info("Received request",
		zap.String("method", req.HTTPMethod),
		zap.String("path", req.Path))

	switch {
	case req.Path == "/products" && req.HTTPMethod == http.MethodGet:
		return h.listProducts(ctx, req)
	case strings.HasPrefix(req.Path, "/products/") && req.HTTPMethod == http.MethodGet:
		return h.getProduct(ctx, req)
	case req.Path == "/products" && req.HTTPMethod == http.MethodPost:
		return h.createProduct(ctx, req)
	case strings.HasPrefix(req.Path, "/products/") && req.HTTPMethod == http.MethodPut:
		return h.updateProduct(ctx, req)
	case strings.HasPrefix(req.Path, "/products/") && req.HTTPMethod == http.MethodDelete:
		return h.deleteProduct(ctx, req)
	case req.Path == "/checkout" && req.HTTPMethod == http.MethodPost:
		return h.checkoutOrder(ctx, req)
	default:
		return respond(http.StatusBadRequest, map[string]string{"error": "Invalid route or method"})
	}
}

func productID(path string) string {
	return strings.TrimPrefix(path, "/products/")
}
