package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"go.uber.org/zap"

	"github.com/johncrouse123/cloud-portfolio/internal/domain"
)

func (h *Handler) listProducts(ctx context.Context, _ events.APIGatewayProxyRequest) events.APIGatewayProxyResponse {
	items, err := h.catalog.ListProducts(ctx)
	if err != nil {
		h.logger.Error("Error listing products", zap.Error(err))
		return respondError(http.StatusInternalServerError, "Failed to list products", err)
	}
	return respond(http.StatusOK, items)
}

func (h *Handler) getProduct(ctx context.Context, req events.APIGatewayProxyRequest) events.APIGatewayProxyResponse {
	id := productID(req.Path)

	item, err := h.catalog.GetProduct(ctx, id)
	if errors.Is(err, domain.ErrProductNotFound) {
		h.logger.Warn("Product not found", zap.String("product_id", id))
		return respond(http.StatusNotFound, map[string]string{"error": "Product not found"})
	}
	if err != nil {
		h.logger.Error("Error fetching product", zap.Error(err))
		return respondError(http.StatusInternalServerError, "Failed to get product", err)
	}
	return respond(http.StatusOK, item)
}

func (h *Handler) createProduct(ctx context.Context, req events.APIGatewayProxyRequest) events.APIGatewayProxyResponse {
	var item map[string]interface{}
	if err := parseBody(req.Body, &item); err != nil {
		h.logger.Error("Error creating product", zap.Error(err))
		return respondError(http.StatusInternalServerError, "Failed to create product", err)
	}

	if err := h.catalog.CreateProduct(ctx, item); err != nil {
		h.logger.Error("Error creating product", zap.Error(err))
		return respondError(http.StatusInternalServerError, "Failed to create product", err)
	}
	return respond(http.StatusOK, map[string]string{"message": "Product created successfully"})
}

func (h *Handler) updateProduct(ctx context.Context, req events.APIGatewayProxyRequest) events.APIGatewayProxyResponse {
	id := productID(req.Path)

	var update domain.UpdateProductRequest
	if err := parseBody(req.Body, &update); err != nil {
		h.logger.Error("Error updating product", zap.String("product_id", id), zap.Error(err))
		return respondError(http.StatusInternalServerError, "Failed to update product", err)
	}

	if err := h.catalog.UpdateProduct(ctx, id, update); err != nil {
		h.logger.Error("Error updating product", zap.String("product_id", id), zap.Error(err))
		return respondError(http.StatusInternalServerError, "Failed to update product", err)
	}
	return respond(http.StatusOK, map[string]string{"message": "Product updated successfully"})
}

func (h *Handler) deleteProduct(ctx context.Context, req events.APIGatewayProxyRequest) events.APIGatewayProxyResponse {
	id := productID(req.Path)

	if err := h.catalog.DeleteProduct(ctx, id); err != nil {
		h.logger.Error("Error deleting product", zap.String("product_id", id), zap.Error(err))
		return respondError(http.StatusInternalServerError, "Failed to delete product", err)
	}
	return respond(http.StatusOK, map[string]string{"message": "Product deleted successfully"})
}
