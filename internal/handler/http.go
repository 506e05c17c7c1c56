package handler

import (
	"io"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/gin-gonic/gin"
)

// ServeGin adapts an HTTP request into the proxy envelope and relays
// the result. The local dev server mounts this as its only handler so
// routing behavior matches the deployed function exactly.
func (h *Handler) ServeGin(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read request body"})
		return
	}

	resp := h.Route(c.Request.Context(), events.APIGatewayProxyRequest{
		Path:       c.Request.URL.Path,
		HTTPMethod: c.Request.Method,
		Body:       string(body),
	})
	c.Data(resp.StatusCode, resp.Headers["Content-Type"], []byte(resp.Body))
}
