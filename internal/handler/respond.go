package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/aws/aws-lambda-go/events"
)

func respond(status int, body interface{}) events.APIGatewayProxyResponse {
	b, err := json.Marshal(body)
	if err != nil {
		return events.APIGatewayProxyResponse{
			StatusCode: http.StatusInternalServerError,
			Headers:    map[string]string{"Content-Type": "application/json"},
			Body:       `{"error":"Failed to encode response"}`,
		}
	}
	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       string(b),
	}
}

// respondError builds the failure envelope. The underlying fault text
// rides along in "details"; callers see internal detail on purpose.
func respondError(status int, summary string, err error) events.APIGatewayProxyResponse {
	return respond(status, map[string]string{
		"error":   summary,
		"details": err.Error(),
	})
}

// parseBody decodes the request body as a JSON object. An absent body
// reads as an empty object. Numbers keep their wire text so decimal
// coercion downstream stays exact.
func parseBody(body string, v interface{}) error {
	if strings.TrimSpace(body) == "" {
		body = "{}"
	}
	dec := json.NewDecoder(strings.NewReader(body))
	dec.UseNumber()
	return dec.Decode(v)
}
