package services

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// serviceError extracts the most specific failure message a backend
// response carries: the server-supplied message field when the body
// decodes, the HTTP status otherwise.
func serviceError(resp *http.Response, action string) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Message != "" {
			return fmt.Errorf("%s: %s", action, payload.Message)
		}
		if payload.Error != "" {
			return fmt.Errorf("%s: %s", action, payload.Error)
		}
	}
	return fmt.Errorf("%s: unexpected status %d", action, resp.StatusCode)
}
