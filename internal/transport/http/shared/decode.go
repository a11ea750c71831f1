package shared

import (
	"encoding/json"
	"errors"
	"net/http"
)

var ErrInvalidBody = errors.New("request body must be a JSON object")

// DecodeBody reads the request body into a raw map for schema validation.
// Malformed JSON surfaces as ErrInvalidBody, which handlers turn into a 400.
func DecodeBody(r *http.Request) (map[string]any, error) {
	var values map[string]any
	if err := json.NewDecoder(r.Body).Decode(&values); err != nil {
		return nil, ErrInvalidBody
	}
	if values == nil {
		return nil, ErrInvalidBody
	}
	return values, nil
}
