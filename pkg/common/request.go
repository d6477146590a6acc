package common

import (
	"encoding/json"
	"net/http"
)

// ParseJSONBody decodes a JSON request body into v, rejecting unknown
// fields and bodies larger than maxBytes.
func ParseJSONBody(r *http.Request, v interface{}, maxBytes int64) error {
	r.Body = http.MaxBytesReader(nil, r.Body, maxBytes)

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	return decoder.Decode(v)
}
