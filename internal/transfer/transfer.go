// Package transfer encodes a not-yet-saved generation result into a
// URL-safe token so a results view can be opened without a server
// round trip: JSON, then base64, then percent-encoding.
package transfer

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
)

// serializes v into a URL-safe token
func Encode(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("failed to marshal payload: %w", err)
	}

	encoded := base64.StdEncoding.EncodeToString(data)

	return url.QueryEscape(encoded), nil
}

// reverses Encode into v; any malformed step yields an error and the
// caller renders an empty state instead of failing
func Decode(token string, v any) error {
	if token == "" {
		return fmt.Errorf("empty token")
	}

	unescaped, err := url.QueryUnescape(token)
	if err != nil {
		// token may already be percent-decoded by the HTTP layer
		unescaped = token
	}

	// form decoding turns '+' into spaces; base64 never contains spaces
	unescaped = strings.ReplaceAll(unescaped, " ", "+")

	data, err := base64.StdEncoding.DecodeString(unescaped)
	if err != nil {
		return fmt.Errorf("failed to decode token: %w", err)
	}

	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse token payload: %w", err)
	}

	return nil
}
