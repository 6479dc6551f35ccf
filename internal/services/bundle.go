package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/savaki/eb-options/internal/errors"
)

// Bundle holds the key/value pairs decoded from a secret payload
type Bundle map[string]string

// SecretFetcher retrieves a secret and decodes it into a Bundle.
// found is false when the secret exists but carries no string payload.
type SecretFetcher interface {
	FetchBundle(ctx context.Context, secretID string) (bundle Bundle, found bool, err error)
}

// DecodeBundle parses a JSON object payload. String values are used as-is;
// any other JSON value is kept as its compact JSON text.
func DecodeBundle(payload string) (Bundle, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal([]byte(payload), &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrSecretUndecodable, err)
	}
	if raw == nil {
		return nil, fmt.Errorf("%w: payload is null", errors.ErrSecretUndecodable)
	}

	bundle := make(Bundle, len(raw))
	for key, value := range raw {
		value = bytes.TrimSpace(value)
		if len(value) > 0 && value[0] == '"' {
			var s string
			if err := json.Unmarshal(value, &s); err != nil {
				return nil, fmt.Errorf("%w: key %s: %v", errors.ErrSecretUndecodable, key, err)
			}
			bundle[key] = s
			continue
		}

		var compact bytes.Buffer
		if err := json.Compact(&compact, value); err != nil {
			return nil, fmt.Errorf("%w: key %s: %v", errors.ErrSecretUndecodable, key, err)
		}
		bundle[key] = compact.String()
	}

	return bundle, nil
}
