//go:build unit || e2e

package builder

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

// BodyMutation edits the JSON form of a create request before it is sent.
type BodyMutation func(body map[string]any)

// Set replaces a field with a raw JSON value, which may have the wrong type on purpose.
func Set(field string, value any) BodyMutation {
	return func(body map[string]any) { body[field] = value }
}

// Without drops a field so binding sees it as missing.
func Without(field string) BodyMutation {
	return func(body map[string]any) { delete(body, field) }
}

func (b *CouponBuilder) BuildCreateRequestBody(t *testing.T, muts ...BodyMutation) map[string]any {
	t.Helper()

	raw, err := json.Marshal(b.BuildCreateRequestDTO())
	require.NoError(t, err)
	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))
	for _, mut := range muts {
		mut(body)
	}
	return body
}
