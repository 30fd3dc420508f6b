//go:build unit || e2e

package testutil

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

// Mutation edits the JSON form of a request body before it is sent.
type Mutation func(m map[string]any)

// DtoMap renders v as a JSON object and applies muts in order, so binding rules
// can be probed with values the typed DTO cannot hold.
func DtoMap(t *testing.T, v any, muts ...Mutation) map[string]any {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))
	for _, f := range muts {
		if f != nil {
			f(m)
		}
	}
	return m
}

// Field sets key to value; a nil value drops the key.
func Field(key string, value any) Mutation {
	return func(m map[string]any) {
		if value == nil {
			delete(m, key)
			return
		}
		m[key] = value
	}
}
