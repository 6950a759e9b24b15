package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedactorSensitiveKeys(t *testing.T) {
	r := newRedactor()

	tests := []struct {
		name string
		key  string
		want bool
	}{
		{name: "wallet key", key: "wallet", want: true},
		{name: "wallet address compound", key: "wallet_address", want: true},
		{name: "api token", key: "api_token", want: true},
		{name: "auth header", key: "auth-header", want: true},
		{name: "plain key", key: "project_id", want: false},
		{name: "substring does not count", key: "walletless", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.isSensitive(tt.key))
		})
	}
}

func TestRedactPairs(t *testing.T) {
	r := newRedactor()

	pairs := []any{
		"wallet", "0xabc123def4567890",
		"project", "nebula-swap",
		"note", "sent from 0xabc123def4567890 today",
	}
	redacted := r.redact(pairs)

	require.Len(t, redacted, 6)
	assert.Equal(t, redactedPlaceholder, redacted[1])
	assert.Equal(t, "nebula-swap", redacted[3])
	assert.Equal(t, "sent from "+redactedPlaceholder+" today", redacted[5])

	// Original slice stays untouched.
	assert.Equal(t, "0xabc123def4567890", pairs[1])
}

func TestRedactEmpty(t *testing.T) {
	r := newRedactor()
	assert.Empty(t, r.redact(nil))
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, parseLevel("debug"), parseLevel("DEBUG"))
	assert.Equal(t, parseLevel("info"), parseLevel("unknown"))
	assert.NotEqual(t, parseLevel("error"), parseLevel("warn"))
}
