package logging

import (
	"regexp"
	"strings"
)

const redactedPlaceholder = "[REDACTED]"

// hexAddressPattern matches 0x-prefixed hex account addresses.
var hexAddressPattern = regexp.MustCompile(`0x[0-9a-fA-F]{8,}`)

// redactor redacts sensitive values in log key-value pairs. Wallet addresses
// identify the session's user, so both sensitive keys and address-shaped
// values are scrubbed before anything reaches the log file.
type redactor struct {
	sensitiveWords map[string]bool
}

// newRedactor creates a new redactor with the default sensitive key set.
func newRedactor() *redactor {
	words := []string{"secret", "password", "token", "key", "auth", "credential", "wallet", "address", "mnemonic"}
	m := make(map[string]bool, len(words))
	for _, w := range words {
		m[w] = true
	}
	return &redactor{
		sensitiveWords: m,
	}
}

// redact walks through a slice of key-value pairs (flattened as
// [key1, value1, key2, value2, ...]). Values under sensitive keys are
// replaced entirely; address-shaped substrings are masked in all string
// values. Returns a new slice; the original slice is not modified.
func (r *redactor) redact(pairs []any) []any {
	if len(pairs) == 0 {
		return pairs
	}
	result := make([]any, len(pairs))
	copy(result, pairs)
	for i := 0; i+1 < len(result); i += 2 {
		key, ok := result[i].(string)
		if !ok {
			continue
		}
		if r.isSensitive(key) {
			result[i+1] = redactedPlaceholder
			continue
		}
		if s, ok := result[i+1].(string); ok {
			result[i+1] = hexAddressPattern.ReplaceAllString(s, redactedPlaceholder)
		}
	}
	return result
}

// isSensitive returns true if the key contains any sensitive word as a
// separate segment. Segments are split by non-alphanumeric characters.
func (r *redactor) isSensitive(key string) bool {
	key = strings.ToLower(key)
	parts := splitByNonAlphanumeric(key)
	for _, part := range parts {
		if r.sensitiveWords[part] {
			return true
		}
	}
	return false
}

func splitByNonAlphanumeric(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		isDigit := r >= '0' && r <= '9'
		isLower := r >= 'a' && r <= 'z'
		isUpper := r >= 'A' && r <= 'Z'
		return !isDigit && !isLower && !isUpper
	})
}
