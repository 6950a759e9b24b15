package search

import "strings"

// TokenProvider provides token-based search.
// The query is split into whitespace-separated tokens.
// Each token must match at least one field (AND logic).
type TokenProvider struct {
	opts Options
}

// NewTokenProvider creates a new token search provider.
func NewTokenProvider(opts ...Option) Provider {
	return &TokenProvider{
		opts: applyOptions(opts),
	}
}

// Match returns true if every token is found in at least one field.
func (p *TokenProvider) Match(fields []string, query string) bool {
	query = strings.TrimSpace(query)
	if query == "" {
		return true
	}

	tokens := strings.Fields(query)
	if p.opts.CaseInsensitive {
		for i, token := range tokens {
			tokens[i] = strings.ToLower(token)
		}
	}

	for _, token := range tokens {
		matched := false
		for _, fieldValue := range fields {
			if fieldValue == "" {
				continue
			}
			if p.opts.CaseInsensitive {
				fieldValue = strings.ToLower(fieldValue)
			}
			if strings.Contains(fieldValue, token) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}

	return true
}

// Name returns the provider name.
func (p *TokenProvider) Name() string {
	return "token"
}
