package search

import "strings"

// SubstringProvider provides substring-based search.
// Matches if any field contains the query as a substring.
type SubstringProvider struct {
	opts Options
}

// NewSubstringProvider creates a new substring search provider.
func NewSubstringProvider(opts ...Option) Provider {
	return &SubstringProvider{
		opts: applyOptions(opts),
	}
}

// Match returns true if any field contains the query substring.
func (p *SubstringProvider) Match(fields []string, query string) bool {
	if query == "" {
		return true
	}

	searchQuery := query
	if p.opts.CaseInsensitive {
		searchQuery = strings.ToLower(query)
	}

	for _, fieldValue := range fields {
		if fieldValue == "" {
			continue
		}
		if p.opts.CaseInsensitive {
			fieldValue = strings.ToLower(fieldValue)
		}
		if strings.Contains(fieldValue, searchQuery) {
			return true
		}
	}

	return false
}

// Name returns the provider name.
func (p *SubstringProvider) Name() string {
	return "substring"
}
