// Package search provides a unified search abstraction for filtering feed
// posts and directory projects. It supports multiple search strategies
// (substring, token-based) through a common Provider interface, eliminating
// duplicate search logic between CLI and TUI.
package search

// Provider defines the interface for search providers.
// Implementations can use different strategies (substring, token-based, etc.)
// to match a record's searchable fields against a query.
type Provider interface {
	// Match returns true if any of the record's fields match the query.
	Match(fields []string, query string) bool

	// Name returns the provider name for identification and debugging.
	Name() string
}

// Options holds configuration options for creating search providers.
type Options struct {
	CaseInsensitive bool // If true, searches ignore case sensitivity
}

// DefaultOptions returns the default search options.
func DefaultOptions() Options {
	return Options{
		CaseInsensitive: true,
	}
}

// Option is a function that modifies search options.
type Option func(*Options)

// WithCaseInsensitive sets case-insensitive search.
func WithCaseInsensitive(enabled bool) Option {
	return func(o *Options) {
		o.CaseInsensitive = enabled
	}
}

// applyOptions applies the given options to the options struct.
func applyOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
