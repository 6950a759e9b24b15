package wallet

import "sync"

// MockConnector is a test double for the Connector interface.
type MockConnector struct {
	mu            sync.Mutex
	Authenticated bool
	Addr          string

	// IsAuthenticatedCalls counts calls for assertion in tests.
	IsAuthenticatedCalls int
}

// NewMockConnector creates a mock connector in the given state.
func NewMockConnector(authenticated bool, addr string) *MockConnector {
	return &MockConnector{Authenticated: authenticated, Addr: addr}
}

// IsAuthenticated returns the configured state and records the call.
func (m *MockConnector) IsAuthenticated() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.IsAuthenticatedCalls++
	return m.Authenticated
}

// Address returns the configured address.
func (m *MockConnector) Address() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Addr
}

// SetAuthenticated flips the mock's state.
func (m *MockConnector) SetAuthenticated(authenticated bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Authenticated = authenticated
}
