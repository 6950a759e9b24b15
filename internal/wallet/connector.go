// Package wallet provides the wallet connection contract for chainpulse.
// The client never speaks a real wallet protocol; it depends only on this
// narrow surface, and the connect flow itself is owned by whichever frontend
// (CLI prompt, TUI modal) drives the session.
package wallet

import (
	"os"
	"strings"
	"sync"
)

// EnvWalletAddress is the environment variable holding a pre-connected
// wallet address for CLI sessions.
const EnvWalletAddress = "CHAINPULSE_WALLET"

// Connector reports the session's wallet identity.
type Connector interface {
	// IsAuthenticated reports whether a wallet is connected.
	IsAuthenticated() bool

	// Address returns the connected wallet address, or "" when disconnected.
	Address() string
}

// SessionConnector is the in-process connector implementation. The frontend
// that runs the connect flow updates it once the user approves.
type SessionConnector struct {
	mu      sync.RWMutex
	address string
}

// NewSessionConnector creates a connector, optionally pre-connected to the
// given address.
func NewSessionConnector(address string) *SessionConnector {
	return &SessionConnector{address: strings.TrimSpace(address)}
}

// NewSessionConnectorFromEnv creates a connector pre-connected to the
// address in CHAINPULSE_WALLET, if set.
func NewSessionConnectorFromEnv() *SessionConnector {
	return NewSessionConnector(os.Getenv(EnvWalletAddress))
}

// IsAuthenticated reports whether a wallet is connected.
func (c *SessionConnector) IsAuthenticated() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.address != ""
}

// Address returns the connected wallet address, or "" when disconnected.
func (c *SessionConnector) Address() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.address
}

// ConnectAs records a successful connect flow for the given address.
func (c *SessionConnector) ConnectAs(address string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.address = strings.TrimSpace(address)
}

// Disconnect clears the session identity.
func (c *SessionConnector) Disconnect() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.address = ""
}
