package wallet

import (
	"sync"
)

// Gate is the single choke point for identity-requiring actions. An action
// passed to RequireAuth runs immediately when a wallet is connected;
// otherwise it is deferred and the connect flow is triggered. Resolve runs
// every deferred action exactly once on success and drops them all on
// abandon. The stores themselves stay identity-agnostic.
type Gate struct {
	mu        sync.Mutex
	connector Connector
	pending   []func()
	onConnect func()
}

// NewGate creates a gate over the given connector. onConnectRequired fires
// when a deferred action first triggers the connect flow; the frontend that
// owns the flow must eventually call Resolve. It may be nil.
func NewGate(connector Connector, onConnectRequired func()) *Gate {
	return &Gate{connector: connector, onConnect: onConnectRequired}
}

// RequireAuth executes action now when authenticated, otherwise defers it
// behind the connect flow. Returns true if the action ran immediately.
func (g *Gate) RequireAuth(action func()) bool {
	g.mu.Lock()
	if g.connector.IsAuthenticated() {
		g.mu.Unlock()
		action()
		return true
	}

	g.pending = append(g.pending, action)
	trigger := len(g.pending) == 1
	onConnect := g.onConnect
	g.mu.Unlock()

	if trigger && onConnect != nil {
		onConnect()
	}
	return false
}

// Resolve finishes the connect flow. On success every deferred action runs
// exactly once, in the order it was deferred; on failure or abandon they are
// dropped without ever running. Either way the pending queue is emptied.
func (g *Gate) Resolve(success bool) {
	g.mu.Lock()
	pending := g.pending
	g.pending = nil
	g.mu.Unlock()

	if !success {
		return
	}
	for _, action := range pending {
		action()
	}
}

// PendingCount returns the number of actions waiting on the connect flow.
func (g *Gate) PendingCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.pending)
}
