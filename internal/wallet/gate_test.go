package wallet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGateRunsImmediatelyWhenAuthenticated(t *testing.T) {
	connector := NewMockConnector(true, "0xabc123def4567890")
	gate := NewGate(connector, nil)

	ran := false
	assert.True(t, gate.RequireAuth(func() { ran = true }))
	assert.True(t, ran)
	assert.Equal(t, 0, gate.PendingCount())
}

func TestGateDefersUntilConnect(t *testing.T) {
	connector := NewMockConnector(false, "")
	connectRequests := 0
	gate := NewGate(connector, func() { connectRequests++ })

	var order []string
	assert.False(t, gate.RequireAuth(func() { order = append(order, "first") }))
	assert.False(t, gate.RequireAuth(func() { order = append(order, "second") }))

	// The connect flow fires once for the whole queue.
	assert.Equal(t, 1, connectRequests)
	assert.Equal(t, 2, gate.PendingCount())
	assert.Empty(t, order)

	connector.SetAuthenticated(true)
	gate.Resolve(true)

	// Deferred actions run exactly once, in deferral order.
	require.Equal(t, []string{"first", "second"}, order)
	assert.Equal(t, 0, gate.PendingCount())

	// A second resolve must not replay anything.
	gate.Resolve(true)
	assert.Equal(t, []string{"first", "second"}, order)
}

func TestGateDropsPendingOnAbandon(t *testing.T) {
	connector := NewMockConnector(false, "")
	gate := NewGate(connector, nil)

	ran := 0
	gate.RequireAuth(func() { ran++ })
	gate.Resolve(false)

	assert.Equal(t, 0, ran)
	assert.Equal(t, 0, gate.PendingCount())

	// Even a later successful connect must not revive dropped actions.
	connector.SetAuthenticated(true)
	gate.Resolve(true)
	assert.Equal(t, 0, ran)
}

func TestGateConnectCallbackFiresOncePerFlow(t *testing.T) {
	connector := NewMockConnector(false, "")
	connectRequests := 0
	gate := NewGate(connector, func() { connectRequests++ })

	gate.RequireAuth(func() {})
	gate.RequireAuth(func() {})
	gate.Resolve(false)

	// A fresh deferral after an abandoned flow starts a new flow.
	gate.RequireAuth(func() {})
	assert.Equal(t, 2, connectRequests)
}
