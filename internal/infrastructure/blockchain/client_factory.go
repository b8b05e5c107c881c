package blockchain

import (
	"fmt"
	"sync"
)

// ClientFactory hands out one EVM client per chain, dialing lazily so the
// server starts even when an RPC endpoint is down.
type ClientFactory struct {
	rpcURLs map[int64]string
	clients map[int64]*EVMClient
	mu      sync.RWMutex
}

// NewClientFactory creates a factory over a chain-id to RPC URL map
func NewClientFactory(rpcURLs map[int64]string) *ClientFactory {
	return &ClientFactory{
		rpcURLs: rpcURLs,
		clients: make(map[int64]*EVMClient),
	}
}

// GetClient returns the client for a chain id, dialing on first use
func (f *ClientFactory) GetClient(chainID int64) (*EVMClient, error) {
	f.mu.RLock()
	client, ok := f.clients[chainID]
	f.mu.RUnlock()
	if ok {
		return client, nil
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	// double check
	if client, ok := f.clients[chainID]; ok {
		return client, nil
	}

	rpcURL, ok := f.rpcURLs[chainID]
	if !ok {
		return nil, fmt.Errorf("no RPC endpoint configured for chain %d", chainID)
	}

	newClient, err := NewEVMClient(rpcURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create EVM client for chain %d: %w", chainID, err)
	}

	f.clients[chainID] = newClient
	return newClient, nil
}

// RegisterClient injects or overrides the cached client for a chain id.
// Useful for deterministic unit tests.
func (f *ClientFactory) RegisterClient(chainID int64, client *EVMClient) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.clients[chainID] = client
}
