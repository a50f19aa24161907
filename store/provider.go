package store

import (
	"context"
	"sync"
)

// OpenFunc constructs a connector.
type OpenFunc func(ctx context.Context) (Connector, error)

// Provider owns the process-wide connector. It is built on first use and
// kept until Reset. A failed construction is retried on the next Get.
type Provider struct {
	mu   sync.Mutex
	open OpenFunc
	conn Connector
}

// NewProvider returns a provider that builds its connector with open.
func NewProvider(open OpenFunc) *Provider {
	return &Provider{open: open}
}

// Get returns the cached connector, constructing it if needed.
func (p *Provider) Get(ctx context.Context) (Connector, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.conn != nil {
		return p.conn, nil
	}
	conn, err := p.open(ctx)
	if err != nil {
		return nil, err
	}
	p.conn = conn
	return conn, nil
}

// Reset closes and drops the cached connector.
func (p *Provider) Reset() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.conn == nil {
		return nil
	}
	err := p.conn.Close()
	p.conn = nil
	return err
}
