package provider

import (
	"context"
	"fmt"
	"sync"
)

// MockClient is a lightweight in-memory Client useful for tests & examples.
// Replies are consumed in FIFO order; an exhausted script falls back to a
// deterministic echo response. Scripted errors are returned in place of a
// reply so failure-absorption paths can be exercised.
type MockClient struct {
	mu      sync.Mutex
	info    Info
	script  []scriptEntry
	calls   int
	failAll error
}

type scriptEntry struct {
	reply string
	err   error
}

// NewMockClient constructs a MockClient identifying as the given provider.
func NewMockClient(name, providerID string) *MockClient {
	return &MockClient{info: Info{Name: name, Provider: providerID}}
}

// AddReply appends a canned reply to the script.
func (m *MockClient) AddReply(reply string) *MockClient {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.script = append(m.script, scriptEntry{reply: reply})
	return m
}

// AddError appends a scripted failure to the script.
func (m *MockClient) AddError(err error) *MockClient {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.script = append(m.script, scriptEntry{err: err})
	return m
}

// FailAlways makes every call return err, regardless of the script.
func (m *MockClient) FailAlways(err error) *MockClient {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failAll = err
	return m
}

// Calls reports how many Complete invocations the mock has served.
func (m *MockClient) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// Complete implements Client.
func (m *MockClient) Complete(ctx context.Context, req Request) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++

	if m.failAll != nil {
		return "", m.failAll
	}
	if len(m.script) > 0 {
		next := m.script[0]
		m.script = m.script[1:]
		if next.err != nil {
			return "", next.err
		}
		return next.reply, nil
	}
	return fmt.Sprintf("Mock response to: %s", req.Prompt), nil
}

// Info implements Client.
func (m *MockClient) Info() Info { return m.info }
