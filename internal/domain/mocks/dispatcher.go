// Package mocks provides hand-written mock implementations of the domain
// ports for tests.
package mocks

import (
	"context"
	"encoding/json"

	"github.com/ersonp/orgflow/internal/domain/ports"
)

// Call records one request seen by the mock dispatcher.
type Call struct {
	Verb   ports.Verb
	Path   string
	Params map[string]any
}

// Dispatcher is a mock implementation of ports.Dispatcher. Responses are
// keyed by path; Err, when set, is returned for every call.
type Dispatcher struct {
	Responses map[string]ports.Envelope
	Calls     []Call
	Err       error
}

// NewDispatcher creates a new mock Dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		Responses: make(map[string]ports.Envelope),
	}
}

// Execute records the call and returns the canned envelope for the path.
func (m *Dispatcher) Execute(_ context.Context, verb ports.Verb, path string, params map[string]any) (ports.Envelope, error) {
	m.Calls = append(m.Calls, Call{Verb: verb, Path: path, Params: params})
	if m.Err != nil {
		return nil, m.Err
	}
	if env, ok := m.Responses[path]; ok {
		return env, nil
	}
	return ports.Envelope{}, nil
}

// Respond sets the canned envelope for path, marshaling records under key.
func (m *Dispatcher) Respond(path, key string, records any) {
	raw, err := json.Marshal(records)
	if err != nil {
		panic(err)
	}
	m.Responses[path] = ports.Envelope{key: raw}
}

// LastCall returns the most recent call, or nil when none were made.
func (m *Dispatcher) LastCall() *Call {
	if len(m.Calls) == 0 {
		return nil
	}
	return &m.Calls[len(m.Calls)-1]
}
