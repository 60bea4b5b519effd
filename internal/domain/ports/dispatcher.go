// Package ports defines the interfaces the domain core calls into.
package ports

import (
	"context"
	"encoding/json"
	"fmt"
)

// Verb is an HTTP method accepted by the dispatcher.
type Verb string

// The verbs the dispatcher understands.
const (
	Get    Verb = "GET"
	Post   Verb = "POST"
	Patch  Verb = "PATCH"
	Delete Verb = "DELETE"
)

// Envelope is a decoded JSON response body. The only relevant key is the
// resource's plural tag, holding an ordered sequence of raw records.
type Envelope map[string]json.RawMessage

// Records returns the raw records stored under key. A missing or null key
// yields an empty sequence, never an error.
func (e Envelope) Records(key string) ([]json.RawMessage, error) {
	raw, ok := e[key]
	if !ok || string(raw) == "null" {
		return []json.RawMessage{}, nil
	}
	var records []json.RawMessage
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("decoding %q records: %w", key, err)
	}
	return records, nil
}

// Dispatcher executes one request against the remote service and decodes the
// response envelope. Transport failures are returned opaque; the core never
// retries or interprets them. PATCH and DELETE responses carry no useful
// body, so their envelopes may be empty.
type Dispatcher interface {
	Execute(ctx context.Context, verb Verb, path string, params map[string]any) (Envelope, error)
}
