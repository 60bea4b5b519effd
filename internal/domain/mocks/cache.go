package mocks

// ResponseCache is an in-memory mock implementation of ports.ResponseCache.
type ResponseCache struct {
	Entries map[string][]byte
	Err     error
	Closed  bool
}

// NewResponseCache creates a new mock ResponseCache.
func NewResponseCache() *ResponseCache {
	return &ResponseCache{
		Entries: make(map[string][]byte),
	}
}

// Get returns the cached body for key.
func (m *ResponseCache) Get(key string) ([]byte, bool) {
	body, ok := m.Entries[key]
	return body, ok
}

// Set stores the body for key.
func (m *ResponseCache) Set(key string, body []byte) error {
	if m.Err != nil {
		return m.Err
	}
	m.Entries[key] = body
	return nil
}

// Close marks the cache closed.
func (m *ResponseCache) Close() error {
	m.Closed = true
	return m.Err
}
