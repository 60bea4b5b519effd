package ports

// ResponseCache stores raw response bodies keyed by request. It sits under
// the dispatcher as a read/write-through layer; staleness and eviction are
// the implementation's concern, not the core's.
type ResponseCache interface {
	// Get returns the cached body for key, or false when absent.
	Get(key string) ([]byte, bool)

	// Set stores the body for key, replacing any previous entry.
	Set(key string, body []byte) error

	// Close releases the cache and any on-disk state it acquired.
	Close() error
}
