package kvstore

import "context"

// Reserved storage keys. The names match the studio front-end's localStorage
// keys so exported data stays interchangeable.
const (
	KeyConfig  = "god_mode_config"
	KeyUsers   = "susana-lopez-studio-users"
	KeySession = "susana-lopez-studio-auth"
)

// Store persists raw JSON values by string key. Values survive process
// restarts (MySQL implementation); the memory implementation is for tests.
// Malformed stored JSON is not the store's concern: callers validate on read
// and clear bad entries themselves.
type Store interface {
	// Get returns the stored value and whether the key exists.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	// Delete removes the key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}
