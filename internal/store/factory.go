package store

import (
	"fmt"
	"log/slog"
)

const (
	MemoryBackend Backend = "memory"
	SQLiteBackend Backend = "sqlite"
)

// Backend selects a KV implementation.
type Backend string

func (b Backend) String() string {
	return string(b)
}

func (b Backend) IsValid() bool {
	switch b {
	case MemoryBackend, SQLiteBackend:
		return true
	default:
		return false
	}
}

// CleanupFunc releases backend resources.
type CleanupFunc func() error

// Open creates the KV for the selected backend. The returned cleanup may
// be nil when the backend holds no resources.
func Open(backend Backend, dbPath string) (KV, CleanupFunc, error) {
	switch backend {
	case MemoryBackend:
		slog.Info("Initialized memory backend")
		return NewMemoryKV(), nil, nil
	case SQLiteBackend:
		kv, err := NewSQLiteKV(dbPath)
		if err != nil {
			return nil, nil, fmt.Errorf("initialize sqlite backend: %w", err)
		}
		slog.Info("Initialized SQLite backend", "db_path", dbPath)
		return kv, kv.Close, nil
	default:
		return nil, nil, fmt.Errorf("invalid backend type: %s", backend)
	}
}
