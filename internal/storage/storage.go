package storage

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"github.com/carson-networks/banking-demo/internal/config"
	"github.com/carson-networks/banking-demo/internal/storage/account"
	"github.com/carson-networks/banking-demo/internal/storage/kv"
	"github.com/carson-networks/banking-demo/internal/storage/ledger"
)

// Storage bundles the collaborators the transaction engine reads and writes.
type Storage struct {
	DB       *sql.DB
	Ledger   *ledger.Store
	Accounts *account.Directory
	KV       kv.IStore
}

// NewMemoryStorage builds a fully in-memory Storage.
func NewMemoryStorage() *Storage {
	return &Storage{
		Ledger:   ledger.NewStore(),
		Accounts: account.NewDirectory(),
		KV:       kv.NewMemoryStore(),
	}
}

// NewStorage builds Storage for the configured backend. The ledger and accounts are always
// in memory; the backend choice only applies to the key-value store.
func NewStorage(env *config.Config) (*Storage, error) {
	s := NewMemoryStorage()
	if env.Storage.Backend != config.BackendPostgres {
		return s, nil
	}

	db, err := sql.Open("postgres", env.PostgresDSN())
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	s.DB = db
	s.KV = kv.NewPostgresStore(db)
	return s, nil
}

// Close releases the database handle, if any.
func (s *Storage) Close() error {
	if s.DB != nil {
		return s.DB.Close()
	}
	return nil
}
