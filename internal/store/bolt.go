package store

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jsutton/marquee/internal/domain"
	bolt "go.etcd.io/bbolt"
)

// Bucket and key names
var (
	bucketSession = []byte("session")
	keyIdentity   = []byte("identity")
)

// BoltRepository implements domain.SessionRepository on a local BoltDB
// file. It holds the single durable key of the application: the session
// identity, read once at startup, written on login, deleted on logout.
type BoltRepository struct {
	db *bolt.DB
}

// OpenBoltRepository opens (or creates) the database file under dataDir.
func OpenBoltRepository(dataDir string) (*BoltRepository, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "marquee.db")
	db, err := bolt.Open(dbPath, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketSession)
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &BoltRepository{db: db}, nil
}

// SaveIdentity persists the identity string.
func (r *BoltRepository) SaveIdentity(identity string) error {
	return r.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketSession).Put(keyIdentity, []byte(identity))
	})
}

// LoadIdentity returns the stored identity, or domain.ErrNoSession when
// none exists.
func (r *BoltRepository) LoadIdentity() (string, error) {
	var identity string
	err := r.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket(bucketSession).Get(keyIdentity); v != nil {
			identity = string(v)
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	if identity == "" {
		return "", domain.ErrNoSession
	}
	return identity, nil
}

// ClearIdentity removes the stored identity. Clearing an absent identity
// is a no-op.
func (r *BoltRepository) ClearIdentity() error {
	return r.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketSession).Delete(keyIdentity)
	})
}

// Close releases the database file.
func (r *BoltRepository) Close() error {
	return r.db.Close()
}
