package storage

import (
	"errors"
	"fmt"
	"path/filepath"

	bolt "go.etcd.io/bbolt"
)

// Durable keys, one per entity slot. No two slots share a key, so slot
// writes never contend on anything but the single write transaction.
const (
	KeyAdminSecret  = "admin_password_key"
	KeyProfile      = "profile_data"
	KeyTimeline     = "timeline_data"
	KeyProjects     = "projects_data"
	KeyPublications = "publications_data"
	KeySkills       = "skills_data"
	KeyBlogs        = "blogs_data"
	KeyNews         = "news_data"
	KeyAwards       = "awards_data"
	KeyResources    = "resources_data"
	KeyGallery      = "gallery_data"
	KeyPersonalDev  = "personal_dev_data"
	KeyTestimonials = "testimonials_data"
	KeyAffiliations = "affiliations_data"
)

// Keys lists every durable key in the backing.
var Keys = []string{
	KeyAdminSecret,
	KeyProfile,
	KeyTimeline,
	KeyProjects,
	KeyPublications,
	KeySkills,
	KeyBlogs,
	KeyNews,
	KeyAwards,
	KeyResources,
	KeyGallery,
	KeyPersonalDev,
	KeyTestimonials,
	KeyAffiliations,
}

var bucketContent = []byte("content")

// ErrUnavailable wraps failures of the underlying database (disk full,
// closed database, I/O errors). Callers branch on it with errors.Is.
var ErrUnavailable = errors.New("storage unavailable")

// Backing is the durable key-value surface backing the domain store.
// It stores one JSON-serialized value per fixed string key in a single
// BoltDB bucket.
type Backing struct {
	db *bolt.DB
}

// Open opens (creating if necessary) the backing database under dataDir.
func Open(dataDir string) (*Backing, error) {
	dbPath := filepath.Join(dataDir, "folio.db")

	db, err := bolt.Open(dbPath, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists(bucketContent); err != nil {
			return fmt.Errorf("failed to create bucket %s: %w", bucketContent, err)
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &Backing{db: db}, nil
}

// Close closes the database
func (b *Backing) Close() error {
	return b.db.Close()
}

// Get returns the raw bytes stored under key, or nil if the key has never
// been written. The returned slice is a copy and stays valid after the
// read transaction ends.
func (b *Backing) Get(key string) ([]byte, error) {
	var data []byte
	err := b.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(bucketContent).Get([]byte(key))
		if v == nil {
			return nil
		}
		// BoltDB data is only valid during the transaction
		data = make([]byte, len(v))
		copy(data, v)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: get %s: %v", ErrUnavailable, key, err)
	}
	return data, nil
}

// Put writes value under key in its own transaction.
func (b *Backing) Put(key string, value []byte) error {
	err := b.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketContent).Put([]byte(key), value)
	})
	if err != nil {
		return fmt.Errorf("%w: put %s: %v", ErrUnavailable, key, err)
	}
	return nil
}

// PutAll writes every key/value pair in one transaction. Either all
// writes are durable or none are, which is what lets a snapshot import
// commit atomically.
func (b *Backing) PutAll(values map[string][]byte) error {
	err := b.db.Update(func(tx *bolt.Tx) error {
		bk := tx.Bucket(bucketContent)
		for key, value := range values {
			if err := bk.Put([]byte(key), value); err != nil {
				return fmt.Errorf("put %s: %w", key, err)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

// Path returns the filesystem path of the database file.
func (b *Backing) Path() string {
	return b.db.Path()
}
