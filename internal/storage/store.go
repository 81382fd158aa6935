package storage

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	bolt "go.etcd.io/bbolt"
)

var (
	documentsBucket = []byte("documents")
	metaBucket      = []byte("metadata")
)

type Store struct {
	db *bolt.DB
}

func NewStore(dbPath string) (*Store, error) {
	db, err := bolt.Open(dbPath, 0o600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		for _, bucket := range [][]byte{documentsBucket, metaBucket} {
			if _, createErr := tx.CreateBucketIfNotExists(bucket); createErr != nil {
				return createErr
			}
		}
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("creating buckets: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// DocumentID derives a stable identifier from the document's source path, so
// re-importing the same file updates the existing entry.
func DocumentID(path string) string {
	return fmt.Sprintf("%x", sha256.Sum256([]byte(path)))[:16]
}

func (s *Store) SaveDocument(doc *Document) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(documentsBucket)
		data, err := json.Marshal(doc)
		if err != nil {
			return err
		}
		return b.Put([]byte(doc.ID), data)
	})
}

func (s *Store) GetDocument(id string) (*Document, error) {
	var doc Document
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(documentsBucket)
		data := b.Get([]byte(id))
		if data == nil {
			return fmt.Errorf("document not found")
		}
		return json.Unmarshal(data, &doc)
	})
	return &doc, err
}

func (s *Store) GetAllDocuments() ([]*Document, error) {
	var docs []*Document
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(documentsBucket)
		return b.ForEach(func(_ []byte, v []byte) error {
			var doc Document
			if err := json.Unmarshal(v, &doc); err != nil {
				return err
			}
			docs = append(docs, &doc)
			return nil
		})
	})
	// Sort by Title (case-insensitive), fallback to Path
	sort.Slice(docs, func(i, j int) bool {
		ti := docs[i].Title
		tj := docs[j].Title
		if ti == "" {
			ti = docs[i].Path
		}
		if tj == "" {
			tj = docs[j].Path
		}
		return strings.ToLower(ti) < strings.ToLower(tj)
	})
	return docs, err
}

// TouchDocument records that a document was just opened.
func (s *Store) TouchDocument(id string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(documentsBucket)
		data := b.Get([]byte(id))
		if data == nil {
			return fmt.Errorf("document not found")
		}

		var doc Document
		if err := json.Unmarshal(data, &doc); err != nil {
			return err
		}

		doc.OpenedAt = time.Now()

		data, err := json.Marshal(doc)
		if err != nil {
			return err
		}

		return b.Put([]byte(id), data)
	})
}

func (s *Store) DeleteDocument(id string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(documentsBucket)
		return b.Delete([]byte(id))
	})
}
