// Package store persists named trees across backends.
//
// This package defines an interface for tree storage with implementations
// for different backends:
//   - memory: In-memory storage for development/testing
//   - file: File-based storage for CLI applications
//   - redis: Redis-backed storage for multi-instance deployments
//   - mongo: MongoDB-backed storage for document-oriented deployments
//
// # Usage
//
// Create a store:
//
//	// CLI
//	st, err := store.NewFileStore("")  // Uses ~/.config/treekit/trees/
//
//	// Production
//	st := store.NewRedisStore(redis.NewClient(&redis.Options{Addr: "localhost:6379"}))
//
// Save and load trees:
//
//	rec := store.NewRecord("deps", treedoc.FromTree(t))
//	if err := st.Put(ctx, rec); err != nil {
//	    return err
//	}
//
//	rec, err := st.Get(ctx, "deps")
package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/treekit/pkg/treedoc"
)

// Sentinel errors for store operations.
var (
	// ErrNotFound is returned when no record exists under the requested name.
	ErrNotFound = errors.New("tree not found")

	// ErrInvalidName is returned when a record name is empty.
	ErrInvalidName = errors.New("invalid tree name")
)

// Record is a stored tree with its bookkeeping metadata.
// Records are addressed by Name; the ID is assigned once at creation and
// survives updates.
type Record struct {
	ID        uuid.UUID                `json:"id" bson:"_id"`
	Name      string                   `json:"name" bson:"name"`
	Tree      treedoc.Document[string] `json:"tree" bson:"tree"`
	CreatedAt time.Time                `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time                `json:"updated_at" bson:"updated_at"`
}

// NewRecord creates a record for doc under name with a fresh ID and
// creation timestamp.
func NewRecord(name string, doc treedoc.Document[string]) *Record {
	now := time.Now().UTC()
	return &Record{
		ID:        uuid.New(),
		Name:      name,
		Tree:      doc,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// clone returns a deep copy of the record, including the tree document, so
// callers and the backend never share mutable state.
func (r *Record) clone() *Record {
	cp := *r
	cp.Tree = r.Tree.Clone()
	return &cp
}

// Store is the interface for tree storage backends.
type Store interface {
	// Get retrieves the record stored under name.
	// Returns ErrNotFound if no such record exists.
	Get(ctx context.Context, name string) (*Record, error)

	// Put stores a record, replacing any existing record with the same name.
	// The record's UpdatedAt is refreshed; when overwriting, the previous
	// record's ID and CreatedAt are preserved.
	Put(ctx context.Context, rec *Record) error

	// Delete removes the record stored under name.
	// Returns ErrNotFound if no such record exists.
	Delete(ctx context.Context, name string) error

	// List returns all stored records sorted by name.
	List(ctx context.Context) ([]*Record, error)

	// Close releases backend resources.
	Close() error
}

// validateRecord rejects records a backend must not accept.
func validateRecord(rec *Record) error {
	if rec == nil || rec.Name == "" {
		return ErrInvalidName
	}
	return nil
}

// mergePrevious carries identity fields over from the record being replaced,
// so a Put under an existing name is an update rather than a new record.
func mergePrevious(rec, prev *Record) {
	rec.UpdatedAt = time.Now().UTC()
	if prev == nil {
		return
	}
	rec.ID = prev.ID
	rec.CreatedAt = prev.CreatedAt
}
