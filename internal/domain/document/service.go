package document

import (
	"context"
	"fmt"
)

// A Service that passes Document operations through to a remote store.
//
// Implementations must be safe for concurrent use.
type Service interface {
	// Submits the Document as a new one; the store assigns its id and rev.
	Create(ctx context.Context, doc Document) (*WriteResult, error)

	// Lists the bodies of every Document in the database.
	List(ctx context.Context) ([]Document, error)

	// Writes the Document under the given id. The rev may be nil, in which
	// case the outcome is left entirely to the store.
	Put(ctx context.Context, id Id, rev *Rev, doc Document) (*WriteResult, error)

	// Deletes the given revision of a Document.
	Delete(ctx context.Context, id Id, rev *Rev) (*WriteResult, error)
}

// Database manages the existence of the database Documents live in
type Database interface {
	Name() string
	Exists(ctx context.Context) (bool, error)
	Create(ctx context.Context) error
}

// InvalidRevision is returned when a revision cannot be used against the store
type InvalidRevision struct {
	ID  Id
	Rev *Rev
}

func (e InvalidRevision) Error() string {
	if e.Rev == nil {
		return fmt.Sprintf("A revision is required for [%v]", e.ID)
	}
	return fmt.Sprintf("Invalid revision [%v] for [%v]", *e.Rev, e.ID)
}

// DatabaseNotInstalled is returned when the configured database does not exist
type DatabaseNotInstalled struct {
	Name string
}

func (e DatabaseNotInstalled) Error() string {
	return fmt.Sprintf("Database [%v] does not exist", e.Name)
}
