package document

import (
	"strings"

	"github.com/google/uuid"
)

// Keys the store manages on every Document
const (
	IdKey  = "_id"
	RevKey = "_rev"
)

// Document is an arbitrary JSON object held by the remote store
type Document map[string]interface{}

// Id of a persisted Document, assigned by the store
type Id string

// Generates a random id, for stores that do not assign one themselves
func GenerateId() Id {
	return Id(strings.ReplaceAll(uuid.New().String(), "-", ""))
}

// Rev is an opaque revision token used by the store for optimistic
// concurrency control
type Rev string

// WriteResult is what the store answers with after a write
type WriteResult struct {
	Ok  bool
	ID  Id
	Rev Rev
}

// Id returns the identifier held in the Document, if there is one
func (d Document) Id() *Id {
	if s, ok := d[IdKey].(string); ok {
		id := Id(s)
		return &id
	}
	return nil
}

// SplitRev returns a copy of the Document without its revision, alongside
// that revision. A _rev that is not a string stays in the copy as-is and the
// returned revision is nil; it is up to the store to reject it.
func (d Document) SplitRev() (Document, *Rev) {
	fields := make(Document, len(d))
	for k, v := range d {
		fields[k] = v
	}
	if s, ok := d[RevKey].(string); ok {
		delete(fields, RevKey)
		rev := Rev(s)
		return fields, &rev
	}
	return fields, nil
}

// WithRev returns a copy of the Document carrying the given revision. A nil
// revision leaves the copy's _rev as SplitRev left it.
func (d Document) WithRev(rev *Rev) Document {
	withRev, _ := d.SplitRev()
	if rev != nil {
		withRev[RevKey] = string(*rev)
	}
	return withRev
}

// WithoutMetadata returns a copy of the Document without store-managed keys
func (d Document) WithoutMetadata() Document {
	fields, _ := d.SplitRev()
	delete(fields, IdKey)
	delete(fields, RevKey)
	return fields
}
