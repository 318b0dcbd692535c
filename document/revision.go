package document

import "sync/atomic"

// RevisionID uniquely identifies a document revision.
// IDs are monotonically increasing within a process.
type RevisionID uint64

var revisionCounter uint64

// NewRevisionID generates a new unique revision ID.
func NewRevisionID() RevisionID {
	return RevisionID(atomic.AddUint64(&revisionCounter, 1))
}
