// Package labelstore persists generated labels so they can be downloaded
// and embedded after generation.
//
// A Record holds everything one generation produced: the resolved model and
// the rendered artifacts keyed by format. Backends share the same contract:
// Put overwrites, Get on a missing ID fails with a NOT_FOUND error, and a
// stored record round-trips byte-identical artifacts.
//
// Four backends are provided: an in-memory map for tests and ephemeral
// serving, a JSON-file directory for single-node deployments, Redis, and
// MongoDB.
package labelstore

import (
	"context"
	"time"

	"github.com/curadolabs/labelgen/pkg/errors"
	"github.com/curadolabs/labelgen/pkg/label"
)

// Record is one stored label generation.
type Record struct {
	ID        string            `json:"id" bson:"_id"`
	Model     *label.Model      `json:"model" bson:"model"`
	Artifacts map[string][]byte `json:"artifacts" bson:"artifacts"`
	CreatedAt time.Time         `json:"created_at" bson:"created_at"`
}

// Store persists label records. Implementations must be safe for
// concurrent use.
type Store interface {
	// Put stores a record, overwriting any record with the same ID.
	Put(ctx context.Context, rec *Record) error
	// Get returns the record for an ID, or a NOT_FOUND error.
	Get(ctx context.Context, id string) (*Record, error)
	// Delete removes a record. Deleting a missing ID is not an error.
	Delete(ctx context.Context, id string) error
	// Close releases backend resources.
	Close() error
}

func notFound(id string) error {
	return errors.New(errors.ErrCodeNotFound, "label %q not found", id)
}

// IsNotFound reports whether err is a missing-record error from any backend.
func IsNotFound(err error) bool {
	return errors.Is(err, errors.ErrCodeNotFound)
}
