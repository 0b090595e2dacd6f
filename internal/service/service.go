// Package service holds the business logic of the catalog: listing query
// composition, public-view redaction, id and timestamp stamping, and the
// per-entity visibility rules. Services talk to the document store through
// narrow repository interfaces satisfied by database/postgres collections.
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/syslocale/domainpbn/internal/database"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// Repository is the slice of a document collection shared by every entity
// service. database/postgres.Collection satisfies it.
type Repository[T any] interface {
	// Insert stores a new document under the given id.
	Insert(ctx context.Context, id string, doc *T) error

	// Find retrieves every document matching the query.
	Find(ctx context.Context, q database.Query) ([]*T, error)

	// FindOne retrieves the first document matching the query,
	// or database.ErrNotFound.
	FindOne(ctx context.Context, q database.Query) (*T, error)

	// FindByID retrieves the document stored under the given id,
	// or database.ErrNotFound.
	FindByID(ctx context.Context, id string) (*T, error)

	// Replace overwrites the document stored under the given id and returns
	// the stored state, or database.ErrNotFound.
	Replace(ctx context.Context, id string, doc *T) (*T, error)

	// Delete removes the document stored under the given id,
	// or reports database.ErrNotFound.
	Delete(ctx context.Context, id string) error
}

// newID generates an opaque document id.
func newID(op string) (string, error) {
	id, err := gonanoid.New()
	if err != nil {
		return "", fmt.Errorf("%s: failed to generate id: %w", op, err)
	}

	return id, nil
}

func now() time.Time {
	return time.Now().UTC()
}
