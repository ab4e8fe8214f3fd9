// Package store is the document store used by every content type.
// Mongo is the production backend; Memory backs tests and the development fallback.
package store

import (
	"context"
	"errors"

	"github.com/seosites/seosites/backend/go-api/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrNotFound  = errors.New("document not found")
	ErrInvalidID = errors.New("invalid document id")
	ErrDuplicate = errors.New("duplicate key")
)

// Doc constrains PT to a pointer to an entity embedding models.Base.
type Doc[T any] interface {
	*T
	Meta() *models.Base
}

type SortField struct {
	Field string
	Desc  bool
}

// Query is an exact-match predicate plus ordering.
// Eq on an array field matches when any element equals the value.
type Query struct {
	Eq    map[string]any
	In    map[string][]any
	Sort  []SortField
	Limit int64
}

// Collection is the per-entity persistence contract.
type Collection[T any] interface {
	Find(ctx context.Context, q Query) ([]*T, error)
	FindOne(ctx context.Context, q Query) (*T, error)
	Get(ctx context.Context, id string) (*T, error)
	Insert(ctx context.Context, doc *T) error
	Replace(ctx context.Context, doc *T) error
	Delete(ctx context.Context, id string) (*T, error)
	Count(ctx context.Context, q Query) (int64, error)
	DeleteAll(ctx context.Context) error
}

// ParseID converts a hex id into an ObjectID.
func ParseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, ErrInvalidID
	}
	return oid, nil
}
