// Package content implements the CRUD services behind every public content type.
package content

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/seosites/seosites/backend/go-api/internal/apperr"
	"github.com/seosites/seosites/backend/go-api/internal/models"
	"github.com/seosites/seosites/backend/go-api/internal/store"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Entity is a stored, self-validating document type.
type Entity[T any] interface {
	store.Doc[T]
	Validate() error
}

// Service is the generic list/get/create/update/delete contract over one collection.
type Service[T any, PT Entity[T]] struct {
	col  store.Collection[T]
	name string
	sort []store.SortField

	// afterUpdate and afterDelete run once the document write has succeeded.
	afterUpdate func(ctx context.Context, old, updated *T)
	afterDelete func(ctx context.Context, deleted *T)
}

// NewService builds a service; name is used in not-found messages.
func NewService[T any, PT Entity[T]](col store.Collection[T], name string, sort ...store.SortField) *Service[T, PT] {
	return &Service[T, PT]{col: col, name: name, sort: sort}
}

func (s *Service[T, PT]) Name() string { return s.name }

// List applies the default sort unless q carries its own.
func (s *Service[T, PT]) List(ctx context.Context, q store.Query) ([]*T, error) {
	if len(q.Sort) == 0 {
		q.Sort = s.sort
	}
	out, err := s.col.Find(ctx, q)
	if err != nil {
		return nil, s.translate(err)
	}
	return out, nil
}

func (s *Service[T, PT]) Get(ctx context.Context, id string) (*T, error) {
	d, err := s.col.Get(ctx, id)
	if err != nil {
		return nil, s.translate(err)
	}
	return d, nil
}

// Create assigns a fresh identity, fills defaults, validates and inserts.
func (s *Service[T, PT]) Create(ctx context.Context, doc *T) (*T, error) {
	meta := PT(doc).Meta()
	meta.ID = primitive.NilObjectID
	meta.CreatedAt, meta.UpdatedAt = time.Time{}, time.Time{}
	if err := prepare[T, PT](doc); err != nil {
		return nil, err
	}
	if err := s.col.Insert(ctx, doc); err != nil {
		return nil, s.translate(err)
	}
	return doc, nil
}

// Update loads the document, lets apply overwrite the fields present in the
// request, validates and replaces it. Identity and creation time are kept.
func (s *Service[T, PT]) Update(ctx context.Context, id string, apply func(*T) error) (*T, error) {
	cur, err := s.col.Get(ctx, id)
	if err != nil {
		return nil, s.translate(err)
	}
	old, err := clone[T, PT](cur)
	if err != nil {
		return nil, err
	}
	if err := apply(cur); err != nil {
		return nil, err
	}
	meta, oldMeta := PT(cur).Meta(), PT(old).Meta()
	meta.ID, meta.CreatedAt = oldMeta.ID, oldMeta.CreatedAt
	if err := prepare[T, PT](cur); err != nil {
		return nil, err
	}
	if err := s.col.Replace(ctx, cur); err != nil {
		return nil, s.translate(err)
	}
	if s.afterUpdate != nil {
		s.afterUpdate(ctx, old, cur)
	}
	return cur, nil
}

func (s *Service[T, PT]) Delete(ctx context.Context, id string) (*T, error) {
	d, err := s.col.Delete(ctx, id)
	if err != nil {
		return nil, s.translate(err)
	}
	if s.afterDelete != nil {
		s.afterDelete(ctx, d)
	}
	return d, nil
}

func (s *Service[T, PT]) translate(err error) error {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return apperr.NotFound(s.name + " not found")
	case errors.Is(err, store.ErrInvalidID):
		return apperr.NotFound("Resource not found")
	case errors.Is(err, store.ErrDuplicate):
		return apperr.Duplicate("Duplicate field value entered")
	}
	return fmt.Errorf("%s store: %w", s.name, err)
}

func prepare[T any, PT Entity[T]](doc *T) error {
	if d, ok := any(PT(doc)).(models.Defaulter); ok {
		d.ApplyDefaults()
	}
	return apperr.FromValidation(PT(doc).Validate())
}

func clone[T any, PT Entity[T]](d *T) (*T, error) {
	raw, err := bson.Marshal(d)
	if err != nil {
		return nil, err
	}
	var out T
	if err := bson.Unmarshal(raw, PT(&out)); err != nil {
		return nil, err
	}
	return &out, nil
}
