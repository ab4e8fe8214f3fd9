package store

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Mongo implements Collection on a MongoDB collection.
type Mongo[T any, PT Doc[T]] struct {
	col *mongo.Collection
}

func NewMongo[T any, PT Doc[T]](col *mongo.Collection) *Mongo[T, PT] {
	return &Mongo[T, PT]{col: col}
}

func filterOf(q Query) bson.M {
	f := bson.M{}
	for k, v := range q.Eq {
		f[k] = v
	}
	for k, vs := range q.In {
		f[k] = bson.M{"$in": vs}
	}
	return f
}

func sortOf(q Query) bson.D {
	d := bson.D{}
	for _, s := range q.Sort {
		dir := 1
		if s.Desc {
			dir = -1
		}
		d = append(d, bson.E{Key: s.Field, Value: dir})
	}
	return d
}

func (m *Mongo[T, PT]) Find(ctx context.Context, q Query) ([]*T, error) {
	opts := options.Find()
	if len(q.Sort) > 0 {
		opts.SetSort(sortOf(q))
	}
	if q.Limit > 0 {
		opts.SetLimit(q.Limit)
	}
	cur, err := m.col.Find(ctx, filterOf(q), opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	out := []*T{}
	for cur.Next(ctx) {
		var d T
		if err := cur.Decode(PT(&d)); err != nil {
			return nil, err
		}
		out = append(out, &d)
	}
	return out, cur.Err()
}

func (m *Mongo[T, PT]) FindOne(ctx context.Context, q Query) (*T, error) {
	opts := options.FindOne()
	if len(q.Sort) > 0 {
		opts.SetSort(sortOf(q))
	}
	var d T
	if err := m.col.FindOne(ctx, filterOf(q), opts).Decode(PT(&d)); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &d, nil
}

func (m *Mongo[T, PT]) Get(ctx context.Context, id string) (*T, error) {
	oid, err := ParseID(id)
	if err != nil {
		return nil, err
	}
	var d T
	if err := m.col.FindOne(ctx, bson.M{"_id": oid}).Decode(PT(&d)); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &d, nil
}

func (m *Mongo[T, PT]) Insert(ctx context.Context, doc *T) error {
	meta := PT(doc).Meta()
	now := stamp()
	if meta.ID.IsZero() {
		meta.ID = primitive.NewObjectID()
	}
	if meta.CreatedAt.IsZero() {
		meta.CreatedAt = now
	}
	meta.UpdatedAt = now
	if _, err := m.col.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

func (m *Mongo[T, PT]) Replace(ctx context.Context, doc *T) error {
	meta := PT(doc).Meta()
	meta.UpdatedAt = stamp()
	res, err := m.col.ReplaceOne(ctx, bson.M{"_id": meta.ID}, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicate
		}
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (m *Mongo[T, PT]) Delete(ctx context.Context, id string) (*T, error) {
	oid, err := ParseID(id)
	if err != nil {
		return nil, err
	}
	var d T
	if err := m.col.FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(PT(&d)); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &d, nil
}

func (m *Mongo[T, PT]) Count(ctx context.Context, q Query) (int64, error) {
	return m.col.CountDocuments(ctx, filterOf(q))
}

func (m *Mongo[T, PT]) DeleteAll(ctx context.Context) error {
	_, err := m.col.DeleteMany(ctx, bson.M{})
	return err
}

// stamp matches the millisecond precision BSON dates keep.
func stamp() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}
