package store

import (
	"bytes"
	"context"
	"sort"
	"strings"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Memory is an in-process Collection. Documents are kept BSON-encoded so that
// queries see the same field names and value types MongoDB would.
type Memory[T any, PT Doc[T]] struct {
	mu     sync.RWMutex
	docs   map[primitive.ObjectID]bson.Raw
	order  []primitive.ObjectID
	unique []string
}

// NewMemory returns an empty collection enforcing uniqueness on the given fields.
func NewMemory[T any, PT Doc[T]](unique ...string) *Memory[T, PT] {
	return &Memory[T, PT]{docs: map[primitive.ObjectID]bson.Raw{}, unique: unique}
}

func (m *Memory[T, PT]) Find(ctx context.Context, q Query) ([]*T, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	raws, err := m.match(q)
	if err != nil {
		return nil, err
	}
	out := make([]*T, 0, len(raws))
	for _, r := range raws {
		d, err := decode[T, PT](r)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

func (m *Memory[T, PT]) FindOne(ctx context.Context, q Query) (*T, error) {
	q.Limit = 1
	list, err := m.Find(ctx, q)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, ErrNotFound
	}
	return list[0], nil
}

func (m *Memory[T, PT]) Get(ctx context.Context, id string) (*T, error) {
	oid, err := ParseID(id)
	if err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	r, ok := m.docs[oid]
	if !ok {
		return nil, ErrNotFound
	}
	return decode[T, PT](r)
}

func (m *Memory[T, PT]) Insert(ctx context.Context, doc *T) error {
	meta := PT(doc).Meta()
	m.mu.Lock()
	defer m.mu.Unlock()
	if meta.ID.IsZero() {
		meta.ID = primitive.NewObjectID()
	}
	if _, exists := m.docs[meta.ID]; exists {
		return ErrDuplicate
	}
	now := stamp()
	if meta.CreatedAt.IsZero() {
		meta.CreatedAt = now
	}
	meta.UpdatedAt = now
	raw, err := bson.Marshal(doc)
	if err != nil {
		return err
	}
	if m.conflicts(meta.ID, raw) {
		return ErrDuplicate
	}
	m.docs[meta.ID] = raw
	m.order = append(m.order, meta.ID)
	return nil
}

func (m *Memory[T, PT]) Replace(ctx context.Context, doc *T) error {
	meta := PT(doc).Meta()
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.docs[meta.ID]; !ok {
		return ErrNotFound
	}
	meta.UpdatedAt = stamp()
	raw, err := bson.Marshal(doc)
	if err != nil {
		return err
	}
	if m.conflicts(meta.ID, raw) {
		return ErrDuplicate
	}
	m.docs[meta.ID] = raw
	return nil
}

func (m *Memory[T, PT]) Delete(ctx context.Context, id string) (*T, error) {
	oid, err := ParseID(id)
	if err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.docs[oid]
	if !ok {
		return nil, ErrNotFound
	}
	delete(m.docs, oid)
	for i, o := range m.order {
		if o == oid {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return decode[T, PT](r)
}

func (m *Memory[T, PT]) Count(ctx context.Context, q Query) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	q.Limit = 0
	raws, err := m.match(q)
	return int64(len(raws)), err
}

func (m *Memory[T, PT]) DeleteAll(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.docs = map[primitive.ObjectID]bson.Raw{}
	m.order = nil
	return nil
}

// match returns raw documents satisfying q, sorted and limited. Caller holds the lock.
func (m *Memory[T, PT]) match(q Query) ([]bson.Raw, error) {
	eq := map[string]bson.RawValue{}
	for k, v := range q.Eq {
		rv, err := rawValue(v)
		if err != nil {
			return nil, err
		}
		eq[k] = rv
	}
	in := map[string][]bson.RawValue{}
	for k, vs := range q.In {
		for _, v := range vs {
			rv, err := rawValue(v)
			if err != nil {
				return nil, err
			}
			in[k] = append(in[k], rv)
		}
	}

	out := []bson.Raw{}
	for _, id := range m.order {
		r := m.docs[id]
		if matches(r, eq, in) {
			out = append(out, r)
		}
	}

	if len(q.Sort) > 0 {
		sort.SliceStable(out, func(i, j int) bool {
			for _, s := range q.Sort {
				c := compareValues(lookup(out[i], s.Field), lookup(out[j], s.Field))
				if c == 0 {
					continue
				}
				if s.Desc {
					return c > 0
				}
				return c < 0
			}
			return false
		})
	}
	if q.Limit > 0 && int64(len(out)) > q.Limit {
		out = out[:q.Limit]
	}
	return out, nil
}

func (m *Memory[T, PT]) conflicts(id primitive.ObjectID, raw bson.Raw) bool {
	for _, field := range m.unique {
		v := lookup(raw, field)
		if v.Type == 0 {
			continue
		}
		for oid, other := range m.docs {
			if oid == id {
				continue
			}
			if equalValues(lookup(other, field), v) {
				return true
			}
		}
	}
	return false
}

func matches(r bson.Raw, eq map[string]bson.RawValue, in map[string][]bson.RawValue) bool {
	for field, want := range eq {
		if !fieldHas(lookup(r, field), want) {
			return false
		}
	}
	for field, wants := range in {
		got := lookup(r, field)
		ok := false
		for _, w := range wants {
			if fieldHas(got, w) {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}
	return true
}

// fieldHas applies MongoDB equality: arrays match when any element is equal.
func fieldHas(got, want bson.RawValue) bool {
	if got.Type == bsontype.Array && want.Type != bsontype.Array {
		vals, err := got.Array().Values()
		if err != nil {
			return false
		}
		for _, v := range vals {
			if equalValues(v, want) {
				return true
			}
		}
		return false
	}
	return equalValues(got, want)
}

func lookup(r bson.Raw, field string) bson.RawValue {
	v, err := r.LookupErr(strings.Split(field, ".")...)
	if err != nil {
		return bson.RawValue{}
	}
	return v
}

func rawValue(v any) (bson.RawValue, error) {
	t, data, err := bson.MarshalValue(v)
	if err != nil {
		return bson.RawValue{}, err
	}
	return bson.RawValue{Type: t, Value: data}, nil
}

func numeric(v bson.RawValue) (float64, bool) {
	switch v.Type {
	case bsontype.Int32:
		return float64(v.Int32()), true
	case bsontype.Int64:
		return float64(v.Int64()), true
	case bsontype.Double:
		return v.Double(), true
	}
	return 0, false
}

func equalValues(a, b bson.RawValue) bool {
	if af, ok := numeric(a); ok {
		bf, ok := numeric(b)
		return ok && af == bf
	}
	return a.Type == b.Type && bytes.Equal(a.Value, b.Value)
}

// typeRank follows the MongoDB cross-type sort order for the types we store.
func typeRank(v bson.RawValue) int {
	switch v.Type {
	case 0, bsontype.Null:
		return 0
	case bsontype.Int32, bsontype.Int64, bsontype.Double:
		return 1
	case bsontype.String:
		return 2
	case bsontype.EmbeddedDocument:
		return 3
	case bsontype.Array:
		return 4
	case bsontype.ObjectID:
		return 6
	case bsontype.Boolean:
		return 7
	case bsontype.DateTime:
		return 8
	}
	return 9
}

func compareValues(a, b bson.RawValue) int {
	ra, rb := typeRank(a), typeRank(b)
	if ra != rb {
		if ra < rb {
			return -1
		}
		return 1
	}
	switch ra {
	case 1:
		af, _ := numeric(a)
		bf, _ := numeric(b)
		switch {
		case af < bf:
			return -1
		case af > bf:
			return 1
		}
		return 0
	case 2:
		return strings.Compare(a.StringValue(), b.StringValue())
	case 6:
		ao, bo := a.ObjectID(), b.ObjectID()
		return bytes.Compare(ao[:], bo[:])
	case 7:
		ab, bb := a.Boolean(), b.Boolean()
		switch {
		case ab == bb:
			return 0
		case !ab:
			return -1
		}
		return 1
	case 8:
		at, bt := a.DateTime(), b.DateTime()
		switch {
		case at < bt:
			return -1
		case at > bt:
			return 1
		}
		return 0
	}
	return bytes.Compare(a.Value, b.Value)
}

func decode[T any, PT Doc[T]](r bson.Raw) (*T, error) {
	var d T
	if err := bson.Unmarshal(r, PT(&d)); err != nil {
		return nil, err
	}
	return &d, nil
}
