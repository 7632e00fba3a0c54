// Package kvstore is the portal's entity store: one logical table per
// entity kind, mirrored in memory and persisted whole through a flat
// key→bytes store on every mutation. Reads never touch storage.
package kvstore

import (
	"encoding/json"
	"sync"

	"github.com/pkg/errors"

	"github.com/trezcool/kitivo/core"
)

// Table is one entity table. Mutations are applied to a copy, persisted
// synchronously, then committed to the in-memory mirror, so callers never
// observe a partial write. Reads hand out deep copies: a record a caller
// mutates never shares backing arrays with the mirror, so a failed persist
// leaves the mirror exactly as it was.
type Table[T any] struct {
	mu     sync.RWMutex
	kv     core.KVStore
	key    string
	id     func(*T) *int
	recs   []T
	nextID int
}

// NewTable loads the table from storage. On an absent key or an unparsable
// value it seeds both the mirror and the stored value with `seed`. IDs are
// assigned from a counter resumed past the highest persisted ID.
func NewTable[T any](kv core.KVStore, key string, id func(*T) *int, seed []T) (*Table[T], error) {
	t := &Table[T]{kv: kv, key: key, id: id}

	data, err := kv.Load(key)
	switch {
	case errors.Is(err, core.ErrKeyNotFound):
		if err = t.reset(seed); err != nil {
			return nil, err
		}
	case err != nil:
		return nil, errors.Wrapf(err, "loading table %q", key)
	default:
		var recs []T
		if jerr := json.Unmarshal(data, &recs); jerr != nil {
			// corrupt table; fall back to the documented default
			if err = t.reset(seed); err != nil {
				return nil, err
			}
		} else {
			t.recs = recs
		}
	}

	t.nextID = t.maxID() + 1
	return t, nil
}

func (t *Table[T]) reset(seed []T) error {
	t.recs = append([]T(nil), seed...)
	data, err := json.Marshal(t.recs)
	if err != nil {
		return errors.Wrapf(err, "seeding table %q", t.key)
	}
	return errors.Wrapf(t.kv.Save(t.key, data), "seeding table %q", t.key)
}

// clone deep-copies a value through its JSON form, the same form the table
// persists. Records round-trip by construction; on the impossible marshal
// failure the value is returned as is.
func clone[T any](v T) T {
	data, err := json.Marshal(v)
	if err != nil {
		return v
	}
	var out T
	if err = json.Unmarshal(data, &out); err != nil {
		return v
	}
	return out
}

func (t *Table[T]) maxID() int {
	var max int
	for i := range t.recs {
		if id := *t.id(&t.recs[i]); id > max {
			max = id
		}
	}
	return max
}

// commit persists recs and, only on success, makes them the mirror.
func (t *Table[T]) commit(recs []T) error {
	data, err := json.Marshal(recs)
	if err != nil {
		return errors.Wrapf(err, "serializing table %q", t.key)
	}
	if err = t.kv.Save(t.key, data); err != nil {
		return errors.Wrapf(err, "persisting table %q", t.key)
	}
	t.recs = recs
	return nil
}

func (t *Table[T]) List() []T {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return clone(t.recs)
}

func (t *Table[T]) Get(id int) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	for i := range t.recs {
		if *t.id(&t.recs[i]) == id {
			return clone(t.recs[i]), true
		}
	}
	var zero T
	return zero, false
}

func (t *Table[T]) Find(pred func(T) bool) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	for _, rec := range t.recs {
		if pred(rec) {
			return clone(rec), true
		}
	}
	var zero T
	return zero, false
}

func (t *Table[T]) Filter(pred func(T) bool) []T {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]T, 0)
	for _, rec := range t.recs {
		if pred(rec) {
			out = append(out, clone(rec))
		}
	}
	return out
}

func (t *Table[T]) Insert(rec T) (T, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	*t.id(&rec) = t.nextID
	recs := append(append([]T(nil), t.recs...), clone(rec))
	if err := t.commit(recs); err != nil {
		var zero T
		return zero, err
	}
	t.nextID++
	return rec, nil
}

func (t *Table[T]) Replace(id int, rec T) (T, bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for i := range t.recs {
		if *t.id(&t.recs[i]) != id {
			continue
		}
		*t.id(&rec) = id
		recs := append([]T(nil), t.recs...)
		recs[i] = clone(rec)
		if err := t.commit(recs); err != nil {
			var zero T
			return zero, true, err
		}
		return rec, true, nil
	}
	var zero T
	return zero, false, nil
}

func (t *Table[T]) Remove(id int) (bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for i := range t.recs {
		if *t.id(&t.recs[i]) == id {
			recs := append([]T(nil), t.recs[:i]...)
			recs = append(recs, t.recs[i+1:]...)
			return true, t.commit(recs)
		}
	}
	return false, nil
}

// RemoveWhere deletes every matching record and reports how many went.
func (t *Table[T]) RemoveWhere(pred func(T) bool) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	recs := make([]T, 0, len(t.recs))
	for _, rec := range t.recs {
		if !pred(rec) {
			recs = append(recs, rec)
		}
	}
	removed := len(t.recs) - len(recs)
	if removed == 0 {
		return 0, nil
	}
	return removed, t.commit(recs)
}

// Reload re-reads the table from storage, strictly: a missing or corrupt
// value is an error here (used after a validated restore).
func (t *Table[T]) Reload() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	data, err := t.kv.Load(t.key)
	if errors.Is(err, core.ErrKeyNotFound) {
		return nil // table absent from the restored key-space; keep current
	}
	if err != nil {
		return errors.Wrapf(err, "reloading table %q", t.key)
	}
	var recs []T
	if err = json.Unmarshal(data, &recs); err != nil {
		return errors.Wrapf(err, "reloading table %q", t.key)
	}
	t.recs = recs
	t.nextID = t.maxID() + 1
	return nil
}

func (t *Table[T]) validate(data []byte) error {
	var recs []T
	return errors.Wrapf(json.Unmarshal(data, &recs), "table %q", t.key)
}

// Single is a one-record table (settings, catalog, roster, last route).
// Get returns a deep copy, so mutating it and failing to Put the result
// back leaves the stored value untouched.
type Single[T any] struct {
	mu  sync.RWMutex
	kv  core.KVStore
	key string
	val T
}

func NewSingle[T any](kv core.KVStore, key string, def T) (*Single[T], error) {
	s := &Single[T]{kv: kv, key: key}

	data, err := kv.Load(key)
	switch {
	case errors.Is(err, core.ErrKeyNotFound):
		if err = s.put(def); err != nil {
			return nil, err
		}
	case err != nil:
		return nil, errors.Wrapf(err, "loading %q", key)
	default:
		var val T
		if jerr := json.Unmarshal(data, &val); jerr != nil {
			if err = s.put(def); err != nil {
				return nil, err
			}
		} else {
			s.val = val
		}
	}
	return s, nil
}

func (s *Single[T]) Get() T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clone(s.val)
}

func (s *Single[T]) Put(val T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.put(val)
}

func (s *Single[T]) put(val T) error {
	data, err := json.Marshal(val)
	if err != nil {
		return errors.Wrapf(err, "serializing %q", s.key)
	}
	if err = s.kv.Save(s.key, data); err != nil {
		return errors.Wrapf(err, "persisting %q", s.key)
	}
	s.val = clone(val)
	return nil
}

func (s *Single[T]) Reload() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.kv.Load(s.key)
	if errors.Is(err, core.ErrKeyNotFound) {
		return nil
	}
	if err != nil {
		return errors.Wrapf(err, "reloading %q", s.key)
	}
	var val T
	if err = json.Unmarshal(data, &val); err != nil {
		return errors.Wrapf(err, "reloading %q", s.key)
	}
	s.val = val
	return nil
}

func (s *Single[T]) validate(data []byte) error {
	var val T
	return errors.Wrapf(json.Unmarshal(data, &val), "record %q", s.key)
}
