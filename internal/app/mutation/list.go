package mutation

import (
	"fmt"
	"slices"

	"github.com/jsamuelsen11/kanban-engine/internal/domain"
)

// Keyed is implemented by entities held in a List.
type Keyed interface {
	Key() string
}

type entry[T Keyed] struct {
	val     T
	version uint64
}

// tombstone keeps a removed entity, with its version, until the removal
// settles. token identifies the removal that created it.
type tombstone[T Keyed] struct {
	entry[T]
	token uint64
}

type listState[T Keyed] struct {
	entries []entry[T]
	removed map[string]tombstone[T]
	clock   uint64
}

func (s *listState[T]) tick() uint64 {
	s.clock++
	return s.clock
}

func (s *listState[T]) index(key string) int {
	return slices.IndexFunc(s.entries, func(e entry[T]) bool {
		return e.val.Key() == key
	})
}

// upsert replaces the entity with the same key in place, or inserts it at
// pos when absent.
func (s *listState[T]) upsert(item T, pos int) {
	e := entry[T]{val: item, version: s.tick()}
	if i := s.index(item.Key()); i >= 0 {
		s.entries[i] = e
		return
	}
	s.entries = slices.Insert(s.entries, pos, e)
}

// List is an ordered collection of entities keyed by ID. All operations are
// atomic with respect to each other.
//
// Every local change stamps the entity with a new version. Change and
// Removal tokens remember that version, so a late Restore or Reconcile
// applies only while the entity is still in the state its own mutation left
// it in, and never touches any other entity.
type List[T Keyed] struct {
	state *SafeRef[listState[T]]
}

// NewList creates a list holding items in the given order.
func NewList[T Keyed](items ...T) *List[T] {
	l := &List[T]{state: NewRef(listState[T]{})}
	l.Replace(items)
	return l
}

// Snapshot returns a copy of the entities in list order. The result is
// never nil.
func (l *List[T]) Snapshot() []T {
	var out []T
	l.state.View(func(s *listState[T]) {
		out = make([]T, len(s.entries))
		for i, e := range s.entries {
			out[i] = e.val
		}
	})
	return out
}

// Len returns the number of entities.
func (l *List[T]) Len() int {
	var n int
	l.state.View(func(s *listState[T]) { n = len(s.entries) })
	return n
}

// Get returns the entity with the given key.
func (l *List[T]) Get(key string) (T, bool) {
	var (
		val T
		ok  bool
	)
	l.state.View(func(s *listState[T]) {
		if i := s.index(key); i >= 0 {
			val, ok = s.entries[i].val, true
		}
	})
	return val, ok
}

// Replace discards the current contents and stores items in order.
func (l *List[T]) Replace(items []T) {
	l.state.Update(func(s *listState[T]) {
		s.entries = make([]entry[T], 0, len(items))
		for _, item := range items {
			s.entries = append(s.entries, entry[T]{val: item, version: s.tick()})
		}
	})
}

// Prepend inserts item at the front. An entity with the same key is
// replaced in place instead.
func (l *List[T]) Prepend(item T) {
	l.state.Update(func(s *listState[T]) { s.upsert(item, 0) })
}

// Append inserts item at the end. An entity with the same key is replaced
// in place instead.
func (l *List[T]) Append(item T) {
	l.state.Update(func(s *listState[T]) { s.upsert(item, len(s.entries)) })
}

// Drop removes the entity with the given key unconditionally and reports
// whether it was present.
func (l *List[T]) Drop(key string) bool {
	var dropped bool
	l.state.Update(func(s *listState[T]) {
		if i := s.index(key); i >= 0 {
			s.entries = slices.Delete(s.entries, i, i+1)
			dropped = true
		}
	})
	return dropped
}

// Change records a local mutation of one entity.
type Change[T Keyed] struct {
	Before  T
	After   T
	version uint64
}

// Mutate applies fn to the entity with the given key and returns a token
// for restoring it. A missing key wraps domain.ErrNotFound.
func (l *List[T]) Mutate(key string, fn func(*T)) (Change[T], error) {
	c, _, err := l.Edit(key, func(v *T) (bool, error) {
		fn(v)
		return true, nil
	})
	return c, err
}

// Edit runs fn on a copy of the entity under the list lock, so fn can
// derive the new value from the current one. If fn reports a change the
// copy replaces the entity and the returned token restores it. If fn
// declines or fails the entity is left as it was. A missing key wraps
// domain.ErrNotFound.
func (l *List[T]) Edit(key string, fn func(*T) (bool, error)) (Change[T], bool, error) {
	var (
		c       Change[T]
		found   bool
		changed bool
		err     error
	)
	l.state.Update(func(s *listState[T]) {
		i := s.index(key)
		if i < 0 {
			return
		}
		found = true
		val := s.entries[i].val
		if changed, err = fn(&val); err != nil || !changed {
			return
		}
		c.Before = s.entries[i].val
		c.After = val
		c.version = s.tick()
		s.entries[i] = entry[T]{val: val, version: c.version}
	})
	switch {
	case !found:
		return Change[T]{}, false, fmt.Errorf("%w: %s", domain.ErrNotFound, key)
	case err != nil:
		return Change[T]{}, false, err
	}
	return c, changed, nil
}

// Restore puts back c.Before if the entity still carries the version c
// produced and reports whether it did.
func (l *List[T]) Restore(c Change[T]) bool {
	return l.Reconcile(c, c.Before)
}

// Reconcile replaces the entity with val if it still carries the version c
// produced and reports whether it did. An entity whose removal is still
// pending is reconciled in its tombstone, so a failed removal puts back the
// reconciled value.
func (l *List[T]) Reconcile(c Change[T], val T) bool {
	var applied bool
	l.state.Update(func(s *listState[T]) {
		key := c.After.Key()
		if i := s.index(key); i >= 0 {
			if s.entries[i].version == c.version {
				s.entries[i] = entry[T]{val: val, version: s.tick()}
				applied = true
			}
			return
		}
		if t, ok := s.removed[key]; ok && t.version == c.version {
			t.entry = entry[T]{val: val, version: s.tick()}
			s.removed[key] = t
			applied = true
		}
	})
	return applied
}

// Removal records a local removal of one entity and where it stood.
type Removal[T Keyed] struct {
	Item  T
	Index int
	// Next is the key of the entity that followed Item, empty if Item was
	// last.
	Next  string
	token uint64
}

// Remove takes the entity with the given key out of the list. A missing
// key wraps domain.ErrNotFound.
func (l *List[T]) Remove(key string) (Removal[T], error) {
	var (
		r     Removal[T]
		found bool
	)
	l.state.Update(func(s *listState[T]) {
		i := s.index(key)
		if i < 0 {
			return
		}
		found = true
		r.Item = s.entries[i].val
		r.Index = i
		if i+1 < len(s.entries) {
			r.Next = s.entries[i+1].val.Key()
		}
		r.token = s.tick()
		if s.removed == nil {
			s.removed = make(map[string]tombstone[T])
		}
		s.removed[key] = tombstone[T]{entry: s.entries[i], token: r.token}
		s.entries = slices.Delete(s.entries, i, i+1)
	})
	if !found {
		return Removal[T]{}, fmt.Errorf("%w: %s", domain.ErrNotFound, key)
	}
	return r, nil
}

// Reinsert puts a removed entity back in front of the entity that used to
// follow it. If that entity is gone too, the original index is used,
// clamped to the current length. The value put back is the one held while
// the removal was pending, including any restore applied meanwhile, and it
// keeps its version so other in-flight changes can still restore it.
// Nothing happens if an entity with the same key has reappeared in the
// meantime. Reports whether it inserted.
func (l *List[T]) Reinsert(r Removal[T]) bool {
	var inserted bool
	l.state.Update(func(s *listState[T]) {
		key := r.Item.Key()
		e, pending := s.settle(key, r.token)
		if s.index(key) >= 0 {
			return
		}
		if !pending {
			e = entry[T]{val: r.Item, version: s.tick()}
		}
		pos := min(r.Index, len(s.entries))
		if r.Next != "" {
			if i := s.index(r.Next); i >= 0 {
				pos = i
			}
		}
		s.entries = slices.Insert(s.entries, pos, e)
		inserted = true
	})
	return inserted
}

// Forget settles a removal that succeeded remotely.
func (l *List[T]) Forget(r Removal[T]) {
	l.state.Update(func(s *listState[T]) {
		s.settle(r.Item.Key(), r.token)
	})
}

// settle drops the tombstone left by the removal with token and returns
// the entry it held.
func (s *listState[T]) settle(key string, token uint64) (entry[T], bool) {
	t, ok := s.removed[key]
	if !ok || t.token != token {
		return entry[T]{}, false
	}
	delete(s.removed, key)
	return t.entry, true
}
