package memory

import "sort"

// table holds one record type keyed by id. Stored values are private copies;
// callers only ever see clones.
type table[T any] struct {
	lastID uint
	rows   map[uint]T
	id     func(*T) *uint
	clone  func(T) T
}

func newTable[T any](id func(*T) *uint, clone func(T) T) *table[T] {
	return &table[T]{rows: make(map[uint]T), id: id, clone: clone}
}

// insert assigns the next id to v and stores a copy of it.
func (t *table[T]) insert(v *T) {
	t.lastID++
	*t.id(v) = t.lastID
	t.rows[t.lastID] = t.clone(*v)
}

func (t *table[T]) find(id uint) *T {
	v, ok := t.rows[id]
	if !ok {
		return nil
	}
	out := t.clone(v)
	return &out
}

// modify applies fn to a working copy and stores it only when fn succeeds.
func (t *table[T]) modify(id uint, fn func(*T) error) (*T, error) {
	v, ok := t.rows[id]
	if !ok {
		return nil, nil
	}
	work := t.clone(v)
	if err := fn(&work); err != nil {
		return nil, err
	}
	*t.id(&work) = id
	t.rows[id] = t.clone(work)
	return &work, nil
}

func (t *table[T]) remove(id uint) bool {
	if _, ok := t.rows[id]; !ok {
		return false
	}
	delete(t.rows, id)
	return true
}

// list returns clones of the rows accepted by keep, in id order.
func (t *table[T]) list(keep func(*T) bool) []T {
	ids := make([]uint, 0, len(t.rows))
	for id := range t.rows {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := make([]T, 0, len(ids))
	for _, id := range ids {
		v := t.rows[id]
		if keep != nil && !keep(&v) {
			continue
		}
		out = append(out, t.clone(v))
	}
	return out
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func matches(want *uint, got uint) bool {
	return want == nil || *want == got
}

func matchesPtr(want *uint, got *uint) bool {
	return want == nil || (got != nil && *want == *got)
}
