package treedex

import (
	"fmt"
	"slices"

	"github.com/google/uuid"
	"github.com/puzpuzpuz/xsync/v3"

	"github.com/mwantia/treedex/data"
)

// This file contains internal "unsafe" methods that mutate the indexes without
// acquiring locks. These methods MUST only be called while holding the mutation
// lock. They are shared by Initialize, Update and Remove so every path through
// the store links and unlinks entries the exact same way.

// addUnsafe links a new entry into all four index layers.
// MUST be called while holding the mutation lock.
func (x *Index) addUnsafe(e *data.Entry) error {
	if e == nil {
		return data.ErrNilEntry
	}

	if _, exists := x.ids.Load(e.ID); exists {
		return fmt.Errorf("%w: %s", ErrDuplicateID, e.ID)
	}

	x.ids.Store(e.ID, e)
	appendBucket(x.templates, e.TemplateID, e)
	appendBucket(x.children, e.ParentID, e)
	x.paths.add(e)

	return nil
}

// removeUnsafe unlinks the entry from all four index layers, including
// its slot in the parent's children bucket.
// MUST be called while holding the mutation lock.
func (x *Index) removeUnsafe(e *data.Entry) {
	x.ids.Delete(e.ID)
	removeBucket(x.templates, e.TemplateID, e)
	removeBucket(x.children, e.ParentID, e)
	x.paths.remove(e.Path, e)
}

// descendantsUnsafe collects the transitive descendants of id in
// breadth-first order. The worklist is a snapshot taken before any
// mutation, so callers may unlink or rewrite entries while walking it.
// MUST be called while holding the mutation lock.
func (x *Index) descendantsUnsafe(id uuid.UUID) []*data.Entry {
	var result []*data.Entry

	bucket, _ := x.children.Load(id)
	queue := slices.Clone(bucket)

	for len(queue) > 0 {
		entry := queue[0]
		queue = queue[1:]
		result = append(result, entry)

		if bucket, ok := x.children.Load(entry.ID); ok {
			queue = append(queue, bucket...)
		}
	}

	return result
}

// resetUnsafe drops every entry from all four index layers.
// MUST be called while holding the mutation lock.
func (x *Index) resetUnsafe() {
	x.ids.Clear()
	x.templates.Clear()
	x.children.Clear()
	x.paths.clear()
}

// appendBucket adds e to the bucket under key. The new header is only
// published through Store, and appends never write below the length of
// a published header, so lock-free readers always observe a fully
// written prefix.
func appendBucket(m *xsync.MapOf[uuid.UUID, []*data.Entry], key uuid.UUID, e *data.Entry) {
	bucket, _ := m.Load(key)
	m.Store(key, append(bucket, e))
}

// removeBucket drops e from the bucket under key, building a fresh
// slice so the published one never mutates under a reader, and deletes
// the key once the bucket empties.
func removeBucket(m *xsync.MapOf[uuid.UUID, []*data.Entry], key uuid.UUID, e *data.Entry) {
	bucket, ok := m.Load(key)
	if !ok {
		return
	}

	next := make([]*data.Entry, 0, len(bucket))
	for _, cur := range bucket {
		if cur != e {
			next = append(next, cur)
		}
	}

	if len(next) == 0 {
		m.Delete(key)
		return
	}

	m.Store(key, next)
}
