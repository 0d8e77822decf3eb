package treedex

import (
	"fmt"

	"github.com/mwantia/treedex/data"
)

// Update folds one changed entry into the index: unknown IDs are
// inserted, known IDs arriving under the same path merge in place, and
// known IDs arriving under a new path move together with their whole
// subtree. Serialized against every other mutation.
func (x *Index) Update(entry *data.Entry) error {
	if err := x.ready(); err != nil {
		return err
	}

	if entry == nil {
		return data.ErrNilEntry
	}

	x.mu.Lock()
	defer x.mu.Unlock()

	existing, ok := x.ids.Load(entry.ID)
	if !ok {
		if err := x.addUnsafe(entry); err != nil {
			return err
		}

		x.dirty.Store(true)
		UpdateCount.WithLabelValues("insert").Inc()
		EntryCount.Set(float64(x.ids.Size()))

		return nil
	}

	if data.EqualPath(existing.Path, entry.Path) {
		return x.mergeUnsafe(existing, entry)
	}

	return x.moveUnsafe(existing, entry)
}

// mergeUnsafe applies an in-place update to an entry whose path did not
// change. Template and parent buckets migrate when those fields moved;
// a case-only path rename keeps its folded key, so the path layer never
// needs touching here. Only a reported change marks the store dirty.
// MUST be called while holding the mutation lock.
func (x *Index) mergeUnsafe(existing, incoming *data.Entry) error {
	oldTemplate := existing.TemplateID
	oldParent := existing.ParentID

	modified, err := existing.Merge(incoming)
	if err != nil {
		return err
	}

	if !modified {
		UpdateCount.WithLabelValues("noop").Inc()
		return nil
	}

	if existing.TemplateID != oldTemplate {
		removeBucket(x.templates, oldTemplate, existing)
		appendBucket(x.templates, existing.TemplateID, existing)
	}

	if existing.ParentID != oldParent {
		removeBucket(x.children, oldParent, existing)
		appendBucket(x.children, existing.ParentID, existing)
	}

	x.dirty.Store(true)
	UpdateCount.WithLabelValues("merge").Inc()

	return nil
}

// moveUnsafe relocates an entry and rewrites the paths of its whole
// subtree. The parent path assert runs before anything mutates, so a
// snapshot that disagrees with the indexed tree is rejected whole.
// MUST be called while holding the mutation lock.
func (x *Index) moveUnsafe(existing, incoming *data.Entry) error {
	// An unchanged parent must present an unchanged parent path;
	// anything else means the caller's tree and ours already disagree
	if existing.ParentID == incoming.ParentID && !data.EqualPath(existing.ParentPath, incoming.ParentPath) {
		err := fmt.Errorf("%w: %q != %q", ErrParentPathMismatch, existing.ParentPath, incoming.ParentPath)
		x.log.Error("move rejected for %s: %v", existing.ID, err)
		return err
	}

	oldPath := existing.Path
	oldTemplate := existing.TemplateID
	oldParent := existing.ParentID

	if _, err := existing.Merge(incoming); err != nil {
		return err
	}

	if existing.TemplateID != oldTemplate {
		removeBucket(x.templates, oldTemplate, existing)
		appendBucket(x.templates, existing.TemplateID, existing)
	}

	if existing.ParentID != oldParent {
		removeBucket(x.children, oldParent, existing)
		appendBucket(x.children, existing.ParentID, existing)
	}

	x.paths.remove(oldPath, existing)
	x.paths.add(existing)

	// Descendants keep their position below the moved entry; only the
	// leading prefix of their paths changes
	descendants := x.descendantsUnsafe(existing.ID)
	for _, d := range descendants {
		dOld := d.Path
		d.Path = data.ReplacePathPrefix(d.Path, oldPath, existing.Path)
		d.ParentPath = data.ReplacePathPrefix(d.ParentPath, oldPath, existing.Path)

		if data.FoldPath(dOld) != data.FoldPath(d.Path) {
			x.paths.remove(dOld, d)
			x.paths.add(d)
		}
	}

	x.dirty.Store(true)
	UpdateCount.WithLabelValues("move").Inc()
	x.log.Debug("moved %s from %q to %q with %d descendants", existing.ID, oldPath, existing.Path, len(descendants))

	return nil
}
