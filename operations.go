package treedex

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/mwantia/treedex/data"
)

// GetByID returns the entry carrying the given ID.
// Returns ErrNotFound if no such entry is indexed.
func (x *Index) GetByID(id uuid.UUID) (*data.Entry, error) {
	if err := x.ready(); err != nil {
		return nil, err
	}

	entry, ok := x.ids.Load(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	return entry, nil
}

// GetByPath returns every entry stored at the given path, compared
// case-insensitively. Conflicting siblings can share a path, so the
// result is a slice; an unknown path yields an empty one.
func (x *Index) GetByPath(path string) ([]*data.Entry, error) {
	if err := x.ready(); err != nil {
		return nil, err
	}

	return x.paths.get(path), nil
}

// GetByTemplate returns every entry built from the given template.
func (x *Index) GetByTemplate(templateID uuid.UUID) ([]*data.Entry, error) {
	if err := x.ready(); err != nil {
		return nil, err
	}

	bucket, _ := x.templates.Load(templateID)
	return slices.Clone(bucket), nil
}

// GetChildren returns the immediate children of the given entry.
// Passing uuid.Nil returns the tree roots.
func (x *Index) GetChildren(parentID uuid.UUID) ([]*data.Entry, error) {
	if err := x.ready(); err != nil {
		return nil, err
	}

	bucket, _ := x.children.Load(parentID)
	return slices.Clone(bucket), nil
}

// GetDescendants returns a lazy breadth-first walk over every entry
// below parentID. Nothing is collected up front; each step reads the
// children layer live, so a consumer that stops early pays only for
// what it walked, and entries yielded reflect the tree as it stood
// when they were visited.
func (x *Index) GetDescendants(parentID uuid.UUID) (iter.Seq[*data.Entry], error) {
	if err := x.ready(); err != nil {
		return nil, err
	}

	return func(yield func(*data.Entry) bool) {
		bucket, _ := x.children.Load(parentID)
		queue := slices.Clone(bucket)

		for len(queue) > 0 {
			entry := queue[0]
			queue = queue[1:]

			if !yield(entry) {
				return
			}

			if bucket, ok := x.children.Load(entry.ID); ok {
				queue = append(queue, bucket...)
			}
		}
	}, nil
}

// GetAll returns a flat snapshot of every indexed entry in unspecified
// order.
func (x *Index) GetAll() ([]*data.Entry, error) {
	if err := x.ready(); err != nil {
		return nil, err
	}

	entries := make([]*data.Entry, 0, x.ids.Size())
	x.ids.Range(func(_ uuid.UUID, entry *data.Entry) bool {
		entries = append(entries, entry)
		return true
	})

	return entries, nil
}

// GetSubtree returns every entry at or under the given path in
// ascending folded-path order. The path layer drives the scan, so the
// result follows the stored paths even where parent links disagree
// with them; GetDescendants is the link-driven counterpart.
func (x *Index) GetSubtree(path string) ([]*data.Entry, error) {
	if err := x.ready(); err != nil {
		return nil, err
	}

	prefix := strings.TrimSuffix(data.FoldPath(path), data.Separator)

	var entries []*data.Entry
	x.paths.ascend(prefix, func(key string, bucket []*data.Entry) bool {
		if !strings.HasPrefix(key, prefix) {
			return false // Past the subtree, stop scanning
		}

		// Skip lookalike siblings: "/root/ab" continues "/root/a" as
		// a string but not at a segment boundary
		if key != prefix && !strings.HasPrefix(key, prefix+data.Separator) {
			return true
		}

		entries = append(entries, bucket...)
		return true
	})

	return entries, nil
}

// Count returns the number of indexed entries.
func (x *Index) Count() (int, error) {
	if err := x.ready(); err != nil {
		return 0, err
	}

	return x.ids.Size(), nil
}
