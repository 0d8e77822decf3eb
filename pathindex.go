package treedex

import (
	"slices"
	"sync"

	"github.com/mwantia/treedex/data"
	"github.com/tidwall/btree"
)

// pathIndex is the ordered path layer of the store: a B-tree keyed by
// folded path, each node holding the bucket of entries sharing that
// path. Ordering is what makes subtree scans cheap; the RWMutex keeps
// readers concurrent while bucket mutation stays exclusive.
type pathIndex struct {
	mu    sync.RWMutex
	paths *btree.Map[string, []*data.Entry]
}

func newPathIndex() *pathIndex {
	return &pathIndex{
		paths: btree.NewMap[string, []*data.Entry](0), // degree 0 = auto-optimize
	}
}

// get returns a copy of the bucket stored under the folded path.
func (pi *pathIndex) get(path string) []*data.Entry {
	pi.mu.RLock()
	defer pi.mu.RUnlock()

	bucket, _ := pi.paths.Get(data.FoldPath(path))
	return slices.Clone(bucket)
}

// add appends the entry to the bucket under its folded path.
func (pi *pathIndex) add(e *data.Entry) {
	pi.mu.Lock()
	defer pi.mu.Unlock()

	key := data.FoldPath(e.Path)
	bucket, _ := pi.paths.Get(key)
	pi.paths.Set(key, append(bucket, e))
}

// remove unlinks the entry from the bucket under path, dropping the
// bucket entirely once it empties.
func (pi *pathIndex) remove(path string, e *data.Entry) {
	pi.mu.Lock()
	defer pi.mu.Unlock()

	key := data.FoldPath(path)
	bucket, ok := pi.paths.Get(key)
	if !ok {
		return
	}

	for i, cur := range bucket {
		if cur == e {
			// Remove by shifting the tail and truncating
			bucket = append(bucket[:i], bucket[i+1:]...)
			break
		}
	}

	if len(bucket) == 0 {
		pi.paths.Delete(key)
	} else {
		pi.paths.Set(key, bucket)
	}
}

// ascend walks buckets in ascending folded-path order starting at
// pivot until fn returns false.
func (pi *pathIndex) ascend(pivot string, fn func(path string, bucket []*data.Entry) bool) {
	pi.mu.RLock()
	defer pi.mu.RUnlock()

	pi.paths.Ascend(data.FoldPath(pivot), fn)
}

// clear drops every bucket.
func (pi *pathIndex) clear() {
	pi.mu.Lock()
	defer pi.mu.Unlock()

	pi.paths.Clear()
}
