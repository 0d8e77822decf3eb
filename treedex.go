package treedex

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/puzpuzpuz/xsync/v3"

	"github.com/mwantia/treedex/data"
	"github.com/mwantia/treedex/log"
)

// Index is a thread-safe in-memory store for content-tree entries with a four-layer lookup:
//
// Layer 1 (ids):       concurrent map of entry ID → entry, strictly one-to-one
// Layer 2 (templates): concurrent map of template ID → entries sharing that template
// Layer 3 (children):  concurrent map of parent ID → immediate children
// Layer 4 (paths):     B-tree of folded path → entries at that path, ordered for subtree scans
//
// All four layers describe the same entry set and only ever change
// together under a single mutation lock. Readers never take that lock:
// the concurrent maps are lock-free and the path layer briefly holds a
// read lock, so lookups stay flat no matter how busy the writers are.
//
// Entries are shared pointers, never copies (see data.Entry). The
// slices handed out by queries are fresh allocations the caller owns.
type Index struct {
	mu sync.Mutex

	ids       *xsync.MapOf[uuid.UUID, *data.Entry]
	templates *xsync.MapOf[uuid.UUID, []*data.Entry]
	children  *xsync.MapOf[uuid.UUID, []*data.Entry]
	paths     *pathIndex

	initialized atomic.Bool
	dirty       atomic.Bool

	log *log.Logger
}

func New(opts ...IndexOption) (*Index, error) {
	options := newDefaultIndexOptions()
	for _, opt := range opts {
		if err := opt(options); err != nil {
			return nil, err
		}
	}

	var presize []func(*xsync.MapConfig)
	if options.Capacity > 0 {
		presize = append(presize, xsync.WithPresize(options.Capacity))
	}

	return &Index{
		ids:       xsync.NewMapOf[uuid.UUID, *data.Entry](presize...),
		templates: xsync.NewMapOf[uuid.UUID, []*data.Entry](presize...),
		children:  xsync.NewMapOf[uuid.UUID, []*data.Entry](presize...),
		paths:     newPathIndex(),

		log: log.New("treedex", log.Config{
			Level:      options.LogLevel,
			File:       options.LogFile,
			NoTerminal: options.NoTerminalLog,
		}),
	}, nil
}

// Initialize populates the index from the host's entry snapshot. The
// first successful call wins; every later call, and every concurrent
// call that loses the race, returns nil without touching anything.
// A consistency fault in the snapshot leaves the index uninitialized
// with no partial state reachable, so the host can retry with a
// corrected snapshot.
func (x *Index) Initialize(entries []*data.Entry) error {
	if x.initialized.Load() {
		return nil
	}

	x.mu.Lock()
	defer x.mu.Unlock()

	// Re-check under the lock; another caller may have
	// won the race while we waited
	if x.initialized.Load() {
		return nil
	}

	start := time.Now()
	x.resetUnsafe()

	for _, entry := range entries {
		if err := x.addUnsafe(entry); err != nil {
			x.log.Error("initialization aborted: %v", err)
			return err
		}
	}

	x.initialized.Store(true)
	EntryCount.Set(float64(x.ids.Size()))
	x.log.Info("initialized with %d entries in %s", x.ids.Size(), time.Since(start))

	return nil
}

// ready checks the initialization gate shared by every operation.
func (x *Index) ready() error {
	if !x.initialized.Load() {
		return ErrNotInitialized
	}

	return nil
}

// IsDirty reports whether the indexed tree changed since the host last
// cleared the flag.
func (x *Index) IsDirty() bool {
	return x.dirty.Load()
}

// SetDirty overrides the dirty flag. Hosts clear it after flushing the
// tree; the flag itself works before initialization.
func (x *Index) SetDirty(dirty bool) {
	x.dirty.Store(dirty)
}
