package treedex

import (
	"github.com/google/uuid"

	"github.com/mwantia/treedex/data"
)

// Remove unlinks the entry carrying id and every transitive descendant
// from all index layers. Reports whether anything was removed, so hosts
// can drop stale notifications without treating them as failures.
// Serialized against every other mutation.
func (x *Index) Remove(id uuid.UUID) (bool, error) {
	if err := x.ready(); err != nil {
		return false, err
	}

	x.mu.Lock()
	defer x.mu.Unlock()

	entry, ok := x.ids.Load(id)
	if !ok {
		RemoveCount.WithLabelValues("missing").Inc()
		return false, nil
	}

	// Snapshot the whole subtree before unlinking anything
	victims := append([]*data.Entry{entry}, x.descendantsUnsafe(id)...)
	for _, victim := range victims {
		x.removeUnsafe(victim)
	}

	x.dirty.Store(true)
	RemoveCount.WithLabelValues("removed").Inc()
	RemovedEntries.Add(float64(len(victims)))
	EntryCount.Set(float64(x.ids.Size()))
	x.log.Debug("removed %s cascading over %d entries", id, len(victims))

	return true, nil
}
