package services

import (
	"sync"
	"time"

	"github.com/RohitMacherla3/Viveo/models"
)

const (
	undoCapacity = 10
	undoTTL      = 5 * time.Minute
)

type deletedEntry struct {
	entry     models.FoodEntry
	deletedAt time.Time
}

// UndoBuffer is a bounded LIFO stack of recently deleted entries.
// Entries expire after five minutes; expiry is enforced lazily on every
// push and pop, so no background timer is needed. One buffer per
// session, single writer — the buffer itself does no locking.
type UndoBuffer struct {
	items []deletedEntry
	now   func() time.Time
}

func NewUndoBuffer() *UndoBuffer {
	return &UndoBuffer{now: time.Now}
}

// Push records a just-deleted entry, evicting the oldest beyond
// capacity and anything past its TTL.
func (b *UndoBuffer) Push(entry models.FoodEntry) {
	b.purge()
	b.items = append([]deletedEntry{{entry: entry, deletedAt: b.now()}}, b.items...)
	if len(b.items) > undoCapacity {
		b.items = b.items[:undoCapacity]
	}
}

// Pop removes and returns the most recently deleted entry, or
// ErrEmptyBuffer when nothing restorable is left.
func (b *UndoBuffer) Pop() (models.FoodEntry, error) {
	b.purge()
	if len(b.items) == 0 {
		return models.FoodEntry{}, ErrEmptyBuffer
	}
	top := b.items[0]
	b.items = b.items[1:]
	return top.entry, nil
}

func (b *UndoBuffer) Len() int {
	b.purge()
	return len(b.items)
}

func (b *UndoBuffer) purge() {
	cutoff := b.now().Add(-undoTTL)
	kept := b.items[:0]
	for _, it := range b.items {
		if it.deletedAt.After(cutoff) {
			kept = append(kept, it)
		}
	}
	b.items = kept
}

// UndoRegistry hands out one UndoBuffer per user session. The lock only
// guards buffer lookup/creation; each buffer is still owned by a single
// session.
type UndoRegistry struct {
	mu      sync.Mutex
	buffers map[uint]*UndoBuffer
}

func NewUndoRegistry() *UndoRegistry {
	return &UndoRegistry{buffers: make(map[uint]*UndoBuffer)}
}

func (r *UndoRegistry) For(userID uint) *UndoBuffer {
	r.mu.Lock()
	defer r.mu.Unlock()
	b := r.buffers[userID]
	if b == nil {
		b = NewUndoBuffer()
		r.buffers[userID] = b
	}
	return b
}

// Drop discards a user's buffer, e.g. on logout.
func (r *UndoRegistry) Drop(userID uint) {
	r.mu.Lock()
	delete(r.buffers, userID)
	r.mu.Unlock()
}
