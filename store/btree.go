package store

import (
	"bytes"

	"github.com/google/btree"
	"github.com/iov-one/valset"
)

// btreeDegree is small as cache wraps hold a handful of writes per
// transaction.
const btreeDegree = 2

// MemStore returns an in-memory store without persistence, for tests and
// the check state of fresh applications.
func MemStore() valset.CacheableKVStore {
	var empty EmptyKVStore
	return NewBTreeCacheWrap(empty, empty.NewBatch(), nil)
}

// BTreeCacheWrap keeps pending writes in a btree on top of a read only
// parent. Reads see the pending writes first. Write flushes them through
// the batch.
type BTreeCacheWrap struct {
	pending *btree.BTree
	free    *btree.FreeList
	parent  valset.ReadOnlyKVStore
	batch   valset.Batch
}

var _ valset.KVCacheWrap = BTreeCacheWrap{}

// NewBTreeCacheWrap wraps parent. All writes are recorded in batch, which
// must eventually target the store parent reads from. A nil free list
// allocates a new one; sharing it between nested wraps saves allocations.
func NewBTreeCacheWrap(parent valset.ReadOnlyKVStore, batch valset.Batch, free *btree.FreeList) BTreeCacheWrap {
	if free == nil {
		free = btree.NewFreeList(btree.DefaultFreeListSize)
	}
	return BTreeCacheWrap{
		pending: btree.NewWithFreeList(btreeDegree, free),
		free:    free,
		parent:  parent,
		batch:   batch,
	}
}

// CacheWrap stacks another cache on top of this one.
func (c BTreeCacheWrap) CacheWrap() valset.KVCacheWrap {
	return NewBTreeCacheWrap(c, c.NewBatch(), c.free)
}

// NewBatch returns a batch writing into this cache.
func (c BTreeCacheWrap) NewBatch() valset.Batch {
	return NewNonAtomicBatch(c)
}

// Write flushes pending writes to the parent and empties the cache.
func (c BTreeCacheWrap) Write() error {
	err := c.batch.Write()
	c.Discard()
	return err
}

// Discard drops all pending writes.
func (c BTreeCacheWrap) Discard() {
	// DeleteMin hands the nodes back to the shared free list.
	for c.pending.DeleteMin() != nil {
	}
	if d, ok := c.batch.(discarder); ok {
		d.discard()
	}
}

// Set records a write.
func (c BTreeCacheWrap) Set(key, value []byte) error {
	c.pending.ReplaceOrInsert(entry{key: key, value: value})
	return c.batch.Set(key, value)
}

// Delete records a removal. It hides the parent value until written.
func (c BTreeCacheWrap) Delete(key []byte) error {
	c.pending.ReplaceOrInsert(entry{key: key, deleted: true})
	return c.batch.Delete(key)
}

// Get returns the pending value if any, else the parent one.
func (c BTreeCacheWrap) Get(key []byte) ([]byte, error) {
	if e, ok := c.lookup(key); ok {
		if e.deleted {
			return nil, nil
		}
		return e.value, nil
	}
	return c.parent.Get(key)
}

// Has is Get without copying the value out.
func (c BTreeCacheWrap) Has(key []byte) (bool, error) {
	if e, ok := c.lookup(key); ok {
		return !e.deleted, nil
	}
	return c.parent.Has(key)
}

func (c BTreeCacheWrap) lookup(key []byte) (entry, bool) {
	item := c.pending.Get(entry{key: key})
	if item == nil {
		return entry{}, false
	}
	return item.(entry), true
}

// entry is a pending write. Deleted entries shadow the parent.
type entry struct {
	key     []byte
	value   []byte
	deleted bool
}

var _ btree.Item = entry{}

func (e entry) Less(than btree.Item) bool {
	return bytes.Compare(e.key, than.(entry).key) < 0
}
