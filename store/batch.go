package store

import (
	"github.com/iov-one/valset"
)

// EmptyKVStore holds nothing and ignores writes. It is the bottom layer of
// MemStore.
type EmptyKVStore struct{}

var _ valset.KVStore = EmptyKVStore{}

func (EmptyKVStore) Get(key []byte) ([]byte, error) { return nil, nil }
func (EmptyKVStore) Has(key []byte) (bool, error)   { return false, nil }
func (EmptyKVStore) Set(key, value []byte) error    { return nil }
func (EmptyKVStore) Delete(key []byte) error        { return nil }

// NewBatch returns a batch that writes nowhere.
func (e EmptyKVStore) NewBatch() valset.Batch {
	return NewNonAtomicBatch(e)
}

// op is a single pending write or removal.
type op struct {
	key    []byte
	value  []byte
	delete bool
}

// NonAtomicBatch queues writes and replays them in order on Write. A
// failing write leaves the earlier ones applied, so only use it in front
// of stores that are themselves discarded or versioned as a whole.
type NonAtomicBatch struct {
	out valset.SetDeleter
	ops []op
}

var _ valset.Batch = (*NonAtomicBatch)(nil)

// NewNonAtomicBatch returns an empty batch writing to out.
func NewNonAtomicBatch(out valset.SetDeleter) *NonAtomicBatch {
	return &NonAtomicBatch{out: out}
}

// Set queues a write.
func (b *NonAtomicBatch) Set(key, value []byte) error {
	b.ops = append(b.ops, op{key: key, value: value})
	return nil
}

// Delete queues a removal.
func (b *NonAtomicBatch) Delete(key []byte) error {
	b.ops = append(b.ops, op{key: key, delete: true})
	return nil
}

// Write replays the queue and empties it.
func (b *NonAtomicBatch) Write() error {
	ops := b.ops
	b.ops = nil
	for _, o := range ops {
		var err error
		if o.delete {
			err = b.out.Delete(o.key)
		} else {
			err = b.out.Set(o.key, o.value)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

type discarder interface {
	discard()
}

func (b *NonAtomicBatch) discard() {
	b.ops = nil
}
