package shared

import "context"

// KVStore is the passive byte sink the cart, wishlist and preferences are
// mirrored to. Get reports ok=false for an absent key.
type KVStore interface {
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// Namespaced prefixes every key of an underlying store.
type Namespaced struct {
	store  KVStore
	prefix string
}

// NewNamespaced returns a view of store whose keys are "<prefix>:<key>".
func NewNamespaced(store KVStore, prefix string) *Namespaced {
	return &Namespaced{store: store, prefix: prefix}
}

func (n *Namespaced) key(k string) string {
	if n.prefix == "" {
		return k
	}
	return n.prefix + ":" + k
}

func (n *Namespaced) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return n.store.Get(ctx, n.key(key))
}

func (n *Namespaced) Set(ctx context.Context, key string, value []byte) error {
	return n.store.Set(ctx, n.key(key), value)
}

func (n *Namespaced) Delete(ctx context.Context, key string) error {
	return n.store.Delete(ctx, n.key(key))
}

var _ KVStore = (*Namespaced)(nil)
