package cart

import (
	"context"
	"errors"
	"sync"

	"storefront/domain/shared"
	"storefront/pkg/logger"

	"github.com/golang/groupcache/lru"
	"go.uber.org/zap"
)

// Registry hands out one Store per owner. An owner is an authenticated user
// id or a guest cart id; its keys are namespaced by owner in the shared KV
// store so owners never see each other's aggregates.
//
// A bounded registry keeps at most capacity stores loaded. The least recently
// used store is dropped to make room, after flushing any state its write
// through missed. The next For reloads it from the KV store.
type Registry struct {
	mu     sync.Mutex
	kv     shared.KVStore
	opts   []Option
	log    *zap.Logger
	order  *lru.Cache
	stores map[string]*Store
	// dropped collects stores removed from order until they are released
	dropped []*Store
}

// NewRegistry returns an unbounded registry whose stores are built with opts.
func NewRegistry(kv shared.KVStore, opts ...Option) *Registry {
	return NewBoundedRegistry(kv, 0, opts...)
}

// NewBoundedRegistry returns a registry holding at most capacity loaded
// stores. A capacity of zero or less means no limit.
func NewBoundedRegistry(kv shared.KVStore, capacity int, opts ...Option) *Registry {
	if capacity < 0 {
		capacity = 0
	}
	r := &Registry{
		kv:     kv,
		opts:   opts,
		log:    logger.With(zap.String("component", "cart_registry")),
		order:  lru.New(capacity),
		stores: make(map[string]*Store),
	}
	r.order.OnEvicted = func(key lru.Key, value interface{}) {
		delete(r.stores, key.(string))
		r.dropped = append(r.dropped, value.(*Store))
	}
	return r
}

// For returns the owner's store, loading it on first access.
func (r *Registry) For(ctx context.Context, owner string) *Store {
	r.mu.Lock()
	defer r.mu.Unlock()

	if v, ok := r.order.Get(owner); ok {
		return v.(*Store)
	}
	s := NewStore(ctx, shared.NewNamespaced(r.kv, owner), r.opts...)
	r.stores[owner] = s
	r.order.Add(owner, s)
	r.release(ctx)
	return s
}

// Forget drops the owner's store from memory after flushing anything its
// write through missed. The persisted state is reloaded by the next For.
func (r *Registry) Forget(ctx context.Context, owner string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.order.Remove(owner)
	return r.release(ctx)
}

// release flushes the stores dropped since the last call. It runs with mu
// held so a reload of the same owner cannot read state older than the flush.
func (r *Registry) release(ctx context.Context) error {
	dropped := r.dropped
	r.dropped = nil

	var errs []error
	for _, s := range dropped {
		if err := s.flushPending(ctx); err != nil {
			r.log.Warn("flush of unloaded store failed", zap.Error(err))
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Len is the number of loaded stores.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.stores)
}

// Flush persists every loaded store.
func (r *Registry) Flush(ctx context.Context) error {
	r.mu.Lock()
	stores := make([]*Store, 0, len(r.stores))
	for _, s := range r.stores {
		stores = append(stores, s)
	}
	r.mu.Unlock()

	var errs []error
	for _, s := range stores {
		if err := s.Flush(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
