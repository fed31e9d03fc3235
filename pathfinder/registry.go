package pathfinder

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/golang/groupcache/lru"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/katalvlaran/meshpath/mesh"
)

// ErrNilLoader is returned by NewRegistry without a Loader.
var ErrNilLoader = errors.New("pathfinder: registry loader is nil")

// Loader produces the mesh registered under name.
type Loader func(ctx context.Context, name string) (*mesh.Mesh, error)

// Registry caches Finders by name. At most capacity Finders are kept; the
// least recently used is evicted first. Concurrent requests for a name that
// is not cached share a single load and graph build.
type Registry struct {
	mu    sync.Mutex
	cache *lru.Cache
	group singleflight.Group
	load  Loader
	opts  []Option
	log   *zap.Logger
}

// NewRegistry returns a Registry holding up to capacity Finders
// (capacity ≤ 0 means unbounded). opts are applied to every Finder it builds.
func NewRegistry(capacity int, load Loader, opts ...Option) (*Registry, error) {
	if load == nil {
		return nil, ErrNilLoader
	}
	probe := &Finder{log: zap.NewNop()}
	for _, opt := range opts {
		opt(probe)
	}
	r := &Registry{
		cache: lru.New(capacity),
		load:  load,
		opts:  opts,
		log:   probe.log,
	}
	r.cache.OnEvicted = func(key lru.Key, _ interface{}) {
		r.log.Debug("finder evicted", zap.Any("mesh", key))
	}

	return r, nil
}

// Get returns the Finder registered under name, loading and building it on first use.
func (r *Registry) Get(ctx context.Context, name string) (*Finder, error) {
	if f, ok := r.cached(name); ok {
		return f, nil
	}

	v, err, shared := r.group.Do(name, func() (interface{}, error) {
		if f, ok := r.cached(name); ok {
			return f, nil
		}
		m, err := r.load(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("pathfinder: load mesh %q: %w", name, err)
		}
		f, err := New(m, r.opts...)
		if err != nil {
			return nil, fmt.Errorf("pathfinder: mesh %q: %w", name, err)
		}
		r.mu.Lock()
		r.cache.Add(name, f)
		r.mu.Unlock()

		return f, nil
	})
	if err != nil {
		return nil, err
	}
	if shared {
		r.log.Debug("finder build shared", zap.String("mesh", name))
	}

	return v.(*Finder), nil
}

func (r *Registry) cached(name string) (*Finder, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.cache.Get(name)
	if !ok {
		return nil, false
	}

	return v.(*Finder), true
}

// Remove drops name from the cache.
func (r *Registry) Remove(name string) {
	r.mu.Lock()
	r.cache.Remove(name)
	r.mu.Unlock()
}

// Len returns the number of cached Finders.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.cache.Len()
}
