package schedule

import (
	"context"
	"sync"
	"time"
)

// Registry keeps the mounted schedule views of the shell, one per resource.
type Registry struct {
	finder   ResourceFinder
	client   LogClient
	loader   *Loader
	imageURL func(imageID int64) string
	now      func() time.Time

	mu    sync.Mutex
	views map[int64]*View
}

func NewRegistry(finder ResourceFinder, client LogClient, officialUserID int64, imageURL func(int64) string, now func() time.Time) *Registry {
	if now == nil {
		now = time.Now
	}
	return &Registry{
		finder:   finder,
		client:   client,
		loader:   NewLoader(client, officialUserID),
		imageURL: imageURL,
		now:      now,
		views:    map[int64]*View{},
	}
}

// Mount returns the view of a resource, creating and loading it on first use.
func (r *Registry) Mount(ctx context.Context, resourceID int64) (*View, error) {
	if v, err := r.Get(resourceID); err == nil {
		return v, nil
	}

	res, err := r.finder.FindResource(ctx, resourceID)
	if err != nil {
		return nil, err
	}

	var image string
	if r.imageURL != nil && res.ImageID > 0 {
		image = r.imageURL(res.ImageID)
	}
	v := NewView(res, image, r.loader, r.client, r.now)

	r.mu.Lock()
	if existing, ok := r.views[resourceID]; ok {
		r.mu.Unlock()
		return existing, nil
	}
	r.views[resourceID] = v
	r.mu.Unlock()

	if err := v.Reload(ctx); err != nil {
		return nil, err
	}
	return v, nil
}

func (r *Registry) Get(resourceID int64) (*View, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.views[resourceID]
	if !ok {
		return nil, ErrNotMounted
	}
	return v, nil
}

// Unmount disposes the view of a resource.
func (r *Registry) Unmount(resourceID int64) {
	r.mu.Lock()
	v, ok := r.views[resourceID]
	delete(r.views, resourceID)
	r.mu.Unlock()
	if ok {
		v.Dispose()
	}
}

// UnmountAll disposes every view, e.g. on logout.
func (r *Registry) UnmountAll() {
	r.mu.Lock()
	views := r.views
	r.views = map[int64]*View{}
	r.mu.Unlock()
	for _, v := range views {
		v.Dispose()
	}
}

// Reset drops every mounted view.
func (r *Registry) Reset() { r.UnmountAll() }
