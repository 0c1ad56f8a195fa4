package reservations

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"

	"condoapp/internal/domain"
	"condoapp/internal/pkg/apiclient"
	"condoapp/internal/session"
)

type Service struct {
	api API

	mu    sync.RWMutex
	cache map[int64]domain.Resource
}

func NewService(api API) *Service {
	return &Service{api: api, cache: map[int64]domain.Resource{}}
}

// List fetches the condominium's reservable resources. The cache used by
// FindResource is refreshed on every successful call.
func (s *Service) List(ctx context.Context) ([]ResourceCard, error) {
	var resources []domain.Resource
	if err := s.api.Get(ctx, "/reservas", &resources); err != nil {
		log.Printf("reservations_list_failed error=%q", err.Error())
		return []ResourceCard{}, fmt.Errorf("list resources: %w", err)
	}

	s.mu.Lock()
	s.cache = make(map[int64]domain.Resource, len(resources))
	for _, r := range resources {
		s.cache[r.ID] = r
	}
	s.mu.Unlock()

	cards := make([]ResourceCard, 0, len(resources))
	for _, r := range resources {
		cards = append(cards, s.card(r))
	}
	return cards, nil
}

// FindResource resolves a resource by id, listing again on a cache miss.
func (s *Service) FindResource(ctx context.Context, id int64) (domain.Resource, error) {
	if r, ok := s.cached(id); ok {
		return r, nil
	}
	if _, err := s.List(ctx); err != nil {
		return domain.Resource{}, err
	}
	if r, ok := s.cached(id); ok {
		return r, nil
	}
	return domain.Resource{}, fmt.Errorf("resource %d: %w", id, domain.ErrNotFound)
}

// Create uploads a new resource with its image. Syndics only.
func (s *Service) Create(ctx context.Context, sess session.Context, in CreateResourceInput) (ResourceCard, error) {
	if !sess.IsSyndic() {
		return ResourceCard{}, domain.ErrForbidden
	}

	name := strings.TrimSpace(in.Name)
	if name == "" {
		return ResourceCard{}, ErrNameRequired
	}
	if len(in.Image) == 0 {
		return ResourceCard{}, ErrImageRequired
	}

	filename := in.ImageName
	if filename == "" {
		filename = "image.jpg"
	}
	form := apiclient.NewForm().
		Field("nome", name).
		Field("descricao", strings.TrimSpace(in.Description)).
		File("image", filename, in.Image)

	var created domain.Resource
	if err := s.api.Post(ctx, "/reservas", form, &created); err != nil {
		log.Printf("reservations_create_failed name=%q error=%q", name, err.Error())
		return ResourceCard{}, fmt.Errorf("create resource: %w", err)
	}

	s.mu.Lock()
	s.cache[created.ID] = created
	s.mu.Unlock()

	return s.card(created), nil
}

// ImageURL exposes the backend image location for the schedule view.
func (s *Service) ImageURL(imageID int64) string {
	return s.api.ImageURL(imageID)
}

func (s *Service) cached(id int64) (domain.Resource, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.cache[id]
	return r, ok
}

func (s *Service) card(r domain.Resource) ResourceCard {
	c := ResourceCard{Resource: r}
	if r.ImageID > 0 {
		c.ImageURL = s.api.ImageURL(r.ImageID)
	}
	return c
}
