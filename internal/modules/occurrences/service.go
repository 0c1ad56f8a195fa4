package occurrences

import (
	"context"
	"fmt"
	"log"
	"strings"

	"condoapp/internal/domain"
	"condoapp/internal/pkg/utils"
	"condoapp/internal/session"
)

type Service struct {
	api API
}

func NewService(api API) *Service {
	return &Service{api: api}
}

func (s *Service) List(ctx context.Context, sess session.Context) ([]Item, error) {
	var list []domain.Occurrence
	if err := s.api.Get(ctx, "/ocorrencias", &list); err != nil {
		log.Printf("occurrences_list_failed error=%q", err.Error())
		return []Item{}, fmt.Errorf("list occurrences: %w", err)
	}

	items := make([]Item, 0, len(list))
	for _, o := range list {
		items = append(items, toItem(o, sess))
	}
	return items, nil
}

// Create files a new occurrence. Any logged-in user may report one.
func (s *Service) Create(ctx context.Context, sess session.Context, req CreateRequest) (Item, error) {
	title, desc := strings.TrimSpace(req.Title), strings.TrimSpace(req.Description)
	if title == "" || desc == "" {
		return Item{}, ErrTitleAndDescriptionRequired
	}

	var created domain.Occurrence
	if err := s.api.Post(ctx, "/ocorrencias", createBody{Title: title, Description: desc}, &created); err != nil {
		log.Printf("occurrences_create_failed user_id=%d error=%q", sess.UserID(), err.Error())
		return Item{}, fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}
	return toItem(created, sess), nil
}

// Resolve marks an occurrence as resolved. Syndics only.
func (s *Service) Resolve(ctx context.Context, sess session.Context, id int64) error {
	if !sess.IsSyndic() {
		return domain.ErrForbidden
	}
	body := statusBody{Status: domain.OccurrenceResolved}
	if err := s.api.Put(ctx, fmt.Sprintf("/ocorrencias/%d", id), body, nil); err != nil {
		log.Printf("occurrences_resolve_failed id=%d error=%q", id, err.Error())
		return fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}
	return nil
}

func (s *Service) Delete(ctx context.Context, sess session.Context, id int64) error {
	if !sess.IsSyndic() {
		return domain.ErrForbidden
	}
	if err := s.api.Delete(ctx, fmt.Sprintf("/ocorrencias/%d", id)); err != nil {
		log.Printf("occurrences_delete_failed id=%d error=%q", id, err.Error())
		return fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}
	return nil
}

func toItem(o domain.Occurrence, sess session.Context) Item {
	var author, avatar string
	if o.User != nil {
		author, avatar = o.User.Username, o.User.AvatarURL
	}
	return Item{
		ID:          o.ID,
		Title:       o.Title,
		Description: o.Description,
		Status:      o.Status,
		Author:      utils.FirstNonEmpty(author, unknownAuthor),
		AvatarURL:   utils.FirstNonEmpty(avatar, FallbackAvatar),
		Date:        utils.FormatDate(o.CreatedAt),
		CanResolve:  sess.IsSyndic() && o.Status != domain.OccurrenceResolved,
		CanDelete:   sess.IsSyndic(),
		CanFollowUp: sess.UserID() != 0 && o.UserID == sess.UserID(),
	}
}
