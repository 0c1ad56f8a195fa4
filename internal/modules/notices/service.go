package notices

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"condoapp/internal/domain"
	"condoapp/internal/pkg/utils"
	"condoapp/internal/session"
)

type Service struct {
	api API
	now func() time.Time
}

func NewService(api API, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{api: api, now: now}
}

// List returns the notices newest first. With FilterToday only notices
// created on the current day are kept.
func (s *Service) List(ctx context.Context, sess session.Context, filter string) ([]Item, error) {
	var notices []domain.Notice
	if err := s.api.Get(ctx, "/notices", &notices); err != nil {
		log.Printf("notices_list_failed error=%q", err.Error())
		return []Item{}, fmt.Errorf("list notices: %w", err)
	}

	now := s.now()
	items := make([]Item, 0, len(notices))
	for i := len(notices) - 1; i >= 0; i-- {
		n := notices[i]
		if filter == FilterToday && !utils.SameDay(n.CreatedAt, now) {
			continue
		}
		items = append(items, toItem(n, sess.IsSyndic()))
	}
	return items, nil
}

// Create publishes a notice. Syndics only; both fields are trimmed and required.
func (s *Service) Create(ctx context.Context, sess session.Context, req CreateRequest) error {
	if !sess.IsSyndic() {
		return domain.ErrForbidden
	}
	title, message := strings.TrimSpace(req.Title), strings.TrimSpace(req.Message)
	if title == "" || message == "" {
		return ErrTitleAndMessageRequired
	}

	if err := s.api.Post(ctx, "/notices", createBody{Title: title, Description: message}, nil); err != nil {
		log.Printf("notices_create_failed user_id=%d error=%q", sess.UserID(), err.Error())
		return fmt.Errorf("%w: %w", ErrCreateFailed, err)
	}
	return nil
}

func (s *Service) Delete(ctx context.Context, sess session.Context, id int64) error {
	if !sess.IsSyndic() {
		return domain.ErrForbidden
	}
	if err := s.api.Delete(ctx, fmt.Sprintf("/notices/%d", id)); err != nil {
		log.Printf("notices_delete_failed id=%d error=%q", id, err.Error())
		return fmt.Errorf("%w: %w", ErrDeleteFailed, err)
	}
	return nil
}

func toItem(n domain.Notice, syndic bool) Item {
	creator := ""
	if n.User != nil {
		creator = n.User.Username
	}
	return Item{
		ID:        n.ID,
		Title:     utils.FirstNonEmpty(n.Title, untitled),
		Message:   n.Description,
		Date:      utils.FormatDate(n.CreatedAt),
		Creator:   utils.FirstNonEmpty(creator, unknownCreator),
		CanDelete: syndic,
	}
}
