package rules

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

// List returns the house rules in server order, numbered from 1.
func (s *Service) List(ctx context.Context) ([]Item, error) {
	var rules []domain.Rule
	if err := s.api.Get(ctx, "/rules", &rules); err != nil {
		log.Printf("rules_list_failed error=%q", err.Error())
		return []Item{}, fmt.Errorf("list rules: %w", err)
	}

	items := make([]Item, 0, len(rules))
	for i, r := range rules {
		creator := ""
		if r.User != nil {
			creator = r.User.Username
		}
		items = append(items, Item{
			Title:       fmt.Sprintf("Regra #%d", i+1),
			Description: r.Description,
			Date:        utils.FormatDate(r.CreatedAt),
			Creator:     utils.FirstNonEmpty(creator, unknownCreator),
		})
	}
	return items, nil
}

func (s *Service) Create(ctx context.Context, sess session.Context, req CreateRequest) error {
	if !sess.IsSyndic() {
		return domain.ErrForbidden
	}
	desc := strings.TrimSpace(req.Description)
	if desc == "" {
		return ErrDescriptionRequired
	}

	if err := s.api.Post(ctx, "/rules", createBody{Description: desc}, nil); err != nil {
		log.Printf("rules_create_failed user_id=%d error=%q", sess.UserID(), err.Error())
		return fmt.Errorf("%w: %w", ErrCreateFailed, err)
	}
	return nil
}
