package occurrences

import "condoapp/internal/domain"

const (
	FallbackAvatar = "https://static.vecteezy.com/system/resources/previews/036/594/092/non_2x/man-empty-avatar-photo-placeholder-for-social-networks-resumes-forums-and-dating-sites-male-and-female-no-photo-images-for-unfilled-user-profile-free-vector.jpg"
	unknownAuthor  = "Usuário"
)

// Item is one occurrence card.
type Item struct {
	ID          int64                   `json:"id"`
	Title       string                  `json:"title"`
	Description string                  `json:"description"`
	Status      domain.OccurrenceStatus `json:"status"`
	Author      string                  `json:"author"`
	AvatarURL   string                  `json:"avatar_url"`
	Date        string                  `json:"date"`
	CanResolve  bool                    `json:"can_resolve"`
	CanDelete   bool                    `json:"can_delete"`
	CanFollowUp bool                    `json:"can_follow_up"`
}

type ListResponse struct {
	Items []Item `json:"items"`
	Error string `json:"error,omitempty"`
}

type CreateRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type createBody struct {
	Title       string `json:"titulo"`
	Description string `json:"descricao"`
}

type statusBody struct {
	Status domain.OccurrenceStatus `json:"status"`
}
