package notices

const (
	untitled       = "(Sem título)"
	unknownCreator = "Desconhecido"

	FilterAll   = "all"
	FilterToday = "today"
)

// Item is one notice card.
type Item struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Message   string `json:"message"`
	Date      string `json:"date"`
	Creator   string `json:"creator"`
	CanDelete bool   `json:"can_delete"`
}

type ListResponse struct {
	Items     []Item `json:"items"`
	Filter    string `json:"filter"`
	CanCreate bool   `json:"can_create"`
	Error     string `json:"error,omitempty"`
}

type CreateRequest struct {
	Title   string `json:"title"`
	Message string `json:"message"`
}

type createBody struct {
	Title       string `json:"titulo"`
	Description string `json:"descricao"`
}
