package rules

const unknownCreator = "NONE"

// Item is one numbered rule card.
type Item struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Creator     string `json:"creator"`
}

type ListResponse struct {
	Items     []Item `json:"items"`
	CanCreate bool   `json:"can_create"`
	Error     string `json:"error,omitempty"`
}

type CreateRequest struct {
	Description string `json:"description"`
}

type createBody struct {
	Description string `json:"descricao"`
}
