package condominium

import "condoapp/internal/domain"

type LinkRequest struct {
	Token string `json:"token"`
}

type linkBody struct {
	UserToken        string `json:"user_token"`
	CondominiumToken string `json:"condominium_token"`
}

type createBody struct {
	Name string `json:"name"`
}

// LinkResult tells the shell where to go and what to show.
type LinkResult struct {
	Next        string              `json:"next"`
	Message     string              `json:"message,omitempty"`
	Created     bool                `json:"created"`
	Condominium *domain.Condominium `json:"condominium,omitempty"`
}
