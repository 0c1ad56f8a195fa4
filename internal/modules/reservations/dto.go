package reservations

import "condoapp/internal/domain"

// ResourceCard is one reservable resource as listed on the Reservas screen.
type ResourceCard struct {
	domain.Resource
	ImageURL string `json:"image_url,omitempty"`
}

type ListResponse struct {
	Items []ResourceCard `json:"items"`
	Error string         `json:"error,omitempty"`
}

// CreateResourceInput is the syndic's new-resource form.
type CreateResourceInput struct {
	Name        string
	Description string
	ImageName   string
	Image       []byte
}
