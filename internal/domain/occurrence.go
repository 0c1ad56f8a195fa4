package domain

import "time"

type OccurrenceStatus string

const (
	OccurrenceOpen     OccurrenceStatus = "aberto"
	OccurrenceResolved OccurrenceStatus = "resolvido"
)

type Occurrence struct {
	ID            int64            `json:"id"`
	UserID        int64            `json:"user_id"`
	CondominiumID int64            `json:"condominium_id"`
	Title         string           `json:"titulo"`
	Description   string           `json:"descricao"`
	Status        OccurrenceStatus `json:"status"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
	User          *UserRef         `json:"user,omitempty"`
}
