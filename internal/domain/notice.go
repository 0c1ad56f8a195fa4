package domain

import "time"

type Notice struct {
	ID          int64     `json:"id"`
	Title       string    `json:"titulo"`
	Description string    `json:"descricao"`
	CreatedAt   time.Time `json:"created_at"`
	User        *UserRef  `json:"user,omitempty"`
}

type Rule struct {
	ID          int64     `json:"id"`
	Description string    `json:"descricao"`
	CreatedAt   time.Time `json:"created_at"`
	User        *UserRef  `json:"user,omitempty"`
}
