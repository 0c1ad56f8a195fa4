package domain

type Condominium struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Token   string `json:"token"`
	OwnerID int64  `json:"owner_id"`
}

// CondominiumCreated is the payload of POST /condominium/create.
type CondominiumCreated struct {
	Message     string      `json:"message"`
	Condominium Condominium `json:"condominium"`
}

// CondominiumLinked is the payload of POST /condominios/link.
type CondominiumLinked struct {
	Message string `json:"message"`
	User    struct {
		ID int64 `json:"id"`
	} `json:"user"`
	Condominium Condominium `json:"condominium"`
}
