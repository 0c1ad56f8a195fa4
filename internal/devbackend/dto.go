package devbackend

type registerRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=3"`
	Role     string `json:"role" validate:"required,oneof=syndic resident"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Token string `json:"token"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

type createCondominiumRequest struct {
	Name string `json:"name" validate:"required"`
}

type linkRequest struct {
	UserToken        string `json:"user_token"`
	CondominiumToken string `json:"condominium_token" validate:"required"`
}

type createBookingLogRequest struct {
	ResourceID int64  `json:"reservaId" validate:"gt=0"`
	Start      string `json:"inicio" validate:"required"`
	End        string `json:"fim" validate:"required"`
}

type noticeRequest struct {
	Title       string `json:"titulo" validate:"required"`
	Description string `json:"descricao" validate:"required"`
}

type ruleRequest struct {
	Description string `json:"descricao" validate:"required"`
}

type occurrenceRequest struct {
	Title       string `json:"titulo" validate:"required"`
	Description string `json:"descricao" validate:"required"`
}

type occurrenceStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=aberto resolvido"`
}

type installmentRequest struct {
	Value   float64 `json:"valor" validate:"gt=0"`
	DueDate string  `json:"vencimento" validate:"required,datetime=2006-01-02"`
}
