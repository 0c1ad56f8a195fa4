package finance

import "condoapp/internal/domain"

const notPaid = "Não realizado"

// Row is one installment card.
type Row struct {
	Code      string                   `json:"code"`
	Title     string                   `json:"title"`
	Value     float64                  `json:"value"`
	ValueText string                   `json:"value_text"`
	DueDate   string                   `json:"due_date"`
	PaidAt    string                   `json:"paid_at"`
	Status    domain.InstallmentStatus `json:"status"`
}

// Summary totals what is still owed.
type Summary struct {
	TotalPending     float64 `json:"total_pending"`
	TotalPendingText string  `json:"total_pending_text"`
	Count            int     `json:"count"`
	CountLabel       string  `json:"count_label"`
	Overdue          bool    `json:"overdue"`
}

type Overview struct {
	Summary   Summary `json:"summary"`
	Items     []Row   `json:"items"`
	CanCreate bool    `json:"can_create"`
	Error     string  `json:"error,omitempty"`
}

// CreateChargeRequest is a syndic's new charge; DueDate is YYYY-MM-DD.
type CreateChargeRequest struct {
	Value   float64 `json:"valor" validate:"gt=0"`
	DueDate string  `json:"vencimento" validate:"required,datetime=2006-01-02"`
}
