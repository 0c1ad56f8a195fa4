package domain

import (
	"encoding/json"
	"time"
)

type InstallmentStatus string

const (
	InstallmentPaid    InstallmentStatus = "Pago"
	InstallmentPending InstallmentStatus = "Pendente"
	InstallmentOverdue InstallmentStatus = "Atrasado"
)

// Installment is one financial charge as served by GET /financeiro.
type Installment struct {
	Code    string     `json:"code"`
	Value   float64    `json:"valor"`
	DueDate time.Time  `json:"vencimento"`
	PaidAt  *time.Time `json:"pago_em"`
}

func (i *Installment) UnmarshalJSON(data []byte) error {
	type plain Installment
	var aux struct {
		plain
		DueDate Timestamp  `json:"vencimento"`
		PaidAt  *Timestamp `json:"pago_em"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*i = Installment(aux.plain)
	i.DueDate = aux.DueDate.Time
	i.PaidAt = nil
	if aux.PaidAt != nil && !aux.PaidAt.IsZero() {
		paid := aux.PaidAt.Time
		i.PaidAt = &paid
	}
	return nil
}

// StatusAt derives the installment status relative to now.
func (i Installment) StatusAt(now time.Time) InstallmentStatus {
	if i.PaidAt != nil {
		return InstallmentPaid
	}
	if i.DueDate.Before(now) {
		return InstallmentOverdue
	}
	return InstallmentPending
}
