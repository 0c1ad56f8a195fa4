package finance

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"condoapp/internal/domain"
	"condoapp/internal/pkg/money"
	"condoapp/internal/pkg/utils"
	"condoapp/internal/pkg/validator"
	"condoapp/internal/session"
)

type Service struct {
	api API
	now func() time.Time
}

func NewService(api API, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{api: api, now: now}
}

// Overview loads the installments and derives the status of each one. A
// failed load yields an empty overview alongside the error.
func (s *Service) Overview(ctx context.Context) (Overview, error) {
	var list []domain.Installment
	if err := s.api.Get(ctx, "/financeiro", &list); err != nil {
		log.Printf("finance_load_failed error=%q", err.Error())
		return Build(nil, s.now()), fmt.Errorf("load installments: %w", err)
	}
	return Build(list, s.now()), nil
}

// Build sorts installments by due date, latest first, and totals pending
// and overdue ones.
func Build(list []domain.Installment, now time.Time) Overview {
	sorted := make([]domain.Installment, len(list))
	copy(sorted, list)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].DueDate.After(sorted[j].DueDate)
	})

	ov := Overview{Items: make([]Row, 0, len(sorted))}
	for _, inst := range sorted {
		status := inst.StatusAt(now)
		row := Row{
			Code:      inst.Code,
			Title:     "Parcela: " + inst.Code,
			Value:     inst.Value,
			ValueText: money.FormatBRL(inst.Value),
			DueDate:   utils.FormatDate(inst.DueDate),
			PaidAt:    notPaid,
			Status:    status,
		}
		if inst.PaidAt != nil {
			row.PaidAt = utils.FormatDate(*inst.PaidAt)
		}
		ov.Items = append(ov.Items, row)

		if status == domain.InstallmentPaid {
			continue
		}
		ov.Summary.TotalPending += inst.Value
		ov.Summary.Count++
		if status == domain.InstallmentOverdue {
			ov.Summary.Overdue = true
		}
	}

	ov.Summary.TotalPendingText = money.FormatBRL(ov.Summary.TotalPending)
	ov.Summary.CountLabel = "Parcelas"
	if ov.Summary.Count == 1 {
		ov.Summary.CountLabel = "Parcela"
	}
	return ov
}

// CreateCharge issues a new installment to the condominium. Syndics only.
func (s *Service) CreateCharge(ctx context.Context, sess session.Context, req CreateChargeRequest) error {
	if !sess.IsSyndic() {
		return domain.ErrForbidden
	}
	req.DueDate = strings.TrimSpace(req.DueDate)
	if errs := validator.Validate(req); errs != nil {
		return &ValidationError{Fields: errs}
	}

	if err := s.api.Post(ctx, "/financeiro", req, nil); err != nil {
		log.Printf("finance_create_failed user_id=%d error=%q", sess.UserID(), err.Error())
		return fmt.Errorf("%w: %w", ErrCreateFailed, err)
	}
	return nil
}
