package finance

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"condoapp/internal/domain"
	"condoapp/internal/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockAPI struct {
	mock.Mock
}

func (m *mockAPI) Get(ctx context.Context, endpoint string, out any) error {
	args := m.Called(ctx, endpoint, out)
	return args.Error(0)
}

func (m *mockAPI) Post(ctx context.Context, endpoint string, body, out any) error {
	args := m.Called(ctx, endpoint, body, out)
	return args.Error(0)
}

func now() time.Time { return time.Date(2024, 5, 15, 12, 0, 0, 0, time.UTC) }

func day(y int, m time.Month, d int) time.Time { return time.Date(y, m, d, 0, 0, 0, 0, time.UTC) }

func installments() []domain.Installment {
	paid := day(2024, 4, 8)
	return []domain.Installment{
		{Code: "2024-04", Value: 450, DueDate: day(2024, 4, 10), PaidAt: &paid},
		{Code: "2024-06", Value: 450.5, DueDate: day(2024, 6, 10)},
		{Code: "2024-05", Value: 1000, DueDate: day(2024, 5, 10)},
	}
}

func TestBuild(t *testing.T) {
	ov := Build(installments(), now())

	require.Len(t, ov.Items, 3)
	assert.Equal(t, []string{"2024-06", "2024-05", "2024-04"}, []string{ov.Items[0].Code, ov.Items[1].Code, ov.Items[2].Code})

	assert.Equal(t, domain.InstallmentPending, ov.Items[0].Status)
	assert.Equal(t, domain.InstallmentOverdue, ov.Items[1].Status)
	assert.Equal(t, domain.InstallmentPaid, ov.Items[2].Status)

	assert.Equal(t, "Parcela: 2024-06", ov.Items[0].Title)
	assert.Equal(t, "R$ 450,50", ov.Items[0].ValueText)
	assert.Equal(t, "10/06/2024", ov.Items[0].DueDate)
	assert.Equal(t, "Não realizado", ov.Items[0].PaidAt)
	assert.Equal(t, "08/04/2024", ov.Items[2].PaidAt)

	assert.InDelta(t, 1450.5, ov.Summary.TotalPending, 0.001)
	assert.Equal(t, "R$ 1.450,50", ov.Summary.TotalPendingText)
	assert.Equal(t, 2, ov.Summary.Count)
	assert.Equal(t, "Parcelas", ov.Summary.CountLabel)
	assert.True(t, ov.Summary.Overdue)
}

func TestBuild_SinglePending(t *testing.T) {
	ov := Build([]domain.Installment{{Code: "x", Value: 10, DueDate: day(2024, 6, 1)}}, now())

	assert.Equal(t, 1, ov.Summary.Count)
	assert.Equal(t, "Parcela", ov.Summary.CountLabel)
	assert.False(t, ov.Summary.Overdue)
}

func TestService_Overview_Failure(t *testing.T) {
	api := new(mockAPI)
	api.On("Get", mock.Anything, "/financeiro", mock.Anything).Return(errors.New("down"))

	ov, err := NewService(api, now).Overview(context.Background())

	assert.Error(t, err)
	assert.NotNil(t, ov.Items)
	assert.Empty(t, ov.Items)
	assert.Equal(t, "R$ 0,00", ov.Summary.TotalPendingText)
}

func TestService_Overview_DateOnlyDueDates(t *testing.T) {
	raw := []byte(`[
		{"code":"2024-04","valor":450,"vencimento":"2024-04-10","pago_em":"2024-04-08"},
		{"code":"2024-05","valor":1000,"vencimento":"2024-05-10","pago_em":null},
		{"code":"2024-06","valor":450.5,"vencimento":"2024-06-10T00:00:00"}
	]`)
	api := new(mockAPI)
	api.On("Get", mock.Anything, "/financeiro", mock.Anything).Return(nil).Run(func(args mock.Arguments) {
		require.NoError(t, json.Unmarshal(raw, args.Get(2)))
	})

	ov, err := NewService(api, now).Overview(context.Background())

	require.NoError(t, err)
	require.Len(t, ov.Items, 3)
	assert.Equal(t, "2024-06", ov.Items[0].Code)
	assert.Equal(t, domain.InstallmentPending, ov.Items[0].Status)
	assert.Equal(t, domain.InstallmentOverdue, ov.Items[1].Status)
	assert.Equal(t, "10/05/2024", ov.Items[1].DueDate)
	assert.Equal(t, domain.InstallmentPaid, ov.Items[2].Status)
	assert.Equal(t, "08/04/2024", ov.Items[2].PaidAt)
	assert.Equal(t, 2, ov.Summary.Count)
}

func TestService_CreateCharge(t *testing.T) {
	syndic := session.NewContext(session.Record{Token: "t", UserID: 1, Role: domain.RoleSyndic})
	resident := session.NewContext(session.Record{Token: "t", UserID: 2, Role: domain.RoleResident})

	api := new(mockAPI)
	api.On("Post", mock.Anything, "/financeiro", CreateChargeRequest{Value: 450, DueDate: "2024-07-10"}, nil).Return(nil)
	svc := NewService(api, now)

	require.NoError(t, svc.CreateCharge(context.Background(), syndic, CreateChargeRequest{Value: 450, DueDate: " 2024-07-10 "}))
	assert.ErrorIs(t, svc.CreateCharge(context.Background(), resident, CreateChargeRequest{Value: 1, DueDate: "2024-07-10"}), domain.ErrForbidden)

	err := svc.CreateCharge(context.Background(), syndic, CreateChargeRequest{Value: 0, DueDate: "10/07/2024"})
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Fields, "valor")
	assert.Contains(t, verr.Fields, "vencimento")

	api.AssertNumberOfCalls(t, "Post", 1)
}
