package rules

import (
	"context"
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

func TestService_List(t *testing.T) {
	api := new(mockAPI)
	api.On("Get", mock.Anything, "/rules", mock.Anything).Return(nil).Run(func(args mock.Arguments) {
		*args.Get(2).(*[]domain.Rule) = []domain.Rule{
			{ID: 10, Description: "Silêncio após 22h", CreatedAt: time.Date(2024, 3, 9, 15, 0, 0, 0, time.UTC), User: &domain.UserRef{Username: "Bruno"}},
			{ID: 11, Description: "Sem animais na piscina", CreatedAt: time.Date(2024, 3, 10, 15, 0, 0, 0, time.UTC)},
		}
	})

	items, err := NewService(api).List(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []Item{
		{Title: "Regra #1", Description: "Silêncio após 22h", Date: "09/03/2024", Creator: "Bruno"},
		{Title: "Regra #2", Description: "Sem animais na piscina", Date: "10/03/2024", Creator: "NONE"},
	}, items)
}

func TestService_List_Failure(t *testing.T) {
	api := new(mockAPI)
	api.On("Get", mock.Anything, "/rules", mock.Anything).Return(errors.New("down"))

	items, err := NewService(api).List(context.Background())

	assert.Error(t, err)
	assert.Empty(t, items)
}

func TestService_Create(t *testing.T) {
	syndic := session.NewContext(session.Record{Token: "t", UserID: 1, Role: domain.RoleSyndic})
	resident := session.NewContext(session.Record{Token: "t", UserID: 2, Role: domain.RoleResident})

	api := new(mockAPI)
	api.On("Post", mock.Anything, "/rules", createBody{Description: "Silêncio após 22h"}, nil).Return(nil).Once()
	svc := NewService(api)

	require.NoError(t, svc.Create(context.Background(), syndic, CreateRequest{Description: "  Silêncio após 22h "}))
	assert.ErrorIs(t, svc.Create(context.Background(), syndic, CreateRequest{Description: " "}), ErrDescriptionRequired)
	assert.ErrorIs(t, svc.Create(context.Background(), resident, CreateRequest{Description: "x"}), domain.ErrForbidden)

	api.On("Post", mock.Anything, "/rules", mock.Anything, nil).Return(errors.New("500")).Once()
	assert.ErrorIs(t, svc.Create(context.Background(), syndic, CreateRequest{Description: "x"}), ErrCreateFailed)
	api.AssertNumberOfCalls(t, "Post", 2)
}
