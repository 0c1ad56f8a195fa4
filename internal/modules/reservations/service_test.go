package reservations

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"condoapp/internal/domain"
	"condoapp/internal/pkg/apiclient"
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

func (m *mockAPI) ImageURL(imageID int64) string {
	return "http://api/images/" + strconv.FormatInt(imageID, 10)
}

func resources() []domain.Resource {
	return []domain.Resource{
		{ID: 1, Name: "Churrasqueira", ImageID: 4, Description: "Área externa"},
		{ID: 2, Name: "Salão de festas"},
	}
}

func returnResources(list []domain.Resource) func(mock.Arguments) {
	return func(args mock.Arguments) {
		*args.Get(2).(*[]domain.Resource) = list
	}
}

var (
	syndic   = session.NewContext(session.Record{Token: "t", UserID: 1, Role: domain.RoleSyndic})
	resident = session.NewContext(session.Record{Token: "t", UserID: 2, Role: domain.RoleResident})
)

func TestService_List(t *testing.T) {
	api := new(mockAPI)
	api.On("Get", mock.Anything, "/reservas", mock.Anything).Return(nil).Run(returnResources(resources()))

	cards, err := NewService(api).List(context.Background())

	require.NoError(t, err)
	require.Len(t, cards, 2)
	assert.Equal(t, "Churrasqueira", cards[0].Name)
	assert.Equal(t, "http://api/images/4", cards[0].ImageURL)
	assert.Empty(t, cards[1].ImageURL)
}

func TestService_ListFailure(t *testing.T) {
	api := new(mockAPI)
	api.On("Get", mock.Anything, "/reservas", mock.Anything).Return(&apiclient.Error{Status: 500, Message: "db down"})

	cards, err := NewService(api).List(context.Background())

	assert.Error(t, err)
	assert.NotNil(t, cards)
	assert.Empty(t, cards)
	assert.Equal(t, "db down", apiclient.MessageOf(err, ""))
}

func TestService_FindResource(t *testing.T) {
	api := new(mockAPI)
	api.On("Get", mock.Anything, "/reservas", mock.Anything).Return(nil).Run(returnResources(resources()))
	svc := NewService(api)

	r, err := svc.FindResource(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, "Salão de festas", r.Name)

	_, err = svc.FindResource(context.Background(), 1)
	require.NoError(t, err)
	api.AssertNumberOfCalls(t, "Get", 1)

	_, err = svc.FindResource(context.Background(), 99)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	api.AssertNumberOfCalls(t, "Get", 2)
}

func TestService_Create(t *testing.T) {
	api := new(mockAPI)
	api.On("Post", mock.Anything, "/reservas", mock.AnythingOfType("*apiclient.Form"), mock.Anything).Return(nil).
		Run(func(args mock.Arguments) {
			*args.Get(3).(*domain.Resource) = domain.Resource{ID: 7, Name: "Academia", ImageID: 12}
		})
	svc := NewService(api)

	card, err := svc.Create(context.Background(), syndic, CreateResourceInput{
		Name: "  Academia ", Description: "2º andar", ImageName: "gym.png", Image: []byte("png"),
	})

	require.NoError(t, err)
	assert.Equal(t, int64(7), card.ID)
	assert.Equal(t, "http://api/images/12", card.ImageURL)

	r, err := svc.FindResource(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "Academia", r.Name)
	api.AssertNotCalled(t, "Get", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_CreateValidation(t *testing.T) {
	api := new(mockAPI)
	svc := NewService(api)

	_, err := svc.Create(context.Background(), resident, CreateResourceInput{Name: "x", Image: []byte("x")})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = svc.Create(context.Background(), syndic, CreateResourceInput{Name: "  ", Image: []byte("x")})
	assert.ErrorIs(t, err, ErrNameRequired)

	_, err = svc.Create(context.Background(), syndic, CreateResourceInput{Name: "Academia"})
	assert.ErrorIs(t, err, ErrImageRequired)

	api.AssertNotCalled(t, "Post", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestService_CreateBackendError(t *testing.T) {
	api := new(mockAPI)
	api.On("Post", mock.Anything, "/reservas", mock.Anything, mock.Anything).Return(errors.New("boom"))

	_, err := NewService(api).Create(context.Background(), syndic, CreateResourceInput{Name: "Academia", Image: []byte("x")})
	assert.Error(t, err)
}
