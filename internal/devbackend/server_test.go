package devbackend_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"condoapp/internal/database"
	"condoapp/internal/devbackend"
	"condoapp/internal/domain"
	"condoapp/internal/modules/auth"
	"condoapp/internal/modules/condominium"
	"condoapp/internal/modules/finance"
	"condoapp/internal/modules/notices"
	"condoapp/internal/modules/occurrences"
	"condoapp/internal/modules/reservations"
	"condoapp/internal/modules/schedule"
	"condoapp/internal/pkg/apiclient"
	"condoapp/internal/pkg/jwt"
	"condoapp/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type harness struct {
	server *httptest.Server
	store  *session.Store
	client *apiclient.Client
	auth   *auth.Service
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	gin.SetMode(gin.TestMode)

	backendDB, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, devbackend.Migrate(backendDB))

	srv := httptest.NewServer(devbackend.NewRouter(backendDB, jwt.New("test-secret", time.Hour)))
	t.Cleanup(srv.Close)

	sessionDB, err := database.Connect(":memory:")
	require.NoError(t, err)
	store, err := session.NewStore(context.Background(), sessionDB)
	require.NoError(t, err)

	client := apiclient.New(srv.URL+"/api", srv.Client(), store)
	return &harness{server: srv, store: store, client: client, auth: auth.NewService(client, store)}
}

func (h *harness) signIn(t *testing.T, name, email string, role domain.UserRole) auth.LoginResult {
	t.Helper()
	ctx := context.Background()
	_, err := h.auth.Register(ctx, auth.RegisterRequest{Name: name, Email: email, Password: "secret", Role: role})
	require.NoError(t, err)
	res, err := h.auth.Login(ctx, auth.LoginRequest{Email: email, Password: "secret"})
	require.NoError(t, err)
	return res
}

func (h *harness) current(t *testing.T) session.Context {
	t.Helper()
	sess, ok := h.store.Current()
	require.True(t, ok)
	return sess
}

func TestEndToEnd_SyndicFlow(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	res := h.signIn(t, "Ana", "ana@condo.test", domain.RoleSyndic)
	assert.Equal(t, auth.NextLinkCondominium, res.Next)
	sess := h.current(t)
	assert.True(t, sess.IsSyndic())
	assert.Positive(t, sess.UserID())

	linked, err := condominium.NewService(h.client, h.store).Link(ctx, sess, "Edifício Sol")
	require.NoError(t, err)
	assert.True(t, linked.Created)
	assert.Equal(t, auth.NextHome, linked.Next)
	require.NotNil(t, linked.Condominium)
	assert.Len(t, linked.Condominium.Token, 6)

	sess = h.current(t)
	assert.True(t, sess.Linked())

	resv := reservations.NewService(h.client)
	card, err := resv.Create(ctx, sess, reservations.CreateResourceInput{
		Name:        "Salão de festas",
		Description: "Térreo",
		ImageName:   "salao.png",
		Image:       []byte("\x89PNG\r\n\x1a\nfake"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Salão de festas", card.Name)
	require.Positive(t, card.ImageID)

	resp, err := h.server.Client().Get(card.ImageURL)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/png", resp.Header.Get("Content-Type"))

	logs := schedule.NewAPIClient(h.client)
	start := time.Date(2030, 5, 1, 9, 0, 0, 0, time.UTC)
	require.NoError(t, logs.CreateLog(ctx, domain.CreateBookingLog{
		ResourceID: card.ID,
		Start:      start.Format(time.RFC3339),
		End:        start.Add(90 * time.Minute).Format(time.RFC3339),
	}))

	err = logs.CreateLog(ctx, domain.CreateBookingLog{
		ResourceID: card.ID,
		Start:      start.Add(time.Hour).Format(time.RFC3339),
		End:        start.Add(2 * time.Hour).Format(time.RFC3339),
	})
	assert.Equal(t, http.StatusConflict, apiclient.StatusOf(err))

	err = logs.CreateLog(ctx, domain.CreateBookingLog{
		ResourceID: card.ID,
		Start:      start.Format(time.RFC3339),
		End:        start.Format(time.RFC3339),
	})
	assert.Equal(t, http.StatusBadRequest, apiclient.StatusOf(err))

	entries, err := logs.FetchLogs(ctx, card.ID)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Ana", entries[0].Username)
	assert.Equal(t, sess.UserID(), entries[0].UserID)
	assert.True(t, start.Equal(entries[0].Start))

	now := func() time.Time { return time.Now().UTC() }
	ns := notices.NewService(h.client, now)
	require.NoError(t, ns.Create(ctx, sess, notices.CreateRequest{Title: "Água", Message: "Sem água amanhã"}))
	items, err := ns.List(ctx, sess, notices.FilterToday)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Ana", items[0].Creator)
	assert.True(t, items[0].CanDelete)
	require.NoError(t, ns.Delete(ctx, sess, items[0].ID))

	fs := finance.NewService(h.client, now)
	require.NoError(t, fs.CreateCharge(ctx, sess, finance.CreateChargeRequest{Value: 450.5, DueDate: "2000-01-10"}))
	ov, err := fs.Overview(ctx)
	require.NoError(t, err)
	require.Len(t, ov.Items, 1)
	assert.Equal(t, domain.InstallmentOverdue, ov.Items[0].Status)
	assert.True(t, ov.Summary.Overdue)
}

func TestEndToEnd_ResidentJoinsAndReports(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	h.signIn(t, "Ana", "ana@condo.test", domain.RoleSyndic)
	created, err := condominium.NewService(h.client, h.store).Link(ctx, h.current(t), "Edifício Sol")
	require.NoError(t, err)
	token := created.Condominium.Token
	require.NoError(t, h.auth.Logout(ctx))

	h.signIn(t, "Bruno", "bruno@condo.test", domain.RoleResident)
	sess := h.current(t)

	cs := condominium.NewService(h.client, h.store)
	_, err = cs.Link(ctx, sess, "NOPE00")
	assert.ErrorIs(t, err, condominium.ErrLinkFailed)

	joined, err := cs.Link(ctx, sess, " "+token+" ")
	require.NoError(t, err)
	assert.False(t, joined.Created)
	sess = h.current(t)

	occ := occurrences.NewService(h.client)
	item, err := occ.Create(ctx, sess, occurrences.CreateRequest{Title: "Barulho", Description: "Apto 302"})
	require.NoError(t, err)
	assert.True(t, item.CanFollowUp)
	assert.False(t, item.CanResolve)

	_, err = reservations.NewService(h.client).Create(ctx, sess, reservations.CreateResourceInput{Name: "x", Image: []byte("x")})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	require.NoError(t, h.auth.Logout(ctx))
	res, err := h.auth.Login(ctx, auth.LoginRequest{Email: "ana@condo.test", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, auth.NextHome, res.Next)

	syndic := h.current(t)
	list, err := occ.List(ctx, syndic)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.True(t, list[0].CanResolve)
	require.NoError(t, occ.Resolve(ctx, syndic, list[0].ID))

	list, err = occ.List(ctx, syndic)
	require.NoError(t, err)
	assert.False(t, list[0].CanResolve)
}

func TestBackend_RejectsBadLogin(t *testing.T) {
	h := newHarness(t)

	_, err := h.auth.Login(context.Background(), auth.LoginRequest{Email: "ghost@condo.test", Password: "x"})
	assert.ErrorIs(t, err, auth.ErrLoginFailed)
	_, ok := h.store.Current()
	assert.False(t, ok)
}

func TestBackend_UnlinkedUserIsForbidden(t *testing.T) {
	h := newHarness(t)
	h.signIn(t, "Carla", "carla@condo.test", domain.RoleResident)

	_, err := reservations.NewService(h.client).List(context.Background())
	assert.Equal(t, http.StatusForbidden, apiclient.StatusOf(err))
}
