package devbackend

import (
	"context"
	"testing"
	"time"

	"condoapp/internal/database"
	"condoapp/internal/pkg/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeed(t *testing.T) {
	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	report, err := Seed(db, 15, now)
	require.NoError(t, err)
	assert.Len(t, report.ResourceIDs, 3)

	repo := NewRepository(db)
	ctx := context.Background()

	official, err := repo.UserByID(ctx, 15)
	require.NoError(t, err)
	assert.NotNil(t, official.CondominiumID)

	logs, err := repo.BookingLogs(ctx, report.ResourceIDs[0])
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, int64(15), logs[0].UserID)

	svc := NewService(repo, jwt.New("s", time.Hour))
	resp, err := svc.Login(ctx, loginRequest{Email: report.SyndicEmail, Password: SeedPassword})
	require.NoError(t, err)
	assert.Equal(t, "syndic", resp.Role)

	// seeding twice starts over
	_, err = Seed(db, 15, now)
	require.NoError(t, err)
	cond, err := repo.CondominiumByToken(ctx, "sol123")
	require.NoError(t, err)
	assert.Equal(t, "Edifício Sol", cond.Name)
}
