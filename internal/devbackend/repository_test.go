package devbackend

import (
	"context"
	"errors"
	"testing"
	"time"

	"condoapp/internal/database"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) *Repository {
	t.Helper()
	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, Migrate(db))
	return NewRepository(db)
}

func TestCreateBookingLog_Intervals(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	at := func(h, m int) time.Time { return time.Date(2030, 5, 1, h, m, 0, 0, time.UTC) }

	require.NoError(t, repo.CreateBookingLog(ctx, &bookingLogModel{ResourceID: 1, UserID: 2, Start: at(9, 0), End: at(10, 0)}))

	assert.ErrorIs(t, repo.CreateBookingLog(ctx, &bookingLogModel{ResourceID: 1, Start: at(9, 30), End: at(9, 45)}), ErrOverlap)
	assert.ErrorIs(t, repo.CreateBookingLog(ctx, &bookingLogModel{ResourceID: 1, Start: at(8, 0), End: at(11, 0)}), ErrOverlap)
	assert.ErrorIs(t, repo.CreateBookingLog(ctx, &bookingLogModel{ResourceID: 1, Start: at(11, 0), End: at(11, 0)}), ErrInvalidInterval)

	// touching intervals and other resources are free
	require.NoError(t, repo.CreateBookingLog(ctx, &bookingLogModel{ResourceID: 1, Start: at(10, 0), End: at(11, 0)}))
	require.NoError(t, repo.CreateBookingLog(ctx, &bookingLogModel{ResourceID: 2, Start: at(9, 0), End: at(10, 0)}))

	// the same instant expressed in another zone still collides
	brt := time.FixedZone("BRT", -3*60*60)
	clash := &bookingLogModel{ResourceID: 1, Start: time.Date(2030, 5, 1, 7, 30, 0, 0, brt), End: time.Date(2030, 5, 1, 8, 0, 0, 0, brt)}
	assert.ErrorIs(t, repo.CreateBookingLog(ctx, clash), ErrOverlap)

	logs, err := repo.BookingLogs(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, logs, 2)
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.CreateUser(ctx, &userModel{Email: "Ana@Condo.test", Name: "Ana", Role: "syndic"}))
	err := repo.CreateUser(ctx, &userModel{Email: " ana@condo.test", Name: "Outra", Role: "resident"})
	assert.ErrorIs(t, err, ErrEmailTaken)

	u, err := repo.UserByEmail(ctx, "ANA@condo.test")
	require.NoError(t, err)
	assert.Equal(t, "Ana", u.Name)
}

func TestDeleteScoped(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	n := &noticeModel{CondominiumID: 1, UserID: 1, Title: "a", Description: "b"}
	require.NoError(t, repo.CreateNotice(ctx, n))

	assert.ErrorIs(t, repo.DeleteNotice(ctx, 2, n.ID), ErrRecordNotFound)
	require.NoError(t, repo.DeleteNotice(ctx, 1, n.ID))
	assert.ErrorIs(t, repo.DeleteNotice(ctx, 1, n.ID), ErrRecordNotFound)
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, isUniqueViolation(&pgconn.PgError{Code: "23505"}))
	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.True(t, isUniqueViolation(errors.New("constraint failed: UNIQUE constraint failed: users.email (2067)")))
	assert.False(t, isUniqueViolation(nil))
}

func TestNewJoinToken(t *testing.T) {
	tok := newJoinToken()
	assert.Len(t, tok, 6)
	assert.Regexp(t, `^[0-9A-F]{6}$`, tok)
}
