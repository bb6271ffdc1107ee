package booking_test

import (
	"context"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matuteb/cancha-rental-backend/internal/booking"
	"github.com/matuteb/cancha-rental-backend/internal/court"
	"github.com/matuteb/cancha-rental-backend/internal/db"
	"github.com/matuteb/cancha-rental-backend/internal/pkg/query"
)

// testPool connects to the database named by TEST_DB_DSN and resets the
// tables. Tests using it are skipped when the variable is unset.
func testPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		t.Skip("TEST_DB_DSN not set")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, db.EnsureSchema(ctx, pool))
	_, err = pool.Exec(ctx, `TRUNCATE public.reservas, public.canchas RESTART IDENTITY CASCADE`)
	require.NoError(t, err)

	return pool
}

func seedCourt(t *testing.T, pool *pgxpool.Pool, name string) int64 {
	t.Helper()

	repo := court.NewPgxRepository(pool)
	c := &court.Court{Name: name}
	require.NoError(t, repo.Create(context.Background(), c))
	return c.ID
}

func TestIntegrationExclusionConstraintBackstopsRace(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()
	repo := booking.NewPgxRepository(pool)
	courtID := seedCourt(t, pool, "Cancha Norte")

	first := &booking.Booking{CourtID: courtID, Day: 5, StartHour: 18, DurationMinutes: 60, Phone: "3434502306"}
	require.NoError(t, repo.Create(ctx, first))

	// Inserting straight through the repository skips the service-level
	// conflict check, the way a lost race would.
	second := &booking.Booking{CourtID: courtID, Day: 5, StartHour: 18, DurationMinutes: 30, Phone: "3434502306"}
	err := repo.Create(ctx, second)
	assert.ErrorIs(t, err, booking.ErrTimeConflict)

	// Back-to-back intervals are half-open and must not trip the
	// constraint.
	adjacent := &booking.Booking{CourtID: courtID, Day: 5, StartHour: 19, DurationMinutes: 60, Phone: "3434502306"}
	assert.NoError(t, repo.Create(ctx, adjacent))
}

func TestIntegrationCreateUnknownCourt(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()
	repo := booking.NewPgxRepository(pool)

	b := &booking.Booking{CourtID: 999, Day: 1, StartHour: 10, DurationMinutes: 60, Phone: "3434502306"}
	err := repo.Create(ctx, b)
	assert.ErrorIs(t, err, booking.ErrCourtNotFound)
}

func TestIntegrationHasConflictWrapsMidnight(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()
	repo := booking.NewPgxRepository(pool)
	courtID := seedCourt(t, pool, "Cancha Norte")

	late := &booking.Booking{CourtID: courtID, Day: 5, StartHour: 23, DurationMinutes: 120, Phone: "3434502306"}
	require.NoError(t, repo.Create(ctx, late))

	// The stored booking wraps into day 6 and must be found from there.
	conflict, err := repo.HasConflict(ctx, courtID, 6, 0, 60, 0)
	require.NoError(t, err)
	assert.True(t, conflict)

	conflict, err = repo.HasConflict(ctx, courtID, 6, 2, 60, 0)
	require.NoError(t, err)
	assert.False(t, conflict)

	// Excluding the booking itself clears the conflict.
	conflict, err = repo.HasConflict(ctx, courtID, 5, 23, 120, late.ID)
	require.NoError(t, err)
	assert.False(t, conflict)
}

func TestIntegrationCourtDeleteCascades(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()
	repo := booking.NewPgxRepository(pool)
	courtRepo := court.NewPgxRepository(pool)
	courtID := seedCourt(t, pool, "Cancha Norte")

	b := &booking.Booking{CourtID: courtID, Day: 1, StartHour: 10, DurationMinutes: 60, Phone: "3434502306"}
	require.NoError(t, repo.Create(ctx, b))

	require.NoError(t, courtRepo.Delete(ctx, courtID))

	_, err := repo.GetByID(ctx, b.ID)
	assert.ErrorIs(t, err, booking.ErrNotFound)
}

func TestIntegrationDeleteByQueryPaged(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()
	repo := booking.NewPgxRepository(pool)
	courtID := seedCourt(t, pool, "Cancha Norte")

	for day := 0; day < 5; day++ {
		b := &booking.Booking{CourtID: courtID, Day: day, StartHour: 10, DurationMinutes: 60, Phone: "3434502306"}
		require.NoError(t, repo.Create(ctx, b))
	}

	// Delete the first two matches only; the page bounds the subselect.
	deleted, err := repo.DeleteByQuery(ctx, booking.Filter{
		Page: &query.PageRange{Offset: 0, Limit: 2},
	})
	require.NoError(t, err)
	require.Len(t, deleted, 2)
	assert.Equal(t, 0, deleted[0].Day)
	assert.Equal(t, 1, deleted[1].Day)

	remaining, err := repo.List(ctx, booking.Filter{})
	require.NoError(t, err)
	assert.Len(t, remaining, 3)
}

func TestIntegrationListFullJoinsCourt(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()
	repo := booking.NewPgxRepository(pool)
	courtID := seedCourt(t, pool, "Cancha Norte")

	b := &booking.Booking{CourtID: courtID, Day: 1, StartHour: 10, DurationMinutes: 60, Phone: "3434502306"}
	require.NoError(t, repo.Create(ctx, b))

	full, err := repo.ListFull(ctx, booking.Filter{CourtID: &courtID})
	require.NoError(t, err)
	require.Len(t, full, 1)
	assert.Equal(t, b.ID, full[0].Booking.ID)
	assert.Equal(t, "Cancha Norte", full[0].Court.Name)
}
