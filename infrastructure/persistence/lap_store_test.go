package persistence_test

import (
	"context"
	"testing"
	"time"

	"github.com/helixml/xact/domain/lap"
	"github.com/helixml/xact/domain/repository"
	"github.com/helixml/xact/domain/timespan"
	"github.com/helixml/xact/infrastructure/persistence"
	"github.com/helixml/xact/internal/database"
	"github.com/helixml/xact/internal/testdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLapStore_SaveAndFind(t *testing.T) {
	ctx := context.Background()
	store := persistence.NewLapStore(testdb.New(t))

	saved, err := store.Save(ctx, lap.New("warmup", timespan.FromTicks(timespan.TicksPerMinute)))
	require.NoError(t, err)
	assert.NotZero(t, saved.ID())

	got, err := store.FindOne(ctx, repository.WithID(saved.ID()))
	require.NoError(t, err)
	assert.Equal(t, "warmup", got.Label())
	assert.Equal(t, timespan.TicksPerMinute, got.Span().Ticks())
	assert.WithinDuration(t, saved.CreatedAt(), got.CreatedAt(), time.Second)
}

func TestLapStore_TicksAreLossless(t *testing.T) {
	ctx := context.Background()
	store := persistence.NewLapStore(testdb.New(t))

	for _, span := range []timespan.Timespan{timespan.MaxValue, timespan.MinValue, timespan.FromTicks(-7)} {
		saved, err := store.Save(ctx, lap.New("edge", span))
		require.NoError(t, err)

		got, err := store.FindOne(ctx, repository.WithID(saved.ID()))
		require.NoError(t, err)
		assert.Equal(t, span, got.Span())
	}
}

func TestLapStore_Update(t *testing.T) {
	ctx := context.Background()
	store := persistence.NewLapStore(testdb.New(t))

	saved, err := store.Save(ctx, lap.New("a", timespan.FromTicks(1)))
	require.NoError(t, err)

	updated := lap.Reconstruct(saved.ID(), "b", timespan.FromTicks(2), saved.CreatedAt())
	_, err = store.Save(ctx, updated)
	require.NoError(t, err)

	got, err := store.FindOne(ctx, repository.WithID(saved.ID()))
	require.NoError(t, err)
	assert.Equal(t, "b", got.Label())
	assert.Equal(t, int64(2), got.Span().Ticks())

	n, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestLapStore_Options(t *testing.T) {
	ctx := context.Background()
	store := persistence.NewLapStore(testdb.New(t))

	for i, label := range []string{"run-1", "run-2", "swim"} {
		_, err := store.Save(ctx, lap.New(label, timespan.FromTicks(int64(i+1)*timespan.TicksPerSecond)))
		require.NoError(t, err)
	}

	runs, err := store.Find(ctx, lap.WithLabelLike("run%"))
	require.NoError(t, err)
	assert.Len(t, runs, 2)

	long, err := store.Find(ctx, lap.WithMinSpan(timespan.FromTicks(2*timespan.TicksPerSecond)), repository.WithOrderAsc("id"))
	require.NoError(t, err)
	require.Len(t, long, 2)
	assert.Equal(t, "run-2", long[0].Label())
	assert.Equal(t, "swim", long[1].Label())

	short, err := store.Find(ctx, lap.WithMaxSpan(timespan.FromTicks(timespan.TicksPerSecond)))
	require.NoError(t, err)
	require.Len(t, short, 1)
	assert.Equal(t, "run-1", short[0].Label())

	exists, err := store.Exists(ctx, lap.WithLabel("swim"))
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestLapStore_Delete(t *testing.T) {
	ctx := context.Background()
	store := persistence.NewLapStore(testdb.New(t))

	saved, err := store.Save(ctx, lap.New("gone", timespan.Zero))
	require.NoError(t, err)
	require.NoError(t, store.Delete(ctx, saved))

	_, err = store.FindOne(ctx, repository.WithID(saved.ID()))
	assert.ErrorIs(t, err, database.ErrNotFound)

	_, err = store.Save(ctx, lap.New("x", timespan.Zero))
	require.NoError(t, err)
	require.NoError(t, store.DeleteBy(ctx, lap.WithLabel("x")))
	n, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestLapStore_SaveAll(t *testing.T) {
	ctx := context.Background()
	store := persistence.NewLapStore(testdb.New(t))

	saved, err := store.SaveAll(ctx, []lap.Lap{
		lap.New("a", timespan.FromTicks(1)),
		lap.New("b", timespan.FromTicks(2)),
	})
	require.NoError(t, err)
	require.Len(t, saved, 2)
	assert.NotEqual(t, saved[0].ID(), saved[1].ID())

	n, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

func TestAutoMigrate_Idempotent(t *testing.T) {
	db := testdb.New(t)
	require.NoError(t, persistence.AutoMigrate(db))
	assert.True(t, db.GORM().Migrator().HasTable(&persistence.LapModel{}))
}
