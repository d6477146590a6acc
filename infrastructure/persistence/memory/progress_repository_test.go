package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"paperplay-backend/domain/core/entities"
	pkgerrors "paperplay-backend/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgressRepository_ApplyCreatesThenMutates(t *testing.T) {
	// Arrange
	ctx := context.Background()
	repo := NewProgressRepository()
	create := func() *entities.UserProgress {
		return entities.NewUserProgress("user-1", "game-1", "quiz", time.Now())
	}

	// Act: first apply creates, second mutates the same record
	err := repo.Apply(ctx, "user-1", "game-1", create, func(p *entities.UserProgress) {
		p.TotalPoints += 100
	})
	require.NoError(t, err)
	err = repo.Apply(ctx, "user-1", "game-1", create, func(p *entities.UserProgress) {
		p.TotalPoints += 50
	})
	require.NoError(t, err)

	// Assert
	record, err := repo.Get(ctx, "user-1", "game-1")
	require.NoError(t, err)
	assert.Equal(t, 150, record.TotalPoints)
}

func TestProgressRepository_GetMissing(t *testing.T) {
	ctx := context.Background()
	repo := NewProgressRepository()

	_, err := repo.Get(ctx, "user-1", "game-1")

	assert.True(t, pkgerrors.IsNotFound(err))
}

func TestProgressRepository_ListByUserSortedByGameID(t *testing.T) {
	// Arrange
	ctx := context.Background()
	repo := NewProgressRepository()
	for _, gameID := range []string{"game-c", "game-a", "game-b"} {
		id := gameID
		err := repo.Apply(ctx, "user-1", id, func() *entities.UserProgress {
			return entities.NewUserProgress("user-1", id, "quiz", time.Now())
		}, func(p *entities.UserProgress) {})
		require.NoError(t, err)
	}

	// Act
	records, err := repo.ListByUser(ctx, "user-1")

	// Assert
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "game-a", records[0].GameID)
	assert.Equal(t, "game-b", records[1].GameID)
	assert.Equal(t, "game-c", records[2].GameID)
}

func TestProgressRepository_ListByUserEmptyForUnknownUser(t *testing.T) {
	ctx := context.Background()
	repo := NewProgressRepository()

	records, err := repo.ListByUser(ctx, "nobody")

	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestProgressRepository_RecordsAreScopedPerUser(t *testing.T) {
	ctx := context.Background()
	repo := NewProgressRepository()
	err := repo.Apply(ctx, "user-1", "game-1", func() *entities.UserProgress {
		return entities.NewUserProgress("user-1", "game-1", "quiz", time.Now())
	}, func(p *entities.UserProgress) {})
	require.NoError(t, err)

	_, err = repo.Get(ctx, "user-2", "game-1")

	assert.True(t, pkgerrors.IsNotFound(err))
}

func TestProgressRepository_GetReturnsSnapshot(t *testing.T) {
	// Arrange
	ctx := context.Background()
	repo := NewProgressRepository()
	create := func() *entities.UserProgress {
		return entities.NewUserProgress("user-1", "game-1", "quiz", time.Now())
	}
	err := repo.Apply(ctx, "user-1", "game-1", create, func(p *entities.UserProgress) {
		p.TotalPoints = 100
		p.StagesCompleted = append(p.StagesCompleted, "task-1")
	})
	require.NoError(t, err)

	// Act: read a snapshot, then keep updating the stored record
	snapshot, err := repo.Get(ctx, "user-1", "game-1")
	require.NoError(t, err)
	err = repo.Apply(ctx, "user-1", "game-1", create, func(p *entities.UserProgress) {
		p.TotalPoints = 500
		p.StagesCompleted = append(p.StagesCompleted, "task-2")
	})
	require.NoError(t, err)

	// Assert: the snapshot is unaffected by the later update
	assert.Equal(t, 100, snapshot.TotalPoints)
	assert.Equal(t, []string{"task-1"}, snapshot.StagesCompleted)

	listed, err := repo.ListByUser(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, 500, listed[0].TotalPoints)
}

func TestProgressRepository_ConcurrentReadersAndWriters(t *testing.T) {
	// Arrange
	ctx := context.Background()
	repo := NewProgressRepository()
	create := func() *entities.UserProgress {
		return entities.NewUserProgress("user-1", "game-1", "quiz", time.Now())
	}
	require.NoError(t, repo.Apply(ctx, "user-1", "game-1", create, func(p *entities.UserProgress) {}))

	// Act
	const rounds = 8
	var wg sync.WaitGroup
	errs := make(chan error, rounds*2)
	for i := 0; i < rounds; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			errs <- repo.Apply(ctx, "user-1", "game-1", create, func(p *entities.UserProgress) {
				p.TotalPoints += 10
				p.Achievements = append(p.Achievements, entities.Achievement{ID: "explorer"})
			})
		}()
		go func() {
			defer wg.Done()
			records, err := repo.ListByUser(ctx, "user-1")
			if err != nil {
				errs <- err
				return
			}
			for _, record := range records {
				_ = len(record.Achievements)
			}
			errs <- nil
		}()
	}
	wg.Wait()
	close(errs)

	// Assert
	for err := range errs {
		require.NoError(t, err)
	}
	record, err := repo.Get(ctx, "user-1", "game-1")
	require.NoError(t, err)
	assert.Equal(t, rounds*10, record.TotalPoints)
}
