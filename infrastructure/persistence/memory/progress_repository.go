package memory

import (
	"context"
	"sort"
	"sync"

	"paperplay-backend/application/ports"
	"paperplay-backend/domain/core/entities"
	pkgerrors "paperplay-backend/pkg/errors"
)

// ProgressRepository stores user progress in process memory, keyed by
// (userID, gameID).
type ProgressRepository struct {
	mu      sync.Mutex
	records map[string]map[string]*entities.UserProgress // userID -> gameID -> record
}

// NewProgressRepository creates an empty progress store
func NewProgressRepository() *ProgressRepository {
	return &ProgressRepository{
		records: make(map[string]map[string]*entities.UserProgress),
	}
}

var _ ports.ProgressRepository = (*ProgressRepository)(nil)

// Get retrieves a snapshot of one user's progress for one game. The
// copy is taken under the store lock so readers never see a record
// mid-update.
func (r *ProgressRepository) Get(ctx context.Context, userID, gameID string) (*entities.UserProgress, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if byGame, ok := r.records[userID]; ok {
		if record, ok := byGame[gameID]; ok {
			return record.Clone(), nil
		}
	}
	return nil, pkgerrors.NewNotFoundError("progress for user " + userID + " game " + gameID)
}

// ListByUser retrieves snapshots of all progress records for a user,
// ordered by game ID for stable output.
func (r *ProgressRepository) ListByUser(ctx context.Context, userID string) ([]*entities.UserProgress, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	byGame := r.records[userID]
	records := make([]*entities.UserProgress, 0, len(byGame))
	for _, record := range byGame {
		records = append(records, record.Clone())
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].GameID < records[j].GameID
	})
	return records, nil
}

// Apply updates the user's record under the store lock, creating it
// first when absent.
func (r *ProgressRepository) Apply(ctx context.Context, userID, gameID string, create func() *entities.UserProgress, fn func(*entities.UserProgress)) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	byGame, ok := r.records[userID]
	if !ok {
		byGame = make(map[string]*entities.UserProgress)
		r.records[userID] = byGame
	}

	record, ok := byGame[gameID]
	if !ok {
		record = create()
		byGame[gameID] = record
	}

	fn(record)
	return nil
}
