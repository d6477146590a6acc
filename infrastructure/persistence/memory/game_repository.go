package memory

import (
	"context"
	"sync"

	"paperplay-backend/application/ports"
	"paperplay-backend/domain/core/entities"
	pkgerrors "paperplay-backend/pkg/errors"
)

// GameRepository stores processed papers in process memory. Used in
// development and tests; production runs the DynamoDB implementation.
type GameRepository struct {
	mu     sync.RWMutex
	papers map[string]*entities.ProcessedPaper
}

// NewGameRepository creates an empty game store
func NewGameRepository() *GameRepository {
	return &GameRepository{
		papers: make(map[string]*entities.ProcessedPaper),
	}
}

var _ ports.GameRepository = (*GameRepository)(nil)

// Save persists a processed paper under its game ID
func (r *GameRepository) Save(ctx context.Context, paper *entities.ProcessedPaper) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.papers[paper.GameID] = paper
	return nil
}

// GetByID retrieves a processed paper
func (r *GameRepository) GetByID(ctx context.Context, gameID string) (*entities.ProcessedPaper, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	paper, exists := r.papers[gameID]
	if !exists {
		return nil, pkgerrors.NewNotFoundError("game " + gameID)
	}
	return paper, nil
}
