package games

import (
	"context"
	"sync"

	"github.com/KirkDiggler/wolfbot/internal/domain/game"
	apperr "github.com/KirkDiggler/wolfbot/internal/errors"
)

// inMemoryRepository keeps the encoded document so callers never share state
type inMemoryRepository struct {
	mu   sync.RWMutex
	data []byte
}

// NewInMemoryRepository creates an empty in-memory game repository
func NewInMemoryRepository() Repository {
	return &inMemoryRepository{}
}

func (r *inMemoryRepository) Load(ctx context.Context) (*game.Game, Version, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.data == nil {
		return nil, NoVersion, apperr.Persistence(nil, "no game stored")
	}
	g, err := decodeGame(r.data)
	if err != nil {
		return nil, NoVersion, err
	}
	return g, versionOf(r.data), nil
}

func (r *inMemoryRepository) Save(ctx context.Context, g *game.Game, expected Version) (Version, error) {
	data, err := encodeGame(g)
	if err != nil {
		return NoVersion, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	current := NoVersion
	if r.data != nil {
		current = versionOf(r.data)
	}
	if !matches(expected, current) {
		return NoVersion, apperr.ConcurrentModificationf("game changed since it was loaded")
	}
	r.data = data
	return versionOf(data), nil
}

func (r *inMemoryRepository) Exists(ctx context.Context) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.data != nil, nil
}
