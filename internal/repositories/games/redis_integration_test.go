//go:build integration
// +build integration

package games_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/KirkDiggler/wolfbot/internal/domain/game"
	apperr "github.com/KirkDiggler/wolfbot/internal/errors"
	"github.com/KirkDiggler/wolfbot/internal/repositories/games"
	"github.com/KirkDiggler/wolfbot/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisRepository_Integration(t *testing.T) {
	client := testutils.StartRedisContainer(t)
	repo := games.NewRedisRepository(&games.RedisRepoConfig{Client: client})
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	exists, err := repo.Exists(ctx)
	require.NoError(t, err)
	assert.False(t, exists)

	g := game.New()
	require.NoError(t, g.AddPlayer(game.NewPlayer("1", "P1", "100")))

	first, err := repo.Save(ctx, g, games.NoVersion)
	require.NoError(t, err)

	loaded, version, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, version)
	assert.Equal(t, g, loaded)

	t.Run("stale version is rejected", func(t *testing.T) {
		_, err := repo.Save(ctx, g, games.NoVersion)
		require.Error(t, err)
		assert.True(t, apperr.IsConcurrentModification(err))
	})

	t.Run("only one of two concurrent writers wins", func(t *testing.T) {
		_, base, err := repo.Load(ctx)
		require.NoError(t, err)

		var wg sync.WaitGroup
		errs := make([]error, 2)
		for i := range errs {
			i := i
			wg.Add(1)
			go func() {
				defer wg.Done()
				next := game.New()
				next.IsActive = i == 0
				_, errs[i] = repo.Save(ctx, next, base)
			}()
		}
		wg.Wait()

		failures := 0
		for _, err := range errs {
			if err != nil {
				assert.True(t, apperr.IsConcurrentModification(err))
				failures++
			}
		}
		assert.Equal(t, 1, failures)
	})
}
