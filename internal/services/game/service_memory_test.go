package game_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	gamedomain "github.com/KirkDiggler/wolfbot/internal/domain/game"
	"github.com/KirkDiggler/wolfbot/internal/repositories/games"
	gameService "github.com/KirkDiggler/wolfbot/internal/services/game"
	"github.com/KirkDiggler/wolfbot/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_ConcurrentVotesAllLand(t *testing.T) {
	ctx := context.Background()
	repo := games.NewInMemoryRepository()

	g := testutils.CreateTestGame()
	for i := 4; i <= 20; i++ {
		require.NoError(t, g.AddPlayer(testutils.CreateTestPlayer(gamedomain.ID(fmt.Sprint(i)), fmt.Sprintf("P%d", i))))
	}
	_, err := repo.Save(ctx, g, games.NoVersion)
	require.NoError(t, err)

	svc := gameService.NewService(&gameService.ServiceConfig{Repository: repo})
	_, err = svc.CreateRound(ctx, "50", "51")
	require.NoError(t, err)

	var wg sync.WaitGroup
	errs := make(chan error, len(g.Players))
	for _, p := range g.Players {
		wg.Add(1)
		go func(id gamedomain.ID) {
			defer wg.Done()
			_, err := svc.CastRoundVote(ctx, id, gamedomain.Option("No Vote"))
			errs <- err
		}(p.ID)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		assert.NoError(t, err)
	}

	report, err := svc.RoundReport(ctx, 0)
	require.NoError(t, err)
	require.Len(t, report.Entries, 1)
	assert.Len(t, report.Entries[0].Voters, len(g.Players))
}

func TestService_FailedTransferLeavesStoreUntouched(t *testing.T) {
	ctx := context.Background()
	repo := games.NewInMemoryRepository()
	_, err := repo.Save(ctx, testutils.CreateTestGame(), games.NoVersion)
	require.NoError(t, err)
	_, before, err := repo.Load(ctx)
	require.NoError(t, err)

	svc := gameService.NewService(&gameService.ServiceConfig{Repository: repo})
	err = svc.TransferResource(ctx, &gameService.TransferInput{From: "1", To: "2", Name: "gold", Amount: 50})
	require.Error(t, err)

	_, after, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}
