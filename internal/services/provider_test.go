package services_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/wolfbot/internal/config"
	"github.com/KirkDiggler/wolfbot/internal/services"
)

func TestNewProvider_DefaultsToInMemoryRepository(t *testing.T) {
	provider := services.NewProvider(&services.ProviderConfig{})
	require.NotNil(t, provider.GameService)
	require.NotNil(t, provider.Loader)

	_, err := provider.GameService.GetGame(context.Background())
	assert.Error(t, err, "nothing is stored until a game is initialized")
}

func TestOpenStorage(t *testing.T) {
	dir := t.TempDir()
	newConfig := func(redisURL string) *config.Config {
		return &config.Config{Storage: config.StorageConfig{
			BasePath: dir,
			GameFile: "game.json",
			RedisURL: redisURL,
			GameKey:  "wolfbot:game",
		}}
	}

	tests := []struct {
		name     string
		redisURL string
	}{
		{name: "no redis url", redisURL: ""},
		{name: "malformed redis url", redisURL: "not a url"},
		{name: "unreachable redis", redisURL: "redis://127.0.0.1:1/0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			storage := services.OpenStorage(context.Background(), newConfig(tt.redisURL), nil)
			defer func() { assert.NoError(t, storage.Close()) }()

			assert.Equal(t, "file", storage.Backend)
			exists, err := storage.Repository.Exists(context.Background())
			require.NoError(t, err)
			assert.False(t, exists)
			assert.NoFileExists(t, filepath.Join(dir, "game.json"))
		})
	}
}
