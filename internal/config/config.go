package config

import (
	"fmt"
	"path/filepath"

	"github.com/KirkDiggler/wolfbot/internal/seed"
	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds all configuration for the application
type Config struct {
	Discord DiscordConfig
	Storage StorageConfig
	Seed    SeedConfig
	Log     LogConfig
	Metrics MetricsConfig
}

// DiscordConfig holds Discord-specific configuration
type DiscordConfig struct {
	Token          string `env:"DISCORD_TOKEN"`
	AppID          string `env:"DISCORD_APP_ID"`
	GuildID        string `env:"GUILD_ID"` // Optional: for guild-specific commands
	VoteChannel    string `env:"VOTE_CHANNEL"`
	RequestChannel string `env:"REQUEST_CHANNEL"` // Moderator requests are posted here
	ModRoleID      string `env:"MOD_ROLE_ID"`     // Mentioned on moderator requests
}

// StorageConfig selects where the game document lives.
// A non-empty RedisURL switches the bot to the redis store.
type StorageConfig struct {
	BasePath string `env:"BASE_PATH" env-default:"."`
	GameFile string `env:"GAME_FILE" env-default:"game.json"`
	RedisURL string `env:"REDIS_URL"`
	GameKey  string `env:"GAME_KEY" env-default:"wolfbot:game"`
}

// SeedConfig names the optional catalog and seed files, relative to BASE_PATH
type SeedConfig struct {
	PlayerFile         string `env:"PLAYER_FILE"`
	PartyFile          string `env:"PARTY_FILE"`
	AttributeDefFile   string `env:"ATTRIBUTE_DEF_FILE"`
	ResourceDefFile    string `env:"RESOURCE_DEF_FILE"`
	ItemTypeDefFile    string `env:"ITEM_TYPE_DEF_FILE"`
	ActionTypeDefFile  string `env:"ACTION_TYPE_DEF_FILE"`
	SkillFile          string `env:"SKILL_FILE"`
	StatusModifierFile string `env:"STATUS_MOD_FILE"`
	ActionFile         string `env:"ACTION_FILE"`
	ItemFile           string `env:"ITEM_FILE"`
}

// LogConfig holds logger settings
type LogConfig struct {
	Level    string `env:"LOG_LEVEL" env-default:"info"`
	Encoding string `env:"LOG_ENCODING" env-default:"console"`
}

// MetricsConfig enables the prometheus endpoint when Addr is set
type MetricsConfig struct {
	Addr string `env:"METRICS_ADDR"`
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("failed to read configuration: %w", err)
	}
	return &cfg, nil
}

// RequireDiscord checks the settings the bot cannot start without
func (c *Config) RequireDiscord() error {
	if c.Discord.Token == "" {
		return fmt.Errorf("DISCORD_TOKEN is required")
	}
	if c.Discord.AppID == "" {
		return fmt.Errorf("DISCORD_APP_ID is required")
	}
	return nil
}

// GamePath is the canonical location of the game document
func (c *Config) GamePath() string {
	return filepath.Join(c.Storage.BasePath, c.Storage.GameFile)
}

// Path resolves a seed file name against BASE_PATH; empty stays empty
func (c *Config) Path(file string) string {
	if file == "" {
		return ""
	}
	if filepath.IsAbs(file) {
		return file
	}
	return filepath.Join(c.Storage.BasePath, file)
}

// SeedPaths resolves every configured seed file against BASE_PATH
func (c *Config) SeedPaths() seed.Paths {
	return seed.Paths{
		Players:         c.Path(c.Seed.PlayerFile),
		Parties:         c.Path(c.Seed.PartyFile),
		AttributeDefs:   c.Path(c.Seed.AttributeDefFile),
		ResourceDefs:    c.Path(c.Seed.ResourceDefFile),
		ItemTypeDefs:    c.Path(c.Seed.ItemTypeDefFile),
		ActionTypeDefs:  c.Path(c.Seed.ActionTypeDefFile),
		Skills:          c.Path(c.Seed.SkillFile),
		StatusModifiers: c.Path(c.Seed.StatusModifierFile),
		Actions:         c.Path(c.Seed.ActionFile),
		Items:           c.Path(c.Seed.ItemFile),
	}
}
