// Package games persists the game document. Every store versions the
// document so a save can detect that another writer got there first.
package games

//go:generate mockgen -destination=mock/mock.go -package=mockgames -source=interface.go

import (
	"context"
	"time"

	"github.com/KirkDiggler/wolfbot/internal/domain/game"
)

// Version identifies the stored bytes of a game document
type Version string

const (
	// NoVersion expects no document to be stored yet
	NoVersion Version = ""

	// AnyVersion overwrites whatever is stored
	AnyVersion Version = "*"
)

// Repository loads and saves the single game document
type Repository interface {
	// Load reads and validates the stored game. A missing, malformed or
	// invalid document is a persistence error.
	Load(ctx context.Context) (*game.Game, Version, error)

	// Save replaces the stored game if it is still at expected and
	// returns the new version. A mismatch is a concurrent modification.
	Save(ctx context.Context, g *game.Game, expected Version) (Version, error)

	// Exists reports whether a game document is stored
	Exists(ctx context.Context) (bool, error)
}

// TimeProvider supplies the current time
type TimeProvider interface {
	Now() time.Time
}

type systemTime struct{}

func (systemTime) Now() time.Time {
	return time.Now()
}
