package games

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"github.com/KirkDiggler/wolfbot/internal/domain/game"
	apperr "github.com/KirkDiggler/wolfbot/internal/errors"
)

const indent = "    "

// encodeGame renders the document the way it is stored on disk
func encodeGame(g *game.Game) ([]byte, error) {
	if g == nil {
		return nil, apperr.InvalidArgument("game is required")
	}
	data, err := json.MarshalIndent(g, "", indent)
	if err != nil {
		return nil, apperr.Persistence(err, "failed to encode game document")
	}
	return data, nil
}

// decodeGame parses and validates a stored document
func decodeGame(data []byte) (*game.Game, error) {
	g := &game.Game{}
	if err := json.Unmarshal(data, g); err != nil {
		return nil, apperr.Persistence(err, "failed to parse game document")
	}
	if err := g.Validate(); err != nil {
		return nil, apperr.Persistence(err, "game document is invalid")
	}
	return g, nil
}

func versionOf(data []byte) Version {
	sum := sha256.Sum256(data)
	return Version(hex.EncodeToString(sum[:]))
}

// matches reports whether a save expecting expected may replace current
func matches(expected, current Version) bool {
	return expected == AnyVersion || expected == current
}
