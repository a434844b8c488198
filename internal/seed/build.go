package seed

import (
	"context"

	"github.com/KirkDiggler/wolfbot/internal/domain/catalog"
	"github.com/KirkDiggler/wolfbot/internal/domain/game"
	apperr "github.com/KirkDiggler/wolfbot/internal/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Paths names the seed files a game is built from; empty paths are skipped
type Paths struct {
	Players         string
	Parties         string
	AttributeDefs   string
	ResourceDefs    string
	ItemTypeDefs    string
	ActionTypeDefs  string
	Skills          string
	StatusModifiers string
	Actions         string
	Items           string
}

// BuildGame reads every seed file and returns a new inactive game with all
// locks engaged. Rows referencing unknown players, parties or catalog
// entries are logged and skipped.
func (l *Loader) BuildGame(ctx context.Context, paths Paths) (*game.Game, error) {
	cat := &Catalog{}

	g, ctx := errgroup.WithContext(ctx)
	read := func(path string, fn func(string) error) {
		if path == "" {
			return
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return fn(path)
		})
	}

	read(paths.AttributeDefs, func(p string) (err error) {
		cat.AttributeDefs, err = l.ReadAttributeDefinitionsFile(p)
		return err
	})
	read(paths.ResourceDefs, func(p string) (err error) {
		cat.ResourceDefs, err = l.ReadResourceDefinitionsFile(p)
		return err
	})
	read(paths.ItemTypeDefs, func(p string) (err error) {
		cat.ItemTypeDefs, err = l.ReadItemTypeDefinitionsFile(p)
		return err
	})
	read(paths.ActionTypeDefs, func(p string) (err error) {
		cat.ActionTypeDefs, err = l.ReadActionTypeDefinitionsFile(p)
		return err
	})
	read(paths.Skills, func(p string) (err error) {
		cat.Skills, err = l.ReadSkillsFile(p)
		return err
	})
	read(paths.StatusModifiers, func(p string) (err error) {
		cat.StatusModifiers, err = l.ReadStatusModifiersFile(p)
		return err
	})
	read(paths.Actions, func(p string) (err error) {
		cat.Actions, err = l.ReadActionsFile(p)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, apperr.Wrap(err, "failed to read catalog files")
	}

	// items bind actions, players bind everything
	if paths.Items != "" {
		items, err := l.ReadItemsFile(paths.Items, MapActions(cat.Actions))
		if err != nil {
			return nil, apperr.Wrap(err, "failed to read items file")
		}
		cat.Items = items
	}

	out := game.New()
	if cat.ActionTypeDefs != nil {
		out.ActionTypeDefs = cat.ActionTypeDefs
	}
	if cat.ItemTypeDefs != nil {
		out.ItemTypeDefs = cat.ItemTypeDefs
	}
	if cat.ResourceDefs != nil {
		out.ResourceDefs = cat.ResourceDefs
	}
	if cat.AttributeDefs != nil {
		out.AttributeDefs = cat.AttributeDefs
	}
	if cat.Skills != nil {
		out.Skills = cat.Skills
	}
	if cat.StatusModifiers != nil {
		out.StatusModifiers = cat.StatusModifiers
	}
	actions := uniqueBy(l, "action", cat.Actions, func(a catalog.Action) string { return a.Name })
	if err := out.ReplaceCatalogActions(actions); err != nil {
		return nil, err
	}
	items := uniqueBy(l, "item", cat.Items, func(i catalog.Item) string { return i.Name })
	if err := out.ReplaceCatalogItems(items); err != nil {
		return nil, err
	}

	if paths.Players != "" {
		players, err := l.ReadPlayersFile(paths.Players, cat)
		if err != nil {
			return nil, apperr.Wrap(err, "failed to read players file")
		}
		for _, p := range players {
			if err := out.AddPlayer(p); err != nil {
				l.logger.Warn("skipping player", zap.String("player_id", p.ID.String()), zap.Error(err))
			}
		}
	}

	if paths.Parties != "" {
		parties, err := l.ReadPartiesFile(paths.Parties)
		if err != nil {
			return nil, apperr.Wrap(err, "failed to read parties file")
		}
		for _, party := range parties {
			if err := out.CreateParty(party.Name, party.MaxSize, party.ChannelID); err != nil {
				l.logger.Warn("skipping party", zap.String("party", party.Name), zap.Error(err))
				continue
			}
			for _, id := range party.PlayerIDs {
				if _, err := out.AddPartyPlayer(party.ChannelID, id); err != nil {
					l.logger.Warn("skipping party member",
						zap.String("party", party.Name),
						zap.String("player_id", id.String()),
						zap.Error(err))
				}
			}
		}
	}

	return out, nil
}
