package discord

import (
	"context"
	"strconv"

	"github.com/KirkDiggler/wolfbot/internal/dice"
	gamedomain "github.com/KirkDiggler/wolfbot/internal/domain/game"
	apperr "github.com/KirkDiggler/wolfbot/internal/errors"
	gameService "github.com/KirkDiggler/wolfbot/internal/services/game"
	"github.com/bwmarrin/discordgo"
)

type flagCommand struct {
	name   string
	flag   gamedomain.Flag
	label  string
	states [2]string // off, on
}

var flagCommands = []flagCommand{
	{name: "toggle-game-active-state", flag: gamedomain.FlagActive, label: "Game is", states: [2]string{"inactive", "active"}},
	{name: "party-toggle-lock-state", flag: gamedomain.FlagPartiesLocked, label: "Parties are", states: [2]string{"unlocked", "locked"}},
	{name: "items-toggle-lock-state", flag: gamedomain.FlagItemsLocked, label: "Items are", states: [2]string{"unlocked", "locked"}},
	{name: "voting-toggle-lock-state", flag: gamedomain.FlagVotingLocked, label: "Voting is", states: [2]string{"unlocked", "locked"}},
	{name: "resources-toggle-lock-state", flag: gamedomain.FlagResourcesLocked, label: "Resources are", states: [2]string{"unlocked", "locked"}},
}

func (h *Handler) addGameCommands() {
	h.add(moderator(&discordgo.ApplicationCommand{
		Name:        "initialize-game",
		Description: "Builds a new game from the configured seed files",
		Options: []*discordgo.ApplicationCommandOption{
			boolOpt("overwrite", "Replace the existing game"),
		},
	}), h.initializeGame)

	h.add(moderator(&discordgo.ApplicationCommand{
		Name:        "update-game-actions",
		Description: "Reloads the catalog actions from the actions file",
	}), h.updateGameActions)

	h.add(moderator(&discordgo.ApplicationCommand{
		Name:        "update-game-items",
		Description: "Reloads the catalog actions and items from their files",
	}), h.updateGameItems)

	for _, fc := range flagCommands {
		fc := fc
		h.add(moderator(&discordgo.ApplicationCommand{
			Name:        fc.name,
			Description: "Toggles the " + string(fc.flag) + " switch",
		}), func(ctx context.Context, req *Request) (*Response, error) {
			return h.toggleFlag(ctx, fc)
		})
	}

	h.add(moderator(&discordgo.ApplicationCommand{
		Name:        "delete-persistent-view",
		Description: "Deletes a persistent view and its messages",
		Options: []*discordgo.ApplicationCommandOption{
			stringOpt("view_name", "Name of the view", true),
		},
	}), h.deletePersistentView)

	h.add(&discordgo.ApplicationCommand{
		Name:        "roll-dice",
		Description: "Rolls dice with a specified number of sides with optional modifier",
		Options: []*discordgo.ApplicationCommandOption{
			intOpt("dice_to_roll", "How many dice", true, 1, dice.MaxCount),
			dieFacesOpt(),
			stringOpt("with_modifier", "Roll every die twice", false,
				string(dice.ModeAdvantage), string(dice.ModeDisadvantage)),
		},
	}, h.rollDice)
}

func dieFacesOpt() *discordgo.ApplicationCommandOption {
	opt := &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionInteger,
		Name:        "die_faces",
		Description: "Sides per die",
		Required:    true,
	}
	for _, s := range dice.AllowedSides {
		opt.Choices = append(opt.Choices, &discordgo.ApplicationCommandOptionChoice{
			Name:  "d" + strconv.Itoa(s),
			Value: s,
		})
	}
	return opt
}

func (h *Handler) initializeGame(ctx context.Context, req *Request) (*Response, error) {
	g, err := h.service.InitializeGame(ctx, &gameService.InitializeGameInput{
		Paths:     h.seedPaths,
		Overwrite: req.boolean("overwrite", false),
	})
	if err != nil {
		return nil, err
	}
	return reply("Initialized game with %d players and %d parties!", len(g.Players), len(g.Parties)), nil
}

func (h *Handler) updateGameActions(ctx context.Context, req *Request) (*Response, error) {
	if h.seedPaths.Actions == "" {
		return nil, apperr.InvalidArgument("no actions file is configured")
	}
	err := h.service.RefreshCatalog(ctx, &gameService.RefreshCatalogInput{
		ActionsPath: h.seedPaths.Actions,
	})
	if err != nil {
		return nil, err
	}
	return reply("Updated game actions!"), nil
}

func (h *Handler) updateGameItems(ctx context.Context, req *Request) (*Response, error) {
	if h.seedPaths.Actions == "" || h.seedPaths.Items == "" {
		return nil, apperr.InvalidArgument("actions and items files must be configured")
	}
	err := h.service.RefreshCatalog(ctx, &gameService.RefreshCatalogInput{
		ActionsPath: h.seedPaths.Actions,
		ItemsPath:   h.seedPaths.Items,
	})
	if err != nil {
		return nil, err
	}
	return reply("Updated game items!"), nil
}

func (h *Handler) toggleFlag(ctx context.Context, fc flagCommand) (*Response, error) {
	on, err := h.service.SetFlag(ctx, fc.flag, nil)
	if err != nil {
		return nil, err
	}
	state := fc.states[0]
	if on {
		state = fc.states[1]
	}
	return reply("%s now %s", fc.label, state), nil
}

func (h *Handler) deletePersistentView(ctx context.Context, req *Request) (*Response, error) {
	name, err := req.requiredStr("view_name")
	if err != nil {
		return nil, err
	}

	view, err := h.service.RemovePIView(ctx, name)
	if err != nil {
		return nil, err
	}

	h.deleteViewMessages(*view)
	return reply("Deleted persistent view %s", view.Name), nil
}

func (h *Handler) rollDice(ctx context.Context, req *Request) (*Response, error) {
	mode, err := dice.ParseMode(req.str("with_modifier"))
	if err != nil {
		return nil, err
	}
	result, err := h.roller.Roll(req.integer("dice_to_roll", 1), req.integer("die_faces", 6), mode)
	if err != nil {
		return nil, err
	}
	return announce(result.Header() + "\n" + result.String()), nil
}
