package discord

import (
	"context"

	gamedomain "github.com/KirkDiggler/wolfbot/internal/domain/game"
	gameService "github.com/KirkDiggler/wolfbot/internal/services/game"
	"github.com/bwmarrin/discordgo"
)

func (h *Handler) addPlayerCommands() {
	h.add(moderator(&discordgo.ApplicationCommand{
		Name:        "add-player",
		Description: "Registers a player with the game",
		Options: []*discordgo.ApplicationCommandOption{
			userOpt("player", "Member to register", true),
			stringOpt("name", "Display name used in reports", true),
			channelOpt("mod_channel", "Private moderator channel of the player", true),
		},
	}), h.addPlayer)

	h.add(moderator(&discordgo.ApplicationCommand{
		Name:        "kill-player",
		Description: "Marks a player dead",
		Options: []*discordgo.ApplicationCommandOption{
			userOpt("player", "Player to kill", true),
			boolOpt("revive", "Bring the player back instead"),
		},
	}), h.killPlayer)

	h.add(moderator(&discordgo.ApplicationCommand{
		Name:        "create-party",
		Description: "Creates an empty party bound to a channel",
		Options: []*discordgo.ApplicationCommandOption{
			stringOpt("party_name", "Name of the party", true),
			intOpt("max_size", "Most members allowed, -1 for no limit", true, -1, 100),
			channelOpt("channel", "Party channel", true),
		},
	}), h.createParty)

	h.add(moderator(&discordgo.ApplicationCommand{
		Name:        "add-party-player",
		Description: "Moves a player into a party",
		Options: []*discordgo.ApplicationCommandOption{
			userOpt("player", "Player to move", true),
			channelOpt("party", "Party channel", true),
		},
	}), h.addPartyPlayer)

	h.add(moderator(&discordgo.ApplicationCommand{
		Name:        "remove-party-player",
		Description: "Removes a player from their party",
		Options: []*discordgo.ApplicationCommandOption{
			userOpt("player", "Player to remove", true),
		},
	}), h.removePartyPlayer)

	h.add(&discordgo.ApplicationCommand{
		Name:        "join-party",
		Description: "Join a party",
		Options: []*discordgo.ApplicationCommandOption{
			channelOpt("party", "Party channel", true),
		},
	}, h.joinParty)

	h.add(&discordgo.ApplicationCommand{
		Name:        "leave-party",
		Description: "Leave your current party",
	}, h.leaveParty)
}

func (h *Handler) addPlayer(ctx context.Context, req *Request) (*Response, error) {
	id, err := req.requiredID("player")
	if err != nil {
		return nil, err
	}
	name, err := req.requiredStr("name")
	if err != nil {
		return nil, err
	}
	channel, err := req.requiredID("mod_channel")
	if err != nil {
		return nil, err
	}

	if err := h.service.AddPlayer(ctx, gamedomain.NewPlayer(id, name, channel)); err != nil {
		return nil, err
	}
	return reply("Added player %s to the game!", name), nil
}

func (h *Handler) killPlayer(ctx context.Context, req *Request) (*Response, error) {
	id, err := req.requiredID("player")
	if err != nil {
		return nil, err
	}
	revive := req.boolean("revive", false)

	if err := h.service.KillPlayer(ctx, id, !revive); err != nil {
		return nil, err
	}
	if revive {
		return reply("Player <@%s> has been revived", id), nil
	}
	return reply("Player <@%s> has been killed", id), nil
}

func (h *Handler) createParty(ctx context.Context, req *Request) (*Response, error) {
	name, err := req.requiredStr("party_name")
	if err != nil {
		return nil, err
	}
	channel, err := req.requiredID("channel")
	if err != nil {
		return nil, err
	}

	if err := h.service.CreateParty(ctx, name, req.integer("max_size", -1), channel); err != nil {
		return nil, err
	}
	return reply("Created party %s!", name), nil
}

func (h *Handler) addPartyPlayer(ctx context.Context, req *Request) (*Response, error) {
	id, err := req.requiredID("player")
	if err != nil {
		return nil, err
	}
	channel, err := req.requiredID("party")
	if err != nil {
		return nil, err
	}

	change, err := h.service.AddPartyPlayer(ctx, channel, id)
	if err != nil {
		return nil, err
	}
	return reply("%s", describePartyChange("<@"+id.String()+">", change)), nil
}

func (h *Handler) removePartyPlayer(ctx context.Context, req *Request) (*Response, error) {
	id, err := req.requiredID("player")
	if err != nil {
		return nil, err
	}

	change, err := h.service.RemovePartyPlayer(ctx, id)
	if err != nil {
		return nil, err
	}
	return reply("%s", describePartyChange("<@"+id.String()+">", change)), nil
}

func (h *Handler) joinParty(ctx context.Context, req *Request) (*Response, error) {
	channel, err := req.requiredID("party")
	if err != nil {
		return nil, err
	}

	change, err := h.service.JoinParty(ctx, req.UserID, channel)
	if err != nil {
		return nil, err
	}
	return reply("%s", describePartyChange("You", change)), nil
}

func (h *Handler) leaveParty(ctx context.Context, req *Request) (*Response, error) {
	change, err := h.service.LeaveParty(ctx, req.UserID)
	if err != nil {
		return nil, err
	}
	return reply("%s", describePartyChange("You", change)), nil
}

func describePartyChange(who string, change *gameService.PartyChange) string {
	switch {
	case change.Joined != "" && change.Left != "":
		return who + " left " + change.Left + " and joined " + change.Joined
	case change.Joined != "":
		return who + " joined " + change.Joined
	case change.Left != "":
		return who + " left " + change.Left
	}
	return who + " did not change parties"
}
