package discord

import (
	"context"

	gamedomain "github.com/KirkDiggler/wolfbot/internal/domain/game"
	apperr "github.com/KirkDiggler/wolfbot/internal/errors"
	gameService "github.com/KirkDiggler/wolfbot/internal/services/game"
	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

// NoVoteText is the round option for an explicit abstention
const NoVoteText = "No Vote"

func (h *Handler) addVotingCommands() {
	h.add(moderator(&discordgo.ApplicationCommand{
		Name:        "round-create",
		Description: "Creates and enables the current round, if possible",
		Options: []*discordgo.ApplicationCommandOption{
			channelOpt("channel", "Channel for the vote report, defaults to the vote channel", false),
		},
	}), h.roundCreate)

	h.add(moderator(&discordgo.ApplicationCommand{
		Name:        "round-end",
		Description: "Ends the current round, if possible",
	}), h.roundEnd)

	h.add(&discordgo.ApplicationCommand{
		Name:        "round-vote",
		Description: "Votes for a particular player",
		Options: []*discordgo.ApplicationCommandOption{
			userOpt("player", "Player to vote for", false),
			stringOpt("choice", "Abstain or withdraw your vote", false, NoVoteText, gamedomain.UnvoteText),
		},
	}, h.roundVote)

	h.add(&discordgo.ApplicationCommand{
		Name:        "round-vote-report",
		Description: "Shows the vote totals of a round",
		Options: []*discordgo.ApplicationCommandOption{
			intOpt("round", "Round number, defaults to the latest", false, 1, 1000),
		},
	}, h.roundVoteReport)

	h.add(moderator(&discordgo.ApplicationCommand{
		Name:        "dilemma-create",
		Description: "Creates a dilemma for the current round, if possible",
		Options: []*discordgo.ApplicationCommandOption{
			stringOpt("dilemma_name", "Name of the dilemma", true),
			channelOpt("dilemma_channel", "Channel for the vote report", true),
		},
	}), h.dilemmaCreate)

	h.add(moderator(&discordgo.ApplicationCommand{
		Name:        "dilemma-toggle-active-state",
		Description: "Opens or pauses voting on a dilemma",
		Options: []*discordgo.ApplicationCommandOption{
			stringOpt("dilemma_name", "Name of the dilemma", true),
			boolOpt("active", "Whether votes are accepted"),
		},
	}), h.dilemmaSetActive)

	h.add(moderator(&discordgo.ApplicationCommand{
		Name:        "dilemma-close-all",
		Description: "Permanently closes every dilemma of the latest round",
	}), h.dilemmaCloseAll)

	h.add(moderator(&discordgo.ApplicationCommand{
		Name:        "dilemma-mass-update-player",
		Description: "Adds or removes every mentioned player",
		Options: []*discordgo.ApplicationCommandOption{
			stringOpt("dilemma_name", "Name of the dilemma", true),
			stringOpt("players", "Mentions or ids of the players", true),
			addRemoveOpt("player_action"),
		},
	}), h.dilemmaMassUpdatePlayer)

	h.add(moderator(&discordgo.ApplicationCommand{
		Name:        "dilemma-update-player",
		Description: "Adds or removes a player from a dilemma",
		Options: []*discordgo.ApplicationCommandOption{
			stringOpt("dilemma_name", "Name of the dilemma", true),
			userOpt("player", "Player to add or remove", true),
			addRemoveOpt("player_action"),
		},
	}), h.dilemmaUpdatePlayer)

	h.add(moderator(&discordgo.ApplicationCommand{
		Name:        "dilemma-update-choices",
		Description: "Adds or removes a choice from a dilemma",
		Options: []*discordgo.ApplicationCommandOption{
			stringOpt("dilemma_name", "Name of the dilemma", true),
			stringOpt("choice", "Choice to add or remove", true),
			addRemoveOpt("choice_action"),
		},
	}), h.dilemmaUpdateChoices)

	h.add(&discordgo.ApplicationCommand{
		Name:        "dilemma-vote",
		Description: "Votes on a dilemma",
		Options: []*discordgo.ApplicationCommandOption{
			stringOpt("dilemma_name", "Name of the dilemma", true),
			stringOpt("choice", "Your choice, or Unvote", true),
		},
	}, h.dilemmaVote)

	h.add(&discordgo.ApplicationCommand{
		Name:        "dilemma-vote-report",
		Description: "Shows the vote totals of a dilemma",
		Options: []*discordgo.ApplicationCommandOption{
			stringOpt("dilemma_name", "Name of the dilemma", true),
		},
	}, h.dilemmaVoteReport)
}

func (h *Handler) roundCreate(ctx context.Context, req *Request) (*Response, error) {
	channel := req.id("channel")
	if channel.IsZero() {
		channel = h.voteChannel
	}
	if channel.IsZero() {
		return nil, apperr.InvalidArgument("no report channel given and no vote channel configured")
	}

	message, err := h.postPlaceholder(channel, gameService.ReportRound)
	if err != nil {
		return nil, err
	}

	number, err := h.service.CreateRound(ctx, channel, message)
	if err != nil {
		h.discardMessage(channel, message)
		return nil, err
	}

	if report, err := h.service.RoundReport(ctx, number); err == nil {
		h.refreshReport(report)
	}
	return reply("Created round %d!", number), nil
}

func (h *Handler) roundEnd(ctx context.Context, req *Request) (*Response, error) {
	number, err := h.service.EndRound(ctx)
	if err != nil {
		return nil, err
	}
	return reply("Ended round %d!", number), nil
}

func (h *Handler) roundVote(ctx context.Context, req *Request) (*Response, error) {
	target := req.id("player")
	option := req.str("choice")

	var choice gamedomain.Choice
	switch {
	case !target.IsZero() && option != "":
		return nil, apperr.InvalidArgument("pick either a player or a choice")
	case !target.IsZero():
		choice = gamedomain.PlayerTarget(target)
	case option != "":
		choice = gamedomain.ParseOption(option)
	default:
		return nil, apperr.InvalidArgument("pick a player or a choice")
	}

	report, err := h.service.CastRoundVote(ctx, req.UserID, choice)
	if err != nil {
		return nil, err
	}
	h.refreshReport(report)

	return voteReply(choice), nil
}

func (h *Handler) roundVoteReport(ctx context.Context, req *Request) (*Response, error) {
	report, err := h.service.RoundReport(ctx, req.integer("round", 0))
	if err != nil {
		return nil, err
	}
	return announce(report.String()), nil
}

func (h *Handler) dilemmaCreate(ctx context.Context, req *Request) (*Response, error) {
	name, err := req.requiredStr("dilemma_name")
	if err != nil {
		return nil, err
	}
	channel, err := req.requiredID("dilemma_channel")
	if err != nil {
		return nil, err
	}

	message, err := h.postPlaceholder(channel, gameService.ReportDilemma)
	if err != nil {
		return nil, err
	}

	if err := h.service.CreateDilemma(ctx, name, channel, message); err != nil {
		h.discardMessage(channel, message)
		return nil, err
	}

	if report, err := h.service.DilemmaReport(ctx, name); err == nil {
		h.refreshReport(report)
	}
	return reply("Created dilemma %s!", name), nil
}

func (h *Handler) dilemmaSetActive(ctx context.Context, req *Request) (*Response, error) {
	name, err := req.requiredStr("dilemma_name")
	if err != nil {
		return nil, err
	}
	active := req.boolean("active", true)

	if err := h.service.SetDilemmaActive(ctx, name, active); err != nil {
		return nil, err
	}
	if active {
		return reply("Dilemma %s is now open for voting", name), nil
	}
	return reply("Dilemma %s is now paused", name), nil
}

func (h *Handler) dilemmaCloseAll(ctx context.Context, req *Request) (*Response, error) {
	closed, err := h.service.CloseDilemmas(ctx)
	if err != nil {
		return nil, err
	}
	return reply("Closed %d dilemma(s)", closed), nil
}

func (h *Handler) dilemmaMassUpdatePlayer(ctx context.Context, req *Request) (*Response, error) {
	name, err := req.requiredStr("dilemma_name")
	if err != nil {
		return nil, err
	}
	add, err := req.adding("player_action")
	if err != nil {
		return nil, err
	}
	ids := mentionedIDs(req.str("players"))
	if len(ids) == 0 {
		return nil, apperr.InvalidArgument("no players mentioned")
	}

	changed, err := h.service.MassUpdateDilemmaPlayers(ctx, name, ids, add)
	if err != nil {
		return nil, err
	}
	if add {
		return reply("Added %d player(s) to dilemma %s", changed, name), nil
	}
	return reply("Removed %d player(s) from dilemma %s", changed, name), nil
}

func (h *Handler) dilemmaUpdatePlayer(ctx context.Context, req *Request) (*Response, error) {
	name, err := req.requiredStr("dilemma_name")
	if err != nil {
		return nil, err
	}
	id, err := req.requiredID("player")
	if err != nil {
		return nil, err
	}
	add, err := req.adding("player_action")
	if err != nil {
		return nil, err
	}

	if err := h.service.UpdateDilemmaPlayer(ctx, name, id, add); err != nil {
		return nil, err
	}
	if add {
		return reply("Added <@%s> to dilemma %s", id, name), nil
	}
	return reply("Removed <@%s> from dilemma %s", id, name), nil
}

func (h *Handler) dilemmaUpdateChoices(ctx context.Context, req *Request) (*Response, error) {
	name, err := req.requiredStr("dilemma_name")
	if err != nil {
		return nil, err
	}
	choice, err := req.requiredStr("choice")
	if err != nil {
		return nil, err
	}
	add, err := req.adding("choice_action")
	if err != nil {
		return nil, err
	}

	if err := h.service.UpdateDilemmaChoice(ctx, name, choice, add); err != nil {
		return nil, err
	}
	if add {
		return reply("Added choice %s to dilemma %s", choice, name), nil
	}
	return reply("Removed choice %s from dilemma %s", choice, name), nil
}

func (h *Handler) dilemmaVote(ctx context.Context, req *Request) (*Response, error) {
	name, err := req.requiredStr("dilemma_name")
	if err != nil {
		return nil, err
	}
	text, err := req.requiredStr("choice")
	if err != nil {
		return nil, err
	}

	choice := gamedomain.ParseOption(text)
	report, err := h.service.CastDilemmaVote(ctx, name, req.UserID, choice)
	if err != nil {
		return nil, err
	}
	h.refreshReport(report)

	return voteReply(choice), nil
}

func (h *Handler) dilemmaVoteReport(ctx context.Context, req *Request) (*Response, error) {
	name, err := req.requiredStr("dilemma_name")
	if err != nil {
		return nil, err
	}
	report, err := h.service.DilemmaReport(ctx, name)
	if err != nil {
		return nil, err
	}
	return announce(report.String()), nil
}

func voteReply(choice gamedomain.Choice) *Response {
	switch choice.Kind {
	case gamedomain.ChoiceUnvote:
		return reply("Removed your vote")
	case gamedomain.ChoicePlayer:
		return reply("Voted for <@%s>", choice.Value)
	}
	return reply("Voted for %s", choice.Value)
}

// postPlaceholder posts the message a report is later edited into
func (h *Handler) postPlaceholder(channel gamedomain.ID, kind string) (gamedomain.ID, error) {
	msg, err := h.messenger.ChannelMessageSend(channel.String(), "Vote Totals for "+kind+": pending")
	if err != nil {
		return gamedomain.NoID, apperr.WrapWithCode(err, apperr.CodeInternal, "failed to post report message")
	}
	return gamedomain.ID(msg.ID), nil
}

func (h *Handler) discardMessage(channel, message gamedomain.ID) {
	if err := h.messenger.ChannelMessageDelete(channel.String(), message.String()); err != nil {
		h.logger.Warn("failed to delete report message",
			zap.String("channel_id", channel.String()),
			zap.String("message_id", message.String()),
			zap.Error(err))
	}
}

// refreshReport rewrites the pinned report; failures only cost freshness
func (h *Handler) refreshReport(report *gameService.VoteReport) {
	if report == nil || report.ChannelID.IsZero() || report.MessageID.IsZero() {
		return
	}
	_, err := h.messenger.ChannelMessageEdit(report.ChannelID.String(), report.MessageID.String(), report.String())
	if err != nil {
		h.logger.Warn("failed to update vote report",
			zap.String("kind", report.Kind),
			zap.String("name", report.Name),
			zap.Error(err))
	}
}
