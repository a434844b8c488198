package discord

import (
	"context"
	"fmt"
	"strings"

	gamedomain "github.com/KirkDiggler/wolfbot/internal/domain/game"
	apperr "github.com/KirkDiggler/wolfbot/internal/errors"
	gameService "github.com/KirkDiggler/wolfbot/internal/services/game"
	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

func (h *Handler) addResourceCommands() {
	h.add(moderator(&discordgo.ApplicationCommand{
		Name:        "resource-trigger-daily-incomes",
		Description: "Runs one income tick for every player",
	}), h.triggerDailyIncomes)

	h.add(moderator(&discordgo.ApplicationCommand{
		Name:        "resource-player-add",
		Description: "Adds an amount of a resource to a player",
		Options: []*discordgo.ApplicationCommandOption{
			userOpt("player", "Player to change", true),
			stringOpt("resource_type", "Resource name", true),
			intOpt("resource_amt", "Amount to add", true, 1, 100),
		},
	}), func(ctx context.Context, req *Request) (*Response, error) {
		return h.modifyResource(ctx, req, 1)
	})

	h.add(moderator(&discordgo.ApplicationCommand{
		Name:        "resource-player-remove",
		Description: "Removes an amount of a resource from a player",
		Options: []*discordgo.ApplicationCommandOption{
			userOpt("player", "Player to change", true),
			stringOpt("resource_type", "Resource name", true),
			intOpt("resource_amt", "Amount to remove", true, 1, 100),
		},
	}), func(ctx context.Context, req *Request) (*Response, error) {
		return h.modifyResource(ctx, req, -1)
	})

	h.add(moderator(&discordgo.ApplicationCommand{
		Name:        "resource-player-transfer",
		Description: "Transfers an amount of resources from one player to another player",
		Options: []*discordgo.ApplicationCommandOption{
			userOpt("player", "Sending player", true),
			userOpt("recipient_player", "Receiving player", true),
			stringOpt("resource_type", "Resource name", true),
			intOpt("resource_amt", "Amount to move", true, 1, 100),
		},
	}), h.resourcePlayerTransfer)

	h.add(&discordgo.ApplicationCommand{
		Name:        "resource-transfer",
		Description: "Transfers an amount of the chosen resource to another player",
		Options: []*discordgo.ApplicationCommandOption{
			userOpt("recipient_player", "Receiving player", true),
			stringOpt("resource_type", "Resource name", true),
			intOpt("resource_amt", "Amount to send", true, 1, 100),
		},
	}, h.resourceTransfer)
}

func (h *Handler) triggerDailyIncomes(ctx context.Context, req *Request) (*Response, error) {
	notices, err := h.service.TriggerDailyIncome(ctx)
	if err != nil {
		return nil, err
	}

	for channel, lines := range groupNotices(notices) {
		if _, err := h.messenger.ChannelMessageSend(channel.String(), strings.Join(lines, "\n")); err != nil {
			h.logger.Warn("failed to post income notice",
				zap.String("channel_id", channel.String()),
				zap.Error(err))
		}
	}
	return reply("Triggered daily incomes: %d resource change(s)", len(notices)), nil
}

// groupNotices renders notices per moderator channel; players without one are skipped
func groupNotices(notices []gamedomain.ResourceNotice) map[gamedomain.ID][]string {
	grouped := make(map[gamedomain.ID][]string)
	for _, n := range notices {
		if n.ModChannel.IsZero() {
			continue
		}
		var line string
		switch n.Kind {
		case gamedomain.NoticeExpired:
			line = fmt.Sprintf("%d %s expired", n.Amount, n.Resource)
		case gamedomain.NoticeIncome:
			line = fmt.Sprintf("Received %d %s, now %d", n.Amount, n.Resource, n.Total)
		default:
			continue
		}
		grouped[n.ModChannel] = append(grouped[n.ModChannel], line)
	}
	return grouped
}

func (h *Handler) modifyResource(ctx context.Context, req *Request, sign int) (*Response, error) {
	id, name, err := playerAndName(req, "player", "resource_type")
	if err != nil {
		return nil, err
	}
	amount, err := positiveAmount(req)
	if err != nil {
		return nil, err
	}

	adj, err := h.service.ModifyResource(ctx, id, name, sign*amount)
	if err != nil {
		return nil, err
	}
	if !adj.Applied {
		return reply("<@%s> has no resource %s", id, name), nil
	}
	return reply("<@%s> now has %d %s", id, adj.Value, name), nil
}

func (h *Handler) resourcePlayerTransfer(ctx context.Context, req *Request) (*Response, error) {
	from, name, err := playerAndName(req, "player", "resource_type")
	if err != nil {
		return nil, err
	}
	to, err := req.requiredID("recipient_player")
	if err != nil {
		return nil, err
	}
	amount, err := positiveAmount(req)
	if err != nil {
		return nil, err
	}

	err = h.service.TransferResource(ctx, &gameService.TransferInput{
		From:   from,
		To:     to,
		Name:   name,
		Amount: amount,
	})
	if err != nil {
		return nil, err
	}
	return reply("Transferred %d %s from <@%s> to <@%s>", amount, name, from, to), nil
}

func (h *Handler) resourceTransfer(ctx context.Context, req *Request) (*Response, error) {
	to, name, err := playerAndName(req, "recipient_player", "resource_type")
	if err != nil {
		return nil, err
	}
	amount, err := positiveAmount(req)
	if err != nil {
		return nil, err
	}

	err = h.service.TransferResource(ctx, &gameService.TransferInput{
		From:     req.UserID,
		To:       to,
		Name:     name,
		Amount:   amount,
		ByPlayer: true,
	})
	if err != nil {
		return nil, err
	}
	return reply("Sent %d %s to <@%s>", amount, name, to), nil
}

func positiveAmount(req *Request) (int, error) {
	amount := req.integer("resource_amt", 0)
	if amount < 1 {
		return 0, apperr.InvalidArgument("resource_amt must be positive")
	}
	return amount, nil
}
