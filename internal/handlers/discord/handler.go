// Package discord translates slash commands into game service calls and
// replies with plain text.
package discord

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/KirkDiggler/wolfbot/internal/dice"
	gamedomain "github.com/KirkDiggler/wolfbot/internal/domain/game"
	apperr "github.com/KirkDiggler/wolfbot/internal/errors"
	"github.com/KirkDiggler/wolfbot/internal/seed"
	gameService "github.com/KirkDiggler/wolfbot/internal/services/game"
	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

const commandTimeout = 10 * time.Second

// Messenger posts and edits channel messages. *discordgo.Session satisfies it.
type Messenger interface {
	ChannelMessageSend(channelID string, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
	ChannelMessageEdit(channelID, messageID, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
	ChannelMessageDelete(channelID, messageID string, options ...discordgo.RequestOption) error
}

// Handler handles all Discord interactions
type Handler struct {
	service        gameService.Service
	roller         dice.Roller
	messenger      Messenger
	logger         *zap.Logger
	seedPaths      seed.Paths
	voteChannel    gamedomain.ID
	requestChannel gamedomain.ID
	modRoleID      string

	commands map[string]*command
}

// HandlerConfig holds configuration for the Discord handler
type HandlerConfig struct {
	GameService    gameService.Service // Required
	Messenger      Messenger           // Required
	Roller         dice.Roller         // Optional, will use a random roller if nil
	Logger         *zap.Logger         // Optional, will use a no-op logger if nil
	SeedPaths      seed.Paths          // Files read by initialize-game and the catalog refreshes
	VoteChannel    string              // Default report channel for round-create
	RequestChannel string              // Moderator requests are posted here when set
	ModRoleID      string              // Role mentioned on moderator requests
}

// Request is one slash command invocation
type Request struct {
	Command   string
	UserID    gamedomain.ID
	UserName  string
	ChannelID gamedomain.ID
	Options   []*discordgo.ApplicationCommandInteractionDataOption
}

// Response is the reply to a command
type Response struct {
	Content   string
	Ephemeral bool
}

type command struct {
	definition *discordgo.ApplicationCommand
	run        func(ctx context.Context, req *Request) (*Response, error)
}

// NewHandler creates a new Discord handler
func NewHandler(cfg *HandlerConfig) *Handler {
	if cfg.GameService == nil {
		panic("game service is required")
	}
	if cfg.Messenger == nil {
		panic("messenger is required")
	}

	h := &Handler{
		service:        cfg.GameService,
		roller:         cfg.Roller,
		messenger:      cfg.Messenger,
		logger:         cfg.Logger,
		seedPaths:      cfg.SeedPaths,
		voteChannel:    gamedomain.ID(cfg.VoteChannel),
		requestChannel: gamedomain.ID(cfg.RequestChannel),
		modRoleID:      cfg.ModRoleID,
		commands:       make(map[string]*command),
	}
	if h.roller == nil {
		h.roller = dice.NewRandomRoller()
	}
	if h.logger == nil {
		h.logger = zap.NewNop()
	}
	h.logger = h.logger.Named("discord")

	h.addGameCommands()
	h.addPlayerCommands()
	h.addVotingCommands()
	h.addInventoryCommands()
	h.addResourceCommands()
	h.addViewCommands()
	h.addRequestCommands()

	return h
}

func (h *Handler) add(def *discordgo.ApplicationCommand, run func(ctx context.Context, req *Request) (*Response, error)) {
	if _, exists := h.commands[def.Name]; exists {
		panic("duplicate command " + def.Name)
	}
	h.commands[def.Name] = &command{definition: def, run: run}
}

// Commands returns the command definitions sorted by name
func (h *Handler) Commands() []*discordgo.ApplicationCommand {
	defs := make([]*discordgo.ApplicationCommand, 0, len(h.commands))
	for _, cmd := range h.commands {
		defs = append(defs, cmd.definition)
	}
	sort.Slice(defs, func(i, j int) bool {
		return defs[i].Name < defs[j].Name
	})
	return defs
}

// RegisterCommands registers all slash commands with Discord
func (h *Handler) RegisterCommands(s *discordgo.Session, guildID string) error {
	for _, cmd := range h.Commands() {
		_, err := s.ApplicationCommandCreate(s.State.User.ID, guildID, cmd)
		if err != nil {
			return fmt.Errorf("failed to create command %s: %w", cmd.Name, err)
		}
		h.logger.Debug("registered command", zap.String("command", cmd.Name))
	}
	h.logger.Info("registered commands", zap.Int("count", len(h.commands)))

	return nil
}

// Dispatch runs a command and returns the reply
func (h *Handler) Dispatch(ctx context.Context, req *Request) (*Response, error) {
	cmd, ok := h.commands[req.Command]
	if !ok {
		return nil, apperr.NotFoundf("unknown command %s", req.Command)
	}

	h.logger.Info("command called",
		zap.String("command", req.Command),
		zap.String("user_id", req.UserID.String()),
		zap.String("user", req.UserName),
		zap.String("channel_id", req.ChannelID.String()))

	return cmd.run(ctx, req)
}

// HandleInteraction handles all Discord interactions
func (h *Handler) HandleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	req := requestFromInteraction(i)
	resp, err := h.Dispatch(ctx, req)
	if err != nil {
		h.logger.Warn("command failed",
			zap.String("command", req.Command),
			zap.String("code", string(apperr.GetCode(err))),
			zap.Error(err))
		respondWithError(h.logger, s, i, userMessage(err))
		return
	}

	data := &discordgo.InteractionResponseData{Content: resp.Content}
	if resp.Ephemeral {
		data.Flags = discordgo.MessageFlagsEphemeral
	}
	err = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: data,
	})
	if err != nil {
		h.logger.Error("failed to respond to interaction",
			zap.String("command", req.Command),
			zap.Error(err))
	}
}

func requestFromInteraction(i *discordgo.InteractionCreate) *Request {
	data := i.ApplicationCommandData()
	req := &Request{
		Command:   data.Name,
		ChannelID: gamedomain.ID(i.ChannelID),
		Options:   data.Options,
	}

	user := i.User
	if i.Member != nil && i.Member.User != nil {
		user = i.Member.User
	}
	if user != nil {
		req.UserID = gamedomain.ID(user.ID)
		req.UserName = user.Username
	}
	return req
}

// userMessage picks the innermost application message, hiding internals
func userMessage(err error) string {
	switch apperr.GetCode(err) {
	case apperr.CodeConcurrentModification:
		return "The game changed while your command ran, please try again"
	case apperr.CodePersistence, apperr.CodeInternal, apperr.CodeUnknown:
		return genericFailure
	}

	message := err.Error()
	var appErr *apperr.Error
	for errors.As(err, &appErr) {
		message = appErr.Message
		if appErr.Cause == nil {
			break
		}
		err = appErr.Cause
	}
	return message
}

func reply(format string, args ...any) *Response {
	return &Response{Content: fmt.Sprintf(format, args...), Ephemeral: true}
}

func announce(content string) *Response {
	return &Response{Content: content}
}
