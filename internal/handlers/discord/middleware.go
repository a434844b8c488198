package discord

import (
	"runtime/debug"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

const genericFailure = "Something went wrong, please try again later"

// interactionResponder is the part of *discordgo.Session used to answer an interaction
type interactionResponder interface {
	InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error
	FollowupMessageCreate(interaction *discordgo.Interaction, wait bool, data *discordgo.WebhookParams, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// RecoverMiddleware keeps a panicking command from taking the bot down.
// The caller gets a generic failure; the panic and stack go to the log.
func RecoverMiddleware(logger *zap.Logger, handlerName string, handler func(*discordgo.Session, *discordgo.InteractionCreate)) func(*discordgo.Session, *discordgo.InteractionCreate) {
	return func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("panic in interaction handler",
					zap.String("handler", handlerName),
					zap.String("command", commandName(i)),
					zap.Any("panic", r),
					zap.ByteString("stack", debug.Stack()))

				respondWithError(logger, s, i, genericFailure)
			}
		}()

		handler(s, i)
	}
}

func commandName(i *discordgo.InteractionCreate) string {
	if i == nil || i.Interaction == nil || i.Type != discordgo.InteractionApplicationCommand {
		return ""
	}
	return i.ApplicationCommandData().Name
}

// respondWithError answers privately, falling back to a followup when the
// interaction was already acknowledged
func respondWithError(logger *zap.Logger, r interactionResponder, i *discordgo.InteractionCreate, message string) {
	content := "❌ " + message
	err := r.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
	if err == nil {
		return
	}

	_, followupErr := r.FollowupMessageCreate(i.Interaction, true, &discordgo.WebhookParams{
		Content: content,
		Flags:   discordgo.MessageFlagsEphemeral,
	})
	if followupErr == nil {
		return
	}

	logger.Warn("failed to send error response",
		zap.String("message", message),
		zap.NamedError("respond_error", err),
		zap.NamedError("followup_error", followupErr))
}
