package bridge

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/feroxapp/ferox/pkg/feroxsdk"
)

const linkCommandName = "link"

// LinkCommand is the slash command definition registered with Discord.
var LinkCommand = &discordgo.ApplicationCommand{
	Name:        linkCommandName,
	Description: "Link your Discord account to your FeroxApp account",
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "code",
			Description: "The activation code shown in the app",
			Required:    true,
		},
	},
}

// LinkHandler redeems activation codes against the API on behalf of the
// Discord user invoking /link.
type LinkHandler struct {
	API    *feroxsdk.Client
	Logger *slog.Logger
}

// Handle processes a /link interaction. The reply is always ephemeral so
// activation codes never leak into channel history.
func (h *LinkHandler) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}
	if i.ApplicationCommandData().Name != linkCommandName {
		return
	}

	// 1. Defer immediately. The API call can exceed Discord's 3 second
	//    interaction deadline.
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Flags: discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		h.Logger.Error("failed to defer interaction", "error", err)
		return
	}

	// 2. Resolve the invoking user and the submitted code
	user := interactionUser(i)
	code := ""
	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Name == "code" {
			code = opt.StringValue()
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// 3. Redeem the code via the API
	req := feroxsdk.LinkRequest{
		Code:            code,
		DiscordID:       user.ID,
		DiscordUsername: user.Username,
	}
	if user.Avatar != "" {
		req.DiscordAvatar = user.AvatarURL("")
	}

	account, err := h.API.LinkDiscord(ctx, req)
	if err != nil {
		h.Logger.Warn("link failed", "discord_id", user.ID, "error", err)
		h.editReply(s, i, linkFailureMessage(err))
		return
	}

	h.Logger.Info("account linked", "discord_id", user.ID, "account_id", account.ID)
	h.editReply(s, i, "Account linked successfully! Welcome, "+account.Username+".")
}

func (h *LinkHandler) editReply(s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	_, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Content: &content,
	})
	if err != nil {
		h.Logger.Error("failed to edit interaction reply", "error", err)
	}
}

// linkFailureMessage maps API errors to user-facing replies.
func linkFailureMessage(err error) string {
	var apiErr *feroxsdk.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case feroxsdk.ErrorCodeInvalidCode:
			return "That activation code is not valid or has already been used."
		case feroxsdk.ErrorCodeConflict:
			return "This Discord account is already linked to another FeroxApp account."
		}
	}
	return "Something went wrong while linking your account. Please try again later."
}

// interactionUser returns the invoking user for both guild and DM contexts.
func interactionUser(i *discordgo.InteractionCreate) *discordgo.User {
	if i.Member != nil {
		return i.Member.User
	}
	return i.User
}
