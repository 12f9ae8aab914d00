package bridge

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/bwmarrin/discordgo"

	"github.com/feroxapp/ferox/pkg/feroxsdk"
	"github.com/feroxapp/ferox/pkg/httpx"
)

// DirectMessenger is the slice of discordgo.Session the recovery bridge
// needs. Narrowing it here keeps the handler testable without a gateway
// connection.
type DirectMessenger interface {
	UserChannelCreate(recipientID string, options ...discordgo.RequestOption) (*discordgo.Channel, error)
	ChannelMessageSend(channelID string, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// RecoveryHandler delivers password recovery codes over Discord DM. The API
// service calls this endpoint; it is not exposed to end users.
type RecoveryHandler struct {
	Discord DirectMessenger
	Logger  *slog.Logger
}

type sendRecoveryCodeRequest struct {
	DiscordID string `json:"discord_id"`
	Code      string `json:"code"`
}

// HandleSendRecoveryCode opens a DM channel with the target user and sends
// the recovery code. Any Discord failure maps to delivery_failed so the API
// can report 502 while keeping the code valid for a retry.
func (h *RecoveryHandler) HandleSendRecoveryCode(w http.ResponseWriter, r *http.Request) {
	var req sendRecoveryCodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.DiscordID == "" || req.Code == "" {
		feroxsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	channel, err := h.Discord.UserChannelCreate(req.DiscordID)
	if err != nil {
		h.Logger.Error("failed to open DM channel", "discord_id", req.DiscordID, "error", err)
		feroxsdk.ErrDeliveryFailed.WriteError(w)
		return
	}

	content := fmt.Sprintf(
		"Your FeroxApp password recovery code is: **%s**\nIt expires in 15 minutes. If you did not request this, you can ignore this message.",
		req.Code,
	)
	if _, err := h.Discord.ChannelMessageSend(channel.ID, content); err != nil {
		h.Logger.Error("failed to send DM", "discord_id", req.DiscordID, "error", err)
		feroxsdk.ErrDeliveryFailed.WriteError(w)
		return
	}

	h.Logger.Info("recovery code delivered", "discord_id", req.DiscordID)
	httpx.WriteJSON(w, http.StatusOK, feroxsdk.MessageResponse{
		Message: "recovery code delivered",
	})
}
