package bridge

import (
	"errors"
	"net/http"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/require"

	"github.com/feroxapp/ferox/pkg/feroxsdk"
)

func TestLinkFailureMessage(t *testing.T) {
	t.Run("invalid code", func(t *testing.T) {
		msg := linkFailureMessage(&feroxsdk.APIError{
			StatusCode: http.StatusNotFound,
			Code:       feroxsdk.ErrorCodeInvalidCode,
		})
		require.Contains(t, msg, "activation code")
	})

	t.Run("discord already linked", func(t *testing.T) {
		msg := linkFailureMessage(&feroxsdk.APIError{
			StatusCode: http.StatusConflict,
			Code:       feroxsdk.ErrorCodeConflict,
		})
		require.Contains(t, msg, "already linked")
	})

	t.Run("anything else is generic", func(t *testing.T) {
		msg := linkFailureMessage(errors.New("connection refused"))
		require.Contains(t, msg, "try again later")
	})
}

func TestInteractionUser(t *testing.T) {
	guildUser := &discordgo.User{ID: "1"}
	dmUser := &discordgo.User{ID: "2"}

	t.Run("guild interaction uses member", func(t *testing.T) {
		i := &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
			Member: &discordgo.Member{User: guildUser},
		}}
		require.Equal(t, guildUser, interactionUser(i))
	})

	t.Run("dm interaction uses user", func(t *testing.T) {
		i := &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
			User: dmUser,
		}}
		require.Equal(t, dmUser, interactionUser(i))
	})
}
