package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/feroxapp/ferox/pkg/slogx"
)

// DiscordNotifier posts recovery codes to the bot's delivery endpoint. The
// bot owns the gateway session, so the API never talks to Discord directly.
type DiscordNotifier struct {
	BaseURL    string // e.g. "http://bot:8081"
	HTTPClient *http.Client
}

func NewDiscordNotifier(baseURL string) *DiscordNotifier {
	return &DiscordNotifier{
		BaseURL: baseURL,
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type sendRecoveryCodeRequest struct {
	DiscordID string `json:"discord_id"`
	Code      string `json:"code"`
}

// SendRecoveryCode asks the bot to DM the code to the given Discord user.
func (n *DiscordNotifier) SendRecoveryCode(ctx context.Context, discordID, code string) error {
	log := slogx.FromContext(ctx)

	body, err := json.Marshal(sendRecoveryCodeRequest{
		DiscordID: discordID,
		Code:      code,
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDeliveryFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		n.BaseURL+"/send-recovery-code", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDeliveryFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.HTTPClient.Do(req)
	if err != nil {
		log.Error("recovery code delivery failed", slog.Any("error", err))
		return fmt.Errorf("%w: %w", ErrDeliveryFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Error("recovery code delivery rejected",
			slog.Int("status", resp.StatusCode),
		)
		return fmt.Errorf("%w: bot returned status %d", ErrDeliveryFailed, resp.StatusCode)
	}

	return nil
}
