package domain

// DiscordIdentity is the identity captured when an account is linked through
// the bot.
type DiscordIdentity struct {
	ID       string
	Username string
	Avatar   string // CDN URL, may be empty
}
