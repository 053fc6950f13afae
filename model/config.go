package model

// Config mirrors the top-level structure of config.yaml.
type Config struct {
	Token         string   `mapstructure:"TOKEN"`
	SigningSecret string   `mapstructure:"SIGNING_SECRET"`
	AdminPassword string   `mapstructure:"ADMIN_PASSWORD"`
	ListenAddr    string   `mapstructure:"LISTEN_ADDR"`
	DBPath        string   `mapstructure:"DB_PATH"`
	Channels      Channels `mapstructure:"channels"`
	Quotes        Quotes   `mapstructure:"quotes"`
}

// Channels holds the workspace channel IDs the bot posts into. Every one of
// them is a configuration value; the core never derives a channel ID itself.
type Channels struct {
	WelcomeChannelID      string `mapstructure:"welcome_channel_id"`
	IdeaChannelID         string `mapstructure:"idea_channel_id"`
	SocialReviewChannelID string `mapstructure:"social_review_channel_id"`
	QuoteChannelID        string `mapstructure:"quote_channel_id"`
}

// Quotes holds the motivational quote source settings.
type Quotes struct {
	APIURL string `mapstructure:"api_url"`
}
