package entity

import "time"

// TriviaConfig is the singleton configuration row controlling the daily trivia
// feature. Either no row exists (feature inactive) or both ChannelID and
// Schedule are present; there is no partially-set state.
type TriviaConfig struct {
	ID           int64
	ChannelID    string // Slack channel ID, e.g. C0123456789
	Schedule     string // local time of day, HH:MM 24-hour format
	LastSentDate string // UTC date (YYYY-MM-DD) of the last successful send, "" if never
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
