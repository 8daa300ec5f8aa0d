package contract

import (
	"github.com/diegoclair/slack-trivia-bot/internal/domain/entity"
)

// DataManager aggregates all repository interfaces
type DataManager interface {
	TriviaConfig() TriviaConfigRepo
}

// TriviaConfigRepo defines the contract for the singleton trivia config row.
// Get returns (nil, nil) when no row exists yet.
type TriviaConfigRepo interface {
	Get() (*entity.TriviaConfig, error)
	Insert(config *entity.TriviaConfig) error
	UpdateSchedule(schedule string) error
	UpdateChannel(channelID string) error
	SetLastSentDate(date string) error
}
