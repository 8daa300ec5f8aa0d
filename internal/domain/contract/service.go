package contract

import (
	"context"

	"github.com/diegoclair/slack-trivia-bot/internal/domain/entity"
)

type TriviaService interface {
	Setup(channelID, schedule string) error
	UpdateSchedule(schedule string) error
	UpdateChannel(channelID string) error
	GetConfig() (*entity.TriviaConfig, error)
	PreviewFact(ctx context.Context) (string, error)
}
