package service

import (
	"context"
	"fmt"
	"regexp"

	"github.com/diegoclair/slack-trivia-bot/internal/domain"
	"github.com/diegoclair/slack-trivia-bot/internal/domain/contract"
	"github.com/diegoclair/slack-trivia-bot/internal/domain/entity"
	"github.com/diegoclair/slack-trivia-bot/internal/logger"
	"github.com/sirupsen/logrus"
)

// Hours 0-23 with an optional leading zero, minutes always two digits.
var scheduleRegex = regexp.MustCompile(`^([01]?[0-9]|2[0-3]):[0-5][0-9]$`)

type triviaService struct {
	dm    contract.DataManager
	facts contract.FactsFetcher
	log   *logrus.Entry
}

func newTrivia(dm contract.DataManager, factsClient contract.FactsFetcher) *triviaService {
	return &triviaService{
		dm:    dm,
		facts: factsClient,
		log:   logger.WithComponent("trivia"),
	}
}

// Setup inserts the config once. When a config already exists it fails with
// ErrAlreadyConfigured and changes nothing; later changes go through
// UpdateSchedule and UpdateChannel.
func (s *triviaService) Setup(channelID, schedule string) error {
	config, err := s.dm.TriviaConfig().Get()
	if err != nil {
		return fmt.Errorf("failed to check trivia config: %w", err)
	}
	if config != nil {
		return domain.ErrAlreadyConfigured
	}

	if !scheduleRegex.MatchString(schedule) {
		return domain.ErrInvalidSchedule
	}

	err = s.dm.TriviaConfig().Insert(&entity.TriviaConfig{
		ChannelID: channelID,
		Schedule:  schedule,
	})
	if err != nil {
		return fmt.Errorf("failed to insert trivia config: %w", err)
	}

	s.log.Infof("Trivia configured for channel %s at %s", channelID, schedule)
	return nil
}

func (s *triviaService) UpdateSchedule(schedule string) error {
	config, err := s.dm.TriviaConfig().Get()
	if err != nil {
		return fmt.Errorf("failed to check trivia config: %w", err)
	}
	if config == nil {
		return domain.ErrNotConfigured
	}

	if !scheduleRegex.MatchString(schedule) {
		return domain.ErrInvalidSchedule
	}

	if err := s.dm.TriviaConfig().UpdateSchedule(schedule); err != nil {
		return fmt.Errorf("failed to update schedule: %w", err)
	}

	s.log.Infof("Trivia schedule updated to %s", schedule)
	return nil
}

func (s *triviaService) UpdateChannel(channelID string) error {
	config, err := s.dm.TriviaConfig().Get()
	if err != nil {
		return fmt.Errorf("failed to check trivia config: %w", err)
	}
	if config == nil {
		return domain.ErrNotConfigured
	}

	if err := s.dm.TriviaConfig().UpdateChannel(channelID); err != nil {
		return fmt.Errorf("failed to update channel: %w", err)
	}

	s.log.Infof("Trivia channel updated to %s", channelID)
	return nil
}

func (s *triviaService) GetConfig() (*entity.TriviaConfig, error) {
	config, err := s.dm.TriviaConfig().Get()
	if err != nil {
		return nil, fmt.Errorf("failed to get trivia config: %w", err)
	}
	if config == nil {
		return nil, domain.ErrNotConfigured
	}

	return config, nil
}

// PreviewFact fetches one fact without touching the dispatch gate state.
func (s *triviaService) PreviewFact(ctx context.Context) (string, error) {
	fact, err := s.facts.RandomFact(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to fetch fact: %w", err)
	}

	return fact, nil
}
