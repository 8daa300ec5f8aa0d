package service

import (
	"github.com/diegoclair/slack-trivia-bot/internal/domain/contract"
)

type Instance struct {
	Trivia     *triviaService
	Dispatcher *dispatcher
}

func NewInstance(dm contract.DataManager, slackClient contract.SlackClient, factsClient contract.FactsFetcher, offsetHours int, imageURL string) *Instance {
	return &Instance{
		Trivia:     newTrivia(dm, factsClient),
		Dispatcher: newDispatcher(dm, slackClient, factsClient, offsetHours, imageURL),
	}
}
