package service

import (
	"testing"

	"github.com/diegoclair/slack-trivia-bot/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type allMocks struct {
	mockDataManager *mocks.MockDataManager
	mockTriviaRepo  *mocks.MockTriviaConfigRepo
	mockSlackClient *mocks.MockSlackClient
	mockFacts       *mocks.MockFactsFetcher
}

func newServiceTestMock(t *testing.T) (m allMocks, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)

	dm := mocks.NewMockDataManager(ctrl)

	triviaRepo := mocks.NewMockTriviaConfigRepo(ctrl)
	dm.EXPECT().TriviaConfig().Return(triviaRepo).AnyTimes()

	slackClient := mocks.NewMockSlackClient(ctrl)
	factsClient := mocks.NewMockFactsFetcher(ctrl)

	m = allMocks{
		mockDataManager: dm,
		mockTriviaRepo:  triviaRepo,
		mockSlackClient: slackClient,
		mockFacts:       factsClient,
	}

	// validate service creation
	triviaService := newTrivia(dm, factsClient)
	require.NotNil(t, triviaService)

	return
}
