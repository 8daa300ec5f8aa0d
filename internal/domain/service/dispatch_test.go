package service

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/diegoclair/slack-trivia-bot/internal/domain/entity"
	"github.com/diegoclair/slack-trivia-bot/internal/facts"
	"github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testImageURL = "https://example.com/trivia.png"

func newTestDispatcher(m allMocks, offsetHours int) *dispatcher {
	return newDispatcher(m.mockDataManager, m.mockSlackClient, m.mockFacts, offsetHours, testImageURL)
}

// clockAt returns a fixed clock at the given UTC instant, e.g. "2026-03-10 00:59".
func clockAt(t *testing.T, instant string) func() time.Time {
	t.Helper()

	parsed, err := time.Parse("2006-01-02 15:04", instant)
	require.NoError(t, err)
	return func() time.Time { return parsed.UTC() }
}

func Test_normalizeSchedule(t *testing.T) {
	tests := []struct {
		name        string
		schedule    string
		offsetHours int
		want        int
		wantErr     bool
	}{
		{
			name:        "Should subtract the offset",
			schedule:    "09:00",
			offsetHours: 8,
			want:        1 * 60, // 01:00 UTC
		},
		{
			name:        "Should wrap past midnight on underflow",
			schedule:    "05:30",
			offsetHours: 8,
			want:        21*60 + 30, // 21:30 UTC the previous day
		},
		{
			name:        "Should be identity with zero offset",
			schedule:    "23:59",
			offsetHours: 0,
			want:        23*60 + 59,
		},
		{
			name:        "Should normalize to midnight when schedule equals offset",
			schedule:    "08:00",
			offsetHours: 8,
			want:        0,
		},
		{
			name:        "Should handle negative offsets",
			schedule:    "22:00",
			offsetHours: -3,
			want:        1 * 60, // 01:00 UTC the next day
		},
		{
			name:        "Should reject out-of-range hours",
			schedule:    "24:00",
			offsetHours: 8,
			wantErr:     true,
		},
		{
			name:        "Should reject garbage",
			schedule:    "abc",
			offsetHours: 8,
			wantErr:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeSchedule(tt.schedule, time.Duration(tt.offsetHours)*time.Hour)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func Test_normalizeScheduleAlwaysInRange(t *testing.T) {
	for _, offsetHours := range []int{-12, -3, 0, 8, 14} {
		for hour := 0; hour < 24; hour++ {
			for _, minute := range []int{0, 30, 59} {
				schedule := fmt.Sprintf("%02d:%02d", hour, minute)

				got, err := normalizeSchedule(schedule, time.Duration(offsetHours)*time.Hour)
				require.NoError(t, err, "schedule %s offset %d", schedule, offsetHours)
				assert.GreaterOrEqual(t, got, 0, "schedule %s offset %d", schedule, offsetHours)
				assert.Less(t, got, minutesPerDay, "schedule %s offset %d", schedule, offsetHours)
			}
		}
	}
}

func Test_dispatcher_tick(t *testing.T) {
	// Schedule 09:00 local with offset +8h normalizes to 01:00 UTC.
	config := &entity.TriviaConfig{ID: 1, ChannelID: "C123456789", Schedule: "09:00"}

	tests := []struct {
		name          string
		clock         string
		sentToday     bool
		sentDate      string
		buildMock     func(m allMocks)
		wantSentToday bool
		wantSentDate  string
	}{
		{
			name:  "Should do nothing when config is unset",
			clock: "2026-03-10 12:00",
			buildMock: func(m allMocks) {
				m.mockTriviaRepo.EXPECT().Get().Return(nil, nil).Times(1)
			},
		},
		{
			name:  "Should do nothing when config read fails",
			clock: "2026-03-10 12:00",
			buildMock: func(m allMocks) {
				m.mockTriviaRepo.EXPECT().Get().Return(nil, assert.AnError).Times(1)
			},
		},
		{
			name:  "Should not fire before the fire time",
			clock: "2026-03-10 00:59",
			buildMock: func(m allMocks) {
				m.mockTriviaRepo.EXPECT().Get().Return(config, nil).Times(1)
			},
		},
		{
			name:  "Should fire on the first tick at the fire time",
			clock: "2026-03-10 01:00",
			buildMock: func(m allMocks) {
				m.mockTriviaRepo.EXPECT().Get().Return(config, nil).Times(1)
				m.mockSlackClient.EXPECT().GetConversationInfo(&slack.GetConversationInfoInput{ChannelID: "C123456789"}).Return(nil, nil).Times(1)
				m.mockFacts.EXPECT().RandomFact(gomock.Any()).Return("Bees can fly.", nil).Times(1)
				m.mockSlackClient.EXPECT().PostMessage("C123456789", gomock.Any()).Return("", "", nil).Times(1)
				m.mockTriviaRepo.EXPECT().SetLastSentDate("2026-03-10").Return(nil).Times(1)
			},
			wantSentToday: true,
			wantSentDate:  "2026-03-10",
		},
		{
			name:      "Should not fire twice on the same day",
			clock:     "2026-03-10 01:05",
			sentToday: true,
			sentDate:  "2026-03-10",
			buildMock: func(m allMocks) {
				m.mockTriviaRepo.EXPECT().Get().Return(config, nil).Times(1)
			},
			wantSentToday: true,
			wantSentDate:  "2026-03-10",
		},
		{
			name:      "Should clear the flag and fire again after day rollover",
			clock:     "2026-03-11 01:00",
			sentToday: true,
			sentDate:  "2026-03-10",
			buildMock: func(m allMocks) {
				m.mockTriviaRepo.EXPECT().Get().Return(config, nil).Times(1)
				m.mockSlackClient.EXPECT().GetConversationInfo(&slack.GetConversationInfoInput{ChannelID: "C123456789"}).Return(nil, nil).Times(1)
				m.mockFacts.EXPECT().RandomFact(gomock.Any()).Return("Bees can fly.", nil).Times(1)
				m.mockSlackClient.EXPECT().PostMessage("C123456789", gomock.Any()).Return("", "", nil).Times(1)
				m.mockTriviaRepo.EXPECT().SetLastSentDate("2026-03-11").Return(nil).Times(1)
			},
			wantSentToday: true,
			wantSentDate:  "2026-03-11",
		},
		{
			name:  "Should post an error notification and keep retrying on fetch failure",
			clock: "2026-03-10 01:00",
			buildMock: func(m allMocks) {
				m.mockTriviaRepo.EXPECT().Get().Return(config, nil).Times(1)
				m.mockSlackClient.EXPECT().GetConversationInfo(&slack.GetConversationInfoInput{ChannelID: "C123456789"}).Return(nil, nil).Times(1)
				m.mockFacts.EXPECT().RandomFact(gomock.Any()).Return("", &facts.StatusError{StatusCode: http.StatusInternalServerError}).Times(1)
				m.mockSlackClient.EXPECT().PostMessage("C123456789", gomock.Any()).Return("", "", nil).Times(1)
			},
		},
		{
			name:  "Should leave state unmutated when channel resolution fails",
			clock: "2026-03-10 01:00",
			buildMock: func(m allMocks) {
				m.mockTriviaRepo.EXPECT().Get().Return(config, nil).Times(1)
				m.mockSlackClient.EXPECT().GetConversationInfo(&slack.GetConversationInfoInput{ChannelID: "C123456789"}).Return(nil, assert.AnError).Times(1)
			},
		},
		{
			name:  "Should leave state unmutated when posting fails",
			clock: "2026-03-10 01:00",
			buildMock: func(m allMocks) {
				m.mockTriviaRepo.EXPECT().Get().Return(config, nil).Times(1)
				m.mockSlackClient.EXPECT().GetConversationInfo(&slack.GetConversationInfoInput{ChannelID: "C123456789"}).Return(nil, nil).Times(1)
				m.mockFacts.EXPECT().RandomFact(gomock.Any()).Return("Bees can fly.", nil).Times(1)
				m.mockSlackClient.EXPECT().PostMessage("C123456789", gomock.Any()).Return("", "", assert.AnError).Times(1)
			},
		},
		{
			name:  "Should keep the sent flag when persisting the date fails",
			clock: "2026-03-10 01:00",
			buildMock: func(m allMocks) {
				m.mockTriviaRepo.EXPECT().Get().Return(config, nil).Times(1)
				m.mockSlackClient.EXPECT().GetConversationInfo(&slack.GetConversationInfoInput{ChannelID: "C123456789"}).Return(nil, nil).Times(1)
				m.mockFacts.EXPECT().RandomFact(gomock.Any()).Return("Bees can fly.", nil).Times(1)
				m.mockSlackClient.EXPECT().PostMessage("C123456789", gomock.Any()).Return("", "", nil).Times(1)
				m.mockTriviaRepo.EXPECT().SetLastSentDate("2026-03-10").Return(assert.AnError).Times(1)
			},
			wantSentToday: true,
			wantSentDate:  "2026-03-10",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ctrl := newServiceTestMock(t)
			defer ctrl.Finish()

			tt.buildMock(m)

			d := newTestDispatcher(m, 8)
			d.now = clockAt(t, tt.clock)
			d.sentToday = tt.sentToday
			d.sentDate = tt.sentDate

			d.tick(context.Background())

			assert.Equal(t, tt.wantSentToday, d.sentToday)
			assert.Equal(t, tt.wantSentDate, d.sentDate)
		})
	}
}

// Ticking minute by minute across a day boundary must produce exactly one
// send per day, on the first tick at or after the fire time.
func Test_dispatcher_atMostOncePerDay(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	config := &entity.TriviaConfig{ID: 1, ChannelID: "C123456789", Schedule: "09:00"}

	ticks := []string{
		"2026-03-10 00:58",
		"2026-03-10 00:59",
		"2026-03-10 01:00", // fires
		"2026-03-10 01:01",
		"2026-03-10 01:02",
		"2026-03-10 12:00",
		"2026-03-10 23:59",
		"2026-03-11 00:59", // new day, before fire time
		"2026-03-11 01:00", // fires
		"2026-03-11 01:01",
	}

	m.mockTriviaRepo.EXPECT().Get().Return(config, nil).Times(len(ticks))
	m.mockSlackClient.EXPECT().GetConversationInfo(&slack.GetConversationInfoInput{ChannelID: "C123456789"}).Return(nil, nil).Times(2)
	m.mockFacts.EXPECT().RandomFact(gomock.Any()).Return("Bees can fly.", nil).Times(2)
	m.mockSlackClient.EXPECT().PostMessage("C123456789", gomock.Any()).Return("", "", nil).Times(2)
	m.mockTriviaRepo.EXPECT().SetLastSentDate("2026-03-10").Return(nil).Times(1)
	m.mockTriviaRepo.EXPECT().SetLastSentDate("2026-03-11").Return(nil).Times(1)

	d := newTestDispatcher(m, 8)

	for _, instant := range ticks {
		d.now = clockAt(t, instant)
		d.tick(context.Background())
	}

	assert.True(t, d.sentToday)
	assert.Equal(t, "2026-03-11", d.sentDate)
}

// N failing fetches produce N error notifications and no state change; the
// first success afterwards produces exactly one trivia message and sets the flag.
func Test_dispatcher_retryUntilSuccess(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	config := &entity.TriviaConfig{ID: 1, ChannelID: "C123456789", Schedule: "09:00"}
	failures := 3

	m.mockTriviaRepo.EXPECT().Get().Return(config, nil).Times(failures + 1)
	m.mockSlackClient.EXPECT().GetConversationInfo(&slack.GetConversationInfoInput{ChannelID: "C123456789"}).Return(nil, nil).Times(failures + 1)

	failingCalls := m.mockFacts.EXPECT().RandomFact(gomock.Any()).
		Return("", &facts.StatusError{StatusCode: http.StatusBadGateway}).Times(failures)
	m.mockFacts.EXPECT().RandomFact(gomock.Any()).Return("Bees can fly.", nil).Times(1).After(failingCalls)

	// One notification per tick: N error messages, then the trivia itself.
	m.mockSlackClient.EXPECT().PostMessage("C123456789", gomock.Any()).Return("", "", nil).Times(failures + 1)
	m.mockTriviaRepo.EXPECT().SetLastSentDate("2026-03-10").Return(nil).Times(1)

	d := newTestDispatcher(m, 8)

	for i := 0; i <= failures; i++ {
		d.now = clockAt(t, fmt.Sprintf("2026-03-10 01:%02d", i))
		d.tick(context.Background())

		if i < failures {
			assert.False(t, d.sentToday, "flag must stay false while fetch keeps failing")
		}
	}

	assert.True(t, d.sentToday)
	assert.Equal(t, "2026-03-10", d.sentDate)
}

func Test_dispatcher_seedRecoveryState(t *testing.T) {
	tests := []struct {
		name          string
		buildMock     func(m allMocks)
		wantSentToday bool
		wantSentDate  string
	}{
		{
			name: "Should seed sent state when last sent date is today",
			buildMock: func(m allMocks) {
				m.mockTriviaRepo.EXPECT().Get().
					Return(&entity.TriviaConfig{ID: 1, ChannelID: "C123456789", Schedule: "09:00", LastSentDate: "2026-03-10"}, nil).Times(1)
			},
			wantSentToday: true,
			wantSentDate:  "2026-03-10",
		},
		{
			name: "Should arm normally when last sent date is stale",
			buildMock: func(m allMocks) {
				m.mockTriviaRepo.EXPECT().Get().
					Return(&entity.TriviaConfig{ID: 1, ChannelID: "C123456789", Schedule: "09:00", LastSentDate: "2026-03-09"}, nil).Times(1)
			},
		},
		{
			name: "Should arm normally when nothing was ever sent",
			buildMock: func(m allMocks) {
				m.mockTriviaRepo.EXPECT().Get().
					Return(&entity.TriviaConfig{ID: 1, ChannelID: "C123456789", Schedule: "09:00"}, nil).Times(1)
			},
		},
		{
			name: "Should arm normally when config is unset",
			buildMock: func(m allMocks) {
				m.mockTriviaRepo.EXPECT().Get().Return(nil, nil).Times(1)
			},
		},
		{
			name: "Should arm normally when config read fails",
			buildMock: func(m allMocks) {
				m.mockTriviaRepo.EXPECT().Get().Return(nil, assert.AnError).Times(1)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ctrl := newServiceTestMock(t)
			defer ctrl.Finish()

			tt.buildMock(m)

			d := newTestDispatcher(m, 8)
			d.now = clockAt(t, "2026-03-10 05:00")

			d.seedRecoveryState()

			assert.Equal(t, tt.wantSentToday, d.sentToday)
			assert.Equal(t, tt.wantSentDate, d.sentDate)
		})
	}
}

func Test_triviaAttachment(t *testing.T) {
	att := triviaAttachment("Bees can fly.", testImageURL)

	assert.Equal(t, "Trivia of the Day", att.Title)
	assert.Equal(t, "Bees can fly.", att.Text)
	assert.Equal(t, testImageURL, att.ImageURL)
	assert.NotEmpty(t, att.Color)
}

func Test_fetchErrorMessage(t *testing.T) {
	msg := fetchErrorMessage(&facts.StatusError{StatusCode: http.StatusInternalServerError})
	assert.Contains(t, msg, "500")

	msg = fetchErrorMessage(assert.AnError)
	assert.Contains(t, msg, assert.AnError.Error())
}
