package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/diegoclair/slack-trivia-bot/internal/domain"
	"github.com/diegoclair/slack-trivia-bot/internal/domain/contract"
	"github.com/diegoclair/slack-trivia-bot/internal/domain/entity"
	"github.com/diegoclair/slack-trivia-bot/internal/facts"
	"github.com/diegoclair/slack-trivia-bot/internal/logger"
	"github.com/diegoclair/slack-trivia-bot/internal/metrics"
	"github.com/diegoclair/slack-trivia-bot/internal/observability"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
	"github.com/slack-go/slack"
)

const (
	minutesPerDay = 24 * 60
	tickTimeout   = 30 * time.Second
)

// dispatcher decides, once per minute, whether today's trivia still has to be
// sent. State is process-local; last_sent_date is persisted best-effort so a
// same-day restart does not produce a duplicate send.
type dispatcher struct {
	dm          contract.DataManager
	slackClient contract.SlackClient
	facts       contract.FactsFetcher
	cronEngine  *cron.Cron
	log         *logrus.Entry

	offset   time.Duration
	imageURL string

	// now is swapped in tests to drive a simulated clock.
	now func() time.Time

	sentToday bool
	sentDate  string
}

func newDispatcher(dm contract.DataManager, slackClient contract.SlackClient, factsClient contract.FactsFetcher, offsetHours int, imageURL string) *dispatcher {
	return &dispatcher{
		dm:          dm,
		slackClient: slackClient,
		facts:       factsClient,
		cronEngine: cron.New(
			cron.WithLocation(time.UTC),
			// A slow tick must finish before the next one is considered.
			cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
		),
		log:      logger.WithComponent("dispatcher"),
		offset:   time.Duration(offsetHours) * time.Hour,
		imageURL: imageURL,
		now:      time.Now,
	}
}

func (d *dispatcher) Start() error {
	d.seedRecoveryState()

	if _, err := d.cronEngine.AddFunc("* * * * *", d.runTick); err != nil {
		return fmt.Errorf("failed to register dispatch tick: %w", err)
	}

	d.cronEngine.Start()
	d.log.Info("Dispatch scheduler started")
	return nil
}

func (d *dispatcher) Stop() {
	ctx := d.cronEngine.Stop()
	<-ctx.Done()
	d.log.Info("Dispatch scheduler stopped")
}

// seedRecoveryState reads last_sent_date once at startup. If today's trivia
// was already delivered before a restart, the gate starts in the sent state.
func (d *dispatcher) seedRecoveryState() {
	config, err := d.dm.TriviaConfig().Get()
	if err != nil {
		d.log.Errorf("Failed to read trivia config for recovery: %v", err)
		observability.CaptureErr(err)
		return
	}
	if config == nil || config.LastSentDate == "" {
		return
	}

	today := d.now().UTC().Format(domain.DateLayout)
	if config.LastSentDate == today {
		d.sentToday = true
		d.sentDate = today
		d.log.Infof("Today's trivia (%s) was already delivered before restart", today)
	}
}

// runTick wraps a tick with panic recovery so a failure never kills the
// timer, and bounds the tick's outbound I/O with a timeout.
func (d *dispatcher) runTick() {
	defer func() {
		if r := recover(); r != nil {
			err := fmt.Errorf("panic in dispatch tick: %v", r)
			d.log.Error(err)
			observability.CaptureErr(err)
		}
	}()

	metrics.TickRuns.Inc()

	ctx, cancel := context.WithTimeout(context.Background(), tickTimeout)
	defer cancel()

	d.tick(ctx)
}

// tick evaluates the gate's guards in order: configured, day rollover,
// fire time reached, not yet sent. The sent flag is only set after a
// successful delivery, so every failure is retried on the next tick until
// day rollover.
func (d *dispatcher) tick(ctx context.Context) {
	config, err := d.dm.TriviaConfig().Get()
	if err != nil {
		d.log.Errorf("Failed to read trivia config: %v", err)
		observability.CaptureErr(err)
		return
	}
	if config == nil {
		d.log.Debug("Trivia not configured, skipping tick")
		return
	}

	now := d.now().UTC()
	today := now.Format(domain.DateLayout)

	// New day clears the flag; sentDate moves only on an actual send.
	if today != d.sentDate {
		d.sentToday = false
	}

	fireTime, err := normalizeSchedule(config.Schedule, d.offset)
	if err != nil {
		d.log.Errorf("Stored schedule %q is invalid: %v", config.Schedule, err)
		return
	}

	if minuteOfDay(now) < fireTime {
		return
	}

	if d.sentToday {
		return
	}

	if err := d.send(ctx, config); err != nil {
		d.log.Errorf("Send failed, will retry next tick: %v", err)
		return
	}

	d.sentToday = true
	d.sentDate = today
	metrics.Sends.Inc()
	d.log.Infof("Trivia delivered to channel %s", config.ChannelID)

	// Best effort, read back at startup to survive a same-day restart.
	if err := d.dm.TriviaConfig().SetLastSentDate(today); err != nil {
		d.log.Errorf("Failed to persist last sent date: %v", err)
		observability.CaptureErr(err)
	}
}

// send performs the send sequence: resolve channel, fetch fact, post. A fetch
// failure is surfaced to the channel itself; all failures leave the gate
// state unmutated.
func (d *dispatcher) send(ctx context.Context, config *entity.TriviaConfig) error {
	_, err := d.slackClient.GetConversationInfo(&slack.GetConversationInfoInput{
		ChannelID: config.ChannelID,
	})
	if err != nil {
		metrics.SendErrors.WithLabelValues("resolve").Inc()
		return fmt.Errorf("failed to resolve channel %s: %w", config.ChannelID, err)
	}

	start := time.Now()
	fact, err := d.facts.RandomFact(ctx)
	metrics.ObserveFetch(time.Since(start))
	if err != nil {
		metrics.SendErrors.WithLabelValues("fetch").Inc()
		if _, _, postErr := d.slackClient.PostMessage(
			config.ChannelID,
			slack.MsgOptionText(fetchErrorMessage(err), false),
		); postErr != nil {
			d.log.Errorf("Failed to post fetch error notification: %v", postErr)
		}
		return fmt.Errorf("failed to fetch fact: %w", err)
	}

	_, _, err = d.slackClient.PostMessage(
		config.ChannelID,
		slack.MsgOptionAttachments(triviaAttachment(fact, d.imageURL)),
	)
	if err != nil {
		metrics.SendErrors.WithLabelValues("post").Inc()
		return fmt.Errorf("failed to post trivia message: %w", err)
	}

	return nil
}

// normalizeSchedule converts a local HH:MM schedule into the equivalent UTC
// time-of-day, expressed as minutes since midnight. An underflow past
// midnight wraps to the previous day's time-of-day.
func normalizeSchedule(schedule string, offset time.Duration) (int, error) {
	parsed, err := time.Parse("15:04", schedule)
	if err != nil {
		return 0, fmt.Errorf("failed to parse schedule: %w", err)
	}

	local := parsed.Hour()*60 + parsed.Minute()
	utc := (local - int(offset.Minutes())) % minutesPerDay
	if utc < 0 {
		utc += minutesPerDay
	}
	return utc, nil
}

func minuteOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

func triviaAttachment(fact, imageURL string) slack.Attachment {
	return slack.Attachment{
		Title:    domain.TriviaTitle,
		Text:     fact,
		ImageURL: imageURL,
		Color:    domain.TriviaColor,
	}
}

func fetchErrorMessage(err error) string {
	var statusErr *facts.StatusError
	if errors.As(err, &statusErr) {
		return fmt.Sprintf("An error occurred while fetching today's trivia. Error code: %d", statusErr.StatusCode)
	}
	return fmt.Sprintf("An error occurred while fetching today's trivia: %v", err)
}
