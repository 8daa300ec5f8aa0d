package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/diegoclair/slack-trivia-bot/internal/domain"
)

type Config struct {
	SlackBotToken       string
	SlackSigningSecret  string
	AdminUserIDs        []string
	DatabasePath        string
	Port                string
	FactsAPIKey         string
	FactsAPIURL         string
	ScheduleOffsetHours int
	TriviaImageURL      string
	LogLevel            string
	Env                 string
	SentryDSN           string
}

func Load() *Config {
	return &Config{
		SlackBotToken:       getEnv("SLACK_BOT_TOKEN", ""),
		SlackSigningSecret:  getEnv("SLACK_SIGNING_SECRET", ""),
		AdminUserIDs:        parseIDs(os.Getenv("ADMIN_USER_IDS")),
		DatabasePath:        getEnv("DATABASE_PATH", "./trivia.db"),
		Port:                getEnv("PORT", "3000"),
		FactsAPIKey:         getEnv("FACTS_API_KEY", ""),
		FactsAPIURL:         getEnv("FACTS_API_URL", ""),
		ScheduleOffsetHours: getEnvInt("SCHEDULE_UTC_OFFSET_HOURS", domain.DefaultScheduleOffsetHours),
		TriviaImageURL:      getEnv("TRIVIA_IMAGE_URL", domain.DefaultTriviaImageURL),
		LogLevel:            getEnv("LOG_LEVEL", "info"),
		Env:                 getEnv("ENV", "dev"),
		SentryDSN:           os.Getenv("SENTRY_DSN"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}

// parseIDs splits a comma or space separated list of Slack user IDs.
func parseIDs(s string) []string {
	parts := strings.FieldsFunc(strings.TrimSpace(s), func(r rune) bool {
		return r == ',' || r == ' '
	})
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
