package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/diegoclair/slack-trivia-bot/internal/domain/contract"
	"github.com/diegoclair/slack-trivia-bot/internal/domain/entity"
)

type triviaConfigRepo struct {
	db dbConn
}

func newTriviaConfigRepo(db dbConn) contract.TriviaConfigRepo {
	return &triviaConfigRepo{db: db}
}

func (r *triviaConfigRepo) Get() (*entity.TriviaConfig, error) {
	config := &entity.TriviaConfig{}
	query := `
		SELECT id, channel_id, schedule, last_sent_date, created_at, updated_at
		FROM trivia_config
		WHERE id = 1
	`

	err := r.db.QueryRow(query).Scan(
		&config.ID,
		&config.ChannelID,
		&config.Schedule,
		&config.LastSentDate,
		&config.CreatedAt,
		&config.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get trivia config: %w", err)
	}

	return config, nil
}

func (r *triviaConfigRepo) Insert(config *entity.TriviaConfig) error {
	query := `
		INSERT INTO trivia_config (id, channel_id, schedule)
		VALUES (1, ?, ?)
	`

	_, err := r.db.Exec(query, config.ChannelID, config.Schedule)
	if err != nil {
		return fmt.Errorf("failed to insert trivia config: %w", err)
	}

	config.ID = 1
	return nil
}

func (r *triviaConfigRepo) UpdateSchedule(schedule string) error {
	query := `
		UPDATE trivia_config SET
			schedule = ?,
			updated_at = ?
		WHERE id = 1
	`

	_, err := r.db.Exec(query, schedule, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to update schedule: %w", err)
	}

	return nil
}

func (r *triviaConfigRepo) UpdateChannel(channelID string) error {
	query := `
		UPDATE trivia_config SET
			channel_id = ?,
			updated_at = ?
		WHERE id = 1
	`

	_, err := r.db.Exec(query, channelID, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to update channel: %w", err)
	}

	return nil
}

func (r *triviaConfigRepo) SetLastSentDate(date string) error {
	query := `
		UPDATE trivia_config SET
			last_sent_date = ?,
			updated_at = ?
		WHERE id = 1
	`

	_, err := r.db.Exec(query, date, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to set last sent date: %w", err)
	}

	return nil
}
