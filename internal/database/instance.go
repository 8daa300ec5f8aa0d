package database

import (
	"github.com/diegoclair/slack-trivia-bot/internal/domain/contract"
)

// instance implements DataManager interface
type instance struct {
	db               *DB
	triviaConfigRepo contract.TriviaConfigRepo
}

// NewInstance creates a new database instance with all repositories
func NewInstance(db *DB) contract.DataManager {
	return &instance{
		db:               db,
		triviaConfigRepo: newTriviaConfigRepo(db.conn),
	}
}

// TriviaConfig returns the trivia config repository
func (i *instance) TriviaConfig() contract.TriviaConfigRepo {
	return i.triviaConfigRepo
}
