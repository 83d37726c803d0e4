package models

import "time"

// GuessRecord represents a single persisted answer to a question
type GuessRecord struct {
	ID        int64
	GuesserID string
	PairID    int
	Correct   bool
	Timestamp time.Time
}

// GameRecord represents a completed playthrough
type GameRecord struct {
	ID             int64
	GuesserID      string
	Score          int
	TotalQuestions int
	Timestamp      time.Time
}

// PairStats aggregates how players have answered one pair
type PairStats struct {
	TotalGuesses   int
	CorrectGuesses int
	PercentCorrect int
}
