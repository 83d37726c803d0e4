package repository

import (
	"gotclass/internal/database"
	"gotclass/internal/models"
)

// StatsRepository handles guess and game database operations
type StatsRepository struct {
	db *database.DB
}

// NewStatsRepository creates a new stats repository
func NewStatsRepository(db *database.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

// RecordGuess appends a single answer to the guesses log
func (r *StatsRepository) RecordGuess(guesserID string, pairID int, correct bool) error {
	query := `
		INSERT INTO guesses (guesser_id, pair_id, correct)
		VALUES (?, ?, ?)
	`

	_, err := r.db.Exec(query, guesserID, pairID, correct)
	return err
}

// RecordGame appends a completed game to the games log
func (r *StatsRepository) RecordGame(guesserID string, score, totalQuestions int) error {
	query := `
		INSERT INTO games (guesser_id, score, total_questions)
		VALUES (?, ?, ?)
	`

	_, err := r.db.Exec(query, guesserID, score, totalQuestions)
	return err
}

// PairStats returns aggregate guess statistics for one pair. PercentCorrect
// is an integer floor and 0 when the pair has never been guessed.
func (r *StatsRepository) PairStats(pairID int) (models.PairStats, error) {
	stats := models.PairStats{}

	err := r.db.QueryRow(
		"SELECT COUNT(*) FROM guesses WHERE pair_id = ?", pairID,
	).Scan(&stats.TotalGuesses)
	if err != nil {
		return stats, err
	}

	err = r.db.QueryRow(
		"SELECT COUNT(*) FROM guesses WHERE pair_id = ? AND correct = ?", pairID, true,
	).Scan(&stats.CorrectGuesses)
	if err != nil {
		return stats, err
	}

	if stats.TotalGuesses > 0 {
		stats.PercentCorrect = stats.CorrectGuesses * 100 / stats.TotalGuesses
	}

	return stats, nil
}

// PercentileRank returns the floor percentile of a score among all recorded
// games with the same question count, plus the number of such games. Scores
// are compared as percentages so different caps never mix. With no prior
// games the percentile is 0; defaulting is up to the caller.
func (r *StatsRepository) PercentileRank(score, totalQuestions int) (int, int, error) {
	var totalGames int
	err := r.db.QueryRow(
		"SELECT COUNT(*) FROM games WHERE total_questions = ?", totalQuestions,
	).Scan(&totalGames)
	if err != nil {
		return 0, 0, err
	}

	if totalGames == 0 {
		return 0, 0, nil
	}

	scorePercent := float64(score) / float64(totalQuestions) * 100

	var lowerOrEqual int
	err = r.db.QueryRow(
		"SELECT COUNT(*) FROM games WHERE total_questions = ? AND (score * 100.0 / total_questions) <= ?",
		totalQuestions, scorePercent,
	).Scan(&lowerOrEqual)
	if err != nil {
		return 0, 0, err
	}

	return lowerOrEqual * 100 / totalGames, totalGames, nil
}
