package repository

import (
	"path/filepath"
	"testing"

	"gotclass/internal/database"
)

func newTestRepo(t *testing.T) *StatsRepository {
	t.Helper()

	db, err := database.Initialize(filepath.Join(t.TempDir(), "stats.db"))
	if err != nil {
		t.Fatalf("Failed to initialize database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := db.EnsureSchema(); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return NewStatsRepository(db)
}

func TestPairStatsEmpty(t *testing.T) {
	repo := newTestRepo(t)

	stats, err := repo.PairStats(1)
	if err != nil {
		t.Fatalf("PairStats() failed: %v", err)
	}

	if stats.TotalGuesses != 0 || stats.CorrectGuesses != 0 || stats.PercentCorrect != 0 {
		t.Errorf("empty pair stats = %+v, want all zero", stats)
	}
}

func TestPairStatsFloor(t *testing.T) {
	repo := newTestRepo(t)

	// 3 of 4 correct: 75% exactly
	for _, correct := range []bool{true, true, true, false} {
		if err := repo.RecordGuess("guesser-1", 7, correct); err != nil {
			t.Fatalf("RecordGuess() failed: %v", err)
		}
	}

	stats, err := repo.PairStats(7)
	if err != nil {
		t.Fatalf("PairStats() failed: %v", err)
	}
	if stats.TotalGuesses != 4 {
		t.Errorf("TotalGuesses = %d, want 4", stats.TotalGuesses)
	}
	if stats.CorrectGuesses != 3 {
		t.Errorf("CorrectGuesses = %d, want 3", stats.CorrectGuesses)
	}
	if stats.PercentCorrect != 75 {
		t.Errorf("PercentCorrect = %d, want 75", stats.PercentCorrect)
	}

	// 1 of 3 correct floors to 33
	for _, correct := range []bool{true, false, false} {
		if err := repo.RecordGuess("guesser-2", 8, correct); err != nil {
			t.Fatalf("RecordGuess() failed: %v", err)
		}
	}

	stats, err = repo.PairStats(8)
	if err != nil {
		t.Fatalf("PairStats() failed: %v", err)
	}
	if stats.PercentCorrect != 33 {
		t.Errorf("PercentCorrect = %d, want 33", stats.PercentCorrect)
	}
}

func TestPairStatsIsolatedPerPair(t *testing.T) {
	repo := newTestRepo(t)

	if err := repo.RecordGuess("guesser-1", 1, true); err != nil {
		t.Fatalf("RecordGuess() failed: %v", err)
	}
	if err := repo.RecordGuess("guesser-1", 2, false); err != nil {
		t.Fatalf("RecordGuess() failed: %v", err)
	}

	stats, err := repo.PairStats(1)
	if err != nil {
		t.Fatalf("PairStats() failed: %v", err)
	}
	if stats.TotalGuesses != 1 || stats.PercentCorrect != 100 {
		t.Errorf("pair 1 stats = %+v, want 1 guess at 100%%", stats)
	}
}

func TestPercentileRankNoGames(t *testing.T) {
	repo := newTestRepo(t)

	percentile, games, err := repo.PercentileRank(3, 5)
	if err != nil {
		t.Fatalf("PercentileRank() failed: %v", err)
	}
	if games != 0 || percentile != 0 {
		t.Errorf("PercentileRank() = (%d, %d), want (0, 0) with no games", percentile, games)
	}
}

func TestPercentileRank(t *testing.T) {
	repo := newTestRepo(t)

	// Four prior 10-question games: scores 2, 4, 6, 8
	for _, score := range []int{2, 4, 6, 8} {
		if err := repo.RecordGame("other", score, 10); err != nil {
			t.Fatalf("RecordGame() failed: %v", err)
		}
	}

	tests := []struct {
		score int
		want  int
	}{
		{score: 1, want: 0},   // below everyone
		{score: 2, want: 25},  // ties the lowest
		{score: 5, want: 50},  // beats two of four
		{score: 8, want: 100}, // ties the best
		{score: 10, want: 100},
	}

	for _, tt := range tests {
		percentile, games, err := repo.PercentileRank(tt.score, 10)
		if err != nil {
			t.Fatalf("PercentileRank(%d, 10) failed: %v", tt.score, err)
		}
		if games != 4 {
			t.Errorf("PercentileRank(%d, 10) games = %d, want 4", tt.score, games)
		}
		if percentile != tt.want {
			t.Errorf("PercentileRank(%d, 10) = %d, want %d", tt.score, percentile, tt.want)
		}
	}
}

func TestPercentileRankMonotonic(t *testing.T) {
	repo := newTestRepo(t)

	for _, score := range []int{1, 3, 3, 7, 9} {
		if err := repo.RecordGame("other", score, 10); err != nil {
			t.Fatalf("RecordGame() failed: %v", err)
		}
	}

	prev := -1
	for score := 0; score <= 10; score++ {
		percentile, _, err := repo.PercentileRank(score, 10)
		if err != nil {
			t.Fatalf("PercentileRank(%d, 10) failed: %v", score, err)
		}
		if percentile < prev {
			t.Errorf("percentile dropped from %d to %d at score %d", prev, percentile, score)
		}
		prev = percentile
	}
}

func TestPercentileRankSeparatesQuestionCounts(t *testing.T) {
	repo := newTestRepo(t)

	// A perfect 3-question game must not affect 10-question rankings
	if err := repo.RecordGame("other", 3, 3); err != nil {
		t.Fatalf("RecordGame() failed: %v", err)
	}

	_, games, err := repo.PercentileRank(5, 10)
	if err != nil {
		t.Fatalf("PercentileRank() failed: %v", err)
	}
	if games != 0 {
		t.Errorf("games with 10 questions = %d, want 0", games)
	}
}
