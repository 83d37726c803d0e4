package service

import (
	"fmt"
	"math/rand"
	"sync"

	"gotclass/internal/catalog"
	"gotclass/internal/models"
	"gotclass/internal/repository"
)

// maxQuestions caps a playthrough regardless of catalog size
const maxQuestions = 20

// Question describes one quiz question ready to render
type Question struct {
	Pair      models.Pair
	RealFirst bool // display order only, re-rolled per render
	Number    int  // 1-based position in this playthrough
	Total     int
}

// AnswerResult describes the outcome of a submitted answer
type AnswerResult struct {
	Correct        bool
	RealClass      models.ClassRecord
	PercentCorrect int // share of players who got this pair right
	IsFinal        bool
}

// FinalResult summarizes a completed playthrough
type FinalResult struct {
	Score          int
	TotalQuestions int
	ScorePercent   int
	Percentile     int
}

// Progress is the state of the progress indicators for the current question
type Progress struct {
	QuestionNumber int
	Percent        int
}

// QuizService drives the quiz flow: question selection, scoring, completion.
// The random source is injected so tests can fix the seed; it backs both
// option ordering and the percentile smoothing fallback.
type QuizService struct {
	catalog *catalog.Catalog
	stats   *repository.StatsRepository

	mu  sync.Mutex // rand.Rand is not safe for concurrent use
	rng *rand.Rand

	totalQuestions int
}

// NewQuizService creates a quiz service. The question count is fixed per
// process at min(20, pair count).
func NewQuizService(cat *catalog.Catalog, stats *repository.StatsRepository, rng *rand.Rand) *QuizService {
	total := cat.Count()
	if total > maxQuestions {
		total = maxQuestions
	}

	return &QuizService{
		catalog:        cat,
		stats:          stats,
		rng:            rng,
		totalQuestions: total,
	}
}

// TotalQuestions returns the per-process question cap
func (s *QuizService) TotalQuestions() int {
	return s.totalQuestions
}

// NextQuestion picks an unseen pair uniformly at random. The second return
// is false when the playthrough is complete and the final results should
// be shown instead.
func (s *QuizService) NextQuestion(sess models.QuizSession) (Question, bool) {
	if len(sess.Done) >= s.totalQuestions {
		return Question{}, false
	}

	var available []models.Pair
	for _, pair := range s.catalog.Pairs() {
		if !sess.IsDone(pair.ID) {
			available = append(available, pair)
		}
	}
	if len(available) == 0 {
		return Question{}, false
	}

	pair := available[s.randIntn(len(available))]

	return Question{
		Pair:      pair,
		RealFirst: s.randIntn(2) == 0,
		Number:    len(sess.Done) + 1,
		Total:     s.totalQuestions,
	}, true
}

// SubmitAnswer scores an answer against the chosen option's real flag and
// persists the guess. The guess is recorded before the session is touched,
// so a store failure leaves the session unchanged. Answering the same pair
// twice appends another guess record but does not grow the done list.
func (s *QuizService) SubmitAnswer(sess models.QuizSession, pairID int, choseReal bool) (models.QuizSession, AnswerResult, error) {
	pair, err := s.catalog.Lookup(pairID)
	if err != nil {
		return sess, AnswerResult{}, err
	}

	if err := s.stats.RecordGuess(sess.UserID, pairID, choseReal); err != nil {
		return sess, AnswerResult{}, fmt.Errorf("failed to record guess: %w", err)
	}

	sess.MarkDone(pairID)
	if choseReal {
		sess.Correct++
	}

	stats, err := s.stats.PairStats(pairID)
	if err != nil {
		return sess, AnswerResult{}, fmt.Errorf("failed to load pair stats: %w", err)
	}

	percentCorrect := stats.PercentCorrect
	if stats.TotalGuesses < 2 {
		// Too little data to show a real figure; substitute a plausible one
		percentCorrect = 60 + s.randIntn(36)
	}

	return sess, AnswerResult{
		Correct:        choseReal,
		RealClass:      pair.RealClass,
		PercentCorrect: percentCorrect,
		IsFinal:        len(sess.Done) >= s.totalQuestions,
	}, nil
}

// FinishQuiz records the completed game (once per playthrough) and computes
// the final summary. Re-arriving at the results screen re-renders the
// summary without inserting another game record.
func (s *QuizService) FinishQuiz(sess models.QuizSession) (models.QuizSession, FinalResult, error) {
	score := sess.Correct
	total := len(sess.Done)

	if !sess.Recorded {
		if err := s.stats.RecordGame(sess.UserID, score, total); err != nil {
			return sess, FinalResult{}, fmt.Errorf("failed to record game: %w", err)
		}
		sess.Recorded = true
	}

	scorePercent := 0
	if total > 0 {
		scorePercent = score * 100 / total
	}

	percentile, priorGames, err := s.stats.PercentileRank(score, total)
	if err != nil {
		return sess, FinalResult{}, fmt.Errorf("failed to compute percentile: %w", err)
	}

	switch {
	case priorGames == 0:
		// No comparison data at all; call it median
		percentile = 50
	case percentile == 0:
		// Every prior game scored strictly better. Showing "better than 0%
		// of players" reads as broken, so substitute a smoothed value near
		// the score. This is presentation, not a statistic.
		percentile = s.smoothedPercentile(scorePercent)
	}

	return sess, FinalResult{
		Score:          score,
		TotalQuestions: total,
		ScorePercent:   scorePercent,
		Percentile:     percentile,
	}, nil
}

// Progress returns the progress-bar state for the visitor's next question
func (s *QuizService) Progress(sess models.QuizSession) Progress {
	number := len(sess.Done) + 1
	if number > s.totalQuestions {
		number = s.totalQuestions
	}

	percent := 0
	if s.totalQuestions > 0 {
		percent = number * 100 / s.totalQuestions
	}

	return Progress{QuestionNumber: number, Percent: percent}
}

// smoothedPercentile draws uniformly from [max(p-15,10), min(p+15,95)]
func (s *QuizService) smoothedPercentile(scorePercent int) int {
	low := scorePercent - 15
	if low < 10 {
		low = 10
	}
	high := scorePercent + 15
	if high > 95 {
		high = 95
	}
	return low + s.randIntn(high-low+1)
}

func (s *QuizService) randIntn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Intn(n)
}
