package models

// QuizSession is the per-visitor quiz state carried in the session cookie.
// The zero value is a valid fresh session with no identity assigned yet.
type QuizSession struct {
	UserID   string
	Done     []int
	Correct  int
	Recorded bool
}

// IsDone reports whether a pair has already been answered this playthrough
func (s *QuizSession) IsDone(pairID int) bool {
	for _, id := range s.Done {
		if id == pairID {
			return true
		}
	}
	return false
}

// MarkDone appends a pair to the done list. Submitting the same pair
// twice does not grow the list.
func (s *QuizSession) MarkDone(pairID int) {
	if !s.IsDone(pairID) {
		s.Done = append(s.Done, pairID)
	}
}

// InProgress reports whether the visitor has answered at least one question
func (s *QuizSession) InProgress() bool {
	return len(s.Done) > 0
}
