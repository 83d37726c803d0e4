package handlers

// IndexView is the data for the full landing page
type IndexView struct {
	Title          string
	ButtonLabel    string
	TotalQuestions int
}

// OptionView is one clickable class card in a question
type OptionView struct {
	ClassName   string
	Description string
	OptionNum   int
	IsReal      bool
	PairID      int
}

// QuestionView is the data for a question fragment, including the
// out-of-band progress indicator updates
type QuestionView struct {
	Options         []OptionView
	QuestionNumber  int
	ProgressPercent int
}

// ResultView is the data for an answer result fragment
type ResultView struct {
	Correct        bool
	RealClassName  string
	RealClassCode  string
	PercentCorrect int
	IsFinal        bool
}

// FinalView is the data for the end-of-quiz summary fragment
type FinalView struct {
	Score          int
	TotalQuestions int
	ScorePercent   int
	Percentile     int
}

// StartView is the data for the start-screen fragment returned by restart
type StartView struct {
	ButtonLabel string
}
