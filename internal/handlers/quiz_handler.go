package handlers

import (
	"errors"
	"html/template"
	"log"
	"net/http"
	"strconv"

	"gotclass/internal/catalog"
	"gotclass/internal/models"
	"gotclass/internal/service"
	"gotclass/internal/session"
)

// QuizHandler handles quiz HTTP requests
type QuizHandler struct {
	quizService *service.QuizService
	sessions    *session.Manager
	templates   *template.Template
}

// NewQuizHandler creates a new quiz handler
func NewQuizHandler(quizService *service.QuizService, sessions *session.Manager, templates *template.Template) *QuizHandler {
	return &QuizHandler{
		quizService: quizService,
		sessions:    sessions,
		templates:   templates,
	}
}

// Home renders the landing page
func (h *QuizHandler) Home(w http.ResponseWriter, r *http.Request) {
	sess := h.sessions.Get(r)

	label := "Start Quiz"
	if sess.InProgress() {
		label = "Resume Quiz"
	}

	// Re-issue the cookie so a first-time visitor keeps the guesser id
	// they were just assigned
	if err := h.sessions.Save(w, r, sess); err != nil {
		respondWithError(w, http.StatusInternalServerError, "Internal server error", "Error saving session", err)
		return
	}

	data := IndexView{
		Title:          "Community College Got Class",
		ButtonLabel:    label,
		TotalQuestions: h.quizService.TotalQuestions(),
	}

	if err := h.templates.ExecuteTemplate(w, "index.tmpl", data); err != nil {
		log.Printf("Error rendering index template: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

// NextQuestion advances the quiz: either the next unseen pair or, once the
// question cap is reached, the final results
func (h *QuizHandler) NextQuestion(w http.ResponseWriter, r *http.Request) {
	sess := h.sessions.Get(r)

	question, ok := h.quizService.NextQuestion(sess)
	if !ok {
		h.finishQuiz(w, r, sess)
		return
	}

	if err := h.sessions.Save(w, r, sess); err != nil {
		respondWithError(w, http.StatusInternalServerError, "Internal server error", "Error saving session", err)
		return
	}

	progress := h.quizService.Progress(sess)
	data := QuestionView{
		Options:         questionOptions(question),
		QuestionNumber:  progress.QuestionNumber,
		ProgressPercent: progress.Percent,
	}

	if err := h.templates.ExecuteTemplate(w, "question.tmpl", data); err != nil {
		log.Printf("Error rendering question template: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

// SubmitAnswer scores a submitted answer and returns the result fragment
func (h *QuizHandler) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	pairID, err := strconv.Atoi(r.FormValue("pair_id"))
	if err != nil {
		http.Error(w, "Invalid pair ID", http.StatusBadRequest)
		return
	}
	choseReal := r.FormValue("is_real") == "true"

	sess := h.sessions.Get(r)

	sess, result, err := h.quizService.SubmitAnswer(sess, pairID, choseReal)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			respondWithError(w, http.StatusNotFound, "Unknown question", "Answer submitted for unknown pair", err)
			return
		}
		respondWithError(w, http.StatusInternalServerError, "Failed to record answer", "Error submitting answer", err)
		return
	}

	// Only commit the updated session once the guess is safely recorded
	if err := h.sessions.Save(w, r, sess); err != nil {
		respondWithError(w, http.StatusInternalServerError, "Internal server error", "Error saving session", err)
		return
	}

	data := ResultView{
		Correct:        result.Correct,
		RealClassName:  result.RealClass.ClassName,
		RealClassCode:  result.RealClass.ClassCode,
		PercentCorrect: result.PercentCorrect,
		IsFinal:        result.IsFinal,
	}

	if err := h.templates.ExecuteTemplate(w, "result.tmpl", data); err != nil {
		log.Printf("Error rendering result template: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

// Restart resets the session and returns the fresh start screen
func (h *QuizHandler) Restart(w http.ResponseWriter, r *http.Request) {
	sess := h.sessions.Restart(h.sessions.Get(r))

	if err := h.sessions.Save(w, r, sess); err != nil {
		respondWithError(w, http.StatusInternalServerError, "Internal server error", "Error saving session", err)
		return
	}

	data := StartView{ButtonLabel: "Start Quiz"}

	if err := h.templates.ExecuteTemplate(w, "start.tmpl", data); err != nil {
		log.Printf("Error rendering start template: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

func (h *QuizHandler) finishQuiz(w http.ResponseWriter, r *http.Request, sess models.QuizSession) {
	sess, result, err := h.quizService.FinishQuiz(sess)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to compute results", "Error finishing quiz", err)
		return
	}

	if err := h.sessions.Save(w, r, sess); err != nil {
		respondWithError(w, http.StatusInternalServerError, "Internal server error", "Error saving session", err)
		return
	}

	data := FinalView{
		Score:          result.Score,
		TotalQuestions: result.TotalQuestions,
		ScorePercent:   result.ScorePercent,
		Percentile:     result.Percentile,
	}

	if err := h.templates.ExecuteTemplate(w, "final_results.tmpl", data); err != nil {
		log.Printf("Error rendering final results template: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

// questionOptions lays out the two class cards in the service's chosen order
func questionOptions(q service.Question) []OptionView {
	real := OptionView{
		ClassName:   q.Pair.RealClass.ClassName,
		Description: q.Pair.RealClass.Description,
		IsReal:      true,
		PairID:      q.Pair.ID,
	}
	fake := OptionView{
		ClassName:   q.Pair.FakeClass.ClassName,
		Description: q.Pair.FakeClass.Description,
		IsReal:      false,
		PairID:      q.Pair.ID,
	}

	options := []OptionView{real, fake}
	if !q.RealFirst {
		options = []OptionView{fake, real}
	}
	for i := range options {
		options[i].OptionNum = i
	}
	return options
}
