package session

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"gotclass/internal/models"
)

func newTestManager() *Manager {
	return NewManager("test-secret", time.Hour)
}

func roundTrip(t *testing.T, m *Manager, sess models.QuizSession) models.QuizSession {
	t.Helper()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	if err := m.Save(w, r, sess); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	cookies := w.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("expected 1 cookie, got %d", len(cookies))
	}

	next := httptest.NewRequest(http.MethodGet, "/", nil)
	next.AddCookie(cookies[0])
	return m.Get(next)
}

func TestGetWithoutCookieAssignsUserID(t *testing.T) {
	m := newTestManager()

	sess := m.Get(httptest.NewRequest(http.MethodGet, "/", nil))
	if sess.UserID == "" {
		t.Error("fresh session should get a user id")
	}
	if len(sess.Done) != 0 || sess.Correct != 0 || sess.Recorded {
		t.Errorf("fresh session not zeroed: %+v", sess)
	}
}

func TestSaveGetRoundTrip(t *testing.T) {
	m := newTestManager()

	saved := models.QuizSession{
		UserID:   "guesser-abc",
		Done:     []int{3, 1, 5},
		Correct:  2,
		Recorded: true,
	}

	got := roundTrip(t, m, saved)

	if got.UserID != saved.UserID {
		t.Errorf("UserID = %q, want %q", got.UserID, saved.UserID)
	}
	if len(got.Done) != 3 || got.Done[0] != 3 || got.Done[1] != 1 || got.Done[2] != 5 {
		t.Errorf("Done = %v, want [3 1 5]", got.Done)
	}
	if got.Correct != 2 {
		t.Errorf("Correct = %d, want 2", got.Correct)
	}
	if !got.Recorded {
		t.Error("Recorded flag lost in round trip")
	}
}

func TestTamperedCookieYieldsFreshSession(t *testing.T) {
	m := newTestManager()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	if err := m.Save(w, r, models.QuizSession{UserID: "guesser-abc", Correct: 5}); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	cookie := w.Result().Cookies()[0]

	// Flip a character in the signature
	tampered := *cookie
	if strings.HasSuffix(tampered.Value, "A") {
		tampered.Value = tampered.Value[:len(tampered.Value)-1] + "B"
	} else {
		tampered.Value = tampered.Value[:len(tampered.Value)-1] + "A"
	}

	next := httptest.NewRequest(http.MethodGet, "/", nil)
	next.AddCookie(&tampered)
	got := m.Get(next)

	if got.UserID == "guesser-abc" || got.Correct != 0 {
		t.Errorf("tampered cookie was accepted: %+v", got)
	}
	if got.UserID == "" {
		t.Error("fresh session should still get a user id")
	}
}

func TestSignatureDependsOnSecret(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	if err := NewManager("secret-one", time.Hour).Save(w, r, models.QuizSession{UserID: "guesser-abc"}); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	next := httptest.NewRequest(http.MethodGet, "/", nil)
	next.AddCookie(w.Result().Cookies()[0])
	got := NewManager("secret-two", time.Hour).Get(next)

	if got.UserID == "guesser-abc" {
		t.Error("cookie signed with a different secret was accepted")
	}
}

func TestExpiredCookieYieldsFreshSession(t *testing.T) {
	expired := NewManager("test-secret", -time.Minute)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	if err := expired.Save(w, r, models.QuizSession{UserID: "guesser-abc"}); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	next := httptest.NewRequest(http.MethodGet, "/", nil)
	next.AddCookie(w.Result().Cookies()[0])
	got := newTestManager().Get(next)

	if got.UserID == "guesser-abc" {
		t.Error("expired cookie was accepted")
	}
}

func TestRestart(t *testing.T) {
	m := newTestManager()

	before := models.QuizSession{
		UserID:   "guesser-abc",
		Done:     []int{1, 2, 3},
		Correct:  3,
		Recorded: true,
	}

	after := m.Restart(before)

	if after.UserID == before.UserID || after.UserID == "" {
		t.Errorf("Restart() UserID = %q, want a new id", after.UserID)
	}
	if !strings.HasSuffix(after.UserID, RestartSuffix) {
		t.Errorf("Restart() UserID = %q, want %s suffix", after.UserID, RestartSuffix)
	}
	if len(after.Done) != 0 || after.Correct != 0 || after.Recorded {
		t.Errorf("Restart() did not reset state: %+v", after)
	}
}

func TestSecureFlagFollowsRequestScheme(t *testing.T) {
	m := newTestManager()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("X-Forwarded-Proto", "https")
	if err := m.Save(w, r, models.QuizSession{UserID: "guesser-abc"}); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	if !w.Result().Cookies()[0].Secure {
		t.Error("cookie should be Secure behind an https proxy")
	}

	w = httptest.NewRecorder()
	r = httptest.NewRequest(http.MethodGet, "/", nil)
	if err := m.Save(w, r, models.QuizSession{UserID: "guesser-abc"}); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	if w.Result().Cookies()[0].Secure {
		t.Error("cookie should not be Secure for plain http")
	}
}
