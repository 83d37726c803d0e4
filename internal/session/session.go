package session

import (
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"gotclass/internal/models"
)

// CookieName is the cookie carrying the signed quiz session
const CookieName = "quiz_session"

// RestartSuffix marks guesser ids minted by a restart, so restarted
// playthroughs stay distinguishable in the persisted stats
const RestartSuffix = "-restart"

// Manager signs quiz session state into a cookie and reads it back.
// The state lives entirely client-side; the signature is what keeps a
// visitor from inflating their own score.
type Manager struct {
	secret   []byte
	lifetime time.Duration
}

// NewManager creates a session manager with the given HMAC secret
func NewManager(secret string, lifetime time.Duration) *Manager {
	return &Manager{secret: []byte(secret), lifetime: lifetime}
}

type quizClaims struct {
	Done     []int `json:"done"`
	Correct  int   `json:"correct"`
	Recorded bool  `json:"recorded"`
	jwt.RegisteredClaims
}

// Get decodes the session cookie from the request. A missing, tampered or
// expired cookie yields a fresh session; a fresh session gets a new
// guesser id immediately so every persisted guess has an owner.
func (m *Manager) Get(r *http.Request) models.QuizSession {
	sess := models.QuizSession{}

	if cookie, err := r.Cookie(CookieName); err == nil {
		claims := &quizClaims{}
		token, err := jwt.ParseWithClaims(cookie.Value, claims, func(t *jwt.Token) (interface{}, error) {
			return m.secret, nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
		if err == nil && token.Valid {
			sess = models.QuizSession{
				UserID:   claims.Subject,
				Done:     claims.Done,
				Correct:  claims.Correct,
				Recorded: claims.Recorded,
			}
		}
	}

	if sess.UserID == "" {
		sess.UserID = uuid.NewString()
	}

	return sess
}

// Save signs the session state and sets the cookie
func (m *Manager) Save(w http.ResponseWriter, r *http.Request, sess models.QuizSession) error {
	now := time.Now()
	claims := quizClaims{
		Done:     sess.Done,
		Correct:  sess.Correct,
		Recorded: sess.Recorded,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sess.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.lifetime)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    signed,
		Path:     "/",
		Expires:  now.Add(m.lifetime),
		HttpOnly: true,
		Secure:   isSecureRequest(r),
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Restart returns a reset session with a fresh, suffix-marked guesser id
func (m *Manager) Restart(models.QuizSession) models.QuizSession {
	return models.QuizSession{UserID: uuid.NewString() + RestartSuffix}
}

// isSecureRequest determines if the request is over HTTPS, directly or
// behind a reverse proxy
func isSecureRequest(r *http.Request) bool {
	if r.TLS != nil {
		return true
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto == "https" {
		return true
	}
	return r.URL.Scheme == "https"
}
