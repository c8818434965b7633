package middleware

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"net/http"
	"sync"
	"time"

	domainAccount "coachdesk/internal/domain/account"
)

// contextKey is an unexported type for context keys in this package.
type contextKey string

const sessionContextKey contextKey = "session"

// Session represents an authenticated session. The admin console fills the
// operator fields; the coaching dashboard fills BackendToken and UserID with
// the member's backend session. The backend token never leaves the server:
// the browser only ever sees the opaque cookie token.
type Session struct {
	// Operator fields (admin console).
	AccountID              string
	Email                  string
	Role                   string
	PasswordChangeRequired bool

	// Member fields (coaching dashboard).
	BackendToken string
	UserID       string

	CreatedAt time.Time
}

// IsMember reports whether this session belongs to a dashboard member.
// INVARIANT: Session fields are not mutated
func (s Session) IsMember() bool {
	return s.BackendToken != ""
}

// SessionStore is an in-memory session store.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]Session
}

// NewSessionStore creates a new in-memory session store.
func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[string]Session),
	}
}

// Create stores a new session and returns the opaque cookie token.
// PRE: session identifies either an operator or a member
// POST: Session is stored, token is returned
func (ss *SessionStore) Create(session Session) (string, error) {
	token, err := generateToken()
	if err != nil {
		return "", err
	}
	session.CreatedAt = time.Now()
	ss.mu.Lock()
	defer ss.mu.Unlock()
	ss.sessions[token] = session
	return token, nil
}

// Get retrieves a session by token.
// PRE: token is non-empty
// POST: Returns session if valid and not expired; expired sessions are evicted
func (ss *SessionStore) Get(token string) (Session, bool) {
	ss.mu.RLock()
	session, ok := ss.sessions[token]
	ss.mu.RUnlock()
	if !ok {
		return Session{}, false
	}
	// Sessions expire after 24 hours
	if time.Since(session.CreatedAt) > 24*time.Hour {
		ss.mu.Lock()
		// Re-check under the write lock; another request may have already
		// evicted this token or replaced the session.
		if current, ok := ss.sessions[token]; ok && time.Since(current.CreatedAt) > 24*time.Hour {
			delete(ss.sessions, token)
		}
		ss.mu.Unlock()
		return Session{}, false
	}
	return session, true
}

// Delete removes a session by token.
// PRE: token is non-empty
// POST: Session with given token is removed
func (ss *SessionStore) Delete(token string) {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	delete(ss.sessions, token)
}

// Update replaces the session for a given token in-place.
// PRE: token exists in the store
// POST: Session is replaced with the new value
func (ss *SessionStore) Update(token string, session Session) bool {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	if _, ok := ss.sessions[token]; !ok {
		return false
	}
	ss.sessions[token] = session
	return true
}

// CookieName is the session cookie name. The two apps run as separate
// processes and may share a host, so each sets its own before serving.
var CookieName = "coachdesk_session"

// SecureCookies controls the Secure flag on session cookies. Set true in
// production (HTTPS only).
var SecureCookies = false

// Auth returns middleware that extracts the session from the cookie and sets it in context.
// It does NOT block unauthenticated requests — use RequireAuth or RequireRole for that.
func Auth(sessions *SessionStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(CookieName)
			if err == nil && cookie.Value != "" {
				if session, ok := sessions.Get(cookie.Value); ok {
					ctx := context.WithValue(r.Context(), sessionContextKey, session)
					r = r.WithContext(ctx)
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireAuth returns middleware that blocks unauthenticated requests.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := GetSessionFromContext(r.Context()); !ok {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireRole returns middleware that blocks requests from operators without one of the specified roles.
func RequireRole(roles ...string) func(http.Handler) http.Handler {
	roleSet := make(map[string]bool, len(roles))
	for _, r := range roles {
		roleSet[r] = true
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, ok := GetSessionFromContext(r.Context())
			if !ok {
				http.Redirect(w, r, "/login", http.StatusSeeOther)
				return
			}
			if !roleSet[session.Role] {
				http.Error(w, "Forbidden", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// GetSessionFromContext extracts the session from the request context.
func GetSessionFromContext(ctx context.Context) (Session, bool) {
	session, ok := ctx.Value(sessionContextKey).(Session)
	return session, ok
}

// SetSessionCookie sets the session cookie on the response.
func SetSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		HttpOnly: true,
		Secure:   SecureCookies,
		SameSite: http.SameSiteStrictMode,
		Path:     "/",
		MaxAge:   86400, // 24 hours
	})
}

// ClearSessionCookie removes the session cookie.
func ClearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		HttpOnly: true,
		Secure:   SecureCookies,
		SameSite: http.SameSiteStrictMode,
		Path:     "/",
		MaxAge:   -1,
	})
}

// IsAdmin checks if the current session is an admin operator.
func IsAdmin(ctx context.Context) bool {
	session, ok := GetSessionFromContext(ctx)
	return ok && session.Role == domainAccount.RoleAdmin
}

// ContextWithSession returns a context with the given session set.
// Intended for use in tests.
func ContextWithSession(ctx context.Context, sess Session) context.Context {
	return context.WithValue(ctx, sessionContextKey, sess)
}

func generateToken() (string, error) {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}
