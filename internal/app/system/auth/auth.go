package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	"github.com/myvedaai/Admin-Dashboard/internal/app/system/apiresp"
	"go.uber.org/zap"
)

/*─────────────────────────────────────────────────────────────────────────────*
| Session constants                                                           |
*─────────────────────────────────────────────────────────────────────────────*/

const (
	// RecordKey holds the serialized SessionRecord inside the cookie session.
	RecordKey = "admin_session"

	// tokenKey holds the screen token of a visitor who has not signed in.
	tokenKey = "screen_token"

	// EntryPath is where signed-out browsers are sent.
	EntryPath = "/"
)

// ErrInvalidRecord is returned when a stored session record cannot be used.
var ErrInvalidRecord = errors.New("invalid session record")

/*─────────────────────────────────────────────────────────────────────────────*
| Session record                                                              |
*─────────────────────────────────────────────────────────────────────────────*/

// SessionRecord is the signed-in principal. It is stored as JSON in the
// session and injected into the request context by LoadSessionUser.
//
// Token identifies the session's screen state and its login attempts.
type SessionRecord struct {
	ID        string     `json:"id"`
	Email     string     `json:"email"`
	Name      string     `json:"name"`
	Role      string     `json:"role"`
	LastLogin *time.Time `json:"lastLogin,omitempty"`
	Token     string     `json:"token"`
}

// DisplayRole returns the role with its first letter capitalized.
func (s SessionRecord) DisplayRole() string {
	if s.Role == "" {
		return ""
	}
	return strings.ToUpper(s.Role[:1]) + s.Role[1:]
}

// ParseRecord decodes a stored record. Records missing an id, email or role
// are rejected.
func ParseRecord(raw string) (*SessionRecord, error) {
	var rec SessionRecord
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRecord, err)
	}
	if rec.ID == "" || rec.Email == "" || rec.Role == "" {
		return nil, ErrInvalidRecord
	}
	return &rec, nil
}

type ctxKey string

const currentUserKey ctxKey = "currentUser"

// CurrentUser returns the user & "found?" flag.
func CurrentUser(r *http.Request) (*SessionRecord, bool) {
	u, ok := r.Context().Value(currentUserKey).(*SessionRecord)
	return u, ok
}

// WithTestUser injects a user into the request context, as LoadSessionUser
// does for a valid session. Used by handler tests.
func WithTestUser(r *http.Request, u *SessionRecord) *http.Request {
	return withUser(r, u)
}

func withUser(r *http.Request, u *SessionRecord) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), currentUserKey, u))
}

/*─────────────────────────────────────────────────────────────────────────────*
| Session manager                                                             |
*─────────────────────────────────────────────────────────────────────────────*/

// SessionManager owns the cookie store and the middleware built on it.
type SessionManager struct {
	store *sessions.CookieStore
	name  string
	log   *zap.Logger
}

// NewSessionManager creates the cookie store. secure controls the Secure
// flag and SameSite mode: None for HTTPS deployments, Lax for local http.
func NewSessionManager(sessionKey, name, domain string, maxAge time.Duration, secure bool, logger *zap.Logger) (*SessionManager, error) {
	if sessionKey == "" {
		return nil, fmt.Errorf("session key is empty; provide ≥32 random chars")
	}
	if len(sessionKey) < 32 {
		logger.Warn("session key is short; 32+ chars recommended",
			zap.Int("length", len(sessionKey)))
	}

	store := sessions.NewCookieStore([]byte(sessionKey))
	opts := &sessions.Options{
		Domain:   domain,
		Path:     "/",
		MaxAge:   int(maxAge.Seconds()),
		Secure:   secure,
		HttpOnly: true,
	}
	if secure {
		opts.SameSite = http.SameSiteNoneMode
	} else {
		opts.SameSite = http.SameSiteLaxMode
	}
	store.Options = opts
	store.MaxAge(opts.MaxAge)

	logger.Info("session store initialized",
		zap.String("name", name),
		zap.Bool("secure", secure),
		zap.String("domain", domain))

	return &SessionManager{store: store, name: name, log: logger}, nil
}

// Name returns the session cookie name.
func (m *SessionManager) Name() string { return m.name }

func (m *SessionManager) session(r *http.Request) (*sessions.Session, error) {
	// A cookie that fails to decode still yields a fresh session.
	return m.store.Get(r, m.name)
}

// LoadSessionUser reads the session record at the start of every request.
// A record that cannot be decoded clears the session and the request
// continues anonymous.
func (m *SessionManager) LoadSessionUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, err := m.session(r)
		if err != nil {
			m.log.Warn("session cookie rejected; clearing", zap.Error(err))
			m.clear(w, r, sess)
			next.ServeHTTP(w, r)
			return
		}

		raw, present := sess.Values[RecordKey]
		if !present {
			next.ServeHTTP(w, r)
			return
		}
		s, _ := raw.(string)
		rec, err := ParseRecord(s)
		if err != nil {
			m.log.Warn("session record unreadable; clearing", zap.Error(err))
			m.clear(w, r, sess)
			next.ServeHTTP(w, r)
			return
		}
		next.ServeHTTP(w, withUser(r, rec))
	})
}

// RequireSignedIn ensures there is a user in context (set by LoadSessionUser).
// If not signed in:
//   - HTML: 303 redirect to the entry screen.
//   - API:  401 with a JSON error envelope.
func (m *SessionManager) RequireSignedIn(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := CurrentUser(r); ok {
			next.ServeHTTP(w, r)
			return
		}
		unauthorized(w, r)
	})
}

// RequireRole ensures the signed-in user holds one of allowed. Role names
// compare case-insensitively.
func (m *SessionManager) RequireRole(allowed ...string) func(http.Handler) http.Handler {
	set := make(map[string]struct{}, len(allowed))
	for _, role := range allowed {
		set[strings.ToLower(strings.TrimSpace(role))] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			u, ok := CurrentUser(r)
			if !ok {
				unauthorized(w, r)
				return
			}
			if _, has := set[strings.ToLower(u.Role)]; !has {
				if wantsHTML(r) {
					http.Redirect(w, r, "/forbidden", http.StatusSeeOther)
					return
				}
				apiresp.Fail(w, r, http.StatusForbidden, "forbidden")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// SignIn stores rec in the session. A missing token is generated.
func (m *SessionManager) SignIn(w http.ResponseWriter, r *http.Request, rec SessionRecord) (SessionRecord, error) {
	sess, _ := m.session(r)
	if rec.Token == "" {
		rec.Token = uuid.NewString()
	}
	b, err := json.Marshal(rec)
	if err != nil {
		return rec, fmt.Errorf("encode session record: %w", err)
	}
	sess.Values[RecordKey] = string(b)
	delete(sess.Values, tokenKey)
	if err := sess.Save(r, w); err != nil {
		return rec, fmt.Errorf("save session: %w", err)
	}
	return rec, nil
}

// SignOut expires the session cookie.
func (m *SessionManager) SignOut(w http.ResponseWriter, r *http.Request) {
	sess, _ := m.session(r)
	m.clear(w, r, sess)
}

// PeekToken returns the screen token already associated with the request,
// without issuing one.
func (m *SessionManager) PeekToken(r *http.Request) (string, bool) {
	if u, ok := CurrentUser(r); ok && u.Token != "" {
		return u.Token, true
	}
	sess, err := m.session(r)
	if err != nil {
		return "", false
	}
	tok, ok := sess.Values[tokenKey].(string)
	return tok, ok && tok != ""
}

// Token returns the request's screen token, issuing and saving a new one
// for visitors who have none.
func (m *SessionManager) Token(w http.ResponseWriter, r *http.Request) (string, error) {
	if tok, ok := m.PeekToken(r); ok {
		return tok, nil
	}
	sess, _ := m.session(r)
	tok := uuid.NewString()
	sess.Values[tokenKey] = tok
	if err := sess.Save(r, w); err != nil {
		return "", fmt.Errorf("save session: %w", err)
	}
	return tok, nil
}

func (m *SessionManager) clear(w http.ResponseWriter, r *http.Request, sess *sessions.Session) {
	if sess == nil {
		return
	}
	sess.Values = map[any]any{}
	sess.Options.MaxAge = -1
	if err := sess.Save(r, w); err != nil {
		m.log.Error("failed to clear session", zap.Error(err))
	}
}

// helpers

func unauthorized(w http.ResponseWriter, r *http.Request) {
	if wantsHTML(r) {
		http.Redirect(w, r, EntryPath, http.StatusSeeOther)
		return
	}
	apiresp.Fail(w, r, http.StatusUnauthorized, "unauthorized")
}

func wantsHTML(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "text/html")
}
