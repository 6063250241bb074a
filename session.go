package estatekit

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/estateops/estatekit/internal/flows"
	"github.com/estateops/estatekit/token"
)

// SessionManager owns the single source of truth for "who is logged in".
// States: Initializing → Unauthenticated ⇄ Authenticated. The Initializing
// state exits exactly once, after the synchronous storage read performed by
// [SessionManager.Initialize].
//
// Methods are safe for concurrent use. Concurrent duplicate logins are not
// deduplicated: they race independently and the last one to resolve wins the
// final state.
type SessionManager struct {
	auth          *AuthAPI
	tokens        *token.Store
	navigator     Navigator
	loginRoute    string
	rejectExpired bool
	metrics       *Metrics
	events        *eventDispatcher
	log           *zap.Logger
	now           func() time.Time

	mu           sync.Mutex
	tok          string
	user         *UserProfile
	role         Role
	loading      bool
	initialized  bool
	listeners    map[uint64]func(SessionSnapshot)
	nextListener uint64
}

func newSessionManager(client *Client, cfg SessionConfig, navigator Navigator) *SessionManager {
	return &SessionManager{
		auth:          client.auth,
		tokens:        client.tokens,
		navigator:     navigator,
		loginRoute:    cfg.LoginRoute,
		rejectExpired: cfg.RejectExpiredOnInit,
		metrics:       client.metrics,
		events:        client.events,
		log:           client.log,
		now:           time.Now,
		loading:       true,
		listeners:     make(map[uint64]func(SessionSnapshot)),
	}
}

// Initialize performs the one-time synchronous storage read that exits the
// Initializing state, restoring a persisted session when both token and
// cached profile are present (and, by default, the token is not an expired
// JWT). Idempotent; every mutating operation calls it lazily, so explicit
// invocation at startup is recommended but not required.
func (m *SessionManager) Initialize() {
	m.mu.Lock()
	if m.initialized {
		m.mu.Unlock()
		return
	}
	m.initialized = true

	restored := false
	if stored, ok := m.tokens.Load(); ok {
		adopt := true
		if m.rejectExpired && token.Expired(stored.Token, m.now()) {
			adopt = false
		}
		if adopt {
			if raw, ok := m.tokens.Profile(); ok {
				var user UserProfile
				if err := json.Unmarshal(raw, &user); err == nil && user.ID != "" {
					m.tok = stored.Token
					m.user = &user
					m.role = Role(stored.Role)
					if m.role == "" {
						m.role = user.Role
					}
					restored = true
				}
			}
		}
	}
	m.loading = false
	snapshot := m.snapshotLocked()
	listeners := m.listenersLocked()
	m.mu.Unlock()

	if restored {
		m.metrics.Inc(MetricSessionRestored)
		m.emit(Event{Type: EventSessionRestored, UserID: string(snapshot.User.ID), Role: string(snapshot.Role), Success: true})
		m.log.Info("session restored from storage",
			zap.String("user_id", string(snapshot.User.ID)),
			zap.String("role", string(snapshot.Role)),
		)
	}
	m.fanOut(listeners, snapshot)
}

// Snapshot returns the current read-only session view. IsAuthenticated is
// derived: true iff both token and user are present.
func (m *SessionManager) Snapshot() SessionSnapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshotLocked()
}

// Subscribe registers fn for every state change, in mutation order. The
// returned function unsubscribes; calling it more than once is harmless.
func (m *SessionManager) Subscribe(fn func(SessionSnapshot)) (unsubscribe func()) {
	m.mu.Lock()
	id := m.nextListener
	m.nextListener++
	m.listeners[id] = fn
	m.mu.Unlock()

	return func() {
		m.mu.Lock()
		delete(m.listeners, id)
		m.mu.Unlock()
	}
}

// Login authenticates against the backend. On success the credential triplet
// and profile are persisted and the state transitions to Authenticated —
// all-or-nothing. On failure the returned error carries the backend's literal
// message and any previously established session is left untouched.
func (m *SessionManager) Login(ctx context.Context, email, password string) error {
	m.Initialize()

	payload, err := flows.RunLogin(ctx, email, password, flows.LoginDeps{
		CallLogin: m.callLogin,
		Persist: func(p *flows.LoginPayload) {
			m.tokens.Save(token.Stored{Token: p.Token, UserID: p.UserID, Role: p.Role})
			m.tokens.SaveProfile(p.ProfileJSON)
		},
		Errors: flows.LoginErrors{
			LoginFailed:      ErrLoginFailed,
			SessionIntegrity: ErrSessionIntegrity,
		},
	})
	if err != nil {
		if errors.Is(err, ErrSessionIntegrity) {
			m.metrics.Inc(MetricSessionIntegrityFailure)
		}
		m.metrics.Inc(MetricLoginFailure)
		m.emit(Event{Type: EventLogin, Success: false, Error: err.Error()})
		m.log.Info("login failed", zap.Error(err))
		return err
	}

	var user UserProfile
	if err := json.Unmarshal(payload.ProfileJSON, &user); err != nil {
		m.metrics.Inc(MetricSessionIntegrityFailure)
		m.metrics.Inc(MetricLoginFailure)
		return ErrSessionIntegrity
	}

	m.mu.Lock()
	m.tok = payload.Token
	m.user = &user
	m.role = Role(payload.Role)
	snapshot := m.snapshotLocked()
	listeners := m.listenersLocked()
	m.mu.Unlock()

	m.metrics.Inc(MetricLoginSuccess)
	m.emit(Event{Type: EventLogin, UserID: payload.UserID, Role: payload.Role, Success: true})
	m.log.Info("login succeeded",
		zap.String("user_id", payload.UserID),
		zap.String("role", payload.Role),
	)
	m.fanOut(listeners, snapshot)
	return nil
}

// Register creates an account and immediately logs in with the same
// credentials; registration alone never yields a session. Login failure
// semantics apply transitively.
func (m *SessionManager) Register(ctx context.Context, input RegisterInput) error {
	m.Initialize()

	if input.Role != "" && !input.Role.Valid() {
		m.metrics.Inc(MetricRegisterFailure)
		return fmt.Errorf("%w: %q", ErrInvalidRole, input.Role)
	}

	err := flows.RunRegister(ctx, flows.RegisterDeps{
		CallRegister: func(ctx context.Context) (bool, string) {
			res := m.auth.Register(ctx, input)
			return res.Success, res.Err
		},
		Login: func(ctx context.Context) error {
			return m.Login(ctx, input.Email, input.Password)
		},
		Errors: flows.RegisterErrors{RegisterFailed: ErrRegisterFailed},
	})
	if err != nil {
		m.metrics.Inc(MetricRegisterFailure)
		m.emit(Event{Type: EventRegister, Success: false, Error: err.Error()})
		return err
	}

	m.metrics.Inc(MetricRegisterSuccess)
	m.emit(Event{Type: EventRegister, Success: true})
	return nil
}

// Logout tears the session down: best-effort backend notification, storage
// clear, in-memory reset, then exactly one navigation to the login route.
// The storage clear strictly precedes the redirect. Logout cannot fail and
// runs the full sequence even when the session was already empty.
func (m *SessionManager) Logout(ctx context.Context) {
	m.Initialize()

	m.mu.Lock()
	hadToken := m.tok != ""
	var userID string
	if m.user != nil {
		userID = string(m.user.ID)
	}
	m.mu.Unlock()

	flows.RunLogout(ctx, flows.LogoutDeps{
		NotifyBackend: func(ctx context.Context) {
			if hadToken {
				_ = m.auth.Logout(ctx)
			}
		},
		ClearStorage: m.tokens.Clear,
		ResetState: func() {
			m.mu.Lock()
			m.tok = ""
			m.user = nil
			m.role = ""
			snapshot := m.snapshotLocked()
			listeners := m.listenersLocked()
			m.mu.Unlock()
			m.fanOut(listeners, snapshot)
		},
		Navigate: func() {
			m.navigator.Push(m.loginRoute)
		},
	})

	m.metrics.Inc(MetricLogout)
	m.emit(Event{Type: EventLogout, UserID: userID, Success: true})
	m.log.Info("logged out", zap.String("user_id", userID))
}

// RefreshUser re-fetches the current user record. Without a token it is a
// no-op that never reaches the network. On success the profile is replaced
// wholesale; on failure the existing state stays untouched — the returned
// error is informational and a failed refresh never logs the user out.
func (m *SessionManager) RefreshUser(ctx context.Context) error {
	m.Initialize()

	err := flows.RunRefresh(ctx, flows.RefreshDeps{
		HasToken: func() bool {
			m.mu.Lock()
			defer m.mu.Unlock()
			return m.tok != ""
		},
		CallMe: func(ctx context.Context) (bool, []byte, string) {
			res := m.auth.Me(ctx)
			if !res.Success {
				return false, nil, res.Err
			}
			return true, res.Data, ""
		},
		Replace: m.replaceProfile,
		Skipped: func() {
			m.metrics.Inc(MetricRefreshSkipped)
		},
		Errors: flows.RefreshErrors{RefreshFailed: ErrRefreshFailed},
	})
	if err != nil {
		m.metrics.Inc(MetricRefreshFailure)
		m.emit(Event{Type: EventRefresh, Success: false, Error: err.Error()})
		m.log.Info("user refresh failed", zap.Error(err))
		return err
	}
	return nil
}

func (m *SessionManager) callLogin(ctx context.Context, email, password string) (bool, *flows.LoginPayload, string) {
	res := m.auth.Login(ctx, email, password)
	if !res.Success {
		return false, nil, res.Err
	}

	var payload loginPayload
	if len(res.Data) == 0 || json.Unmarshal(res.Data, &payload) != nil {
		return true, nil, ""
	}

	out := &flows.LoginPayload{
		Token: token.StripBearer(payload.bearer()),
		Role:  string(payload.role()),
	}
	if payload.User != nil {
		out.UserID = string(payload.User.ID)
		if raw, err := json.Marshal(payload.User); err == nil {
			out.ProfileJSON = raw
		}
	}
	return true, out, ""
}

func (m *SessionManager) replaceProfile(raw []byte) error {
	user, ok := decodeUserPayload(raw)
	if !ok {
		return fmt.Errorf("%w: malformed user payload", ErrRefreshFailed)
	}

	normalized, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRefreshFailed, err)
	}
	m.tokens.SaveProfile(normalized)

	m.mu.Lock()
	m.user = user
	if user.Role != "" {
		m.role = user.Role
	}
	snapshot := m.snapshotLocked()
	listeners := m.listenersLocked()
	m.mu.Unlock()

	m.metrics.Inc(MetricRefreshSuccess)
	m.emit(Event{Type: EventRefresh, UserID: string(user.ID), Role: string(user.Role), Success: true})
	m.fanOut(listeners, snapshot)
	return nil
}

// decodeUserPayload accepts both a flat user object and the {"user": {...}}
// carrier some routes return.
func decodeUserPayload(raw []byte) (*UserProfile, bool) {
	var user UserProfile
	if err := json.Unmarshal(raw, &user); err == nil && user.ID != "" {
		return &user, true
	}
	var holder struct {
		User *UserProfile `json:"user"`
	}
	if err := json.Unmarshal(raw, &holder); err == nil && holder.User != nil && holder.User.ID != "" {
		return holder.User, true
	}
	return nil, false
}

func (m *SessionManager) snapshotLocked() SessionSnapshot {
	var user *UserProfile
	if m.user != nil {
		clone := *m.user
		user = &clone
	}
	return SessionSnapshot{
		Token:           m.tok,
		User:            user,
		Role:            m.role,
		IsLoading:       m.loading,
		IsAuthenticated: m.tok != "" && m.user != nil,
	}
}

func (m *SessionManager) listenersLocked() []func(SessionSnapshot) {
	out := make([]func(SessionSnapshot), 0, len(m.listeners))
	for _, fn := range m.listeners {
		out = append(out, fn)
	}
	return out
}

// fanOut notifies listeners outside the lock so a subscriber may call back
// into the manager without deadlocking.
func (m *SessionManager) fanOut(listeners []func(SessionSnapshot), snapshot SessionSnapshot) {
	for _, fn := range listeners {
		fn(snapshot)
	}
}

func (m *SessionManager) emit(event Event) {
	if m.events == nil {
		return
	}
	event.Timestamp = m.now()
	m.events.Emit(context.Background(), event)
}
