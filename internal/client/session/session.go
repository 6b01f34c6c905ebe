// Package session holds the client-side record of who is logged in: the
// authenticated user, their bearer token, and the durable copy of both.
// Exactly one Session exists per process; it is constructed at startup and
// injected into every consumer.
package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/ligadeportiva/ligacli/internal/client/api"
	"github.com/ligadeportiva/ligacli/internal/client/models"
	"github.com/ligadeportiva/ligacli/internal/client/repositories/metadata"
	"github.com/ligadeportiva/ligacli/internal/common"
	"github.com/ligadeportiva/ligacli/internal/dbx"
	"github.com/ligadeportiva/ligacli/internal/logging"
)

// Navigator is invoked when the session forces a navigation, e.g. to the
// login screen after logout.
type Navigator func(route string)

// loginRoute is where logout lands the user.
const loginRoute = "/login"

// Session is the sole source of truth for the authenticated user. All
// mutations go through Login/Register/Logout; every other component reads.
type Session struct {
	api      api.AuthAPI
	db       *sql.DB
	log      logging.Logger
	navigate Navigator

	mu           sync.Mutex
	user         *models.User
	token        string
	listeners    map[int]func(*models.User)
	nextListener int
}

// New constructs the process-wide session. navigate may be nil when the
// embedding UI has no notion of routes (tests, scripts).
func New(authAPI api.AuthAPI, db *sql.DB, log logging.Logger, navigate Navigator) *Session {
	return &Session{
		api:       authAPI,
		db:        db,
		log:       log,
		navigate:  navigate,
		listeners: make(map[int]func(*models.User)),
	}
}

func (s *Session) store(tx dbx.DBTX) metadata.Repository {
	return metadata.NewSQLiteRepository(tx)
}

// Restore seeds the session from durable storage. It performs no network
// call; a stale token is caught later by the first 401. Absent keys leave
// the session logged out.
func (s *Session) Restore(ctx context.Context) error {
	repo := s.store(s.db)

	token, err := repo.Get(ctx, common.TokenStorageKey)
	if err != nil {
		return fmt.Errorf("restore token: %w", err)
	}
	rawUser, err := repo.Get(ctx, common.UserStorageKey)
	if err != nil {
		return fmt.Errorf("restore user: %w", err)
	}

	if token == nil || rawUser == nil {
		return nil
	}

	var user models.User
	if err := json.Unmarshal(rawUser, &user); err != nil {
		// A corrupt record is unrecoverable; drop it and start logged out.
		s.log.Warn(ctx, "discarding corrupt stored user", "error", err)
		return s.clearStorage(ctx)
	}

	s.setState(&user, string(token))
	s.log.Info(ctx, "session restored", "email", user.Email, "rol", user.Rol.Nombre)
	return nil
}

// Login authenticates against the platform and persists the session.
func (s *Session) Login(ctx context.Context, email, password string) (*models.User, error) {
	resp, err := s.api.Login(ctx, models.LoginRequest{Email: email, Password: password})
	if err != nil {
		return nil, err
	}
	if err := s.saveAuthData(ctx, resp); err != nil {
		return nil, fmt.Errorf("persist session: %w", err)
	}
	s.setState(resp.User, resp.Token)
	return resp.User, nil
}

// Register creates an account and, like the original flow, leaves the new
// user logged in.
func (s *Session) Register(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	resp, err := s.api.Register(ctx, req)
	if err != nil {
		return nil, err
	}
	if err := s.saveAuthData(ctx, resp); err != nil {
		return nil, fmt.Errorf("persist session: %w", err)
	}
	s.setState(resp.User, resp.Token)
	return resp.User, nil
}

// Logout clears the persisted credentials, emits nil to subscribers and
// navigates to the login entry point. Calling it twice is the same as once.
func (s *Session) Logout(ctx context.Context) error {
	if err := s.clearStorage(ctx); err != nil {
		return err
	}
	s.setState(nil, "")
	if s.navigate != nil {
		s.navigate(loginRoute)
	}
	return nil
}

// ForceLogout is the 401 path: any endpoint rejecting the shared credential
// means the session as a whole is gone. Storage errors are logged, not
// returned, since there is no caller to recover.
func (s *Session) ForceLogout(ctx context.Context) {
	s.log.Warn(ctx, "session rejected by server, logging out")
	if err := s.Logout(ctx); err != nil {
		s.log.Error(ctx, "failed to clear session", "error", err)
	}
}

// CurrentUser returns the in-memory snapshot; nil when logged out.
func (s *Session) CurrentUser() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

// Token returns the current bearer token. It satisfies api.TokenSource.
func (s *Session) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// IsAuthenticated reports whether a token is present. Freshness is not
// validated here; an expired token surfaces as a 401 on the next request.
func (s *Session) IsAuthenticated() bool {
	return s.Token() != ""
}

// Subscribe registers fn and immediately delivers the current user so late
// subscribers observe the restored-from-storage value. fn runs synchronously
// on every subsequent login/logout, in mutation order. The returned function
// unsubscribes.
func (s *Session) Subscribe(fn func(*models.User)) func() {
	s.mu.Lock()
	id := s.nextListener
	s.nextListener++
	s.listeners[id] = fn
	current := s.user
	s.mu.Unlock()

	fn(current)

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.listeners, id)
	}
}

// TokenExpiresAt reports the exp claim of the stored token, when the token
// is a JWT carrying one. The claim is read without signature verification
// and is for display only; it never gates a request.
func (s *Session) TokenExpiresAt() (time.Time, bool) {
	token := s.Token()
	if token == "" {
		return time.Time{}, false
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}

func (s *Session) saveAuthData(ctx context.Context, resp *models.AuthResponse) error {
	rawUser, err := json.Marshal(resp.User)
	if err != nil {
		return err
	}

	// Token and user are written atomically so a crash cannot leave a token
	// without its user.
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.store(tx)
		if err := repo.Set(ctx, common.TokenStorageKey, []byte(resp.Token)); err != nil {
			return err
		}
		return repo.Set(ctx, common.UserStorageKey, rawUser)
	})
}

func (s *Session) clearStorage(ctx context.Context) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.store(tx)
		if err := repo.Delete(ctx, common.TokenStorageKey); err != nil {
			return err
		}
		return repo.Delete(ctx, common.UserStorageKey)
	})
}

// setState swaps the in-memory snapshot and notifies subscribers. Listeners
// run outside the lock so they may call back into the session.
func (s *Session) setState(user *models.User, token string) {
	s.mu.Lock()
	s.user = user
	s.token = token
	fns := make([]func(*models.User), 0, len(s.listeners))
	for _, fn := range s.listeners {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(user)
	}
}
