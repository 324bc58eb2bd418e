package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dcastano/notas-cli/internal/client/api"
	"github.com/dcastano/notas-cli/internal/client/models"
	"github.com/dcastano/notas-cli/internal/client/repositories/sessionstore"
	"github.com/dcastano/notas-cli/internal/dbx"
	"github.com/dcastano/notas-cli/internal/logging"
)

const (
	pathRegister = "/usuarios/registro"
	pathLogin    = "/usuarios/login"
	pathProfile  = "/usuarios/perfil"
)

// transport is the slice of the API client this service needs.
type transport interface {
	Get(ctx context.Context, path string, out any) error
	Post(ctx context.Context, path string, body, out any) error
	Put(ctx context.Context, path string, body, out any) error
	Delete(ctx context.Context, path string) error
}

type registerRequest struct {
	Name     string `json:"nombre"`
	Email    string `json:"correo"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"correo"`
	Password string `json:"password"`
}

type updateProfileRequest struct {
	Name string `json:"nombre"`
}

// authPayload is the data part of the register/login responses.
type authPayload struct {
	Token string      `json:"token"`
	User  models.User `json:"usuario"`
}

// Service implements the session operations over the API client and the
// local session database.
type Service struct {
	client transport
	db     *sql.DB
	logger logging.Logger
}

func NewService(client transport, db *sql.DB, logger logging.Logger) *Service {
	if logger == nil {
		logger = logging.Nop()
	}
	return &Service{client: client, db: db, logger: logger}
}

// Register creates an account and, on success, persists the returned token
// and user so the session is immediately authenticated. All validation runs
// before anything touches the network.
func (s *Service) Register(ctx context.Context, name, email, password, confirm string) (*models.User, error) {
	name = models.SanitizeText(name)
	switch {
	case name == "":
		return nil, ErrNameRequired
	case !models.IsValidEmail(email):
		return nil, ErrEmailInvalid
	case !models.IsValidPassword(password):
		return nil, ErrPasswordTooShort
	case password != confirm:
		return nil, ErrPasswordMismatch
	}

	var payload authPayload
	req := registerRequest{Name: name, Email: email, Password: password}
	if err := s.client.Post(ctx, pathRegister, req, &payload); err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}

	if err := s.persist(ctx, payload.Token, payload.User); err != nil {
		return nil, fmt.Errorf("register: saving session: %w", err)
	}
	return &payload.User, nil
}

// Login authenticates and persists the session with the same contract as
// Register.
func (s *Service) Login(ctx context.Context, email, password string) (*models.User, error) {
	var payload authPayload
	if err := s.client.Post(ctx, pathLogin, loginRequest{Email: email, Password: password}, &payload); err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	if err := s.persist(ctx, payload.Token, payload.User); err != nil {
		return nil, fmt.Errorf("login: saving session: %w", err)
	}
	return &payload.User, nil
}

// Logout clears the persisted session unconditionally. It makes no network
// call.
func (s *Service) Logout(ctx context.Context) error {
	return ClearLocal(ctx, s.db)
}

// Profile fetches the current user from the server. It is a read-only
// refresh: the persisted user record is not touched.
func (s *Service) Profile(ctx context.Context) (*models.User, error) {
	var u models.User
	if err := s.client.Get(ctx, pathProfile, &u); err != nil {
		return nil, fmt.Errorf("profile: %w", err)
	}
	return &u, nil
}

// UpdateProfile changes the display name (email is immutable). On success
// the persisted user record is rewritten; the token stays as it was.
func (s *Service) UpdateProfile(ctx context.Context, name string) (*models.User, error) {
	name = models.SanitizeText(name)
	if name == "" {
		return nil, ErrNameRequired
	}

	var u models.User
	if err := s.client.Put(ctx, pathProfile, updateProfileRequest{Name: name}, &u); err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}

	raw, err := json.Marshal(u)
	if err != nil {
		return nil, fmt.Errorf("update profile: encoding user: %w", err)
	}
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return sessionstore.NewSQLiteRepository(tx).Set(ctx, sessionstore.KeyUser, raw)
	})
	if err != nil {
		return nil, fmt.Errorf("update profile: saving user: %w", err)
	}
	return &u, nil
}

// DeleteAccount asks the server to delete the account and clears the local
// session after the server confirms. The caller is responsible for any
// confirmation dialog; this method does not ask twice.
func (s *Service) DeleteAccount(ctx context.Context) error {
	if err := s.client.Delete(ctx, pathProfile); err != nil {
		return fmt.Errorf("delete account: %w", err)
	}
	return ClearLocal(ctx, s.db)
}

// ValidateToken probes the server with a profile fetch. A rejected token
// clears the local session; an unreachable server does not, the stored
// session stays for the next attempt.
func (s *Service) ValidateToken(ctx context.Context) bool {
	if _, err := s.Profile(ctx); err != nil {
		if errors.Is(err, api.ErrUnauthorized) {
			_ = ClearLocal(ctx, s.db)
		}
		return false
	}
	return true
}

// IsAuthenticated reports whether a non-empty token is persisted. No network.
func (s *Service) IsAuthenticated(ctx context.Context) bool {
	tok, err := sessionstore.NewSQLiteRepository(s.db).Get(ctx, sessionstore.KeyToken)
	return err == nil && len(tok) > 0
}

// CurrentUser returns the persisted user record, or nil when it is absent or
// unreadable. Corrupt storage is treated as "no session", never an error.
func (s *Service) CurrentUser(ctx context.Context) *models.User {
	raw, err := sessionstore.NewSQLiteRepository(s.db).Get(ctx, sessionstore.KeyUser)
	if err != nil || len(raw) == 0 {
		return nil
	}
	var u models.User
	if err := json.Unmarshal(raw, &u); err != nil {
		s.logger.Debug(ctx, "stored user record unreadable, treating as logged out", "error", err)
		return nil
	}
	return &u
}

// persist writes token and user in a single transaction so they are never
// observed half-written.
func (s *Service) persist(ctx context.Context, token string, user models.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := sessionstore.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, sessionstore.KeyToken, []byte(token)); err != nil {
			return err
		}
		return repo.Set(ctx, sessionstore.KeyUser, raw)
	})
}

// ClearLocal wipes the persisted session (token and user together). It is a
// package function so the transport's 401 hook can clear the session without
// holding a Service.
func ClearLocal(ctx context.Context, db *sql.DB) error {
	return dbx.WithTx(ctx, db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return sessionstore.NewSQLiteRepository(tx).Clear(ctx)
	})
}
