package cli

import (
	"bufio"
	"context"
	"database/sql"
	"log/slog"
	"os"
	"time"

	"github.com/dcastano/notas-cli/internal/client/api"
	"github.com/dcastano/notas-cli/internal/client/config"
	"github.com/dcastano/notas-cli/internal/client/dialogs"
	"github.com/dcastano/notas-cli/internal/client/models"
	"github.com/dcastano/notas-cli/internal/client/notes"
	"github.com/dcastano/notas-cli/internal/client/repositories/sessionstore"
	"github.com/dcastano/notas-cli/internal/client/session"
	"github.com/dcastano/notas-cli/internal/logging"

	_ "modernc.org/sqlite"
)

// sessionAPI is the slice of the session service the CLI drives.
// The real *session.Service satisfies it; tests substitute a fake.
type sessionAPI interface {
	Register(ctx context.Context, name, email, password, confirm string) (*models.User, error)
	Login(ctx context.Context, email, password string) (*models.User, error)
	Logout(ctx context.Context) error
	Profile(ctx context.Context) (*models.User, error)
	UpdateProfile(ctx context.Context, name string) (*models.User, error)
	DeleteAccount(ctx context.Context) error
	ValidateToken(ctx context.Context) bool
	TokenExpiresAt(ctx context.Context) (time.Time, error)
	IsAuthenticated(ctx context.Context) bool
	CurrentUser(ctx context.Context) *models.User
}

// noteAPI covers the read operations that bypass the cached list.
type noteAPI interface {
	Get(ctx context.Context, id string) (*models.Note, error)
	Search(ctx context.Context, query string) ([]models.Note, error)
	Recent(ctx context.Context, limit int) ([]models.Note, error)
	GetStats(ctx context.Context) (notes.Stats, error)
}

// noteStore covers the cached list and the mutations that refresh it.
type noteStore interface {
	Reload(ctx context.Context) error
	Notes() []models.Note
	Create(ctx context.Context, title, content string) (*models.Note, error)
	Update(ctx context.Context, id string, upd notes.Update) (*models.Note, error)
	Delete(ctx context.Context, id string) error
}

type App struct {
	config  *config.Config
	db      *sql.DB
	session sessionAPI
	notes   noteAPI
	store   noteStore
	logger  logging.Logger
	reader  *bufio.Reader

	user       *models.User
	editDialog *dialogs.Dialog[models.Note]
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))

	db, err := sessionstore.Open(ctx, c.DatabaseDSN)
	if err != nil {
		logger.Error(ctx, "error initializing session database", "error", err)
		return nil, err
	}

	app := &App{
		config:     c,
		db:         db,
		logger:     logger,
		reader:     bufio.NewReader(os.Stdin),
		editDialog: dialogs.New[models.Note](),
	}

	apiClient := api.New(c.APIBaseURL, c.RequestTimeout, session.NewTokenSource(db),
		api.WithLogger(logger),
		api.WithUnauthorizedHook(func(ctx context.Context) {
			if err := session.ClearLocal(ctx, db); err != nil {
				logger.Error(ctx, "error clearing expired session", "error", err)
			}
			app.forceLogout()
		}),
	)

	ss := session.NewService(apiClient, db, logger)
	ns := notes.NewService(apiClient, logger)

	app.session = ss
	app.notes = ns
	app.store = notes.NewStore(ns)
	return app, nil
}

// forceLogout drops the in-memory identity after the transport saw a 401.
// The persisted token and user are already gone at this point; the prompt
// must fall back to guest together with them.
func (a *App) forceLogout() {
	if a.user == nil {
		return
	}
	a.user = nil
	printlnFn("Session expired, please log in again.")
}

func (a *App) Run(ctx context.Context) {
	defer a.db.Close()
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.user != nil
}
