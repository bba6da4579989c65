package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"

	"github.com/thentamil/novelreader/internal/client/api"
	"github.com/thentamil/novelreader/internal/client/config"
	"github.com/thentamil/novelreader/internal/client/health"
	"github.com/thentamil/novelreader/internal/client/models"
	"github.com/thentamil/novelreader/internal/client/services"
	"github.com/thentamil/novelreader/internal/client/session"
	"github.com/thentamil/novelreader/internal/logging"

	_ "modernc.org/sqlite"
)

type App struct {
	config  *config.Config
	logger  logging.Logger
	db      *sql.DB
	auth    services.AuthService
	public  services.PublicService
	admin   services.AdminService
	checker *health.Checker
	reader  *bufio.Reader

	userName string
	role     models.Role

	// reading position for the next/prev commands
	currentChapterID string
	currentNovelID   string
}

func NewApp(c *config.Config) (*App, error) {

	ctx := context.Background()

	level := slog.LevelInfo
	if c.IsDevelopment() {
		level = slog.LevelDebug
	}
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	db, err := session.InitDatabase(ctx, "novelreader.db")
	if err != nil {
		logger.Error(ctx, "error initializing database", "error", err.Error())
		return nil, err
	}

	sessions := session.NewManager(db)

	app := &App{config: c, logger: logger, db: db, reader: bufio.NewReader(os.Stdin)}

	dispatcher, err := api.NewDispatcher(api.Config{
		BaseURL:              c.APIBaseURL,
		Timeout:              c.RequestTimeout,
		Environment:          c.Environment,
		Tokens:               sessions,
		Logger:               logger,
		OnSessionInvalidated: app.onSessionInvalidated,
		OnForbidden:          app.onForbidden,
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	app.auth = services.NewAuthService(dispatcher, sessions)
	app.public = services.NewPublicService(dispatcher)
	app.admin = services.NewAdminService(dispatcher)
	app.checker = health.NewChecker(c.APIBaseURL, c.RequestTimeout, logger)

	return app, nil
}

func (a *App) Run(ctx context.Context) {
	defer a.db.Close()

	a.checker.VerifyOnStartup(ctx)
	a.restoreIdentity(ctx)
	a.Root(ctx)
}

// restoreIdentity picks up a session persisted by a previous run.
func (a *App) restoreIdentity(ctx context.Context) {
	u, err := a.auth.CurrentUser(ctx)
	if err != nil {
		a.logger.Warn(ctx, "could not restore session", "error", err.Error())
		return
	}
	if u != nil {
		a.setIdentity(u)
		fmt.Printf("Welcome back, %s!\n", a.userName)
	}
}

func (a *App) setIdentity(u *models.User) {
	a.userName = u.Name
	if a.userName == "" {
		a.userName = u.Email
	}
	a.role = u.Role
}

func (a *App) clearIdentity() {
	a.userName = ""
	a.role = ""
}

func (a *App) isLoggedIn() bool {
	return a.userName != ""
}

func (a *App) isAdmin() bool {
	return a.role == models.RoleAdmin || a.role == models.RoleEditor
}

// onSessionInvalidated fires after a 401 has already cleared the persisted
// session; only the in-memory identity is left to drop.
func (a *App) onSessionInvalidated() {
	a.clearIdentity()
	fmt.Println("Your session has expired, please login again.")
}

func (a *App) onForbidden() {
	fmt.Println("You do not have permission to do that.")
}
