package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/bloodlink/admincli/internal/api"
	"github.com/bloodlink/admincli/internal/config"
	"github.com/bloodlink/admincli/internal/logging"
	"github.com/bloodlink/admincli/internal/nav"
	"github.com/bloodlink/admincli/internal/notify"
	"github.com/bloodlink/admincli/internal/resources"
	"github.com/bloodlink/admincli/internal/session"
	"github.com/bloodlink/admincli/internal/tokenstore"
)

type App struct {
	config *config.Config
	log    logging.Logger

	gate    *session.Gate
	router  *nav.Router
	users   resources.UsersService
	ranks   resources.RanksService
	offices resources.OfficesService
	diary   resources.DiaryService

	tokenDB *tokenstore.SQLite
	logSync func() error

	reader *bufio.Reader
	out    io.Writer

	// per-screen pagination and users sort state
	page     map[string]int
	sortKey  string
	sortDesc bool
}

func NewApp(cfg *config.Config) (*App, error) {
	ctx := context.Background()

	if err := os.MkdirAll(cfg.StateDir, 0o700); err != nil {
		return nil, fmt.Errorf("creating state dir: %w", err)
	}

	logFile, err := os.OpenFile(filepath.Join(cfg.StateDir, "admincli.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	log := logging.NewZap(logFile, cfg.LogLevel)

	durable, err := tokenstore.OpenSQLite(ctx, filepath.Join(cfg.StateDir, "state.db"))
	if err != nil {
		return nil, err
	}
	tokens := tokenstore.New(durable, tokenstore.NewMemory())

	client := api.NewRESTClient(cfg.APIBaseURL, log)

	router := nav.NewRouter(log)
	gate := session.New(tokens, client, router, log)
	router.SetSession(gate)

	out := os.Stdout
	notifier := notify.NewTerminal(out)

	a := &App{
		config:  cfg,
		log:     log,
		gate:    gate,
		router:  router,
		users:   resources.NewUsersService(client, tokens, notifier, log),
		ranks:   resources.NewRanksService(client, tokens, notifier, log),
		offices: resources.NewOfficesService(client, tokens, notifier, log),
		diary:   resources.NewDiaryService(client, tokens, notifier, log),
		tokenDB: durable,
		logSync: log.Sync,
		reader:  bufio.NewReader(os.Stdin),
		out:     out,
		page:    make(map[string]int),
	}
	a.registerScreens()
	return a, nil
}

// registerScreens builds the screen table. Each protected screen loads its
// collection on entry; the public screens have nothing to load.
func (a *App) registerScreens() {
	a.router.Add(&nav.Screen{Path: nav.PathLogin})
	a.router.Add(&nav.Screen{Path: nav.PathRegister})
	a.router.Add(&nav.Screen{Path: nav.PathUsers, RequireAuth: true, Load: func(ctx context.Context) {
		_ = a.users.Fetch(ctx)
	}})
	a.router.Add(&nav.Screen{Path: nav.PathRanks, RequireAuth: true, Load: func(ctx context.Context) {
		_ = a.ranks.Fetch(ctx)
	}})
	a.router.Add(&nav.Screen{Path: nav.PathOffices, RequireAuth: true, Load: func(ctx context.Context) {
		_ = a.offices.Fetch(ctx)
	}})
	a.router.Add(&nav.Screen{Path: nav.PathDiary, RequireAuth: true, Load: func(ctx context.Context) {
		_ = a.diary.Fetch(ctx)
	}})
	a.router.Add(&nav.Screen{Path: nav.PathReports, RequireAuth: true})
	a.router.Add(&nav.Screen{Path: nav.PathSettings, RequireAuth: true})
}

// Run restores the session, lands on the right initial screen, and starts the
// REPL. Blocks until the user exits.
func (a *App) Run(ctx context.Context) {
	defer a.tokenDB.Close()
	defer func() { _ = a.logSync() }()

	a.gate.Initialize(ctx)
	if a.gate.IsAuthenticated() {
		_ = a.router.Navigate(ctx, nav.PathDefault)
		fmt.Fprintf(a.out, "Welcome back, %s\n", a.gate.User().Email)
	} else {
		_ = a.router.Navigate(ctx, nav.PathLogin)
	}

	a.Root(ctx)
}
