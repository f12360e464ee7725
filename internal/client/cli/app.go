package cli

import (
	"bufio"
	"context"
	"database/sql"
	"os"
	"path/filepath"

	"github.com/warnwave/warnwave-cli/internal/client/api"
	"github.com/warnwave/warnwave-cli/internal/client/config"
	"github.com/warnwave/warnwave-cli/internal/client/imagehost"
	"github.com/warnwave/warnwave-cli/internal/client/services"
	"github.com/warnwave/warnwave-cli/internal/client/session"
	"github.com/warnwave/warnwave-cli/internal/client/shell"
	"github.com/warnwave/warnwave-cli/internal/client/storage"
	"github.com/warnwave/warnwave-cli/internal/filex"
	"github.com/warnwave/warnwave-cli/internal/logging"

	_ "modernc.org/sqlite"
)

const dataDirName = ".warnwave"

type App struct {
	config  *config.Config
	auth    services.AuthService
	profile services.ProfileService
	store   *session.Store
	shell   *shell.Shell
	log     logging.Logger
	reader  *bufio.Reader
}

func NewApp(cfg *config.Config, logger logging.Logger) (*App, error) {
	ctx := context.Background()

	if logger == nil {
		logger = logging.NewNopLogger()
	}

	// A blocked local store is not fatal: the session just will not survive
	// restarts (privacy-mode behavior).
	var db *sql.DB
	dir, err := filex.EnsureDataDir(dataDirName)
	if err == nil {
		db, err = storage.InitDatabase(ctx, filepath.Join(dir, cfg.SessionDBFile))
	}
	if err != nil {
		logger.Warn(ctx, "session storage unavailable, running in-memory", "error", err)
		db = nil
	}

	store := session.NewStore(db, logger)
	apiClient := api.NewHTTPClient(cfg.BackendBaseURL, cfg.RequestTimeout)

	var host imagehost.Host
	if cfg.ImageHostKind == config.ImageHostS3 {
		host, err = imagehost.NewS3Host(ctx, cfg.S3Region, cfg.S3Bucket)
		if err != nil {
			return nil, err
		}
	} else {
		host = imagehost.NewFormHost(cfg.ImageHostBaseURL, cfg.ImageHostPreset, cfg.RequestTimeout)
	}

	sh := shell.New()
	store.Subscribe(sh.OnSessionChange)

	return &App{
		config:  cfg,
		auth:    services.NewAuthService(apiClient, store, logger),
		profile: services.NewProfileService(host, apiClient, store, logger),
		store:   store,
		shell:   sh,
		log:     logger,
		reader:  bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) Run(ctx context.Context) {
	defer a.auth.Close(ctx)

	a.auth.Restore(ctx)
	a.shell.Render(os.Stdout)

	runREPL(ctx, a, a.status, bufio.NewScanner(os.Stdin))
}

func (a *App) isLoggedIn() bool {
	return a.store.Authenticated()
}

// status feeds the REPL prompt. A "restored" session carries a persisted
// token but no profile yet, so it is still shown as not logged in.
func (a *App) status() string {
	if a.profile.Uploading() {
		return "uploading..."
	}
	if u := a.store.User(); u != nil {
		return u.Username
	}
	if a.store.Token() != "" {
		return "restored"
	}
	return "anonymous"
}
