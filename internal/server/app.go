// Package server wires the vault components together and runs them: the
// gRPC endpoint, the metrics endpoint and the audit archive.
package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/awnumar/memguard"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/dmitrijs2005/gophvault/internal/cryptox"
	"github.com/dmitrijs2005/gophvault/internal/filex"
	"github.com/dmitrijs2005/gophvault/internal/logging"
	"github.com/dmitrijs2005/gophvault/internal/server/audit"
	"github.com/dmitrijs2005/gophvault/internal/server/auth"
	"github.com/dmitrijs2005/gophvault/internal/server/config"
	"github.com/dmitrijs2005/gophvault/internal/server/keysource"
	"github.com/dmitrijs2005/gophvault/internal/server/metrics"
	"github.com/dmitrijs2005/gophvault/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/gophvault/internal/server/services"

	gs "github.com/dmitrijs2005/gophvault/internal/server/grpc"
)

var (
	ErrMasterKeyMissing = errors.New("master key is missing or malformed: set MASTER_KEY_FILE or MASTER_KEY " +
		"to 64 hex characters (generate one with `openssl rand -hex 32`)")
	ErrSecretKeyMissing = errors.New("session token secret is missing: set JWT_SECRET")
	// ErrSecretKeyReusesMasterKey rejects a JWT_SECRET equal to the master key.
	ErrSecretKeyReusesMasterKey = errors.New("session token secret must differ from the master key: " +
		"generate a separate JWT_SECRET")
)

type App struct {
	config  *config.Config
	logger  logging.Logger
	db      *sql.DB
	grpc    *gs.GRPCServer
	metrics *metrics.Server
	archive *audit.S3Sink
	closers []io.Closer
}

// NewApp validates the configuration and builds every component. It fails
// before opening any listener when the master key or the token secret is
// unusable, or when both are the same value.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.NewJSONLogger(os.Stdout, c.LogLevel)
	app := &App{config: c, logger: logger}

	if c.SecretKey == "" {
		return nil, ErrSecretKeyMissing
	}

	keys := keysource.New(c.MasterKeyFile, c.MasterKey, logger)
	if !keys.Validate() {
		return nil, ErrMasterKeyMissing
	}
	if key, _ := keys.Load(); key.Matches(c.SecretKey) {
		return nil, ErrSecretKeyReusesMasterKey
	}

	db, err := openDB(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}
	app.db = db

	m := repomanager.NewPostgresRepositoryManager()
	if err := m.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrations error: %w", err)
	}

	sink, err := app.auditSinks(ctx)
	if err != nil {
		app.close(ctx)
		return nil, err
	}

	tokens := auth.NewTokenService([]byte(c.SecretKey), c.SessionTokenValidityDuration)
	us := services.NewUserService(db, m, cryptox.NewBcryptHasher(c.BcryptCost), tokens, sink, logger)
	ss := services.NewSecretService(db, m, cryptox.NewEngine(keys), sink, logger)

	app.grpc = gs.NewGRPCServer(c.EndpointAddrGRPC, logger, us, ss, tokens, c.Development())

	if c.MetricsAddr != "" {
		app.metrics = metrics.NewServer(c.MetricsAddr, logger)
	}

	return app, nil
}

func openDB(ctx context.Context, c *config.Config) (*sql.DB, error) {
	db, err := sql.Open("pgx", c.DatabaseDSN)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(c.DatabaseMaxConns)
	db.SetConnMaxIdleTime(5 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// auditSinks assembles the audit fan-out: the append-only log, the
// metrics counter and, when enabled, the S3 archive.
func (app *App) auditSinks(ctx context.Context) (audit.Sink, error) {
	c := app.config

	var w io.Writer = os.Stdout
	if c.AuditLogFile != "" {
		f, err := filex.OpenAppend(c.AuditLogFile)
		if err != nil {
			return nil, fmt.Errorf("audit log error: %w", err)
		}
		app.closers = append(app.closers, f)
		w = f
	}

	sinks := audit.Multi{audit.NewLogSink(w, app.logger)}

	if c.MetricsAddr != "" {
		sinks = append(sinks, metrics.NewAuditSink())
	}

	if c.AuditS3Enabled {
		client, err := audit.NewS3Client(ctx, audit.S3Config{
			Bucket:       c.S3Bucket,
			Region:       c.S3Region,
			AccessKey:    c.S3RootUser,
			SecretKey:    c.S3RootPassword,
			BaseEndpoint: c.S3BaseEndpoint,
		})
		if err != nil {
			return nil, fmt.Errorf("audit archive error: %w", err)
		}
		app.archive = audit.NewS3Sink(client, c.S3Bucket, app.logger)
		sinks = append(sinks, app.archive)
	}

	return sinks, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {
	if err := app.grpc.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) startMetricsServer(ctx context.Context, cancelFunc context.CancelFunc) {
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = app.metrics.Shutdown(shutdownCtx)
	}()

	if err := app.metrics.ListenAndServe(); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run serves until a termination signal arrives or a component fails, then
// releases every resource and wipes protected memory.
func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()

	if app.metrics != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			app.startMetricsServer(ctx, cancelFunc)
		}()
	}

	if app.archive != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			app.archive.Run(ctx, app.config.AuditFlushInterval)
		}()
	}

	wg.Wait()

	app.close(ctx)
	app.logger.Info(ctx, "App stopped")
}

func (app *App) close(ctx context.Context) {
	for _, c := range app.closers {
		if err := c.Close(); err != nil {
			app.logger.Warn(ctx, "close failed", "error", err.Error())
		}
	}
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Warn(ctx, "db close failed", "error", err.Error())
		}
	}
	memguard.Purge()
}
