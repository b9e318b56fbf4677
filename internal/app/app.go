package app

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
	"google.golang.org/api/option"
	_ "modernc.org/sqlite"

	"github.com/clairecicle/Mental-load-app/internal/config"
	"github.com/clairecicle/Mental-load-app/internal/domain"
	"github.com/clairecicle/Mental-load-app/internal/notify"
	"github.com/clairecicle/Mental-load-app/internal/repo"
)

type App struct {
	cfg    config.Config
	store  repo.Store
	router *gin.Engine
	redis  *redis.Client
	cron   *cron.Cron

	pg       *pgxpool.Pool
	sqlite   *sql.DB
	firebase *firestore.Client
}

func New(cfg config.Config) (*App, error) {
	a := &App{cfg: cfg}

	if err := a.openStore(cfg); err != nil {
		return nil, err
	}

	rdb, err := newRedis(cfg.Redis)
	if err != nil {
		a.closeStore()
		return nil, err
	}
	a.redis = rdb

	scanner := notify.NewScanner(a.store.Tasks, a.store.Subscriptions, newTransport(cfg.Push))
	a.cron = newCron(cfg.Push, scanner)

	a.router = newRouter(cfg, a.store, a.redis, scanner)
	return a, nil
}

func (a *App) Router() *gin.Engine {
	return a.router
}

// Start launches the background due scan.
func (a *App) Start() {
	if a.cron != nil {
		a.cron.Start()
	}
}

func (a *App) Close(ctx context.Context) error {
	if a.cron != nil {
		stopped := a.cron.Stop()
		select {
		case <-stopped.Done():
		case <-ctx.Done():
		}
	}
	if a.redis != nil {
		_ = a.redis.Close()
	}
	a.closeStore()
	return nil
}

func (a *App) openStore(cfg config.Config) error {
	switch cfg.Store.Backend {
	case config.BackendFile:
		if dir := filepath.Dir(cfg.File.Path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("create data dir: %w", err)
			}
		}
		a.store = repo.NewFileStore(cfg.File.Path).Repos()

	case config.BackendSQLite:
		db, err := newSQLite(cfg.SQLite.Path)
		if err != nil {
			return err
		}
		a.sqlite = db
		a.store = repo.NewSQLiteStore(db)

	case config.BackendPostgres:
		pool, err := newPostgres(cfg.PG.DSN)
		if err != nil {
			return err
		}
		a.pg = pool
		a.store = repo.NewPGStore(pool)

	case config.BackendFirestore:
		client, err := newFirestore(cfg.Firestore)
		if err != nil {
			return err
		}
		a.firebase = client
		a.store = repo.NewFirestoreStore(client)

	default:
		return fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
	}
	return nil
}

func (a *App) closeStore() {
	if a.pg != nil {
		a.pg.Close()
	}
	if a.sqlite != nil {
		_ = a.sqlite.Close()
	}
	if a.firebase != nil {
		_ = a.firebase.Close()
	}
}

func newPostgres(dsn string) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("pg parse config: %w", err)
	}
	cfg.MaxConns = 10
	cfg.MinConns = 2
	cfg.MaxConnIdleTime = 5 * time.Minute
	cfg.MaxConnLifetime = 30 * time.Minute

	pool, err := pgxpool.NewWithConfig(context.Background(), cfg)
	if err != nil {
		return nil, fmt.Errorf("pg connect: %w", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pg ping: %w", err)
	}

	if err := runMigrations(dsn, "./migrations/postgres"); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}

func newSQLite(path string) (*sql.DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create data dir: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("sqlite open: %w", err)
	}
	// The driver serializes writes; a single connection avoids
	// SQLITE_BUSY under concurrent handlers.
	db.SetMaxOpenConns(1)
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite pragma: %w", err)
	}

	if err := goose.SetDialect("sqlite3"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("goose dialect: %w", err)
	}
	if err := goose.Up(db, "./migrations/sqlite"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("goose up: %w", err)
	}
	return db, nil
}

func newFirestore(cfg config.FirestoreConfig) (*firestore.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}
	client, err := firestore.NewClient(ctx, cfg.ProjectID, opts...)
	if err != nil {
		return nil, fmt.Errorf("firestore connect: %w", err)
	}
	return client, nil
}

func newRedis(cfg config.RedisConfig) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return rdb, nil
}

func runMigrations(dsn string, migrationsDir string) error {
	db, err := goose.OpenDBWithDriver("pgx", dsn)
	if err != nil {
		return fmt.Errorf("goose open db: %w", err)
	}
	defer db.Close()

	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}
	return nil
}

// logTransport stands in when VAPID keys are not configured: the scan
// still runs and marks tasks, deliveries are only logged.
type logTransport struct{}

func (logTransport) Send(_ context.Context, sub domain.PushSubscription, p notify.Payload) error {
	log.Printf("push disabled, would notify %s: %s", sub.Endpoint, p.Title)
	return nil
}

func newTransport(cfg config.PushConfig) notify.Transport {
	if !cfg.Enabled() {
		return logTransport{}
	}
	return notify.NewWebPushTransport(cfg.VAPIDPublicKey, cfg.VAPIDPrivateKey, cfg.Subscriber)
}

func newCron(cfg config.PushConfig, scanner *notify.Scanner) *cron.Cron {
	c := cron.New()
	spec := fmt.Sprintf("@every %s", cfg.ScanInterval.Duration())
	if _, err := c.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if _, err := scanner.Scan(ctx); err != nil {
			log.Printf("due scan: %v", err)
		}
	}); err != nil {
		log.Printf("cron schedule %q: %v", spec, err)
		return nil
	}
	return c
}

func newRouter(cfg config.Config, store repo.Store, rdb *redis.Client, scanner *notify.Scanner) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS", "HEAD"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization", "Cookie"},
		ExposeHeaders: []string{"Content-Length", "Content-Type"},
		MaxAge:        12 * time.Hour,
	}))

	Setup(r, cfg, store, rdb, scanner)
	return r
}
