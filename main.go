package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go-splendor/config"
	"go-splendor/const_data"
	"go-splendor/controller"
	"go-splendor/game"
	"go-splendor/logger"
	"go-splendor/repository"
	"go-splendor/router"
	"go-splendor/service"
	"go-splendor/utils"
	"go-splendor/ws"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() (err error) {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	lg, err := logger.New(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = lg.Sync() }()

	catalog, err := const_data.LoadCatalog()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	opts := service.Options{
		Logger:      lg,
		GameConfig:  cfg.GameConfig(),
		SaveRetries: cfg.SaveRetries,
	}

	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb, err = repository.NewRedisClient(ctx, repository.RedisOptions{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err != nil {
			return err
		}
		defer func() { err = multierr.Append(err, rdb.Close()) }()
		store := repository.NewRedisStore(rdb)
		opts.Store, opts.Events = store, store
		opts.Locker = repository.NewRedisLocker(rdb, cfg.LockTTL)
		lg.Info("using redis store", zap.String("addr", cfg.RedisAddr))
	} else {
		store := repository.NewMemoryStore()
		opts.Store, opts.Events = store, store
		opts.Locker = service.NewMemoryLocker()
		lg.Warn("REDIS_ADDR not set, games are kept in memory")
	}

	var db *sql.DB
	if cfg.MySQLDSN != "" {
		db, err = repository.OpenMySQL(ctx, cfg.MySQLDSN)
		if err != nil {
			return err
		}
		defer func() { err = multierr.Append(err, db.Close()) }()
		archive := repository.NewMySQLArchive(db)
		if err := archive.Migrate(ctx); err != nil {
			return err
		}
		opts.Events = repository.NewFanoutLog(opts.Events, archive)
		opts.Archive = archive
		lg.Info("mysql archive enabled")
	}

	hub := ws.NewHub(lg.Named("ws"))
	opts.Publisher = hub
	sessions := service.NewSessionManager(game.NewEngine(catalog), opts)
	hub.Attach(sessions)

	issuer := utils.NewTokenIssuer(cfg.JWTAccessSecret, cfg.JWTRefreshSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)

	r := gin.Default()

	// 设置 CORS 中间件，允许所有域名、所有方法、所有 header
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:   []string{"Content-Length"},
		MaxAge:          12 * time.Hour,
	}))

	router.InitRouter(r, router.Handlers{
		Game:   controller.NewGameController(sessions, lg.Named("http")),
		Auth:   controller.NewAuthController(issuer, lg.Named("http")),
		Hub:    hub,
		Issuer: issuer,
	})

	srv := &http.Server{Addr: cfg.Addr(), Handler: r}
	errc := make(chan error, 1)
	go func() {
		lg.Info("listening", zap.String("addr", srv.Addr))
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	lg.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
