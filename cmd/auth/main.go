// Command auth runs the authentication service: credential validation, JWT
// session tokens, optional email 2FA, and token revocation over a JSON API.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/0xfrait/auth-service/internal/auth"
	"github.com/0xfrait/auth-service/internal/httpapi"
	"github.com/0xfrait/auth-service/internal/store"
	"github.com/0xfrait/auth-service/internal/store/memory"
	"github.com/0xfrait/auth-service/internal/store/postgres"
	"github.com/0xfrait/auth-service/internal/store/redisstore"
	"github.com/0xfrait/auth-service/pkg/config"
	"github.com/0xfrait/auth-service/pkg/cookie"
	"github.com/0xfrait/auth-service/pkg/email"
	"github.com/0xfrait/auth-service/pkg/jwt"
	"github.com/0xfrait/auth-service/pkg/logger"
	"github.com/0xfrait/auth-service/pkg/pg"
	"github.com/0xfrait/auth-service/pkg/redis"
)

type appConfig struct {
	Addr        string `env:"HTTP_ADDR" envDefault:":3000"`
	JWTSecret   string `env:"JWT_SECRET,required"`
	Environment string `env:"ENVIRONMENT" envDefault:"production"`

	// StoreBackend selects where session state lives: "memory" keeps
	// everything in-process, "external" uses PostgreSQL and Redis. The
	// backend configs are loaded only when selected, so memory mode needs
	// no connection URLs.
	StoreBackend string `env:"STORE_BACKEND" envDefault:"memory"`

	Email email.Config
}

func main() {
	var cfg appConfig
	config.MustLoad(&cfg)

	var log *slog.Logger
	if cfg.Environment == "development" {
		log = logger.New(logger.WithDevelopment("auth-service"))
	} else {
		log = logger.New(logger.WithProduction("auth-service"))
	}

	if err := run(cfg, log); err != nil {
		log.Error("service stopped", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(cfg appConfig, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	signer, err := jwt.NewSigner(cfg.JWTSecret)
	if err != nil {
		return fmt.Errorf("jwt signer: %w", err)
	}

	var (
		users  store.UserStore
		banned store.BannedTokenStore
		twoFA  store.TwoFACodeStore
		probes []httpapi.Healthcheck
	)

	switch cfg.StoreBackend {
	case "memory":
		users = memory.NewUserStore()
		banned = memory.NewBannedTokenStore()
		twoFA = memory.NewTwoFACodeStore()

	case "external":
		var pgCfg pg.Config
		if err := config.Load(&pgCfg); err != nil {
			return fmt.Errorf("postgres config: %w", err)
		}
		var redisCfg redis.Config
		if err := config.Load(&redisCfg); err != nil {
			return fmt.Errorf("redis config: %w", err)
		}

		pool, err := pg.Connect(ctx, pgCfg)
		if err != nil {
			return fmt.Errorf("postgres: %w", err)
		}
		defer pool.Close()

		if err := pg.Migrate(ctx, pool, pgCfg); err != nil {
			return fmt.Errorf("migrations: %w", err)
		}

		client, err := redis.Connect(ctx, redisCfg)
		if err != nil {
			return fmt.Errorf("redis: %w", err)
		}
		defer func() { _ = client.Close() }()

		users = postgres.NewUserStore(pool)
		banned = redisstore.NewBannedTokenStore(client, auth.TokenTTL)
		twoFA = redisstore.NewTwoFACodeStore(client)
		probes = append(probes, pg.Healthcheck(pool), redis.Healthcheck(client))

	default:
		return fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
	}

	mailer, err := newMailer(cfg, log)
	if err != nil {
		return fmt.Errorf("mailer: %w", err)
	}

	tokens := auth.NewTokenService(signer, banned)
	svc := auth.NewService(users, twoFA, tokens, mailer, log)
	handler := httpapi.NewHandler(svc, cookie.New(), log, probes...)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("listening",
			slog.String("addr", cfg.Addr),
			slog.String("store_backend", cfg.StoreBackend),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// newMailer picks the delivery backend: Postmark when credentials are
// configured, filesystem output otherwise so 2FA codes stay reachable in
// local development.
func newMailer(cfg appConfig, log *slog.Logger) (email.Sender, error) {
	if cfg.Email.PostmarkServerToken != "" {
		return email.NewPostmarkSender(cfg.Email)
	}
	log.Warn("postmark not configured, writing emails to disk",
		slog.String("dir", cfg.Email.DevOutputDir),
	)
	return email.NewDevSender(cfg.Email.DevOutputDir), nil
}
