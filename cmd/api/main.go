package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/lenslease/marketplace-api/internal/api"
	"github.com/lenslease/marketplace-api/internal/core/domain"
	"github.com/lenslease/marketplace-api/internal/core/ports"
	"github.com/lenslease/marketplace-api/internal/core/service"
	redisdb "github.com/lenslease/marketplace-api/internal/infrastructure/db/redis"
	"github.com/lenslease/marketplace-api/internal/infrastructure/store/memory"
	mongostore "github.com/lenslease/marketplace-api/internal/infrastructure/store/mongo"
	"github.com/lenslease/marketplace-api/internal/pkg/config"
	"github.com/lenslease/marketplace-api/pkg/logger"
)

const tokenTTL = 24 * time.Hour

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	deps := api.Deps{
		JWTSecret: cfg.JWTSecret,
		Logger:    log,
	}

	var (
		accountStore ports.AccountStore
		bookingStore ports.BookingStore
		dedup        service.SubmissionDeduper
	)

	switch cfg.StoreBackend {
	case "memory":
		log.Info().Msg("using in-memory store; data is lost on restart")
		accountStore = memory.NewAccountStore()
		bookingStore = memory.NewBookingStore()

	case "mongo":
		client, db, err := mongostore.Connect(ctx, mongostore.Config{
			URI:      cfg.Mongo.URI,
			Database: cfg.Mongo.Database,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("mongodb connection failed")
		}
		defer func() {
			if err := client.Disconnect(context.Background()); err != nil {
				log.Error().Err(err).Msg("mongodb disconnect failed")
			}
		}()

		accounts := mongostore.NewAccountStore(db)
		bookings := mongostore.NewBookingStore(db)
		if err := accounts.EnsureIndexes(ctx); err != nil {
			log.Fatal().Err(err).Msg("account indexes failed")
		}
		if err := bookings.EnsureIndexes(ctx); err != nil {
			log.Fatal().Err(err).Msg("booking indexes failed")
		}
		accountStore = accounts
		bookingStore = bookings
		deps.Mongo = db

		rdb, err := redisdb.Connect(ctx, redisdb.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("redis connection failed")
		}
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Error().Err(err).Msg("redis close failed")
			}
		}()
		dedup = redisdb.NewSubmissionDeduper(rdb)
		deps.Redis = rdb

	default:
		log.Fatal().Str("backend", cfg.StoreBackend).Msg("unknown STORE_BACKEND")
	}

	if err := seedAdmin(ctx, accountStore, cfg.Admin); err != nil {
		log.Fatal().Err(err).Msg("admin account bootstrap failed")
	}

	deps.Accounts = service.NewAccountService(accountStore, cfg.JWTSecret, tokenTTL, logger.For("accounts"))
	deps.Bookings = service.NewBookingService(accountStore, bookingStore, dedup, logger.For("bookings"))
	deps.Admin = service.NewAdminService(accountStore, bookingStore, logger.For("admin"))

	e := api.NewRouter(deps)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("backend", cfg.StoreBackend).Msg("listening")

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}

// seedAdmin creates the administrator account on first boot. Admins cannot
// sign up through the public surface. An existing admin is left untouched so
// password rotation via env does not clobber a changed one.
func seedAdmin(ctx context.Context, accounts ports.AccountStore, cfg config.AdminConfig) error {
	if _, err := accounts.Get(ctx, cfg.Email); err == nil {
		return nil
	} else if !errors.Is(err, domain.ErrAccountNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	return accounts.Put(ctx, &domain.Account{
		Email:        cfg.Email,
		Name:         cfg.Name,
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
		Status:       domain.StatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
}
