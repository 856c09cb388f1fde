package main

import (
	"context"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/econpulse/bookmarkd/internal/auth"
	"github.com/econpulse/bookmarkd/internal/build"
	"github.com/econpulse/bookmarkd/internal/config"
	"github.com/econpulse/bookmarkd/internal/db"
	"github.com/econpulse/bookmarkd/internal/handler"
	"github.com/econpulse/bookmarkd/internal/logger"
	"github.com/econpulse/bookmarkd/internal/metrics"
	"github.com/econpulse/bookmarkd/internal/store"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			log := logger.New(cfg.Log.Level, cfg.Log.Pretty)
			defer func() { _ = log.Sync() }()
			log.Info("starting bookmarkd",
				logger.String("version", build.Version),
				logger.String("commit", build.Commit))

			database, err := db.New(cfg.DB.Driver, cfg.DB.DSN)
			if err != nil {
				return err
			}
			defer func() { _ = database.Close() }()

			if err := db.Migrate(database, cfg.DB.Driver); err != nil {
				return err
			}

			sessionManager := auth.NewSessionManager(database, cfg.DB.Driver, cfg.SessionLifetime)

			ctx := context.Background()
			oidcProvider, err := auth.NewProvider(ctx, cfg)
			if err != nil {
				return err
			}

			userStore := store.NewUserStore(database)
			listStore := store.NewListStore(database)
			membershipStore := store.NewMembershipStore(database)

			go runGaugeSync(ctx, listStore, userStore, log)

			authHandlers := auth.NewHandlers(oidcProvider, sessionManager, userStore, cfg.AdminEmail)
			authMiddleware := auth.NewMiddleware(sessionManager, oidcProvider, userStore, cfg.AdminEmail, log)

			router := handler.NewRouter(handler.Deps{
				SessionManager: sessionManager,
				AuthHandlers:   authHandlers,
				AuthMiddleware: authMiddleware,
				Lists:          listStore,
				Memberships:    membershipStore,
				Log:            log,
			})

			log.Info("listening", logger.String("addr", cfg.HTTP.Addr))
			return http.ListenAndServe(cfg.HTTP.Addr, router)
		},
	}
}

// runGaugeSync refreshes the totals gauges once a minute so dashboards see
// current counts without a write having to happen first.
func runGaugeSync(ctx context.Context, ls *store.ListStore, us *store.UserStore, log logger.Logger) {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	sync := func() {
		if n, err := ls.CountAll(ctx); err == nil {
			metrics.ListsTotal.Set(float64(n))
		} else {
			log.Warn("list count sync", logger.Error(err))
		}
		if n, err := us.CountAll(ctx); err == nil {
			metrics.UsersTotal.Set(float64(n))
		} else {
			log.Warn("user count sync", logger.Error(err))
		}
	}

	sync()
	for {
		select {
		case <-ticker.C:
			sync()
		case <-ctx.Done():
			return
		}
	}
}
