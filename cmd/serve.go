package cmd

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"foodorder/configs"
	"foodorder/routes"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var withSeed bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Migrate the database and start the HTTP server.",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := configs.ConnectionDB(cfg.DBDriver, cfg.DBSource)
		if err != nil {
			return err
		}
		if err := configs.SetupDatabase(db); err != nil {
			return err
		}
		if withSeed {
			data, err := configs.LoadSeed(cfg.SeedFile)
			if err != nil {
				return err
			}
			if err := configs.Seed(db, data); err != nil {
				return err
			}
		}

		if cfg.LogLevel != "debug" {
			gin.SetMode(gin.ReleaseMode)
		}
		r := gin.New()
		hub := routes.RegisterRoutes(r, db, cfg)

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		go hub.Run(ctx)

		srv := &http.Server{Addr: ":" + cfg.Port, Handler: r}
		go func() {
			log.Info().Str("addr", srv.Addr).Msg("server running")
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Error().Err(err).Msg("server stopped")
				stop()
			}
		}()

		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		log.Info().Msg("shutting down")
		return srv.Shutdown(shutdownCtx)
	},
}

func init() {
	serveCmd.Flags().BoolVar(&withSeed, "seed", false, "load sample data into an empty database first")
}
