package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/abhisek/oasys/internal/api"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve attendance data and the planner over a JSON API",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if v, _ := cmd.Flags().GetString("addr"); v != "" {
			cfg.API.Addr = v
		}

		if cfg.Log.File != "" {
			f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
			if err != nil {
				return fmt.Errorf("open log file: %w", err)
			}
			defer f.Close()
			log.SetOutput(f)
			gin.DefaultWriter = f
			gin.DefaultErrorWriter = f
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		src, err := openSource(ctx, cfg, true)
		if err != nil {
			return err
		}
		defer src.Repo.Close()

		gin.SetMode(gin.ReleaseMode)
		router := api.NewRouter(api.NewHandler(src.Repo), gin.Logger(), gin.Recovery())
		srv := &http.Server{
			Addr:              cfg.API.Addr,
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		}

		errc := make(chan error, 1)
		go func() {
			log.Printf("serving %s on %s", src.Name, cfg.API.Addr)
			errc <- srv.ListenAndServe()
		}()

		select {
		case err := <-errc:
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return fmt.Errorf("serve: %w", err)
		case <-ctx.Done():
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		log.Printf("shutting down")
		return srv.Shutdown(shutdownCtx)
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (overrides api.addr)")
}
