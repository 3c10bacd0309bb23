package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	"github.com/mnavar-evidence/shelfsense/internal/catalog"
	httpapi "github.com/mnavar-evidence/shelfsense/internal/interfaces/http"
	"github.com/mnavar-evidence/shelfsense/internal/query"
	"github.com/mnavar-evidence/shelfsense/internal/synth"
)

func runAPI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if host, _ := cmd.Flags().GetString("host"); host != "" {
		cfg.API.Host = host
	}
	if port, _ := cmd.Flags().GetInt("port"); port != 0 {
		cfg.API.Port = port
	}

	serverCfg := httpapi.DefaultServerConfig()
	serverCfg.Host = cfg.API.Host
	serverCfg.Port = cfg.API.Port
	serverCfg.RateLimit = rate.Limit(cfg.API.RateLimit)
	serverCfg.RateBurst = cfg.API.RateBurst

	svc := query.NewService(synth.New(catalog.New()))
	srv, err := httpapi.NewServer(serverCfg, svc)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	log.Info().
		Str("app", appName).
		Str("version", version).
		Str("addr", srv.GetAddress()).
		Msg("API server running")

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
