package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/bonsa9/portfolio"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := runServer(ctx, os.Args[1:]); err != nil {
		log.Fatalf("portfolio server: %v", err)
	}
}

func runServer(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("portfolio-server", flag.ContinueOnError)
	configPath := fs.String("config", "", "Path to a YAML config file (optional)")
	addr := fs.String("addr", "", "Listen address, overrides config and PORTFOLIO_ADDR")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := portfolio.LoadConfig(*configPath)
	if err != nil {
		return err
	}
	if *addr != "" {
		cfg.HTTP.Addr = *addr
	}

	module, err := portfolio.New(cfg)
	if err != nil {
		return fmt.Errorf("bootstrap module: %w", err)
	}
	logger := module.Logger("portfolio.server")

	server := &http.Server{
		Addr:         cfg.HTTP.Addr,
		Handler:      module.Handler(),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server.listen", "addr", cfg.HTTP.Addr, "github_token", cfg.GitHub.HasToken())
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("server.shutdown", "timeout", cfg.HTTP.ShutdownTimeout.String())
	shutdownCtx := context.Background()
	if cfg.HTTP.ShutdownTimeout > 0 {
		var cancel context.CancelFunc
		shutdownCtx, cancel = context.WithTimeout(shutdownCtx, cfg.HTTP.ShutdownTimeout)
		defer cancel()
	}
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
