package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/curadolabs/labelgen/internal/server"
	"github.com/curadolabs/labelgen/pkg/labelstore"
	"github.com/curadolabs/labelgen/pkg/pipeline"
)

// serveCommand creates the serve command for running the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var configPath, addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the label generation HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadServeConfig(configPath)
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Addr = addr
			}
			return c.runServe(cmd.Context(), cfg)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "TOML config file")
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides config)")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, cfg ServeConfig) error {
	store, err := c.newStore(ctx, cfg.Store)
	if err != nil {
		return err
	}

	runner := pipeline.NewRunner(store, c.Logger)
	defer runner.Close()

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           server.New(runner, c.Logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		c.Logger.Info("listening", "addr", cfg.Addr, "store", cfg.Store.Backend)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		c.Logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// newStore builds the configured label store backend.
func (c *CLI) newStore(ctx context.Context, cfg StoreConfig) (labelstore.Store, error) {
	switch cfg.Backend {
	case "", "memory":
		return labelstore.NewMemoryStore(), nil
	case "file":
		dir := cfg.Dir
		if dir == "" {
			var err error
			if dir, err = storeDir(); err != nil {
				return nil, err
			}
		}
		return labelstore.NewFileStore(dir)
	case "redis":
		return labelstore.NewRedisStore(ctx, cfg.RedisAddr, labelstore.DefaultRedisTTL)
	case "mongo":
		return labelstore.NewMongoStore(ctx, cfg.MongoURI, cfg.MongoDB)
	default:
		return nil, fmt.Errorf("unknown store backend %q (must be one of: memory, file, redis, mongo)", cfg.Backend)
	}
}
