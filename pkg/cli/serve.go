package cli

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/govern-lab/riskframe/pkg/cli/config"
	httpctrl "github.com/govern-lab/riskframe/pkg/controller/http"
	"github.com/govern-lab/riskframe/pkg/usecase"
	"github.com/govern-lab/riskframe/pkg/utils/logging"
)

func cmdServe() *cli.Command {
	var addr string
	var skipSeed bool
	var repoCfg config.Repository
	var catalogCfg config.Catalog

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "HTTP server address",
			Value:       ":8080",
			Sources:     cli.EnvVars("RISKFRAME_ADDR"),
			Destination: &addr,
		},
		&cli.BoolFlag{
			Name:        "skip-seed",
			Usage:       "Skip seeding the template catalog on startup",
			Sources:     cli.EnvVars("RISKFRAME_SKIP_SEED"),
			Destination: &skipSeed,
		},
	}
	flags = append(flags, repoCfg.Flags()...)
	flags = append(flags, catalogCfg.Flags()...)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Start HTTP server",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			repo, err := repoCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize repository")
			}
			defer func() {
				if err := repo.Close(); err != nil {
					logging.Default().Error("failed to close repository", "error", err.Error())
				}
			}()

			uc := usecase.New(repo)

			// An empty template store makes the questionnaire unusable, so
			// the catalog is loaded on boot unless explicitly skipped.
			if !skipSeed {
				templates, err := catalogCfg.Load()
				if err != nil {
					return goerr.Wrap(err, "failed to load template catalog")
				}
				seeded, err := uc.Template.Seed(ctx, templates, false)
				if err != nil {
					return goerr.Wrap(err, "failed to seed template catalog")
				}
				if seeded > 0 {
					logging.Default().Info("Seeded template catalog", "templates", seeded)
				}
			}

			server := &http.Server{
				Addr:              addr,
				Handler:           httpctrl.New(uc),
				ReadHeaderTimeout: 30 * time.Second,
			}

			// Setup signal handling for graceful shutdown
			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

			errCh := make(chan error, 1)
			go func() {
				logging.Default().Info("Starting HTTP server", "addr", addr, "backend", repoCfg.Backend())
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					errCh <- goerr.Wrap(err, "failed to start server")
				}
			}()

			select {
			case err := <-errCh:
				return err
			case sig := <-sigCh:
				logging.Default().Info("Received shutdown signal", "signal", sig)

				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()

				if err := server.Shutdown(shutdownCtx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server gracefully")
				}

				logging.Default().Info("Server shutdown completed")
				return nil
			}
		},
	}
}
