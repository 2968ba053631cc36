package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/slackinvite/pkg/cli/config"
	controller "github.com/secmon-lab/slackinvite/pkg/controller/http"
	"github.com/secmon-lab/slackinvite/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdServe() *cli.Command {
	var (
		serverCfg config.Server
		slackCfg  config.Slack
		join      bool
	)

	flags := joinFlags(
		serverCfg.Flags(),
		slackCfg.Flags(),
		[]cli.Flag{
			&cli.BoolFlag{
				Name:        "join",
				Usage:       "Try to join each channel before inviting (errors are ignored)",
				Sources:     cli.EnvVars("SLACKINVITE_JOIN"),
				Destination: &join,
			},
		},
	)

	return &cli.Command{
		Name:  "serve",
		Usage: "Start the interactive invitation form",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			logger.Info("Starting slackinvite server",
				slog.Any("server", serverCfg),
				slog.Any("slack", slackCfg),
				slog.Bool("join", join),
			)

			slackClient, err := slackCfg.Configure()
			if err != nil {
				return err
			}

			uc := controller.UseCases{
				Directory: usecase.NewDirectory(slackClient),
				Channels:  usecase.NewChannels(slackClient),
				Inviter:   usecase.NewInvite(slackClient, usecase.WithJoin(join)),
			}
			if serverCfg.CacheTTL > 0 {
				uc.Directory = usecase.NewCachedDirectory(uc.Directory, serverCfg.CacheTTL)
				uc.Channels = usecase.NewCachedChannels(uc.Channels, serverCfg.CacheTTL)
			}

			server, err := controller.NewServer(ctx, serverCfg.Addr, uc)
			if err != nil {
				return goerr.Wrap(err, "failed to create HTTP server")
			}

			errCh := make(chan error, 1)
			go func() {
				logger.Info("HTTP server starting", slog.String("addr", serverCfg.Addr))
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					errCh <- err
				}
			}()

			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
			defer signal.Stop(sigChan)

			select {
			case <-ctx.Done():
				logger.Info("Context cancelled, shutting down...")
			case sig := <-sigChan:
				logger.Info("Signal received, shutting down...", slog.Any("signal", sig))
			case err := <-errCh:
				return goerr.Wrap(err, "HTTP server failed", goerr.V("addr", serverCfg.Addr))
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			if err := server.Shutdown(shutdownCtx); err != nil {
				return goerr.Wrap(err, "failed to shutdown server gracefully")
			}

			logger.Info("Server shutdown complete")
			return nil
		},
	}
}
