package cli

import (
	"context"
	"log/slog"
	"os"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/slackinvite/pkg/cli/config"
	"github.com/secmon-lab/slackinvite/pkg/utils/apperr"
	"github.com/urfave/cli/v3"
)

// Run runs the CLI application
func Run(ctx context.Context, args []string) error {
	// .env must be in the environment before flag sources are read
	if err := config.LoadEnvFile(os.Getenv("SLACKINVITE_ENV_FILE")); err != nil {
		apperr.Handle(ctx, err)
		return err
	}

	app := newApp()
	if err := app.Run(ctx, args); err != nil {
		apperr.Handle(ctx, err)
		return goerr.Wrap(err, "CLI execution failed")
	}

	return nil
}

func newApp() *cli.Command {
	var loggerCfg config.Logger

	return &cli.Command{
		Name:    "slackinvite",
		Usage:   "Bulk-invite Slack workspace members to channels",
		Version: "0.1.0",
		Flags:   loggerCfg.Flags(),
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			logger, err := loggerCfg.Configure()
			if err != nil {
				return nil, err
			}

			slog.SetDefault(logger)
			ctx = ctxlog.With(ctx, logger)
			return ctx, nil
		},
		Commands: []*cli.Command{
			cmdInvite(),
			cmdMembers(),
			cmdChannels(),
			cmdServe(),
		},
	}
}

// joinFlags concatenates the flag groups of several config sections
func joinFlags(groups ...[]cli.Flag) []cli.Flag {
	var flags []cli.Flag
	for _, g := range groups {
		flags = append(flags, g...)
	}
	return flags
}
