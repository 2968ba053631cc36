package cli

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/secmon-lab/slackinvite/pkg/cli/config"
	"github.com/secmon-lab/slackinvite/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdMembers() *cli.Command {
	var slackCfg config.Slack

	return &cli.Command{
		Name:  "members",
		Usage: "List active (non-bot, non-deactivated) workspace members",
		Flags: slackCfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			slackClient, err := slackCfg.Configure()
			if err != nil {
				return err
			}

			members, listErr := usecase.NewDirectory(slackClient).ListActiveMembers(ctx)
			if err := renderMembers(c.Root().Writer, members); err != nil {
				return err
			}
			if listErr != nil {
				ctxlog.From(ctx).Warn("Member list is incomplete", "count", len(members))
			}
			return listErr
		},
	}
}

func cmdChannels() *cli.Command {
	var slackCfg config.Slack

	return &cli.Command{
		Name:  "channels",
		Usage: "List public and private channels visible to the token",
		Flags: slackCfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			slackClient, err := slackCfg.Configure()
			if err != nil {
				return err
			}

			channels, listErr := usecase.NewChannels(slackClient).ListAllChannels(ctx)
			if err := renderChannels(c.Root().Writer, channels); err != nil {
				return err
			}
			if listErr != nil {
				ctxlog.From(ctx).Warn("Channel list is incomplete", "count", len(channels))
			}
			return listErr
		},
	}
}
