package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/slackinvite/pkg/cli/config"
	"github.com/secmon-lab/slackinvite/pkg/domain/model"
	"github.com/secmon-lab/slackinvite/pkg/domain/types"
	"github.com/secmon-lab/slackinvite/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdInvite() *cli.Command {
	var (
		slackCfg     config.Slack
		selectionCfg config.Selection
	)

	return &cli.Command{
		Name:  "invite",
		Usage: "Invite members to one or more channels in batches of up to 30",
		Flags: joinFlags(slackCfg.Flags(), selectionCfg.Flags()),
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)
			logger.Debug("Starting invitation",
				slog.Any("slack", slackCfg),
				slog.Any("selection", selectionCfg),
			)

			plan, err := selectionCfg.Plan()
			if err != nil {
				return err
			}

			slackClient, err := slackCfg.Configure()
			if err != nil {
				return err
			}

			w := c.Root().Writer
			directory := usecase.NewDirectory(slackClient)
			channels := usecase.NewChannels(slackClient)
			inviter := usecase.NewInvite(slackClient,
				usecase.WithJoin(selectionCfg.Join),
				usecase.WithBatchSize(selectionCfg.BatchSize))

			memberIDs := types.MemberIDs(plan.Members)
			if plan.AllMembers {
				members, err := directory.ListActiveMembers(ctx)
				if err != nil {
					if len(members) == 0 {
						return err
					}
					logger.Warn("Member list is incomplete, inviting the members read so far", "error", err)
				}
				fmt.Fprintf(w, "Found %d active members\n", len(members))
				memberIDs = model.MemberIDsOf(members)
			}

			var (
				channelIDs []types.ChannelID
				unresolved []model.ChannelSelector
			)
			for _, selector := range plan.Selectors() {
				id, err := usecase.ResolveSelector(ctx, channels, selector)
				if err != nil {
					logger.Warn("Skipping channel", "channel", selector.String(), "error", err)
					unresolved = append(unresolved, selector)
					continue
				}
				channelIDs = append(channelIDs, id)
			}

			report := inviter.InviteMany(ctx, memberIDs, channelIDs)
			if err := renderReport(w, report, unresolved); err != nil {
				return err
			}

			if report.HasFailures() || len(unresolved) > 0 {
				summary := report.Summary()
				return goerr.Wrap(model.ErrInvitationIncomplete, "some invitations did not succeed",
					goerr.V("run_id", report.RunID),
					goerr.V("channel_not_joined", summary.ChannelNotJoined),
					goerr.V("other_error", summary.OtherError),
					goerr.V("unresolved_channels", len(unresolved)))
			}
			return nil
		},
	}
}
