package usecase

import (
	"context"
	"fmt"

	"github.com/m-mizutani/ctxlog"
	"github.com/secmon-lab/slackinvite/pkg/domain/interfaces"
	"github.com/secmon-lab/slackinvite/pkg/domain/model"
	"github.com/secmon-lab/slackinvite/pkg/domain/types"
	slackService "github.com/secmon-lab/slackinvite/pkg/service/slack"
)

// InviteBatchSize is the maximum number of users conversations.invite accepts per call
const InviteBatchSize = 30

// Slack error codes that map to dedicated outcome statuses
const (
	errCodeAlreadyInChannel = "already_in_channel"
	errCodeNotInChannel     = "not_in_channel"
)

type Invite struct {
	slackClient interfaces.SlackClient
	batchSize   int
	join        bool
}

var _ interfaces.Inviter = (*Invite)(nil)

// InviteOption configures Invite
type InviteOption func(*Invite)

// WithJoin makes the inviter try conversations.join once per channel before
// its first batch. Join failures are logged and otherwise ignored.
func WithJoin(join bool) InviteOption {
	return func(u *Invite) {
		u.join = join
	}
}

// WithBatchSize lowers the batch size. Values outside 1..InviteBatchSize are ignored.
func WithBatchSize(size int) InviteOption {
	return func(u *Invite) {
		if size > 0 && size <= InviteBatchSize {
			u.batchSize = size
		}
	}
}

func NewInvite(slackClient interfaces.SlackClient, opts ...InviteOption) *Invite {
	u := &Invite{
		slackClient: slackClient,
		batchSize:   InviteBatchSize,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Invite submits memberIDs to one channel in consecutive batches and returns
// one outcome per batch. A failed batch never stops the remaining ones.
func (u *Invite) Invite(ctx context.Context, memberIDs []types.MemberID, channelID types.ChannelID) []*model.Outcome {
	logger := ctxlog.From(ctx).With("channelID", channelID)

	batches := SplitBatches(memberIDs, u.batchSize)
	if len(batches) == 0 {
		logger.Info("No members to invite")
		return nil
	}

	if u.join {
		if err := u.slackClient.JoinConversation(ctx, channelID.String()); err != nil {
			logger.Warn("Failed to join channel, inviting anyway", "error", err)
		}
	}

	logger.Info("Starting batch invitation",
		"memberCount", len(memberIDs),
		"batchCount", len(batches))

	outcomes := make([]*model.Outcome, 0, len(batches))
	for i, members := range batches {
		batch := model.Batch{Channel: channelID, Members: members}
		_, err := u.slackClient.InviteUsersToConversation(ctx, channelID.String(), types.MemberIDStrings(members)...)
		outcome := classifyOutcome(batch, err)
		outcomes = append(outcomes, outcome)

		attrs := []any{
			"batch", i + 1,
			"size", len(members),
			"status", outcome.Status,
		}
		if outcome.Status.IsSatisfied() {
			logger.Info("Batch processed", attrs...)
		} else {
			logger.Warn("Batch failed", append(attrs, "detail", outcome.Detail, "error", err)...)
		}
	}

	return outcomes
}

// InviteMany applies Invite to each channel in the given order
func (u *Invite) InviteMany(ctx context.Context, memberIDs []types.MemberID, channelIDs []types.ChannelID) *model.InvitationReport {
	report := &model.InvitationReport{RunID: types.NewRunID()}
	ctx = ctxlog.With(ctx, ctxlog.From(ctx).With("runID", report.RunID))

	for _, channelID := range channelIDs {
		report.Add(u.Invite(ctx, memberIDs, channelID)...)
	}

	summary := report.Summary()
	ctxlog.From(ctx).Info("Invitation completed",
		"channels", len(channelIDs),
		"batches", summary.Batches,
		"accepted", summary.Accepted,
		"alreadyMember", summary.AlreadyMember,
		"channelNotJoined", summary.ChannelNotJoined,
		"otherError", summary.OtherError)

	return report
}

// SplitBatches partitions ids into contiguous chunks of at most size elements.
// Concatenating the chunks yields ids unchanged.
func SplitBatches(ids []types.MemberID, size int) [][]types.MemberID {
	if size <= 0 {
		size = InviteBatchSize
	}

	batches := make([][]types.MemberID, 0, (len(ids)+size-1)/size)
	for start := 0; start < len(ids); start += size {
		end := min(start+size, len(ids))
		batches = append(batches, ids[start:end:end])
	}
	return batches
}

func classifyOutcome(batch model.Batch, err error) *model.Outcome {
	outcome := &model.Outcome{
		Batch:   batch,
		Channel: batch.Channel,
	}

	if err == nil {
		outcome.Status = types.InviteStatusAccepted
		return outcome
	}

	code := slackService.ErrorCode(err)
	switch code {
	case errCodeAlreadyInChannel:
		outcome.Status = types.InviteStatusAlreadyMember
		outcome.Detail = code
	case errCodeNotInChannel:
		outcome.Status = types.InviteStatusChannelNotJoined
		outcome.Detail = fmt.Sprintf("the token owner is not a member of %s; add the app to the channel or rerun with --join", batch.Channel)
	default:
		outcome.Status = types.InviteStatusOtherError
		outcome.Detail = slackService.ErrorDetail(err)
	}
	return outcome
}
