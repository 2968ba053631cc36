package interfaces

import (
	"context"

	"github.com/secmon-lab/slackinvite/pkg/domain/model"
	"github.com/secmon-lab/slackinvite/pkg/domain/types"
)

// Directory lists workspace members
type Directory interface {
	// ListActiveMembers returns every member that is neither a bot nor deactivated.
	// On failure it returns the members read so far together with the error.
	ListActiveMembers(ctx context.Context) ([]*model.Member, error)
}

// ChannelResolver finds channels by name
type ChannelResolver interface {
	ListAllChannels(ctx context.Context) ([]*model.Channel, error)
	ResolveChannelID(ctx context.Context, name types.ChannelName) (types.ChannelID, error)
}

// Inviter adds members to channels in batches
type Inviter interface {
	Invite(ctx context.Context, memberIDs []types.MemberID, channelID types.ChannelID) []*model.Outcome
	InviteMany(ctx context.Context, memberIDs []types.MemberID, channelIDs []types.ChannelID) *model.InvitationReport
}
