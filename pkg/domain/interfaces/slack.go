package interfaces

import (
	"context"

	"github.com/secmon-lab/slackinvite/pkg/domain/model"
	"github.com/slack-go/slack"
)

//go:generate moq -out mocks/slack.go -pkg mocks . SlackClient

// SlackClient is the subset of the Slack Web API used for bulk invitation.
// Cursors are opaque; an empty NextCursor in a page marks the last page.
type SlackClient interface {
	// ListUsers fetches one page of users.list
	ListUsers(ctx context.Context, cursor string, limit int) (*model.MemberPage, error)

	// ListChannels fetches one page of conversations.list for the given conversation types
	ListChannels(ctx context.Context, cursor string, limit int, types []string) (*model.ChannelPage, error)

	// InviteUsersToConversation calls conversations.invite with up to 30 users
	InviteUsersToConversation(ctx context.Context, channelID string, users ...string) (*slack.Channel, error)

	// JoinConversation calls conversations.join for the token's own identity
	JoinConversation(ctx context.Context, channelID string) error
}
