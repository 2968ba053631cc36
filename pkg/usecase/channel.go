package usecase

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/slackinvite/pkg/domain/interfaces"
	"github.com/secmon-lab/slackinvite/pkg/domain/model"
	"github.com/secmon-lab/slackinvite/pkg/domain/types"
)

// ChannelPageSize is the conversations.list page size
const ChannelPageSize = 200

// ChannelTypes are the conversation types searched when resolving channels
var ChannelTypes = []string{"public_channel", "private_channel"}

// Channels lists and resolves workspace channels
type Channels struct {
	slackClient interfaces.SlackClient
}

var _ interfaces.ChannelResolver = (*Channels)(nil)

// NewChannels creates a new channel resolver
func NewChannels(slackClient interfaces.SlackClient) *Channels {
	return &Channels{
		slackClient: slackClient,
	}
}

// ListAllChannels returns every public and private channel visible to the token.
// Like ListActiveMembers, a failed page returns the channels read so far with the error.
func (u *Channels) ListAllChannels(ctx context.Context) ([]*model.Channel, error) {
	var (
		channels []*model.Channel
		cursor   string
		pages    int
	)

	for {
		page, err := u.slackClient.ListChannels(ctx, cursor, ChannelPageSize, ChannelTypes)
		if err != nil {
			ctxlog.From(ctx).Warn("Channel listing stopped early",
				"pages", pages,
				"fetched", len(channels),
				"error", err)
			return channels, goerr.Wrap(err, "failed to list channels",
				goerr.V("pages", pages),
				goerr.V("fetched", len(channels)))
		}
		pages++
		channels = append(channels, page.Channels...)

		if page.NextCursor == "" {
			return channels, nil
		}
		cursor = page.NextCursor
	}
}

// ResolveChannelID returns the ID of the first channel, in page order, whose
// name equals name exactly. It stops paging as soon as a match is found and
// returns model.ErrChannelNotFound when every page has been read without one.
func (u *Channels) ResolveChannelID(ctx context.Context, name types.ChannelName) (types.ChannelID, error) {
	var (
		cursor string
		pages  int
	)

	for {
		page, err := u.slackClient.ListChannels(ctx, cursor, ChannelPageSize, ChannelTypes)
		if err != nil {
			return "", goerr.Wrap(err, "failed to list channels",
				goerr.V("name", name),
				goerr.V("pages", pages))
		}
		pages++

		for _, ch := range page.Channels {
			if ch.Name == name.String() {
				ctxlog.From(ctx).Debug("Channel resolved",
					"name", name,
					"channelID", ch.ID,
					"pages", pages)
				return ch.ID, nil
			}
		}

		if page.NextCursor == "" {
			return "", goerr.Wrap(model.ErrChannelNotFound, "no channel with that name",
				goerr.V("name", name),
				goerr.V("pages", pages))
		}
		cursor = page.NextCursor
	}
}

// ResolveSelector returns the selector's ID as-is or resolves its name
func ResolveSelector(ctx context.Context, resolver interfaces.ChannelResolver, selector model.ChannelSelector) (types.ChannelID, error) {
	if selector.ID != "" {
		return selector.ID, nil
	}
	if selector.Name == "" {
		return "", goerr.Wrap(model.ErrInvalidSelection, "channel selector is empty")
	}
	return resolver.ResolveChannelID(ctx, selector.Name)
}
