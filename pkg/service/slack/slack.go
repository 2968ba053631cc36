package slack

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/slackinvite/pkg/domain/interfaces"
	"github.com/secmon-lab/slackinvite/pkg/domain/model"
	"github.com/secmon-lab/slackinvite/pkg/domain/types"
	"github.com/slack-go/slack"
)

const (
	// continuationSize bounds the number of pending users.list continuations
	continuationSize = 256
	// continuationTTL drops continuations of abandoned reads
	continuationTTL = 10 * time.Minute
)

// Service implements interfaces.SlackClient on top of slack-go
type Service struct {
	client *slack.Client

	// slack-go hides users.list cursors inside slack.UserPagination, so the
	// service hands out its own opaque tokens mapped to the pending pagination.
	continuations *expirable.LRU[string, slack.UserPagination]
}

var _ interfaces.SlackClient = (*Service)(nil)

// New creates a new Slack service
func New(token string, options ...slack.Option) *Service {
	return &Service{
		client:        slack.New(token, options...),
		continuations: expirable.NewLRU[string, slack.UserPagination](continuationSize, nil, continuationTTL),
	}
}

// ListUsers fetches one page of workspace members
func (s *Service) ListUsers(ctx context.Context, cursor string, limit int) (*model.MemberPage, error) {
	var pager slack.UserPagination
	if cursor == "" {
		pager = s.client.GetUsersPaginated(slack.GetUsersOptionLimit(limit))
	} else {
		p, ok := s.continuations.Get(cursor)
		if !ok {
			return nil, goerr.New("unknown or expired users cursor", goerr.V("cursor", cursor))
		}
		s.continuations.Remove(cursor)
		pager = p
	}

	next, err := pager.Next(ctx)
	if err != nil {
		if next.Done(err) {
			return &model.MemberPage{}, nil
		}
		return nil, goerr.Wrap(err, "failed to list users", goerr.V("cursor", cursor))
	}

	page := &model.MemberPage{
		Members: make([]*model.Member, 0, len(next.Users)),
	}
	for i := range next.Users {
		page.Members = append(page.Members, toMember(&next.Users[i]))
	}

	token := uuid.New().String()
	s.continuations.Add(token, next)
	page.NextCursor = token

	return page, nil
}

// ListChannels fetches one page of conversations
func (s *Service) ListChannels(ctx context.Context, cursor string, limit int, channelTypes []string) (*model.ChannelPage, error) {
	params := &slack.GetConversationsParameters{
		Cursor: cursor,
		Limit:  limit,
		Types:  channelTypes,
	}
	channels, nextCursor, err := s.client.GetConversationsContext(ctx, params)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list conversations", goerr.V("cursor", cursor))
	}

	page := &model.ChannelPage{
		Channels:   make([]*model.Channel, 0, len(channels)),
		NextCursor: nextCursor,
	}
	for i := range channels {
		page.Channels = append(page.Channels, toChannel(&channels[i]))
	}
	return page, nil
}

// InviteUsersToConversation invites users to a Slack channel
func (s *Service) InviteUsersToConversation(ctx context.Context, channelID string, users ...string) (*slack.Channel, error) {
	channel, err := s.client.InviteUsersToConversationContext(ctx, channelID, users...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to invite users to conversation",
			goerr.V("channelID", channelID),
			goerr.V("userCount", len(users)))
	}
	return channel, nil
}

// JoinConversation joins a channel as the token owner
func (s *Service) JoinConversation(ctx context.Context, channelID string) error {
	if _, _, _, err := s.client.JoinConversationContext(ctx, channelID); err != nil {
		return goerr.Wrap(err, "failed to join conversation", goerr.V("channelID", channelID))
	}
	return nil
}

// ErrorCode extracts the Slack error code (e.g. "already_in_channel") from an API error.
// Errors that did not come from a Slack response fall back to the text of the
// innermost error up to the first colon.
func ErrorCode(err error) string {
	if err == nil {
		return ""
	}

	var slackErr slack.SlackErrorResponse
	if errors.As(err, &slackErr) {
		return slackErr.Err
	}

	var rateErr *slack.RateLimitedError
	if errors.As(err, &rateErr) {
		return "ratelimited"
	}

	code, _, _ := strings.Cut(rootError(err).Error(), ":")
	return strings.TrimSpace(code)
}

// ErrorDetail returns the text reported to users for a failed call: the Slack
// error code for API errors, the innermost error message otherwise.
func ErrorDetail(err error) string {
	if err == nil {
		return ""
	}

	var slackErr slack.SlackErrorResponse
	if errors.As(err, &slackErr) {
		return slackErr.Err
	}
	return rootError(err).Error()
}

func rootError(err error) error {
	for {
		inner := errors.Unwrap(err)
		if inner == nil {
			return err
		}
		err = inner
	}
}

func toMember(u *slack.User) *model.Member {
	name := u.Profile.RealName
	if name == "" {
		name = u.RealName
	}
	if name == "" {
		name = u.Name
	}

	return &model.Member{
		ID:        types.MemberID(u.ID),
		Name:      name,
		IsBot:     u.IsBot,
		IsDeleted: u.Deleted,
	}
}

func toChannel(ch *slack.Channel) *model.Channel {
	return &model.Channel{
		ID:         types.ChannelID(ch.ID),
		Name:       ch.Name,
		IsPrivate:  ch.IsPrivate,
		IsArchived: ch.IsArchived,
	}
}
