package usecase

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/slackinvite/pkg/domain/interfaces"
	"github.com/secmon-lab/slackinvite/pkg/domain/model"
)

// MemberPageSize is the users.list page size
const MemberPageSize = 200

// Directory reads the workspace member list
type Directory struct {
	slackClient interfaces.SlackClient
}

var _ interfaces.Directory = (*Directory)(nil)

// NewDirectory creates a new directory reader
func NewDirectory(slackClient interfaces.SlackClient) *Directory {
	return &Directory{
		slackClient: slackClient,
	}
}

// ListActiveMembers pages through users.list and drops bots and deactivated accounts.
// If a page request fails the members accumulated so far are still returned
// along with the error, so callers must not assume the list is complete.
func (u *Directory) ListActiveMembers(ctx context.Context) ([]*model.Member, error) {
	logger := ctxlog.From(ctx)

	var (
		members []*model.Member
		cursor  string
		pages   int
	)

	for {
		page, err := u.slackClient.ListUsers(ctx, cursor, MemberPageSize)
		if err != nil {
			active := model.ActiveMembers(members)
			logger.Warn("Member listing stopped early",
				"pages", pages,
				"fetched", len(members),
				"active", len(active),
				"error", err)
			return active, goerr.Wrap(err, "failed to list workspace members",
				goerr.V("pages", pages),
				goerr.V("fetched", len(members)))
		}
		pages++
		members = append(members, page.Members...)

		if page.NextCursor == "" {
			break
		}
		cursor = page.NextCursor
	}

	active := model.ActiveMembers(members)
	logger.Debug("Listed workspace members",
		"pages", pages,
		"fetched", len(members),
		"active", len(active))

	return active, nil
}
