package usecase_test

import (
	"context"
	"fmt"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/slackinvite/pkg/domain/interfaces/mocks"
	"github.com/secmon-lab/slackinvite/pkg/domain/model"
	"github.com/secmon-lab/slackinvite/pkg/domain/types"
)

// pageCursor returns the cursor that requests page index i (0-based)
func pageCursor(i int) string {
	if i == 0 {
		return ""
	}
	return fmt.Sprintf("cursor-%d", i)
}

// pageIndex is the inverse of pageCursor
func pageIndex(cursor string) int {
	if cursor == "" {
		return 0
	}
	var i int
	if _, err := fmt.Sscanf(cursor, "cursor-%d", &i); err != nil {
		panic(err)
	}
	return i
}

// memberPages serves pages in order; failAt makes that page index return an error (-1 disables)
func memberPages(pages [][]*model.Member, failAt int) func(ctx context.Context, cursor string, limit int) (*model.MemberPage, error) {
	return func(ctx context.Context, cursor string, limit int) (*model.MemberPage, error) {
		i := pageIndex(cursor)
		if i == failAt {
			return nil, goerr.New("invalid_auth")
		}
		page := &model.MemberPage{Members: pages[i]}
		if i+1 < len(pages) {
			page.NextCursor = pageCursor(i + 1)
		}
		return page, nil
	}
}

func channelPages(pages [][]*model.Channel, failAt int) func(ctx context.Context, cursor string, limit int, types []string) (*model.ChannelPage, error) {
	return func(ctx context.Context, cursor string, limit int, types []string) (*model.ChannelPage, error) {
		i := pageIndex(cursor)
		if i == failAt {
			return nil, goerr.New("ratelimited")
		}
		page := &model.ChannelPage{Channels: pages[i]}
		if i+1 < len(pages) {
			page.NextCursor = pageCursor(i + 1)
		}
		return page, nil
	}
}

func newMemberMock(pages [][]*model.Member, failAt int) *mocks.SlackClientMock {
	return &mocks.SlackClientMock{ListUsersFunc: memberPages(pages, failAt)}
}

func newChannelMock(pages [][]*model.Channel, failAt int) *mocks.SlackClientMock {
	return &mocks.SlackClientMock{ListChannelsFunc: channelPages(pages, failAt)}
}

func human(id string) *model.Member {
	return &model.Member{ID: types.MemberID(id), Name: "user " + id}
}

func memberIDRange(n int) []types.MemberID {
	ids := make([]types.MemberID, n)
	for i := range ids {
		ids[i] = types.MemberID(fmt.Sprintf("U%04d", i))
	}
	return ids
}
