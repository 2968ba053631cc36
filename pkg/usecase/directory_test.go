package usecase_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/slackinvite/pkg/domain/model"
	"github.com/secmon-lab/slackinvite/pkg/domain/types"
	"github.com/secmon-lab/slackinvite/pkg/usecase"
)

func TestDirectoryListActiveMembers(t *testing.T) {
	ctx := context.Background()

	t.Run("Bots and deactivated accounts are dropped across pages", func(t *testing.T) {
		pages := [][]*model.Member{
			{human("U1"), {ID: "B1", IsBot: true}, human("U2")},
			{{ID: "U3", IsDeleted: true}, human("U4")},
			{{ID: "B2", IsBot: true, IsDeleted: true}, human("U5")},
		}
		mockSlack := newMemberMock(pages, -1)

		members, err := usecase.NewDirectory(mockSlack).ListActiveMembers(ctx)
		gt.NoError(t, err).Required()
		gt.A(t, model.MemberIDsOf(members)).Equal([]types.MemberID{"U1", "U2", "U4", "U5"})

		// Exactly one request per page, each with the documented page size
		calls := mockSlack.ListUsersCalls()
		gt.A(t, calls).Length(3)
		for i, call := range calls {
			gt.Equal(t, usecase.MemberPageSize, call.Limit)
			gt.Equal(t, pageCursor(i), call.Cursor)
		}
	})

	t.Run("Single page without cursor", func(t *testing.T) {
		mockSlack := newMemberMock([][]*model.Member{{human("U1")}}, -1)

		members, err := usecase.NewDirectory(mockSlack).ListActiveMembers(ctx)
		gt.NoError(t, err)
		gt.A(t, members).Length(1)
		gt.A(t, mockSlack.ListUsersCalls()).Length(1)
	})

	t.Run("Empty workspace", func(t *testing.T) {
		mockSlack := newMemberMock([][]*model.Member{{}}, -1)

		members, err := usecase.NewDirectory(mockSlack).ListActiveMembers(ctx)
		gt.NoError(t, err)
		gt.A(t, members).Length(0)
	})

	t.Run("Page failure returns partial results and the error", func(t *testing.T) {
		pages := [][]*model.Member{
			{human("U1"), {ID: "B1", IsBot: true}},
			{human("U2")},
			{human("U3")},
		}
		mockSlack := newMemberMock(pages, 1)

		members, err := usecase.NewDirectory(mockSlack).ListActiveMembers(ctx)
		gt.Error(t, err)
		gt.A(t, model.MemberIDsOf(members)).Equal([]types.MemberID{"U1"})
		gt.A(t, mockSlack.ListUsersCalls()).Length(2)
	})

	t.Run("First page failure returns nothing", func(t *testing.T) {
		mockSlack := newMemberMock([][]*model.Member{{human("U1")}}, 0)

		members, err := usecase.NewDirectory(mockSlack).ListActiveMembers(ctx)
		gt.Error(t, err)
		gt.A(t, members).Length(0)
	})
}
