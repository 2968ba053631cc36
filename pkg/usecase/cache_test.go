package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/slackinvite/pkg/domain/model"
	"github.com/secmon-lab/slackinvite/pkg/domain/types"
	"github.com/secmon-lab/slackinvite/pkg/usecase"
)

func TestCachedDirectory(t *testing.T) {
	ctx := context.Background()

	t.Run("Second read is served from cache", func(t *testing.T) {
		mockSlack := newMemberMock([][]*model.Member{{human("U1")}, {human("U2")}}, -1)
		cached := usecase.NewCachedDirectory(usecase.NewDirectory(mockSlack), time.Minute)

		first, err := cached.ListActiveMembers(ctx)
		gt.NoError(t, err)
		second, err := cached.ListActiveMembers(ctx)
		gt.NoError(t, err)

		gt.A(t, model.MemberIDsOf(second)).Equal(model.MemberIDsOf(first))
		gt.A(t, mockSlack.ListUsersCalls()).Length(2)

		cached.Purge()
		_, err = cached.ListActiveMembers(ctx)
		gt.NoError(t, err)
		gt.A(t, mockSlack.ListUsersCalls()).Length(4)
	})

	t.Run("Partial results are not cached", func(t *testing.T) {
		mockSlack := newMemberMock([][]*model.Member{{human("U1")}, {human("U2")}}, 1)
		cached := usecase.NewCachedDirectory(usecase.NewDirectory(mockSlack), time.Minute)

		members, err := cached.ListActiveMembers(ctx)
		gt.Error(t, err)
		gt.A(t, members).Length(1)

		_, err = cached.ListActiveMembers(ctx)
		gt.Error(t, err)
		gt.A(t, mockSlack.ListUsersCalls()).Length(4)
	})

	t.Run("Entries expire", func(t *testing.T) {
		mockSlack := newMemberMock([][]*model.Member{{human("U1")}}, -1)
		cached := usecase.NewCachedDirectory(usecase.NewDirectory(mockSlack), 10*time.Millisecond)

		_, err := cached.ListActiveMembers(ctx)
		gt.NoError(t, err)
		time.Sleep(50 * time.Millisecond)
		_, err = cached.ListActiveMembers(ctx)
		gt.NoError(t, err)
		gt.A(t, mockSlack.ListUsersCalls()).Length(2)
	})
}

func TestCachedChannels(t *testing.T) {
	ctx := context.Background()

	t.Run("Resolutions are memoized per name", func(t *testing.T) {
		mockSlack := newChannelMock(testChannelPages(), -1)
		cached := usecase.NewCachedChannels(usecase.NewChannels(mockSlack), time.Minute)

		for range 3 {
			id, err := cached.ResolveChannelID(ctx, "projekty")
			gt.NoError(t, err)
			gt.Equal(t, types.ChannelID("G0000000003"), id)
		}
		gt.A(t, mockSlack.ListChannelsCalls()).Length(2)
	})

	t.Run("Not found is not cached", func(t *testing.T) {
		mockSlack := newChannelMock(testChannelPages(), -1)
		cached := usecase.NewCachedChannels(usecase.NewChannels(mockSlack), time.Minute)

		_, err := cached.ResolveChannelID(ctx, "missing")
		gt.True(t, errors.Is(err, model.ErrChannelNotFound))
		_, err = cached.ResolveChannelID(ctx, "missing")
		gt.True(t, errors.Is(err, model.ErrChannelNotFound))
		gt.A(t, mockSlack.ListChannelsCalls()).Length(6)
	})

	t.Run("Channel listing is memoized", func(t *testing.T) {
		mockSlack := newChannelMock(testChannelPages(), -1)
		cached := usecase.NewCachedChannels(usecase.NewChannels(mockSlack), time.Minute)

		for range 2 {
			channels, err := cached.ListAllChannels(ctx)
			gt.NoError(t, err)
			gt.A(t, channels).Length(6)
		}
		gt.A(t, mockSlack.ListChannelsCalls()).Length(3)

		cached.Purge()
		_, err := cached.ListAllChannels(ctx)
		gt.NoError(t, err)
		gt.A(t, mockSlack.ListChannelsCalls()).Length(6)
	})
}
