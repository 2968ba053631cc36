package types_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/slackinvite/pkg/domain/types"
)

func TestInviteStatusIsSatisfied(t *testing.T) {
	gt.True(t, types.InviteStatusAccepted.IsSatisfied())
	gt.True(t, types.InviteStatusAlreadyMember.IsSatisfied())
	gt.False(t, types.InviteStatusChannelNotJoined.IsSatisfied())
	gt.False(t, types.InviteStatusOtherError.IsSatisfied())
}

func TestMemberIDs(t *testing.T) {
	ids := types.MemberIDs([]string{"U1", "", "U2"})
	gt.A(t, ids).Length(2)
	gt.Equal(t, types.MemberID("U1"), ids[0])
	gt.Equal(t, types.MemberID("U2"), ids[1])

	gt.A(t, types.MemberIDStrings(ids)).Equal([]string{"U1", "U2"})
}

func TestNewRunID(t *testing.T) {
	a := types.NewRunID()
	b := types.NewRunID()
	gt.NotEqual(t, a, b)
	gt.True(t, a.String() != "")
}
