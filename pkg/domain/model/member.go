package model

import "github.com/secmon-lab/slackinvite/pkg/domain/types"

// UnknownMemberName is shown when a member has neither a real name nor a user name
const UnknownMemberName = "unknown user"

// Member is a workspace account as reported by users.list
type Member struct {
	ID        types.MemberID
	Name      string
	IsBot     bool
	IsDeleted bool
}

// IsActive reports whether the member is a human account that has not been deactivated
func (m *Member) IsActive() bool {
	return !m.IsBot && !m.IsDeleted
}

// DisplayName returns Name or a placeholder when it is empty
func (m *Member) DisplayName() string {
	if m.Name == "" {
		return UnknownMemberName
	}
	return m.Name
}

// MemberPage is one page of users.list
type MemberPage struct {
	Members    []*Member
	NextCursor string
}

// ActiveMembers keeps active members in their original order
func ActiveMembers(members []*Member) []*Member {
	active := make([]*Member, 0, len(members))
	for _, m := range members {
		if m == nil || !m.IsActive() {
			continue
		}
		active = append(active, m)
	}
	return active
}

// MemberIDsOf extracts member IDs in order
func MemberIDsOf(members []*Member) []types.MemberID {
	ids := make([]types.MemberID, len(members))
	for i, m := range members {
		ids[i] = m.ID
	}
	return ids
}
