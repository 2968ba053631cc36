package types

// InviteStatus represents the classified result of one invitation batch
type InviteStatus string

const (
	InviteStatusAccepted         InviteStatus = "accepted"
	InviteStatusAlreadyMember    InviteStatus = "already-member"
	InviteStatusChannelNotJoined InviteStatus = "channel-not-joined"
	InviteStatusOtherError       InviteStatus = "other-error"
)

// String returns the string representation of the status
func (s InviteStatus) String() string {
	return string(s)
}

// IsSatisfied reports whether the channel ends up with the desired membership
func (s InviteStatus) IsSatisfied() bool {
	return s == InviteStatusAccepted || s == InviteStatusAlreadyMember
}
