package model

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for domain operations
var (
	ErrChannelNotFound      = goerr.New("channel not found")
	ErrMissingToken         = goerr.New("slack token is required")
	ErrInvalidSelection     = goerr.New("invalid member or channel selection")
	ErrInvitationIncomplete = goerr.New("some invitation batches did not succeed")
)
