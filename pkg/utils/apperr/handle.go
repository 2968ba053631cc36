package apperr

import (
	"context"
	"errors"

	"github.com/m-mizutani/ctxlog"
	"github.com/secmon-lab/slackinvite/pkg/domain/model"
)

// Handle logs err once at the top of a command. Expected user-facing
// conditions are logged at warn level, everything else at error level.
func Handle(ctx context.Context, err error) {
	if err == nil {
		return
	}

	logger := ctxlog.From(ctx)
	switch {
	case errors.Is(err, model.ErrInvitationIncomplete),
		errors.Is(err, model.ErrChannelNotFound):
		logger.Warn("command finished with problems", "error", err)
	case errors.Is(err, model.ErrMissingToken),
		errors.Is(err, model.ErrInvalidSelection):
		logger.Error("invalid configuration", "error", err)
	default:
		logger.Error("application error", "error", err)
	}
}
