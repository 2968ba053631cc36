package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/m-mizutani/ctxlog"
	"github.com/secmon-lab/slackinvite/frontend"
	"github.com/secmon-lab/slackinvite/pkg/domain/model"
	"github.com/secmon-lab/slackinvite/pkg/domain/types"
	"github.com/secmon-lab/slackinvite/pkg/usecase"
)

// formHandler serves the interactive invitation form
type formHandler struct {
	uc    UseCases
	pages *frontend.Pages
}

type indexPage struct {
	Query     string
	ChannelID types.ChannelID
	Members   []*model.Member
	Error     string
	Warning   string
}

type resultPage struct {
	Report  *model.InvitationReport
	Error   string
	Warning string
}

func newFormHandler(uc UseCases, pages *frontend.Pages) *formHandler {
	return &formHandler{uc: uc, pages: pages}
}

// handleIndex renders the channel lookup form and, once a channel is found, the member picker
func (h *formHandler) handleIndex(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	page := indexPage{Query: r.URL.Query().Get("channel")}

	if r.URL.Query().Get("refresh") == "true" {
		purgeCache(ctx, h.uc.Directory)
		purgeCache(ctx, h.uc.Channels)
	}

	if page.Query == "" {
		h.render(ctx, w, http.StatusOK, frontend.PageIndex, page)
		return
	}

	selector := model.ParseChannelSelector(page.Query)
	channelID, err := usecase.ResolveSelector(ctx, h.uc.Channels, selector)
	if err != nil {
		status := http.StatusBadGateway
		page.Error = fmt.Sprintf("Failed to fetch channels: %s", err.Error())
		if errors.Is(err, model.ErrChannelNotFound) {
			status = http.StatusNotFound
			page.Error = fmt.Sprintf("Channel %s was not found.", selector)
		}
		h.render(ctx, w, status, frontend.PageIndex, page)
		return
	}

	members, err := h.uc.Directory.ListActiveMembers(ctx)
	if err != nil {
		if len(members) == 0 {
			page.Error = "Failed to fetch the member list."
			h.render(ctx, w, http.StatusBadGateway, frontend.PageIndex, page)
			return
		}
		page.Warning = "The member list may be incomplete: " + err.Error()
	}

	page.ChannelID = channelID
	page.Members = members
	h.render(ctx, w, http.StatusOK, frontend.PageIndex, page)
}

// handleInvite submits the selected members and renders every batch outcome
func (h *formHandler) handleInvite(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := r.ParseForm(); err != nil {
		h.render(ctx, w, http.StatusBadRequest, frontend.PageResult, resultPage{Error: "Malformed form submission."})
		return
	}

	var channelIDs []types.ChannelID
	for _, id := range r.Form["channel_id"] {
		if id != "" {
			channelIDs = append(channelIDs, types.ChannelID(id))
		}
	}
	if len(channelIDs) == 0 {
		h.render(ctx, w, http.StatusBadRequest, frontend.PageResult, resultPage{Error: "No channel was selected."})
		return
	}

	var page resultPage
	memberIDs := types.MemberIDs(r.Form["members"])
	if r.Form.Get("all_members") == "true" {
		members, err := h.uc.Directory.ListActiveMembers(ctx)
		if err != nil {
			if len(members) == 0 {
				page.Error = "Failed to fetch the member list: " + err.Error()
				h.render(ctx, w, http.StatusBadGateway, frontend.PageResult, page)
				return
			}
			ctxlog.From(ctx).Warn("Inviting from an incomplete member list", "error", err, "count", len(members))
			page.Warning = fmt.Sprintf("The member list is incomplete, only %d members were invited: %s", len(members), err.Error())
		}
		memberIDs = model.MemberIDsOf(members)
	}
	if len(memberIDs) == 0 {
		page.Error = "No members were selected."
		h.render(ctx, w, http.StatusBadRequest, frontend.PageResult, page)
		return
	}

	page.Report = h.uc.Inviter.InviteMany(ctx, memberIDs, channelIDs)
	h.render(ctx, w, http.StatusOK, frontend.PageResult, page)
}

func (h *formHandler) render(ctx context.Context, w http.ResponseWriter, status int, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := h.pages.Render(w, name, data); err != nil {
		ctxlog.From(ctx).Error("Failed to render page", "page", name, "error", err)
	}
}

// purger is implemented by the caching use case decorators
type purger interface {
	Purge()
}

func purgeCache(ctx context.Context, uc any) {
	if p, ok := uc.(purger); ok {
		p.Purge()
		ctxlog.From(ctx).Debug("Cache purged", "type", fmt.Sprintf("%T", uc))
	}
}
