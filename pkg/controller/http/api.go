package http

import (
	"errors"
	"net/http"

	"github.com/go-chi/render"
	"github.com/m-mizutani/ctxlog"
	"github.com/secmon-lab/slackinvite/pkg/domain/model"
	"github.com/secmon-lab/slackinvite/pkg/domain/types"
	"github.com/secmon-lab/slackinvite/pkg/usecase"
)

// apiHandler exposes the same operations as JSON
type apiHandler struct {
	uc UseCases
}

func newAPIHandler(uc UseCases) *apiHandler {
	return &apiHandler{uc: uc}
}

type memberResponse struct {
	ID   types.MemberID `json:"id"`
	Name string         `json:"name"`
}

type membersResponse struct {
	Members  []memberResponse `json:"members"`
	Complete bool             `json:"complete"`
	Error    string           `json:"error,omitempty"`
}

type channelResponse struct {
	ID         types.ChannelID `json:"id"`
	Name       string          `json:"name"`
	IsPrivate  bool            `json:"is_private"`
	IsArchived bool            `json:"is_archived"`
}

type channelsResponse struct {
	Channels []channelResponse `json:"channels"`
	Complete bool              `json:"complete"`
	Error    string            `json:"error,omitempty"`
}

type resolveResponse struct {
	ID types.ChannelID `json:"id"`
}

type inviteRequest struct {
	Channels   []string `json:"channels"`
	Members    []string `json:"members"`
	AllMembers bool     `json:"all_members"`
}

type outcomeResponse struct {
	Channel types.ChannelID    `json:"channel"`
	Members []types.MemberID   `json:"members"`
	Status  types.InviteStatus `json:"status"`
	Detail  string             `json:"detail,omitempty"`
}

type unresolvedResponse struct {
	Channel string `json:"channel"`
	Error   string `json:"error"`
}

type reportResponse struct {
	RunID           types.RunID          `json:"run_id"`
	Outcomes        []outcomeResponse    `json:"outcomes"`
	Unresolved      []unresolvedResponse `json:"unresolved,omitempty"`
	Summary         model.Summary        `json:"summary"`
	MembersComplete bool                 `json:"members_complete"`
	Error           string               `json:"error,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func respondError(w http.ResponseWriter, r *http.Request, status int, message string) {
	render.Status(r, status)
	render.JSON(w, r, errorResponse{Error: message})
}

// handleListMembers handles GET /api/members
func (h *apiHandler) handleListMembers(w http.ResponseWriter, r *http.Request) {
	members, err := h.uc.Directory.ListActiveMembers(r.Context())

	resp := membersResponse{
		Members:  make([]memberResponse, 0, len(members)),
		Complete: err == nil,
	}
	for _, m := range members {
		resp.Members = append(resp.Members, memberResponse{ID: m.ID, Name: m.DisplayName()})
	}
	if err != nil {
		resp.Error = err.Error()
		if len(members) == 0 {
			render.Status(r, http.StatusBadGateway)
		}
	}
	render.JSON(w, r, resp)
}

// handleListChannels handles GET /api/channels
func (h *apiHandler) handleListChannels(w http.ResponseWriter, r *http.Request) {
	channels, err := h.uc.Channels.ListAllChannels(r.Context())

	resp := channelsResponse{
		Channels: make([]channelResponse, 0, len(channels)),
		Complete: err == nil,
	}
	for _, ch := range channels {
		resp.Channels = append(resp.Channels, channelResponse{
			ID:         ch.ID,
			Name:       ch.Name,
			IsPrivate:  ch.IsPrivate,
			IsArchived: ch.IsArchived,
		})
	}
	if err != nil {
		resp.Error = err.Error()
		if len(channels) == 0 {
			render.Status(r, http.StatusBadGateway)
		}
	}
	render.JSON(w, r, resp)
}

// handleResolveChannel handles GET /api/channels/resolve?name=...
func (h *apiHandler) handleResolveChannel(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		respondError(w, r, http.StatusBadRequest, "name query parameter is required")
		return
	}

	id, err := usecase.ResolveSelector(r.Context(), h.uc.Channels, model.ParseChannelSelector(name))
	switch {
	case errors.Is(err, model.ErrChannelNotFound):
		respondError(w, r, http.StatusNotFound, "channel not found")
	case err != nil:
		respondError(w, r, http.StatusBadGateway, err.Error())
	default:
		render.JSON(w, r, resolveResponse{ID: id})
	}
}

// handleInvite handles POST /api/invitations
func (h *apiHandler) handleInvite(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req inviteRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		respondError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	plan := model.Plan{Channels: req.Channels, Members: req.Members, AllMembers: req.AllMembers}
	if err := plan.Validate(); err != nil {
		respondError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	resp := reportResponse{MembersComplete: true}
	memberIDs := types.MemberIDs(plan.Members)
	if plan.AllMembers {
		members, err := h.uc.Directory.ListActiveMembers(ctx)
		if err != nil {
			if len(members) == 0 {
				respondError(w, r, http.StatusBadGateway, "failed to list workspace members: "+err.Error())
				return
			}
			ctxlog.From(ctx).Warn("Inviting from an incomplete member list", "error", err, "count", len(members))
			resp.MembersComplete = false
			resp.Error = err.Error()
		}
		memberIDs = model.MemberIDsOf(members)
	}

	var channelIDs []types.ChannelID
	for _, selector := range plan.Selectors() {
		id, err := usecase.ResolveSelector(ctx, h.uc.Channels, selector)
		if err != nil {
			resp.Unresolved = append(resp.Unresolved, unresolvedResponse{Channel: selector.String(), Error: err.Error()})
			continue
		}
		channelIDs = append(channelIDs, id)
	}

	report := h.uc.Inviter.InviteMany(ctx, memberIDs, channelIDs)
	resp.RunID = report.RunID
	resp.Summary = report.Summary()
	resp.Outcomes = make([]outcomeResponse, 0, len(report.Outcomes))
	for _, o := range report.Outcomes {
		resp.Outcomes = append(resp.Outcomes, outcomeResponse{
			Channel: o.Channel,
			Members: o.Batch.Members,
			Status:  o.Status,
			Detail:  o.Detail,
		})
	}
	render.JSON(w, r, resp)
}
