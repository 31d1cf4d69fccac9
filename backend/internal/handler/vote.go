package handler

import (
	"net/http"

	"github.com/itchan-dev/forum/shared/api"
	"github.com/itchan-dev/forum/shared/domain"
	mw "github.com/itchan-dev/forum/shared/middleware"
	"github.com/itchan-dev/forum/shared/utils"
)

// CastVote appends the caller's vote. The value is checked by the service so
// that 0 and out of range values produce the same error.
func (h *Handler) CastVote(w http.ResponseWriter, r *http.Request) {
	userId := mw.GetUserIdFromContext(r)
	if userId == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	postId, err := idParam(r, "post")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	var body api.CastVoteRequest
	if err := utils.Decode(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	vote, err := h.vote.Cast(r.Context(), domain.VoteCreationData{UserId: *userId, PostId: postId, Value: body.Value})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusCreated, api.VoteResponse{Vote: vote})
}
