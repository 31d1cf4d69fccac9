package handler

import (
	"net/http"

	"github.com/itchan-dev/forum/shared/api"
	"github.com/itchan-dev/forum/shared/domain"
	mw "github.com/itchan-dev/forum/shared/middleware"
	"github.com/itchan-dev/forum/shared/utils"
)

func (h *Handler) CreateComment(w http.ResponseWriter, r *http.Request) {
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

	var body api.CreateCommentRequest
	if err := utils.Decode(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	id, err := h.comment.Create(r.Context(), domain.CommentCreationData{Body: body.Body, PostId: postId, UserId: *userId})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusCreated, api.IdResponse{Id: id})
}

func (h *Handler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	userId := mw.GetUserIdFromContext(r)
	if userId == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	commentId, err := idParam(r, "comment")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	if err := h.comment.Delete(r.Context(), commentId, *userId); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
