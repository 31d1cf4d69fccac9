package handler

import (
	"net/http"

	"github.com/itchan-dev/forum/shared/api"
	mw "github.com/itchan-dev/forum/shared/middleware"
	"github.com/itchan-dev/forum/shared/utils"
)

func (h *Handler) AddFavorite(w http.ResponseWriter, r *http.Request) {
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

	fav, err := h.favorite.Add(r.Context(), *userId, postId)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusCreated, api.FavoriteResponse{Favorite: fav})
}

func (h *Handler) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
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

	if err := h.favorite.Remove(r.Context(), *userId, postId); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
