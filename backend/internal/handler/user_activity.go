package handler

import (
	"net/http"

	"github.com/itchan-dev/forum/shared/api"
	"github.com/itchan-dev/forum/shared/utils"
)

// GetUserProfile returns the user with their recent posts, recent comments and favorites.
func (h *Handler) GetUserProfile(w http.ResponseWriter, r *http.Request) {
	userId, err := idParam(r, "user")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	profile, err := h.userActivity.GetUserProfile(r.Context(), userId)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, api.UserProfileResponse{UserProfile: *profile})
}
