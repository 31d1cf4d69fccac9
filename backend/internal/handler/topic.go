package handler

import (
	"net/http"

	"github.com/itchan-dev/forum/shared/api"
	"github.com/itchan-dev/forum/shared/domain"
	mw "github.com/itchan-dev/forum/shared/middleware"
	"github.com/itchan-dev/forum/shared/utils"
)

// CreateTopic creates a topic, optionally with initial posts authored by the caller.
func (h *Handler) CreateTopic(w http.ResponseWriter, r *http.Request) {
	userId := mw.GetUserIdFromContext(r)
	if userId == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var body api.CreateTopicRequest
	if err := utils.Decode(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	creation := domain.TopicCreationData{
		Title:       body.Title,
		Description: body.Description,
		Posts:       make([]domain.NestedPostData, 0, len(body.Posts)),
	}
	for _, p := range body.Posts {
		creation.Posts = append(creation.Posts, domain.NestedPostData{Title: p.Title, Body: p.Body, UserId: *userId})
	}

	id, err := h.topic.Create(r.Context(), creation)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusCreated, api.IdResponse{Id: id})
}

func (h *Handler) GetTopic(w http.ResponseWriter, r *http.Request) {
	topicId, err := idParam(r, "topic")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	topic, err := h.topic.Get(r.Context(), topicId)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, api.TopicResponse{Topic: topic})
}
