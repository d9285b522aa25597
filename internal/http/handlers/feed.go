package handlers

import (
	"net/http"
	"time"

	"hirewire/internal/app"
	"hirewire/internal/common"
	"hirewire/internal/http/middleware"
	"hirewire/internal/http/response"
)

type FeedHandler struct {
	feed    *app.FeedService
	limiter middleware.Limiter
}

func NewFeedHandler(feed *app.FeedService, limiter middleware.Limiter) *FeedHandler {
	return &FeedHandler{feed: feed, limiter: limiter}
}

type postRequest struct {
	Headline string `json:"headline"`
	Text     string `json:"text"`
	FileURL  string `json:"file_url"`
	FileType string `json:"file_type"`
}

func (h *FeedHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	var req postRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	if h.limiter != nil {
		key := "post:" + userID.String()
		if !h.limiter.Allow(key, 5, time.Minute) {
			response.Error(w, common.NewError(common.CodeRateLimited, "too many posts", nil))
			return
		}
	}
	created, err := h.feed.CreatePost(r.Context(), userID, req.Headline, req.Text, req.FileURL, req.FileType)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, created)
}

func (h *FeedHandler) ListPosts(w http.ResponseWriter, r *http.Request) {
	items, err := h.feed.ListPosts(r.Context())
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, items)
}

type commentRequest struct {
	Text string `json:"text"`
}

func (h *FeedHandler) AddComment(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	postID, err := idFromPath(r, 2)
	if err != nil {
		response.Error(w, err)
		return
	}
	var req commentRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	created, err := h.feed.AddComment(r.Context(), userID, postID, req.Text)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, created)
}

func (h *FeedHandler) ToggleLike(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	postID, err := idFromPath(r, 2)
	if err != nil {
		response.Error(w, err)
		return
	}
	updated, err := h.feed.ToggleLike(r.Context(), userID, postID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, updated)
}
