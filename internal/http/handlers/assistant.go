package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"hirewire/internal/common"
	"hirewire/internal/http/middleware"
	"hirewire/internal/http/response"
)

// ChatClient is the chat-completion API the assistant proxies to.
type ChatClient interface {
	Chat(ctx context.Context, message string) (string, error)
}

type AssistantHandler struct {
	chat    ChatClient
	limiter middleware.Limiter
}

func NewAssistantHandler(chat ChatClient, limiter middleware.Limiter) *AssistantHandler {
	return &AssistantHandler{chat: chat, limiter: limiter}
}

type chatRequest struct {
	Message string `json:"message"`
}

func (h *AssistantHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		response.Error(w, common.NewError(common.CodeValidation, "message is required", nil))
		return
	}
	if h.limiter != nil {
		key := "chat:" + middleware.ClientIP(r)
		if !h.limiter.Allow(key, 10, time.Minute) {
			response.Error(w, common.NewError(common.CodeRateLimited, "chat rate limit exceeded", nil))
			return
		}
	}
	reply, err := h.chat.Chat(r.Context(), req.Message)
	if err != nil {
		response.Error(w, common.NewError(common.CodeInternal, "AI request failed", err))
		return
	}
	response.JSON(w, http.StatusOK, map[string]string{"reply": reply})
}
