package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/actuallystonmai/storefront-assistant/internal/domain"
	"github.com/actuallystonmai/storefront-assistant/internal/reply"
	"github.com/google/uuid"
)

// POST /chat
func (h *Handler) PostChat(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_parameter", err.Error())
		return
	}

	chat, err := h.service.BuildChatContext(r.Context(), req.User, req.Cart, req.CartTotal)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	resp, err := h.service.ClassifyAndRespond(r.Context(), req.Message, chat)
	if err != nil {
		// The chat widget shows the apology text instead of an error banner.
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			writeJSON(w, http.StatusServiceUnavailable, ChatReply{
				ID:           uuid.NewString(),
				ChatResponse: domain.ChatResponse{Intent: domain.IntentGeneral, Message: reply.Unavailable},
				Timestamp:    time.Now().UTC().Format(time.RFC3339),
			})
			return
		}
		h.writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, ChatReply{
		ID:           uuid.NewString(),
		ChatResponse: resp,
		Timestamp:    time.Now().UTC().Format(time.RFC3339),
	})
}

// POST /chat/welcome
func (h *Handler) PostChatWelcome(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_parameter", err.Error())
		return
	}

	chat, err := h.service.BuildChatContext(r.Context(), req.User, req.Cart, req.CartTotal)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	now := time.Now().UTC().Format(time.RFC3339)
	opening := reply.Opening(chat)
	resp := WelcomeResponse{Messages: make([]ChatReply, len(opening))}
	for i, m := range opening {
		resp.Messages[i] = ChatReply{ID: uuid.NewString(), ChatResponse: m, Timestamp: now}
	}
	writeJSON(w, http.StatusOK, resp)
}
