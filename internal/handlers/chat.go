package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"trustfluence-chatbot/internal/models"
)

type chatService interface {
	HandleChat(ctx context.Context, message string) (string, error)
}

type ChatHandler struct {
	chatService chatService
}

func NewChatHandler(chatService chatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

// Chat relays the message to the model. An empty message is valid; a
// missing or non-string one is rejected before the model is contacted.
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req models.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	if err := validateStruct(req); err != nil {
		handleServiceError(w, r, err)
		return
	}

	reply, err := h.chatService.HandleChat(r.Context(), *req.Message)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, models.ChatResponse{Response: reply})
}
