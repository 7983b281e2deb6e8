package handlers

import (
	"net/http"

	"trustfluence-chatbot/internal/models"
)

const RunningStatus = "Chatbot API running 🚀"

func Home(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, models.StatusResponse{Status: RunningStatus})
}

func Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, models.StatusResponse{Status: "ok"})
}
