package models

// ChatRequest is the payload sent to the chat endpoint.
// Message is a pointer so a missing field can be told apart from "".
type ChatRequest struct {
	Message *string `json:"message" validate:"required"`
}

// ChatResponse is the completion relayed back to the caller.
type ChatResponse struct {
	Response string `json:"response"`
}

// StatusResponse is the liveness payload served at the root path.
type StatusResponse struct {
	Status string `json:"status"`
}
