package handler

import (
	"net/http"

	"github.com/osse101/PotionCraft_Go/internal/session"
)

// SessionHandler serves every operation scoped to one session
type SessionHandler struct {
	svc session.Service
}

// NewSessionHandler creates a new SessionHandler
func NewSessionHandler(svc session.Service) *SessionHandler {
	return &SessionHandler{svc: svc}
}

// HandleCreate opens a new disconnected session
func (h *SessionHandler) HandleCreate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view, err := h.svc.Open(r.Context())
		if err != nil {
			respondServiceError(w, r, "Create session", err)
			return
		}
		respondJSON(w, http.StatusCreated, DataResponse{Message: MsgSessionCreated, Data: view})
	}
}

// HandleGet returns the full session view
func (h *SessionHandler) HandleGet() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view, err := h.svc.Get(r.Context(), sessionID(r))
		if err != nil {
			respondServiceError(w, r, "Get session", err)
			return
		}
		respondJSON(w, http.StatusOK, view)
	}
}

// HandleDelete resets a session, releasing its stake and deleting its state
func (h *SessionHandler) HandleDelete() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h.svc.Reset(r.Context(), sessionID(r)); err != nil {
			respondServiceError(w, r, "Reset session", err)
			return
		}
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgSessionReset})
	}
}
