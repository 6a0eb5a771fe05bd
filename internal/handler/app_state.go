package handler

import (
	"fmt"
	"io"
	"net/http"

	"github.com/osse101/PotionCraft_Go/internal/domain"
	"github.com/osse101/PotionCraft_Go/internal/logger"
)

// AppStateRequest replaces the stored presentation state
type AppStateRequest struct {
	CurrentTab  string             `json:"currentTab" validate:"required,max=50"`
	Preferences domain.Preferences `json:"preferences"`
}

// HandleGetAppState returns the stored presentation state
func (h *SessionHandler) HandleGetAppState() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state, err := h.svc.AppState(r.Context(), sessionID(r))
		if err != nil {
			respondServiceError(w, r, "Get app state", err)
			return
		}
		respondJSON(w, http.StatusOK, state)
	}
}

// HandlePutAppState stores presentation state
func (h *SessionHandler) HandlePutAppState() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AppStateRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Save app state"); err != nil {
			return
		}
		state, err := h.svc.SaveAppState(r.Context(), sessionID(r), domain.AppState{
			CurrentTab:  req.CurrentTab,
			Preferences: req.Preferences,
		})
		if err != nil {
			respondServiceError(w, r, "Save app state", err)
			return
		}
		respondJSON(w, http.StatusOK, DataResponse{Message: MsgAppStateSaved, Data: state})
	}
}

// HandleExport streams the session as a compressed bundle
func (h *SessionHandler) HandleExport() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := sessionID(r)
		data, err := h.svc.Export(r.Context(), id)
		if err != nil {
			respondServiceError(w, r, "Export", err)
			return
		}
		w.Header().Set("Content-Type", ContentTypeBundle)
		w.Header().Set("Content-Disposition", fmt.Sprintf(ExportFilenameFormat, id))
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(data); err != nil {
			logger.FromContext(r.Context()).Error(LogMsgExportWriteFail, "error", err)
		}
	}
}

// HandleImport replaces the session with the uploaded bundle
func (h *SessionHandler) HandleImport() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data, err := io.ReadAll(io.LimitReader(r.Body, MaxBundleBytes+1))
		if err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgReadBodyFailed)
			return
		}
		if len(data) > MaxBundleBytes {
			respondError(w, http.StatusRequestEntityTooLarge, ErrMsgBundleTooLarge)
			return
		}
		view, err := h.svc.Import(r.Context(), sessionID(r), data)
		if err != nil {
			respondServiceError(w, r, "Import", err)
			return
		}
		respondJSON(w, http.StatusOK, DataResponse{Message: MsgSessionImported, Data: view})
	}
}
