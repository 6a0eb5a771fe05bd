package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/osse101/PotionCraft_Go/internal/domain"
	"github.com/osse101/PotionCraft_Go/internal/logger"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	buf := getBuffer()
	defer putBuffer(buf)

	// Encode before writing headers so an encoding failure can still become a 500
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error(LogMsgEncodeFailed, "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"` + ErrMsgGenericServerError + `"}` + "\n"))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error(LogMsgWriteFailed, "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs a failed service call and writes the mapped
// status and user message
func respondServiceError(w http.ResponseWriter, r *http.Request, action string, err error) {
	status, msg := mapServiceErrorToUserMessage(err)
	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(LogMsgServiceError, "action", action, "error", err)
	} else {
		log.Warn(LogMsgServiceError, "action", action, "error", err)
	}
	respondError(w, status, msg)
}

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"

	ErrMsgNotConnectedError        = "Connect your wallet first"
	ErrMsgInsufficientBalanceError = "Not enough KAI"
	ErrMsgInvalidAmountError       = "Amount must be positive"
	ErrMsgInvalidInputError        = "Invalid input. Please check your request."
	ErrMsgNothingToClaimError      = "Nothing to claim yet"
	ErrMsgNothingStakedError       = "You have nothing staked"
	ErrMsgInvalidClaimKindError    = "Unknown reward type"
	ErrMsgInvalidBundleError       = "That file is not a valid session export"

	ErrMsgItemNotFoundError    = "Potion not found"
	ErrMsgSessionNotFoundError = "Session not found"

	ErrMsgDuplicateItemError = "You already own that potion"
)

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP responses
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrNotConnected):
		return http.StatusBadRequest, ErrMsgNotConnectedError
	case errors.Is(err, domain.ErrInsufficientBalance):
		return http.StatusBadRequest, ErrMsgInsufficientBalanceError
	case errors.Is(err, domain.ErrInvalidAmount):
		return http.StatusBadRequest, ErrMsgInvalidAmountError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, inputMessage(err)
	case errors.Is(err, domain.ErrNothingToClaim):
		return http.StatusBadRequest, ErrMsgNothingToClaimError
	case errors.Is(err, domain.ErrNothingStaked):
		return http.StatusBadRequest, ErrMsgNothingStakedError
	case errors.Is(err, domain.ErrInvalidClaimKind):
		return http.StatusBadRequest, ErrMsgInvalidClaimKindError
	case errors.Is(err, domain.ErrInvalidBundle):
		return http.StatusBadRequest, ErrMsgInvalidBundleError
	case errors.Is(err, domain.ErrItemNotFound):
		return http.StatusNotFound, ErrMsgItemNotFoundError
	case errors.Is(err, domain.ErrSessionNotFound):
		return http.StatusNotFound, ErrMsgSessionNotFoundError
	case errors.Is(err, domain.ErrDuplicateItem):
		return http.StatusConflict, ErrMsgDuplicateItemError
	}

	// Storage and other unexpected failures never leak their text
	return http.StatusInternalServerError, ErrMsgGenericServerError
}

// inputMessage keeps the detail of an invalid input error, which is written
// for users ("invalid input: name must be at least 3 characters")
func inputMessage(err error) string {
	msg := err.Error()
	if msg == "" || len(msg) > 200 {
		return ErrMsgInvalidInputError
	}
	return msg
}
