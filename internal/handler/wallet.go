package handler

import (
	"context"
	"net/http"

	"github.com/osse101/PotionCraft_Go/internal/domain"
)

// AmountRequest moves KAI in or out of the wallet
type AmountRequest struct {
	Amount int64  `json:"amount" validate:"gt=0"`
	Reason string `json:"reason" validate:"max=200,excludesall=\x00\n\r\t"`
}

// HandleConnect connects the session wallet
func (h *SessionHandler) HandleConnect() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view, err := h.svc.Connect(r.Context(), sessionID(r))
		if err != nil {
			respondServiceError(w, r, "Connect wallet", err)
			return
		}
		respondJSON(w, http.StatusOK, DataResponse{Message: MsgWalletConnected, Data: view})
	}
}

// HandleDisconnect disconnects the session wallet
func (h *SessionHandler) HandleDisconnect() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view, err := h.svc.Disconnect(r.Context(), sessionID(r))
		if err != nil {
			respondServiceError(w, r, "Disconnect wallet", err)
			return
		}
		respondJSON(w, http.StatusOK, DataResponse{Message: MsgWalletDisconnected, Data: view})
	}
}

// HandleSpend debits the wallet
func (h *SessionHandler) HandleSpend() http.HandlerFunc {
	return h.handleBalance("Spend", MsgSpentFormat, h.svc.Spend)
}

// HandleEarn credits the wallet
func (h *SessionHandler) HandleEarn() http.HandlerFunc {
	return h.handleBalance("Earn", MsgEarnedFormat, h.svc.Earn)
}

type balanceOp func(ctx context.Context, sessionID string, amount int64, reason string) (domain.WalletState, error)

func (h *SessionHandler) handleBalance(action, msgFormat string, op balanceOp) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AmountRequest
		if err := DecodeAndValidateRequest(r, w, &req, action); err != nil {
			return
		}
		state, err := op(r.Context(), sessionID(r), req.Amount, req.Reason)
		if err != nil {
			respondServiceError(w, r, action, err)
			return
		}
		respondJSON(w, http.StatusOK, DataResponse{Message: msgf(msgFormat, req.Amount), Data: state})
	}
}
