package handler

import (
	"net/http"

	"github.com/osse101/PotionCraft_Go/internal/domain"
)

// StakeRequest locks KAI into the world pool
type StakeRequest struct {
	Amount int64 `json:"amount" validate:"gt=0"`
}

// ClaimRequest selects the reward bucket to pay out
type ClaimRequest struct {
	Kind string `json:"kind" validate:"required,claimkind"`
}

// HandleStake stakes KAI from the wallet
func (h *SessionHandler) HandleStake() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req StakeRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Stake"); err != nil {
			return
		}
		rewards, err := h.svc.Stake(r.Context(), sessionID(r), req.Amount)
		if err != nil {
			respondServiceError(w, r, "Stake", err)
			return
		}
		respondJSON(w, http.StatusOK, DataResponse{Message: msgf(MsgStakedFormat, req.Amount), Data: rewards})
	}
}

// HandleUnstake returns the whole stake plus the world pool share
func (h *SessionHandler) HandleUnstake() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, err := h.svc.Unstake(r.Context(), sessionID(r))
		if err != nil {
			respondServiceError(w, r, "Unstake", err)
			return
		}
		respondJSON(w, http.StatusOK, DataResponse{Message: msgf(MsgUnstakedFormat, res.Payout), Data: res})
	}
}

// HandleRewards returns the current reward snapshot without accruing
func (h *SessionHandler) HandleRewards() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rewards, err := h.svc.Rewards(r.Context(), sessionID(r))
		if err != nil {
			respondServiceError(w, r, "Rewards", err)
			return
		}
		respondJSON(w, http.StatusOK, rewards)
	}
}

// HandleClaim pays out one reward bucket
func (h *SessionHandler) HandleClaim() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ClaimRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Claim"); err != nil {
			return
		}
		res, err := h.svc.Claim(r.Context(), sessionID(r), domain.ClaimKind(req.Kind))
		if err != nil {
			respondServiceError(w, r, "Claim", err)
			return
		}
		respondJSON(w, http.StatusOK, DataResponse{Message: msgf(MsgClaimedFormat, res.Amount), Data: res})
	}
}
