package handler

import (
	"net/http"
	"strings"

	"github.com/osse101/PotionCraft_Go/internal/session"
)

// CraftRequest describes a potion to craft. Length rules beyond the hard
// caps here are enforced by the session service.
type CraftRequest struct {
	Name        string `json:"name" validate:"required,max=100,excludesall=\x00\n\r\t"`
	Description string `json:"description" validate:"max=1000,excludesall=\x00"`
	Style       string `json:"style" validate:"arttag"`
}

// ObtainRequest buys a copy of a world pool item
type ObtainRequest struct {
	ItemID string `json:"itemId" validate:"required,max=64"`
}

// PromptRequest runs a prompt through a potion
type PromptRequest struct {
	ItemID string `json:"itemId" validate:"required,max=64"`
	Prompt string `json:"prompt" validate:"required,max=500,excludesall=\x00"`
}

// SellRequest sells an owned potion
type SellRequest struct {
	ItemID string `json:"itemId" validate:"required,max=64"`
}

// CraftCostResponse quotes the price of a craft
type CraftCostResponse struct {
	Cost int64 `json:"cost"`
}

// HandleCraft crafts a new potion
func (h *SessionHandler) HandleCraft() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CraftRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Craft"); err != nil {
			return
		}
		style := strings.ToLower(strings.TrimSpace(req.Style))
		cost := h.svc.CraftCost(req.Name, req.Description, style)
		item, err := h.svc.Craft(r.Context(), sessionID(r), session.CraftRequest{
			Name:        req.Name,
			Description: req.Description,
			Style:       style,
		})
		if err != nil {
			respondServiceError(w, r, "Craft", err)
			return
		}
		respondJSON(w, http.StatusCreated, DataResponse{Message: msgf(MsgCraftedFormat, item.Name, cost), Data: item})
	}
}

// HandleCraftCost quotes a craft without performing it
func (h *SessionHandler) HandleCraftCost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		respondJSON(w, http.StatusOK, CraftCostResponse{
			Cost: h.svc.CraftCost(q.Get("name"), q.Get("description"), strings.ToLower(q.Get("style"))),
		})
	}
}

// HandleObtain buys a copy of a world pool item
func (h *SessionHandler) HandleObtain() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ObtainRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Obtain"); err != nil {
			return
		}
		item, err := h.svc.Obtain(r.Context(), sessionID(r), req.ItemID)
		if err != nil {
			respondServiceError(w, r, "Obtain", err)
			return
		}
		cost := h.svc.ObtainCost(item)
		respondJSON(w, http.StatusCreated, DataResponse{Message: msgf(MsgObtainedFormat, item.Name, cost), Data: item})
	}
}

// HandleTry previews a prompt with any potion
func (h *SessionHandler) HandleTry() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req PromptRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Try"); err != nil {
			return
		}
		gen, err := h.svc.Try(r.Context(), sessionID(r), req.ItemID, req.Prompt)
		if err != nil {
			respondServiceError(w, r, "Try", err)
			return
		}
		respondJSON(w, http.StatusOK, DataResponse{Message: generationMessage(gen), Data: gen})
	}
}

// HandleUse runs a prompt through an owned potion
func (h *SessionHandler) HandleUse() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req PromptRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Use"); err != nil {
			return
		}
		gen, err := h.svc.Use(r.Context(), sessionID(r), req.ItemID, req.Prompt)
		if err != nil {
			respondServiceError(w, r, "Use", err)
			return
		}
		respondJSON(w, http.StatusOK, DataResponse{Message: generationMessage(gen), Data: gen})
	}
}

func generationMessage(gen session.Generation) string {
	if gen.Cost > 0 {
		return msgf(MsgTriedFormat, gen.Cost)
	}
	msg := msgf(MsgUsedFormat, gen.Quality)
	if gen.Boosted {
		msg += MsgBoostedSuffix
	}
	return msg
}

// HandleSell sells an owned potion
func (h *SessionHandler) HandleSell() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SellRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Sell"); err != nil {
			return
		}
		sale, err := h.svc.Sell(r.Context(), sessionID(r), req.ItemID)
		if err != nil {
			respondServiceError(w, r, "Sell", err)
			return
		}
		respondJSON(w, http.StatusOK, DataResponse{Message: msgf(MsgSoldFormat, sale.Item.Name, sale.Payout), Data: sale})
	}
}

// HandleInventory lists the potions a session owns
func (h *SessionHandler) HandleInventory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := h.svc.Inventory(r.Context(), sessionID(r))
		if err != nil {
			respondServiceError(w, r, "Inventory", err)
			return
		}
		respondJSON(w, http.StatusOK, items)
	}
}

// HandleStats returns inventory aggregates
func (h *SessionHandler) HandleStats() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := h.svc.Stats(r.Context(), sessionID(r))
		if err != nil {
			respondServiceError(w, r, "Inventory stats", err)
			return
		}
		respondJSON(w, http.StatusOK, stats)
	}
}
