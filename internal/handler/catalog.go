package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/PotionCraft_Go/internal/catalog"
	"github.com/osse101/PotionCraft_Go/internal/domain"
	"github.com/osse101/PotionCraft_Go/internal/economy"
	"github.com/osse101/PotionCraft_Go/internal/metrics"
)

// Catalog is the world pool surface exposed over HTTP
type Catalog interface {
	Page(page, pageSize int) catalog.Page
	Sample() domain.Item
	Search(query string, page, pageSize int) catalog.SearchResult
	Lookup(id string) (domain.Item, error)
}

var _ Catalog = (*catalog.Generator)(nil)

const defaultTagLimit = 5

// CatalogHandler serves the read-only world pool
type CatalogHandler struct {
	catalog Catalog
	economy economy.Service
}

// NewCatalogHandler creates a new CatalogHandler
func NewCatalogHandler(cat Catalog, econ economy.Service) *CatalogHandler {
	return &CatalogHandler{catalog: cat, economy: econ}
}

// pageParams reads page and page_size; ok=false means a 400 has been written
func pageParams(w http.ResponseWriter, r *http.Request) (page, pageSize int, ok bool) {
	if page, ok = GetIntQueryParam(r, w, "page", 1); !ok {
		return 0, 0, false
	}
	if pageSize, ok = GetIntQueryParam(r, w, "page_size", catalog.DefaultPageSize); !ok {
		return 0, 0, false
	}
	return page, pageSize, true
}

// HandleList returns one page of the world pool
func (h *CatalogHandler) HandleList() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, pageSize, ok := pageParams(w, r)
		if !ok {
			return
		}
		respondJSON(w, http.StatusOK, h.catalog.Page(page, pageSize))
	}
}

// HandleSample returns a single random item
func (h *CatalogHandler) HandleSample() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, h.catalog.Sample())
	}
}

// HandleSearch runs a simulated search over the world pool
func (h *CatalogHandler) HandleSearch() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query, ok := GetQueryParam(r, w, "q")
		if !ok {
			return
		}
		page, pageSize, ok := pageParams(w, r)
		if !ok {
			return
		}
		metrics.SearchesPerformed.Inc()
		respondJSON(w, http.StatusOK, h.catalog.Search(query, page, pageSize))
	}
}

// HandleTags suggests vocabulary tags for a partial query
func (h *CatalogHandler) HandleTags() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, ok := GetIntQueryParam(r, w, "limit", defaultTagLimit)
		if !ok {
			return
		}
		respondJSON(w, http.StatusOK, catalog.SuggestTags(r.URL.Query().Get("q"), limit))
	}
}

// HandleItem looks up one world pool item by id
func (h *CatalogHandler) HandleItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		item, err := h.catalog.Lookup(chi.URLParam(r, URLParamItemID))
		if err != nil {
			respondServiceError(w, r, "Lookup item", err)
			return
		}
		respondJSON(w, http.StatusOK, item)
	}
}

// HandlePoolStats returns the global world pool totals
func (h *CatalogHandler) HandlePoolStats() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := h.economy.PoolStats(r.Context())
		if err != nil {
			respondServiceError(w, r, "Pool stats", err)
			return
		}
		respondJSON(w, http.StatusOK, stats)
	}
}
