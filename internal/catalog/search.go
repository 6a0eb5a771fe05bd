package catalog

import (
	"fmt"
	"hash/fnv"
	"math"
	"strconv"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/osse101/PotionCraft_Go/internal/domain"
)

// SearchResult is one page of a simulated search
type SearchResult struct {
	Items        []domain.Item `json:"items"`
	Query        string        `json:"query"`
	TotalResults int           `json:"totalResults"`
	CurrentPage  int           `json:"currentPage"`
	PageSize     int           `json:"pageSize"`
	TotalPages   int           `json:"totalPages"`
}

// Search simulates a full-text search. The result count (20 to 119) and the
// items are derived from the normalised query, so repeating a search returns
// the same results. Every item is guaranteed to carry a tag matching the query.
func (g *Generator) Search(query string, page, pageSize int) SearchResult {
	pageSize = normalizePageSize(pageSize)
	normalized := strings.ToLower(strings.TrimSpace(query))

	h := fnv.New64a()
	_, _ = h.Write([]byte(normalized))
	queryHash := strconv.FormatUint(h.Sum64(), 16)

	r := g.source("query:" + normalized)
	total := MinSearchResults + r.IntN(SearchResultsSpan)
	totalPages := int(math.Ceil(float64(total) / float64(pageSize)))

	out := SearchResult{
		Items:        []domain.Item{},
		Query:        query,
		TotalResults: total,
		CurrentPage:  page,
		PageSize:     pageSize,
		TotalPages:   totalPages,
	}
	if page < 1 || page > totalPages {
		return out
	}

	start := (page - 1) * pageSize
	end := min(start+pageSize, total)
	out.Items = make([]domain.Item, 0, end-start)
	for i := start; i < end; i++ {
		item := g.GenerateItem(fmt.Sprintf(SearchItemIDFormat, queryHash, i))
		if normalized != "" && !hasMatchingTag(item.Tags, normalized) {
			item.Tags[0] = normalized
		}
		out.Items = append(out.Items, item)
	}
	return out
}

func hasMatchingTag(tags []string, query string) bool {
	for _, t := range tags {
		if strings.Contains(strings.ToLower(t), query) {
			return true
		}
	}
	return false
}

// SuggestTags returns up to limit tags from the vocabulary that fuzzily match
// the query, best match first
func SuggestTags(query string, limit int) []string {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" || limit <= 0 {
		return []string{}
	}

	matches := fuzzy.Find(query, ArtTags)
	if len(matches) > limit {
		matches = matches[:limit]
	}

	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = m.Str
	}
	return out
}
