// Package catalog generates the synthetic world pool of collectible potions.
//
// Every item is a pure function of the generator seed and the item id, so a
// page, a search result or a single lookup always yields the same item for
// the same id. This is what makes page caching and server-side lookups safe.
package catalog

import (
	"fmt"
	"hash/fnv"
	"math"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/PotionCraft_Go/internal/domain"
	"github.com/osse101/PotionCraft_Go/internal/utils"
)

// Config configures a Generator
type Config struct {
	Size      int
	Seed      uint64
	Epoch     time.Time // createdAt values fall in the year before this instant
	CacheSize int
	CacheTTL  time.Duration
}

// Page is one page of the world pool
type Page struct {
	Items       []domain.Item `json:"items"`
	CurrentPage int           `json:"currentPage"`
	PageSize    int           `json:"pageSize"`
	TotalPages  int           `json:"totalPages"`
	TotalItems  int           `json:"totalItems"`
	HasNext     bool          `json:"hasNext"`
	HasPrev     bool          `json:"hasPrev"`
}

type pageKey struct {
	page     int
	pageSize int
}

// Generator produces catalog items, pages and searches
type Generator struct {
	size  int
	seed  uint64
	epoch time.Time
	pages *expirable.LRU[pageKey, Page]
	rnd   func() float64
}

// NewGenerator creates a Generator, filling unset config fields with defaults
func NewGenerator(cfg Config) *Generator {
	if cfg.Size <= 0 {
		cfg.Size = DefaultSize
	}
	if cfg.Epoch.IsZero() {
		cfg.Epoch = time.Now().UTC().Truncate(24 * time.Hour)
	}
	if cfg.CacheSize <= 0 {
		cfg.CacheSize = DefaultCacheSize
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = DefaultCacheTTL
	}
	return &Generator{
		size:  cfg.Size,
		seed:  cfg.Seed,
		epoch: cfg.Epoch,
		pages: expirable.NewLRU[pageKey, Page](cfg.CacheSize, nil, cfg.CacheTTL),
		rnd:   utils.RandomFloat,
	}
}

// Size returns the number of items in the world pool
func (g *Generator) Size() int {
	return g.size
}

func (g *Generator) source(key string) *rand.Rand {
	h := fnv.New64a()
	_, _ = h.Write([]byte(key))
	return rand.New(rand.NewPCG(g.seed, h.Sum64())) //nolint:gosec // Game logic randomness, not security critical
}

// GenerateItem returns the item for id. The same id always yields the same item.
func (g *Generator) GenerateItem(id string) domain.Item {
	r := g.source(id)

	name := ItemNames[r.IntN(len(ItemNames))]
	style := VisualStyles[r.IntN(len(VisualStyles))]

	numTags := MinTags + r.IntN(MaxTags-MinTags+1)
	available := append([]string(nil), ArtTags...)
	tags := make([]string, 0, numTags)
	for i := 0; i < numTags; i++ {
		idx := r.IntN(len(available))
		tags = append(tags, available[idx])
		available = append(available[:idx], available[idx+1:]...)
	}

	numImages := MinImages + r.IntN(MaxImages-MinImages+1)
	images := make([]domain.ItemImage, numImages)
	for i := range images {
		images[i] = domain.ItemImage{
			ID:    fmt.Sprintf(ImageIDFormat, id, i),
			Glyph: VisualStyles[r.IntN(len(VisualStyles))],
			Alt:   fmt.Sprintf(ImageAltFormat, name, i+1),
		}
	}

	return domain.Item{
		ID:            id,
		Name:          name,
		VisualStyle:   style,
		Tags:          tags,
		Images:        images,
		Rarity:        drawRarity(r.Float64),
		DailyEarnings: utils.ScaledInt(r.Float64(), MinDailyEarnings, DailyEarningsSpan),
		TotalEarnings: utils.ScaledInt(r.Float64(), MinTotalEarnings, TotalEarningsSpan),
		UsageCount:    utils.ScaledInt(r.Float64(), MinUsageCount, UsageCountSpan),
		CreatedAt:     g.epoch.Add(-time.Duration(r.Float64() * float64(CreatedAtMaxAge))),
		Creator:       fmt.Sprintf(CreatorNameFormat, r.IntN(CreatorNumberSpan)),
	}
}

// drawRarity uses one draw for legendary and a second, independent one for rare.
// The resulting distribution is 10% / 27% / 63%.
func drawRarity(draw func() float64) domain.Rarity {
	if draw() < LegendaryThreshold {
		return domain.RarityLegendary
	}
	if draw() < RareThreshold {
		return domain.RarityRare
	}
	return domain.RarityCommon
}

// GenerateCatalog materialises the first n items of the world pool (ids "1".."n")
func (g *Generator) GenerateCatalog(n int) []domain.Item {
	if n < 0 {
		n = 0
	}
	items := make([]domain.Item, n)
	for i := range items {
		items[i] = g.GenerateItem(strconv.Itoa(i + 1))
	}
	return items
}

// Page returns page (1-based) of the world pool. Out-of-range pages have no
// items but still carry valid paging metadata.
func (g *Generator) Page(page, pageSize int) Page {
	pageSize = normalizePageSize(pageSize)
	key := pageKey{page: page, pageSize: pageSize}
	if cached, ok := g.pages.Get(key); ok {
		return clonePage(cached)
	}

	totalPages := int(math.Ceil(float64(g.size) / float64(pageSize)))
	out := Page{
		Items:       []domain.Item{},
		CurrentPage: page,
		PageSize:    pageSize,
		TotalPages:  totalPages,
		TotalItems:  g.size,
		HasNext:     page < totalPages,
		HasPrev:     page > 1,
	}

	if page >= 1 && page <= totalPages {
		start := (page - 1) * pageSize
		end := min(start+pageSize, g.size)
		out.Items = make([]domain.Item, 0, end-start)
		for i := start; i < end; i++ {
			out.Items = append(out.Items, g.GenerateItem(strconv.Itoa(i+1)))
		}
	}

	g.pages.Add(key, out)
	return clonePage(out)
}

// Sample returns a uniformly random item from the world pool
func (g *Generator) Sample() domain.Item {
	idx := 1 + int(g.rnd()*float64(g.size))
	if idx > g.size {
		idx = g.size
	}
	return g.GenerateItem(strconv.Itoa(idx))
}

// Lookup regenerates a catalog or search item by id
func (g *Generator) Lookup(id string) (domain.Item, error) {
	if strings.HasPrefix(id, SearchIDPrefix) {
		return g.GenerateItem(id), nil
	}
	n, err := strconv.Atoi(id)
	if err != nil || n < 1 || n > g.size {
		return domain.Item{}, fmt.Errorf("%w: %s", domain.ErrItemNotFound, id)
	}
	return g.GenerateItem(id), nil
}

// CachedPages reports how many pages are currently cached
func (g *Generator) CachedPages() int {
	return g.pages.Len()
}

func normalizePageSize(pageSize int) int {
	if pageSize <= 0 {
		return DefaultPageSize
	}
	if pageSize > MaxPageSize {
		return MaxPageSize
	}
	return pageSize
}

func clonePage(p Page) Page {
	items := make([]domain.Item, len(p.Items))
	for i, it := range p.Items {
		items[i] = it.Clone()
	}
	p.Items = items
	return p
}
