package catalog

import "time"

// Generation ranges
const (
	MinTags   = 2
	MaxTags   = 6
	MinImages = 4
	MaxImages = 10

	LegendaryThreshold = 0.10
	RareThreshold      = 0.30

	MinDailyEarnings   = 10
	DailyEarningsSpan  = 100
	MinTotalEarnings   = 100
	TotalEarningsSpan  = 10000
	MinUsageCount      = 1
	UsageCountSpan     = 1000
	CreatorNumberSpan  = 10000
	CreatedAtMaxAge    = 365 * 24 * time.Hour
	CreatorNameFormat  = "Agent%04d"
	ImageIDFormat      = "img_%s_%d"
	ImageAltFormat     = "%s style %d"
	SearchItemIDFormat = "search_%s_%d"
	SearchIDPrefix     = "search_"
)

// Paging defaults
const (
	DefaultSize     = 100000
	DefaultPageSize = 20
	MaxPageSize     = 100

	MinSearchResults  = 20
	SearchResultsSpan = 100
)

// Cache defaults
const (
	DefaultCacheSize = 256
	DefaultCacheTTL  = 10 * time.Minute
)
