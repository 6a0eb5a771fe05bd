package economy

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/osse101/PotionCraft_Go/internal/domain"
	"github.com/osse101/PotionCraft_Go/internal/validation"
)

// Tuning holds every number the economy runs on
type Tuning struct {
	StakingAPY           float64 `yaml:"staking_apy"`
	UnclaimedHorizonDays int     `yaml:"unclaimed_horizon_days"`
	TryCost              int64   `yaml:"try_cost"`

	Craft  CraftTuning  `yaml:"craft"`
	Obtain ObtainTuning `yaml:"obtain"`
	Wallet WalletTuning `yaml:"wallet"`
	Sample SampleTuning `yaml:"sample"`
}

// CraftTuning prices and shapes user-crafted items
type CraftTuning struct {
	BaseCost              int64 `yaml:"base_cost"`
	LongNameLength        int   `yaml:"long_name_length"`
	LongNameSurcharge     int64 `yaml:"long_name_surcharge"`
	LongDescLength        int   `yaml:"long_description_length"`
	LongDescSurcharge     int64 `yaml:"long_description_surcharge"`
	PremiumStyleCount     int   `yaml:"premium_style_count"`
	PremiumStyleSurcharge int64 `yaml:"premium_style_surcharge"`
	MinNameLength         int   `yaml:"min_name_length"`
	MaxTags               int   `yaml:"max_tags"`
	DailyEarningsMin      int64 `yaml:"daily_earnings_min"`
	DailyEarningsSpan     int64 `yaml:"daily_earnings_span"`
}

// ObtainTuning prices copies of world pool items
type ObtainTuning struct {
	BasePrice         int64                   `yaml:"base_price"`
	RarityMultipliers map[domain.Rarity]int64 `yaml:"rarity_multipliers"`
	UsageDivisor      int64                   `yaml:"usage_divisor"`
}

// WalletTuning is the starting balance range on connect
type WalletTuning struct {
	MinBalance  int64 `yaml:"min_balance"`
	BalanceSpan int64 `yaml:"balance_span"`
}

// SampleTuning shapes the starter inventory handed to a fresh wallet
type SampleTuning struct {
	Items             int   `yaml:"items"`
	DailyEarningsMin  int64 `yaml:"daily_earnings_min"`
	DailyEarningsSpan int64 `yaml:"daily_earnings_span"`
	TotalEarningsMin  int64 `yaml:"total_earnings_min"`
	TotalEarningsSpan int64 `yaml:"total_earnings_span"`
	StakeMin          int64 `yaml:"stake_min"`
	StakeSpan         int64 `yaml:"stake_span"`
}

// DefaultTuning returns the built-in economy
func DefaultTuning() Tuning {
	return Tuning{
		StakingAPY:           0.12,
		UnclaimedHorizonDays: 7,
		TryCost:              10,
		Craft: CraftTuning{
			BaseCost:              100,
			LongNameLength:        20,
			LongNameSurcharge:     50,
			LongDescLength:        50,
			LongDescSurcharge:     100,
			PremiumStyleCount:     10,
			PremiumStyleSurcharge: 200,
			MinNameLength:         3,
			MaxTags:               6,
			DailyEarningsMin:      10,
			DailyEarningsSpan:     30,
		},
		Obtain: ObtainTuning{
			BasePrice: 50,
			RarityMultipliers: map[domain.Rarity]int64{
				domain.RarityCommon:    1,
				domain.RarityRare:      3,
				domain.RarityLegendary: 10,
			},
			UsageDivisor: 100,
		},
		Wallet: WalletTuning{MinBalance: 1000, BalanceSpan: 10000},
		Sample: SampleTuning{
			Items:             3,
			DailyEarningsMin:  20,
			DailyEarningsSpan: 50,
			TotalEarningsMin:  500,
			TotalEarningsSpan: 5000,
			StakeMin:          1000,
			StakeSpan:         5000,
		},
	}
}

// LoadTuning reads a YAML tuning file on top of the defaults. A missing file
// yields the defaults; a file that fails schema validation is an error.
func LoadTuning(path, schemaPath string, v validation.SchemaValidator) (Tuning, error) {
	t := DefaultTuning()
	if path == "" {
		return t, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return t, nil
		}
		return t, fmt.Errorf("%s: %w", ErrMsgReadTuning, err)
	}

	if v != nil && schemaPath != "" {
		if err := v.ValidateYAML(raw, schemaPath); err != nil {
			return t, fmt.Errorf("%s %s: %w", ErrMsgInvalidTuning, path, err)
		}
	}

	if err := yaml.Unmarshal(raw, &t); err != nil {
		return t, fmt.Errorf("%s %s: %w", ErrMsgInvalidTuning, path, err)
	}
	return t, nil
}
