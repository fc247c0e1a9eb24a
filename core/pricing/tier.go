// Package pricing - Tier classification
package pricing

import (
	"github.com/shopspring/decimal"

	"bitterroot-intake/core/types"
)

// Tier boundaries over the capped daily total
var (
	tier1Ceiling = decimal.NewFromInt(3000)
	tier2Ceiling = decimal.NewFromInt(4500)
)

// classifyTier maps a capped daily total to its base tier
func classifyTier(dailyTotal decimal.Decimal) types.Tier {
	switch {
	case dailyTotal.LessThanOrEqual(tier1Ceiling):
		return types.Tier1
	case dailyTotal.LessThanOrEqual(tier2Ceiling):
		return types.Tier2
	default:
		return types.Tier3
	}
}

// tierFor classifies the capped daily total and applies the ground
// saturation escalation: saturated ground bumps the tier one level
// unless it is already TIER_3. Tier is monotonic non-decreasing under
// saturation.
func tierFor(dailyTotal decimal.Decimal, ground types.GroundCondition) types.Tier {
	tier := classifyTier(dailyTotal)
	if ground == types.GroundSaturated && tier != types.Tier3 {
		if tier == types.Tier1 {
			tier = types.Tier2
		} else {
			tier = types.Tier3
		}
	}
	return tier
}
