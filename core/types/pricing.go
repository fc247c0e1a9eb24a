// Package types - Pricing summary types
package types

import "github.com/shopspring/decimal"

// Tier is the review-urgency class derived from the capped daily total
type Tier string

const (
	Tier1 Tier = "TIER_1"
	Tier2 Tier = "TIER_2"
	Tier3 Tier = "TIER_3"
)

// String returns the string representation
func (t Tier) String() string {
	return string(t)
}

// AllTiers lists every tier in ascending urgency order
var AllTiers = []Tier{Tier1, Tier2, Tier3}

// ServiceImpact is one itemized dollar impact line in the pricing
// breakdown.
type ServiceImpact struct {
	// Label is the human-readable service label
	Label string `json:"label"`

	// Amount is the dollar impact
	Amount decimal.Decimal `json:"amount"`

	// Detail is an optional computation note (e.g. stump counts)
	Detail string `json:"detail,omitempty"`
}

// AppliedModifier is a condition modifier that survived the stacking
// cut and compounds into the daily total.
type AppliedModifier struct {
	// Key is the modifier's flag token
	Key Flag `json:"key"`

	// Label is the human-readable modifier label
	Label string `json:"label"`

	// Percent is the surcharge fraction (0.25 = +25%)
	Percent decimal.Decimal `json:"percent"`
}

// StumpDetail records the stump grinding computation inputs
type StumpDetail struct {
	// Cost is count * averageDiameter * rate-per-inch
	Cost decimal.Decimal `json:"cost"`

	// Count is the number of stumps
	Count int `json:"count"`

	// AvgDiameter is the average stump diameter at DBH, in inches
	AvgDiameter float64 `json:"avgDiameter"`
}

// Summary is the computed pricing result for one submission. All
// fields are derived; nothing here feeds back into the form.
type Summary struct {
	// BaseRate is the fixed daily rate anchor
	BaseRate decimal.Decimal `json:"baseRate"`

	// BaseSubtotal is base rate plus all service and timber impacts
	BaseSubtotal decimal.Decimal `json:"baseSubtotal"`

	// ServiceImpacts is the ordered itemized breakdown
	ServiceImpacts []ServiceImpact `json:"serviceImpacts"`

	// ServiceImpactTotal is the sum of all add-ons including timber
	ServiceImpactTotal decimal.Decimal `json:"serviceImpactTotal"`

	// ModifiersApplied are the retained condition modifiers (at most two)
	ModifiersApplied []AppliedModifier `json:"modifiersApplied"`

	// ModifierMultiplier is the combined multiplicative factor
	ModifierMultiplier decimal.Decimal `json:"modifierMultiplier"`

	// SubtotalWithModifiers is the pre-cap subtotal
	SubtotalWithModifiers decimal.Decimal `json:"subtotalWithModifiers"`

	// DailyTotal is the capped daily total
	DailyTotal decimal.Decimal `json:"dailyTotal"`

	// CapApplied reports whether the daily cap was enforced
	CapApplied bool `json:"capApplied"`

	// DistanceMiles is the one-way distance used for travel charges
	DistanceMiles decimal.Decimal `json:"distanceMiles"`

	// MobilizationFee is the flat dispatch charge, or zero when waived
	MobilizationFee decimal.Decimal `json:"mobilizationFee"`

	// MileageCost is distance * per-mile rate; never capped
	MileageCost decimal.Decimal `json:"mileageCost"`

	// Tier is the review tier after saturation escalation
	Tier Tier `json:"tier"`

	// TierLabel is the fixed human-readable tier label
	TierLabel string `json:"tierLabel"`

	// SchedulingPriority is the fixed scheduling-priority label
	SchedulingPriority string `json:"schedulingPriority"`

	// TierAction is the tier's default action string
	TierAction string `json:"tierAction"`

	// Stumps records the stump grinding computation
	Stumps StumpDetail `json:"stumps"`
}
