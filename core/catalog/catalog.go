// Package catalog - Authoritative intake option catalog
// Defines the canonical labels, rate impacts, tier tables, condition
// modifiers, and hard-stop policy for the quote-intake engine.
// This is the source of truth; every closed enumeration must have an
// entry here, enforced by Validate.
package catalog

import (
	"github.com/shopspring/decimal"

	"bitterroot-intake/core/types"
)

// PropertyStatusLabels maps property status values to display labels
var PropertyStatusLabels = map[types.PropertyStatus]string{
	types.PropertyVacant:     "Vacant land",
	types.PropertyDeveloped:  "Developed property",
	types.PropertyCommercial: "Commercial or multi-parcel property",
}

// AreaLabels maps area buckets to display labels
var AreaLabels = map[types.AreaBucket]string{
	types.AreaUnderHalf:   "Under ½ acre",
	types.AreaHalfToOne:   "½ – 1 acre",
	types.AreaOneToThree:  "1 – 3 acres",
	types.AreaThreeToFive: "3 – 5 acres",
	types.AreaOverFive:    "Over 5 acres",
}

// VegetationLabels maps vegetation types to display labels
var VegetationLabels = map[types.Vegetation]string{
	types.VegetationLightBrush:    "Light brush & grass",
	types.VegetationWillowBrush:   "Willow / riparian brush",
	types.VegetationMixedSaplings: "Mixed brush and saplings",
	types.VegetationBrushTimber:   "Brush with timber over 8\"",
	types.VegetationTimberOnly:    "Timber over 8\" (standalone)",
	types.VegetationDenseWoody:    "Dense woody growth",
}

// TerrainLabels maps terrain profiles to display labels
var TerrainLabels = map[types.Terrain]string{
	types.TerrainFlat:    "Mostly flat",
	types.TerrainRolling: "Rolling terrain",
	types.TerrainSteep:   "Steep slopes",
}

// AccessLabels maps access conditions to display labels
var AccessLabels = map[types.Access]string{
	types.AccessRoad:    "Existing road or driveway access",
	types.AccessLimited: "Limited access",
	types.AccessNone:    "No established access",
}

// GroundConditionLabels maps ground conditions to display labels
var GroundConditionLabels = map[types.GroundCondition]string{
	types.GroundDry:       "Dry / firm ground",
	types.GroundSaturated: "Seasonally saturated or soft ground",
}

// WaterwaysLabels maps waterways answers to display labels
var WaterwaysLabels = map[types.Waterways]string{
	types.WaterwaysYes:    "Yes",
	types.WaterwaysNo:     "No",
	types.WaterwaysUnsure: "Not sure",
}

// SupportNeedLabels maps support needs to display labels
var SupportNeedLabels = map[types.SupportNeed]string{
	types.SupportClearingOnly: "Clearing only (no ground shaping)",
	types.SupportDitching:     "Ditching or drainage shaping required",
	types.SupportCulverts:     "Culverts required",
	types.SupportCompaction:   "Base preparation and compaction required",
}

// ServiceLabels maps services to display labels
var ServiceLabels = map[types.Service]string{
	types.ServiceForestryMulching:   "Forestry mulching",
	types.ServiceDefensibleSpace:    "Defensible space clearing",
	types.ServiceSelectiveClearing:  "Selective land clearing",
	types.ServiceAccessCreation:     "Access creation & site prep",
	types.ServiceDitchingDrainage:   "Ditching & drainage shaping",
	types.ServiceCulvertInstall:     "Culvert installation (prep + placement)",
	types.ServiceBasePrepCompaction: "Base preparation & compaction",
	types.ServiceDrivewayWork:       "Driveway installation / repair",
	types.ServiceStumpGrinding:      "Stump grinding",
}

// TimberHandlingLabels maps handling methods to display labels
var TimberHandlingLabels = map[types.TimberHandling]string{
	types.TimberStack:  "Stack on site (owner-managed disposal)",
	types.TimberRemove: "Removed from site",
	types.TimberMulch:  "Mulched on site",
}

// ServiceRateImpacts is the fixed per-service dollar impact table.
// Zero entries are deliberate: forestry mulching is the baseline day
// and stump grinding is priced per inch, not through this table.
var ServiceRateImpacts = map[types.Service]decimal.Decimal{
	types.ServiceForestryMulching:   decimal.Zero,
	types.ServiceDefensibleSpace:    decimal.NewFromInt(500),
	types.ServiceSelectiveClearing:  decimal.NewFromInt(750),
	types.ServiceAccessCreation:     decimal.NewFromInt(750),
	types.ServiceDitchingDrainage:   decimal.NewFromInt(750),
	types.ServiceCulvertInstall:     decimal.NewFromInt(1000),
	types.ServiceBasePrepCompaction: decimal.NewFromInt(750),
	types.ServiceDrivewayWork:       decimal.NewFromInt(750),
	types.ServiceStumpGrinding:      decimal.Zero,
}

// TimberHandlingRateImpacts is the fixed per-method dollar impact table
var TimberHandlingRateImpacts = map[types.TimberHandling]decimal.Decimal{
	types.TimberStack:  decimal.NewFromInt(500),
	types.TimberRemove: decimal.NewFromInt(750),
	types.TimberMulch:  decimal.NewFromInt(1000),
}

// TierLabels maps tiers to display labels
var TierLabels = map[types.Tier]string{
	types.Tier1: "Tier 1 – Standard",
	types.Tier2: "Tier 2 – Complexity",
	types.Tier3: "Tier 3 – High Risk",
}

// TierPriorities maps tiers to scheduling-priority labels
var TierPriorities = map[types.Tier]string{
	types.Tier1: "Priority A – Fast Track",
	types.Tier2: "Priority B – Planned",
	types.Tier3: "Priority C – Controlled",
}

// TierActions maps tiers to default action strings
var TierActions = map[types.Tier]string{
	types.Tier1: "Proceed to scheduling review",
	types.Tier2: "Manual scope review before estimate",
	types.Tier3: "Senior review required before response",
}

// HardStopOrder is the fixed hard-stop priority list. Evaluation walks
// this slice in order and the first present flag wins; the ordering is
// policy, not severity.
var HardStopOrder = []types.Flag{
	types.FlagBelowMinScope,
	types.FlagUnsafeSlope,
	types.FlagPermitNotAcknowledged,
	types.FlagIncompatibleAccess,
}

// HardStopMessages maps hard-stop flags to decline messages
var HardStopMessages = map[types.Flag]string{
	types.FlagBelowMinScope:         "Request declined: scope below minimum thresholds.",
	types.FlagUnsafeSlope:           "Request declined: unsafe slopes for mechanized work.",
	types.FlagPermitNotAcknowledged: "Request declined: permit responsibility not acknowledged.",
	types.FlagIncompatibleAccess:    "Request declined: incompatible access without access creation scope.",
}

// GenericDeclineMessage is used if a hard-stop flag somehow has no
// message entry.
const GenericDeclineMessage = "Request declined: project does not meet intake requirements."

// ConditionModifier is a pricing surcharge with an applicability
// predicate over the form snapshot.
type ConditionModifier struct {
	// Key is the modifier's flag token
	Key types.Flag

	// Label is the human-readable modifier label
	Label string

	// Percent is the surcharge fraction (0.25 = +25%)
	Percent decimal.Decimal

	// Applies reports whether the modifier applies to the form
	Applies func(*types.Form) bool
}

// ConditionModifiers is the fixed modifier configuration. Declaration
// order is the tie-break order when percentages are equal; the pricing
// engine stable-sorts by percentage descending and keeps the top two.
var ConditionModifiers = []ConditionModifier{
	{
		Key:     types.FlagSaturatedGround,
		Label:   "Saturated or soft ground (+25%)",
		Percent: decimal.NewFromFloat(0.25),
		Applies: func(f *types.Form) bool { return f.GroundCondition == types.GroundSaturated },
	},
	{
		Key:     types.FlagSteepSlopeRisk,
		Label:   "Steep slope (<=18°) (+30%)",
		Percent: decimal.NewFromFloat(0.3),
		Applies: func(f *types.Form) bool { return f.Terrain == types.TerrainSteep },
	},
	{
		Key:     types.FlagNoEstablishedAccess,
		Label:   "No established access (+25%)",
		Percent: decimal.NewFromFloat(0.25),
		Applies: func(f *types.Form) bool { return f.Access == types.AccessNone },
	},
	{
		Key:     types.FlagLimitedAccess,
		Label:   "Limited access (+15%)",
		Percent: decimal.NewFromFloat(0.15),
		Applies: func(f *types.Form) bool { return f.Access == types.AccessLimited },
	},
}
