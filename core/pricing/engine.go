// Package pricing - Centralized pricing math (pipeline stage 4)
// All dollar amounts are decimals; nothing in this package mutates the
// form snapshot.
package pricing

import (
	"fmt"
	"math"
	"sort"

	"github.com/shopspring/decimal"

	"bitterroot-intake/core/catalog"
	"bitterroot-intake/core/types"
)

// Fixed rate constants. These must stay byte-compatible with the
// published rate sheet; tier boundaries live in tier.go.
var (
	// BaseDailyRate is the daily rate anchor for one CTL day
	BaseDailyRate = decimal.NewFromInt(2500)

	// DailyRateCap bounds the daily total regardless of scope
	DailyRateCap = decimal.NewFromInt(5000)

	// MobilizationFee is the flat dispatch charge
	MobilizationFee = decimal.NewFromInt(200)

	// MobilizationWaiverMiles waives the fee at or under this distance
	MobilizationWaiverMiles = decimal.NewFromInt(15)

	// MileageRate is charged per one-way mile, never capped
	MileageRate = decimal.NewFromFloat(3.5)

	// StumpRatePerInch prices stump grinding per inch of diameter at DBH
	StumpRatePerInch = decimal.NewFromInt(9)
)

// MaxStackedModifiers caps how many condition modifiers compound.
// Weaker applicable modifiers beyond the cap are discarded.
const MaxStackedModifiers = 2

// Price computes the pricing summary for a validated form that passed
// the hard-stop gate. The flag set gates the timber add-on; modifier
// applicability is evaluated against the form itself.
func Price(f *types.Form, flags *types.FlagSet) *types.Summary {
	var impacts []types.ServiceImpact
	addOns := decimal.Zero
	stumps := types.StumpDetail{Cost: decimal.Zero}

	for _, svc := range f.Services {
		if svc == types.ServiceStumpGrinding {
			stumps = stumpGrinding(f)
			if stumps.Cost.IsPositive() {
				impacts = append(impacts, types.ServiceImpact{
					Label:  serviceLabel(svc),
					Amount: stumps.Cost,
					Detail: fmt.Sprintf("%d stumps @ ~%g\"", stumps.Count, stumps.AvgDiameter),
				})
			}
			addOns = addOns.Add(stumps.Cost)
			continue
		}

		// Unknown services default to a zero impact.
		impact := catalog.ServiceRateImpacts[svc]
		if impact.IsPositive() {
			impacts = append(impacts, types.ServiceImpact{Label: serviceLabel(svc), Amount: impact})
		}
		addOns = addOns.Add(impact)
	}

	timberImpact := decimal.Zero
	if flags.Has(types.FlagTimberPresent) && f.TimberHandling.IsValid() {
		timberImpact = catalog.TimberHandlingRateImpacts[f.TimberHandling]
		if timberImpact.IsPositive() {
			impacts = append(impacts, types.ServiceImpact{
				Label:  "Timber handling – " + catalog.TimberHandlingLabels[f.TimberHandling],
				Amount: timberImpact,
			})
		}
	}

	baseSubtotal := BaseDailyRate.Add(addOns).Add(timberImpact)

	applied, multiplier := resolveModifiers(f)
	subtotalWithModifiers := baseSubtotal.Mul(multiplier)

	dailyTotal := subtotalWithModifiers
	capApplied := false
	if dailyTotal.GreaterThan(DailyRateCap) {
		dailyTotal = DailyRateCap
		capApplied = true
	}

	distance := decimal.NewFromFloat(math.Max(f.DistanceMiles, 0))
	mobilizationFee := decimal.Zero
	if distance.GreaterThan(MobilizationWaiverMiles) {
		mobilizationFee = MobilizationFee
	}
	mileageCost := distance.Mul(MileageRate)

	tier := tierFor(dailyTotal, f.GroundCondition)

	return &types.Summary{
		BaseRate:              BaseDailyRate,
		BaseSubtotal:          baseSubtotal,
		ServiceImpacts:        impacts,
		ServiceImpactTotal:    addOns.Add(timberImpact),
		ModifiersApplied:      applied,
		ModifierMultiplier:    multiplier,
		SubtotalWithModifiers: subtotalWithModifiers,
		DailyTotal:            dailyTotal,
		CapApplied:            capApplied,
		DistanceMiles:         distance,
		MobilizationFee:       mobilizationFee,
		MileageCost:           mileageCost,
		Tier:                  tier,
		TierLabel:             catalog.TierLabels[tier],
		SchedulingPriority:    catalog.TierPriorities[tier],
		TierAction:            catalog.TierActions[tier],
		Stumps:                stumps,
	}
}

// stumpGrinding computes count * averageDiameter * rate-per-inch.
// Non-positive inputs collapse to a zero-cost detail.
func stumpGrinding(f *types.Form) types.StumpDetail {
	if f.StumpCount <= 0 || f.AvgStumpDiameter <= 0 {
		return types.StumpDetail{Cost: decimal.Zero}
	}
	cost := decimal.NewFromInt(int64(f.StumpCount)).
		Mul(decimal.NewFromFloat(f.AvgStumpDiameter)).
		Mul(StumpRatePerInch)
	return types.StumpDetail{
		Cost:        cost,
		Count:       f.StumpCount,
		AvgDiameter: f.AvgStumpDiameter,
	}
}

// resolveModifiers evaluates every modifier predicate, stable-sorts
// the applicable ones by percentage descending, retains at most
// MaxStackedModifiers, and combines them multiplicatively.
func resolveModifiers(f *types.Form) ([]types.AppliedModifier, decimal.Decimal) {
	applicable := make([]catalog.ConditionModifier, 0, len(catalog.ConditionModifiers))
	for _, m := range catalog.ConditionModifiers {
		if m.Applies(f) {
			applicable = append(applicable, m)
		}
	}

	// Stable sort: equal percentages keep configuration order.
	sort.SliceStable(applicable, func(i, j int) bool {
		return applicable[i].Percent.GreaterThan(applicable[j].Percent)
	})
	if len(applicable) > MaxStackedModifiers {
		applicable = applicable[:MaxStackedModifiers]
	}

	one := decimal.NewFromInt(1)
	multiplier := one
	applied := make([]types.AppliedModifier, 0, len(applicable))
	for _, m := range applicable {
		multiplier = multiplier.Mul(one.Add(m.Percent))
		applied = append(applied, types.AppliedModifier{
			Key:     m.Key,
			Label:   m.Label,
			Percent: m.Percent,
		})
	}
	return applied, multiplier
}

func serviceLabel(svc types.Service) string {
	if label, ok := catalog.ServiceLabels[svc]; ok {
		return label
	}
	return string(svc)
}
