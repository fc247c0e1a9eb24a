// Package pricing - Rate sheet export
package pricing

import (
	"github.com/shopspring/decimal"

	"bitterroot-intake/core/catalog"
	"bitterroot-intake/core/types"
)

// ModifierRate is one condition modifier entry in the rate sheet
type ModifierRate struct {
	// Key is the modifier's flag token
	Key types.Flag `json:"key"`

	// Label is the human-readable modifier label
	Label string `json:"label"`

	// Percent is the surcharge fraction
	Percent decimal.Decimal `json:"percent"`
}

// RateSheet is a read-only view of the fixed pricing configuration,
// for the rates CLI command and the /rates endpoint.
type RateSheet struct {
	BaseDailyRate           decimal.Decimal            `json:"baseDailyRate"`
	DailyRateCap            decimal.Decimal            `json:"dailyRateCap"`
	MobilizationFee         decimal.Decimal            `json:"mobilizationFee"`
	MobilizationWaiverMiles decimal.Decimal            `json:"mobilizationWaiverMiles"`
	MileageRate             decimal.Decimal            `json:"mileageRate"`
	StumpRatePerInch        decimal.Decimal            `json:"stumpRatePerInch"`
	ServiceRateImpacts      map[string]decimal.Decimal `json:"serviceRateImpacts"`
	TimberRateImpacts       map[string]decimal.Decimal `json:"timberRateImpacts"`
	ConditionModifiers      []ModifierRate             `json:"conditionModifiers"`
	MaxStackedModifiers     int                        `json:"maxStackedModifiers"`
}

// Rates returns the current rate sheet
func Rates() RateSheet {
	services := make(map[string]decimal.Decimal, len(catalog.ServiceRateImpacts))
	for svc, impact := range catalog.ServiceRateImpacts {
		services[string(svc)] = impact
	}
	timber := make(map[string]decimal.Decimal, len(catalog.TimberHandlingRateImpacts))
	for method, impact := range catalog.TimberHandlingRateImpacts {
		timber[string(method)] = impact
	}
	modifiers := make([]ModifierRate, 0, len(catalog.ConditionModifiers))
	for _, m := range catalog.ConditionModifiers {
		modifiers = append(modifiers, ModifierRate{Key: m.Key, Label: m.Label, Percent: m.Percent})
	}
	return RateSheet{
		BaseDailyRate:           BaseDailyRate,
		DailyRateCap:            DailyRateCap,
		MobilizationFee:         MobilizationFee,
		MobilizationWaiverMiles: MobilizationWaiverMiles,
		MileageRate:             MileageRate,
		StumpRatePerInch:        StumpRatePerInch,
		ServiceRateImpacts:      services,
		TimberRateImpacts:       timber,
		ConditionModifiers:      modifiers,
		MaxStackedModifiers:     MaxStackedModifiers,
	}
}
