// Package catalog - Catalog validation
// Exhaustiveness checks over the closed enumerations, so that a
// silently-defaulted-to-zero rate or a missing label surfaces at
// startup and in tests instead of inside a customer-facing report.
package catalog

import (
	"fmt"

	"github.com/shopspring/decimal"

	"bitterroot-intake/core/types"
)

// Validate checks catalog integrity and returns every violation found
func Validate() []error {
	var errs []error

	report := func(format string, args ...interface{}) {
		errs = append(errs, fmt.Errorf(format, args...))
	}

	for _, s := range types.AllServices {
		if _, ok := ServiceLabels[s]; !ok {
			report("service %q has no label", s)
		}
		if _, ok := ServiceRateImpacts[s]; !ok {
			report("service %q has no rate impact entry", s)
		}
	}

	for _, v := range types.AllVegetation {
		if _, ok := VegetationLabels[v]; !ok {
			report("vegetation %q has no label", v)
		}
	}

	for _, m := range types.AllTimberHandling {
		if _, ok := TimberHandlingLabels[m]; !ok {
			report("timber handling %q has no label", m)
		}
		if _, ok := TimberHandlingRateImpacts[m]; !ok {
			report("timber handling %q has no rate impact entry", m)
		}
	}

	for _, n := range types.AllSupportNeeds {
		if _, ok := SupportNeedLabels[n]; !ok {
			report("support need %q has no label", n)
		}
	}

	for _, t := range types.AllTiers {
		if _, ok := TierLabels[t]; !ok {
			report("tier %q has no label", t)
		}
		if _, ok := TierPriorities[t]; !ok {
			report("tier %q has no scheduling priority", t)
		}
		if _, ok := TierActions[t]; !ok {
			report("tier %q has no default action", t)
		}
	}

	for _, f := range HardStopOrder {
		if _, ok := HardStopMessages[f]; !ok {
			report("hard-stop flag %q has no decline message", f)
		}
	}

	seen := make(map[types.Flag]struct{}, len(ConditionModifiers))
	one := decimal.NewFromInt(1)
	for _, m := range ConditionModifiers {
		if _, dup := seen[m.Key]; dup {
			report("condition modifier %q declared twice", m.Key)
		}
		seen[m.Key] = struct{}{}
		if m.Label == "" {
			report("condition modifier %q has no label", m.Key)
		}
		if m.Applies == nil {
			report("condition modifier %q has no predicate", m.Key)
		}
		if !m.Percent.IsPositive() || m.Percent.GreaterThan(one) {
			report("condition modifier %q has percentage %s outside (0,1]", m.Key, m.Percent)
		}
	}

	return errs
}

// MustValidate panics if the catalog is inconsistent. A broken table
// is a programmer error, not a runtime condition.
func MustValidate() {
	if errs := Validate(); len(errs) > 0 {
		panic(fmt.Sprintf("catalog validation failed: %v", errs))
	}
}
