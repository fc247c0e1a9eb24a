// Package flags - Flag derivation (pipeline stage 2)
package flags

import (
	"bitterroot-intake/core/types"
)

// Derive inspects a validated form snapshot and produces the ordered,
// duplicate-free set of condition flags. Pure function; the check
// sequence below is fixed and determines insertion order.
func Derive(f *types.Form) *types.FlagSet {
	set := types.NewFlagSet()

	hasTimber := f.HasTimber()
	hasBrush := f.HasBrush()

	set.AddIf(f.Terrain == types.TerrainSteep, types.FlagSteepSlopeRisk)
	set.AddIf(f.GroundCondition == types.GroundSaturated, types.FlagSaturatedGround)
	set.AddIf(hasTimber, types.FlagTimberPresent)
	set.AddIf(hasTimber && hasBrush, types.FlagBrushPlusTimber)
	set.AddIf(f.Access == types.AccessLimited, types.FlagLimitedAccess)
	set.AddIf(f.Access == types.AccessNone, types.FlagNoEstablishedAccess)
	set.AddIf(f.HasSupportNeed(types.SupportCulverts), types.FlagCulvertRequired)
	set.AddIf(f.HasSupportNeed(types.SupportDitching), types.FlagDitchingRequired)
	set.AddIf(f.HasSupportNeed(types.SupportCompaction), types.FlagBaseCompactionRequired)
	set.AddIf(len(f.Services) > 1, types.FlagMultiServiceScope)
	// Raised for any selected service, even when its listed dollar
	// impact is zero. Literal observed behavior; see DESIGN.md.
	set.AddIf(len(f.Services) > 0, types.FlagServiceAddonsApplied)
	set.AddIf(f.Waterways == types.WaterwaysYes || f.Waterways == types.WaterwaysUnsure, types.FlagWaterwayReview)
	set.AddIf(hasTimber && f.TimberHandling == types.TimberMulch, types.FlagTimberMulchedOnSite)

	belowMinScope := f.Area == types.AreaUnderHalf &&
		len(f.Vegetation) == 1 && f.Vegetation[0] == types.VegetationLightBrush
	set.AddIf(belowMinScope, types.FlagBelowMinScope)

	mechanized := false
	for _, svc := range f.Services {
		if svc != types.ServiceStumpGrinding {
			mechanized = true
			break
		}
	}
	unsafeSlope := f.Terrain == types.TerrainSteep &&
		f.GroundCondition == types.GroundSaturated && mechanized
	set.AddIf(unsafeSlope, types.FlagUnsafeSlope)

	set.AddIf(!f.PermitAck, types.FlagPermitNotAcknowledged)
	set.AddIf(f.Access == types.AccessNone && !f.HasService(types.ServiceAccessCreation), types.FlagIncompatibleAccess)
	set.AddIf(f.Access == types.AccessRoad, types.FlagStandardAccess)
	set.AddIf(!hasTimber, types.FlagNoTimber)
	set.AddIf(f.Terrain == types.TerrainFlat || f.Terrain == types.TerrainRolling, types.FlagFlatOrRolling)
	set.AddIf(!f.HasExactAddress(), types.FlagAddressApproximate)

	return set
}
