package flags

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bitterroot-intake/core/types"
)

// baseForm is a valid form that derives only the baseline flags
// (service add-ons, standard access, no timber, flat terrain,
// approximate address).
func baseForm() *types.Form {
	return &types.Form{
		FullName:        "Dana Whitfield",
		Phone:           "406-555-0144",
		Email:           "dana@example.com",
		PropertyStatus:  types.PropertyVacant,
		City:            "Stevensville",
		County:          "Ravalli",
		DistanceMiles:   12,
		Area:            types.AreaOneToThree,
		Services:        []types.Service{types.ServiceForestryMulching},
		Vegetation:      []types.Vegetation{types.VegetationLightBrush},
		Terrain:         types.TerrainFlat,
		Access:          types.AccessRoad,
		GroundCondition: types.GroundDry,
		Waterways:       types.WaterwaysNo,
		PermitAck:       true,
	}
}

func TestBaselineDerivation(t *testing.T) {
	set := Derive(baseForm())

	assert.Equal(t, []types.Flag{
		types.FlagServiceAddonsApplied,
		types.FlagStandardAccess,
		types.FlagNoTimber,
		types.FlagFlatOrRolling,
		types.FlagAddressApproximate,
	}, set.Values())
}

func TestSingleConditionFlags(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*types.Form)
		gained []types.Flag
		lost   []types.Flag
	}{
		{
			name:   "steep terrain",
			mutate: func(f *types.Form) { f.Terrain = types.TerrainSteep },
			gained: []types.Flag{types.FlagSteepSlopeRisk},
			lost:   []types.Flag{types.FlagFlatOrRolling},
		},
		{
			name:   "saturated ground",
			mutate: func(f *types.Form) { f.GroundCondition = types.GroundSaturated },
			gained: []types.Flag{types.FlagSaturatedGround},
		},
		{
			name:   "limited access",
			mutate: func(f *types.Form) { f.Access = types.AccessLimited },
			gained: []types.Flag{types.FlagLimitedAccess},
			lost:   []types.Flag{types.FlagStandardAccess},
		},
		{
			name:   "no access without access creation",
			mutate: func(f *types.Form) { f.Access = types.AccessNone },
			gained: []types.Flag{types.FlagNoEstablishedAccess, types.FlagIncompatibleAccess},
			lost:   []types.Flag{types.FlagStandardAccess},
		},
		{
			name: "no access with access creation",
			mutate: func(f *types.Form) {
				f.Access = types.AccessNone
				f.Services = append(f.Services, types.ServiceAccessCreation)
			},
			gained: []types.Flag{types.FlagNoEstablishedAccess, types.FlagMultiServiceScope},
			lost:   []types.Flag{types.FlagStandardAccess},
		},
		{
			name:   "culverts needed",
			mutate: func(f *types.Form) { f.SupportNeeds = []types.SupportNeed{types.SupportCulverts} },
			gained: []types.Flag{types.FlagCulvertRequired},
		},
		{
			name:   "ditching needed",
			mutate: func(f *types.Form) { f.SupportNeeds = []types.SupportNeed{types.SupportDitching} },
			gained: []types.Flag{types.FlagDitchingRequired},
		},
		{
			name:   "compaction needed",
			mutate: func(f *types.Form) { f.SupportNeeds = []types.SupportNeed{types.SupportCompaction} },
			gained: []types.Flag{types.FlagBaseCompactionRequired},
		},
		{
			name:   "waterways present",
			mutate: func(f *types.Form) { f.Waterways = types.WaterwaysYes },
			gained: []types.Flag{types.FlagWaterwayReview},
		},
		{
			name:   "waterways unsure",
			mutate: func(f *types.Form) { f.Waterways = types.WaterwaysUnsure },
			gained: []types.Flag{types.FlagWaterwayReview},
		},
		{
			name:   "permit not acknowledged",
			mutate: func(f *types.Form) { f.PermitAck = false },
			gained: []types.Flag{types.FlagPermitNotAcknowledged},
		},
		{
			name:   "exact address",
			mutate: func(f *types.Form) { f.ProjectAddress = "212 Creekside Ln" },
			lost:   []types.Flag{types.FlagAddressApproximate},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := baseForm()
			tt.mutate(form)
			set := Derive(form)

			for _, f := range tt.gained {
				assert.True(t, set.Has(f), "expected flag %s", f)
			}
			for _, f := range tt.lost {
				assert.False(t, set.Has(f), "unexpected flag %s", f)
			}
		})
	}
}

func TestTimberFlags(t *testing.T) {
	form := baseForm()
	form.Vegetation = []types.Vegetation{types.VegetationLightBrush, types.VegetationBrushTimber}
	form.TimberHandling = types.TimberMulch

	set := Derive(form)
	assert.True(t, set.Has(types.FlagTimberPresent))
	assert.True(t, set.Has(types.FlagBrushPlusTimber))
	assert.True(t, set.Has(types.FlagTimberMulchedOnSite))
	assert.False(t, set.Has(types.FlagNoTimber))

	// Timber alone does not raise the brush-plus-timber combination.
	form.Vegetation = []types.Vegetation{types.VegetationTimberOnly}
	form.TimberHandling = types.TimberStack
	set = Derive(form)
	assert.True(t, set.Has(types.FlagTimberPresent))
	assert.False(t, set.Has(types.FlagBrushPlusTimber))
	assert.False(t, set.Has(types.FlagTimberMulchedOnSite))
}

func TestBelowMinScope(t *testing.T) {
	form := baseForm()
	form.Area = types.AreaUnderHalf
	set := Derive(form)
	assert.True(t, set.Has(types.FlagBelowMinScope))

	// A second vegetation type lifts the scope above minimum.
	form.Vegetation = []types.Vegetation{types.VegetationLightBrush, types.VegetationDenseWoody}
	set = Derive(form)
	assert.False(t, set.Has(types.FlagBelowMinScope))

	// So does a larger area.
	form = baseForm()
	form.Area = types.AreaHalfToOne
	set = Derive(form)
	assert.False(t, set.Has(types.FlagBelowMinScope))
}

func TestUnsafeSlopeRequiresMechanizedWork(t *testing.T) {
	form := baseForm()
	form.Terrain = types.TerrainSteep
	form.GroundCondition = types.GroundSaturated

	set := Derive(form)
	assert.True(t, set.Has(types.FlagUnsafeSlope))

	// Stump grinding alone is not mechanized clearing.
	form.Services = []types.Service{types.ServiceStumpGrinding}
	form.StumpCount = 6
	form.AvgStumpDiameter = 10
	set = Derive(form)
	assert.False(t, set.Has(types.FlagUnsafeSlope))

	// Steep but dry is risk, not a stop.
	form = baseForm()
	form.Terrain = types.TerrainSteep
	set = Derive(form)
	assert.True(t, set.Has(types.FlagSteepSlopeRisk))
	assert.False(t, set.Has(types.FlagUnsafeSlope))
}

func TestMultiServiceScope(t *testing.T) {
	form := baseForm()
	set := Derive(form)
	assert.False(t, set.Has(types.FlagMultiServiceScope))
	assert.True(t, set.Has(types.FlagServiceAddonsApplied))

	form.Services = append(form.Services, types.ServiceDefensibleSpace)
	set = Derive(form)
	assert.True(t, set.Has(types.FlagMultiServiceScope))
}

func TestDerivationOrderIsStable(t *testing.T) {
	form := baseForm()
	form.Terrain = types.TerrainSteep
	form.GroundCondition = types.GroundSaturated
	form.Vegetation = []types.Vegetation{types.VegetationLightBrush, types.VegetationBrushTimber}
	form.TimberHandling = types.TimberMulch
	form.Access = types.AccessLimited
	form.Waterways = types.WaterwaysYes

	want := []types.Flag{
		types.FlagSteepSlopeRisk,
		types.FlagSaturatedGround,
		types.FlagTimberPresent,
		types.FlagBrushPlusTimber,
		types.FlagLimitedAccess,
		types.FlagServiceAddonsApplied,
		types.FlagWaterwayReview,
		types.FlagTimberMulchedOnSite,
		types.FlagUnsafeSlope,
		types.FlagAddressApproximate,
	}
	require.Equal(t, want, Derive(form).Values())
}
