package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVegetationTimberTriggers(t *testing.T) {
	tests := []struct {
		vegetation Vegetation
		trigger    bool
	}{
		{VegetationLightBrush, false},
		{VegetationWillowBrush, false},
		{VegetationMixedSaplings, false},
		{VegetationBrushTimber, true},
		{VegetationTimberOnly, true},
		{VegetationDenseWoody, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.vegetation), func(t *testing.T) {
			assert.Equal(t, tt.trigger, tt.vegetation.IsTimberTrigger())
		})
	}
}

func TestFormTimberAndBrushDetection(t *testing.T) {
	form := &Form{Vegetation: []Vegetation{VegetationLightBrush, VegetationBrushTimber}}
	assert.True(t, form.HasTimber())
	assert.True(t, form.HasBrush())
	assert.True(t, form.RequiresTimberHandling())

	timberOnly := &Form{Vegetation: []Vegetation{VegetationTimberOnly}}
	assert.True(t, timberOnly.HasTimber())
	assert.False(t, timberOnly.HasBrush())

	brushOnly := &Form{Vegetation: []Vegetation{VegetationDenseWoody}}
	assert.False(t, brushOnly.HasTimber())
	assert.True(t, brushOnly.HasBrush())
}

func TestFormHasExactAddress(t *testing.T) {
	assert.False(t, (&Form{}).HasExactAddress())
	assert.False(t, (&Form{ProjectAddress: "   "}).HasExactAddress())
	assert.True(t, (&Form{ProjectAddress: "212 Creekside Ln"}).HasExactAddress())
}

func TestFormSelectionHelpers(t *testing.T) {
	form := &Form{
		Services:     []Service{ServiceForestryMulching, ServiceStumpGrinding},
		SupportNeeds: []SupportNeed{SupportCulverts},
	}

	assert.True(t, form.HasService(ServiceStumpGrinding))
	assert.False(t, form.HasService(ServiceDrivewayWork))
	assert.True(t, form.HasSupportNeed(SupportCulverts))
	assert.False(t, form.HasSupportNeed(SupportDitching))
}

func TestEnumValidity(t *testing.T) {
	assert.True(t, PropertyVacant.IsValid())
	assert.False(t, PropertyStatus("").IsValid())
	assert.True(t, AreaOverFive.IsValid())
	assert.False(t, AreaBucket("tenAcres").IsValid())
	assert.True(t, TerrainRolling.IsValid())
	assert.False(t, Terrain("vertical").IsValid())
	assert.True(t, AccessNone.IsValid())
	assert.False(t, Access("").IsValid())
	assert.True(t, GroundSaturated.IsValid())
	assert.False(t, GroundCondition("frozen").IsValid())
	assert.True(t, WaterwaysUnsure.IsValid())
	assert.False(t, Waterways("maybe").IsValid())
	assert.True(t, TimberMulch.IsValid())
	assert.False(t, TimberHandling("burn").IsValid())
}
