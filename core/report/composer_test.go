package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bitterroot-intake/core/flags"
	"bitterroot-intake/core/pricing"
	"bitterroot-intake/core/review"
	"bitterroot-intake/core/types"
)

func reportForm() *types.Form {
	return &types.Form{
		FullName:        "Dana Whitfield",
		Phone:           "406-555-0144",
		Email:           "dana@example.com",
		PropertyStatus:  types.PropertyVacant,
		ProjectAddress:  "212 Creekside Ln",
		City:            "Stevensville",
		County:          "Ravalli",
		DistanceMiles:   10,
		Area:            types.AreaOneToThree,
		Services:        []types.Service{types.ServiceForestryMulching},
		Vegetation:      []types.Vegetation{types.VegetationLightBrush},
		Terrain:         types.TerrainFlat,
		Access:          types.AccessRoad,
		GroundCondition: types.GroundDry,
		Waterways:       types.WaterwaysNo,
		PermitAck:       true,
		Photos: []types.PhotoRef{
			{Name: "north.jpg"},
			{Name: "south.jpg"},
		},
	}
}

func compose(f *types.Form) string {
	set := flags.Derive(f)
	summary := pricing.Price(f, set)
	action := review.RecommendAction(f, summary)
	return Compose(f, set.Values(), summary, action)
}

func TestReportSectionOrder(t *testing.T) {
	text := compose(reportForm())

	sections := []string{
		"Subject: New Estimate Request – Internal Review",
		"📞 Contact Information",
		"📍 Project Location",
		"🧾 Project Overview",
		"🌿 Vegetation & Terrain",
		"🌲 Timber Handling",
		"🚧 Access & Ground Conditions",
		"🌊 Environmental / Permits",
		"📎 Site Photos",
		"🛠️ Services & Production Model",
		"🚚 Mobilization & Mileage",
		"🚩 Internal Flags",
		"💰 Pricing Tier & Priority",
		"🔍 Recommended Next Action",
		"This message is generated automatically.",
	}

	last := -1
	for _, section := range sections {
		idx := strings.Index(text, section)
		require.GreaterOrEqual(t, idx, 0, "missing section %q", section)
		assert.Greater(t, idx, last, "section %q out of order", section)
		last = idx
	}
}

func TestReportBaselineLines(t *testing.T) {
	text := compose(reportForm())

	assert.Contains(t, text, "Name: Dana Whitfield")
	assert.Contains(t, text, "Address / Parcel: 212 Creekside Ln")
	assert.Contains(t, text, "Location Precision: Exact")
	assert.Contains(t, text, "Property Status: Vacant land")
	assert.Contains(t, text, "Approximate Area: 1 – 3 acres")
	assert.Contains(t, text, "Requested Services: Forestry mulching")
	assert.Contains(t, text, "Light brush & grass")
	assert.Contains(t, text, "Terrain Conditions: Mostly flat")
	assert.Contains(t, text, "Timber Present: No")
	assert.Contains(t, text, "Handling Method: Not applicable")
	assert.Contains(t, text, "Timber diameter measured at ~4 ft above ground level (DBH).")
	assert.Contains(t, text, "Access: Existing road or driveway access")
	assert.Contains(t, text, "Ground Condition: Dry / firm ground")
	assert.Contains(t, text, "Additional Requirements:\nNone specified")
	assert.Contains(t, text, "Waterways or Sensitive Areas: No")
	assert.Contains(t, text, "Permit Responsibility: Acknowledged by owner")
	assert.Contains(t, text, "2 photos uploaded")
	assert.Contains(t, text, "Base Rate Anchor: $2,500")
	assert.Contains(t, text, "Service Add-ons:\n- None beyond baseline CTL day")
	assert.Contains(t, text, "Condition Modifiers:\n- None applied")
	assert.Contains(t, text, "Daily Total: $2,500.00")
	assert.Contains(t, text, "Bundled Scope: No")
	assert.Contains(t, text, "Distance from Stevensville, MT: 10.0 miles one-way")
	assert.Contains(t, text, "Mobilization Fee: Waived (<=15 miles)")
	assert.Contains(t, text, "Mileage Cost: $35.00")
	assert.Contains(t, text, "Tier: Tier 1 – Standard (TIER_1)")
	assert.Contains(t, text, "Scheduling Priority: Priority A – Fast Track")
	assert.Contains(t, text, "Proceed to scheduling review")
	assert.True(t, strings.HasSuffix(text,
		"Review scope, access, terrain, and equipment suitability before responding."))
}

func TestReportCapAnnotation(t *testing.T) {
	form := reportForm()
	form.Services = []types.Service{
		types.ServiceForestryMulching,
		types.ServiceSelectiveClearing,
		types.ServiceCulvertInstall,
		types.ServiceDrivewayWork,
	}
	form.GroundCondition = types.GroundSaturated

	text := compose(form)

	assert.Contains(t, text, "Daily Total (capped at $5,000): $5,000.00")
	assert.Contains(t, text, "Bundled Scope: Yes – daily cap enforced with bundled scope")
	assert.Contains(t, text, "- Saturated or soft ground (+25%)")
}

func TestReportTimberAndAddOnLines(t *testing.T) {
	form := reportForm()
	form.Vegetation = []types.Vegetation{types.VegetationLightBrush, types.VegetationBrushTimber}
	form.TimberHandling = types.TimberRemove
	form.Services = []types.Service{types.ServiceForestryMulching, types.ServiceStumpGrinding}
	form.StumpCount = 10
	form.AvgStumpDiameter = 12

	text := compose(form)

	assert.Contains(t, text, "Timber Present: Yes")
	assert.Contains(t, text, "Handling Method: Removed from site (sub-8\" mulched; larger material hauled)")
	assert.Contains(t, text, `- Stump grinding: $1,080.00 (10 stumps @ ~12")`)
	assert.Contains(t, text, "- Timber handling – Removed from site: $750.00")
}

func TestReportMissingOptionalFields(t *testing.T) {
	form := reportForm()
	form.ProjectAddress = ""
	form.Photos = nil

	text := compose(form)

	assert.Contains(t, text, "Address / Parcel: Not provided (city-level only)")
	assert.Contains(t, text, "Location Precision: Approximate – flagged ADDRESS_APPROXIMATE")
	assert.Contains(t, text, "No photos provided")
	assert.Contains(t, text, "ADDRESS_APPROXIMATE")
}

func TestReportPhotoPluralization(t *testing.T) {
	form := reportForm()
	form.Photos = form.Photos[:1]
	assert.Contains(t, compose(form), "1 photo uploaded")
}

func TestRenderMatchesCompose(t *testing.T) {
	form := reportForm()
	set := flags.Derive(form)
	summary := pricing.Price(form, set)
	action := review.RecommendAction(form, summary)

	var b strings.Builder
	require.NoError(t, Render(&b, form, set.Values(), summary, action))
	assert.Equal(t, Compose(form, set.Values(), summary, action), b.String())
}
