// Package report - Internal review report (pipeline stage 6)
// Renders the computed submission data into the fixed-schema text
// report reviewers depend on. Section order, field names, and number
// formatting are the interface contract; change nothing casually.
package report

import (
	"fmt"
	"io"
	"strings"

	"bitterroot-intake/core/catalog"
	"bitterroot-intake/core/types"
)

// Compose renders the internal review report as a single string
func Compose(f *types.Form, flags []types.Flag, summary *types.Summary, action string) string {
	var b strings.Builder
	// strings.Builder never returns a write error
	_ = Render(&b, f, flags, summary, action)
	return b.String()
}

// Render writes the internal review report to w
func Render(w io.Writer, f *types.Form, flags []types.Flag, summary *types.Summary, action string) error {
	contactName := orNotProvided(f.FullName)
	contactPhone := orNotProvided(f.Phone)
	contactEmail := orNotProvided(f.Email)
	address := strings.TrimSpace(f.ProjectAddress)

	addressLine := address
	precision := "Exact"
	if address == "" {
		addressLine = "Not provided (city-level only)"
		precision = "Approximate – flagged ADDRESS_APPROXIMATE"
	}

	timberPresent := "No"
	if f.RequiresTimberHandling() {
		timberPresent = "Yes"
	}

	capSuffix := ""
	capNote := "No"
	if summary.CapApplied {
		capSuffix = " (capped at $5,000)"
		capNote = "Yes – daily cap enforced with bundled scope"
	}

	distanceDisplay := "Not specified"
	if !summary.DistanceMiles.IsZero() {
		distanceDisplay = summary.DistanceMiles.StringFixed(1) + " miles one-way"
	}

	mobilizationText := "Waived (<=15 miles)"
	if summary.MobilizationFee.IsPositive() {
		mobilizationText = FormatUSD(summary.MobilizationFee)
	}

	permitStatus := "Not acknowledged"
	if f.PermitAck {
		permitStatus = "Acknowledged by owner"
	}

	flagList := "None"
	if len(flags) > 0 {
		tokens := make([]string, len(flags))
		for i, fl := range flags {
			tokens[i] = string(fl)
		}
		flagList = strings.Join(tokens, ", ")
	}

	var b strings.Builder

	b.WriteString("Subject: New Estimate Request – Internal Review\n\n")

	b.WriteString("📞 Contact Information\n")
	fmt.Fprintf(&b, "Name: %s\n", contactName)
	fmt.Fprintf(&b, "Phone: %s\n", contactPhone)
	fmt.Fprintf(&b, "Email: %s\n\n", contactEmail)

	b.WriteString("📍 Project Location\n")
	fmt.Fprintf(&b, "Address / Parcel: %s\n", addressLine)
	fmt.Fprintf(&b, "City / Nearest Community: %s\n", orNotProvided(f.City))
	fmt.Fprintf(&b, "County: %s\n", orNotProvided(f.County))
	fmt.Fprintf(&b, "Location Precision: %s\n\n", precision)

	b.WriteString("🧾 Project Overview\n")
	fmt.Fprintf(&b, "Property Status: %s\n", label(catalog.PropertyStatusLabels, f.PropertyStatus))
	fmt.Fprintf(&b, "Approximate Area: %s\n", label(catalog.AreaLabels, f.Area))
	fmt.Fprintf(&b, "Requested Services: %s\n\n", selectionList(f.Services, catalog.ServiceLabels))

	b.WriteString("🌿 Vegetation & Terrain\n")
	b.WriteString("Vegetation Identified:\n")
	fmt.Fprintf(&b, "%s\n\n", selectionList(f.Vegetation, catalog.VegetationLabels))
	fmt.Fprintf(&b, "Terrain Conditions: %s\n\n", label(catalog.TerrainLabels, f.Terrain))

	b.WriteString("🌲 Timber Handling\n")
	fmt.Fprintf(&b, "Timber Present: %s\n", timberPresent)
	fmt.Fprintf(&b, "Handling Method: %s\n", timberMethod(f))
	b.WriteString("Standard Applied:\n")
	b.WriteString("Timber diameter measured at ~4 ft above ground level (DBH).\n\n")

	b.WriteString("🚧 Access & Ground Conditions\n")
	fmt.Fprintf(&b, "Access: %s\n", label(catalog.AccessLabels, f.Access))
	fmt.Fprintf(&b, "Ground Condition: %s\n", label(catalog.GroundConditionLabels, f.GroundCondition))
	b.WriteString("Additional Requirements:\n")
	fmt.Fprintf(&b, "%s\n\n", selectionList(f.SupportNeeds, catalog.SupportNeedLabels))

	b.WriteString("🌊 Environmental / Permits\n")
	fmt.Fprintf(&b, "Waterways or Sensitive Areas: %s\n", label(catalog.WaterwaysLabels, f.Waterways))
	fmt.Fprintf(&b, "Permit Responsibility: %s\n\n", permitStatus)

	b.WriteString("📎 Site Photos\n")
	fmt.Fprintf(&b, "%s\n\n", photoStatus(len(f.Photos)))

	b.WriteString("🛠️ Services & Production Model\n")
	fmt.Fprintf(&b, "Base Rate Anchor: %s\n", FormatUSD(summary.BaseRate))
	b.WriteString("Service Add-ons:\n")
	fmt.Fprintf(&b, "%s\n\n", impactLines(summary.ServiceImpacts))
	b.WriteString("Condition Modifiers:\n")
	fmt.Fprintf(&b, "%s\n\n", modifierLines(summary.ModifiersApplied))
	fmt.Fprintf(&b, "Daily Total%s: %s\n", capSuffix, FormatUSDCents(summary.DailyTotal))
	fmt.Fprintf(&b, "Bundled Scope: %s\n\n", capNote)

	b.WriteString("🚚 Mobilization & Mileage\n")
	fmt.Fprintf(&b, "Distance from Stevensville, MT: %s\n", distanceDisplay)
	fmt.Fprintf(&b, "Mobilization Fee: %s\n", mobilizationText)
	fmt.Fprintf(&b, "Mileage Cost: %s\n\n", FormatUSDCents(summary.MileageCost))

	b.WriteString("🚩 Internal Flags\n")
	fmt.Fprintf(&b, "%s\n\n", flagList)

	b.WriteString("💰 Pricing Tier & Priority\n")
	fmt.Fprintf(&b, "Tier: %s (%s)\n", summary.TierLabel, summary.Tier)
	fmt.Fprintf(&b, "Scheduling Priority: %s\n", summary.SchedulingPriority)
	fmt.Fprintf(&b, "Assigned Action: %s\n\n", summary.TierAction)

	b.WriteString("🔍 Recommended Next Action\n")
	fmt.Fprintf(&b, "%s\n\n", action)

	b.WriteString("This message is generated automatically.\n")
	b.WriteString("Review scope, access, terrain, and equipment suitability before responding.")

	_, err := io.WriteString(w, b.String())
	return err
}

// timberMethod renders the handling method line with the per-method
// production note.
func timberMethod(f *types.Form) string {
	if f.TimberHandling != "" {
		method := label(catalog.TimberHandlingLabels, f.TimberHandling)
		switch f.TimberHandling {
		case types.TimberRemove:
			method += " (sub-8\" mulched; larger material hauled)"
		case types.TimberStack:
			method += " (owner-managed disposal)"
		case types.TimberMulch:
			method += " (processed on site; reduced production)"
		}
		return method
	}
	if f.RequiresTimberHandling() {
		return "Selection pending"
	}
	return "Not applicable"
}

func impactLines(impacts []types.ServiceImpact) string {
	if len(impacts) == 0 {
		return "- None beyond baseline CTL day"
	}
	lines := make([]string, len(impacts))
	for i, impact := range impacts {
		detail := ""
		if impact.Detail != "" {
			detail = " (" + impact.Detail + ")"
		}
		lines[i] = fmt.Sprintf("- %s: %s%s", impact.Label, FormatUSDCents(impact.Amount), detail)
	}
	return strings.Join(lines, "\n")
}

func modifierLines(modifiers []types.AppliedModifier) string {
	if len(modifiers) == 0 {
		return "- None applied"
	}
	lines := make([]string, len(modifiers))
	for i, m := range modifiers {
		lines[i] = "- " + m.Label
	}
	return strings.Join(lines, "\n")
}

func photoStatus(count int) string {
	switch count {
	case 0:
		return "No photos provided"
	case 1:
		return "1 photo uploaded"
	default:
		return fmt.Sprintf("%d photos uploaded", count)
	}
}

func orNotProvided(s string) string {
	if v := strings.TrimSpace(s); v != "" {
		return v
	}
	return "Not provided"
}

// label looks up a display label, falling back to "Not specified" for
// unset or unknown values.
func label[K comparable](m map[K]string, key K) string {
	if v, ok := m[key]; ok {
		return v
	}
	return "Not specified"
}

// labeled constrains catalog keys: comparable string-backed enums
type labeled interface {
	comparable
	fmt.Stringer
}

// selectionList renders a multi-select as a comma-joined label list
func selectionList[K labeled](values []K, m map[K]string) string {
	if len(values) == 0 {
		return "None specified"
	}
	parts := make([]string, len(values))
	for i, v := range values {
		if l, ok := m[v]; ok {
			parts[i] = l
		} else {
			parts[i] = v.String()
		}
	}
	return strings.Join(parts, ", ")
}
