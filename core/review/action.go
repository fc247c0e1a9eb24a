// Package review - Action recommendation (pipeline stage 5)
package review

import (
	"bitterroot-intake/core/types"
)

// RecommendAction maps the review tier and photo presence to the
// single recommended next action. Rules are checked in tier order;
// missing photos tighten the recommendation for the lower tiers.
func RecommendAction(f *types.Form, summary *types.Summary) string {
	switch summary.Tier {
	case types.Tier3:
		return "Senior review required before response"
	case types.Tier2:
		if len(f.Photos) == 0 {
			return "Manual scope review required – request supporting photos"
		}
		return "Manual scope review before estimate"
	case types.Tier1:
		if len(f.Photos) == 0 {
			return "Request additional photos before scheduling review"
		}
	}
	return summary.TierAction
}
