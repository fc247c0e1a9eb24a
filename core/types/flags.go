// Package types - Condition flags
package types

// Flag is a derived condition token describing terrain, access,
// vegetation, compliance, or scope characteristics of a submission.
type Flag string

const (
	FlagSteepSlopeRisk         Flag = "STEEP_SLOPE_RISK"
	FlagSaturatedGround        Flag = "SATURATED_GROUND"
	FlagTimberPresent          Flag = "TIMBER_PRESENT"
	FlagBrushPlusTimber        Flag = "BRUSH_PLUS_TIMBER"
	FlagLimitedAccess          Flag = "LIMITED_ACCESS"
	FlagNoEstablishedAccess    Flag = "NO_ESTABLISHED_ACCESS"
	FlagCulvertRequired        Flag = "CULVERT_REQUIRED"
	FlagDitchingRequired       Flag = "DITCHING_REQUIRED"
	FlagBaseCompactionRequired Flag = "BASE_COMPACTION_REQUIRED"
	FlagMultiServiceScope      Flag = "MULTI_SERVICE_SCOPE"
	FlagServiceAddonsApplied   Flag = "SERVICE_ADDONS_APPLIED"
	FlagWaterwayReview         Flag = "WATERWAY_REVIEW"
	FlagTimberMulchedOnSite    Flag = "TIMBER_MULCHED_ON_SITE"
	FlagBelowMinScope          Flag = "BELOW_MIN_SCOPE"
	FlagUnsafeSlope            Flag = "UNSAFE_SLOPE"
	FlagPermitNotAcknowledged  Flag = "PERMIT_NOT_ACKNOWLEDGED"
	FlagIncompatibleAccess     Flag = "INCOMPATIBLE_ACCESS"
	FlagStandardAccess         Flag = "STANDARD_ACCESS"
	FlagNoTimber               Flag = "NO_TIMBER"
	FlagFlatOrRolling          Flag = "FLAT_OR_ROLLING"
	FlagAddressApproximate     Flag = "ADDRESS_APPROXIMATE"
	FlagDailyCapReached        Flag = "DAILY_CAP_REACHED"
	FlagBundledScope           Flag = "BUNDLED_SCOPE"
)

// String returns the string representation
func (f Flag) String() string {
	return string(f)
}

// FlagSet is an ordered, duplicate-free collection of flags.
// Insertion order follows the fixed derivation sequence; adding a flag
// that is already present is a no-op. The set is a bag of independent
// observations, not a state machine with exclusive states.
type FlagSet struct {
	order []Flag
	seen  map[Flag]struct{}
}

// NewFlagSet creates a flag set containing the given flags in order
func NewFlagSet(flags ...Flag) *FlagSet {
	s := &FlagSet{seen: make(map[Flag]struct{})}
	for _, f := range flags {
		s.Add(f)
	}
	return s
}

// Add inserts a flag unless it is already present
func (s *FlagSet) Add(f Flag) {
	if _, ok := s.seen[f]; ok {
		return
	}
	s.seen[f] = struct{}{}
	s.order = append(s.order, f)
}

// AddIf inserts a flag when cond holds
func (s *FlagSet) AddIf(cond bool, f Flag) {
	if cond {
		s.Add(f)
	}
}

// Has reports whether the flag is present
func (s *FlagSet) Has(f Flag) bool {
	_, ok := s.seen[f]
	return ok
}

// Len returns the number of flags
func (s *FlagSet) Len() int {
	return len(s.order)
}

// Values returns the flags in insertion order. The returned slice is a
// copy; mutating it does not affect the set.
func (s *FlagSet) Values() []Flag {
	out := make([]Flag, len(s.order))
	copy(out, s.order)
	return out
}

// Strings returns the flags as strings in insertion order
func (s *FlagSet) Strings() []string {
	out := make([]string, len(s.order))
	for i, f := range s.order {
		out[i] = string(f)
	}
	return out
}
