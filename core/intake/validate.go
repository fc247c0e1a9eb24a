// Package intake - Input validation (pipeline stage 1)
//
// Checks run in a fixed declared order and every failure is collected,
// but callers surface only the first message to the user. The full
// ordered list stays available for review tooling and tests; the
// ordering decides which message a user sees when several fields are
// missing, so it is part of the behavioral contract.
package intake

import (
	"regexp"
	"strings"

	"bitterroot-intake/core/types"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Validate checks a form snapshot against the required-field and
// conditional-field rules and returns the ordered failure list. An
// empty result means the form is valid.
func Validate(f *types.Form) []string {
	var errs []string
	fail := func(msg string) {
		errs = append(errs, msg)
	}

	if strings.TrimSpace(f.FullName) == "" {
		fail("Enter the full name for the primary contact.")
	}
	if strings.TrimSpace(f.Phone) == "" {
		fail("Enter the best phone number for the project contact.")
	}
	if email := strings.TrimSpace(f.Email); email == "" || !emailPattern.MatchString(email) {
		fail("Enter a valid email address for the project contact.")
	}
	if !f.PropertyStatus.IsValid() {
		fail("Select a property status.")
	}
	if strings.TrimSpace(f.City) == "" {
		fail("Enter the project city.")
	}
	if strings.TrimSpace(f.County) == "" {
		fail("Enter the project county.")
	}
	if f.DistanceMiles <= 0 {
		fail("Enter the one-way distance from Stevensville, MT.")
	}
	if !f.Area.IsValid() {
		fail("Select an approximate area.")
	}
	if len(f.Services) == 0 {
		fail("Select at least one requested service.")
	}
	if len(f.Vegetation) == 0 {
		fail("Select at least one vegetation type.")
	}
	if !f.Terrain.IsValid() {
		fail("Select a terrain profile.")
	}
	if !f.GroundCondition.IsValid() {
		fail("Select current ground conditions.")
	}
	if !f.Access.IsValid() {
		fail("Select site access conditions.")
	}
	if !f.Waterways.IsValid() {
		fail("Indicate waterways or sensitive areas.")
	}
	if f.RequiresTimberHandling() && !f.TimberHandling.IsValid() {
		fail("Choose a timber handling preference.")
	}
	if f.HasService(types.ServiceStumpGrinding) {
		if f.StumpCount <= 0 {
			fail("Enter the approximate number of stumps for grinding.")
		}
		if f.AvgStumpDiameter <= 0 {
			fail("Enter the average stump diameter (inches) for grinding.")
		}
	}
	if !f.PermitAck {
		fail("Permit acknowledgment is required.")
	}

	return errs
}
