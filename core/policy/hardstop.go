// Package policy - Hard-stop gate (pipeline stage 3)
// A hard stop declines a request outright regardless of price. The
// gate runs strictly before any pricing computation.
package policy

import (
	"bitterroot-intake/core/catalog"
	"bitterroot-intake/core/types"
)

// CheckHardStop scans the flag set against the fixed hard-stop
// priority list. It returns the decline message for the first matching
// flag, or ("", false) when the request passes the gate. When several
// hard-stop conditions hold at once, only the earliest-priority
// message is ever surfaced.
func CheckHardStop(flags *types.FlagSet) (string, bool) {
	for _, flag := range catalog.HardStopOrder {
		if flags.Has(flag) {
			if msg, ok := catalog.HardStopMessages[flag]; ok {
				return msg, true
			}
			return catalog.GenericDeclineMessage, true
		}
	}
	return "", false
}
