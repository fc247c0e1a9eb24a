// Package engine provides the primary submission-review API.
// All other interfaces (CLI, HTTP) are thin wrappers around Engine.
//
// The pipeline is strictly ordered: validate, derive flags, hard-stop
// gate, price, recommend, compose. Pricing only runs when validation
// passes and the gate returns no rejection. Every stage is a pure
// function of the snapshot, so concurrent reviews need no locking.
package engine

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"bitterroot-intake/core/catalog"
	"bitterroot-intake/core/flags"
	"bitterroot-intake/core/intake"
	"bitterroot-intake/core/policy"
	"bitterroot-intake/core/pricing"
	"bitterroot-intake/core/report"
	"bitterroot-intake/core/review"
	"bitterroot-intake/core/types"
	"bitterroot-intake/internal/logging"
)

// Outcome classifies how a submission left the pipeline
type Outcome string

const (
	// OutcomeAccepted means the request passed validation and policy
	OutcomeAccepted Outcome = "accepted"

	// OutcomeValidationFailed means a required field is missing or malformed
	OutcomeValidationFailed Outcome = "validation_failed"

	// OutcomeDeclined means a hard-stop policy rejected the request
	OutcomeDeclined Outcome = "declined"
)

// Result is the complete output of one pipeline pass
type Result struct {
	// SubmissionID identifies this pass
	SubmissionID string `json:"submissionId"`

	// Outcome classifies the pass
	Outcome Outcome `json:"outcome"`

	// Error is the first validation failure, for validation_failed
	Error string `json:"error,omitempty"`

	// Failures is the full ordered validation failure list
	Failures []string `json:"failures,omitempty"`

	// Rejection is the decline message, for declined
	Rejection string `json:"rejection,omitempty"`

	// Flags is the final enriched flag list, for accepted
	Flags []types.Flag `json:"flags,omitempty"`

	// Pricing is the computed pricing summary, for accepted
	Pricing *types.Summary `json:"pricing,omitempty"`

	// Action is the recommended next action, for accepted
	Action string `json:"action,omitempty"`

	// Report is the composed internal review report, for accepted
	Report string `json:"report,omitempty"`
}

// Engine runs the quote-intake review pipeline
type Engine struct{}

// New creates an engine. The catalog is validated once here; a broken
// rate or label table is a programmer error and panics.
func New() *Engine {
	catalog.MustValidate()
	return &Engine{}
}

// Review runs one form snapshot through the full pipeline
func (e *Engine) Review(form *types.Form) *Result {
	result := &Result{SubmissionID: uuid.NewString()}

	if failures := intake.Validate(form); len(failures) > 0 {
		result.Outcome = OutcomeValidationFailed
		result.Error = failures[0]
		result.Failures = failures
		logging.Info("submission rejected by validation",
			zap.String("submission_id", result.SubmissionID),
			zap.Int("failures", len(failures)))
		return result
	}

	flagSet := flags.Derive(form)

	if msg, rejected := policy.CheckHardStop(flagSet); rejected {
		result.Outcome = OutcomeDeclined
		result.Rejection = msg
		logging.Info("submission declined by hard stop",
			zap.String("submission_id", result.SubmissionID),
			zap.String("message", msg))
		return result
	}

	summary := pricing.Price(form, flagSet)

	// Post-pricing enrichment. SERVICE_ADDONS_APPLIED is usually
	// already present from derivation; the cap flags only exist here.
	flagSet.AddIf(summary.ServiceImpactTotal.IsPositive(), types.FlagServiceAddonsApplied)
	if summary.CapApplied {
		flagSet.Add(types.FlagDailyCapReached)
		flagSet.Add(types.FlagBundledScope)
	}

	action := review.RecommendAction(form, summary)
	finalFlags := flagSet.Values()

	result.Outcome = OutcomeAccepted
	result.Flags = finalFlags
	result.Pricing = summary
	result.Action = action
	result.Report = report.Compose(form, finalFlags, summary, action)

	logging.Info("submission reviewed",
		zap.String("submission_id", result.SubmissionID),
		zap.String("tier", summary.Tier.String()),
		zap.String("daily_total", summary.DailyTotal.StringFixed(2)),
		zap.Bool("cap_applied", summary.CapApplied))
	return result
}
