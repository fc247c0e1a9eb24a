// Package cmd - rates command
package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"bitterroot-intake/core/catalog"
	"bitterroot-intake/core/pricing"
	"bitterroot-intake/core/report"
	"bitterroot-intake/core/types"
	"bitterroot-intake/internal/errors"
)

var ratesJSON bool

// ratesCmd represents the rates command
var ratesCmd = &cobra.Command{
	Use:   "rates",
	Short: "Print the current rate sheet",
	Long: `Print the fixed pricing configuration used by the review
pipeline: base daily rate, caps, travel charges, service and timber
add-ons, and condition modifiers.`,
	RunE: runRates,
}

func init() {
	ratesCmd.Flags().BoolVar(&ratesJSON, "json", false, "emit the rate sheet as JSON")
}

func runRates(cmd *cobra.Command, args []string) error {
	sheet := pricing.Rates()

	if ratesJSON {
		out, err := json.MarshalIndent(sheet, "", "  ")
		if err != nil {
			return errors.Internal("failed to serialize rate sheet", err)
		}
		fmt.Println(string(out))
		return nil
	}

	fmt.Println("Rate sheet")
	fmt.Println()
	fmt.Printf("  Base daily rate:   %s\n", report.FormatUSD(sheet.BaseDailyRate))
	fmt.Printf("  Daily cap:         %s\n", report.FormatUSD(sheet.DailyRateCap))
	fmt.Printf("  Mobilization fee:  %s (waived at or under %s miles one-way)\n",
		report.FormatUSD(sheet.MobilizationFee), sheet.MobilizationWaiverMiles.String())
	fmt.Printf("  Mileage rate:      %s per one-way mile\n", report.FormatUSDCents(sheet.MileageRate))
	fmt.Printf("  Stump grinding:    %s per inch of average diameter\n", report.FormatUSD(sheet.StumpRatePerInch))
	fmt.Println()

	fmt.Println("Service add-ons (per day)")
	for _, svc := range types.AllServices {
		impact := sheet.ServiceRateImpacts[string(svc)]
		fmt.Printf("  %-34s %s\n", catalog.ServiceLabels[svc], report.FormatUSD(impact))
	}
	fmt.Println()

	fmt.Println("Timber handling add-ons (per day)")
	for _, method := range types.AllTimberHandling {
		impact := sheet.TimberRateImpacts[string(method)]
		fmt.Printf("  %-34s %s\n", catalog.TimberHandlingLabels[method], report.FormatUSD(impact))
	}
	fmt.Println()

	fmt.Printf("Condition modifiers (top %d stack)\n", sheet.MaxStackedModifiers)
	for _, m := range sheet.ConditionModifiers {
		percent := m.Percent.Mul(decimal.NewFromInt(100))
		fmt.Printf("  %-34s +%s%%\n", m.Label, percent.String())
	}

	return nil
}
