// ABOUTME: Recommend command for the terra CLI
// ABOUTME: Fetches a product stack recommendation for one configuration

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/Atlas00000/terra-client/backend/models"
	"github.com/Atlas00000/terra-client/cli/internal/client"
	"github.com/spf13/cobra"
)

var (
	facilityFlag string
	threatFlag   string
	coverageFlag string
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Recommend a product stack",
	Long: `Recommend a product stack for a facility type, threat level, and coverage area.

Exit codes:
  0 - Recommendation is valid
  1 - Recommendation has validation errors
  2 - Error (connectivity, invalid input)`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runRecommend(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(recommendCmd)
	addSelectionFlags(recommendCmd)
}

// addSelectionFlags registers the three configuration flags on cmd
func addSelectionFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&facilityFlag, "facility", "", "Facility type (e.g. power-plant, mining)")
	cmd.Flags().StringVar(&threatFlag, "threat", "", "Threat level (e.g. rapid-response, multi-threat)")
	cmd.Flags().StringVar(&coverageFlag, "coverage", "", "Coverage area (0-5km, 5-15km, 15-50km, 50km-plus)")
}

// runRecommend fetches and prints a recommendation and returns exit code
func runRecommend(ctx context.Context, w io.Writer) int {
	input, err := parseSelection(facilityFlag, threatFlag, coverageFlag)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	c := client.New(GetAPIURL())
	rec, err := c.Recommend(ctx, input)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	if IsJSONOutput() {
		fmt.Fprintln(w, formatRecommendationJSON(rec))
	} else {
		fmt.Fprintln(w, formatRecommendationHuman(rec))
	}

	if rec.Validation != nil && !rec.Validation.IsValid {
		return 1
	}
	return 0
}

// parseSelection checks the flag values against the known enums before any request is made
func parseSelection(facility, threat, coverage string) (client.ConfigurationInput, error) {
	input := client.ConfigurationInput{
		FacilityType: models.FacilityType(facility),
		ThreatLevel:  models.ThreatLevel(threat),
		CoverageArea: models.CoverageArea(coverage),
	}

	if !input.FacilityType.Valid() {
		return input, fmt.Errorf("--facility must be one of: %s", joinValues(models.AllFacilityTypes))
	}
	if !input.ThreatLevel.Valid() {
		return input, fmt.Errorf("--threat must be one of: %s", joinValues(models.AllThreatLevels))
	}
	if !input.CoverageArea.Valid() {
		return input, fmt.Errorf("--coverage must be one of: %s", joinValues(models.AllCoverageAreas))
	}
	return input, nil
}

func joinValues[T ~string](values []T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = string(v)
	}
	return strings.Join(parts, ", ")
}

// formatRecommendationHuman formats a recommendation for human readability
func formatRecommendationHuman(rec *client.ProductRecommendation) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Configuration: %s / %s / %s (%.1f km)\n",
		rec.FacilityType, rec.ThreatLevel, rec.CoverageArea, rec.RequiredCoverageKm)
	if rec.Description != "" {
		fmt.Fprintf(&sb, "%s\n", rec.Description)
	}

	sb.WriteString("\nProducts:\n")
	for _, p := range rec.Products {
		fmt.Fprintf(&sb, "  %-10s x%-3d %s\n", p.Name, p.Quantity, p.Capability)
	}

	if len(rec.ResponseTimes) > 0 {
		sb.WriteString("\nResponse times:\n")
		for _, rt := range rec.ResponseTimes {
			fmt.Fprintf(&sb, "  %-10s %s\n", rt.Product, rt.Time)
		}
	}

	if s := rec.Score; s != nil {
		fmt.Fprintf(&sb, "\nScore: %d/100 (%s confidence)\n", s.Overall, s.Confidence)
		fmt.Fprintf(&sb, "  Coverage %d  Threat %d  Redundancy %d  Cost %d\n",
			s.Coverage, s.ThreatAlignment, s.Redundancy, s.Cost)
	}

	if v := rec.Validation; v != nil {
		for _, e := range v.Errors {
			fmt.Fprintf(&sb, "✗ %s\n", e)
		}
		for _, warn := range v.Warnings {
			fmt.Fprintf(&sb, "! %s\n", warn)
		}
	}

	if e := rec.Explanation; e != nil {
		for _, gap := range e.CoverageGaps {
			fmt.Fprintf(&sb, "Gap: %s\n", gap)
		}
		if e.Summary != "" {
			fmt.Fprintf(&sb, "\n%s\n", e.Summary)
		}
	}

	if rec.Validation != nil && !rec.Validation.IsValid {
		fmt.Fprintf(&sb, "\nINVALID: %d validation error(s)", len(rec.Validation.Errors))
	} else {
		sb.WriteString("\nVALID: recommendation passed validation")
	}

	return sb.String()
}

// formatRecommendationJSON formats a recommendation as JSON
func formatRecommendationJSON(rec *client.ProductRecommendation) string {
	data, _ := json.MarshalIndent(rec, "", "  ")
	return string(data)
}
