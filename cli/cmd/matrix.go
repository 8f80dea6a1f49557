// ABOUTME: Matrix command for the terra CLI
// ABOUTME: Summarizes the recommendation for every configuration the backend supports

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

	"github.com/Atlas00000/terra-client/cli/internal/client"
	"github.com/spf13/cobra"
)

var invalidOnly bool

var matrixCmd = &cobra.Command{
	Use:   "matrix",
	Short: "Show the recommendation matrix",
	Long: `Show a one-line summary of the recommendation for every facility, threat, and
coverage combination.

Exit codes:
  0 - Every configuration produced a valid recommendation
  1 - One or more configurations are invalid
  2 - Error (connectivity)`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runMatrix(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(matrixCmd)
	matrixCmd.Flags().BoolVar(&invalidOnly, "invalid-only", false, "Only list configurations that fail validation")
}

// runMatrix fetches and prints the matrix and returns exit code
func runMatrix(ctx context.Context, w io.Writer) int {
	c := client.New(GetAPIURL())

	resp, err := c.Matrix(ctx)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	if invalidOnly {
		filtered := resp.Entries[:0:0]
		for _, e := range resp.Entries {
			if !e.IsValid {
				filtered = append(filtered, e)
			}
		}
		resp.Entries = filtered
	}

	if IsJSONOutput() {
		data, _ := json.MarshalIndent(resp, "", "  ")
		fmt.Fprintln(w, string(data))
	} else {
		fmt.Fprintln(w, formatMatrixHuman(resp))
	}

	if resp.ValidCount < resp.Total {
		return 1
	}
	return 0
}

// formatMatrixHuman formats the matrix as an aligned table
func formatMatrixHuman(resp *client.MatrixResponse) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "%-20s %-24s %-10s %5s %5s %-7s %-7s %s\n",
		"FACILITY", "THREAT", "COVERAGE", "UNITS", "SCORE", "SCORE~", "EXPLN~", "VALID")
	for _, e := range resp.Entries {
		valid := "✓"
		if !e.IsValid {
			valid = "✗"
		}
		fmt.Fprintf(&sb, "%-20s %-24s %-10s %5d %5d %-7s %-7s %s\n",
			e.FacilityType, e.ThreatLevel, e.CoverageArea, e.TotalUnits, e.OverallScore,
			e.ScoreConfidence, e.ExplainConfidence, valid)
	}

	fmt.Fprintf(&sb, "\n%d of %d configuration(s) valid", resp.ValidCount, resp.Total)
	if resp.GeneratedAt != "" {
		fmt.Fprintf(&sb, " (generated %s)", resp.GeneratedAt)
	}
	return sb.String()
}
