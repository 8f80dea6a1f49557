// ABOUTME: Health command for the terra CLI
// ABOUTME: Checks backend connectivity and service status

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/Atlas00000/terra-client/cli/internal/client"
	"github.com/spf13/cobra"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check backend connectivity",
	Long:  `Check connectivity to the configurator backend and verify service status.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runHealth(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(healthCmd)
}

// runHealth executes the health check and returns exit code
func runHealth(ctx context.Context, w io.Writer) int {
	url := GetAPIURL()
	c := client.New(url)

	resp, err := c.Health(ctx)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	if IsJSONOutput() {
		fmt.Fprintln(w, formatHealthJSON(url, resp))
	} else {
		fmt.Fprintln(w, formatHealthHuman(url, resp))
	}

	if resp.Status != "ok" {
		return 1
	}
	return 0
}

// formatHealthHuman formats health response for human readability
func formatHealthHuman(url string, resp *client.HealthResponse) string {
	return fmt.Sprintf(`Backend:       %s
Status:        %s
Engine:        %s
Inquiry Store: %s
Tuning:        %s
Catalog:       %d products, %d facilities
Matrix Cached: %t`, url, resp.Status, resp.Engine, resp.InquiryStore, resp.TuningSource,
		resp.ProductCount, resp.FacilityCount, resp.MatrixCached)
}

// formatHealthJSON formats health response as JSON
func formatHealthJSON(url string, resp *client.HealthResponse) string {
	output := map[string]interface{}{
		"backend":        url,
		"status":         resp.Status,
		"engine":         resp.Engine,
		"inquiry_store":  resp.InquiryStore,
		"tuning_source":  resp.TuningSource,
		"product_count":  resp.ProductCount,
		"facility_count": resp.FacilityCount,
		"matrix_cached":  resp.MatrixCached,
	}
	data, _ := json.MarshalIndent(output, "", "  ")
	return string(data)
}
