// ABOUTME: Leads command for the terra CLI
// ABOUTME: Lists stored quote requests and inquiries for sales staff

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
	"time"

	"github.com/Atlas00000/terra-client/backend/models"
	"github.com/Atlas00000/terra-client/cli/internal/client"
	"github.com/spf13/cobra"
)

var (
	leadsKind  string
	leadsLimit int
	leadsToken string
)

var leadsCmd = &cobra.Command{
	Use:   "leads",
	Short: "List stored quote requests and inquiries",
	Long: `List submissions stored by the backend, newest first.

Requires the staff token configured on the backend as LEADS_API_TOKEN, passed with
--token or the TERRA_LEADS_TOKEN environment variable.

Exit codes:
  0 - Listed successfully
  2 - Error (connectivity, authentication, or invalid flags)`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runLeads(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(leadsCmd)
	leadsCmd.Flags().StringVar(&leadsKind, "kind", "", "Only list this kind (rfq or inquiry)")
	leadsCmd.Flags().IntVar(&leadsLimit, "limit", 20, "Maximum number of submissions (1-500)")
	leadsCmd.Flags().StringVar(&leadsToken, "token", "", "Staff token (overrides TERRA_LEADS_TOKEN)")
}

// getLeadsToken returns the token from flag or env
func getLeadsToken() string {
	if leadsToken != "" {
		return leadsToken
	}
	return os.Getenv("TERRA_LEADS_TOKEN")
}

// runLeads fetches and prints stored submissions and returns exit code
func runLeads(ctx context.Context, w io.Writer) int {
	kind := models.InquiryKind(strings.TrimSpace(leadsKind))
	if kind != "" && !kind.Valid() {
		fmt.Fprintln(w, "Error: --kind must be one of: rfq, inquiry")
		return 2
	}
	if leadsLimit < 1 || leadsLimit > 500 {
		fmt.Fprintln(w, "Error: --limit must be between 1 and 500")
		return 2
	}
	token := getLeadsToken()
	if token == "" {
		fmt.Fprintln(w, "Error: a staff token is required (--token or TERRA_LEADS_TOKEN)")
		return 2
	}

	leads, err := client.New(GetAPIURL()).ListLeads(ctx, token, kind, leadsLimit)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	if IsJSONOutput() {
		data, _ := json.MarshalIndent(leads, "", "  ")
		fmt.Fprintln(w, string(data))
	} else {
		fmt.Fprintln(w, formatLeadsHuman(leads))
	}
	return 0
}

// formatLeadsHuman prints one line per submission with its contact and subject
func formatLeadsHuman(leads *client.LeadList) string {
	if leads.Count == 0 {
		return "No submissions found."
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%-36s %-8s %-17s %-28s %s\n", "ID", "KIND", "CREATED", "CONTACT", "SUBJECT")
	for _, lead := range leads.Leads {
		contact, subject := summarizePayload(lead.Payload)
		fmt.Fprintf(&sb, "%-36s %-8s %-17s %-28s %s\n",
			lead.ID, lead.Kind, lead.CreatedAt.Local().Format(time.DateOnly+" 15:04"), contact, subject)
	}
	fmt.Fprintf(&sb, "\n%d submission(s)", leads.Count)
	return sb.String()
}

// summarizePayload pulls the contact and a short subject out of a free-form payload
func summarizePayload(raw json.RawMessage) (contact, subject string) {
	var p struct {
		Name          string                     `json:"name"`
		Email         string                     `json:"email"`
		Message       string                     `json:"message"`
		Configuration *models.ConfigurationInput `json:"configuration"`
	}
	if err := json.Unmarshal(raw, &p); err != nil {
		return "-", "(unreadable payload)"
	}

	contact = p.Email
	if contact == "" {
		contact = p.Name
	}
	if contact == "" {
		contact = "-"
	}

	switch {
	case p.Configuration != nil && p.Configuration.FacilityType != "":
		subject = fmt.Sprintf("%s / %s / %s",
			p.Configuration.FacilityType, p.Configuration.ThreatLevel, p.Configuration.CoverageArea)
	case p.Message != "":
		subject = truncateRunes(strings.Join(strings.Fields(p.Message), " "), 40)
	default:
		subject = "-"
	}
	return contact, subject
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
