// ABOUTME: RFQ command for the terra CLI
// ABOUTME: Submits a request for quotation, or a general inquiry, to the backend

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/mail"
	"os"
	"os/signal"
	"syscall"

	"github.com/Atlas00000/terra-client/cli/internal/client"
	"github.com/spf13/cobra"
)

// contactDetails holds the lead fields shared by RFQs and inquiries
type contactDetails struct {
	Name    string `json:"name,omitempty"`
	Email   string `json:"email"`
	Company string `json:"company,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Message string `json:"message,omitempty"`
}

// rfqPayload is the body posted to /api/v1/rfq
type rfqPayload struct {
	contactDetails
	Configuration client.ConfigurationInput `json:"configuration"`
	Products      any                       `json:"products"`
	OverallScore  int                       `json:"overall_score,omitempty"`
}

var contact contactDetails

var rfqCmd = &cobra.Command{
	Use:   "rfq",
	Short: "Request a quote for a configuration",
	Long: `Request a quote for the product stack recommended for a configuration.

When --facility, --threat, and --coverage are all omitted the message is sent as a
general inquiry instead.

Exit codes:
  0 - Submitted
  2 - Error (connectivity, invalid input, rejected by backend)`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runRFQ(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(rfqCmd)
	addSelectionFlags(rfqCmd)
	rfqCmd.Flags().StringVar(&contact.Name, "name", "", "Contact name")
	rfqCmd.Flags().StringVar(&contact.Email, "email", "", "Contact email (required)")
	rfqCmd.Flags().StringVar(&contact.Company, "company", "", "Company or organisation")
	rfqCmd.Flags().StringVar(&contact.Phone, "phone", "", "Contact phone number")
	rfqCmd.Flags().StringVar(&contact.Message, "message", "", "Additional notes for the sales team")
}

// runRFQ submits the request and returns exit code
func runRFQ(ctx context.Context, w io.Writer) int {
	if _, err := mail.ParseAddress(contact.Email); err != nil {
		fmt.Fprintln(w, "Error: --email must be a valid email address")
		return 2
	}

	c := client.New(GetAPIURL())

	var (
		resp *client.InquiryResponse
		err  error
	)
	if facilityFlag == "" && threatFlag == "" && coverageFlag == "" {
		if contact.Message == "" {
			fmt.Fprintln(w, "Error: --message is required for a general inquiry")
			return 2
		}
		resp, err = c.SubmitInquiry(ctx, contact)
	} else {
		var payload *rfqPayload
		payload, err = buildRFQPayload(ctx, c)
		if err == nil {
			resp, err = c.SubmitRFQ(ctx, payload)
		}
	}
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	if IsJSONOutput() {
		data, _ := json.MarshalIndent(resp, "", "  ")
		fmt.Fprintln(w, string(data))
	} else {
		fmt.Fprintf(w, "%s\nReference: %s\n", resp.Message, resp.ID)
	}
	return 0
}

// buildRFQPayload fetches the recommendation for the selected configuration and attaches it
func buildRFQPayload(ctx context.Context, c *client.Client) (*rfqPayload, error) {
	input, err := parseSelection(facilityFlag, threatFlag, coverageFlag)
	if err != nil {
		return nil, err
	}

	rec, err := c.Recommend(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch recommendation: %w", err)
	}

	payload := &rfqPayload{
		contactDetails: contact,
		Configuration:  input,
		Products:       rec.Products,
	}
	if rec.Score != nil {
		payload.OverallScore = rec.Score.Overall
	}
	return payload, nil
}
