package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/flowpbx/ivrdemo/internal/intent"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "respond <digit>",
		Short: "Print the canned response for a keypad digit",
		Args:  cobra.MatchAll(cobra.ExactArgs(1), keypadArg),
		RunE:  runRespond,
	}

	cmd.Flags().StringP("service", "s", "", "Answer as a single service (acs or bap)")

	RootCmd.AddCommand(cmd)
}

// keypadArg accepts the same keys as the HTTP keypad path: 0-9, * and #.
func keypadArg(cmd *cobra.Command, args []string) error {
	d := args[0]
	if len(d) != 1 || !strings.Contains("0123456789*#", d) {
		return fmt.Errorf("digit must be a single keypad key, got %q", d)
	}
	return nil
}

type respondOutput struct {
	Digit    string `json:"digit"`
	Service  string `json:"service,omitempty"`
	Response string `json:"response"`
}

func runRespond(cmd *cobra.Command, args []string) error {
	service, _ := cmd.Flags().GetString("service")
	digit := args[0]

	tbl, err := loadResponses()
	if err != nil {
		return fmt.Errorf("load responses: %w", err)
	}

	out := respondOutput{Digit: digit, Service: service}
	switch intent.Service(service) {
	case "":
		out.Response = tbl.Respond(digit)
	case intent.ServiceACS, intent.ServiceBAP:
		out.Response = tbl.Process(intent.Service(service), digit)
	default:
		return fmt.Errorf("unknown service %q (want acs or bap)", service)
	}

	return emit(cmd.OutOrStdout(), out, func(w io.Writer) {
		fmt.Fprintln(w, out.Response)
	})
}
