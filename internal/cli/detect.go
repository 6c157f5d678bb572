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
		Use:   "detect [query...]",
		Short: "Classify a transcript",
		Long:  "Classify a spoken transcript into an IVR action. Words are joined with spaces.",
		RunE:  runDetect,
	}

	cmd.Flags().Bool("respond", false, "Also print the response text for the resolved digit")

	RootCmd.AddCommand(cmd)
}

type detectOutput struct {
	intent.Result
	Response string `json:"response,omitempty"`
}

func runDetect(cmd *cobra.Command, args []string) error {
	respond, _ := cmd.Flags().GetBool("respond")

	var query any
	if len(args) > 0 {
		query = strings.Join(args, " ")
	}
	out := detectOutput{Result: intent.Detect(query)}

	if respond {
		tbl, err := loadResponses()
		if err != nil {
			return fmt.Errorf("load responses: %w", err)
		}
		out.Response = tbl.Respond(out.Digit)
	}

	return emit(cmd.OutOrStdout(), out, func(w io.Writer) {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.2f\n", out.Intent, out.Service, out.Digit, out.Confidence)
		if out.Response != "" {
			fmt.Fprintln(w, out.Response)
		}
	})
}
