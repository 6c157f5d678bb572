// Package cli implements the ivrctl commands.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/flowpbx/ivrdemo/internal/responder"
	"github.com/spf13/cobra"
)

var (
	responsesPath string
	formatFlag    string
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:           "ivrctl",
	Short:         "Inspect the IVR demo classifier offline",
	Long:          "Classify transcripts and look up canned responses without running the server.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&responsesPath, "responses", "r", "", "Response table YAML (default: $IVRDEMO_RESPONSES_FILE or built-in)")
	RootCmd.PersistentFlags().StringVarP(&formatFlag, "format", "f", "json", "Output format: json or text")
}

func getResponsesPath() string {
	if responsesPath != "" {
		return responsesPath
	}
	return os.Getenv("IVRDEMO_RESPONSES_FILE")
}

func loadResponses() (*responder.Table, error) {
	return responder.Load(getResponsesPath())
}

// emit writes v as indented JSON, or calls text when --format=text.
func emit(w io.Writer, v any, text func(io.Writer)) error {
	switch formatFlag {
	case "json":
		b, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(w, string(b))
	case "text":
		text(w)
	default:
		return fmt.Errorf("unknown format %q (want json or text)", formatFlag)
	}
	return nil
}
