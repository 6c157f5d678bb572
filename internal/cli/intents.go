package cli

import (
	"fmt"
	"io"

	"github.com/flowpbx/ivrdemo/internal/intent"
	"github.com/spf13/cobra"
)

func init() {
	RootCmd.AddCommand(&cobra.Command{
		Use:   "intents",
		Short: "List registered actions",
		Args:  cobra.NoArgs,
		RunE:  runIntents,
	})

	RootCmd.AddCommand(&cobra.Command{
		Use:   "menu",
		Short: "Print the main menu prompt",
		Args:  cobra.NoArgs,
		RunE:  runMenu,
	})
}

func runIntents(cmd *cobra.Command, args []string) error {
	entries := intent.Entries()
	return emit(cmd.OutOrStdout(), entries, func(w io.Writer) {
		for _, e := range entries {
			fmt.Fprintf(w, "%s\t%s\t%s\n", e.Digit, e.Service, e.Name)
		}
	})
}

func runMenu(cmd *cobra.Command, args []string) error {
	tbl, err := loadResponses()
	if err != nil {
		return fmt.Errorf("load responses: %w", err)
	}
	menu := tbl.Menu()
	return emit(cmd.OutOrStdout(), map[string]string{"menu": menu}, func(w io.Writer) {
		fmt.Fprintln(w, menu)
	})
}
