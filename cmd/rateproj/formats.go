package main

import (
	"fmt"
	"strings"

	"github.com/rateproj/rate-projector/internal/output"
	"github.com/spf13/cobra"
)

func newFormatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List output formats and their aliases",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			w := cmd.OutOrStdout()
			fmt.Fprintln(w, "Formats:")
			for _, name := range output.AvailableFormatterNames() {
				fmt.Fprintf(w, "  %-10s .%s\n", name, output.Extension(name))
			}
			fmt.Fprintf(w, "Aliases: %s\n", strings.Join(output.AvailableFormatAliases(), ", "))
			fmt.Fprintln(w, "Export also accepts \"all\" (csv, markdown and html).")
		},
	}
}
