package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/pdiddy/doctool/internal/dispatch"
)

var opsCmd = &cobra.Command{
	Use:   "ops",
	Short: "List the available operations",
	Long: `Ops prints every operation the dispatcher knows, with its argument
names and a one-line summary. Arguments marked * are required.`,
	RunE: runOps,
}

func init() {
	opsCmd.Flags().Bool("json", false, "output descriptors as JSON")

	rootCmd.AddCommand(opsCmd)
}

func runOps(cmd *cobra.Command, args []string) error {
	// Listing never needs the office renderer, so skip detection noise.
	descriptors := dispatch.New(dispatch.Deps{}).Descriptors()

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(descriptors)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "OPERATION\tARGUMENTS\tSUMMARY")
	for _, desc := range descriptors {
		names := make([]string, 0, len(desc.Args))
		for _, arg := range desc.Args {
			name := arg.Name
			if arg.Required {
				name += "*"
			}
			names = append(names, name)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", desc.Name, strings.Join(names, ", "), desc.Summary)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Printf("\n%d operations\n", len(descriptors))
	return nil
}
