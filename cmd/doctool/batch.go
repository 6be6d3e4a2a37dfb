package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/doctool/internal/batch"
)

var batchCmd = &cobra.Command{
	Use:   "batch <file>",
	Short: "Run a batch of operations from a YAML file",
	Long: `Batch runs every request named in a YAML file, in order, and prints a
per-request status line plus a summary. A failed request does not stop the
batch. The file layout:

  requests:
    - operationName: pdf_merger
      arguments:
        inputPaths: [a.pdf, b.pdf]
        outputDir: out`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().Bool("json", false, "output all response envelopes as JSON")

	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	requests, err := batch.LoadFile(args[0])
	if err != nil {
		return err
	}

	result := batch.Run(newDispatcher(), requests, os.Stdout)

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(result.Responses); err != nil {
			return err
		}
	}

	if result.HasFailures() {
		return fmt.Errorf("%d request(s) failed", result.Failed)
	}
	return nil
}
