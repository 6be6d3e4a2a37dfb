package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	yaml "go.yaml.in/yaml/v3"

	"github.com/pdiddy/doctool/pkg/types"
)

var callCmd = &cobra.Command{
	Use:   "call <operation>",
	Short: "Run a single document operation",
	Long: `Call runs one operation by name. Arguments are passed as a JSON object
via --args or read from a YAML/JSON file via --args-file. The operation's
result message is printed on success; failures exit non-zero with the
failure message.

Example:
  doctool call pdf_splitter --args '{"inputPath":"in.pdf","outputDir":"out","ranges":[{"start":1,"end":3}]}'`,
	Args: cobra.ExactArgs(1),
	RunE: runCall,
}

func init() {
	callCmd.Flags().String("args", "", "operation arguments as a JSON object")
	callCmd.Flags().String("args-file", "", "file containing operation arguments (YAML or JSON)")
	callCmd.Flags().Bool("json", false, "print the full response envelope as JSON")

	rootCmd.AddCommand(callCmd)
}

func runCall(cmd *cobra.Command, args []string) error {
	bag, err := argumentBag(cmd)
	if err != nil {
		return err
	}

	resp := newDispatcher().Call(types.CallRequest{Operation: args[0], Arguments: bag})

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(resp); err != nil {
			return err
		}
		if !resp.Success {
			return fmt.Errorf("operation %s failed", args[0])
		}
		return nil
	}

	if !resp.Success {
		return fmt.Errorf("%s", resp.Message)
	}
	fmt.Println(resp.Message)
	return nil
}

// argumentBag assembles the argument map from --args or --args-file.
// With neither flag set the operation runs with an empty bag, which lets
// it report its own missing-argument message.
func argumentBag(cmd *cobra.Command) (map[string]any, error) {
	raw, _ := cmd.Flags().GetString("args")
	file, _ := cmd.Flags().GetString("args-file")

	if raw != "" && file != "" {
		return nil, fmt.Errorf("--args and --args-file are mutually exclusive")
	}

	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("reading arguments file: %w", err)
		}
		var bag map[string]any
		if err := yaml.Unmarshal(data, &bag); err != nil {
			return nil, fmt.Errorf("parsing arguments file %s: %w", file, err)
		}
		return bag, nil
	}

	if raw == "" {
		return map[string]any{}, nil
	}
	var bag map[string]any
	if err := json.Unmarshal([]byte(raw), &bag); err != nil {
		return nil, fmt.Errorf("parsing --args: %w", err)
	}
	return bag, nil
}
