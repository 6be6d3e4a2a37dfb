// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package batch runs a file of call requests through the dispatcher
// sequentially, printing one status line per request and a closing summary.
// Individual failures never stop the run.
package batch

import (
	"fmt"
	"io"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/doctool/internal/dispatch"
	"github.com/pdiddy/doctool/pkg/types"
)

// File is the YAML shape of a batch request file.
type File struct {
	// Requests lists the calls to run, in order.
	Requests []types.CallRequest `json:"requests" yaml:"requests"`
}

// Result summarizes a batch run.
type Result struct {
	Succeeded int
	Failed    int

	// Responses holds every envelope in request order, preserved verbatim.
	Responses []types.CallResponse
}

// Total returns the number of requests processed.
func (r Result) Total() int {
	return r.Succeeded + r.Failed
}

// HasFailures reports whether any request failed.
func (r Result) HasFailures() bool {
	return r.Failed > 0
}

// LoadFile reads and parses a YAML batch file. A file with no requests is
// an error.
func LoadFile(path string) ([]types.CallRequest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading batch file %s: %w", path, err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing batch file %s: %w", path, err)
	}
	if len(f.Requests) == 0 {
		return nil, fmt.Errorf("batch file %s contains no requests", path)
	}
	return f.Requests, nil
}

// Run executes the requests in order, writing per-request status lines and
// a summary to w.
func Run(d *dispatch.Dispatcher, requests []types.CallRequest, w io.Writer) Result {
	var result Result
	for _, req := range requests {
		resp := d.Call(req)
		result.Responses = append(result.Responses, resp)

		if resp.Success {
			result.Succeeded++
			fmt.Fprintf(w, "ok:     %s: %s\n", req.Operation, resp.Message)
		} else {
			result.Failed++
			fmt.Fprintf(w, "failed: %s: %s\n", req.Operation, resp.Message)
		}
	}

	fmt.Fprintf(w, "\nBatch summary: %d succeeded, %d failed (total: %d)\n",
		result.Succeeded, result.Failed, result.Total())
	return result
}
