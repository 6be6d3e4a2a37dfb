// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package dispatch owns the operation catalog and the single entry point
// through which every front end (CLI, batch runner, HTTP) invokes it. The
// catalog is immutable after construction, and no call ever escapes as a
// panic or a Go error: every outcome, including dispatch failures, comes
// back as a response envelope.
package dispatch

import (
	"fmt"
	"sort"

	"github.com/pdiddy/doctool/internal/office"
	"github.com/pdiddy/doctool/pkg/types"
)

// Deps carries the collaborators handlers need.
type Deps struct {
	// Office renders DOCX through an external process. It may be nil, in
	// which case docx_to_pdf and docx_to_html report a renderer failure and
	// every other operation works normally.
	Office office.Renderer
}

// Dispatcher routes call requests to registered operations.
type Dispatcher struct {
	ops map[string]operation
}

// New builds a dispatcher with the full operation catalog.
func New(deps Deps) *Dispatcher {
	return &Dispatcher{ops: newRegistry(deps)}
}

// Call looks up and runs one operation. An unregistered name or a malformed
// argument bag fails here, in the dispatch layer; everything after that is
// the operation's own verdict.
func (d *Dispatcher) Call(req types.CallRequest) types.CallResponse {
	op, ok := d.ops[req.Operation]
	if !ok {
		return types.CallResponse{
			Success: false,
			Message: fmt.Sprintf("Unknown tool: %s", req.Operation),
		}
	}

	args := req.Arguments
	if args == nil {
		args = map[string]any{}
	}
	return guard(op.desc.Name, op.run, args).Response()
}

// guard runs one operation and converts a panic into a failed Result, so
// nothing thrown below ever crosses the dispatch boundary.
func guard(name string, run func(map[string]any) Result, args map[string]any) (res Result) {
	defer func() {
		if r := recover(); r != nil {
			res = fail("%s: internal error: %v", name, r)
		}
	}()
	return run(args)
}

// Descriptors lists the operation catalog sorted by name.
func (d *Dispatcher) Descriptors() []Descriptor {
	out := make([]Descriptor, 0, len(d.ops))
	for _, op := range d.ops {
		out = append(out, op.desc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
