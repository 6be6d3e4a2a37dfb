// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the shared data structures of the doctool operation
// contract: the request/response envelope spoken by the CLI, the batch
// runner, and the HTTP front end, and the configuration groups behind them.
package types

// CallRequest is the wire shape of one operation invocation.
type CallRequest struct {
	// Operation names the registered operation to invoke (e.g. "pdf_merger").
	Operation string `json:"operationName" yaml:"operationName"`

	// Arguments is the untyped argument bag. Each operation applies its own
	// shape check before running; unknown or malformed bags fail the call,
	// they never panic it.
	Arguments map[string]any `json:"arguments" yaml:"arguments"`
}

// CallResponse is the uniform envelope every invocation returns, success or
// not. On success Message describes the outcome and names any files written;
// on failure it carries the error text.
type CallResponse struct {
	Success bool   `json:"success" yaml:"success"`
	Message string `json:"message" yaml:"message"`
}

// PageRange selects a 1-based inclusive page interval of a paginated
// document. Start == End selects a single page.
type PageRange struct {
	// Start is the first page of the range.
	Start int `json:"start" yaml:"start"`

	// End is the last page of the range, inclusive.
	End int `json:"end" yaml:"end"`
}

// Pages returns the number of pages the range covers.
func (r PageRange) Pages() int {
	return r.End - r.Start + 1
}
