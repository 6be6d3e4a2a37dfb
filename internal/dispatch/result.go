// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dispatch

import (
	"fmt"

	"github.com/pdiddy/doctool/pkg/types"
)

// Result is the internal outcome of one operation: exactly one of Data
// (success) or Error (failure) is meaningful, selected by Success.
type Result struct {
	Success bool
	Data    string
	Error   string
}

// succeed builds a success Result with a formatted message.
func succeed(format string, args ...any) Result {
	return Result{Success: true, Data: fmt.Sprintf(format, args...)}
}

// fail builds a failure Result with a formatted message.
func fail(format string, args ...any) Result {
	return Result{Success: false, Error: fmt.Sprintf(format, args...)}
}

// failErr wraps an error into a failure Result.
func failErr(err error) Result {
	return Result{Success: false, Error: err.Error()}
}

// Response converts the result into the wire envelope.
func (r Result) Response() types.CallResponse {
	msg := r.Data
	if !r.Success {
		msg = r.Error
	}
	return types.CallResponse{Success: r.Success, Message: msg}
}
