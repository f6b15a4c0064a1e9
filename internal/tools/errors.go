package tools

import (
	"errors"
	"fmt"
)

// ErrUnknownTool is returned when no tool is registered under the requested name.
var ErrUnknownTool = errors.New("unknown tool")

// ArgumentError reports arguments rejected by a tool's schema before the tool runs.
type ArgumentError struct {
	Tool   string
	Param  string
	Value  string
	Reason string
}

func (e *ArgumentError) Error() string {
	if e.Param == "" {
		return fmt.Sprintf("%s: invalid arguments: %s", e.Tool, e.Reason)
	}
	if e.Value != "" {
		return fmt.Sprintf("%s: parameter %q value %q %s", e.Tool, e.Param, e.Value, e.Reason)
	}
	return fmt.Sprintf("%s: parameter %q %s", e.Tool, e.Param, e.Reason)
}

// AsArgumentError attempts to unwrap an error into an ArgumentError.
func AsArgumentError(err error) (*ArgumentError, bool) {
	var argErr *ArgumentError
	if errors.As(err, &argErr) {
		return argErr, true
	}
	return nil, false
}
