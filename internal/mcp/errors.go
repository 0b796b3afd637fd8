package mcp

import (
	"errors"
	"fmt"
)

// JSON-RPC error codes used to classify dispatch failures.
const (
	CodeInvalidRequest = -32600
	CodeMethodNotFound = -32601
	CodeInternalError  = -32603
)

// Error is a classified protocol error surfaced to the MCP caller.
// A dispatch call either returns one result or raises exactly one of these.
type Error struct {
	Code    int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// invalidRequest classifies a request that must be rejected before routing.
func invalidRequest(message string) *Error {
	return &Error{Code: CodeInvalidRequest, Message: message}
}

// methodNotFound classifies a tool name outside the registry.
func methodNotFound(name string) *Error {
	return &Error{Code: CodeMethodNotFound, Message: fmt.Sprintf("Unknown tool: %s", name)}
}

// internalError classifies any routing or outbound-call failure. An error
// that is already classified is re-raised unchanged rather than re-wrapped.
func internalError(err error) *Error {
	var classified *Error
	if errors.As(err, &classified) {
		return classified
	}
	return &Error{Code: CodeInternalError, Message: "Evernote API error: " + err.Error()}
}
