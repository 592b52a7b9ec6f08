// Package tools provides a metadata-driven registry for MCP tool definitions.
// Tools are defined declaratively in definitions.go and registered through
// type-safe handlers that add tracing, metrics, and panic recovery.
package tools

import "github.com/colemanhs/fourteeners-mcp-server/internal/widgets"

// ToolSpec defines a tool's metadata for declarative registration.
// Each spec maps to a Service method with matching Args/Result types.
type ToolSpec struct {
	// Name is the MCP tool name (e.g., "get_mountains")
	Name string

	// Method is the Service method name (e.g., "GetMountains")
	Method string

	// Description is the tool description shown to LLMs
	Description string

	// Title is the human-readable tool title for annotations
	Title string

	// Category groups tools logically (search, info, weather)
	Category string

	// Widget, when set, links the tool to a UI surface so results can
	// render visually in capable clients
	Widget *widgets.Widget

	// ReadOnly indicates the tool doesn't modify any data
	ReadOnly bool

	// Destructive indicates the tool can delete or overwrite data
	Destructive bool

	// Idempotent indicates repeated calls have the same effect
	Idempotent bool

	// OpenWorld indicates the tool reaches beyond the local dataset
	OpenWorld bool
}

// ptr is a helper to create a pointer to a value.
func ptr[T any](v T) *T {
	return &v
}
