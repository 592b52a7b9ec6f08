// Package widgets manages the embedded UI surfaces served alongside tool
// results. Each widget is an HTML template exposed as an MCP resource and
// referenced from tool metadata so clients can render results visually.
package widgets

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// MIMEType marks widget markup for clients that understand the skybridge
// rendering surface.
const MIMEType = "text/html+skybridge"

// Widget describes one renderable UI surface.
type Widget struct {
	// Identifier is the stable widget id, e.g. "mountains-map".
	Identifier string
	// Title is the human-readable widget name.
	Title string
	// TemplateURI is the ui:// address the widget markup is served at.
	TemplateURI string
	// Invoking and Invoked are the status strings shown while the
	// backing tool call is in flight and after it completes.
	Invoking string
	Invoked  string
	// AssetName is the basename of the HTML file under the assets
	// directory, without extension.
	AssetName string
}

// MountainsMap is the interactive map shown for mountain search results.
var MountainsMap = Widget{
	Identifier:  "mountains-map",
	Title:       "Show Mountains Map",
	TemplateURI: "ui://widget/mountains.html",
	Invoking:    "Searching for mountains...",
	Invoked:     "Found mountains",
	AssetName:   "mountains",
}

// MountainInfo is the detail card shown for a single mountain.
var MountainInfo = Widget{
	Identifier:  "mountain-info",
	Title:       "Mountain Information",
	TemplateURI: "ui://widget/mountain-info.html",
	Invoking:    "Loading mountain information...",
	Invoked:     "Mountain information loaded",
	AssetName:   "mountain-info",
}

// All lists every widget the server serves.
var All = []Widget{MountainsMap, MountainInfo}

// ToolMeta is the full metadata block attached to tool definitions and
// widget resources.
func ToolMeta(w Widget) mcp.Meta {
	return mcp.Meta{
		"openai/outputTemplate":          w.TemplateURI,
		"openai/toolInvocation/invoking": w.Invoking,
		"openai/toolInvocation/invoked":  w.Invoked,
		"openai/widgetAccessible":        true,
		"openai/resultCanProduceWidget":  true,
	}
}

// InvocationMeta is the smaller metadata block attached to individual
// tool call results.
func InvocationMeta(w Widget) mcp.Meta {
	return mcp.Meta{
		"openai/toolInvocation/invoking": w.Invoking,
		"openai/toolInvocation/invoked":  w.Invoked,
	}
}

func resourceDescription(w Widget) string {
	return w.Title + " widget markup"
}
