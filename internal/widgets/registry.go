package widgets

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/colemanhs/fourteeners-mcp-server/internal/infra"
	"github.com/colemanhs/fourteeners-mcp-server/metrics"
)

// Registry loads widget markup from an assets directory and exposes it
// over the MCP resources surface. With devReload set, reads reload from
// disk so asset edits are picked up without a restart.
type Registry struct {
	assetsDir string
	cache     *infra.TextCache
	logger    *slog.Logger

	byURI map[string]Widget
}

// NewRegistry creates a registry reading markup from assetsDir.
func NewRegistry(assetsDir string, devReload bool, logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	r := &Registry{
		assetsDir: assetsDir,
		logger:    logger,
		byURI:     make(map[string]Widget, len(All)),
	}
	r.cache = infra.NewTextCache(r.loadAsset,
		infra.WithAlwaysReload(devReload),
		infra.WithStatsHooks(
			func() { metrics.WidgetCacheHits.Inc() },
			func() { metrics.WidgetCacheMisses.Inc() },
		),
	)
	for _, w := range All {
		r.byURI[w.TemplateURI] = w
	}
	return r
}

// HTML returns the current markup for a widget.
func (r *Registry) HTML(w Widget) (string, error) {
	return r.cache.Get(w.AssetName)
}

// loadAsset reads the named HTML file. When the exact file is absent it
// falls back to the lexically last name-*.html variant, so versioned
// builds like mountains-0042.html resolve without renames.
func (r *Registry) loadAsset(name string) (string, error) {
	exact := filepath.Join(r.assetsDir, name+".html")
	if data, err := os.ReadFile(exact); err == nil {
		return string(data), nil
	}

	candidates, err := filepath.Glob(filepath.Join(r.assetsDir, name+"-*.html"))
	if err == nil && len(candidates) > 0 {
		sort.Strings(candidates)
		data, err := os.ReadFile(candidates[len(candidates)-1])
		if err == nil {
			return string(data), nil
		}
	}

	return "", fmt.Errorf("widget markup for %q not found in %s", name, r.assetsDir)
}

// RegisterResources advertises every widget as both a concrete resource
// and a resource template on the server.
func (r *Registry) RegisterResources(server *mcp.Server) {
	for _, w := range All {
		widget := w
		server.AddResource(&mcp.Resource{
			Name:        widget.Title,
			Title:       widget.Title,
			URI:         widget.TemplateURI,
			Description: resourceDescription(widget),
			MIMEType:    MIMEType,
			Meta:        ToolMeta(widget),
		}, r.readHandler(widget))

		server.AddResourceTemplate(&mcp.ResourceTemplate{
			Name:        widget.Title,
			Title:       widget.Title,
			URITemplate: widget.TemplateURI,
			Description: resourceDescription(widget),
			MIMEType:    MIMEType,
			Meta:        ToolMeta(widget),
		}, r.readHandler(widget))
	}
}

func (r *Registry) readHandler(w Widget) mcp.ResourceHandler {
	return func(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		html, err := r.HTML(w)
		if err != nil {
			r.logger.Error("failed to load widget markup",
				"widget", w.Identifier,
				"error", err)
			return nil, err
		}
		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{
				{
					URI:      w.TemplateURI,
					MIMEType: MIMEType,
					Text:     html,
				},
			},
		}, nil
	}
}
