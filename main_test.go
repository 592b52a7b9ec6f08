package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestServerIdentity(t *testing.T) {
	if ServerName != "fourteeners-mcp-server" {
		t.Errorf("ServerName = %q", ServerName)
	}
	if ServerVersion == "" {
		t.Error("ServerVersion should not be empty")
	}
}

func TestDefaultAssetsShipped(t *testing.T) {
	// The default assets directory must contain markup for every widget
	// so a fresh checkout serves resources without configuration.
	for _, name := range []string{"mountains.html", "mountain-info.html"} {
		path := filepath.Join(defaultAssetsDir, name)
		if _, err := os.Stat(path); err != nil {
			t.Errorf("missing widget asset %s: %v", path, err)
		}
	}
}
