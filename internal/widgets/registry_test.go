package widgets

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeAsset(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write asset: %v", err)
	}
}

func TestRegistryHTML(t *testing.T) {
	dir := t.TempDir()
	writeAsset(t, dir, "mountains.html", "<html>map</html>")

	r := NewRegistry(dir, true, nil)
	html, err := r.HTML(MountainsMap)
	if err != nil {
		t.Fatalf("HTML failed: %v", err)
	}
	if html != "<html>map</html>" {
		t.Errorf("html = %q", html)
	}
}

func TestRegistryReloadsOnEveryRead(t *testing.T) {
	dir := t.TempDir()
	writeAsset(t, dir, "mountains.html", "v1")

	r := NewRegistry(dir, true, nil)
	if html, _ := r.HTML(MountainsMap); html != "v1" {
		t.Fatalf("first read = %q, want v1", html)
	}

	writeAsset(t, dir, "mountains.html", "v2")
	html, err := r.HTML(MountainsMap)
	if err != nil {
		t.Fatalf("second read failed: %v", err)
	}
	if html != "v2" {
		t.Errorf("second read = %q, want v2", html)
	}
}

func TestRegistryCachesWithoutDevReload(t *testing.T) {
	dir := t.TempDir()
	writeAsset(t, dir, "mountains.html", "v1")

	r := NewRegistry(dir, false, nil)
	if html, _ := r.HTML(MountainsMap); html != "v1" {
		t.Fatalf("first read = %q, want v1", html)
	}

	writeAsset(t, dir, "mountains.html", "v2")
	html, err := r.HTML(MountainsMap)
	if err != nil {
		t.Fatalf("second read failed: %v", err)
	}
	if html != "v1" {
		t.Errorf("second read = %q, want the cached v1", html)
	}
}

func TestRegistryVersionedFallback(t *testing.T) {
	dir := t.TempDir()
	writeAsset(t, dir, "mountains-0001.html", "old build")
	writeAsset(t, dir, "mountains-0002.html", "new build")

	r := NewRegistry(dir, true, nil)
	html, err := r.HTML(MountainsMap)
	if err != nil {
		t.Fatalf("HTML failed: %v", err)
	}
	if html != "new build" {
		t.Errorf("html = %q, want the lexically last variant", html)
	}
}

func TestRegistryMissingAsset(t *testing.T) {
	r := NewRegistry(t.TempDir(), true, nil)
	_, err := r.HTML(MountainInfo)
	if err == nil {
		t.Fatal("expected an error for missing markup")
	}
	if !strings.Contains(err.Error(), "mountain-info") {
		t.Errorf("error should name the missing widget: %v", err)
	}
}

func TestToolMeta(t *testing.T) {
	meta := ToolMeta(MountainsMap)

	if meta["openai/outputTemplate"] != "ui://widget/mountains.html" {
		t.Errorf("outputTemplate = %v", meta["openai/outputTemplate"])
	}
	if meta["openai/toolInvocation/invoking"] != "Searching for mountains..." {
		t.Errorf("invoking = %v", meta["openai/toolInvocation/invoking"])
	}
	if meta["openai/widgetAccessible"] != true {
		t.Errorf("widgetAccessible = %v", meta["openai/widgetAccessible"])
	}
	if meta["openai/resultCanProduceWidget"] != true {
		t.Errorf("resultCanProduceWidget = %v", meta["openai/resultCanProduceWidget"])
	}
}

func TestInvocationMeta(t *testing.T) {
	meta := InvocationMeta(MountainInfo)

	if meta["openai/toolInvocation/invoking"] != "Loading mountain information..." {
		t.Errorf("invoking = %v", meta["openai/toolInvocation/invoking"])
	}
	if meta["openai/toolInvocation/invoked"] != "Mountain information loaded" {
		t.Errorf("invoked = %v", meta["openai/toolInvocation/invoked"])
	}
	if _, ok := meta["openai/outputTemplate"]; ok {
		t.Error("invocation meta should not carry the output template")
	}
}
