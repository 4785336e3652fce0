package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/toolverse/pkg/errors"
	"github.com/matzehuels/toolverse/pkg/tree"
)

func TestBasePath(t *testing.T) {
	tests := []struct {
		output, focus, want string
	}{
		{"", "", "toolverse-root"},
		{"", "productivity", "toolverse-productivity"},
		{"out/chart.svg", "", "out/chart"},
		{"chart.json", "x", "chart"},
		{"chart", "", "chart"},
		{"chart.v2", "", "chart.v2"},
	}
	for _, tt := range tests {
		if got := basePath(tt.output, tt.focus); got != tt.want {
			t.Errorf("basePath(%q, %q) = %q, want %q", tt.output, tt.focus, got, tt.want)
		}
	}
}

func TestOutputPaths(t *testing.T) {
	single := outputPaths("images.svg", "image-generation", []string{"svg"})
	if single["svg"] != "images.svg" {
		t.Errorf("single = %v", single)
	}
	multi := outputPaths("images.svg", "", []string{"svg", "json"})
	if multi["svg"] != "images.svg" || multi["json"] != "images.json" {
		t.Errorf("multi = %v", multi)
	}
	derived := outputPaths("", "", []string{"png"})
	if derived["png"] != "toolverse-root.png" {
		t.Errorf("derived = %v", derived)
	}
}

func TestRenderCommand(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	captureStdout(t)
	base := filepath.Join(t.TempDir(), "charts", "images")

	err := runCLI(t, "render", "--focus", "image-generation", "-f", "svg,json", "-o", base)
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	svg, err := os.ReadFile(base + ".svg")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(svg), `data-node="midjourney"`) {
		t.Error("svg missing focused tools")
	}
	data, err := os.ReadFile(base + ".json")
	if err != nil {
		t.Fatal(err)
	}
	f, err := tree.UnmarshalFrame(data)
	if err != nil {
		t.Fatal(err)
	}
	if f.Focus != "image-generation" || !f.Done || f.Theme != "light" {
		t.Errorf("frame focus %q done %v theme %q", f.Focus, f.Done, f.Theme)
	}
}

func TestRenderStdout(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	out := captureStdout(t)

	if err := runCLI(t, "render", "--tool", "claude", "--at", "100", "-f", "json", "-o", "-", "--no-cache"); err != nil {
		t.Fatal(err)
	}
	f, err := tree.UnmarshalFrame(out.Bytes())
	if err != nil {
		t.Fatalf("stdout is not a frame: %v", err)
	}
	if f.Highlight != "claude" || f.Done || f.ElapsedMS != 100 {
		t.Errorf("frame highlight %q done %v elapsed %v", f.Highlight, f.Done, f.ElapsedMS)
	}
}

func TestRenderErrors(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	captureStdout(t)

	tests := []struct {
		name string
		args []string
		code errors.Code
	}{
		{"unknown category", []string{"--focus", "missing"}, errors.ErrCodeCategoryNotFound},
		{"unknown tool", []string{"--tool", "Nothing"}, errors.ErrCodeToolNotFound},
		{"bad format", []string{"-f", "gif"}, errors.ErrCodeInvalidFormat},
		{"bad theme", []string{"--theme", "neon"}, errors.ErrCodeInvalidTheme},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"render", "--no-cache", "-o", filepath.Join(t.TempDir(), "x")}, tt.args...)
			if err := runCLI(t, args...); !errors.Is(err, tt.code) {
				t.Errorf("err = %v, want %s", err, tt.code)
			}
		})
	}

	if err := runCLI(t, "render", "-f", "svg,json", "-o", "-"); err == nil {
		t.Error("stdout with two formats should fail")
	}
	if err := runCLI(t, "render", "--focus", "productivity", "--tool", "claude"); err == nil {
		t.Error("--focus and --tool are mutually exclusive")
	}
}

func TestThemeCommand(t *testing.T) {
	out := captureStdout(t)
	c := New(&bytes.Buffer{}, LogInfo)
	c.PrefsDir = t.TempDir()

	run := func(args ...string) {
		t.Helper()
		root := c.RootCommand()
		root.SetArgs(args)
		root.SetErr(&bytes.Buffer{})
		if err := root.Execute(); err != nil {
			t.Fatalf("%v: %v", args, err)
		}
	}

	run("theme", "dark")
	if c.defaultTheme() != "dark" {
		t.Errorf("theme = %q after set", c.defaultTheme())
	}
	run("theme", "toggle")
	if c.defaultTheme() != "light" {
		t.Errorf("theme = %q after toggle", c.defaultTheme())
	}
	run("theme")
	if !strings.Contains(out.String(), "prefs.json") {
		t.Errorf("theme output missing prefs path: %q", out.String())
	}

	if err := runCLI(t, "theme", "neon"); err == nil {
		t.Error("invalid theme accepted")
	}
}

func TestConfigInit(t *testing.T) {
	captureStdout(t)
	path := filepath.Join(t.TempDir(), "toolverse.yml")

	if err := runCLI(t, "config", "init", path); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "8080") {
		t.Errorf("config file:\n%s", data)
	}

	if err := runCLI(t, "config", "init", path); err == nil {
		t.Error("second init without --force should fail")
	}
	if err := runCLI(t, "config", "init", path, "--force"); err != nil {
		t.Errorf("init --force: %v", err)
	}
}
