package nodelink

import (
	"context"
	"strings"
	"testing"

	"github.com/matzehuels/toolverse/pkg/hierarchy"
	"github.com/matzehuels/toolverse/pkg/tree"
)

func testHierarchy(t *testing.T) *hierarchy.Hierarchy {
	t.Helper()
	h, err := hierarchy.Build(&tree.Node{Name: "AI Tools", Children: []*tree.Node{
		{ID: "text", Name: "Text", Color: "#3b82f6", Children: []*tree.Node{
			{ID: "chatgpt", Name: "ChatGPT", Value: tree.Value(95)},
		}},
		{ID: "code", Name: "Code", Color: "#10b981", Children: []*tree.Node{
			{ID: "copilot", Name: "Copilot", Value: tree.Value(92)},
			{ID: "text", Name: "Text", Value: tree.Value(10)},
		}},
	}})
	if err != nil {
		t.Fatal(err)
	}
	return h
}

func TestToDOT_Basic(t *testing.T) {
	dot := ToDOT(testHierarchy(t), Options{})

	for _, want := range []string{
		"digraph G",
		`"root" [label="AI Tools", shape=ellipse`,
		`"category:text" [label="Text", fillcolor="#3b82f6"]`,
		`"root" -> "category:code"`,
		`"category:code" -> "tool:copilot"`,
		`"category:code" -> "tool:text"`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("ToDOT() output missing %q", want)
		}
	}
}

func TestToDOT_Detailed(t *testing.T) {
	dot := ToDOT(testHierarchy(t), Options{Detailed: true})
	if !strings.Contains(dot, `ChatGPT\npopularity: 95`) {
		t.Error("ToDOT() detailed output missing popularity")
	}
	if !strings.Contains(dot, `Code\ntools: 2`) {
		t.Error("ToDOT() detailed output missing tool count")
	}
}

func TestToDOT_Focus(t *testing.T) {
	dot := ToDOT(testHierarchy(t), Options{Focus: "code"})
	if strings.Contains(dot, `"root"`) || strings.Contains(dot, "chatgpt") {
		t.Error("focused diagram should only contain the category subtree")
	}
	if strings.Contains(dot, `-> "category:code"`) {
		t.Error("focused category should be the top node")
	}
	if !strings.Contains(dot, `"category:code" -> "tool:copilot"`) {
		t.Error("focused diagram missing tool edge")
	}

	if all := ToDOT(testHierarchy(t), Options{Focus: "missing"}); !strings.Contains(all, `"root"`) {
		t.Error("unknown focus should draw the whole catalog")
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="10pt" height="20pt" viewBox="0.00 0.00 100.50 200.00" xmlns="http://www.w3.org/2000/svg"><g/></svg>`)
	got := string(normalizeViewBox(in))
	want := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100.50 200.00" width="100" height="200"><g/></svg>`
	if got != want {
		t.Errorf("normalizeViewBox() = %s", got)
	}
	if out := normalizeViewBox([]byte("<svg/>")); string(out) != "<svg/>" {
		t.Error("svg without viewBox should be unchanged")
	}
}

func TestRenderSVG(t *testing.T) {
	svg, err := RenderSVG(context.Background(), ToDOT(testHierarchy(t), Options{}))
	if err != nil {
		t.Fatalf("RenderSVG() error: %v", err)
	}
	if !strings.Contains(string(svg), "ChatGPT") {
		t.Error("rendered SVG missing node label")
	}
}
