package layout

import (
	"math"
	"testing"

	"github.com/matzehuels/toolverse/pkg/catalog"
	"github.com/matzehuels/toolverse/pkg/hierarchy"
	"github.com/matzehuels/toolverse/pkg/tree"
)

const tol = 1e-9

func build(t *testing.T, root *tree.Node) *hierarchy.Hierarchy {
	t.Helper()
	h, err := hierarchy.Build(root)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return h
}

// abTree is the two-category scenario: A (T1=100) and B (T2=50).
func abTree() *tree.Node {
	return &tree.Node{Name: "AI Tools", Children: []*tree.Node{
		{ID: "a", Name: "A", Children: []*tree.Node{{ID: "t1", Name: "T1", Value: tree.Value(100)}}},
		{ID: "b", Name: "B", Children: []*tree.Node{{ID: "t2", Name: "T2", Value: tree.Value(50)}}},
	}}
}

func builtin(t *testing.T) *hierarchy.Hierarchy {
	t.Helper()
	h, err := hierarchy.FromCatalog(catalog.Builtin())
	if err != nil {
		t.Fatal(err)
	}
	return h
}

func TestPartitionTiling(t *testing.T) {
	h := builtin(t)
	l := Partition(h, 300)
	for _, n := range h.Nodes() {
		if n.IsLeaf() {
			continue
		}
		p := l.Arcs[n.ID]
		prev := p.AngleStart
		for _, c := range n.Children {
			a := l.Arcs[c]
			if math.Abs(a.AngleStart-prev) > tol {
				t.Errorf("node %d child %d starts at %v, want %v", n.ID, c, a.AngleStart, prev)
			}
			if a.AngleEnd < a.AngleStart {
				t.Errorf("node %d has inverted span", c)
			}
			prev = a.AngleEnd
		}
		if math.Abs(prev-p.AngleEnd) > tol {
			t.Errorf("children of %d end at %v, want %v", n.ID, prev, p.AngleEnd)
		}
	}
}

func TestPartitionProportional(t *testing.T) {
	h := builtin(t)
	l := Partition(h, 300)
	for _, n := range h.Nodes() {
		for i := 1; i < len(n.Children); i++ {
			a, b := n.Children[0], n.Children[i]
			got := l.Arcs[a].Width() / l.Arcs[b].Width()
			want := h.Node(a).Weight / h.Node(b).Weight
			if math.Abs(got-want) > 1e-9 {
				t.Errorf("siblings %d/%d width ratio %v, want %v", a, b, got, want)
			}
		}
	}
}

func TestPartitionRadii(t *testing.T) {
	h := build(t, abTree())
	l := Partition(h, 300)
	if l.RingHeight != 100 {
		t.Fatalf("RingHeight = %v, want 100", l.RingHeight)
	}
	want := map[hierarchy.NodeID][2]float64{
		hierarchy.RootID: {0, 100},
		1:                {100, 200},
		2:                {200, 300},
	}
	for id, r := range want {
		a := l.Arcs[id]
		if a.RadiusInner != r[0] || a.RadiusOuter != r[1] {
			t.Errorf("node %d radii = [%v, %v], want %v", id, a.RadiusInner, a.RadiusOuter, r)
		}
	}
	root := l.Arcs[hierarchy.RootID]
	if root.AngleStart != 0 || root.AngleEnd != FullCircle {
		t.Errorf("root = %+v", root)
	}
}

func TestPartitionInsertionOrder(t *testing.T) {
	// B is heavier but listed second; it must stay second.
	root := abTree()
	root.Children[1].Children[0].Value = tree.Value(1000)
	l := Partition(build(t, root), 300)
	if l.Arcs[1].AngleStart != 0 || l.Arcs[3].AngleStart <= l.Arcs[1].AngleStart {
		t.Errorf("A = %+v, B = %+v", l.Arcs[1], l.Arcs[3])
	}
}

func TestTwoCategoryScenario(t *testing.T) {
	h := build(t, abTree())
	l := Partition(h, 300)

	a, b := l.Arcs[1], l.Arcs[3]
	if math.Abs(a.AngleStart) > tol || math.Abs(a.AngleEnd-4*math.Pi/3) > tol {
		t.Errorf("A = [%v, %v], want [0, 4π/3]", a.AngleStart, a.AngleEnd)
	}
	if math.Abs(b.AngleStart-4*math.Pi/3) > tol || math.Abs(b.AngleEnd-FullCircle) > tol {
		t.Errorf("B = [%v, %v], want [4π/3, 2π]", b.AngleStart, b.AngleEnd)
	}

	target := l.Target(h, 1)
	if math.Abs(target[1].AngleStart) > tol || math.Abs(target[1].AngleEnd-FullCircle) > tol {
		t.Errorf("focused A = [%v, %v], want [0, 2π]", target[1].AngleStart, target[1].AngleEnd)
	}
	if w := target[3].Width(); math.Abs(w) > tol {
		t.Errorf("B width after focus = %v, want 0", w)
	}
	if w := target[4].Width(); math.Abs(w) > tol {
		t.Errorf("T2 width after focus = %v, want 0", w)
	}
	if math.Abs(target[2].Width()-FullCircle) > tol {
		t.Errorf("T1 width after focus = %v, want 2π", target[2].Width())
	}
	// A moves into the centre circle, its tools into the first ring.
	if target[1].RadiusInner != 0 || target[1].RadiusOuter != 100 || target[2].RadiusInner != 100 {
		t.Errorf("radii after focus: A %+v T1 %+v", target[1], target[2])
	}
	if target[hierarchy.RootID].RadiusOuter != 0 {
		t.Errorf("root should collapse radially, got %+v", target[hierarchy.RootID])
	}
}

func TestTargetRootIsBase(t *testing.T) {
	h := builtin(t)
	l := Partition(h, 350)
	once := l.Target(h, hierarchy.RootID)
	twice := l.Target(h, hierarchy.RootID)
	for i := range l.Arcs {
		if once[i] != l.Arcs[i] || twice[i] != once[i] {
			t.Fatalf("node %d: %+v / %+v vs base %+v", i, once[i], twice[i], l.Arcs[i])
		}
	}
	once[0].AngleEnd = 1
	if l.Arcs[0].AngleEnd != FullCircle {
		t.Error("Target must not alias the base layout")
	}
}

func TestTargetZeroWeightTool(t *testing.T) {
	root := abTree()
	root.Children[0].Children[0].Value = tree.Value(0)
	h := build(t, root)
	l := Partition(h, 300)
	for _, arcs := range [][]Arc{l.Arcs, l.Target(h, 1), l.Target(h, 2), l.Target(h, 3)} {
		for i, a := range arcs {
			if !a.IsFinite() {
				t.Fatalf("node %d has non-finite arc %+v", i, a)
			}
		}
	}
}

func TestTargetDegenerateFocus(t *testing.T) {
	h := build(t, abTree())
	l := Partition(h, 300)
	// Force a collapsed focal span.
	l.Arcs[1].AngleEnd = l.Arcs[1].AngleStart
	for i, a := range l.Target(h, 1) {
		if !a.IsFinite() {
			t.Fatalf("node %d: %+v", i, a)
		}
		if a.AngleStart != 0 || a.AngleEnd != 0 {
			t.Errorf("node %d angles = [%v, %v], want 0", i, a.AngleStart, a.AngleEnd)
		}
	}
}

func TestRatio(t *testing.T) {
	tests := []struct {
		num, span, want float64
	}{
		{1, 2, 0.5},
		{-1, 2, 0},
		{3, 2, 1},
		{1, 0, 0},
		{0, 0, 0},
		{1, math.NaN(), 0},
	}
	for _, tt := range tests {
		if got := ratio(tt.num, tt.span); got != tt.want {
			t.Errorf("ratio(%v, %v) = %v, want %v", tt.num, tt.span, got, tt.want)
		}
	}
}

func TestVisible(t *testing.T) {
	l := &Layout{Radius: 300, RingHeight: 100}
	tests := []struct {
		name string
		arc  Arc
		want bool
	}{
		{"category ring", Arc{0, 1, 100, 200}, true},
		{"tool ring", Arc{0, 1, 200, 300}, true},
		{"centre", Arc{0, FullCircle, 0, 100}, false},
		{"beyond edge", Arc{0, 1, 300, 400}, false},
		{"zero width", Arc{1, 1, 100, 200}, false},
		{"partially inside", Arc{0, 1, 50, 150}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := l.Visible(tt.arc); got != tt.want {
				t.Errorf("Visible(%+v) = %v, want %v", tt.arc, got, tt.want)
			}
		})
	}
}

func TestPolar(t *testing.T) {
	tests := []struct {
		x, y          float64
		angle, radius float64
	}{
		{0, -10, 0, 10},
		{10, 0, math.Pi / 2, 10},
		{0, 10, math.Pi, 10},
		{-10, 0, 3 * math.Pi / 2, 10},
	}
	for _, tt := range tests {
		a, r := Polar(tt.x, tt.y)
		if math.Abs(a-tt.angle) > tol || math.Abs(r-tt.radius) > tol {
			t.Errorf("Polar(%v, %v) = %v, %v, want %v, %v", tt.x, tt.y, a, r, tt.angle, tt.radius)
		}
		x, y := Point(a, r)
		if math.Abs(x-tt.x) > 1e-9 || math.Abs(y-tt.y) > 1e-9 {
			t.Errorf("Point(%v, %v) = %v, %v", a, r, x, y)
		}
	}
}

func TestArcHelpers(t *testing.T) {
	a := Arc{AngleStart: 1, AngleEnd: 2, RadiusInner: 100, RadiusOuter: 200}
	if a.Width() != 1 || a.Thickness() != 100 || a.MidAngle() != 1.5 || a.MidRadius() != 150 {
		t.Errorf("helpers wrong for %+v", a)
	}
	if !a.Contains(1, 100) || a.Contains(2, 150) || a.Contains(1.5, 200) {
		t.Error("Contains edge handling wrong")
	}
	if !a.ApproxEqual(Arc{1, 2 + 1e-12, 100, 200}, tol) || a.ApproxEqual(Arc{1, 2.1, 100, 200}, tol) {
		t.Error("ApproxEqual wrong")
	}
	if (Arc{AngleEnd: math.Inf(1)}).IsFinite() {
		t.Error("IsFinite should reject Inf")
	}
}
