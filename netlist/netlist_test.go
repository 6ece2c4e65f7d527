package netlist_test

import (
	"testing"

	"github.com/m-lab/sta-channel/correlator"
	"github.com/m-lab/sta-channel/message"
	"github.com/m-lab/sta-channel/netlist"
)

type fakePort struct {
	name   string
	input  bool
	handle string
}

func (p *fakePort) Name() string                      { return p.name }
func (p *fakePort) Input() bool                        { return p.input }
func (p *fakePort) Output() bool                       { return !p.input }
func (p *fakePort) Bus() bool                          { return false }
func (p *fakePort) RangeFrom() int                     { return 0 }
func (p *fakePort) RangeTo() int                       { return 0 }
func (p *fakePort) ConnectedNet(bit int) netlist.Net   { return nil }
func (p *fakePort) Handle(bit int) correlator.PinHandle { return p.handle }

type fakeInst struct {
	name   string
	master netlist.Block
	ports  []netlist.Port
}

func (i *fakeInst) Name() string          { return i.name }
func (i *fakeInst) Master() netlist.Block { return i.master }
func (i *fakeInst) Ports() []netlist.Port { return i.ports }

type fakeBlock struct {
	name  string
	leaf  bool
	ports []netlist.Port
	insts []netlist.Inst
}

func (b *fakeBlock) Name() string              { return b.name }
func (b *fakeBlock) Leaf() bool                { return b.leaf }
func (b *fakeBlock) Ports() []netlist.Port     { return b.ports }
func (b *fakeBlock) Instances() []netlist.Inst { return b.insts }
func (b *fakeBlock) Nets() []netlist.Net       { return nil }

// buildHierarchy builds top -> u1 -> mid -> u2 -> leaf, plus a second,
// shallower instantiation of the same leaf master directly under top as u3.
// It exercises two things the path index must get right: full hierarchical
// depth (u1/u2/a, not u2/a) and one registration per instantiation of a
// shared master (u3/a must appear alongside u1/u2/a, not replace it).
func buildHierarchy() netlist.Block {
	leaf := &fakeBlock{name: "leaf", leaf: true}

	u2 := &fakeInst{name: "u2", master: leaf, ports: []netlist.Port{
		&fakePort{name: "a", handle: "h-u1-u2-a"},
	}}
	mid := &fakeBlock{name: "mid", insts: []netlist.Inst{u2}}

	u1 := &fakeInst{name: "u1", master: mid}
	u3 := &fakeInst{name: "u3", master: leaf, ports: []netlist.Port{
		&fakePort{name: "a", handle: "h-u3-a"},
	}}

	top := &fakeBlock{name: "top", insts: []netlist.Inst{u1, u3}}
	return top
}

func TestFlattenThreadsFullHierarchicalPath(t *testing.T) {
	top := buildHierarchy()

	_, leafPins, err := netlist.Flatten(top, nil, nil)
	if err != nil {
		t.Fatalf("Flatten: %v", err)
	}

	paths := map[string]correlator.PinHandle{}
	for _, lp := range leafPins {
		key := ""
		for _, c := range lp.InstContext {
			key += c + "/"
		}
		key += lp.PinName
		paths[key] = lp.Handle
	}

	want := map[string]correlator.PinHandle{
		"u1/u2/a": "h-u1-u2-a",
		"u3/a":    "h-u3-a",
	}
	for path, wantHandle := range want {
		got, ok := paths[path]
		if !ok {
			t.Errorf("missing leaf pin at path %q; got paths %v", path, paths)
			continue
		}
		if got != wantHandle {
			t.Errorf("path %q: got handle %v, want %v", path, got, wantHandle)
		}
	}
	if len(leafPins) != len(want) {
		t.Errorf("got %d leaf pins, want %d: %v", len(leafPins), len(want), paths)
	}
}

type fakeClient struct {
	graph message.GraphMap
}

func (c *fakeClient) Execute(cmd message.Command) (message.Response, error) {
	return c.graph, nil
}

// TestFlattenAndCorrelate follows the flatten-and-correlate scenario of
// spec.md §8 on a multi-level hierarchy: flatten it, then load a GraphMap
// whose vertices are addressed by full InstContext, and confirm LoadGraph
// finds a local pin for every vertex instead of hitting its missing-lookup
// failure.
func TestFlattenAndCorrelate(t *testing.T) {
	top := buildHierarchy()
	_, leafPins, err := netlist.Flatten(top, nil, nil)
	if err != nil {
		t.Fatalf("Flatten: %v", err)
	}

	graph := message.GraphMap{
		Vertices: []message.VertexIdData{
			{InstContext: []string{"u1", "u2"}, PinName: "a", IsDriver: false, VertexID: 0},
			{InstContext: []string{"u3"}, PinName: "a", IsDriver: true, VertexID: 1},
		},
	}

	s := correlator.NewState()
	if err := s.LoadGraph(&fakeClient{graph: graph}, '/', leafPins); err != nil {
		t.Fatalf("LoadGraph: %v", err)
	}
	if !s.HasGraph() {
		t.Fatal("expected HasGraph to be true after a successful LoadGraph")
	}
}
