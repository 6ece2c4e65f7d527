// Package correlator implements the client-side timing-graph correlation
// tables: mapping local netlist pins to engine-assigned vertex and edge
// ids, and computing per-node criticality factors from returned slacks.
//
// The tables are lookup indices only; they never own the pins they index.
// Callers identify a pin with an opaque, comparable PinHandle of their own
// choosing (typically an application pointer or a slice index) — this
// package never dereferences one.
package correlator

import (
	"fmt"
	"strings"

	"github.com/m-lab/sta-channel/message"
	"github.com/m-lab/sta-channel/metrics"
)

// PinHandle is an opaque, comparable key the caller uses to identify one
// of its own pin objects. The correlator never inspects its value.
type PinHandle interface{}

// Direction selects which analysis (min or max) a criticality or slack
// computation applies to.
type Direction uint8

const (
	Min Direction = iota
	Max
)

// LeafPin is one entry the caller supplies when building the path index:
// either a leaf-instance pin (non-empty InstContext) or a top-level port
// (empty InstContext, registered at its bare name).
type LeafPin struct {
	InstContext []string
	PinName     string
	Handle      PinHandle
}

// ProtocolClient is the subset of client.Client the correlator needs to
// issue the GetGraphData/GetGraphSlacksData/SetArcsDelay round-trips.
// Defining it here (rather than importing package client) keeps this
// package free of a dependency on the client package.
type ProtocolClient interface {
	Execute(cmd message.Command) (message.Response, error)
}

type pairKey struct {
	source PinHandle
	sink   PinHandle
}

// State holds one client's live correlation tables and criticality cache.
// It is reset by the netlist-invalidation rule (package client) whenever
// the engine's netlist structure changes, and partially cleared when only
// timing changes.
type State struct {
	hasGraph bool

	pathToPin        map[string]PinHandle
	vertexIndexToPin map[uint32]PinHandle
	instKeyOf        map[PinHandle]string
	driverVertex     map[PinHandle]uint32
	sinkVertex       map[PinHandle]uint32
	edges            map[pairKey][]uint32

	nodes       []message.NodeTimingData
	critByNode  map[Direction]map[uint32]float32
}

// NewState returns an empty correlator state.
func NewState() *State {
	return &State{critByNode: map[Direction]map[uint32]float32{}}
}

// HasGraph reports whether a graph map is currently loaded.
func (s *State) HasGraph() bool { return s.hasGraph }

// Reset clears all correlator state: graph map and cached timing alike.
// Called after any command that structurally changes the netlist.
func (s *State) Reset() {
	s.hasGraph = false
	s.pathToPin = nil
	s.vertexIndexToPin = nil
	s.instKeyOf = nil
	s.driverVertex = nil
	s.sinkVertex = nil
	s.edges = nil
	s.ClearTiming()
}

// ClearTiming discards cached slacks/criticality while preserving the
// graph map. Called after commands that change only delays or parasitics.
func (s *State) ClearTiming() {
	s.nodes = nil
	s.critByNode = map[Direction]map[uint32]float32{}
}

func pinPath(sep byte, ctx []string, name string) string {
	if len(ctx) == 0 {
		return name
	}
	return strings.Join(ctx, string(sep)) + string(sep) + name
}

// LoadGraph fetches GetGraphData and builds the four correlation indices
// described in spec.md §4.5: path→pin, vertex_index→pin, pin→vertex_id
// (partitioned by is_driver), and (source_pin,sink_pin)→edge_id.
func (s *State) LoadGraph(pc ProtocolClient, sep byte, leafPins []LeafPin) error {
	pathToPin := make(map[string]PinHandle, len(leafPins))
	instKeyOf := make(map[PinHandle]string, len(leafPins))
	for _, lp := range leafPins {
		pathToPin[pinPath(sep, lp.InstContext, lp.PinName)] = lp.Handle
		instKeyOf[lp.Handle] = strings.Join(lp.InstContext, string(sep))
	}

	resp, err := pc.Execute(message.GetGraphData{})
	if err != nil {
		return err
	}

	vertexIndexToPin := make(map[uint32]PinHandle, len(resp.(message.GraphMap).Vertices))
	driverVertex := map[PinHandle]uint32{}
	sinkVertex := map[PinHandle]uint32{}

	gm := resp.(message.GraphMap)
	for i, vtx := range gm.Vertices {
		if vtx.VertexID != uint32(i) {
			// Absent vertex at this position (§3 invariant).
			continue
		}
		path := pinPath(sep, vtx.InstContext, vtx.PinName)
		handle, ok := pathToPin[path]
		if !ok {
			return fmt.Errorf("correlator: vertex %d (%q) has no matching local pin", vtx.VertexID, path)
		}
		vertexIndexToPin[uint32(i)] = handle
		if vtx.IsDriver {
			driverVertex[handle] = vtx.VertexID
		} else {
			sinkVertex[handle] = vtx.VertexID
		}
	}

	edges := map[pairKey][]uint32{}
	for _, e := range gm.Edges {
		source, ok := vertexIndexToPin[e.FromVertexID]
		if !ok {
			continue
		}
		sink, ok := vertexIndexToPin[e.ToVertexID]
		if !ok {
			continue
		}
		key := pairKey{source, sink}
		edges[key] = append(edges[key], e.EdgeID)
	}

	s.pathToPin = pathToPin
	s.instKeyOf = instKeyOf
	s.vertexIndexToPin = vertexIndexToPin
	s.driverVertex = driverVertex
	s.sinkVertex = sinkVertex
	s.edges = edges
	s.hasGraph = true
	metrics.GraphLoadCount.Inc()
	return nil
}

// LookupPin resolves a hierarchical path to the local pin handle
// registered for it, if any.
func (s *State) LookupPin(path string) (PinHandle, bool) {
	h, ok := s.pathToPin[path]
	return h, ok
}

// EdgeIDs returns the edge ids correlated to the (source, sink) pin pair,
// if any.
func (s *State) EdgeIDs(source, sink PinHandle) ([]uint32, bool) {
	ids, ok := s.edges[pairKey{source, sink}]
	return ids, ok
}
