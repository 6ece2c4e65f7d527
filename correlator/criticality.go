package correlator

import (
	"fmt"
	"time"

	"github.com/m-lab/sta-channel/message"
	"github.com/m-lab/sta-channel/metrics"
)

// LoadSlacks fetches GetGraphSlacksData, caches the node sequence, and
// computes per-node criticality for both analyses, grouped by endpoint
// index, per spec.md §4.5.
func (s *State) LoadSlacks(pc ProtocolClient) error {
	resp, err := pc.Execute(message.GetGraphSlacksData{})
	if err != nil {
		return err
	}
	nodes := resp.(message.GraphSlacks).Nodes

	start := time.Now()
	s.nodes = nodes
	s.critByNode = map[Direction]map[uint32]float32{
		Min: computeCriticality(nodes, Min),
		Max: computeCriticality(nodes, Max),
	}
	metrics.CriticalityComputeHistogram.Observe(time.Since(start).Seconds())
	return nil
}

func nodeSlack(n message.NodeTimingData, d Direction) float32 {
	if d == Min {
		return n.MinAAT - n.MinRAT
	}
	return n.MaxRAT - n.MaxAAT
}

func pathRat(n message.NodeTimingData, d Direction) (value float32, ok bool) {
	if d == Min {
		return n.MinPathRat, n.HasEndMinPathRat
	}
	return n.MaxPathRat, n.HasEndMaxPathRat
}

// computeCriticality implements the group-normalized criticality formula:
// for each endpoint group, shift slacks to a non-negative baseline, divide
// by the larger of the group's shifted maximum path RAT and shifted maximum
// slack, and report 1 - normalized slack. Nodes with no timing or an out-of-range endpoint
// index keep criticality 0 (absent from the returned map).
func computeCriticality(nodes []message.NodeTimingData, d Direction) map[uint32]float32 {
	groups := map[uint32][]int{}
	for i, n := range nodes {
		if !n.HasTiming {
			continue
		}
		if n.EndpointIndex >= uint32(len(nodes)) {
			// Uniformly reject endpoint_index >= size (SPEC_FULL.md §9
			// resolves the source's >= / > inconsistency this way).
			continue
		}
		groups[n.EndpointIndex] = append(groups[n.EndpointIndex], i)
	}

	out := map[uint32]float32{}
	for _, members := range groups {
		groupMinSlack := float32(0)
		groupMaxSlack := float32(0)
		groupDivider := float32(0)
		first := true
		for _, idx := range members {
			slack := nodeSlack(nodes[idx], d)
			if first || slack < groupMinSlack {
				groupMinSlack = slack
			}
			if first || slack > groupMaxSlack {
				groupMaxSlack = slack
			}
			first = false
			if pr, ok := pathRat(nodes[idx], d); ok && pr > groupDivider {
				groupDivider = pr
			}
		}

		shift := float32(0)
		if -groupMinSlack > shift {
			shift = -groupMinSlack
		}
		divider := groupDivider + shift
		if alt := groupMaxSlack + shift; alt > divider {
			divider = alt
		}
		if divider == 0 {
			divider = 1
		}

		for _, idx := range members {
			slack := nodeSlack(nodes[idx], d)
			crit := 1 - (slack+shift)/divider
			out[nodes[idx].NodeID] = crit
		}
	}
	return out
}

// GetArcCritFactor resolves (source, sink) to an edge, then returns the
// criticality of the sink-side node. When source and sink share a parent
// instance (an intra-cell arc), the sink pin is looked up first among
// driver-side vertices, then sink-side; for an inter-instance arc the
// search order is reversed — this mirrors the original engine's tie-break,
// which matters when a pin name happens to resolve in both partitions.
func (s *State) GetArcCritFactor(source, sink PinHandle, d Direction) (float32, error) {
	if _, ok := s.edges[pairKey{source, sink}]; !ok {
		return 0, fmt.Errorf("correlator: no edge for (%v, %v)", source, sink)
	}

	intra := s.instKeyOf[source] == s.instKeyOf[sink]
	var vertexID uint32
	var found bool
	if intra {
		if vid, ok := s.driverVertex[sink]; ok {
			vertexID, found = vid, true
		} else if vid, ok := s.sinkVertex[sink]; ok {
			vertexID, found = vid, true
		}
	} else {
		if vid, ok := s.sinkVertex[sink]; ok {
			vertexID, found = vid, true
		} else if vid, ok := s.driverVertex[sink]; ok {
			vertexID, found = vid, true
		}
	}
	if !found {
		return 0, fmt.Errorf("correlator: sink pin %v has no vertex", sink)
	}

	crit, ok := s.critByNode[d][vertexID]
	if !ok {
		return 0, nil
	}
	return crit, nil
}

// PinPair is one (source, sink, delay) entry for SetInterPinArcDelays.
type PinPair struct {
	Source PinHandle
	Sink   PinHandle
	Value  float32
}

// SetInterPinArcDelays translates each (source, sink) pair to its matching
// edge ids, sends one aggregated SetArcsDelay, and invalidates cached
// timing. An empty input returns success without a round-trip; if
// translation yields no edges for a non-empty input, it fails rather than
// silently sending an empty override.
func (s *State) SetInterPinArcDelays(pc ProtocolClient, pairs []PinPair, min, max bool) error {
	if len(pairs) == 0 {
		return nil
	}

	var edgeIDs []uint32
	var values []float32
	for _, p := range pairs {
		ids, ok := s.edges[pairKey{p.Source, p.Sink}]
		if !ok {
			continue
		}
		for _, id := range ids {
			edgeIDs = append(edgeIDs, id)
			values = append(values, p.Value)
		}
	}
	if len(edgeIDs) == 0 {
		return fmt.Errorf("correlator: none of %d pin pairs resolved to an edge", len(pairs))
	}

	_, err := pc.Execute(message.SetArcsDelay{EdgeIDs: edgeIDs, DelayValues: values, Min: min, Max: max})
	if err != nil {
		return err
	}
	s.ClearTiming()
	return nil
}
