package correlator

import (
	"math"
	"testing"

	"github.com/m-lab/sta-channel/message"
)

func almostEqual(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-3
}

// TestCriticalityExample reproduces spec.md §8 scenario 6: a group of
// three nodes with slacks {-2, 0, 3} and group_divider=5 should yield
// criticalities {1.000, 0.714, 0.286}.
func TestCriticalityExample(t *testing.T) {
	nodes := []message.NodeTimingData{
		{NodeID: 0, HasTiming: true, EndpointIndex: 0, IsEndpoint: true, HasEndMaxPathRat: true, MaxPathRat: 5, MaxRAT: 0, MaxAAT: 2},  // slack -2
		{NodeID: 1, HasTiming: true, EndpointIndex: 0, HasEndMaxPathRat: true, MaxPathRat: 5, MaxRAT: 0, MaxAAT: 0},                    // slack 0
		{NodeID: 2, HasTiming: true, EndpointIndex: 0, HasEndMaxPathRat: true, MaxPathRat: 5, MaxRAT: 3, MaxAAT: 0},                    // slack 3
	}

	crit := computeCriticality(nodes, Max)

	want := map[uint32]float32{0: 1.0, 1: 0.714, 2: 0.286}
	for id, w := range want {
		got, ok := crit[id]
		if !ok {
			t.Fatalf("node %d missing from criticality map", id)
		}
		if !almostEqual(got, w) {
			t.Errorf("node %d: got %v, want %v", id, got, w)
		}
	}
}

func TestCriticalitySkipsNoTimingAndOutOfRangeEndpoint(t *testing.T) {
	nodes := []message.NodeTimingData{
		{NodeID: 0, HasTiming: false, EndpointIndex: 0},
		{NodeID: 1, HasTiming: true, EndpointIndex: 99},
	}
	crit := computeCriticality(nodes, Min)
	if len(crit) != 0 {
		t.Errorf("expected no criticality entries, got %v", crit)
	}
}
