package message

import "math"

// UnconnectedNet is the sentinel PortData.ConnNetIndices value denoting an
// unconnected bit of a bus (or a scalar port with no connection).
const UnconnectedNet uint32 = math.MaxUint32

// ObjectContextName names an object by its top-down instance-name context
// plus its own name. It is reused for pin, instance and net references
// anywhere a command needs to address an object inside a hierarchy
// (the original engine used distinct Pin/Inst/Net "context path" types for
// this; they all carry the same shape, so one record serves all three).
type ObjectContextName struct {
	InstContext []string
	ObjName     string
}

// PortData describes one port of a BlockData: its name, direction, whether
// it is a bus, the bus's bit range, and one connected-net index per bit (in
// range order). Scalar ports carry exactly one element in ConnNetIndices.
type PortData struct {
	Name           string
	Input          bool
	Output         bool
	Bus            bool
	RangeFrom      int32
	RangeTo        int32
	ConnNetIndices []uint32
}

// InstanceData describes one child instance of a BlockData: its name, the
// index of its master block within the enclosing CreateNetlist's BlockData
// sequence, and its ports.
type InstanceData struct {
	Name          string
	MasterBlockID uint32
	Ports         []PortData
}

// BlockData is one flattened netlist block. Leaf blocks omit Instances.
type BlockData struct {
	Name        string
	Top         bool
	Leaf        bool
	Ports       []PortData
	Instances   []InstanceData
	NetNames    []string
	GndNetName  string
	VddNetName  string
}

// VertexIdData identifies one timing-graph vertex returned by
// GetGraphData: the pin it corresponds to (by context + name), whether it
// drives the net it's on, and its vertex id. Records are indexed by their
// position in the GraphMap response; a record whose VertexID differs from
// its own index denotes an absent vertex.
type VertexIdData struct {
	InstContext []string
	PinName     string
	IsDriver    bool
	VertexID    uint32
}

// EdgeIdData identifies one timing-graph edge between two vertex indices.
type EdgeIdData struct {
	FromVertexID uint32
	ToVertexID   uint32
	EdgeID       uint32
}

// NodeTimingData is one node's timing data as returned by
// GetGraphSlacksData.
type NodeTimingData struct {
	NodeID     uint32
	IsEndpoint bool
	HasTiming  bool

	MinAAT float32
	MinRAT float32
	MaxAAT float32
	MaxRAT float32

	HasEndMinPathRat bool
	HasEndMaxPathRat bool
	MinPathRat       float32
	MaxPathRat       float32

	EndpointIndex uint32
}
