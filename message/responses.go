package message

// Response is implemented by every response-direction message variant.
type Response interface {
	Tag() Tag
}

// ExecutionStatus is the generic response: a status plus a free-form
// diagnostic string. ReportTiming also reuses this variant, with Str
// carrying the rendered report body instead of a diagnostic.
type ExecutionStatus struct {
	Status Status
	Str    string
}

func (ExecutionStatus) Tag() Tag { return TagExecutionStatus }

// GraphMap is GetGraphData's response: the full vertex and edge tables of
// the current timing graph.
type GraphMap struct {
	Status   Status
	Vertices []VertexIdData
	Edges    []EdgeIdData
}

func (GraphMap) Tag() Tag { return TagGraphMap }

// GraphSlacks is GetGraphSlacksData's response: per-node timing data for
// every node the engine tracks.
type GraphSlacks struct {
	Status Status
	Nodes  []NodeTimingData
}

func (GraphSlacks) Tag() Tag { return TagGraphSlacks }

// DesignStats is GetDesignStats's response: worst and total negative slack
// for both min and max analyses.
type DesignStats struct {
	Status Status
	MinWNS float32
	MaxWNS float32
	MinTNS float32
	MaxTNS float32
}

func (DesignStats) Tag() Tag { return TagDesignStats }
