package message

// Every command type below carries Tag() returning its fixed wire tag, so
// codec and client code can stay generic over "any command".

// Command is implemented by every command-direction message variant.
type Command interface {
	Tag() Tag
}

// --- Lifecycle -------------------------------------------------------------

// Exit asks the server to terminate after replying.
type Exit struct{}

func (Exit) Tag() Tag { return TagExit }

// Ping carries a client-side response deadline; it is the only command with
// a timeout, per the protocol's single cancellable wait.
type Ping struct {
	TimeoutMs uint64
}

func (Ping) Tag() Tag { return TagPing }

// SetHierSeparator configures the character used to flatten a top-down
// instance-name context into a path string.
type SetHierSeparator struct {
	Separator byte
}

func (SetHierSeparator) Tag() Tag { return TagSetHierSeparator }

// --- Ingestion ---------------------------------------------------------

// ReadLibFile loads a Liberty library from a file path on the server host.
type ReadLibFile struct {
	Path string
}

func (ReadLibFile) Tag() Tag { return TagReadLibFile }

// ReadLibStream loads a Liberty library from an in-band byte stream.
type ReadLibStream struct {
	Data []byte
}

func (ReadLibStream) Tag() Tag { return TagReadLibStream }

// ClearLibs discards all loaded Liberty libraries.
type ClearLibs struct{}

func (ClearLibs) Tag() Tag { return TagClearLibs }

// ReadVerilogFile loads a structural Verilog netlist from a server-side
// file path.
type ReadVerilogFile struct {
	Path string
}

func (ReadVerilogFile) Tag() Tag { return TagReadVerilogFile }

// ReadVerilogStream loads a structural Verilog netlist from an in-band byte
// stream.
type ReadVerilogStream struct {
	Data []byte
}

func (ReadVerilogStream) Tag() Tag { return TagReadVerilogStream }

// LinkTop selects the top-level block by name and invalidates any prior
// graph correlation.
type LinkTop struct {
	BlockName string
}

func (LinkTop) Tag() Tag { return TagLinkTop }

// ClearNetlistBlocks discards all flattened netlist blocks.
type ClearNetlistBlocks struct{}

func (ClearNetlistBlocks) Tag() Tag { return TagClearNetlistBlocks }

// CreateNetlist uploads a flattened block hierarchy, as produced by the
// netlist flattener.
type CreateNetlist struct {
	Blocks []BlockData
}

func (CreateNetlist) Tag() Tag { return TagCreateNetlist }

// GetGraphData requests the current timing graph's vertex and edge tables.
type GetGraphData struct{}

func (GetGraphData) Tag() Tag { return TagGetGraphData }

// ConnectContextPinNet attaches a pin to a net, both addressed within an
// instance context.
type ConnectContextPinNet struct {
	InstContext []string
	NetName     string
	InstName    string
	PinName     string
}

func (ConnectContextPinNet) Tag() Tag { return TagConnectContextPinNet }

// DisconnectContextPinNet detaches a pin from whatever net it is on.
type DisconnectContextPinNet struct {
	InstContext []string
	NetName     string
	InstName    string
	PinName     string
}

func (DisconnectContextPinNet) Tag() Tag { return TagDisconnectContextPinNet }

// ReadSpefFile loads parasitics from a server-side SPEF file.
type ReadSpefFile struct {
	Path string
}

func (ReadSpefFile) Tag() Tag { return TagReadSpefFile }

// ReadSpefStream loads parasitics from an in-band SPEF byte stream.
type ReadSpefStream struct {
	Data []byte
}

func (ReadSpefStream) Tag() Tag { return TagReadSpefStream }

// SetGroupNetLumpCap overrides lumped net capacitance for a batch of nets,
// one value per addressed net.
type SetGroupNetLumpCap struct {
	Nets   []ObjectContextName
	Values []float32
}

func (SetGroupNetLumpCap) Tag() Tag { return TagSetGroupNetLumpCap }

// ReadSdfFile loads arc delays from a server-side SDF file.
type ReadSdfFile struct {
	Path string
}

func (ReadSdfFile) Tag() Tag { return TagReadSdfFile }

// ReadSdfStream loads arc delays from an in-band SDF byte stream.
type ReadSdfStream struct {
	Data []byte
}

func (ReadSdfStream) Tag() Tag { return TagReadSdfStream }

// WriteSdfFile dumps the current arc delays to a server-side SDF file.
type WriteSdfFile struct {
	Path string
}

func (WriteSdfFile) Tag() Tag { return TagWriteSdfFile }

// GetGraphSlacksData requests the current per-node timing data (AAT/RAT,
// path RATs, endpoint grouping) for both min and max analyses.
type GetGraphSlacksData struct{}

func (GetGraphSlacksData) Tag() Tag { return TagGetGraphSlacksData }

// SetArcsDelay overrides the delay of a batch of timing-graph edges. Min
// and Max select which analysis the override applies to; both may be set
// to update a single edge set for both analyses in one round-trip.
type SetArcsDelay struct {
	EdgeIDs     []uint32
	DelayValues []float32
	Min         bool
	Max         bool
}

func (SetArcsDelay) Tag() Tag { return TagSetArcsDelay }

// --- Queries -------------------------------------------------------------

// ReportTiming asks the engine to render a human-readable timing report;
// the body comes back in ExecutionStatus's string field.
type ReportTiming struct {
	FromPins []ObjectContextName
	ToPins   []ObjectContextName
	MaxPaths uint32
}

func (ReportTiming) Tag() Tag { return TagReportTiming }

// GetDesignStats requests the current worst/total negative slack summary.
type GetDesignStats struct{}

func (GetDesignStats) Tag() Tag { return TagGetDesignStats }
