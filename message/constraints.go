package message

// PathEndpoints is the shared shape used by the path-exception commands
// (SetFalsePath, SetMinMaxDelay, SetMulticyclePath): a -from/-through/-to
// specification built the same way for all three, mirroring the engine's
// shared "fill path message data" helper.
type PathEndpoints struct {
	FromRise      bool
	FromFall      bool
	FromPins      []ObjectContextName
	FromClocks    []string
	FromInsts     []ObjectContextName

	ThroughRise   bool
	ThroughFall   bool
	ThroughPins   []ObjectContextName
	ThroughInsts  []ObjectContextName
	ThroughNets   []ObjectContextName

	ToRise  bool
	ToFall  bool
	ToPins  []ObjectContextName
	ToClocks []string
	ToInsts []ObjectContextName
}

// CreateClock defines a clock constraint rooted at a set of source pins.
type CreateClock struct {
	Name        string
	Description string
	PinPaths    []ObjectContextName
	Add         bool
	Period      float32
	Waveform    []float32
}

func (CreateClock) Tag() Tag { return TagCreateClock }

// CreateGeneratedClock defines a clock derived from a master clock.
type CreateGeneratedClock struct {
	Name             string
	Description      string
	MasterClockPin   ObjectContextName
	HasMasterClockPin bool
	MasterClockName  string
	PinPaths         []ObjectContextName
	Add              bool
	DivideFactor     int32
	MultiplyFactor   int32
	DutyCycle        float32
	Invert           bool
	Edges            []int32
	EdgeShifts       []float32
}

func (CreateGeneratedClock) Tag() Tag { return TagCreateGeneratedClock }

// SetClockGroups declares a set of mutually exclusive or asynchronous clock
// groups.
type SetClockGroups struct {
	Name              string
	Description       string
	LogicalExclusive  bool
	PhysicalExclusive bool
	Asynchronous      bool
	AllowPaths        bool
	ClockGroups       [][]string
}

func (SetClockGroups) Tag() Tag { return TagSetClockGroups }

// SetClockLatency sets source or network clock latency.
type SetClockLatency struct {
	Source     bool
	Min        bool
	Max        bool
	Early      bool
	Late       bool
	Rise       bool
	Fall       bool
	Value      float32
	ClockName  string
	Pin        ObjectContextName
	HasPin     bool
}

func (SetClockLatency) Tag() Tag { return TagSetClockLatency }

// SetInterClockUncertainty sets setup/hold uncertainty between two clocks.
type SetInterClockUncertainty struct {
	FromClockName string
	FromRise      bool
	FromFall      bool
	ToClockName   string
	ToRise        bool
	ToFall        bool
	Setup         bool
	Hold          bool
	Value         float32
}

func (SetInterClockUncertainty) Tag() Tag { return TagSetInterClockUncertainty }

// SetSingleClockUncertainty sets setup/hold uncertainty of one clock.
type SetSingleClockUncertainty struct {
	ClockName string
	Setup     bool
	Hold      bool
	Value     float32
}

func (SetSingleClockUncertainty) Tag() Tag { return TagSetSingleClockUncertainty }

// SetSinglePinUncertainty sets setup/hold uncertainty at one pin.
type SetSinglePinUncertainty struct {
	Pin   ObjectContextName
	Setup bool
	Hold  bool
	Value float32
}

func (SetSinglePinUncertainty) Tag() Tag { return TagSetSinglePinUncertainty }

// SetSinglePortDelay sets an input/output delay relative to a clock.
type SetSinglePortDelay struct {
	IsInput           bool
	ClockName         string
	ClockPin          ObjectContextName
	HasClockPin       bool
	ClockFall         bool
	LevelSensitive    bool
	DelayRise         bool
	DelayFall         bool
	DelayMax          bool
	DelayMin          bool
	Add               bool
	NetworkLatencyInc bool
	SourceLatencyInc  bool
	Delay             float32
	TargetPin         ObjectContextName
}

func (SetSinglePortDelay) Tag() Tag { return TagSetSinglePortDelay }

// SetInPortTransition sets an input port's edge transition time.
type SetInPortTransition struct {
	DelayRise bool
	DelayFall bool
	DelayMax  bool
	DelayMin  bool
	Value     float32
	TargetPin ObjectContextName
}

func (SetInPortTransition) Tag() Tag { return TagSetInPortTransition }

// SetFalsePath excludes a set of paths from timing analysis.
type SetFalsePath struct {
	Setup   bool
	Hold    bool
	Comment string
	PathEndpoints
}

func (SetFalsePath) Tag() Tag { return TagSetFalsePath }

// SetMinMaxDelay overrides the min or max delay of a set of paths.
type SetMinMaxDelay struct {
	MinDelay bool
	Value    float32
	Comment  string
	PathEndpoints
}

func (SetMinMaxDelay) Tag() Tag { return TagSetMinMaxDelay }

// SetMulticyclePath sets a path-multiplier constraint.
type SetMulticyclePath struct {
	Setup   bool
	Hold    bool
	Start   bool
	End     bool
	Value   int32
	Comment string
	PathEndpoints
}

func (SetMulticyclePath) Tag() Tag { return TagSetMulticyclePath }

// DisableSinglePinTiming disables all timing arcs through a pin.
type DisableSinglePinTiming struct {
	Pin ObjectContextName
}

func (DisableSinglePinTiming) Tag() Tag { return TagDisableSinglePinTiming }

// DisableInstTiming disables the timing arc between two pins of an
// instance.
type DisableInstTiming struct {
	InstContext []string
	FromPin     string
	ToPin       string
}

func (DisableInstTiming) Tag() Tag { return TagDisableInstTiming }

// SetGlobalTimingDerate scales a category of delays/checks by a global
// factor.
type SetGlobalTimingDerate struct {
	CellDelay bool
	CellCheck bool
	NetDelay  bool
	Data      bool
	Clock     bool
	Early     bool
	Late      bool
	Rise      bool
	Fall      bool
	Value     float32
}

func (SetGlobalTimingDerate) Tag() Tag { return TagSetGlobalTimingDerate }
