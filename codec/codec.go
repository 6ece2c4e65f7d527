package codec

import (
	"errors"
	"fmt"

	"github.com/m-lab/sta-channel/message"
)

var errTooLong = errors.New("codec: declared sequence length exceeds maximum")

// Encode serializes a command or response variant into its wire payload.
// The tag itself is not part of the payload; it travels in the transport
// frame's sidecar fields (see transport.Send).
func Encode(v interface{}) ([]byte, error) {
	w := &writer{}
	switch m := v.(type) {
	case message.Exit:
	case message.Ping:
		w.u64(m.TimeoutMs)
	case message.SetHierSeparator:
		w.u8(m.Separator)
	case message.ReadLibFile:
		w.str(m.Path)
	case message.ReadLibStream:
		w.bytes(m.Data)
	case message.ClearLibs:
	case message.ReadVerilogFile:
		w.str(m.Path)
	case message.ReadVerilogStream:
		w.bytes(m.Data)
	case message.LinkTop:
		w.str(m.BlockName)
	case message.ClearNetlistBlocks:
	case message.CreateNetlist:
		w.blockDataSlice(m.Blocks)
	case message.GetGraphData:
	case message.ConnectContextPinNet:
		w.strSlice(m.InstContext)
		w.str(m.NetName)
		w.str(m.InstName)
		w.str(m.PinName)
	case message.DisconnectContextPinNet:
		w.strSlice(m.InstContext)
		w.str(m.NetName)
		w.str(m.InstName)
		w.str(m.PinName)
	case message.ReadSpefFile:
		w.str(m.Path)
	case message.ReadSpefStream:
		w.bytes(m.Data)
	case message.SetGroupNetLumpCap:
		w.objectContextNameSlice(m.Nets)
		w.f32Slice(m.Values)
	case message.ReadSdfFile:
		w.str(m.Path)
	case message.ReadSdfStream:
		w.bytes(m.Data)
	case message.WriteSdfFile:
		w.str(m.Path)
	case message.GetGraphSlacksData:
	case message.SetArcsDelay:
		w.u32Slice(m.EdgeIDs)
		w.f32Slice(m.DelayValues)
		w.boolean(m.Min)
		w.boolean(m.Max)
	case message.CreateClock:
		w.str(m.Name)
		w.str(m.Description)
		w.objectContextNameSlice(m.PinPaths)
		w.boolean(m.Add)
		w.f32(m.Period)
		w.f32Slice(m.Waveform)
	case message.CreateGeneratedClock:
		w.str(m.Name)
		w.str(m.Description)
		w.boolean(m.HasMasterClockPin)
		w.objectContextName(m.MasterClockPin)
		w.str(m.MasterClockName)
		w.objectContextNameSlice(m.PinPaths)
		w.boolean(m.Add)
		w.i32(m.DivideFactor)
		w.i32(m.MultiplyFactor)
		w.f32(m.DutyCycle)
		w.boolean(m.Invert)
		w.i32Slice(m.Edges)
		w.f32Slice(m.EdgeShifts)
	case message.SetClockGroups:
		w.str(m.Name)
		w.str(m.Description)
		w.boolean(m.LogicalExclusive)
		w.boolean(m.PhysicalExclusive)
		w.boolean(m.Asynchronous)
		w.boolean(m.AllowPaths)
		w.u32(uint32(len(m.ClockGroups)))
		for _, g := range m.ClockGroups {
			w.strSlice(g)
		}
	case message.SetClockLatency:
		w.boolean(m.Source)
		w.boolean(m.Min)
		w.boolean(m.Max)
		w.boolean(m.Early)
		w.boolean(m.Late)
		w.boolean(m.Rise)
		w.boolean(m.Fall)
		w.f32(m.Value)
		w.str(m.ClockName)
		w.boolean(m.HasPin)
		w.objectContextName(m.Pin)
	case message.SetInterClockUncertainty:
		w.str(m.FromClockName)
		w.boolean(m.FromRise)
		w.boolean(m.FromFall)
		w.str(m.ToClockName)
		w.boolean(m.ToRise)
		w.boolean(m.ToFall)
		w.boolean(m.Setup)
		w.boolean(m.Hold)
		w.f32(m.Value)
	case message.SetSingleClockUncertainty:
		w.str(m.ClockName)
		w.boolean(m.Setup)
		w.boolean(m.Hold)
		w.f32(m.Value)
	case message.SetSinglePinUncertainty:
		w.objectContextName(m.Pin)
		w.boolean(m.Setup)
		w.boolean(m.Hold)
		w.f32(m.Value)
	case message.SetSinglePortDelay:
		w.boolean(m.IsInput)
		w.str(m.ClockName)
		w.boolean(m.HasClockPin)
		w.objectContextName(m.ClockPin)
		w.boolean(m.ClockFall)
		w.boolean(m.LevelSensitive)
		w.boolean(m.DelayRise)
		w.boolean(m.DelayFall)
		w.boolean(m.DelayMax)
		w.boolean(m.DelayMin)
		w.boolean(m.Add)
		w.boolean(m.NetworkLatencyInc)
		w.boolean(m.SourceLatencyInc)
		w.f32(m.Delay)
		w.objectContextName(m.TargetPin)
	case message.SetInPortTransition:
		w.boolean(m.DelayRise)
		w.boolean(m.DelayFall)
		w.boolean(m.DelayMax)
		w.boolean(m.DelayMin)
		w.f32(m.Value)
		w.objectContextName(m.TargetPin)
	case message.SetFalsePath:
		w.boolean(m.Setup)
		w.boolean(m.Hold)
		w.str(m.Comment)
		w.pathEndpoints(m.PathEndpoints)
	case message.SetMinMaxDelay:
		w.boolean(m.MinDelay)
		w.f32(m.Value)
		w.str(m.Comment)
		w.pathEndpoints(m.PathEndpoints)
	case message.SetMulticyclePath:
		w.boolean(m.Setup)
		w.boolean(m.Hold)
		w.boolean(m.Start)
		w.boolean(m.End)
		w.i32(m.Value)
		w.str(m.Comment)
		w.pathEndpoints(m.PathEndpoints)
	case message.DisableSinglePinTiming:
		w.objectContextName(m.Pin)
	case message.DisableInstTiming:
		w.strSlice(m.InstContext)
		w.str(m.FromPin)
		w.str(m.ToPin)
	case message.SetGlobalTimingDerate:
		w.boolean(m.CellDelay)
		w.boolean(m.CellCheck)
		w.boolean(m.NetDelay)
		w.boolean(m.Data)
		w.boolean(m.Clock)
		w.boolean(m.Early)
		w.boolean(m.Late)
		w.boolean(m.Rise)
		w.boolean(m.Fall)
		w.f32(m.Value)
	case message.ReportTiming:
		w.objectContextNameSlice(m.FromPins)
		w.objectContextNameSlice(m.ToPins)
		w.u32(m.MaxPaths)
	case message.GetDesignStats:

	case message.ExecutionStatus:
		w.u8(uint8(m.Status))
		w.str(m.Str)
	case message.GraphMap:
		w.u8(uint8(m.Status))
		w.vertexIdDataSlice(m.Vertices)
		w.edgeIdDataSlice(m.Edges)
	case message.GraphSlacks:
		w.u8(uint8(m.Status))
		w.nodeTimingDataSlice(m.Nodes)
	case message.DesignStats:
		w.u8(uint8(m.Status))
		w.f32(m.MinWNS)
		w.f32(m.MaxWNS)
		w.f32(m.MinTNS)
		w.f32(m.MaxTNS)

	default:
		return nil, fmt.Errorf("codec: unknown message type %T", v)
	}
	return w.buf, nil
}

// Decode parses payload as the variant identified by tag. It fails if tag
// does not match a known variant, or if payload is truncated or malformed
// for that variant.
func Decode(tag message.Tag, payload []byte) (interface{}, error) {
	r := &reader{buf: payload}
	v, err := decodeBody(tag, r)
	if err != nil {
		return nil, fmt.Errorf("codec: decode %s: %w", tag, err)
	}
	return v, nil
}

func decodeBody(tag message.Tag, r *reader) (interface{}, error) {
	switch tag {
	case message.TagExit:
		return message.Exit{}, nil
	case message.TagPing:
		v, err := r.u64()
		return message.Ping{TimeoutMs: v}, err
	case message.TagSetHierSeparator:
		v, err := r.u8()
		return message.SetHierSeparator{Separator: v}, err
	case message.TagReadLibFile:
		v, err := r.str()
		return message.ReadLibFile{Path: v}, err
	case message.TagReadLibStream:
		v, err := r.bytes()
		return message.ReadLibStream{Data: v}, err
	case message.TagClearLibs:
		return message.ClearLibs{}, nil
	case message.TagReadVerilogFile:
		v, err := r.str()
		return message.ReadVerilogFile{Path: v}, err
	case message.TagReadVerilogStream:
		v, err := r.bytes()
		return message.ReadVerilogStream{Data: v}, err
	case message.TagLinkTop:
		v, err := r.str()
		return message.LinkTop{BlockName: v}, err
	case message.TagClearNetlistBlocks:
		return message.ClearNetlistBlocks{}, nil
	case message.TagCreateNetlist:
		v, err := r.blockDataSlice()
		return message.CreateNetlist{Blocks: v}, err
	case message.TagGetGraphData:
		return message.GetGraphData{}, nil
	case message.TagConnectContextPinNet:
		return decodeContextPinNet(r, false)
	case message.TagDisconnectContextPinNet:
		return decodeContextPinNet(r, true)
	case message.TagReadSpefFile:
		v, err := r.str()
		return message.ReadSpefFile{Path: v}, err
	case message.TagReadSpefStream:
		v, err := r.bytes()
		return message.ReadSpefStream{Data: v}, err
	case message.TagSetGroupNetLumpCap:
		nets, err := r.objectContextNameSlice()
		if err != nil {
			return nil, err
		}
		values, err := r.f32Slice()
		return message.SetGroupNetLumpCap{Nets: nets, Values: values}, err
	case message.TagReadSdfFile:
		v, err := r.str()
		return message.ReadSdfFile{Path: v}, err
	case message.TagReadSdfStream:
		v, err := r.bytes()
		return message.ReadSdfStream{Data: v}, err
	case message.TagWriteSdfFile:
		v, err := r.str()
		return message.WriteSdfFile{Path: v}, err
	case message.TagGetGraphSlacksData:
		return message.GetGraphSlacksData{}, nil
	case message.TagSetArcsDelay:
		return decodeSetArcsDelay(r)
	case message.TagCreateClock:
		return decodeCreateClock(r)
	case message.TagCreateGeneratedClock:
		return decodeCreateGeneratedClock(r)
	case message.TagSetClockGroups:
		return decodeSetClockGroups(r)
	case message.TagSetClockLatency:
		return decodeSetClockLatency(r)
	case message.TagSetInterClockUncertainty:
		return decodeSetInterClockUncertainty(r)
	case message.TagSetSingleClockUncertainty:
		return decodeSetSingleClockUncertainty(r)
	case message.TagSetSinglePinUncertainty:
		return decodeSetSinglePinUncertainty(r)
	case message.TagSetSinglePortDelay:
		return decodeSetSinglePortDelay(r)
	case message.TagSetInPortTransition:
		return decodeSetInPortTransition(r)
	case message.TagSetFalsePath:
		return decodeSetFalsePath(r)
	case message.TagSetMinMaxDelay:
		return decodeSetMinMaxDelay(r)
	case message.TagSetMulticyclePath:
		return decodeSetMulticyclePath(r)
	case message.TagDisableSinglePinTiming:
		v, err := r.objectContextName()
		return message.DisableSinglePinTiming{Pin: v}, err
	case message.TagDisableInstTiming:
		return decodeDisableInstTiming(r)
	case message.TagSetGlobalTimingDerate:
		return decodeSetGlobalTimingDerate(r)
	case message.TagReportTiming:
		return decodeReportTiming(r)
	case message.TagGetDesignStats:
		return message.GetDesignStats{}, nil

	case message.TagExecutionStatus:
		return decodeExecutionStatus(r)
	case message.TagGraphMap:
		return decodeGraphMap(r)
	case message.TagGraphSlacks:
		return decodeGraphSlacks(r)
	case message.TagDesignStats:
		return decodeDesignStats(r)

	default:
		return nil, fmt.Errorf("unknown tag %d", tag)
	}
}

func decodeContextPinNet(r *reader, disconnect bool) (interface{}, error) {
	ctx, err := r.strSlice()
	if err != nil {
		return nil, err
	}
	net, err := r.str()
	if err != nil {
		return nil, err
	}
	inst, err := r.str()
	if err != nil {
		return nil, err
	}
	pin, err := r.str()
	if err != nil {
		return nil, err
	}
	if disconnect {
		return message.DisconnectContextPinNet{InstContext: ctx, NetName: net, InstName: inst, PinName: pin}, nil
	}
	return message.ConnectContextPinNet{InstContext: ctx, NetName: net, InstName: inst, PinName: pin}, nil
}

func decodeSetArcsDelay(r *reader) (interface{}, error) {
	edges, err := r.u32Slice()
	if err != nil {
		return nil, err
	}
	values, err := r.f32Slice()
	if err != nil {
		return nil, err
	}
	min, err := r.boolean()
	if err != nil {
		return nil, err
	}
	max, err := r.boolean()
	if err != nil {
		return nil, err
	}
	return message.SetArcsDelay{EdgeIDs: edges, DelayValues: values, Min: min, Max: max}, nil
}

func decodeCreateClock(r *reader) (interface{}, error) {
	var m message.CreateClock
	var err error
	if m.Name, err = r.str(); err != nil {
		return nil, err
	}
	if m.Description, err = r.str(); err != nil {
		return nil, err
	}
	if m.PinPaths, err = r.objectContextNameSlice(); err != nil {
		return nil, err
	}
	if m.Add, err = r.boolean(); err != nil {
		return nil, err
	}
	if m.Period, err = r.f32(); err != nil {
		return nil, err
	}
	if m.Waveform, err = r.f32Slice(); err != nil {
		return nil, err
	}
	return m, nil
}

func decodeCreateGeneratedClock(r *reader) (interface{}, error) {
	var m message.CreateGeneratedClock
	var err error
	if m.Name, err = r.str(); err != nil {
		return nil, err
	}
	if m.Description, err = r.str(); err != nil {
		return nil, err
	}
	if m.HasMasterClockPin, err = r.boolean(); err != nil {
		return nil, err
	}
	if m.MasterClockPin, err = r.objectContextName(); err != nil {
		return nil, err
	}
	if m.MasterClockName, err = r.str(); err != nil {
		return nil, err
	}
	if m.PinPaths, err = r.objectContextNameSlice(); err != nil {
		return nil, err
	}
	if m.Add, err = r.boolean(); err != nil {
		return nil, err
	}
	if m.DivideFactor, err = r.i32(); err != nil {
		return nil, err
	}
	if m.MultiplyFactor, err = r.i32(); err != nil {
		return nil, err
	}
	if m.DutyCycle, err = r.f32(); err != nil {
		return nil, err
	}
	if m.Invert, err = r.boolean(); err != nil {
		return nil, err
	}
	if m.Edges, err = r.i32Slice(); err != nil {
		return nil, err
	}
	if m.EdgeShifts, err = r.f32Slice(); err != nil {
		return nil, err
	}
	return m, nil
}

func decodeSetClockGroups(r *reader) (interface{}, error) {
	var m message.SetClockGroups
	var err error
	if m.Name, err = r.str(); err != nil {
		return nil, err
	}
	if m.Description, err = r.str(); err != nil {
		return nil, err
	}
	if m.LogicalExclusive, err = r.boolean(); err != nil {
		return nil, err
	}
	if m.PhysicalExclusive, err = r.boolean(); err != nil {
		return nil, err
	}
	if m.Asynchronous, err = r.boolean(); err != nil {
		return nil, err
	}
	if m.AllowPaths, err = r.boolean(); err != nil {
		return nil, err
	}
	n, err := r.u32()
	if err != nil {
		return nil, err
	}
	if n > maxSeqLen {
		return nil, errTooLong
	}
	m.ClockGroups = make([][]string, n)
	for i := range m.ClockGroups {
		if m.ClockGroups[i], err = r.strSlice(); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func decodeSetClockLatency(r *reader) (interface{}, error) {
	var m message.SetClockLatency
	var err error
	if m.Source, err = r.boolean(); err != nil {
		return nil, err
	}
	if m.Min, err = r.boolean(); err != nil {
		return nil, err
	}
	if m.Max, err = r.boolean(); err != nil {
		return nil, err
	}
	if m.Early, err = r.boolean(); err != nil {
		return nil, err
	}
	if m.Late, err = r.boolean(); err != nil {
		return nil, err
	}
	if m.Rise, err = r.boolean(); err != nil {
		return nil, err
	}
	if m.Fall, err = r.boolean(); err != nil {
		return nil, err
	}
	if m.Value, err = r.f32(); err != nil {
		return nil, err
	}
	if m.ClockName, err = r.str(); err != nil {
		return nil, err
	}
	if m.HasPin, err = r.boolean(); err != nil {
		return nil, err
	}
	if m.Pin, err = r.objectContextName(); err != nil {
		return nil, err
	}
	return m, nil
}

func decodeSetInterClockUncertainty(r *reader) (interface{}, error) {
	var m message.SetInterClockUncertainty
	var err error
	if m.FromClockName, err = r.str(); err != nil {
		return nil, err
	}
	if m.FromRise, err = r.boolean(); err != nil {
		return nil, err
	}
	if m.FromFall, err = r.boolean(); err != nil {
		return nil, err
	}
	if m.ToClockName, err = r.str(); err != nil {
		return nil, err
	}
	if m.ToRise, err = r.boolean(); err != nil {
		return nil, err
	}
	if m.ToFall, err = r.boolean(); err != nil {
		return nil, err
	}
	if m.Setup, err = r.boolean(); err != nil {
		return nil, err
	}
	if m.Hold, err = r.boolean(); err != nil {
		return nil, err
	}
	if m.Value, err = r.f32(); err != nil {
		return nil, err
	}
	return m, nil
}

func decodeSetSingleClockUncertainty(r *reader) (interface{}, error) {
	var m message.SetSingleClockUncertainty
	var err error
	if m.ClockName, err = r.str(); err != nil {
		return nil, err
	}
	if m.Setup, err = r.boolean(); err != nil {
		return nil, err
	}
	if m.Hold, err = r.boolean(); err != nil {
		return nil, err
	}
	if m.Value, err = r.f32(); err != nil {
		return nil, err
	}
	return m, nil
}

func decodeSetSinglePinUncertainty(r *reader) (interface{}, error) {
	var m message.SetSinglePinUncertainty
	var err error
	if m.Pin, err = r.objectContextName(); err != nil {
		return nil, err
	}
	if m.Setup, err = r.boolean(); err != nil {
		return nil, err
	}
	if m.Hold, err = r.boolean(); err != nil {
		return nil, err
	}
	if m.Value, err = r.f32(); err != nil {
		return nil, err
	}
	return m, nil
}

func decodeSetSinglePortDelay(r *reader) (interface{}, error) {
	var m message.SetSinglePortDelay
	var err error
	if m.IsInput, err = r.boolean(); err != nil {
		return nil, err
	}
	if m.ClockName, err = r.str(); err != nil {
		return nil, err
	}
	if m.HasClockPin, err = r.boolean(); err != nil {
		return nil, err
	}
	if m.ClockPin, err = r.objectContextName(); err != nil {
		return nil, err
	}
	if m.ClockFall, err = r.boolean(); err != nil {
		return nil, err
	}
	if m.LevelSensitive, err = r.boolean(); err != nil {
		return nil, err
	}
	if m.DelayRise, err = r.boolean(); err != nil {
		return nil, err
	}
	if m.DelayFall, err = r.boolean(); err != nil {
		return nil, err
	}
	if m.DelayMax, err = r.boolean(); err != nil {
		return nil, err
	}
	if m.DelayMin, err = r.boolean(); err != nil {
		return nil, err
	}
	if m.Add, err = r.boolean(); err != nil {
		return nil, err
	}
	if m.NetworkLatencyInc, err = r.boolean(); err != nil {
		return nil, err
	}
	if m.SourceLatencyInc, err = r.boolean(); err != nil {
		return nil, err
	}
	if m.Delay, err = r.f32(); err != nil {
		return nil, err
	}
	if m.TargetPin, err = r.objectContextName(); err != nil {
		return nil, err
	}
	return m, nil
}

func decodeSetInPortTransition(r *reader) (interface{}, error) {
	var m message.SetInPortTransition
	var err error
	if m.DelayRise, err = r.boolean(); err != nil {
		return nil, err
	}
	if m.DelayFall, err = r.boolean(); err != nil {
		return nil, err
	}
	if m.DelayMax, err = r.boolean(); err != nil {
		return nil, err
	}
	if m.DelayMin, err = r.boolean(); err != nil {
		return nil, err
	}
	if m.Value, err = r.f32(); err != nil {
		return nil, err
	}
	if m.TargetPin, err = r.objectContextName(); err != nil {
		return nil, err
	}
	return m, nil
}

func decodeSetFalsePath(r *reader) (interface{}, error) {
	var m message.SetFalsePath
	var err error
	if m.Setup, err = r.boolean(); err != nil {
		return nil, err
	}
	if m.Hold, err = r.boolean(); err != nil {
		return nil, err
	}
	if m.Comment, err = r.str(); err != nil {
		return nil, err
	}
	if m.PathEndpoints, err = r.pathEndpoints(); err != nil {
		return nil, err
	}
	return m, nil
}

func decodeSetMinMaxDelay(r *reader) (interface{}, error) {
	var m message.SetMinMaxDelay
	var err error
	if m.MinDelay, err = r.boolean(); err != nil {
		return nil, err
	}
	if m.Value, err = r.f32(); err != nil {
		return nil, err
	}
	if m.Comment, err = r.str(); err != nil {
		return nil, err
	}
	if m.PathEndpoints, err = r.pathEndpoints(); err != nil {
		return nil, err
	}
	return m, nil
}

func decodeSetMulticyclePath(r *reader) (interface{}, error) {
	var m message.SetMulticyclePath
	var err error
	if m.Setup, err = r.boolean(); err != nil {
		return nil, err
	}
	if m.Hold, err = r.boolean(); err != nil {
		return nil, err
	}
	if m.Start, err = r.boolean(); err != nil {
		return nil, err
	}
	if m.End, err = r.boolean(); err != nil {
		return nil, err
	}
	if m.Value, err = r.i32(); err != nil {
		return nil, err
	}
	if m.Comment, err = r.str(); err != nil {
		return nil, err
	}
	if m.PathEndpoints, err = r.pathEndpoints(); err != nil {
		return nil, err
	}
	return m, nil
}

func decodeDisableInstTiming(r *reader) (interface{}, error) {
	var m message.DisableInstTiming
	var err error
	if m.InstContext, err = r.strSlice(); err != nil {
		return nil, err
	}
	if m.FromPin, err = r.str(); err != nil {
		return nil, err
	}
	if m.ToPin, err = r.str(); err != nil {
		return nil, err
	}
	return m, nil
}

func decodeSetGlobalTimingDerate(r *reader) (interface{}, error) {
	var m message.SetGlobalTimingDerate
	var err error
	if m.CellDelay, err = r.boolean(); err != nil {
		return nil, err
	}
	if m.CellCheck, err = r.boolean(); err != nil {
		return nil, err
	}
	if m.NetDelay, err = r.boolean(); err != nil {
		return nil, err
	}
	if m.Data, err = r.boolean(); err != nil {
		return nil, err
	}
	if m.Clock, err = r.boolean(); err != nil {
		return nil, err
	}
	if m.Early, err = r.boolean(); err != nil {
		return nil, err
	}
	if m.Late, err = r.boolean(); err != nil {
		return nil, err
	}
	if m.Rise, err = r.boolean(); err != nil {
		return nil, err
	}
	if m.Fall, err = r.boolean(); err != nil {
		return nil, err
	}
	if m.Value, err = r.f32(); err != nil {
		return nil, err
	}
	return m, nil
}

func decodeReportTiming(r *reader) (interface{}, error) {
	var m message.ReportTiming
	var err error
	if m.FromPins, err = r.objectContextNameSlice(); err != nil {
		return nil, err
	}
	if m.ToPins, err = r.objectContextNameSlice(); err != nil {
		return nil, err
	}
	if m.MaxPaths, err = r.u32(); err != nil {
		return nil, err
	}
	return m, nil
}

func decodeExecutionStatus(r *reader) (interface{}, error) {
	status, err := r.u8()
	if err != nil {
		return nil, err
	}
	str, err := r.str()
	if err != nil {
		return nil, err
	}
	return message.ExecutionStatus{Status: message.Status(status), Str: str}, nil
}

func decodeGraphMap(r *reader) (interface{}, error) {
	status, err := r.u8()
	if err != nil {
		return nil, err
	}
	vertices, err := r.vertexIdDataSlice()
	if err != nil {
		return nil, err
	}
	edges, err := r.edgeIdDataSlice()
	if err != nil {
		return nil, err
	}
	return message.GraphMap{Status: message.Status(status), Vertices: vertices, Edges: edges}, nil
}

func decodeGraphSlacks(r *reader) (interface{}, error) {
	status, err := r.u8()
	if err != nil {
		return nil, err
	}
	nodes, err := r.nodeTimingDataSlice()
	if err != nil {
		return nil, err
	}
	return message.GraphSlacks{Status: message.Status(status), Nodes: nodes}, nil
}

func decodeDesignStats(r *reader) (interface{}, error) {
	var m message.DesignStats
	status, err := r.u8()
	if err != nil {
		return nil, err
	}
	m.Status = message.Status(status)
	if m.MinWNS, err = r.f32(); err != nil {
		return nil, err
	}
	if m.MaxWNS, err = r.f32(); err != nil {
		return nil, err
	}
	if m.MinTNS, err = r.f32(); err != nil {
		return nil, err
	}
	if m.MaxTNS, err = r.f32(); err != nil {
		return nil, err
	}
	return m, nil
}
