// Package server implements the single-threaded server protocol loop:
// wait for a frame, decode it by tag, dispatch to an Executor, and send
// back a response frame, per spec.md §4.4.
package server

import (
	"context"
	"log"

	"github.com/m-lab/sta-channel/codec"
	"github.com/m-lab/sta-channel/message"
	"github.com/m-lab/sta-channel/transport"
)

// Executor is the abstract receiver of every command variant; the STA
// engine implements it. Most methods return only a success flag and a
// diagnostic string; the four bulk-data queries also return their result
// body, per spec.md §4.4.
type Executor interface {
	Exit(message.Exit) (bool, string)
	Ping(message.Ping) (bool, string)
	SetHierSeparator(message.SetHierSeparator) (bool, string)
	ReadLibFile(message.ReadLibFile) (bool, string)
	ReadLibStream(message.ReadLibStream) (bool, string)
	ClearLibs(message.ClearLibs) (bool, string)
	ReadVerilogFile(message.ReadVerilogFile) (bool, string)
	ReadVerilogStream(message.ReadVerilogStream) (bool, string)
	LinkTop(message.LinkTop) (bool, string)
	ClearNetlistBlocks(message.ClearNetlistBlocks) (bool, string)
	CreateNetlist(message.CreateNetlist) (bool, string)
	GetGraphData(message.GetGraphData) (message.GraphMap, bool, string)
	ConnectContextPinNet(message.ConnectContextPinNet) (bool, string)
	DisconnectContextPinNet(message.DisconnectContextPinNet) (bool, string)
	ReadSpefFile(message.ReadSpefFile) (bool, string)
	ReadSpefStream(message.ReadSpefStream) (bool, string)
	SetGroupNetLumpCap(message.SetGroupNetLumpCap) (bool, string)
	ReadSdfFile(message.ReadSdfFile) (bool, string)
	ReadSdfStream(message.ReadSdfStream) (bool, string)
	WriteSdfFile(message.WriteSdfFile) (bool, string)
	GetGraphSlacksData(message.GetGraphSlacksData) (message.GraphSlacks, bool, string)
	SetArcsDelay(message.SetArcsDelay) (bool, string)
	CreateClock(message.CreateClock) (bool, string)
	CreateGeneratedClock(message.CreateGeneratedClock) (bool, string)
	SetClockGroups(message.SetClockGroups) (bool, string)
	SetClockLatency(message.SetClockLatency) (bool, string)
	SetInterClockUncertainty(message.SetInterClockUncertainty) (bool, string)
	SetSingleClockUncertainty(message.SetSingleClockUncertainty) (bool, string)
	SetSinglePinUncertainty(message.SetSinglePinUncertainty) (bool, string)
	SetSinglePortDelay(message.SetSinglePortDelay) (bool, string)
	SetInPortTransition(message.SetInPortTransition) (bool, string)
	SetFalsePath(message.SetFalsePath) (bool, string)
	SetMinMaxDelay(message.SetMinMaxDelay) (bool, string)
	SetMulticyclePath(message.SetMulticyclePath) (bool, string)
	DisableSinglePinTiming(message.DisableSinglePinTiming) (bool, string)
	DisableInstTiming(message.DisableInstTiming) (bool, string)
	SetGlobalTimingDerate(message.SetGlobalTimingDerate) (bool, string)
	ReportTiming(message.ReportTiming) (string, bool, string)
	GetDesignStats(message.GetDesignStats) (message.DesignStats, bool, string)
}

// Run services frames on ch until the Exit command is received, the
// context is cancelled, or a send fails. A send failure means the peer is
// gone, so it terminates the loop rather than retrying.
func Run(ctx context.Context, ch *transport.Channel, exec Executor) error {
	for {
		if err := ch.WaitMessageArrival(ctx); err != nil {
			return err
		}
		tag := ch.PeekMessageType()

		resp, exiting, err := dispatch(ch, tag, exec)
		if err != nil {
			return err
		}
		payload, encErr := codec.Encode(resp)
		if encErr != nil {
			log.Printf("server: failed to encode response for %s: %v", tag, encErr)
			payload, _ = codec.Encode(message.ExecutionStatus{Status: message.Failed, Str: encErr.Error()})
			tag = message.TagExecutionStatus
		} else {
			tag = resp.Tag()
		}
		if err := ch.Send(tag, payload); err != nil {
			return err
		}
		if exiting {
			return nil
		}
	}
}

// dispatch decodes the payload for tag and calls the matching Executor
// method. An unknown tag yields Unsupported; a decode failure yields
// Failed; both are reported to the caller as its response, not as an
// error — only a channel failure is an error here.
func dispatch(ch *transport.Channel, tag message.Tag, exec Executor) (message.Response, bool, error) {
	raw, err := ch.PopMessageBlock()
	if err != nil {
		return nil, false, err
	}
	if _, ok := tag.ResponseTag(); !ok {
		return message.ExecutionStatus{Status: message.Unsupported, Str: "unsupported command"}, false, nil
	}
	decoded, decErr := codec.Decode(tag, raw)
	if decErr != nil {
		return message.ExecutionStatus{Status: message.Failed, Str: decErr.Error()}, false, nil
	}

	switch cmd := decoded.(type) {
	case message.Exit:
		ok, diag := exec.Exit(cmd)
		return status(ok, diag), true, nil
	case message.Ping:
		ok, diag := exec.Ping(cmd)
		return status(ok, diag), false, nil
	case message.SetHierSeparator:
		return status(exec.SetHierSeparator(cmd)), false, nil
	case message.ReadLibFile:
		return status(exec.ReadLibFile(cmd)), false, nil
	case message.ReadLibStream:
		return status(exec.ReadLibStream(cmd)), false, nil
	case message.ClearLibs:
		return status(exec.ClearLibs(cmd)), false, nil
	case message.ReadVerilogFile:
		return status(exec.ReadVerilogFile(cmd)), false, nil
	case message.ReadVerilogStream:
		return status(exec.ReadVerilogStream(cmd)), false, nil
	case message.LinkTop:
		return status(exec.LinkTop(cmd)), false, nil
	case message.ClearNetlistBlocks:
		return status(exec.ClearNetlistBlocks(cmd)), false, nil
	case message.CreateNetlist:
		return status(exec.CreateNetlist(cmd)), false, nil
	case message.GetGraphData:
		gm, ok, diag := exec.GetGraphData(cmd)
		if !ok {
			return message.ExecutionStatus{Status: message.Failed, Str: diag}, false, nil
		}
		gm.Status = message.Ok
		return gm, false, nil
	case message.ConnectContextPinNet:
		return status(exec.ConnectContextPinNet(cmd)), false, nil
	case message.DisconnectContextPinNet:
		return status(exec.DisconnectContextPinNet(cmd)), false, nil
	case message.ReadSpefFile:
		return status(exec.ReadSpefFile(cmd)), false, nil
	case message.ReadSpefStream:
		return status(exec.ReadSpefStream(cmd)), false, nil
	case message.SetGroupNetLumpCap:
		return status(exec.SetGroupNetLumpCap(cmd)), false, nil
	case message.ReadSdfFile:
		return status(exec.ReadSdfFile(cmd)), false, nil
	case message.ReadSdfStream:
		return status(exec.ReadSdfStream(cmd)), false, nil
	case message.WriteSdfFile:
		return status(exec.WriteSdfFile(cmd)), false, nil
	case message.GetGraphSlacksData:
		gs, ok, diag := exec.GetGraphSlacksData(cmd)
		if !ok {
			return message.ExecutionStatus{Status: message.Failed, Str: diag}, false, nil
		}
		gs.Status = message.Ok
		return gs, false, nil
	case message.SetArcsDelay:
		return status(exec.SetArcsDelay(cmd)), false, nil
	case message.CreateClock:
		return status(exec.CreateClock(cmd)), false, nil
	case message.CreateGeneratedClock:
		return status(exec.CreateGeneratedClock(cmd)), false, nil
	case message.SetClockGroups:
		return status(exec.SetClockGroups(cmd)), false, nil
	case message.SetClockLatency:
		return status(exec.SetClockLatency(cmd)), false, nil
	case message.SetInterClockUncertainty:
		return status(exec.SetInterClockUncertainty(cmd)), false, nil
	case message.SetSingleClockUncertainty:
		return status(exec.SetSingleClockUncertainty(cmd)), false, nil
	case message.SetSinglePinUncertainty:
		return status(exec.SetSinglePinUncertainty(cmd)), false, nil
	case message.SetSinglePortDelay:
		return status(exec.SetSinglePortDelay(cmd)), false, nil
	case message.SetInPortTransition:
		return status(exec.SetInPortTransition(cmd)), false, nil
	case message.SetFalsePath:
		return status(exec.SetFalsePath(cmd)), false, nil
	case message.SetMinMaxDelay:
		return status(exec.SetMinMaxDelay(cmd)), false, nil
	case message.SetMulticyclePath:
		return status(exec.SetMulticyclePath(cmd)), false, nil
	case message.DisableSinglePinTiming:
		return status(exec.DisableSinglePinTiming(cmd)), false, nil
	case message.DisableInstTiming:
		return status(exec.DisableInstTiming(cmd)), false, nil
	case message.SetGlobalTimingDerate:
		return status(exec.SetGlobalTimingDerate(cmd)), false, nil
	case message.ReportTiming:
		report, ok, diag := exec.ReportTiming(cmd)
		if !ok {
			return message.ExecutionStatus{Status: message.Failed, Str: diag}, false, nil
		}
		return message.ExecutionStatus{Status: message.Ok, Str: report}, false, nil
	case message.GetDesignStats:
		ds, ok, diag := exec.GetDesignStats(cmd)
		if !ok {
			return message.ExecutionStatus{Status: message.Failed, Str: diag}, false, nil
		}
		ds.Status = message.Ok
		return ds, false, nil

	default:
		return message.ExecutionStatus{Status: message.Unsupported, Str: "unsupported command"}, false, nil
	}
}

func status(ok bool, diag string) message.Response {
	if ok {
		return message.ExecutionStatus{Status: message.Ok, Str: diag}
	}
	return message.ExecutionStatus{Status: message.Failed, Str: diag}
}
