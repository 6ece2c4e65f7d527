package server_test

import (
	"context"
	"testing"
	"time"

	"github.com/m-lab/sta-channel/codec"
	"github.com/m-lab/sta-channel/message"
	"github.com/m-lab/sta-channel/server"
	"github.com/m-lab/sta-channel/transport"
)

type stubEngine struct{}

func (stubEngine) Exit(message.Exit) (bool, string)                         { return true, "" }
func (stubEngine) Ping(message.Ping) (bool, string)                         { return true, "" }
func (stubEngine) SetHierSeparator(message.SetHierSeparator) (bool, string) { return true, "" }
func (stubEngine) ReadLibFile(message.ReadLibFile) (bool, string)           { return true, "" }
func (stubEngine) ReadLibStream(message.ReadLibStream) (bool, string)       { return true, "" }
func (stubEngine) ClearLibs(message.ClearLibs) (bool, string)               { return true, "" }
func (stubEngine) ReadVerilogFile(message.ReadVerilogFile) (bool, string)   { return true, "" }
func (stubEngine) ReadVerilogStream(message.ReadVerilogStream) (bool, string) {
	return true, ""
}
func (stubEngine) LinkTop(message.LinkTop) (bool, string) { return true, "" }
func (stubEngine) ClearNetlistBlocks(message.ClearNetlistBlocks) (bool, string) {
	return true, ""
}
func (stubEngine) CreateNetlist(message.CreateNetlist) (bool, string) { return true, "" }
func (stubEngine) GetGraphData(message.GetGraphData) (message.GraphMap, bool, string) {
	return message.GraphMap{}, true, ""
}
func (stubEngine) ConnectContextPinNet(message.ConnectContextPinNet) (bool, string) {
	return true, ""
}
func (stubEngine) DisconnectContextPinNet(message.DisconnectContextPinNet) (bool, string) {
	return true, ""
}
func (stubEngine) ReadSpefFile(message.ReadSpefFile) (bool, string)     { return true, "" }
func (stubEngine) ReadSpefStream(message.ReadSpefStream) (bool, string) { return true, "" }
func (stubEngine) SetGroupNetLumpCap(message.SetGroupNetLumpCap) (bool, string) {
	return true, ""
}
func (stubEngine) ReadSdfFile(message.ReadSdfFile) (bool, string)     { return true, "" }
func (stubEngine) ReadSdfStream(message.ReadSdfStream) (bool, string) { return true, "" }
func (stubEngine) WriteSdfFile(message.WriteSdfFile) (bool, string)   { return true, "" }
func (stubEngine) GetGraphSlacksData(message.GetGraphSlacksData) (message.GraphSlacks, bool, string) {
	return message.GraphSlacks{}, true, ""
}
func (stubEngine) SetArcsDelay(message.SetArcsDelay) (bool, string) { return true, "" }
func (stubEngine) CreateClock(message.CreateClock) (bool, string)   { return true, "" }
func (stubEngine) CreateGeneratedClock(message.CreateGeneratedClock) (bool, string) {
	return true, ""
}
func (stubEngine) SetClockGroups(message.SetClockGroups) (bool, string) { return true, "" }
func (stubEngine) SetClockLatency(message.SetClockLatency) (bool, string) {
	return true, ""
}
func (stubEngine) SetInterClockUncertainty(message.SetInterClockUncertainty) (bool, string) {
	return true, ""
}
func (stubEngine) SetSingleClockUncertainty(message.SetSingleClockUncertainty) (bool, string) {
	return true, ""
}
func (stubEngine) SetSinglePinUncertainty(message.SetSinglePinUncertainty) (bool, string) {
	return true, ""
}
func (stubEngine) SetSinglePortDelay(message.SetSinglePortDelay) (bool, string) {
	return true, ""
}
func (stubEngine) SetInPortTransition(message.SetInPortTransition) (bool, string) {
	return true, ""
}
func (stubEngine) SetFalsePath(message.SetFalsePath) (bool, string)     { return true, "" }
func (stubEngine) SetMinMaxDelay(message.SetMinMaxDelay) (bool, string) { return true, "" }
func (stubEngine) SetMulticyclePath(message.SetMulticyclePath) (bool, string) {
	return true, ""
}
func (stubEngine) DisableSinglePinTiming(message.DisableSinglePinTiming) (bool, string) {
	return true, ""
}
func (stubEngine) DisableInstTiming(message.DisableInstTiming) (bool, string) {
	return true, ""
}
func (stubEngine) SetGlobalTimingDerate(message.SetGlobalTimingDerate) (bool, string) {
	return true, ""
}
func (stubEngine) ReportTiming(message.ReportTiming) (string, bool, string) {
	return "", true, ""
}
func (stubEngine) GetDesignStats(message.GetDesignStats) (message.DesignStats, bool, string) {
	return message.DesignStats{}, true, ""
}

// TestUnknownTagYieldsUnsupported reproduces spec.md §4.4/§7's requirement
// that a tag the server doesn't recognize answers Unsupported, not Failed
// — Failed is reserved for a malformed payload on a tag it does recognize.
func TestUnknownTagYieldsUnsupported(t *testing.T) {
	dir := t.TempDir()

	srv, err := transport.Connect(transport.Server, dir, "ch", 41)
	if err != nil {
		t.Fatalf("server Connect: %v", err)
	}
	cli, err := transport.Connect(transport.Client, dir, "ch", 41)
	if err != nil {
		t.Fatalf("client Connect: %v", err)
	}
	defer cli.Disconnect()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- server.Run(ctx, srv, stubEngine{}) }()

	const unknownTag = message.Tag(9999)
	if err := cli.Send(unknownTag, nil); err != nil {
		t.Fatalf("client Send: %v", err)
	}

	waitCtx, waitCancel := context.WithTimeout(context.Background(), time.Second)
	defer waitCancel()
	if err := cli.WaitMessageArrival(waitCtx); err != nil {
		t.Fatalf("client WaitMessageArrival: %v", err)
	}
	raw, err := cli.PopMessageBlock()
	if err != nil {
		t.Fatalf("client PopMessageBlock: %v", err)
	}
	decoded, err := codec.Decode(cli.PeekMessageType(), raw)
	if err != nil {
		t.Fatalf("codec.Decode: %v", err)
	}
	status, ok := decoded.(message.ExecutionStatus)
	if !ok {
		t.Fatalf("decoded response is %T, want message.ExecutionStatus", decoded)
	}
	if status.Status != message.Unsupported {
		t.Errorf("got status %v, want Unsupported", status.Status)
	}

	cancel()
	<-done
	srv.Disconnect()
}
