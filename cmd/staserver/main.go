// staserver is a reference server binary: an in-process fake STA engine
// that accepts every command and answers bulk-data queries with empty
// results, useful for exercising a client implementation without a real
// timing engine attached.
package main

import (
	"context"
	"flag"
	"log"

	"github.com/m-lab/go/flagx"
	"github.com/m-lab/go/prometheusx"
	"github.com/m-lab/go/rtx"

	"github.com/m-lab/sta-channel/message"
	"github.com/m-lab/sta-channel/server"
	"github.com/m-lab/sta-channel/transport"
)

func init() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
}

var (
	baseDir   = flag.String("base-dir", ".", "directory to create the channel's .blk/.seg files in")
	name      = flag.String("name", "sta", "channel name")
	encoderID = flag.Uint("encoder-id", 41, "published encoder id")
	promPort  = flag.String("prom", ":9090", "Prometheus metrics export address and port")
)

// fakeEngine answers every command with success and empty data. It exists
// to let a client be tested end to end without a real timing engine.
type fakeEngine struct{}

func ok() (bool, string) { return true, "" }

func (fakeEngine) Exit(message.Exit) (bool, string)                           { return ok() }
func (fakeEngine) Ping(message.Ping) (bool, string)                           { return ok() }
func (fakeEngine) SetHierSeparator(message.SetHierSeparator) (bool, string)   { return ok() }
func (fakeEngine) ReadLibFile(message.ReadLibFile) (bool, string)             { return ok() }
func (fakeEngine) ReadLibStream(message.ReadLibStream) (bool, string)         { return ok() }
func (fakeEngine) ClearLibs(message.ClearLibs) (bool, string)                 { return ok() }
func (fakeEngine) ReadVerilogFile(message.ReadVerilogFile) (bool, string)     { return ok() }
func (fakeEngine) ReadVerilogStream(message.ReadVerilogStream) (bool, string) { return ok() }
func (fakeEngine) LinkTop(message.LinkTop) (bool, string)                     { return ok() }
func (fakeEngine) ClearNetlistBlocks(message.ClearNetlistBlocks) (bool, string) {
	return ok()
}
func (fakeEngine) CreateNetlist(message.CreateNetlist) (bool, string) { return ok() }
func (fakeEngine) GetGraphData(message.GetGraphData) (message.GraphMap, bool, string) {
	return message.GraphMap{}, true, ""
}
func (fakeEngine) ConnectContextPinNet(message.ConnectContextPinNet) (bool, string) {
	return ok()
}
func (fakeEngine) DisconnectContextPinNet(message.DisconnectContextPinNet) (bool, string) {
	return ok()
}
func (fakeEngine) ReadSpefFile(message.ReadSpefFile) (bool, string)     { return ok() }
func (fakeEngine) ReadSpefStream(message.ReadSpefStream) (bool, string) { return ok() }
func (fakeEngine) SetGroupNetLumpCap(message.SetGroupNetLumpCap) (bool, string) {
	return ok()
}
func (fakeEngine) ReadSdfFile(message.ReadSdfFile) (bool, string)     { return ok() }
func (fakeEngine) ReadSdfStream(message.ReadSdfStream) (bool, string) { return ok() }
func (fakeEngine) WriteSdfFile(message.WriteSdfFile) (bool, string)   { return ok() }
func (fakeEngine) GetGraphSlacksData(message.GetGraphSlacksData) (message.GraphSlacks, bool, string) {
	return message.GraphSlacks{}, true, ""
}
func (fakeEngine) SetArcsDelay(message.SetArcsDelay) (bool, string)           { return ok() }
func (fakeEngine) CreateClock(message.CreateClock) (bool, string)             { return ok() }
func (fakeEngine) CreateGeneratedClock(message.CreateGeneratedClock) (bool, string) {
	return ok()
}
func (fakeEngine) SetClockGroups(message.SetClockGroups) (bool, string) { return ok() }
func (fakeEngine) SetClockLatency(message.SetClockLatency) (bool, string) {
	return ok()
}
func (fakeEngine) SetInterClockUncertainty(message.SetInterClockUncertainty) (bool, string) {
	return ok()
}
func (fakeEngine) SetSingleClockUncertainty(message.SetSingleClockUncertainty) (bool, string) {
	return ok()
}
func (fakeEngine) SetSinglePinUncertainty(message.SetSinglePinUncertainty) (bool, string) {
	return ok()
}
func (fakeEngine) SetSinglePortDelay(message.SetSinglePortDelay) (bool, string) {
	return ok()
}
func (fakeEngine) SetInPortTransition(message.SetInPortTransition) (bool, string) {
	return ok()
}
func (fakeEngine) SetFalsePath(message.SetFalsePath) (bool, string)     { return ok() }
func (fakeEngine) SetMinMaxDelay(message.SetMinMaxDelay) (bool, string) { return ok() }
func (fakeEngine) SetMulticyclePath(message.SetMulticyclePath) (bool, string) {
	return ok()
}
func (fakeEngine) DisableSinglePinTiming(message.DisableSinglePinTiming) (bool, string) {
	return ok()
}
func (fakeEngine) DisableInstTiming(message.DisableInstTiming) (bool, string) {
	return ok()
}
func (fakeEngine) SetGlobalTimingDerate(message.SetGlobalTimingDerate) (bool, string) {
	return ok()
}
func (fakeEngine) ReportTiming(message.ReportTiming) (string, bool, string) {
	return "", true, ""
}
func (fakeEngine) GetDesignStats(message.GetDesignStats) (message.DesignStats, bool, string) {
	return message.DesignStats{}, true, ""
}

func main() {
	flag.Parse()
	flagx.ArgsFromEnv(flag.CommandLine)

	ctx := context.Background()
	promSrv := prometheusx.MustStartPrometheus(*promPort)
	defer promSrv.Shutdown(ctx)

	ch, err := transport.Connect(transport.Server, *baseDir, *name, uint32(*encoderID))
	rtx.Must(err, "Could not create channel %q", *name)
	defer ch.Disconnect()

	log.Printf("staserver listening as %q in %s", *name, *baseDir)
	if err := server.Run(ctx, ch, fakeEngine{}); err != nil {
		log.Fatal(err)
	}
}
