// Package netlist defines the application-side netlist abstraction
// (Block/Inst/Pin/Port/Net) and the flattener that walks it into the
// wire-format BlockData sequence CreateNetlist expects, per the
// linkCreateTopBlockNetlist algorithm in spec.md §4.5.
//
// The application owns these objects; the flattener and the correlator
// never retain them beyond the call that needs them; they are instead
// captured as opaque correlator.PinHandle values.
package netlist

import (
	"fmt"

	"github.com/m-lab/sta-channel/correlator"
	"github.com/m-lab/sta-channel/message"
	"github.com/m-lab/sta-channel/metrics"
)

// Net is one net of a Block.
type Net interface {
	Name() string
}

// Port is one port of a Block, or (with the same shape) one pin of an
// Inst connecting its master's ports into the enclosing block's nets.
type Port interface {
	Name() string
	Input() bool
	Output() bool
	Bus() bool
	RangeFrom() int
	RangeTo() int
	// ConnectedNet returns the net this port/pin connects to at the given
	// bit (0 for a scalar port), or nil if that bit is unconnected.
	ConnectedNet(bit int) Net
	// Handle returns the caller's opaque identity for this port/pin at
	// the given bit, registered with the correlator as a PinHandle.
	Handle(bit int) correlator.PinHandle
}

// Inst is one child instance of a Block.
type Inst interface {
	Name() string
	Master() Block
	Ports() []Port
}

// Block is one node of the application's netlist hierarchy.
type Block interface {
	Name() string
	Leaf() bool
	Ports() []Port
	Instances() []Inst
	Nets() []Net
}

// NetClassifier reports whether a net is the design's ground or power
// rail, supplied by the caller since "ground" and "power" are naming
// conventions the application controls.
type NetClassifier func(Net) bool

// Flatten walks top depth-first and returns the flattened BlockData
// sequence CreateNetlist expects, plus the leaf-instance and top-port
// pins the correlator needs to build its path index. Masters are
// flattened, and appended to the returned sequence, before any
// InstanceData that references them; leaf blocks omit instance data; the
// top block is flagged Top=true.
func Flatten(top Block, isGnd, isVdd NetClassifier) ([]message.BlockData, []correlator.LeafPin, error) {
	f := &flattener{
		ids:    map[Block]int{},
		isGnd:  isGnd,
		isVdd:  isVdd,
	}
	if _, err := f.flattenBlock(top, true); err != nil {
		return nil, nil, err
	}
	for _, p := range top.Ports() {
		f.registerPins(nil, p)
	}
	f.collectLeafPins(top, nil)
	metrics.NetlistSizeHistogram.Observe(float64(len(f.out)))
	return f.out, f.leafPins, nil
}

type flattener struct {
	ids      map[Block]int
	out      []message.BlockData
	leafPins []correlator.LeafPin
	isGnd    NetClassifier
	isVdd    NetClassifier
}

func (f *flattener) flattenBlock(b Block, top bool) (int, error) {
	if id, ok := f.ids[b]; ok {
		return id, nil
	}

	nets := b.Nets()
	netNames := make([]string, len(nets))
	netIndex := make(map[Net]int, len(nets))
	gnd, vdd := "", ""
	for i, n := range nets {
		netNames[i] = n.Name()
		netIndex[n] = i
		if f.isGnd != nil && f.isGnd(n) {
			gnd = n.Name()
		}
		if f.isVdd != nil && f.isVdd(n) {
			vdd = n.Name()
		}
	}

	ports := make([]message.PortData, 0, len(b.Ports()))
	for _, p := range b.Ports() {
		ports = append(ports, convertPort(p, netIndex))
	}

	var instances []message.InstanceData
	if !b.Leaf() {
		for _, inst := range b.Instances() {
			master := inst.Master()
			masterID, err := f.flattenBlock(master, false)
			if err != nil {
				return 0, err
			}
			instPorts := make([]message.PortData, 0, len(inst.Ports()))
			for _, p := range inst.Ports() {
				instPorts = append(instPorts, convertPort(p, netIndex))
			}
			instances = append(instances, message.InstanceData{
				Name:          inst.Name(),
				MasterBlockID: uint32(masterID),
				Ports:         instPorts,
			})
		}
	}

	id := len(f.out)
	f.out = append(f.out, message.BlockData{
		Name:       b.Name(),
		Top:        top,
		Leaf:       b.Leaf(),
		Ports:      ports,
		Instances:  instances,
		NetNames:   netNames,
		GndNetName: gnd,
		VddNetName: vdd,
	})
	f.ids[b] = id
	return id, nil
}

// collectLeafPins walks the hierarchy below b, threading the full
// accumulated instance-name context down to every leaf-instance pin. Unlike
// flattenBlock's block-id memoization (correct for the wire-format block
// sequence, where a shared master is encoded once), this descent is
// deliberately not memoized: a master instantiated under two different
// parents must contribute one path-qualified LeafPin per instantiation, not
// one total. Mirrors addBlockPinsInNameMap's nextPath accumulation.
func (f *flattener) collectLeafPins(b Block, ctx []string) {
	if b.Leaf() {
		return
	}
	for _, inst := range b.Instances() {
		master := inst.Master()
		instCtx := append(append([]string{}, ctx...), inst.Name())
		if master.Leaf() {
			for _, p := range inst.Ports() {
				f.registerPins(instCtx, p)
			}
			continue
		}
		f.collectLeafPins(master, instCtx)
	}
}

// registerPins records one correlator.LeafPin per bit of a leaf-instance
// pin or top-level port, bit-aware the same way convertPort is.
func (f *flattener) registerPins(ctx []string, p Port) {
	if !p.Bus() {
		f.leafPins = append(f.leafPins, correlator.LeafPin{InstContext: ctx, PinName: p.Name(), Handle: p.Handle(0)})
		return
	}
	for bit, i := range busIndices(p.RangeFrom(), p.RangeTo()) {
		name := fmt.Sprintf("%s[%d]", p.Name(), i)
		f.leafPins = append(f.leafPins, correlator.LeafPin{InstContext: ctx, PinName: name, Handle: p.Handle(bit)})
	}
}

func convertPort(p Port, netIndex map[Net]int) message.PortData {
	pd := message.PortData{
		Name:      p.Name(),
		Input:     p.Input(),
		Output:    p.Output(),
		Bus:       p.Bus(),
		RangeFrom: int32(p.RangeFrom()),
		RangeTo:   int32(p.RangeTo()),
	}
	if !p.Bus() {
		pd.ConnNetIndices = []uint32{connIndex(p.ConnectedNet(0), netIndex)}
		return pd
	}
	for bit := range busIndices(p.RangeFrom(), p.RangeTo()) {
		pd.ConnNetIndices = append(pd.ConnNetIndices, connIndex(p.ConnectedNet(bit), netIndex))
	}
	return pd
}

func connIndex(n Net, netIndex map[Net]int) uint32 {
	if n == nil {
		return message.UnconnectedNet
	}
	idx, ok := netIndex[n]
	if !ok {
		return message.UnconnectedNet
	}
	return uint32(idx)
}

// busIndices enumerates a bus range in bit order, in whichever direction
// RangeFrom/RangeTo implies (ascending or descending), matching the common
// convention that a bus may be declared either way (e.g. [7:0] or [0:7]).
func busIndices(from, to int) []int {
	step := 1
	if from > to {
		step = -1
	}
	n := to - from
	if n < 0 {
		n = -n
	}
	n++
	out := make([]int, n)
	for k := range out {
		out[k] = from + k*step
	}
	return out
}
