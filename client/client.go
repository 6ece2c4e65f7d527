// Package client implements the synchronous client-side protocol: encode,
// send, wait, peek, decode, and status surfacing, plus the netlist
// invalidation rule that keeps the correlator state (package correlator)
// in sync with the engine's netlist lifecycle.
package client

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/m-lab/sta-channel/codec"
	"github.com/m-lab/sta-channel/correlator"
	"github.com/m-lab/sta-channel/message"
	"github.com/m-lab/sta-channel/metrics"
	"github.com/m-lab/sta-channel/protoerr"
	"github.com/m-lab/sta-channel/recorder"
	"github.com/m-lab/sta-channel/transport"
)

// channel is the subset of *transport.Channel the client depends on.
type channel interface {
	Send(tag message.Tag, payload []byte) error
	WaitMessageArrival(ctx context.Context) error
	WaitTimeoutMessageArrival(timeout time.Duration) bool
	PeekMessageType() message.Tag
	PopMessageBlock() ([]byte, error)
}

// Client drives an STA engine over a connected channel.
type Client struct {
	ch    channel
	State *correlator.State

	// Separator is the hierarchy separator used when flattening
	// instance-name contexts into path strings; it mirrors whatever was
	// last sent to the server via SetHierSeparator.
	Separator byte

	// Rec, if set, receives a copy of every frame sent and received. A nil
	// Rec (the default) disables recording entirely.
	Rec *recorder.Recorder
}

// New wraps an already-connected transport.Channel.
func New(ch *transport.Channel) *Client {
	return &Client{ch: ch, State: correlator.NewState(), Separator: '/'}
}

// structuralTags are commands whose success invalidates the entire
// correlator state: the netlist changed shape.
var structuralTags = map[message.Tag]bool{
	message.TagClearNetlistBlocks:      true,
	message.TagLinkTop:                 true,
	message.TagCreateNetlist:           true,
	message.TagConnectContextPinNet:    true,
	message.TagDisconnectContextPinNet: true,
}

// timingTags are commands whose success invalidates only the timing
// sub-state (slacks/criticality), preserving the graph map.
var timingTags = map[message.Tag]bool{
	message.TagSetGroupNetLumpCap: true,
	message.TagSetArcsDelay:       true,
}

// Execute runs the full client algorithm for one command: encode, send,
// wait (timed only for Ping), peek-match, decode, and status surfacing.
func (c *Client) Execute(cmd message.Command) (message.Response, error) {
	start := time.Now()
	tagLabel := cmd.Tag().String()
	resp, err := c.execute(cmd)
	metrics.RoundTripHistogram.With(prometheus.Labels{"tag": tagLabel}).Observe(time.Since(start).Seconds())
	if err != nil {
		if kind, ok := protoerr.KindOf(err); ok {
			metrics.ErrorCount.With(prometheus.Labels{"kind": kind.String()}).Inc()
			if kind == protoerr.Timeout {
				metrics.TimeoutCount.With(prometheus.Labels{"tag": tagLabel}).Inc()
			}
			if kind == protoerr.Unsupported {
				metrics.UnsupportedCount.With(prometheus.Labels{"tag": tagLabel}).Inc()
			}
		}
	}
	return resp, err
}

func (c *Client) execute(cmd message.Command) (message.Response, error) {
	payload, err := codec.Encode(cmd)
	if err != nil {
		return nil, protoerr.New(protoerr.InvalidArgument, "encode %s: %v", cmd.Tag(), err)
	}
	metrics.PayloadSizeHistogram.With(prometheus.Labels{"tag": cmd.Tag().String(), "direction": "send"}).Observe(float64(len(payload)))
	if err := c.ch.Send(cmd.Tag(), payload); err != nil {
		return nil, err
	}
	c.Rec.Record(recorder.Frame{Time: time.Now(), Direction: recorder.Send, Tag: cmd.Tag(), Payload: payload})

	if ping, ok := cmd.(message.Ping); ok {
		if !c.ch.WaitTimeoutMessageArrival(time.Duration(ping.TimeoutMs) * time.Millisecond) {
			return nil, protoerr.New(protoerr.Timeout, "ping timed out after %dms", ping.TimeoutMs)
		}
	} else {
		if err := c.ch.WaitMessageArrival(context.Background()); err != nil {
			return nil, err
		}
	}

	wantTag, ok := cmd.Tag().ResponseTag()
	if !ok {
		return nil, protoerr.New(protoerr.InvalidArgument, "%s is not a command tag", cmd.Tag())
	}
	gotTag := c.ch.PeekMessageType()
	if gotTag != wantTag {
		return nil, protoerr.New(protoerr.UnexpectedResponse, "expected %s, got %s", wantTag, gotTag)
	}

	raw, err := c.ch.PopMessageBlock()
	if err != nil {
		return nil, err
	}
	metrics.PayloadSizeHistogram.With(prometheus.Labels{"tag": gotTag.String(), "direction": "recv"}).Observe(float64(len(raw)))
	c.Rec.Record(recorder.Frame{Time: time.Now(), Direction: recorder.Recv, Tag: gotTag, Payload: raw})
	decoded, err := codec.Decode(gotTag, raw)
	if err != nil {
		return nil, protoerr.New(protoerr.DecodeError, "%v", err)
	}
	resp, ok := decoded.(message.Response)
	if !ok {
		return nil, protoerr.New(protoerr.DecodeError, "decoded value for %s is not a response", gotTag)
	}

	status := responseStatus(resp)
	switch status {
	case message.Ok:
		if sep, ok := cmd.(message.SetHierSeparator); ok {
			c.Separator = sep.Separator
		}
		c.applyInvalidation(cmd.Tag())
		return resp, nil
	case message.Unsupported:
		return resp, protoerr.New(protoerr.Unsupported, "%s unsupported by server", cmd.Tag())
	case message.Timeout:
		return resp, protoerr.New(protoerr.Timeout, "%s timed out on server", cmd.Tag())
	default: // message.Failed
		return resp, protoerr.New(protoerr.RemoteFailure, "%s", diagnosticOf(resp))
	}
}

func responseStatus(resp message.Response) message.Status {
	switch r := resp.(type) {
	case message.ExecutionStatus:
		return r.Status
	case message.GraphMap:
		return r.Status
	case message.GraphSlacks:
		return r.Status
	case message.DesignStats:
		return r.Status
	default:
		return message.Failed
	}
}

func diagnosticOf(resp message.Response) string {
	if es, ok := resp.(message.ExecutionStatus); ok {
		return es.Str
	}
	return "remote failure"
}

func (c *Client) applyInvalidation(tag message.Tag) {
	if structuralTags[tag] {
		c.State.Reset()
	} else if timingTags[tag] {
		c.State.ClearTiming()
	}
}

// Ping checks liveness with an explicit client-side deadline.
func (c *Client) Ping(timeout time.Duration) error {
	_, err := c.Execute(message.Ping{TimeoutMs: uint64(timeout.Milliseconds())})
	return err
}

// Exit asks the server to terminate after replying.
func (c *Client) Exit() error {
	_, err := c.Execute(message.Exit{})
	return err
}

// LinkTop selects the top-level block and invalidates correlator state.
func (c *Client) LinkTop(blockName string) error {
	_, err := c.Execute(message.LinkTop{BlockName: blockName})
	return err
}

// CreateNetlist uploads a flattened block hierarchy.
func (c *Client) CreateNetlist(blocks []message.BlockData) error {
	_, err := c.Execute(message.CreateNetlist{Blocks: blocks})
	return err
}

// GetGraphData requests the current timing graph's vertex/edge tables.
func (c *Client) GetGraphData() (message.GraphMap, error) {
	resp, err := c.Execute(message.GetGraphData{})
	if err != nil {
		if gm, ok := resp.(message.GraphMap); ok {
			return gm, err
		}
		return message.GraphMap{}, err
	}
	return resp.(message.GraphMap), nil
}

// GetGraphSlacksData requests per-node timing data for both analyses.
func (c *Client) GetGraphSlacksData() (message.GraphSlacks, error) {
	resp, err := c.Execute(message.GetGraphSlacksData{})
	if err != nil {
		if gs, ok := resp.(message.GraphSlacks); ok {
			return gs, err
		}
		return message.GraphSlacks{}, err
	}
	return resp.(message.GraphSlacks), nil
}

// GetDesignStats requests the worst/total negative slack summary.
func (c *Client) GetDesignStats() (message.DesignStats, error) {
	resp, err := c.Execute(message.GetDesignStats{})
	if err != nil {
		if ds, ok := resp.(message.DesignStats); ok {
			return ds, err
		}
		return message.DesignStats{}, err
	}
	return resp.(message.DesignStats), nil
}

// ReportTiming renders a timing report; the body is carried in
// ExecutionStatus.Str rather than a dedicated response variant (see
// SPEC_FULL.md §3 EXPANSION).
func (c *Client) ReportTiming(from, to []message.ObjectContextName, maxPaths uint32) (string, error) {
	resp, err := c.Execute(message.ReportTiming{FromPins: from, ToPins: to, MaxPaths: maxPaths})
	if err != nil {
		return "", err
	}
	return resp.(message.ExecutionStatus).Str, nil
}

// SetArcsDelay overrides edge delays and invalidates cached timing state.
func (c *Client) SetArcsDelay(edgeIDs []uint32, values []float32, min, max bool) error {
	_, err := c.Execute(message.SetArcsDelay{EdgeIDs: edgeIDs, DelayValues: values, Min: min, Max: max})
	return err
}
