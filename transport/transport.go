// Package transport implements the single-slot, half-duplex shared-memory
// channel described by the protocol: two peers rendezvous at a pair of
// memory-mapped files, exchange (tag, payload) frames under an
// inter-process mutex, and signal payload-buffer growth with a remap flag.
//
// There is no portable, blocking, cross-process condition variable in Go,
// so the condvar wait and the mutex acquire are both emulated with a
// deadline-bounded poll, the same shape the teacher uses for its own
// OS-level waits (time.Ticker collection loops, namespace-change polling).
package transport

import (
	"context"
	"fmt"
	"os"
	"sync/atomic"
	"time"
	"unsafe"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sys/unix"

	"github.com/m-lab/go/logx"

	"github.com/m-lab/sta-channel/message"
	"github.com/m-lab/sta-channel/metrics"
	"github.com/m-lab/sta-channel/protoerr"
)

// waitLog throttles the "still waiting for peer" diagnostic emitted while
// WaitMessageArrival polls, the same pattern the teacher uses to avoid
// flooding logs from a tight collection loop.
var waitLog = logx.NewLogEvery(nil, time.Second)

// Side identifies which peer a Channel instance speaks for. The server
// creates and unlinks the named regions; the client only opens them.
type Side uint32

const (
	// Server is the region owner: it creates, initializes, and on
	// disconnect unlinks the backing files.
	Server Side = 1
	// Client opens a region the server already created.
	Client Side = 2
)

// Control-region field offsets. Each is 4-byte aligned so it can be
// addressed with atomic uint32 loads/stores.
const (
	offMsgTag         = 0
	offMsgSize        = 4
	offServerEncoder  = 8
	offClientEncoder  = 12
	offSenderFlag     = 16
	offUpdatePtrFlag  = 20
	offPayloadCap     = 24
	offConnected      = 28
	controlRegionSize = 64

	initialPayloadCap = 1024
)

// pollInterval governs both the mutex-acquire retry and the message-arrival
// poll. It matches the teacher's 10ms collector tick.
const pollInterval = 10 * time.Millisecond

// mutexAcquireDeadline is the fixed 1-second abandon-detection window the
// spec requires for every mutex acquisition.
const mutexAcquireDeadline = 1 * time.Second

// Channel is one peer's live view of a shared-memory command/response
// transport.
type Channel struct {
	side Side

	blkPath string
	segPath string

	blkFile *os.File
	segFile *os.File

	ctrl       []byte
	payload    []byte
	payloadCap uint32
}

// Connect rendezvous at the named region (baseDir/name.blk,
// baseDir/name.seg). The server truncates and initializes both regions and
// publishes encoderID; the client opens the existing regions and verifies
// encoderID matches, per the handshake in spec.md §4.2.
func Connect(side Side, baseDir, name string, encoderID uint32) (*Channel, error) {
	c := &Channel{
		side:    side,
		blkPath: fmt.Sprintf("%s/%s.blk", baseDir, name),
		segPath: fmt.Sprintf("%s/%s.seg", baseDir, name),
	}

	var err error
	if side == Server {
		err = c.connectServer(encoderID)
	} else {
		err = c.connectClient(encoderID)
	}
	if err != nil {
		recordHandshakeFailure(err)
		return nil, err
	}

	// Liveness check: a fresh acquire/release of the mutex with the
	// standard timeout. Failure here means the prior occupant of this
	// region died holding the lock.
	if err := c.lock(mutexAcquireDeadline); err != nil {
		c.closeFiles()
		recordHandshakeFailure(err)
		return nil, err
	}
	c.unlock()

	return c, nil
}

func recordHandshakeFailure(err error) {
	reason := "unknown"
	if kind, ok := protoerr.KindOf(err); ok {
		reason = kind.String()
	}
	metrics.HandshakeFailureCount.With(prometheus.Labels{"reason": reason}).Inc()
}

func (c *Channel) connectServer(encoderID uint32) error {
	segFile, err := os.OpenFile(c.segPath, os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return protoerr.New(protoerr.Disconnected, "create control region: %v", err)
	}
	if err := segFile.Truncate(controlRegionSize); err != nil {
		segFile.Close()
		return protoerr.New(protoerr.Disconnected, "truncate control region: %v", err)
	}
	blkFile, err := os.OpenFile(c.blkPath, os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		segFile.Close()
		return protoerr.New(protoerr.Disconnected, "create payload region: %v", err)
	}
	if err := blkFile.Truncate(initialPayloadCap); err != nil {
		segFile.Close()
		blkFile.Close()
		return protoerr.New(protoerr.Disconnected, "truncate payload region: %v", err)
	}

	c.segFile, c.blkFile = segFile, blkFile
	if err := c.mmapControl(); err != nil {
		c.closeFiles()
		return err
	}
	if err := c.mmapPayload(initialPayloadCap); err != nil {
		c.closeFiles()
		return err
	}

	atomic.StoreUint32(c.ctrlWord(offServerEncoder), encoderID)
	atomic.StoreUint32(c.ctrlWord(offPayloadCap), initialPayloadCap)
	atomic.StoreUint32(c.ctrlWord(offSenderFlag), 0)
	atomic.StoreUint32(c.ctrlWord(offUpdatePtrFlag), 0)
	atomic.StoreUint32(c.ctrlWord(offConnected), 1)
	c.payloadCap = initialPayloadCap
	return nil
}

func (c *Channel) connectClient(encoderID uint32) error {
	segFile, err := os.OpenFile(c.segPath, os.O_RDWR, 0644)
	if err != nil {
		return protoerr.New(protoerr.Disconnected, "open control region: %v", err)
	}
	blkFile, err := os.OpenFile(c.blkPath, os.O_RDWR, 0644)
	if err != nil {
		segFile.Close()
		return protoerr.New(protoerr.Disconnected, "open payload region: %v", err)
	}
	c.segFile, c.blkFile = segFile, blkFile
	if err := c.mmapControl(); err != nil {
		c.closeFiles()
		return err
	}

	cap := atomic.LoadUint32(c.ctrlWord(offPayloadCap))
	if cap == 0 {
		cap = initialPayloadCap
	}
	if err := c.mmapPayload(cap); err != nil {
		c.closeFiles()
		return err
	}
	c.payloadCap = cap

	serverID := atomic.LoadUint32(c.ctrlWord(offServerEncoder))
	atomic.StoreUint32(c.ctrlWord(offClientEncoder), encoderID)
	if serverID != encoderID {
		c.closeFiles()
		return protoerr.New(protoerr.EncoderMismatch, "server encoder_id=%d, client encoder_id=%d", serverID, encoderID)
	}
	return nil
}

func (c *Channel) mmapControl() error {
	data, err := unix.Mmap(int(c.segFile.Fd()), 0, controlRegionSize, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		return protoerr.New(protoerr.Disconnected, "mmap control region: %v", err)
	}
	c.ctrl = data
	return nil
}

func (c *Channel) mmapPayload(size uint32) error {
	data, err := unix.Mmap(int(c.blkFile.Fd()), 0, int(size), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		return protoerr.New(protoerr.Disconnected, "mmap payload region: %v", err)
	}
	c.payload = data
	return nil
}

func (c *Channel) ctrlWord(off int) *uint32 {
	return (*uint32)(unsafe.Pointer(&c.ctrl[off]))
}

func (c *Channel) ownSideValue() uint32 { return uint32(c.side) }

// lock acquires the inter-process mutex (implemented as an flock on the
// control file) with bounded retries. Exceeding deadline means the prior
// channel occupant abandoned the lock.
func (c *Channel) lock(deadline time.Duration) error {
	start := time.Now()
	for {
		err := unix.Flock(int(c.segFile.Fd()), unix.LOCK_EX|unix.LOCK_NB)
		if err == nil {
			return nil
		}
		if time.Since(start) >= deadline {
			return protoerr.New(protoerr.Abandoned, "mutex acquire timed out after %s", deadline)
		}
		time.Sleep(pollInterval)
	}
}

func (c *Channel) unlock() {
	unix.Flock(int(c.segFile.Fd()), unix.LOCK_UN)
}

// Send writes tag and bytes to the shared region, growing the payload
// buffer if needed, then flips the turn bit and releases the mutex.
func (c *Channel) Send(tag message.Tag, payload []byte) error {
	if atomic.LoadUint32(c.ctrlWord(offConnected)) == 0 {
		return protoerr.New(protoerr.Disconnected, "send on torn-down channel")
	}
	if err := c.lock(mutexAcquireDeadline); err != nil {
		return err
	}
	defer c.unlock()

	atomic.StoreUint32(c.ctrlWord(offMsgTag), uint32(tag))
	atomic.StoreUint32(c.ctrlWord(offMsgSize), uint32(len(payload)))

	if uint32(len(payload)) > c.payloadCap {
		newCap := c.payloadCap
		for newCap < uint32(len(payload)) {
			newCap *= 2
		}
		if err := c.growPayload(newCap); err != nil {
			return err
		}
		atomic.StoreUint32(c.ctrlWord(offUpdatePtrFlag), 1)
	}

	if len(payload) > 0 {
		copy(c.payload, payload)
	}

	atomic.StoreUint32(c.ctrlWord(offSenderFlag), c.ownSideValue())
	return nil
}

func (c *Channel) growPayload(newCap uint32) error {
	if err := c.blkFile.Truncate(int64(newCap)); err != nil {
		return protoerr.New(protoerr.Disconnected, "grow payload region: %v", err)
	}
	if err := unix.Munmap(c.payload); err != nil {
		return protoerr.New(protoerr.Disconnected, "unmap payload region: %v", err)
	}
	if err := c.mmapPayload(newCap); err != nil {
		return err
	}
	c.payloadCap = newCap
	atomic.StoreUint32(c.ctrlWord(offPayloadCap), newCap)
	return nil
}

// senderFlagIsPeer reports whether a frame from the peer is waiting.
func (c *Channel) senderFlagIsPeer() bool {
	flag := atomic.LoadUint32(c.ctrlWord(offSenderFlag))
	return flag != 0 && flag != c.ownSideValue()
}

// WaitMessageArrival blocks until a frame from the peer has arrived, or ctx
// is cancelled.
func (c *Channel) WaitMessageArrival(ctx context.Context) error {
	for {
		if c.senderFlagIsPeer() {
			return nil
		}
		waitLog.Println("waiting for peer frame on", c.blkPath)
		select {
		case <-ctx.Done():
			return protoerr.New(protoerr.Disconnected, "wait cancelled: %v", ctx.Err())
		case <-time.After(pollInterval):
		}
	}
}

// WaitTimeoutMessageArrival blocks until a frame from the peer arrives or
// timeout elapses, returning false in the latter case — an explicit,
// observable cancellation signal (see SPEC_FULL.md §9: the original
// returns true even on timeout, a defect this implementation does not
// reproduce).
func (c *Channel) WaitTimeoutMessageArrival(timeout time.Duration) bool {
	deadline := time.Now().Add(timeout)
	for {
		if c.senderFlagIsPeer() {
			return true
		}
		if time.Now().After(deadline) {
			return false
		}
		time.Sleep(pollInterval)
	}
}

// PeekMessageType returns the tag of the most recently written frame, valid
// only after a successful wait. It uses an atomic load (acquire ordering)
// rather than a bare read, since the control word is shared across
// processes with no other synchronization at this point (see
// SPEC_FULL.md §9: the original's lock-free read is a data race on
// architectures without naturally atomic 16-bit loads).
func (c *Channel) PeekMessageType() message.Tag {
	return message.Tag(atomic.LoadUint32(c.ctrlWord(offMsgTag)))
}

// PopMessageBlock returns the current payload view, remapping it first if
// the peer signalled a buffer growth. The returned slice is a window into
// the shared mapping: it is invalidated by the next transport operation on
// this Channel, so callers must decode it before calling Send or
// WaitMessageArrival again.
func (c *Channel) PopMessageBlock() ([]byte, error) {
	if atomic.LoadUint32(c.ctrlWord(offConnected)) == 0 {
		return nil, protoerr.New(protoerr.Disconnected, "pop on torn-down channel")
	}
	if !c.senderFlagIsPeer() {
		return nil, protoerr.New(protoerr.Disconnected, "pop with no frame available")
	}

	if atomic.LoadUint32(c.ctrlWord(offUpdatePtrFlag)) != 0 {
		cap := atomic.LoadUint32(c.ctrlWord(offPayloadCap))
		if err := unix.Munmap(c.payload); err != nil {
			return nil, protoerr.New(protoerr.Disconnected, "remap payload region: %v", err)
		}
		if err := c.mmapPayload(cap); err != nil {
			return nil, err
		}
		c.payloadCap = cap
		atomic.StoreUint32(c.ctrlWord(offUpdatePtrFlag), 0)
	}

	size := atomic.LoadUint32(c.ctrlWord(offMsgSize))
	if size > uint32(len(c.payload)) {
		return nil, protoerr.New(protoerr.DecodeError, "declared message size %d exceeds mapped payload %d", size, len(c.payload))
	}
	return c.payload[:size], nil
}

// Disconnect unmaps both regions and closes the underlying files. Only the
// server unlinks the named backing files, matching the rule that the
// server alone owns the region's name.
func (c *Channel) Disconnect() error {
	if c.ctrl != nil {
		atomic.StoreUint32(c.ctrlWord(offConnected), 0)
		unix.Munmap(c.ctrl)
		c.ctrl = nil
	}
	if c.payload != nil {
		unix.Munmap(c.payload)
		c.payload = nil
	}
	c.closeFiles()
	if c.side == Server {
		os.Remove(c.blkPath)
		os.Remove(c.segPath)
	}
	return nil
}

func (c *Channel) closeFiles() {
	if c.blkFile != nil {
		c.blkFile.Close()
	}
	if c.segFile != nil {
		c.segFile.Close()
	}
}
