// Package recorder optionally logs every frame exchanged over a channel —
// tag, direction, wall time, and payload — to a rotating zstd-compressed
// file, for offline protocol debugging. It never affects protocol
// semantics: a nil *Recorder is always safe to call Record on.
package recorder

import (
	"encoding/binary"
	"fmt"
	"io"
	"log"
	"sync"
	"time"

	"github.com/m-lab/sta-channel/message"
	"github.com/m-lab/sta-channel/zstd"
)

// Direction marks which side emitted a recorded frame.
type Direction uint8

const (
	Send Direction = iota
	Recv
)

func (d Direction) String() string {
	if d == Send {
		return "send"
	}
	return "recv"
}

// Frame is one recorded (tag, payload) exchange.
type Frame struct {
	Time      time.Time
	Direction Direction
	Tag       message.Tag
	Payload   []byte
}

// Recorder appends Frames to a sequence of zstd-compressed files, rotating
// to a new file once the current one has received rotateEvery frames — the
// same shape as saver.Connection.Rotate, adapted from a connection-lifetime
// trigger to a frame-count trigger since a channel session has no natural
// connection boundary.
type Recorder struct {
	mu          sync.Mutex
	prefix      string
	rotateEvery int
	seq         int
	count       int
	w           io.WriteCloser
}

// New returns a Recorder that writes to files named "<prefix>_<seq>.zst",
// rotating after rotateEvery frames.
func New(prefix string, rotateEvery int) *Recorder {
	if rotateEvery <= 0 {
		rotateEvery = 10000
	}
	return &Recorder{prefix: prefix, rotateEvery: rotateEvery}
}

// Record appends one frame. A nil Recorder silently does nothing, so
// callers can pass a possibly-nil *Recorder without a guard at every call
// site.
func (r *Recorder) Record(f Frame) {
	if r == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.w == nil || r.count >= r.rotateEvery {
		if r.w != nil {
			r.w.Close()
		}
		if err := r.rotate(); err != nil {
			log.Printf("recorder: rotate failed: %v", err)
			return
		}
	}

	if err := writeFrame(r.w, f); err != nil {
		log.Printf("recorder: write failed: %v", err)
	}
	r.count++
}

func (r *Recorder) rotate() error {
	name := fmt.Sprintf("%s_%05d.zst", r.prefix, r.seq)
	w, err := zstd.NewWriter(name)
	if err != nil {
		return err
	}
	r.w = w
	r.seq++
	r.count = 0
	return nil
}

// writeFrame appends one length-prefixed envelope: timestamp (unix nanos),
// direction, tag, payload length, payload. This reuses the project's own
// fixed-width little-endian encoding (package codec) rather than a
// protobuf schema, since no wire-format schema exists for a frame
// envelope outside this project — see DESIGN.md.
func writeFrame(w io.Writer, f Frame) error {
	var hdr [21]byte
	binary.LittleEndian.PutUint64(hdr[0:8], uint64(f.Time.UnixNano()))
	hdr[8] = byte(f.Direction)
	binary.LittleEndian.PutUint16(hdr[9:11], uint16(f.Tag))
	binary.LittleEndian.PutUint32(hdr[11:15], uint32(len(f.Payload)))
	if _, err := w.Write(hdr[:15]); err != nil {
		return err
	}
	_, err := w.Write(f.Payload)
	return err
}

// Close closes the current output file, if any.
func (r *Recorder) Close() error {
	if r == nil {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.w == nil {
		return nil
	}
	err := r.w.Close()
	r.w = nil
	return err
}
