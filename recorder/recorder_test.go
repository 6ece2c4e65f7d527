package recorder

import (
	"bytes"
	"encoding/binary"
	"testing"
	"time"

	"github.com/m-lab/sta-channel/message"
)

func TestWriteFrame(t *testing.T) {
	var buf bytes.Buffer
	ts := time.Unix(0, 1234567890)
	f := Frame{Time: ts, Direction: Recv, Tag: message.TagPing, Payload: []byte{1, 2, 3}}

	if err := writeFrame(&buf, f); err != nil {
		t.Fatalf("writeFrame: %v", err)
	}

	got := buf.Bytes()
	if len(got) != 15+3 {
		t.Fatalf("unexpected length: got %d", len(got))
	}
	if binary.LittleEndian.Uint64(got[0:8]) != uint64(ts.UnixNano()) {
		t.Error("timestamp mismatch")
	}
	if Direction(got[8]) != Recv {
		t.Error("direction mismatch")
	}
	if message.Tag(binary.LittleEndian.Uint16(got[9:11])) != message.TagPing {
		t.Error("tag mismatch")
	}
	if binary.LittleEndian.Uint32(got[11:15]) != 3 {
		t.Error("payload length mismatch")
	}
	if !bytes.Equal(got[15:], []byte{1, 2, 3}) {
		t.Error("payload mismatch")
	}
}

func TestDirectionString(t *testing.T) {
	if Send.String() != "send" {
		t.Errorf("got %q, want send", Send.String())
	}
	if Recv.String() != "recv" {
		t.Errorf("got %q, want recv", Recv.String())
	}
}

func TestRecordOnNilRecorder(t *testing.T) {
	var r *Recorder
	r.Record(Frame{Tag: message.TagExit})
	if err := r.Close(); err != nil {
		t.Errorf("Close on nil recorder: %v", err)
	}
}
