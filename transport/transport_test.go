package transport_test

import (
	"context"
	"testing"
	"time"

	"github.com/m-lab/sta-channel/message"
	"github.com/m-lab/sta-channel/protoerr"
	"github.com/m-lab/sta-channel/transport"
)

func TestConnectEncoderMismatch(t *testing.T) {
	dir := t.TempDir()

	srv, err := transport.Connect(transport.Server, dir, "ch", 41)
	if err != nil {
		t.Fatalf("server Connect: %v", err)
	}
	defer srv.Disconnect()

	_, err = transport.Connect(transport.Client, dir, "ch", 42)
	if err == nil {
		t.Fatal("expected an error connecting with a mismatched encoder id")
	}
	if kind, ok := protoerr.KindOf(err); !ok || kind != protoerr.EncoderMismatch {
		t.Errorf("got error %v, want protoerr.EncoderMismatch", err)
	}
}

func TestSendWaitPopRoundTrip(t *testing.T) {
	dir := t.TempDir()

	srv, err := transport.Connect(transport.Server, dir, "ch", 41)
	if err != nil {
		t.Fatalf("server Connect: %v", err)
	}
	defer srv.Disconnect()

	cli, err := transport.Connect(transport.Client, dir, "ch", 41)
	if err != nil {
		t.Fatalf("client Connect: %v", err)
	}
	defer cli.Disconnect()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	want := []byte("ping payload")
	if err := srv.Send(message.TagPing, want); err != nil {
		t.Fatalf("server Send: %v", err)
	}
	if err := cli.WaitMessageArrival(ctx); err != nil {
		t.Fatalf("client WaitMessageArrival: %v", err)
	}
	if tag := cli.PeekMessageType(); tag != message.TagPing {
		t.Errorf("PeekMessageType: got %v, want %v", tag, message.TagPing)
	}
	got, err := cli.PopMessageBlock()
	if err != nil {
		t.Fatalf("client PopMessageBlock: %v", err)
	}
	if string(got) != string(want) {
		t.Errorf("PopMessageBlock: got %q, want %q", got, want)
	}

	// Flip the turn: client replies, server receives.
	reply := []byte("pong")
	if err := cli.Send(message.TagGraphMap, reply); err != nil {
		t.Fatalf("client Send: %v", err)
	}
	if err := srv.WaitMessageArrival(ctx); err != nil {
		t.Fatalf("server WaitMessageArrival: %v", err)
	}
	got, err = srv.PopMessageBlock()
	if err != nil {
		t.Fatalf("server PopMessageBlock: %v", err)
	}
	if string(got) != string(reply) {
		t.Errorf("PopMessageBlock: got %q, want %q", got, reply)
	}
}

// TestLargePayloadRemap sends a payload larger than the channel's initial
// 1024-byte capacity, forcing the sender to grow and remap its payload
// region and set the update-ptr flag, and verifies the peer picks up the
// grown mapping on its own PopMessageBlock.
func TestLargePayloadRemap(t *testing.T) {
	dir := t.TempDir()

	srv, err := transport.Connect(transport.Server, dir, "ch", 41)
	if err != nil {
		t.Fatalf("server Connect: %v", err)
	}
	defer srv.Disconnect()

	cli, err := transport.Connect(transport.Client, dir, "ch", 41)
	if err != nil {
		t.Fatalf("client Connect: %v", err)
	}
	defer cli.Disconnect()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	want := make([]byte, 4096)
	for i := range want {
		want[i] = byte(i)
	}

	if err := srv.Send(message.TagPing, want); err != nil {
		t.Fatalf("server Send: %v", err)
	}
	if err := cli.WaitMessageArrival(ctx); err != nil {
		t.Fatalf("client WaitMessageArrival: %v", err)
	}
	got, err := cli.PopMessageBlock()
	if err != nil {
		t.Fatalf("client PopMessageBlock: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("PopMessageBlock: got %d bytes, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("byte %d: got %d, want %d", i, got[i], want[i])
		}
	}
}
