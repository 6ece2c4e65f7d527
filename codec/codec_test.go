package codec

import (
	"testing"

	"github.com/go-test/deep"

	"github.com/m-lab/sta-channel/message"
)

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		tag  message.Tag
		in   interface{}
	}{
		{"Exit", message.TagExit, message.Exit{}},
		{"Ping", message.TagPing, message.Ping{TimeoutMs: 500}},
		{"SetHierSeparator", message.TagSetHierSeparator, message.SetHierSeparator{Separator: '/'}},
		{"ReadLibFile", message.TagReadLibFile, message.ReadLibFile{Path: "/tmp/a.lib"}},
		{"ReadLibStream", message.TagReadLibStream, message.ReadLibStream{Data: []byte("liberty bytes")}},
		{"LinkTop", message.TagLinkTop, message.LinkTop{BlockName: "top"}},
		{
			"CreateNetlist",
			message.TagCreateNetlist,
			message.CreateNetlist{Blocks: []message.BlockData{
				{
					Name: "top",
					Top:  true,
					Ports: []message.PortData{
						{Name: "clk", Input: true, ConnNetIndices: []uint32{0}},
					},
					Instances: []message.InstanceData{
						{Name: "u1", MasterBlockID: 1, Ports: []message.PortData{
							{Name: "a", Input: true, ConnNetIndices: []uint32{message.UnconnectedNet}},
						}},
					},
					NetNames:   []string{"clk"},
					GndNetName: "vss",
					VddNetName: "vdd",
				},
				{Name: "leaf", Leaf: true},
			}},
		},
		{
			"SetArcsDelay",
			message.TagSetArcsDelay,
			message.SetArcsDelay{EdgeIDs: []uint32{1, 2, 3}, DelayValues: []float32{0.1, 0.2, 0.3}, Min: true, Max: false},
		},
		{
			"CreateClock",
			message.TagCreateClock,
			message.CreateClock{
				Name:     "clk",
				Period:   2.5,
				Waveform: []float32{0, 1.25},
				PinPaths: []message.ObjectContextName{{InstContext: nil, ObjName: "clk_pin"}},
			},
		},
		{
			"SetFalsePath",
			message.TagSetFalsePath,
			message.SetFalsePath{
				Setup:   true,
				Comment: "false path",
				PathEndpoints: message.PathEndpoints{
					FromPins: []message.ObjectContextName{{InstContext: []string{"u1", "u2"}, ObjName: "q"}},
					ToClocks: []string{"clk"},
				},
			},
		},
		{
			"ExecutionStatus",
			message.TagExecutionStatus,
			message.ExecutionStatus{Status: message.Ok, Str: ""},
		},
		{
			"GraphMap",
			message.TagGraphMap,
			message.GraphMap{
				Status: message.Ok,
				Vertices: []message.VertexIdData{
					{InstContext: []string{"u1"}, PinName: "a", IsDriver: false, VertexID: 7},
				},
				Edges: []message.EdgeIdData{{FromVertexID: 0, ToVertexID: 1, EdgeID: 4}},
			},
		},
		{
			"DesignStats",
			message.TagDesignStats,
			message.DesignStats{Status: message.Ok, MinWNS: -1.5, MaxWNS: -0.5, MinTNS: -10, MaxTNS: -4},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			encoded, err := Encode(tc.in)
			if err != nil {
				t.Fatalf("Encode: %v", err)
			}
			decoded, err := Decode(tc.tag, encoded)
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			if diff := deep.Equal(tc.in, decoded); diff != nil {
				t.Errorf("round trip mismatch: %v", diff)
			}
		})
	}
}

func TestDecodeTruncated(t *testing.T) {
	encoded, err := Encode(message.Ping{TimeoutMs: 500})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	_, err = Decode(message.TagPing, encoded[:len(encoded)-1])
	if err == nil {
		t.Fatal("expected error decoding truncated payload, got nil")
	}
}

func TestDecodeOversizedLength(t *testing.T) {
	// A string length prefix claiming far more bytes than are present.
	bad := []byte{0xff, 0xff, 0xff, 0x7f}
	_, err := Decode(message.TagLinkTop, bad)
	if err == nil {
		t.Fatal("expected error decoding oversized length prefix, got nil")
	}
}

func TestDecodeUnknownTag(t *testing.T) {
	_, err := Decode(message.Tag(9999), nil)
	if err == nil {
		t.Fatal("expected error decoding unknown tag, got nil")
	}
}
