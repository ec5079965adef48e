package wire

import (
	"bytes"
	"testing"
)

type payload struct {
	Name   string  `msgpack:"name"`
	Values []int64 `msgpack:"values"`
}

// TestEncodeDecodeCompressed tests that zstd-framed payloads are detected
// and decoded transparently.
func TestEncodeDecodeCompressed(t *testing.T) {
	in := payload{Name: "soma_joinid", Values: make([]int64, 1000)}
	for i := range in.Values {
		in.Values[i] = int64(i % 7)
	}

	plain, err := Encode(in, false)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if IsCompressed(plain) {
		t.Fatal("plain MessagePack reported as compressed")
	}

	packed, err := Encode(in, true)
	if err != nil {
		t.Fatalf("Encode(compress) failed: %v", err)
	}
	if !IsCompressed(packed) {
		t.Fatal("compressed payload not detected")
	}
	if len(packed) >= len(plain) {
		t.Errorf("expected compression, got %d >= %d bytes", len(packed), len(plain))
	}

	for name, data := range map[string][]byte{"plain": plain, "zstd": packed} {
		var out payload
		if err := Decode(data, &out); err != nil {
			t.Fatalf("%s: Decode failed: %v", name, err)
		}
		if out.Name != in.Name || len(out.Values) != len(in.Values) {
			t.Errorf("%s: round trip mismatch: %+v", name, out)
		}
	}
}

func TestDecodeEmpty(t *testing.T) {
	var out payload
	if err := Decode(nil, &out); err == nil {
		t.Error("expected error for empty data")
	}
}

// TestCloseRecreatesCodecs tests that Close releases the codecs and later
// calls still work.
func TestCloseRecreatesCodecs(t *testing.T) {
	in := payload{Name: "x", Values: []int64{1, 2, 3}}

	packed, err := Encode(in, true)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if err := Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if err := Close(); err != nil {
		t.Fatalf("second Close failed: %v", err)
	}

	var out payload
	if err := Decode(packed, &out); err != nil {
		t.Fatalf("Decode after Close failed: %v", err)
	}
	if out.Name != "x" || len(out.Values) != 3 {
		t.Errorf("round trip mismatch: %+v", out)
	}

	again, err := Encode(in, true)
	if err != nil {
		t.Fatalf("Encode after Close failed: %v", err)
	}
	if !bytes.Equal(again, packed) {
		t.Error("expected identical output from recreated encoder")
	}
}

func TestDecodeCorruptFrame(t *testing.T) {
	data := append(append([]byte{}, zstdMagic...), 0x00, 0x01, 0x02)
	var out payload
	if err := Decode(data, &out); err == nil {
		t.Error("expected error for corrupt zstd frame")
	}
}
