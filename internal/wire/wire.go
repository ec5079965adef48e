// Package wire provides MessagePack encoding/decoding for selection request
// payloads, with optional ZStandard framing for large requests.
package wire

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"
	"github.com/vmihailenco/msgpack/v5"
)

// zstdMagic is the little-endian frame magic number 0xFD2FB528.
var zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}

// zstd codecs shared by all calls. EncodeAll and DecodeAll are safe for
// concurrent use; mu only guards creation and Close.
var (
	mu      sync.Mutex
	encoder *zstd.Encoder
	decoder *zstd.Decoder
)

func zstdEncoder() (*zstd.Encoder, error) {
	mu.Lock()
	defer mu.Unlock()
	if encoder == nil {
		enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if err != nil {
			return nil, fmt.Errorf("failed to create zstd encoder: %w", err)
		}
		encoder = enc
	}
	return encoder, nil
}

func zstdDecoder() (*zstd.Decoder, error) {
	mu.Lock()
	defer mu.Unlock()
	if decoder == nil {
		dec, err := zstd.NewReader(nil)
		if err != nil {
			return nil, fmt.Errorf("failed to create zstd decoder: %w", err)
		}
		decoder = dec
	}
	return decoder, nil
}

// Close releases the zstd codecs. A later Encode or Decode creates them
// again. MUST NOT be called while other goroutines are encoding or decoding.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	var err error
	if encoder != nil {
		err = encoder.Close()
		encoder = nil
	}
	if decoder != nil {
		decoder.Close()
		decoder = nil
	}
	return err
}

// Decode deserializes MessagePack data into a Go value.
// Data starting with a zstd frame header is decompressed first.
// The v parameter should be a pointer to the target value.
//
// Example:
//
//	var req selection.PointRequest
//	err := wire.Decode(data, &req)
func Decode(data []byte, v any) error {
	if len(data) == 0 {
		return fmt.Errorf("empty MessagePack data")
	}

	if IsCompressed(data) {
		dec, err := zstdDecoder()
		if err != nil {
			return err
		}
		data, err = dec.DecodeAll(data, nil)
		if err != nil {
			return fmt.Errorf("failed to decompress: %w", err)
		}
	}

	if err := msgpack.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to decode MessagePack: %w", err)
	}
	return nil
}

// Encode serializes a Go value into MessagePack format.
// When compress is true the result is wrapped in a zstd frame.
func Encode(v any, compress bool) ([]byte, error) {
	data, err := msgpack.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode MessagePack: %w", err)
	}
	if !compress {
		return data, nil
	}

	enc, err := zstdEncoder()
	if err != nil {
		return nil, err
	}
	return enc.EncodeAll(data, make([]byte, 0, len(data)/2)), nil
}

// IsCompressed reports whether data starts with a zstd frame header.
func IsCompressed(data []byte) bool {
	return bytes.HasPrefix(data, zstdMagic)
}
