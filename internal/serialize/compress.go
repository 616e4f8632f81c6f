// Package serialize frames encoded option batches with ZStandard.
package serialize

import (
	"errors"
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"
)

// ErrEmptyFrame is returned by Unframe for zero-length input.
var ErrEmptyFrame = errors.New("serialize: empty frame")

// encoder is shared by all callers; EncodeAll may run concurrently.
var encoder = sync.OnceValues(func() (*zstd.Encoder, error) {
	return zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
})

// Frame compresses payload into a single zstd frame.
func Frame(payload []byte) ([]byte, error) {
	enc, err := encoder()
	if err != nil {
		return nil, fmt.Errorf("serialize: zstd encoder: %w", err)
	}
	return enc.EncodeAll(payload, make([]byte, 0, len(payload)/2+16)), nil
}

// Unframe decompresses a frame written by Frame. Frames that inflate beyond
// limit bytes are rejected; a zero limit keeps the zstd default.
func Unframe(frame []byte, limit uint64) ([]byte, error) {
	if len(frame) == 0 {
		return nil, ErrEmptyFrame
	}

	opts := []zstd.DOption{zstd.WithDecoderConcurrency(1)}
	if limit > 0 {
		opts = append(opts, zstd.WithDecoderMaxMemory(limit))
	}
	dec, err := zstd.NewReader(nil, opts...)
	if err != nil {
		return nil, fmt.Errorf("serialize: zstd decoder: %w", err)
	}
	defer dec.Close()

	payload, err := dec.DecodeAll(frame, nil)
	if err != nil {
		return nil, fmt.Errorf("serialize: unframe: %w", err)
	}
	return payload, nil
}
