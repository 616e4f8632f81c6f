package codec

import (
	"fmt"

	"github.com/hugr-lab/condfilter/condition"
	"github.com/hugr-lab/condfilter/internal/msgpack"
	"github.com/hugr-lab/condfilter/internal/serialize"
)

// MaxBatchSize bounds the decompressed size of a batch, in bytes.
const MaxBatchSize = 16 << 20

// EncodeBatch encodes options records as a ZStandard-compressed MessagePack array.
func EncodeBatch(batch []condition.Options) ([]byte, error) {
	data, err := msgpack.Encode(batch)
	if err != nil {
		return nil, fmt.Errorf("codec: %w", err)
	}

	frame, err := serialize.Frame(data)
	if err != nil {
		return nil, fmt.Errorf("codec: %w", err)
	}
	return frame, nil
}

// DecodeBatch decodes a batch written by EncodeBatch.
// Batches larger than MaxBatchSize once decompressed are rejected.
func DecodeBatch(data []byte) ([]condition.Options, error) {
	if len(data) == 0 {
		return nil, ErrEmptyInput
	}

	raw, err := serialize.Unframe(data, MaxBatchSize)
	if err != nil {
		return nil, fmt.Errorf("codec: %w", err)
	}

	var batch []condition.Options
	if err := msgpack.Decode(raw, &batch); err != nil {
		return nil, fmt.Errorf("codec: %w", err)
	}
	return batch, nil
}
