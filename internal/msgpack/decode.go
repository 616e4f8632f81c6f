// Package msgpack provides MessagePack encoding/decoding for condition options.
// Used by the codec package for single options records and option batches.
package msgpack

import (
	"bytes"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

// Decode deserializes MessagePack data into a Go value.
// The v parameter should be a pointer to the target structure.
//
// Untyped fields (interface{}) receive int64, uint64, float64, string,
// bool, []interface{} or map[string]interface{} regardless of the encoded
// width, so condition values validate the same way as JSON input.
//
// Example:
//
//	var opts condition.Options
//	err := msgpack.Decode(data, &opts)
func Decode(data []byte, v any) error {
	if len(data) == 0 {
		return fmt.Errorf("empty MessagePack data")
	}

	dec := msgpack.NewDecoder(bytes.NewReader(data))
	dec.UseLooseInterfaceDecoding(true)
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("failed to decode MessagePack: %w", err)
	}

	return nil
}

// Encode serializes a Go value into MessagePack format.
// Struct fields are written by their msgpack tags.
func Encode(v any) ([]byte, error) {
	data, err := msgpack.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode MessagePack: %w", err)
	}

	return data, nil
}
