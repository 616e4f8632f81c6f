package codec

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mitchellh/mapstructure"

	"github.com/hugr-lab/condfilter/condition"
	"github.com/hugr-lab/condfilter/internal/msgpack"
)

// ErrEmptyInput is returned when there is nothing to decode.
var ErrEmptyInput = errors.New("codec: empty input")

// DecodeJSON decodes a JSON options record.
// Numbers are kept as json.Number so integer values keep their precision.
//
// Example input:
//
//	{"type": "text", "column": "title", "comparator": "is", "value": "Milk", "inverse": false}
func DecodeJSON(data []byte) (condition.Options, error) {
	var opts condition.Options
	if len(bytes.TrimSpace(data)) == 0 {
		return opts, ErrEmptyInput
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&opts); err != nil {
		return condition.Options{}, fmt.Errorf("codec: invalid JSON: %w", err)
	}

	return opts, nil
}

// DecodeMsgpack decodes a MessagePack options record.
func DecodeMsgpack(data []byte) (condition.Options, error) {
	var opts condition.Options
	if len(data) == 0 {
		return opts, ErrEmptyInput
	}
	if err := msgpack.Decode(data, &opts); err != nil {
		return condition.Options{}, fmt.Errorf("codec: %w", err)
	}
	return opts, nil
}

// EncodeMsgpack encodes an options record as MessagePack.
func EncodeMsgpack(opts condition.Options) ([]byte, error) {
	data, err := msgpack.Encode(opts)
	if err != nil {
		return nil, fmt.Errorf("codec: %w", err)
	}
	return data, nil
}

// DecodeMap decodes an options record from an untyped map.
// Keys are the JSON field names; unknown keys are an error.
// The type and inverse fields must already have their exact types.
func DecodeMap(m map[string]any) (condition.Options, error) {
	var opts condition.Options
	if len(m) == 0 {
		return opts, ErrEmptyInput
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      &opts,
		ErrorUnused: true,
	})
	if err != nil {
		return condition.Options{}, fmt.Errorf("codec: %w", err)
	}
	if err := dec.Decode(m); err != nil {
		return condition.Options{}, fmt.Errorf("codec: invalid options map: %w", err)
	}

	return opts, nil
}
