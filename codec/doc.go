// Package codec decodes condition options and type configs from their wire
// and file forms.
//
// Supported inputs:
//   - JSON options records (DecodeJSON); numbers arrive as json.Number
//   - MessagePack options records (DecodeMsgpack, EncodeMsgpack)
//   - Untyped maps, e.g. from a larger decoded document (DecodeMap)
//   - ZStandard-compressed MessagePack batches of options (EncodeBatch, DecodeBatch)
//   - YAML type configs (LoadTypeConfigs)
//
// Decoding only shapes data; validation happens when the options are parsed:
//
//	opts, err := codec.DecodeJSON(body)
//	if err != nil {
//	    return err // malformed input
//	}
//	cond, err := condfilter.Parse(configs, opts)
package codec
