// Package codec provides the self-describing binary encoding used to
// persist Signature and Delta values between the signature and delta
// invocations of the CLI (see rsync.Signature, rsync.Delta). The engine
// itself is agnostic to the encoding; this package picks CBOR
// (github.com/fxamacker/cbor/v2) because it round-trips unsigned integers,
// fixed-size byte arrays, variable-length byte sequences, booleans, lists,
// and string-keyed records without any code-generation step.
package codec

import (
	"github.com/fxamacker/cbor/v2"

	"github.com/yra1029/rdiff/rsync"
)

// Encode serializes v (a *rsync.Signature or *rsync.Delta) to its on-disk
// representation.
func Encode(v interface{}) ([]byte, error) {
	data, err := cbor.Marshal(v)
	if err != nil {
		return nil, rsync.NewSerializeError(err, "unable to encode value")
	}
	return data, nil
}

// DecodeSignature deserializes a Signature previously produced by Encode.
func DecodeSignature(data []byte) (*rsync.Signature, error) {
	var signature rsync.Signature
	if err := cbor.Unmarshal(data, &signature); err != nil {
		return nil, rsync.NewSerializeError(err, "unable to decode signature")
	}
	return &signature, nil
}

// DecodeDelta deserializes a Delta previously produced by Encode.
func DecodeDelta(data []byte) (*rsync.Delta, error) {
	var delta rsync.Delta
	if err := cbor.Unmarshal(data, &delta); err != nil {
		return nil, rsync.NewSerializeError(err, "unable to decode delta")
	}
	return &delta, nil
}
