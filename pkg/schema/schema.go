// Package schema defines the Avro records of the order stream and the
// order history table, and the schema registry serde for the stream.
package schema

import "github.com/hamba/avro/v2"

type (
	EncodeFn func(v any) ([]byte, error)
	DecodeFn func(data []byte, v any) error
)

// AvroEncodeFn encodes plain Avro without the registry header.
func AvroEncodeFn(s avro.Schema) EncodeFn {
	return func(v any) ([]byte, error) {
		return avro.Marshal(s, v)
	}
}

// AvroDecodeFn decodes plain Avro into v, which must be a pointer.
func AvroDecodeFn(s avro.Schema) DecodeFn {
	return func(data []byte, v any) error {
		return avro.Unmarshal(s, data, v)
	}
}
