package common

import (
	"bytes"
	"encoding/hex"
	"fmt"

	"github.com/klauspost/compress/zstd"
	"github.com/vmihailenco/msgpack/v4"
)

var (
	zstdEncoder *zstd.Encoder
	zstdDecoder *zstd.Decoder

	CompressionVersionZero   = []byte{0, 0, 0, 0}
	CompressionVersionLatest = CompressionVersionZero
)

func init() {
	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		panic(err)
	}
	dec, err := zstd.NewReader(nil)
	if err != nil {
		panic(err)
	}
	zstdEncoder, zstdDecoder = enc, dec
}

func Compress(b []byte) []byte {
	b = zstdEncoder.EncodeAll(b, make([]byte, 0, len(b)))
	return append(append([]byte{}, CompressionVersionLatest...), b...)
}

// Decompress returns nil for input without a known version header.
func Decompress(b []byte) []byte {
	header := len(CompressionVersionLatest)
	if len(b) < header {
		return nil
	}
	if !bytes.Equal(b[:header], CompressionVersionZero) {
		return nil
	}
	b, err := zstdDecoder.DecodeAll(b[header:], nil)
	if err != nil {
		return nil
	}
	return b
}

func CompressMsgpackMarshalPanic(val interface{}) []byte {
	return Compress(MsgpackMarshalPanic(val))
}

// DecompressMsgpackUnmarshal falls back to plain msgpack when data has no
// compression header.
func DecompressMsgpackUnmarshal(data []byte, val interface{}) error {
	header := len(CompressionVersionLatest)
	if len(data) < header || !bytes.Equal(data[:header], CompressionVersionZero) {
		return MsgpackUnmarshal(data, val)
	}
	payload, err := zstdDecoder.DecodeAll(data[header:], nil)
	if err != nil {
		return err
	}
	return MsgpackUnmarshal(payload, val)
}

func MsgpackMarshalPanic(val interface{}) []byte {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf).UseCompactEncoding(true).SortMapKeys(true)
	err := enc.Encode(val)
	if err != nil {
		panic(fmt.Errorf("MsgpackMarshalPanic: %#v %s", val, err.Error()))
	}
	return buf.Bytes()
}

func MsgpackUnmarshal(data []byte, val interface{}) error {
	err := msgpack.Unmarshal(data, val)
	if err == nil {
		return err
	}
	return fmt.Errorf("MsgpackUnmarshal: %s %s", hex.EncodeToString(data), err.Error())
}
