package trp

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Encoding names how a byte payload is rendered as a string.
type Encoding string

const (
	EncodingHex    Encoding = "hex"
	EncodingBase64 Encoding = "base64"
)

func (e Encoding) decode(payload string) ([]byte, error) {
	switch e {
	case EncodingHex:
		return hex.DecodeString(payload)
	case EncodingBase64:
		return base64.StdEncoding.DecodeString(payload)
	default:
		return nil, fmt.Errorf("unknown encoding %q", e)
	}
}

func (e Encoding) valid() bool {
	return e == EncodingHex || e == EncodingBase64
}
