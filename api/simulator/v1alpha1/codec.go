package v1alpha1

import (
	"github.com/bytedance/sonic"
	"google.golang.org/grpc/encoding"
)

// CodecName is the gRPC content-subtype carried by SimulatorService calls
const CodecName = "json"

// Codec marshals messages as JSON. Messages are plain structs, not protobuf.
type Codec struct{}

func init() {
	encoding.RegisterCodec(Codec{})
}

// Marshal encodes v as JSON
func (Codec) Marshal(v any) ([]byte, error) {
	return sonic.ConfigStd.Marshal(v)
}

// Unmarshal decodes JSON data into v
func (Codec) Unmarshal(data []byte, v any) error {
	return sonic.ConfigStd.Unmarshal(data, v)
}

// Name returns the content-subtype the codec is registered under
func (Codec) Name() string {
	return CodecName
}
