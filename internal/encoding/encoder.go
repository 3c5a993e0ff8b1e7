package encoding

import (
	"encoding/json"

	"github.com/neuroflow/neuroflow-cli/internal/models"
)

// Format represents the wire encoding format.
type Format string

const (
	FormatJSON     Format = "json"
	FormatProtobuf Format = "protobuf"
)

// Encoder encodes frames to bytes.
type Encoder interface {
	Encode(frame models.Frame) ([]byte, error)
	ContentType() string
}

// JSONEncoder encodes frames as JSON.
type JSONEncoder struct{}

func NewJSONEncoder() *JSONEncoder {
	return &JSONEncoder{}
}

func (e *JSONEncoder) Encode(frame models.Frame) ([]byte, error) {
	return json.Marshal(frame)
}

func (e *JSONEncoder) ContentType() string {
	return "application/json"
}

// NewEncoder creates an encoder for the given format.
func NewEncoder(format Format) Encoder {
	switch format {
	case FormatProtobuf:
		return NewProtobufEncoder()
	default:
		return NewJSONEncoder()
	}
}
