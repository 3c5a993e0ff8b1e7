package encoding

import (
	"encoding/json"
	"fmt"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/neuroflow/neuroflow-cli/internal/models"
)

// ProtobufEncoder encodes frames as protocol buffers using the well-known
// Struct type, so consumers need no generated schema to decode them.
type ProtobufEncoder struct{}

func NewProtobufEncoder() *ProtobufEncoder {
	return &ProtobufEncoder{}
}

func (e *ProtobufEncoder) Encode(frame models.Frame) ([]byte, error) {
	pb, err := frameToStruct(frame)
	if err != nil {
		return nil, err
	}
	return proto.Marshal(pb)
}

func (e *ProtobufEncoder) ContentType() string {
	return "application/x-protobuf"
}

// frameToStruct converts a frame into a structpb.Struct through its JSON
// form, which keeps the protobuf field set identical to the JSON schema.
func frameToStruct(frame models.Frame) (*structpb.Struct, error) {
	raw, err := json.Marshal(frame)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal frame: %w", err)
	}

	var fields map[string]interface{}
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("failed to rebuild frame fields: %w", err)
	}

	pb, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, fmt.Errorf("failed to build struct: %w", err)
	}
	return pb, nil
}
