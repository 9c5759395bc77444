package crf

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"google.golang.org/protobuf/encoding/protowire"
)

// Wire format for serialized models, protobuf wire encoding with a
// flat three-field record:
//
//	field 1 (repeated bytes)  attribute strings in ID order
//	field 2 (bytes)           packed fixed64 state weights
//	field 3 (bytes)           packed fixed64 transition weights
//
// The record is simple enough that the wire package is used directly;
// there is no generated message type.
const (
	fieldAttrs = 1
	fieldState = 2
	fieldTrans = 3
)

// modelFile is the weight file inside a model directory.
const modelFile = "model.bin"

// MarshalBinary serializes the model.
func (m *Model) MarshalBinary() ([]byte, error) {
	var buf []byte
	for _, attr := range m.attrs.toStr {
		buf = protowire.AppendTag(buf, fieldAttrs, protowire.BytesType)
		buf = protowire.AppendString(buf, attr)
	}

	state := make([]byte, 0, len(m.state)*8)
	for _, w := range m.state {
		state = protowire.AppendFixed64(state, math.Float64bits(w))
	}
	buf = protowire.AppendTag(buf, fieldState, protowire.BytesType)
	buf = protowire.AppendBytes(buf, state)

	trans := make([]byte, 0, len(m.trans)*8)
	for _, w := range m.trans {
		trans = protowire.AppendFixed64(trans, math.Float64bits(w))
	}
	buf = protowire.AppendTag(buf, fieldTrans, protowire.BytesType)
	buf = protowire.AppendBytes(buf, trans)

	return buf, nil
}

// UnmarshalBinary parses serialized model bytes, validating the
// structure before the model is handed to any decode call.
func (m *Model) UnmarshalBinary(data []byte) error {
	attrs := NewAlphabet()
	var state []float64
	var trans []float64

	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return fmt.Errorf("%w: bad tag", ErrInvalidModel)
		}
		data = data[n:]

		if typ != protowire.BytesType {
			return fmt.Errorf("%w: unexpected wire type %d for field %d", ErrInvalidModel, typ, num)
		}
		payload, n := protowire.ConsumeBytes(data)
		if n < 0 {
			return fmt.Errorf("%w: truncated field %d", ErrInvalidModel, num)
		}
		data = data[n:]

		switch num {
		case fieldAttrs:
			attrs.Add(string(payload))
		case fieldState:
			values, err := consumePackedFloat64(payload)
			if err != nil {
				return fmt.Errorf("%w: state weights: %w", ErrInvalidModel, err)
			}
			state = values
		case fieldTrans:
			values, err := consumePackedFloat64(payload)
			if err != nil {
				return fmt.Errorf("%w: transition weights: %w", ErrInvalidModel, err)
			}
			trans = values
		default:
			// Unknown fields are skipped for forward compatibility.
		}
	}

	if len(state) != attrs.Size()*numLabels {
		return fmt.Errorf("%w: %d state weights for %d attributes", ErrInvalidModel, len(state), attrs.Size())
	}
	if len(trans) != numLabels*numLabels {
		return fmt.Errorf("%w: %d transition weights", ErrInvalidModel, len(trans))
	}

	m.attrs = attrs
	m.state = state
	copy(m.trans[:], trans)
	return nil
}

func consumePackedFloat64(data []byte) ([]float64, error) {
	if len(data)%8 != 0 {
		return nil, fmt.Errorf("length %d is not a multiple of 8", len(data))
	}
	values := make([]float64, 0, len(data)/8)
	for len(data) > 0 {
		bits, n := protowire.ConsumeFixed64(data)
		if n < 0 {
			return nil, fmt.Errorf("truncated fixed64")
		}
		values = append(values, math.Float64frombits(bits))
		data = data[n:]
	}
	return values, nil
}

// Load reads a trained model from its directory. The directory name
// identifies the model; weights live in model.bin inside it.
func Load(dir string) (*Model, error) {
	data, err := os.ReadFile(filepath.Join(dir, modelFile))
	if err != nil {
		return nil, fmt.Errorf("reading model: %w", err)
	}
	m := NewModel()
	if err := m.UnmarshalBinary(data); err != nil {
		return nil, err
	}
	return m, nil
}

// Save writes the model into dir, creating it if needed.
func (m *Model) Save(dir string) error {
	data, err := m.MarshalBinary()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating model dir: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, modelFile), data, 0o644); err != nil {
		return fmt.Errorf("writing model: %w", err)
	}
	return nil
}
