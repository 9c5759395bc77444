package crf

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestCodec_Roundtrip(t *testing.T) {
	m := NewModel()
	m.SetWeight("w0=xin", Begin, 1.5)
	m.SetWeight("w0=chào", Inside, -2.25)
	m.SetWeight("w-1w0=xin|chào", Inside, 4.0)
	m.SetTransition(Begin, Inside, 0.75)
	m.SetTransition(Inside, Begin, -0.5)

	data, err := m.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary failed: %v", err)
	}

	decoded := NewModel()
	if err := decoded.UnmarshalBinary(data); err != nil {
		t.Fatalf("UnmarshalBinary failed: %v", err)
	}

	feats := Extract([]string{"xin", "chào", "bạn"})
	if got, want := decoded.Predict(feats), m.Predict(feats); !reflect.DeepEqual(got, want) {
		t.Errorf("decoded model predicts %v, original predicts %v", got, want)
	}
	if got := decoded.weight("w-1w0=xin|chào", Inside); got != 4.0 {
		t.Errorf("decoded weight = %v, want 4.0", got)
	}
	if got := decoded.transition(Begin, Inside); got != 0.75 {
		t.Errorf("decoded transition = %v, want 0.75", got)
	}
}

func TestCodec_EmptyModel(t *testing.T) {
	data, err := NewModel().MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary failed: %v", err)
	}
	decoded := NewModel()
	if err := decoded.UnmarshalBinary(data); err != nil {
		t.Fatalf("UnmarshalBinary failed: %v", err)
	}
	if decoded.attrs.Size() != 0 {
		t.Errorf("decoded attribute count = %d, want 0", decoded.attrs.Size())
	}
}

func TestUnmarshalBinary_Corrupt(t *testing.T) {
	m := NewModel()
	m.SetWeight("w0=xin", Begin, 1.0)
	data, err := m.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary failed: %v", err)
	}

	tests := []struct {
		name string
		data []byte
	}{
		{"garbage", []byte("not a model at all")},
		{"truncated", data[:len(data)-3]},
		{"attrs without weights", data[:2+len("w0=xin")]},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewModel().UnmarshalBinary(tt.data)
			if err == nil {
				t.Fatal("expected error for corrupt model bytes")
			}
			if !errors.Is(err, ErrInvalidModel) {
				t.Errorf("expected ErrInvalidModel, got: %v", err)
			}
		})
	}
}

func TestSaveLoad(t *testing.T) {
	m := NewModel()
	m.SetWeight("w-1w0=khởi|nghiệp", Inside, 4.0)
	m.SetTransition(Begin, Inside, 0.5)

	dir := filepath.Join(t.TempDir(), "ws_crf_test")
	if err := m.Save(dir); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	feats := Extract([]string{"khởi", "nghiệp", "trẻ"})
	if got, want := loaded.Predict(feats), m.Predict(feats); !reflect.DeepEqual(got, want) {
		t.Errorf("loaded model predicts %v, want %v", got, want)
	}
}

func TestLoad_MissingDir(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "no_such_model"))
	if err == nil {
		t.Fatal("expected error for missing model directory")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected a not-exist error, got: %v", err)
	}
}

func TestLoad_InvalidFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "model.bin"), []byte{0xff, 0xff}, 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	_, err := Load(dir)
	if !errors.Is(err, ErrInvalidModel) {
		t.Errorf("expected ErrInvalidModel, got: %v", err)
	}
}
