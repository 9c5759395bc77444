package crf

import (
	"reflect"
	"testing"
)

// bigramModel builds a model that favors Inside whenever the previous
// and current tokens form one of the given pairs.
func bigramModel(pairs ...[2]string) *Model {
	m := NewModel()
	for _, p := range pairs {
		m.SetWeight("w-1w0="+p[0]+"|"+p[1], Inside, 4.0)
	}
	return m
}

func TestPredict_FirstIsBegin(t *testing.T) {
	m := NewModel()
	// Even a strong Inside preference on the first token cannot
	// override the start constraint.
	m.SetWeight("w0=chào", Inside, 100.0)
	labels := m.Predict(Extract([]string{"chào"}))
	if len(labels) != 1 || labels[0] != Begin {
		t.Errorf("labels = %v, want [Begin]", labels)
	}
}

func TestPredict_BigramMerge(t *testing.T) {
	m := bigramModel([2]string{"khởi", "nghiệp"}, [2]string{"quảng", "trị"})
	tokens := []string{"Quảng", "Trị", "khởi", "nghiệp", "từ", "nấm"}
	labels := m.Predict(Extract(tokens))

	want := []Label{Begin, Inside, Begin, Inside, Begin, Begin}
	if !reflect.DeepEqual(labels, want) {
		t.Errorf("labels = %v, want %v", labels, want)
	}
}

func TestPredict_TiesResolveToBegin(t *testing.T) {
	// Zero-weight model: every path scores the same, so every token
	// should start its own word.
	m := NewModel()
	labels := m.Predict(Extract([]string{"một", "hai", "ba", "bốn"}))
	for i, l := range labels {
		if l != Begin {
			t.Errorf("label %d = %v, want Begin under all-zero weights", i, l)
		}
	}
}

func TestPredict_TransitionsShiftPaths(t *testing.T) {
	m := NewModel()
	m.SetTransition(Begin, Inside, 2.0)
	labels := m.Predict(Extract([]string{"một", "hai", "ba"}))

	// Begin->Inside is rewarded and Inside->Inside is not, so labels
	// alternate after the forced initial Begin.
	want := []Label{Begin, Inside, Begin}
	if !reflect.DeepEqual(labels, want) {
		t.Errorf("labels = %v, want %v", labels, want)
	}
}

func TestPredict_Deterministic(t *testing.T) {
	m := bigramModel([2]string{"chàng", "trai"}, [2]string{"bệnh", "nhân"})
	feats := Extract([]string{"Chàng", "trai", "thăm", "bệnh", "nhân"})

	first := m.Predict(feats)
	for i := 0; i < 50; i++ {
		if got := m.Predict(feats); !reflect.DeepEqual(got, first) {
			t.Fatalf("run %d produced %v, first run produced %v", i, got, first)
		}
	}
}

func TestPredict_Empty(t *testing.T) {
	if labels := NewModel().Predict(nil); labels != nil {
		t.Errorf("Predict(nil) = %v, want nil", labels)
	}
}
