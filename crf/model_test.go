package crf

import "testing"

func TestAlphabet(t *testing.T) {
	a := NewAlphabet()
	if a.Size() != 0 {
		t.Fatalf("empty alphabet size = %d, want 0", a.Size())
	}
	if got := a.Get("w0=xin"); got != -1 {
		t.Errorf("Get on empty alphabet = %d, want -1", got)
	}

	first := a.Add("w0=xin")
	second := a.Add("w0=chào")
	if first == second {
		t.Errorf("distinct attributes share ID %d", first)
	}
	if got := a.Add("w0=xin"); got != first {
		t.Errorf("re-adding attribute returned %d, want %d", got, first)
	}
	if a.Size() != 2 {
		t.Errorf("size = %d, want 2", a.Size())
	}
	if got := a.Get("w0=chào"); got != second {
		t.Errorf("Get = %d, want %d", got, second)
	}
}

func TestModel_Weights(t *testing.T) {
	m := NewModel()
	m.SetWeight("w0=xin", Begin, 1.5)
	m.SetWeight("w0=xin", Inside, -0.5)
	m.SetWeight("w-1w0=xin|chào", Inside, 3.0)

	tests := []struct {
		attr  string
		label Label
		want  float64
	}{
		{"w0=xin", Begin, 1.5},
		{"w0=xin", Inside, -0.5},
		{"w-1w0=xin|chào", Inside, 3.0},
		{"w-1w0=xin|chào", Begin, 0},
		{"w0=unknown", Begin, 0},
		{"w0=unknown", Inside, 0},
	}
	for _, tt := range tests {
		if got := m.weight(tt.attr, tt.label); got != tt.want {
			t.Errorf("weight(%q, %v) = %v, want %v", tt.attr, tt.label, got, tt.want)
		}
	}
}

func TestModel_Emission(t *testing.T) {
	m := NewModel()
	m.SetWeight("w0=xin", Inside, 2.0)
	m.SetWeight("bos", Inside, 0.5)

	got := m.emission([]string{"w0=xin", "bos", "sh0=lower"}, Inside)
	if got != 2.5 {
		t.Errorf("emission = %v, want 2.5", got)
	}
	if got := m.emission([]string{"sh0=lower"}, Begin); got != 0 {
		t.Errorf("emission over unknown features = %v, want 0", got)
	}
}

func TestModel_Transition(t *testing.T) {
	m := NewModel()
	m.SetTransition(Begin, Inside, 1.25)
	if got := m.transition(Begin, Inside); got != 1.25 {
		t.Errorf("transition(Begin, Inside) = %v, want 1.25", got)
	}
	if got := m.transition(Inside, Begin); got != 0 {
		t.Errorf("transition(Inside, Begin) = %v, want 0", got)
	}
}

func TestLabel_String(t *testing.T) {
	if got := Begin.String(); got != "B-W" {
		t.Errorf("Begin.String() = %q, want %q", got, "B-W")
	}
	if got := Inside.String(); got != "I-W" {
		t.Errorf("Inside.String() = %q, want %q", got, "I-W")
	}
}

func TestDummy_AllBegin(t *testing.T) {
	feats := Extract([]string{"xin", "chào", "thế", "giới"})
	labels := Dummy{}.Predict(feats)
	if len(labels) != 4 {
		t.Fatalf("got %d labels, want 4", len(labels))
	}
	for i, l := range labels {
		if l != Begin {
			t.Errorf("label %d = %v, want Begin", i, l)
		}
	}
}

func TestDummy_Empty(t *testing.T) {
	if labels := (Dummy{}).Predict(nil); len(labels) != 0 {
		t.Errorf("Predict(nil) = %v, want empty", labels)
	}
}
