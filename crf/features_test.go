package crf

import "testing"

func contains(feats []string, want string) bool {
	for _, f := range feats {
		if f == want {
			return true
		}
	}
	return false
}

func TestExtract_Window(t *testing.T) {
	feats := Extract([]string{"Bác", "sĩ", "Nguyễn"})
	if len(feats) != 3 {
		t.Fatalf("got %d feature sets, want 3", len(feats))
	}

	wantFirst := []string{"w0=bác", "sh0=title", "bos", "w+1=sĩ", "sh+1=lower", "w0w+1=bác|sĩ"}
	for _, f := range wantFirst {
		if !contains(feats[0], f) {
			t.Errorf("position 0 missing feature %q: %v", f, feats[0])
		}
	}
	if contains(feats[0], "eos") {
		t.Errorf("position 0 has eos: %v", feats[0])
	}

	wantMid := []string{"w0=sĩ", "w-1=bác", "sh-1=title", "w-1w0=bác|sĩ", "w+1=nguyễn", "w0w+1=sĩ|nguyễn"}
	for _, f := range wantMid {
		if !contains(feats[1], f) {
			t.Errorf("position 1 missing feature %q: %v", f, feats[1])
		}
	}

	wantLast := []string{"w0=nguyễn", "w-1w0=sĩ|nguyễn", "eos"}
	for _, f := range wantLast {
		if !contains(feats[2], f) {
			t.Errorf("position 2 missing feature %q: %v", f, feats[2])
		}
	}
}

func TestExtract_SingleToken(t *testing.T) {
	feats := Extract([]string{"chào"})
	if len(feats) != 1 {
		t.Fatalf("got %d feature sets, want 1", len(feats))
	}
	for _, f := range []string{"w0=chào", "sh0=lower", "bos", "eos"} {
		if !contains(feats[0], f) {
			t.Errorf("missing feature %q: %v", f, feats[0])
		}
	}
}

func TestExtract_Empty(t *testing.T) {
	if feats := Extract(nil); len(feats) != 0 {
		t.Errorf("Extract(nil) = %v, want empty", feats)
	}
}

func TestShape(t *testing.T) {
	tests := []struct {
		tok  string
		want string
	}{
		{"123", "digit"},
		{"9X", "mixed"},
		{"e-mail1", "mixed"},
		{"HCM", "upper"},
		{"NĐ", "upper"},
		{"Quảng", "title"},
		{"chào", "lower"},
		{"...", "punct"},
		{"e-mail", "other"},
	}
	for _, tt := range tests {
		if got := shape(tt.tok); got != tt.want {
			t.Errorf("shape(%q) = %q, want %q", tt.tok, got, tt.want)
		}
	}
}
