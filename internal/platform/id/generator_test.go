package id

import "testing"

func TestSlug(t *testing.T) {
	t.Parallel()

	tests := []struct {
		parts []string
		want  string
	}{
		{parts: []string{"March 2025", "Cosmic Cyclone"}, want: "march-2025-cosmic-cyclone"},
		{parts: []string{"  April  ", "Bloodbath!!"}, want: "april-bloodbath"},
		{parts: []string{"", "--x--"}, want: "x"},
		{parts: []string{"Mayo", "Ñandú"}, want: "mayo-ñandú"},
		{parts: nil, want: ""},
	}

	for _, tt := range tests {
		if got := Slug(tt.parts...); got != tt.want {
			t.Fatalf("Slug(%q)=%q want=%q", tt.parts, got, tt.want)
		}
	}
}

func TestRandomGenerator_NewID(t *testing.T) {
	t.Parallel()

	gen := NewRandomGenerator(3)
	a, err := gen.NewID()
	if err != nil {
		t.Fatalf("new id: %v", err)
	}
	b, err := gen.NewID()
	if err != nil {
		t.Fatalf("new id: %v", err)
	}
	if len(a) != 6 || a == b {
		t.Fatalf("unexpected ids: %q %q", a, b)
	}
}
