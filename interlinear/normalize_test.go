package interlinear

import "testing"

func TestFold(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"ἐγέννησεν", "εγεννησεν"},
		{"Egennēsen", "egennesen"},
		{"Βίβλος", "βιβλοσ"},
		{"ἀρχῇ", "αρχη"},
		{"Iēsou  Christou", "iesou christou"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Fold(tt.in); got != tt.want {
			t.Errorf("Fold(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
