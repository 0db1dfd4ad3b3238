package service

import "testing"

func TestParseBucket(t *testing.T) {
	tests := []struct {
		in   string
		want Bucket
	}{
		{"mon", Monday},
		{"Monday", Monday},
		{"MONDAY", Monday},
		{"tue", Tuesday},
		{"tues", Tuesday},
		{"wed", Wednesday},
		{"thu", Thursday},
		{"thurs", Thursday},
		{"fri", Friday},
		{"sat", Saturday},
		{"sun", Sunday},
		{"som", Someday},
		{"someday", Someday},
		{"  fri  ", Friday},
	}

	for _, tt := range tests {
		got, err := ParseBucket(tt.in)
		if err != nil {
			t.Errorf("ParseBucket(%q): unexpected error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseBucket(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseBucket_Errors(t *testing.T) {
	for _, in := range []string{"", "m", "mo", "blursday", "mondays", "weekend"} {
		if _, err := ParseBucket(in); err == nil {
			t.Errorf("ParseBucket(%q): expected error", in)
		}
	}
}

func TestBucketsOrder(t *testing.T) {
	want := []Bucket{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday, Someday}
	got := Buckets()
	if len(got) != len(want) {
		t.Fatalf("got %d buckets, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("bucket %d = %v, want %v", i, got[i], want[i])
		}
	}
}
