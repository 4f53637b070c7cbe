package util

import "testing"

func TestDigits5(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "00000"},
		{7, "00007"},
		{350, "00350"},
		{47000, "47000"},
		{65535, "65535"},
		{123456, "23456"},
	}
	for _, tt := range tests {
		if got := Digits5(tt.in); got != tt.want {
			t.Errorf("Digits5(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestReadings(t *testing.T) {
	if got := Readings(48000, 120); got != "L48000|R00120" {
		t.Errorf("Readings() = %q", got)
	}
}

func TestPadLine(t *testing.T) {
	if got := PadLine("R"); len(got) != 16 || got[0] != 'R' || got[15] != ' ' {
		t.Errorf("PadLine(R) = %q", got)
	}
	if got := PadLine("CHECKSUM INVALID!!"); got != "CHECKSUM INVALID" {
		t.Errorf("PadLine(long) = %q", got)
	}
}
