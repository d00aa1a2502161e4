package core_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/pangraph/core"
)

func TestParseSignedID(t *testing.T) {
	cases := []struct {
		in   string
		bare string
		sign core.Sign
		ok   bool
	}{
		{"12+", "12", core.Plus, true},
		{"12-", "12", core.Minus, true},
		{"utig4-1-", "utig4-1", core.Minus, true},
		{"12", "", 0, false},
		{"+", "", 0, false},
		{"", "", 0, false},
		{"12+-", "", 0, false},
		{"12--", "", 0, false},
	}
	for _, tc := range cases {
		bare, sign, err := core.ParseSignedID(tc.in)
		if tc.ok {
			if err != nil {
				t.Errorf("ParseSignedID(%q) unexpected error: %v", tc.in, err)
				continue
			}
			if bare != tc.bare || sign != tc.sign {
				t.Errorf("ParseSignedID(%q) = (%q, %c); want (%q, %c)", tc.in, bare, sign, tc.bare, tc.sign)
			}
			continue
		}
		if !errors.Is(err, core.ErrMalformedID) {
			t.Errorf("ParseSignedID(%q): want ErrMalformedID, got %v", tc.in, err)
		}
	}
}

func TestFlipID(t *testing.T) {
	if got, _ := core.FlipID("7+"); got != "7-" {
		t.Errorf("FlipID(7+) = %q; want 7-", got)
	}
	if got, _ := core.FlipID("7-"); got != "7+" {
		t.Errorf("FlipID(7-) = %q; want 7+", got)
	}
	if _, err := core.FlipID("7"); !errors.Is(err, core.ErrMalformedID) {
		t.Errorf("FlipID(7): want ErrMalformedID, got %v", err)
	}
}

func TestPort_String(t *testing.T) {
	if core.PortStart.String() != "START" || core.PortEnd.String() != "END" || core.PortNone.String() != "NONE" {
		t.Fatal("unexpected port names")
	}
	if core.PortStart.Other() != core.PortEnd || core.PortEnd.Other() != core.PortStart {
		t.Fatal("Other() must swap START and END")
	}
}
