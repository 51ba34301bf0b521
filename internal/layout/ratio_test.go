package layout

import (
	"errors"
	"testing"

	"github.com/piwi3910/JointCut/internal/model"
)

func TestParseRatio(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"6", 6.0},
		{"1:6", 6.0},
		{"2:7", 3.5},
		{"1:4.5", 4.5},
		{" 6 ", 6.0},
		{"1 : 6", 6.0},
	}
	for _, c := range cases {
		got, err := ParseRatio(c.in)
		if err != nil {
			t.Errorf("ParseRatio(%q): unexpected error %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("ParseRatio(%q) = %g, want %g", c.in, got, c.want)
		}
	}
}

func TestParseRatioInvalid(t *testing.T) {
	cases := []string{"0:6", "abc", "", "1:abc", "x:6", "1:2:3", ":6", "6:"}
	for _, in := range cases {
		_, err := ParseRatio(in)
		if err == nil {
			t.Errorf("ParseRatio(%q): expected error", in)
			continue
		}
		var verr *model.ValidationError
		if !errors.As(err, &verr) {
			t.Errorf("ParseRatio(%q): error %v is not a ValidationError", in, err)
		}
	}
}
