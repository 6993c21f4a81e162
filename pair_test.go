package latlngfmt_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/reoring/latlngfmt"
)

func TestPairs_DelegatePerPosition(t *testing.T) {
	dmm := newFormat(t, latlngfmt.DegreesDecimalMinutes)
	dd := newFormat(t, latlngfmt.DecimalDegrees)

	texts := dmm.FormatPair([2]float64{55.5, -12.25}, true)
	if diff := cmp.Diff([2]string{"55 30.000N", "12 15.000W"}, texts); diff != "" {
		t.Fatalf("format pair (-want +got):\n%s", diff)
	}
	if got := dmm.ValidPair(texts); got != [2]bool{true, true} {
		t.Fatalf("valid pair: %v", got)
	}
	// A latitude string is not a longitude.
	if got := dmm.ValidPair([2]string{"55 30.000N", "55 30.000N"}); got != [2]bool{true, false} {
		t.Fatalf("valid pair per axis: %v", got)
	}

	vs, ok := dmm.ParsePair(texts)
	if ok != [2]bool{true, true} || math.Abs(vs[0]-55.5) > 1e-12 || math.Abs(vs[1]+12.25) > 1e-12 {
		t.Fatalf("parse pair: %v %v", vs, ok)
	}

	conv := dd.ConvertPair([2]string{texts[0], "not a position"}, dmm)
	if diff := cmp.Diff([2]string{"55.5000N", "not a position"}, conv); diff != "" {
		t.Fatalf("convert pair (-want +got):\n%s", diff)
	}

	if got := dmm.AsTextPair([2]float64{55.5, -12.25}, true); got != texts {
		t.Fatalf("deprecated alias differs: %v", got)
	}
	if got := dmm.AsText(latlngfmt.Latitude, 55.5, false); got != "55°30.000'N" {
		t.Fatalf("deprecated alias differs: %q", got)
	}
}
