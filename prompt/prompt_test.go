package prompt

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/reoring/latlngfmt"
)

type fakeDriver struct {
	answers []string
	choice  int
	inputs  []InputConfig
	infos   []string
}

func (f *fakeDriver) Input(ctx context.Context, cfg InputConfig) (string, error) {
	f.inputs = append(f.inputs, cfg)
	if len(f.answers) == 0 {
		return "", ErrAborted
	}
	ans := f.answers[0]
	f.answers = f.answers[1:]
	return ans, nil
}

func (f *fakeDriver) Select(ctx context.Context, cfg SelectConfig) (int, error) {
	return f.choice, nil
}

func (f *fakeDriver) Info(ctx context.Context, msg string) error {
	f.infos = append(f.infos, msg)
	return nil
}

func dmm(t *testing.T) *latlngfmt.Format {
	t.Helper()
	f, err := latlngfmt.New(latlngfmt.DegreesDecimalMinutes, latlngfmt.WithDecimalSeparator('.'))
	if err != nil {
		t.Fatal(err)
	}
	return f
}

func TestCoordinate_RetriesUntilValid(t *testing.T) {
	d := &fakeDriver{answers: []string{"95 00.000N", "", "41 25.130N"}}
	v, err := Coordinate(context.Background(), d, dmm(t), latlngfmt.Latitude)
	if err != nil {
		t.Fatalf("coordinate: %v", err)
	}
	if math.Abs(v-(41+25.13/60)) > 1e-9 {
		t.Fatalf("unexpected value %v", v)
	}
	want := []string{
		"not a valid latitude, expected e.g. 89 59.999N",
		"value is required",
	}
	if diff := cmp.Diff(want, d.infos); diff != "" {
		t.Fatalf("infos (-want +got):\n%s", diff)
	}
	cfg := d.inputs[0]
	if cfg.Message != "Latitude (DDD MM.mmmH)" || cfg.Help != "e.g. 89 59.999N" {
		t.Fatalf("unexpected input config: %+v", cfg)
	}
	if cfg.Validator("12 00.000N") != nil || cfg.Validator("95") == nil || cfg.Validator("12 60") == nil {
		t.Fatalf("validator does not follow the format")
	}
}

func TestCoordinate_Aborted(t *testing.T) {
	d := &fakeDriver{}
	if _, err := Coordinate(context.Background(), d, dmm(t), latlngfmt.Longitude); !errors.Is(err, ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", err)
	}
}

func TestCoordinate_UnknownAxis(t *testing.T) {
	if _, err := Coordinate(context.Background(), &fakeDriver{}, dmm(t), latlngfmt.Axis(5)); err == nil {
		t.Fatalf("expected error")
	}
}

func TestPair(t *testing.T) {
	d := &fakeDriver{answers: []string{"S10 30.000", "10 30.000 w"}}
	got, err := Pair(context.Background(), d, dmm(t))
	if err != nil {
		t.Fatalf("pair: %v", err)
	}
	if got != [2]float64{-10.5, -10.5} {
		t.Fatalf("unexpected pair %v", got)
	}
}

func TestNotation(t *testing.T) {
	n, err := Notation(context.Background(), &fakeDriver{choice: 2}, latlngfmt.DegreesDecimalMinutes)
	if err != nil || n != latlngfmt.DecimalDegrees {
		t.Fatalf("got %v, %v", n, err)
	}
	if _, err := Notation(context.Background(), &fakeDriver{choice: 7}, latlngfmt.DegreesDecimalMinutes); err == nil {
		t.Fatalf("expected out of range error")
	}
}

func TestStringValidator(t *testing.T) {
	v := stringValidator(func(s string) error {
		if s == "" {
			return errors.New("empty")
		}
		return nil
	})
	if v("x") != nil || v("") == nil || v(42) == nil {
		t.Fatalf("validator adapter misbehaves")
	}
}
