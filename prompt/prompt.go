// Package prompt asks for coordinates interactively. Answers are checked
// against a Format and the edit template placeholder is shown as help.
package prompt

import (
	"context"
	"fmt"

	"github.com/reoring/latlngfmt"
	"github.com/reoring/latlngfmt/codec"
)

var axisTitles = [2]string{"Latitude", "Longitude"}

// Coordinate asks for one axis until the answer parses in f and returns it
// in signed decimal degrees. Rejected answers are reported through d.Info.
func Coordinate(ctx context.Context, d Driver, f *latlngfmt.Format, axis latlngfmt.Axis) (float64, error) {
	if !axis.Known() {
		return 0, fmt.Errorf("prompt: unknown axis %v", axis)
	}
	c := codec.Coordinate(f, axis)
	validate := func(s string) error {
		_, err := c.Decode(ctx, s)
		return message(err)
	}
	cfg := InputConfig{
		Message:   fmt.Sprintf("%s (%s)", axisTitles[axis], f.EditTemplate(axis)),
		Help:      "e.g. " + f.Placeholder(axis),
		Validator: validate,
	}
	for {
		ans, err := d.Input(ctx, cfg)
		if err != nil {
			return 0, err
		}
		v, err := c.Decode(ctx, ans)
		if err == nil {
			return v, nil
		}
		if err := d.Info(ctx, message(err).Error()); err != nil {
			return 0, err
		}
	}
}

// Pair asks for latitude then longitude.
func Pair(ctx context.Context, d Driver, f *latlngfmt.Format) ([2]float64, error) {
	var out [2]float64
	for _, axis := range []latlngfmt.Axis{latlngfmt.Latitude, latlngfmt.Longitude} {
		v, err := Coordinate(ctx, d, f, axis)
		if err != nil {
			return out, err
		}
		out[axis] = v
	}
	return out, nil
}

// Notation lets the user pick a notation, starting from def.
func Notation(ctx context.Context, d Driver, def latlngfmt.Notation) (latlngfmt.Notation, error) {
	opts := make([]string, len(latlngfmt.Notations))
	for i, n := range latlngfmt.Notations {
		opts[i] = n.String()
	}
	idx, err := d.Select(ctx, SelectConfig{Message: "Notation", Options: opts, DefaultIndex: int(def)})
	if err != nil {
		return def, err
	}
	if idx < 0 || idx >= len(latlngfmt.Notations) {
		return def, fmt.Errorf("prompt: selection %d out of range", idx)
	}
	return latlngfmt.Notations[idx], nil
}

// message reduces Issues to their first message for display.
func message(err error) error {
	if err == nil {
		return nil
	}
	if iss, ok := latlngfmt.AsIssues(err); ok && len(iss) > 0 {
		return fmt.Errorf("%s", iss[0].Message)
	}
	return err
}
