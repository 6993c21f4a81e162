package codec

import (
	"context"
	"math"
	"strconv"
	"strings"

	"github.com/reoring/latlngfmt"
	"github.com/reoring/latlngfmt/i18n"
)

// Coordinate returns a Codec that converts between edit-template text and
// signed decimal degrees for one axis.
func Coordinate(f *latlngfmt.Format, axis latlngfmt.Axis) latlngfmt.Codec[string, float64] {
	return &coordinateCodec{f: f, axis: axis}
}

// Display is like Coordinate but encodes with the display template. Decode
// also accepts display text: the degree glyph and minute/second marks are
// read as blanks.
func Display(f *latlngfmt.Format, axis latlngfmt.Axis) latlngfmt.Codec[string, float64] {
	return &coordinateCodec{f: f, axis: axis, display: true}
}

type coordinateCodec struct {
	f       *latlngfmt.Format
	axis    latlngfmt.Axis
	display bool
}

func (c *coordinateCodec) Decode(ctx context.Context, a string) (float64, error) {
	if err := checkAxis(c.axis); err != nil {
		return 0, err
	}
	in := a
	if c.display {
		in = stripDisplay(a, c.f.Config().DegreeGlyph)
	}
	v, ok := c.f.Parse(c.axis, in)
	if !ok {
		return 0, invalidText(c.f, c.axis, a)
	}
	return v, nil
}

func (c *coordinateCodec) Encode(ctx context.Context, b float64) (string, error) {
	if err := checkAxis(c.axis); err != nil {
		return "", err
	}
	if err := checkRange(c.axis, b); err != nil {
		return "", err
	}
	return c.f.Format(c.axis, b, !c.display), nil
}

// Transcode returns a Codec between text in src's notation (wire side) and
// text in dst's notation (domain side). Unlike Format.Convert it rejects text
// that does not validate instead of passing it through.
func Transcode(src, dst *latlngfmt.Format, axis latlngfmt.Axis) latlngfmt.Codec[string, string] {
	return &transcodeCodec{src: src, dst: dst, axis: axis}
}

type transcodeCodec struct {
	src, dst *latlngfmt.Format
	axis     latlngfmt.Axis
}

func (c *transcodeCodec) Decode(ctx context.Context, a string) (string, error) {
	return transcode(c.src, c.dst, c.axis, a)
}

func (c *transcodeCodec) Encode(ctx context.Context, b string) (string, error) {
	return transcode(c.dst, c.src, c.axis, b)
}

func transcode(from, to *latlngfmt.Format, axis latlngfmt.Axis, s string) (string, error) {
	if err := checkAxis(axis); err != nil {
		return "", err
	}
	v, ok := from.Parse(axis, s)
	if !ok {
		return "", invalidText(from, axis, s)
	}
	return to.Format(axis, v, true), nil
}

// ---- helpers ----

func axisName(a latlngfmt.Axis) string {
	if a == latlngfmt.Longitude {
		return "longitude"
	}
	return "latitude"
}

func checkAxis(a latlngfmt.Axis) error {
	if a.Known() {
		return nil
	}
	return latlngfmt.Issues{{
		Path:    "/",
		Code:    latlngfmt.CodeUnknownAxis,
		Message: i18n.T(latlngfmt.CodeUnknownAxis, map[string]string{"axis": a.String()}),
	}}
}

func checkRange(a latlngfmt.Axis, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return latlngfmt.Issues{{
			Path:    "/",
			Code:    latlngfmt.CodeNotANumber,
			Message: i18n.T(latlngfmt.CodeNotANumber, nil),
		}}
	}
	if math.Abs(v) > a.Limit() {
		limit := strconv.FormatFloat(a.Limit(), 'f', -1, 64)
		return latlngfmt.Issues{{
			Path:    "/",
			Code:    latlngfmt.CodeOutOfRange,
			Message: i18n.T(latlngfmt.CodeOutOfRange, map[string]string{"axis": axisName(a), "max": limit}),
			Params:  map[string]any{"axis": a.String(), "max": a.Limit(), "got": v},
		}}
	}
	return nil
}

func invalidText(f *latlngfmt.Format, a latlngfmt.Axis, s string) error {
	if strings.TrimSpace(s) == "" {
		return latlngfmt.Issues{{
			Path:    "/",
			Code:    latlngfmt.CodeRequired,
			Message: i18n.T(latlngfmt.CodeRequired, nil),
			Hint:    f.Placeholder(a),
		}}
	}
	return latlngfmt.Issues{{
		Path:    "/",
		Code:    latlngfmt.CodeInvalidFormat,
		Message: i18n.T(latlngfmt.CodeInvalidFormat, map[string]string{"axis": axisName(a), "example": f.Placeholder(a)}),
		Hint:    f.Placeholder(a),
		Input:   s,
		Params:  map[string]any{"axis": a.String(), "notation": f.Notation().String()},
	}}
}

// stripDisplay turns display decorations into blanks so the text reads like
// edit text: 41°25'01.3"N becomes 41 25 01.3 N.
func stripDisplay(s, glyph string) string {
	pairs := []string{"'", " ", `"`, " ", "′", " ", "″", " ", "°", " "}
	if glyph != "" {
		pairs = append(pairs, glyph, " ")
	}
	return strings.NewReplacer(pairs...).Replace(s)
}
