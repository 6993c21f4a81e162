package latlngfmt

import (
	"fmt"

	js "github.com/reoring/latlngfmt/jsonschema"
)

// JSONSchema projects the text accepted by Valid for axis into a JSON Schema
// string schema. The pattern is anchored and uses only syntax shared by RE2
// and ECMA-262, but matching is case-sensitive there, so lower-case hemisphere
// letters are part of the class.
func (f *Format) JSONSchema(axis Axis) *js.Schema {
	if !axis.Known() {
		return nil
	}
	return &js.Schema{
		Schema:      js.Draft,
		Title:       axisTitle(axis),
		Description: fmt.Sprintf("%s in %v notation, e.g. %s", axisTitle(axis), f.cfg.Notation, f.Placeholder(axis)),
		Type:        "string",
		Format:      "latlng-" + f.cfg.Notation.String(),
		Pattern:     f.Pattern(axis),
		Examples:    []any{f.Placeholder(axis)},
	}
}

// NumberSchema projects the signed decimal-degree range of axis.
func NumberSchema(axis Axis) *js.Schema {
	if !axis.Known() {
		return nil
	}
	return &js.Schema{
		Schema:  js.Draft,
		Title:   axisTitle(axis),
		Type:    "number",
		Minimum: js.Float(-axis.Limit()),
		Maximum: js.Float(axis.Limit()),
	}
}

// PairSchema projects an object with "lat" and "lon" text properties.
func (f *Format) PairSchema() *js.Schema {
	lat, lon := f.JSONSchema(Latitude), f.JSONSchema(Longitude)
	lat.Schema, lon.Schema = "", ""
	return &js.Schema{
		Schema:     js.Draft,
		Title:      "Position",
		Type:       "object",
		Properties: map[string]*js.Schema{"lat": lat, "lon": lon},
		Required:   []string{"lat", "lon"},
	}
}

func axisTitle(a Axis) string {
	if a == Longitude {
		return "Longitude"
	}
	return "Latitude"
}
