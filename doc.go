// Package latlngfmt validates, parses, formats and converts latitude and
// longitude text in three notations:
//
// - DegreesMinutesSeconds: 41 25 01.3N (display 41°25'01.3"N)
// - DegreesDecimalMinutes: 41 25.022N (display 41°25.022'N)
// - DecimalDegrees: 41.4170N (display 41.4170°N)
//
// A Format is immutable. Its configuration (notation, decimal separator and
// degree glyph) fully determines the validation pattern, the decomposition
// mask, the edit and display templates and the placeholder of each axis.
// Changing the notation or separator yields a new Format.
//
// Design policy:
// - Keep the text model in the root package; codecs live under codec/, the
// JSON Schema model under jsonschema/ and the CLI under cmd/latlngfmt.
// - Report conversion failures as Issues (JSON Pointer, code, message).
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	f, err := latlngfmt.New(latlngfmt.DegreesDecimalMinutes)
//	ok := f.Valid(latlngfmt.Latitude, "41 25.130N")
//	v, ok := f.Parse(latlngfmt.Latitude, "41 25.130N")
//	s := f.Format(latlngfmt.Longitude, -2.1, true)
//
//	dd, _ := f.WithNotation(latlngfmt.DecimalDegrees)
//	s = dd.Convert(latlngfmt.Latitude, "41 25.130N", f)
package latlngfmt
