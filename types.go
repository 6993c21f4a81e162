package latlngfmt

import (
	"fmt"
	"strings"
)

// Notation selects one of the supported coordinate text styles.
type Notation int

const (
	DegreesMinutesSeconds Notation = iota // Degrees, minutes, seconds and tenths: 41°25'01.3"N
	DegreesDecimalMinutes                 // Degrees and decimal minutes: 41°25.021'N
	DecimalDegrees                        // Decimal degrees: 41.4170°N
)

// Notations lists every supported notation in declaration order.
var Notations = []Notation{DegreesMinutesSeconds, DegreesDecimalMinutes, DecimalDegrees}

func (n Notation) String() string {
	switch n {
	case DegreesMinutesSeconds:
		return "dms"
	case DegreesDecimalMinutes:
		return "dmm"
	case DecimalDegrees:
		return "dd"
	}
	return fmt.Sprintf("Notation(%d)", int(n))
}

// Known reports whether n is one of the declared notations.
func (n Notation) Known() bool { return n >= DegreesMinutesSeconds && n <= DecimalDegrees }

// ParseNotation maps a short name ("dms", "dmm", "dd") back to a Notation.
// Matching ignores case and surrounding space.
func ParseNotation(s string) (Notation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dms", "dmss":
		return DegreesMinutesSeconds, nil
	case "dmm", "dm":
		return DegreesDecimalMinutes, nil
	case "dd", "deg", "decimal":
		return DecimalDegrees, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownNotation, s)
}

// Axis selects latitude or longitude.
type Axis int

const (
	Latitude  Axis = iota // North/south, 0..90.
	Longitude             // East/west, 0..180.
)

func (a Axis) String() string {
	switch a {
	case Latitude:
		return "lat"
	case Longitude:
		return "lon"
	}
	return fmt.Sprintf("Axis(%d)", int(a))
}

// Known reports whether a is Latitude or Longitude.
func (a Axis) Known() bool { return a == Latitude || a == Longitude }

// Limit is the largest magnitude in degrees allowed on the axis.
func (a Axis) Limit() float64 {
	if a == Longitude {
		return 180
	}
	return 90
}

// Hemisphere returns the hemisphere letter for a sign on this axis.
func (a Axis) Hemisphere(sign int) byte {
	if a == Longitude {
		if sign < 0 {
			return 'W'
		}
		return 'E'
	}
	if sign < 0 {
		return 'S'
	}
	return 'N'
}

// ParseAxis accepts "lat"/"latitude" and "lon"/"lng"/"longitude".
func ParseAxis(s string) (Axis, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "lat", "latitude":
		return Latitude, nil
	case "lon", "lng", "long", "longitude":
		return Longitude, nil
	}
	return 0, fmt.Errorf("latlngfmt: unknown axis %q", s)
}

// Tag names one numeric group of a coordinate text.
type Tag int

const (
	TagDegrees        Tag = iota // Whole degrees.
	TagDegreesDecimal            // Fraction of a degree, up to 4 digits.
	TagMinutes                   // Whole minutes, 0..59.
	TagMinutesDecimal            // Fraction of a minute, up to 3 digits.
	TagSeconds                   // Whole seconds, 0..59.
	TagSecondsDecimal            // Tenths of a second, 1 digit.
)

func (t Tag) String() string {
	switch t {
	case TagDegrees:
		return "DDD"
	case TagDegreesDecimal:
		return "dddd"
	case TagMinutes:
		return "MM"
	case TagMinutesDecimal:
		return "mmm"
	case TagSeconds:
		return "SS"
	case TagSecondsDecimal:
		return "s"
	}
	return fmt.Sprintf("Tag(%d)", int(t))
}

// Width is the number of digits the tag renders with. Degrees have no fixed
// width and report 0.
func (t Tag) Width() int {
	switch t {
	case TagDegreesDecimal:
		return 4
	case TagMinutes, TagSeconds:
		return 2
	case TagMinutesDecimal:
		return 3
	case TagSecondsDecimal:
		return 1
	}
	return 0
}

// Fractional reports whether the tag carries digits after a decimal separator.
func (t Tag) Fractional() bool {
	return t == TagDegreesDecimal || t == TagMinutesDecimal || t == TagSecondsDecimal
}

// unit is the value of one whole unit of the tag in degrees.
func (t Tag) unit() float64 {
	switch t {
	case TagMinutes, TagMinutesDecimal:
		return 1.0 / 60
	case TagSeconds, TagSecondsDecimal:
		return 1.0 / 3600
	}
	return 1
}
