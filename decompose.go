package latlngfmt

import "math"

// Parts is a decimal-degree value split into the fields templates render.
// Decimal fields are counts of the smallest unit they show: DegreesDecimal
// is in 1/10000 degree, MinutesDecimal in 1/1000 minute and SecondsDecimal
// in tenths of a second.
type Parts struct {
	Sign           int // +1 or -1.
	Degrees        int
	DegreesDecimal int // 0..9999
	Minutes        int // 0..59
	MinutesDecimal int // 0..999
	Seconds        int // 0..59
	SecondsDecimal int // 0..9
}

// Value returns the field a tag refers to.
func (p Parts) Value(t Tag) int {
	switch t {
	case TagDegrees:
		return p.Degrees
	case TagDegreesDecimal:
		return p.DegreesDecimal
	case TagMinutes:
		return p.Minutes
	case TagMinutesDecimal:
		return p.MinutesDecimal
	case TagSeconds:
		return p.Seconds
	case TagSecondsDecimal:
		return p.SecondsDecimal
	}
	return 0
}

// Decompose splits v into sign, degrees, minutes and seconds. Every level is
// computed from the same magnitude so the fields are independent views of v,
// not a carry chain:
//
//   - DegreesDecimal and MinutesDecimal are rounded, then clamped to 9999 and
//     999 instead of carrying into the next unit.
//   - SecondsDecimal is truncated; a one-digit field cannot hold a rounded 10.
//
// Decompose accepts any magnitude whose whole degrees fit in an int; range
// checks belong to validation. Format refuses larger values.
func Decompose(v float64) Parts {
	p := Parts{Sign: 1}
	if v < 0 {
		p.Sign = -1
	}
	pos := math.Abs(v)
	deg := math.Floor(pos)
	p.Degrees = int(deg)
	p.DegreesDecimal = min(9999, int(math.Round((pos-deg)*10000)))

	pos = math.Mod(pos*60, 60)
	mins := math.Floor(pos)
	p.Minutes = int(mins)
	p.MinutesDecimal = min(999, int(math.Round((pos-mins)*1000)))

	pos = math.Mod(pos*60, 60)
	secs := math.Floor(pos)
	p.Seconds = int(secs)
	p.SecondsDecimal = min(9, int(math.Floor((pos-secs)*10)))
	return p
}
