package latlngfmt

// DefaultDegreeGlyph is the degree symbol used by display templates.
const DefaultDegreeGlyph = "°"

// Config is the immutable configuration of a Format. Every artifact a Format
// uses is derived from these three values and nothing else.
type Config struct {
	Notation         Notation
	DecimalSeparator rune
	DegreeGlyph      string // Display templates only.
}

// Option adjusts a Config while building a Format.
type Option func(*Config)

// WithDecimalSeparator sets the separator written between whole and
// fractional digits. Only '.' and ',' are meaningful, other runes are
// written literally.
func WithDecimalSeparator(r rune) Option {
	return func(c *Config) { c.DecimalSeparator = r }
}

// WithDegreeGlyph sets the symbol written after degrees by display templates.
func WithDegreeGlyph(g string) Option {
	return func(c *Config) { c.DegreeGlyph = g }
}

// DefaultConfig returns the configuration New starts from: the host decimal
// separator and the "°" glyph.
func DefaultConfig(n Notation) Config {
	return Config{
		Notation:         n,
		DecimalSeparator: DefaultDecimalSeparator(),
		DegreeGlyph:      DefaultDegreeGlyph,
	}
}
