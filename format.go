package latlngfmt

import (
	"fmt"
	"math"
	"slices"
)

// Format validates, parses and writes coordinate text in one notation.
//
// A Format is immutable: WithNotation and WithDecimalSeparator return a new
// value. All methods are safe for concurrent use.
type Format struct {
	cfg  Config
	axes [2]axisArtifacts
}

// New builds a Format for n starting from DefaultConfig. It returns
// ErrUnknownNotation when n is not a declared Notation.
func New(n Notation, opts ...Option) (*Format, error) {
	cfg := DefaultConfig(n)
	for _, o := range opts {
		if o != nil {
			o(&cfg)
		}
	}
	return NewFromConfig(cfg)
}

// MustNew is like New but panics on error.
func MustNew(n Notation, opts ...Option) *Format {
	f, err := New(n, opts...)
	if err != nil {
		panic(err)
	}
	return f
}

// NewFromConfig builds a Format from an explicit Config. A zero separator
// falls back to DefaultDecimalSeparator.
func NewFromConfig(cfg Config) (*Format, error) {
	if !cfg.Notation.Known() {
		return nil, fmt.Errorf("%w: %v", ErrUnknownNotation, cfg.Notation)
	}
	if cfg.DecimalSeparator == 0 {
		cfg.DecimalSeparator = DefaultDecimalSeparator()
	}
	return &Format{cfg: cfg, axes: buildArtifacts(cfg)}, nil
}

// Config returns the configuration f was built from.
func (f *Format) Config() Config { return f.cfg }

// Notation returns the notation of f.
func (f *Format) Notation() Notation { return f.cfg.Notation }

// WithNotation returns a Format using n and the rest of f's configuration.
func (f *Format) WithNotation(n Notation) (*Format, error) {
	cfg := f.cfg
	cfg.Notation = n
	return NewFromConfig(cfg)
}

// WithDecimalSeparator returns a Format writing r as decimal separator.
func (f *Format) WithDecimalSeparator(r rune) *Format {
	cfg := f.cfg
	cfg.DecimalSeparator = r
	nf, err := NewFromConfig(cfg)
	if err != nil {
		// f.cfg.Notation was accepted when f was built.
		panic(err)
	}
	return nf
}

// Valid reports whether text is a complete coordinate for axis. Hemisphere
// letters are matched case-insensitively.
func (f *Format) Valid(axis Axis, text string) bool {
	if !axis.Known() {
		return false
	}
	return f.axes[axis].re.MatchString(normalize(text))
}

// Parse converts text to signed decimal degrees. The second result is false
// when text is empty or not Valid for axis. S and W make the value negative.
func (f *Format) Parse(axis Axis, text string) (float64, bool) {
	if !axis.Known() {
		return 0, false
	}
	s := normalize(text)
	if s == "" || !f.axes[axis].re.MatchString(s) {
		return 0, false
	}
	return parseText(f.axes[axis].mask, s), true
}

// Format writes v using the edit template when edit is true and the display
// template otherwise. NaN, infinities and magnitudes whose whole degrees do
// not fit in an int produce "".
func (f *Format) Format(axis Axis, v float64, edit bool) string {
	if !axis.Known() || math.IsNaN(v) || math.IsInf(v, 0) || math.Abs(v) >= math.MaxInt {
		return ""
	}
	a := &f.axes[axis]
	if edit {
		return a.edit.render(axis, Decompose(v))
	}
	return a.display.render(axis, Decompose(v))
}

// Convert rewrites text from src's notation into f's edit template. Text that
// src does not accept is returned unchanged.
func (f *Format) Convert(axis Axis, text string, src *Format) string {
	if src == nil {
		return text
	}
	v, ok := src.Parse(axis, text)
	if !ok {
		return text
	}
	return f.Format(axis, v, true)
}

// Pattern returns the regular expression Valid uses for axis.
func (f *Format) Pattern(axis Axis) string {
	if !axis.Known() {
		return ""
	}
	return f.axes[axis].re.String()
}

// Mask returns the units of the digit groups of axis text, in order.
func (f *Format) Mask(axis Axis) []Tag {
	if !axis.Known() {
		return nil
	}
	return slices.Clone(f.axes[axis].mask)
}

// EditTemplate returns the edit template with its placeholder tokens, for
// example "DDD MM.mmmH".
func (f *Format) EditTemplate(axis Axis) string {
	if !axis.Known() {
		return ""
	}
	return f.axes[axis].edit.String()
}

// DisplayTemplate returns the display template with its placeholder tokens.
func (f *Format) DisplayTemplate(axis Axis) string {
	if !axis.Known() {
		return ""
	}
	return f.axes[axis].display.String()
}

// Placeholder returns an example of the largest edit text for axis, suitable
// as an input hint.
func (f *Format) Placeholder(axis Axis) string {
	if !axis.Known() {
		return ""
	}
	return f.axes[axis].placeholder
}
