package latlngfmt

import (
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/reoring/latlngfmt/internal/pattern"
)

// Building blocks shared by every notation.
//
//	anySpace   : zero or more blanks
//	separator  : blanks, then one of blank "." ",", then blanks
//	latDegrees : 0-9, 00-09, 10-89
//	lonDegrees : 0-9, 00-99, 100-179
//	sixty      : 0-9, 00-09, 10-59 (minutes and seconds)
var (
	anySpace   = pattern.Raw(`\s*`)
	someSpace  = pattern.Raw(`\s+`)
	separator  = pattern.Seq(anySpace, pattern.Raw(`[\s.,]`), anySpace)
	latDegrees = pattern.Alt(pattern.Raw(`0?[0-9]`), pattern.Raw(`[1-8][0-9]`))
	lonDegrees = pattern.Alt(pattern.Raw(`[0-9]?[0-9]`), pattern.Raw(`1[0-7][0-9]`))
	sixty      = pattern.Alt(pattern.Raw(`0?[0-9]`), pattern.Raw(`[1-5][0-9]`))

	latHemisphere = pattern.Class("NnSs")
	lonHemisphere = pattern.Class("EeWw")
)

// groupFragment matches one non-degree group including whatever must
// precede it. Whole minutes and seconds need at least one blank in front.
// With zero set the group only accepts zeros, as after the axis limit.
func groupFragment(t Tag, zero bool) pattern.Fragment {
	switch t {
	case TagMinutes, TagSeconds:
		if zero {
			return pattern.Seq(someSpace, pattern.Raw(`00?`))
		}
		return pattern.Seq(someSpace, sixty)
	case TagDegreesDecimal, TagMinutesDecimal, TagSecondsDecimal:
		if zero {
			return pattern.Seq(separator, pattern.Repeat(pattern.Raw(`0`), 1, t.Width()))
		}
		return pattern.Seq(separator, pattern.Digits(1, t.Width()))
	}
	panic(fmt.Sprintf("latlngfmt: no pattern group for %v", t))
}

// chain nests the groups so each one is only allowed after the previous:
// (MM(SS(.s)?)?)?
func chain(tags []Tag, zero bool) pattern.Fragment {
	if len(tags) == 0 {
		return nil
	}
	return pattern.Optional(pattern.Seq(groupFragment(tags[0], zero), chain(tags[1:], zero)))
}

// valuePattern builds the full-match pattern of one axis. The axis limit (90
// or 180) is a separate alternative because its minutes, seconds and
// decimals can only be zero. The hemisphere letter is optional and may lead
// or trail, but not both.
func valuePattern(axis Axis, mask []Tag) pattern.Fragment {
	degrees, boundary, hemi := latDegrees, pattern.Literal("90"), latHemisphere
	if axis == Longitude {
		degrees, boundary, hemi = lonDegrees, pattern.Literal("180"), lonHemisphere
	}
	body := pattern.Alt(
		pattern.Seq(boundary, anySpace, chain(mask[1:], true)),
		pattern.Seq(degrees, anySpace, chain(mask[1:], false)),
	)
	return pattern.Full(pattern.Seq(
		anySpace,
		pattern.Alt(
			pattern.Seq(body, anySpace, pattern.Optional(hemi)),
			// Leading letter (N41 25 01.3) is an extension of the trailing form.
			pattern.Seq(hemi, anySpace, body),
		),
		anySpace,
	))
}

// compiled holds the patterns of every (notation, axis). They depend on
// neither the separator nor the glyph.
var compiled = func() (out [3][2]*regexp.Regexp) {
	for _, n := range Notations {
		mask := shapeOf(n, Config{Notation: n, DecimalSeparator: '.'}).mask
		for _, a := range []Axis{Latitude, Longitude} {
			out[n][a] = pattern.Compile(valuePattern(a, mask))
		}
	}
	return out
}()

type pieceKind uint8

const (
	pieceText pieceKind = iota
	pieceField
	pieceHemisphere
)

type piece struct {
	kind pieceKind
	text string
	tag  Tag
}

// template is a sequence of literal text, numeric fields and the hemisphere
// letter.
type template []piece

func text(s string) piece { return piece{kind: pieceText, text: s} }
func field(t Tag) piece   { return piece{kind: pieceField, tag: t} }
func hemisphere() piece   { return piece{kind: pieceHemisphere} }

// tags lists the fields of t in order.
func (t template) tags() []Tag {
	var out []Tag
	for _, p := range t {
		if p.kind == pieceField {
			out = append(out, p.tag)
		}
	}
	return out
}

// String shows t with its placeholder tokens, e.g. "DDD MM SS.sH".
func (t template) String() string {
	b := &strings.Builder{}
	for _, p := range t {
		switch p.kind {
		case pieceText:
			b.WriteString(p.text)
		case pieceField:
			b.WriteString(p.tag.String())
		case pieceHemisphere:
			b.WriteByte('H')
		}
	}
	return b.String()
}

// shape is what a notation contributes before the axis is known.
type shape struct {
	mask    []Tag
	edit    template
	display template
}

func shapeOf(n Notation, cfg Config) shape {
	sep := string(cfg.DecimalSeparator)
	glyph := cfg.DegreeGlyph
	switch n {
	case DegreesMinutesSeconds:
		return shape{
			mask: []Tag{TagDegrees, TagMinutes, TagSeconds, TagSecondsDecimal},
			edit: template{
				field(TagDegrees), text(" "), field(TagMinutes), text(" "),
				field(TagSeconds), text(sep), field(TagSecondsDecimal), hemisphere(),
			},
			display: template{
				field(TagDegrees), text(glyph), field(TagMinutes), text("'"),
				field(TagSeconds), text(sep), field(TagSecondsDecimal), text(`"`), hemisphere(),
			},
		}
	case DegreesDecimalMinutes:
		return shape{
			mask: []Tag{TagDegrees, TagMinutes, TagMinutesDecimal},
			edit: template{
				field(TagDegrees), text(" "), field(TagMinutes), text(sep), field(TagMinutesDecimal), hemisphere(),
			},
			display: template{
				field(TagDegrees), text(glyph), field(TagMinutes), text(sep), field(TagMinutesDecimal), text("'"), hemisphere(),
			},
		}
	case DecimalDegrees:
		return shape{
			mask:    []Tag{TagDegrees, TagDegreesDecimal},
			edit:    template{field(TagDegrees), text(sep), field(TagDegreesDecimal), hemisphere()},
			display: template{field(TagDegrees), text(sep), field(TagDegreesDecimal), text(glyph), hemisphere()},
		}
	}
	panic(fmt.Sprintf("latlngfmt: %v has no shape", n))
}

// axisArtifacts is everything Valid, Parse and Format need for one axis.
type axisArtifacts struct {
	re          *regexp.Regexp
	mask        []Tag
	edit        template
	display     template
	placeholder string
}

// check verifies the mask starts with whole degrees and that both templates
// carry the mask's fields in the same order. A mismatch would hand parsed
// digits to the wrong unit.
func (sh shape) check() error {
	if len(sh.mask) == 0 || sh.mask[0] != TagDegrees {
		return fmt.Errorf("latlngfmt: mask %v must start with %v", sh.mask, TagDegrees)
	}
	for _, tpl := range []template{sh.edit, sh.display} {
		if !slices.Equal(tpl.tags(), sh.mask) {
			return fmt.Errorf("latlngfmt: template %q does not follow mask %v", tpl.String(), sh.mask)
		}
	}
	return nil
}

// buildArtifacts derives both axes from cfg. The notation must be known; a
// shape failing check is a programming error and panics.
func buildArtifacts(cfg Config) [2]axisArtifacts {
	sh := shapeOf(cfg.Notation, cfg)
	if err := sh.check(); err != nil {
		panic(fmt.Sprintf("%v (%v)", err, cfg.Notation))
	}

	var out [2]axisArtifacts
	for _, a := range []Axis{Latitude, Longitude} {
		out[a] = axisArtifacts{
			re:          compiled[cfg.Notation][a],
			mask:        sh.mask,
			edit:        sh.edit,
			display:     sh.display,
			placeholder: sh.edit.render(a, maxParts(a)),
		}
	}
	return out
}

// maxParts is the largest value below the axis limit every field can show.
func maxParts(a Axis) Parts {
	return Parts{
		Sign:           1,
		Degrees:        int(a.Limit()) - 1,
		DegreesDecimal: 9999,
		Minutes:        59,
		MinutesDecimal: 999,
		Seconds:        59,
		SecondsDecimal: 9,
	}
}
