// Package config loads Format settings from a YAML file, an optional .env
// file and the process environment, in that order of precedence (later wins).
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"unicode/utf8"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/reoring/latlngfmt"
	"github.com/reoring/latlngfmt/i18n"
)

// Environment variables read by ApplyEnv.
const (
	EnvNotation         = "LATLNGFMT_NOTATION"
	EnvDecimalSeparator = "LATLNGFMT_DECIMAL_SEPARATOR"
	EnvDegreeGlyph      = "LATLNGFMT_DEGREE_GLYPH"
	EnvLanguage         = "LATLNGFMT_LANG"
)

// Settings is the on-disk configuration. Empty fields mean "use the default".
type Settings struct {
	Notation         string `yaml:"notation"`
	DecimalSeparator string `yaml:"decimal_separator"`
	DegreeGlyph      string `yaml:"degree_glyph"`
	Language         string `yaml:"language"`
}

// Default returns settings for degrees and decimal minutes with locale
// defaults for everything else.
func Default() Settings {
	return Settings{Notation: latlngfmt.DegreesDecimalMinutes.String()}
}

// Decode reads YAML settings. Unknown keys are rejected.
func Decode(r io.Reader) (Settings, error) {
	s := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return s, nil
		}
		return Settings{}, fmt.Errorf("config: %w", err)
	}
	return s, nil
}

// LoadFile reads settings from path. A missing file yields Default.
func LoadFile(path string) (Settings, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Settings{}, fmt.Errorf("config: %w", err)
	}
	return Decode(bytes.NewReader(data))
}

// LoadDotEnv loads variables from the given .env files into the process
// environment without overriding variables that are already set. Missing
// files are skipped.
func LoadDotEnv(paths ...string) error {
	for _, p := range paths {
		if _, err := os.Stat(p); errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(p); err != nil {
			return fmt.Errorf("config: %s: %w", p, err)
		}
	}
	return nil
}

// ApplyEnv overrides fields from variables visible through lookup (usually
// os.LookupEnv).
func (s *Settings) ApplyEnv(lookup func(string) (string, bool)) {
	if v, ok := lookup(EnvNotation); ok && v != "" {
		s.Notation = v
	}
	if v, ok := lookup(EnvDecimalSeparator); ok && v != "" {
		s.DecimalSeparator = v
	}
	if v, ok := lookup(EnvDegreeGlyph); ok && v != "" {
		s.DegreeGlyph = v
	}
	if v, ok := lookup(EnvLanguage); ok && v != "" {
		s.Language = v
	}
}

// Load reads path, then the .env files, then the environment.
func Load(path string, dotenv ...string) (Settings, error) {
	s, err := LoadFile(path)
	if err != nil {
		return Settings{}, err
	}
	if err := LoadDotEnv(dotenv...); err != nil {
		return Settings{}, err
	}
	s.ApplyEnv(os.LookupEnv)
	return s, nil
}

// Config validates s and converts it to a latlngfmt.Config. Problems are
// reported as latlngfmt.Issues with paths naming the offending key.
func (s Settings) Config() (latlngfmt.Config, error) {
	var iss latlngfmt.Issues

	n := latlngfmt.DegreesDecimalMinutes
	if s.Notation != "" {
		parsed, err := latlngfmt.ParseNotation(s.Notation)
		if err != nil {
			iss = append(iss, latlngfmt.Issue{
				Path:    "/notation",
				Code:    latlngfmt.CodeUnknownNotation,
				Message: i18n.T(latlngfmt.CodeUnknownNotation, map[string]string{"notation": s.Notation}),
				Input:   s.Notation,
				Cause:   err,
			})
		}
		n = parsed
	}
	cfg := latlngfmt.DefaultConfig(n)

	if s.DecimalSeparator != "" {
		r, size := utf8.DecodeRuneInString(s.DecimalSeparator)
		if r == utf8.RuneError || size != len(s.DecimalSeparator) {
			iss = append(iss, latlngfmt.Issue{
				Path:    "/decimal_separator",
				Code:    latlngfmt.CodeInvalidFormat,
				Message: "decimal separator must be a single character",
				Input:   s.DecimalSeparator,
			})
		} else {
			cfg.DecimalSeparator = r
		}
	}
	if s.DegreeGlyph != "" {
		cfg.DegreeGlyph = s.DegreeGlyph
	}
	if len(iss) > 0 {
		return latlngfmt.Config{}, iss
	}
	return cfg, nil
}

// Build returns the Format described by s.
func (s Settings) Build() (*latlngfmt.Format, error) {
	cfg, err := s.Config()
	if err != nil {
		return nil, err
	}
	return latlngfmt.NewFromConfig(cfg)
}
