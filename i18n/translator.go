package i18n

import (
	"strings"
	"sync/atomic"
)

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "axis" or "example"); "{key}" in a message is replaced by data[key].
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

var dictionaries = map[string]map[string]string{
	"en": {
		"invalid_format":   "not a valid {axis}, expected e.g. {example}",
		"out_of_range":     "{axis} must be within ±{max} degrees",
		"not_a_number":     "value is not a finite number",
		"unknown_notation": "unknown notation {notation}",
		"unknown_axis":     "unknown axis {axis}",
		"parse_error":      "parse error",
		"required":         "value is required",
	},
	"da": {
		"invalid_format":   "ugyldig {axis}, forventet f.eks. {example}",
		"out_of_range":     "{axis} skal ligge inden for ±{max} grader",
		"not_a_number":     "værdien er ikke et endeligt tal",
		"unknown_notation": "ukendt notation {notation}",
		"unknown_axis":     "ukendt akse {axis}",
		"parse_error":      "fortolkningsfejl",
		"required":         "værdien skal udfyldes",
	},
}

func (t dictTranslator) Message(code string, data map[string]string) string {
	msg, ok := dictionaries[t.lang][code]
	if !ok {
		return code
	}
	return fill(msg, data)
}

func fill(msg string, data map[string]string) string {
	if len(data) == 0 || !strings.Contains(msg, "{") {
		return msg
	}
	pairs := make([]string, 0, 2*len(data))
	for k, v := range data {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(msg)
}

type box struct{ tr Translator }

var current atomic.Pointer[box]

func init() { current.Store(&box{tr: dictTranslator{lang: "en"}}) }

// Languages lists the built-in dictionary languages.
func Languages() []string { return []string{"en", "da"} }

// SetLanguage switches the built-in Translator language ("en"/"da").
func SetLanguage(lang string) {
	if _, ok := dictionaries[lang]; !ok {
		lang = "en"
	}
	current.Store(&box{tr: dictTranslator{lang: lang}})
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		tr = dictTranslator{lang: "en"}
	}
	current.Store(&box{tr: tr})
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string {
	return current.Load().tr.Message(code, data)
}
