package latlngfmt

import (
	"os"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// localeEnv lists the variables consulted for the numeric locale, in
// precedence order.
var localeEnv = []string{"LC_ALL", "LC_NUMERIC", "LANG"}

// DefaultDecimalSeparator returns the decimal separator of the host numeric
// locale. Only '.' and ',' are reported; anything else yields '.'.
func DefaultDecimalSeparator() rune {
	for _, key := range localeEnv {
		if v := os.Getenv(key); v != "" {
			return DecimalSeparatorFor(v)
		}
	}
	return '.'
}

// DecimalSeparatorFor returns the decimal separator used by a POSIX locale
// name ("da_DK.UTF-8") or BCP 47 tag ("de-CH"). It formats 1.1 in that
// locale and looks at what sits between the digits.
func DecimalSeparatorFor(locale string) rune {
	tag, ok := localeTag(locale)
	if !ok {
		return '.'
	}
	s := message.NewPrinter(tag).Sprintf("%.1f", 1.1)
	switch {
	case strings.ContainsRune(s, '.'):
		return '.'
	case strings.ContainsRune(s, ','):
		return ','
	}
	return '.'
}

func localeTag(locale string) (language.Tag, bool) {
	name := locale
	if i := strings.IndexAny(name, ".@"); i >= 0 {
		name = name[:i]
	}
	name = strings.ReplaceAll(name, "_", "-")
	if name == "" || name == "C" || name == "POSIX" {
		return language.Und, false
	}
	tag, err := language.Parse(name)
	if err != nil {
		return language.Und, false
	}
	return tag, true
}
