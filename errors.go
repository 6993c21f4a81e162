package latlngfmt

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeInvalidFormat   = "invalid_format"
	CodeOutOfRange      = "out_of_range"
	CodeNotANumber      = "not_a_number"
	CodeUnknownNotation = "unknown_notation"
	CodeUnknownAxis     = "unknown_axis"
	CodeParseError      = "parse_error"
	CodeRequired        = "required"
)

// ErrUnknownNotation is returned when a Notation outside the declared set is
// used to build a Format.
var ErrUnknownNotation = errors.New("latlngfmt: unknown notation")

// Issue represents a single conversion or validation failure.
type Issue struct {
	Path    string // JSON Pointer of the offending value (for example: /rows/2/lat).
	Code    string // One of the codes listed above.
	Message string
	Hint    string // Optional: an example of accepted input.
	Cause   error  // Optional: underlying error.
	// Input is the offending text, when there is one.
	Input string
	// Params carries structured parameters (e.g., {"axis":"lat", "max":90})
	// for i18n and observability.
	Params map[string]any
}

// Issues is a collection of failures that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := min(n, maxShown)
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. invalid_format at /lat
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// Unwrap exposes the causes so errors.Is can see through Issues.
func (iss Issues) Unwrap() []error {
	var errs []error
	for _, it := range iss {
		if it.Cause != nil {
			errs = append(errs, it.Cause)
		}
	}
	return errs
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// IssueAt creates an Issue at the given path with provided code, message and params map.
func IssueAt(path, code, msg string, params map[string]any) Issue {
	return Issue{Path: path, Code: code, Message: msg, Params: params}
}
