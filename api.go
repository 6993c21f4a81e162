package latlngfmt

import (
	"context"
	"strconv"
)

// Codec performs bidirectional transformation and validation between the wire
// representation A and the domain representation B.
type Codec[A, B any] interface {
	Decode(ctx context.Context, a A) (B, error) // A -> B, Issues on rejection.
	Encode(ctx context.Context, b B) (A, error) // B -> A, Issues on rejection.
}

// DecodeAll decodes every value, collecting Issues under /<index>. Decoding
// stops early only when ctx is done.
func DecodeAll[A, B any](ctx context.Context, c Codec[A, B], in []A) ([]B, error) {
	out := make([]B, len(in))
	var iss Issues
	for i, a := range in {
		if err := ctx.Err(); err != nil {
			return out, err
		}
		b, err := c.Decode(ctx, a)
		if err != nil {
			iss = append(iss, reroot(err, i)...)
			continue
		}
		out[i] = b
	}
	if len(iss) > 0 {
		return out, iss
	}
	return out, nil
}

// reroot prefixes issue paths with the element index.
func reroot(err error, i int) Issues {
	iss, ok := AsIssues(err)
	if !ok {
		return Issues{{Path: "/" + strconv.Itoa(i), Code: CodeParseError, Message: err.Error(), Cause: err}}
	}
	out := make(Issues, len(iss))
	for k, it := range iss {
		if it.Path == "/" || it.Path == "" {
			it.Path = "/" + strconv.Itoa(i)
		} else {
			it.Path = "/" + strconv.Itoa(i) + it.Path
		}
		out[k] = it
	}
	return out
}
