// Package batch converts files of coordinate rows from one notation to
// another. Rows are read as CSV, JSON lines or YAML and written in any of the
// same encodings.
package batch

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/gocarina/gocsv"
	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/reoring/latlngfmt"
	"github.com/reoring/latlngfmt/codec"
)

// Record is one named position. Lat and Lon hold text in some notation.
type Record struct {
	Name string `csv:"name" json:"name" yaml:"name"`
	Lat  string `csv:"lat" json:"lat" yaml:"lat"`
	Lon  string `csv:"lon" json:"lon" yaml:"lon"`
}

// Encoding names a row file format.
type Encoding string

const (
	CSV       Encoding = "csv"
	JSONLines Encoding = "jsonl"
	YAML      Encoding = "yaml"
)

// ErrUnknownEncoding is returned for an Encoding outside CSV, JSONLines and YAML.
var ErrUnknownEncoding = errors.New("batch: unknown encoding")

// ParseEncoding maps a name or file extension (csv, jsonl, ndjson, json,
// yaml, yml) to an Encoding.
func ParseEncoding(s string) (Encoding, error) {
	switch s {
	case "csv", ".csv":
		return CSV, nil
	case "jsonl", ".jsonl", "ndjson", ".ndjson", "json", ".json":
		return JSONLines, nil
	case "yaml", ".yaml", "yml", ".yml":
		return YAML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownEncoding, s)
}

// Read decodes every record from r.
func Read(r io.Reader, enc Encoding) ([]Record, error) {
	switch enc {
	case CSV:
		br := bufio.NewReader(r)
		if _, err := br.Peek(1); errors.Is(err, io.EOF) {
			// Zero bytes reads like a header-only file.
			return nil, nil
		}
		var recs []Record
		if err := gocsv.Unmarshal(br, &recs); err != nil {
			return nil, fmt.Errorf("batch: csv: %w", err)
		}
		return recs, nil
	case JSONLines:
		var recs []Record
		dec := json.NewDecoder(r)
		for line := 1; ; line++ {
			var rec Record
			err := dec.Decode(&rec)
			if errors.Is(err, io.EOF) {
				return recs, nil
			}
			if err != nil {
				return nil, fmt.Errorf("batch: jsonl record %d: %w", line, err)
			}
			recs = append(recs, rec)
		}
	case YAML:
		var recs []Record
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&recs); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("batch: yaml: %w", err)
		}
		return recs, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownEncoding, string(enc))
}

// Write encodes recs to w.
func Write(w io.Writer, enc Encoding, recs []Record) error {
	switch enc {
	case CSV:
		if len(recs) == 0 {
			// Header only.
			_, err := io.WriteString(w, "name,lat,lon\n")
			return err
		}
		if err := gocsv.Marshal(recs, w); err != nil {
			return fmt.Errorf("batch: csv: %w", err)
		}
		return nil
	case JSONLines:
		e := json.NewEncoder(w)
		e.SetEscapeHTML(false)
		for _, rec := range recs {
			if err := e.Encode(rec); err != nil {
				return fmt.Errorf("batch: jsonl: %w", err)
			}
		}
		return nil
	case YAML:
		if recs == nil {
			recs = []Record{}
		}
		e := yaml.NewEncoder(w)
		e.SetIndent(2)
		if err := e.Encode(recs); err != nil {
			return fmt.Errorf("batch: yaml: %w", err)
		}
		return e.Close()
	}
	return fmt.Errorf("%w: %q", ErrUnknownEncoding, string(enc))
}

// Options controls Convert.
type Options struct {
	From, To *latlngfmt.Format
	Input    Encoding
	Output   Encoding // Defaults to Input.
}

// Result summarizes a Convert run.
type Result struct {
	Rows      int
	Converted int // Rows whose latitude and longitude both converted.
	Issues    latlngfmt.Issues
}

// Convert reads rows from r, converts the lat and lon of every row from
// opts.From to opts.To and writes the rows to w. Text that does not validate
// in opts.From is written unchanged and reported in Result.Issues under
// /rows/<index>/lat or /rows/<index>/lon. The returned error covers I/O and
// cancellation only.
func Convert(ctx context.Context, r io.Reader, w io.Writer, opts Options) (Result, error) {
	if opts.From == nil || opts.To == nil {
		return Result{}, errors.New("batch: both From and To formats are required")
	}
	out := opts.Output
	if out == "" {
		out = opts.Input
	}
	recs, err := Read(r, opts.Input)
	if err != nil {
		return Result{}, err
	}

	var (
		res   = Result{Rows: len(recs)}
		codes = [2]latlngfmt.Codec[string, string]{
			codec.Transcode(opts.From, opts.To, latlngfmt.Latitude),
			codec.Transcode(opts.From, opts.To, latlngfmt.Longitude),
		}
		keys = [2]string{"lat", "lon"}
	)
	for i := range recs {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		texts := [2]string{recs[i].Lat, recs[i].Lon}
		converted := opts.To.ConvertPair(texts, opts.From)
		ok := true
		for k, c := range codes {
			if _, err := c.Decode(ctx, texts[k]); err != nil {
				ok = false
				res.Issues = append(res.Issues, underRow(err, i, keys[k])...)
			}
		}
		if ok {
			res.Converted++
		}
		recs[i].Lat, recs[i].Lon = converted[0], converted[1]
	}
	if err := Write(w, out, recs); err != nil {
		return res, err
	}
	return res, nil
}

func underRow(err error, row int, key string) latlngfmt.Issues {
	path := "/rows/" + strconv.Itoa(row) + "/" + key
	iss, ok := latlngfmt.AsIssues(err)
	if !ok {
		return latlngfmt.Issues{{Path: path, Code: latlngfmt.CodeParseError, Message: err.Error(), Cause: err}}
	}
	out := make(latlngfmt.Issues, len(iss))
	for k, it := range iss {
		it.Path = path
		out[k] = it
	}
	return out
}
