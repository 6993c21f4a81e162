package batch

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/reoring/latlngfmt"
)

func formats(t *testing.T) (dmm, dd *latlngfmt.Format) {
	t.Helper()
	var err error
	if dmm, err = latlngfmt.New(latlngfmt.DegreesDecimalMinutes, latlngfmt.WithDecimalSeparator('.')); err != nil {
		t.Fatal(err)
	}
	if dd, err = latlngfmt.New(latlngfmt.DecimalDegrees, latlngfmt.WithDecimalSeparator('.')); err != nil {
		t.Fatal(err)
	}
	return dmm, dd
}

const rowsCSV = "name,lat,lon\n" +
	"harbour,41 25.130N,2 10.500E\n" +
	"broken,bogus,12 00.000W\n"

func TestConvert_CSV(t *testing.T) {
	dmm, dd := formats(t)
	var out bytes.Buffer
	res, err := Convert(context.Background(), strings.NewReader(rowsCSV), &out, Options{From: dmm, To: dd, Input: CSV})
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	want := "name,lat,lon\n" +
		"harbour,41.4188N,2.1750E\n" +
		"broken,bogus,12.0000W\n"
	if diff := cmp.Diff(want, out.String()); diff != "" {
		t.Fatalf("output (-want +got):\n%s", diff)
	}
	if res.Rows != 2 || res.Converted != 1 {
		t.Fatalf("unexpected counts: %+v", res)
	}
	if len(res.Issues) != 1 {
		t.Fatalf("expected one issue, got %v", res.Issues)
	}
	it := res.Issues[0]
	if it.Path != "/rows/1/lat" || it.Code != latlngfmt.CodeInvalidFormat || it.Input != "bogus" || it.Hint != "89 59.999N" {
		t.Fatalf("unexpected issue: %+v", it)
	}
}

func TestConvert_CSVToJSONLines(t *testing.T) {
	dmm, dd := formats(t)
	var out bytes.Buffer
	_, err := Convert(context.Background(), strings.NewReader(rowsCSV), &out, Options{From: dmm, To: dd, Input: CSV, Output: JSONLines})
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	want := `{"name":"harbour","lat":"41.4188N","lon":"2.1750E"}` + "\n" +
		`{"name":"broken","lat":"bogus","lon":"12.0000W"}` + "\n"
	if diff := cmp.Diff(want, out.String()); diff != "" {
		t.Fatalf("output (-want +got):\n%s", diff)
	}
}

func TestConvert_YAML(t *testing.T) {
	dmm, dd := formats(t)
	in := "- name: pier\n  lat: 55.5000N\n  lon: \"\"\n"
	var out bytes.Buffer
	res, err := Convert(context.Background(), strings.NewReader(in), &out, Options{From: dd, To: dmm, Input: YAML})
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	recs, err := Read(&out, YAML)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if diff := cmp.Diff([]Record{{Name: "pier", Lat: "55 30.000N", Lon: ""}}, recs); diff != "" {
		t.Fatalf("records (-want +got):\n%s", diff)
	}
	if len(res.Issues) != 1 || res.Issues[0].Path != "/rows/0/lon" || res.Issues[0].Code != latlngfmt.CodeRequired {
		t.Fatalf("blank longitude should be required: %v", res.Issues)
	}
}

func TestConvert_Canceled(t *testing.T) {
	dmm, dd := formats(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var out bytes.Buffer
	_, err := Convert(ctx, strings.NewReader(rowsCSV), &out, Options{From: dmm, To: dd, Input: CSV})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if out.Len() != 0 {
		t.Fatalf("nothing should be written after cancellation")
	}
}

func TestConvert_RequiresFormats(t *testing.T) {
	dmm, _ := formats(t)
	if _, err := Convert(context.Background(), strings.NewReader(rowsCSV), &bytes.Buffer{}, Options{From: dmm, Input: CSV}); err == nil {
		t.Fatalf("expected error without To")
	}
}

func TestReadJSONLines_ReportsRecord(t *testing.T) {
	in := `{"name":"a","lat":"1N","lon":"2E"}` + "\n" + `{"name":` + "\n"
	_, err := Read(strings.NewReader(in), JSONLines)
	if err == nil || !strings.Contains(err.Error(), "record 2") {
		t.Fatalf("expected error naming record 2, got %v", err)
	}
}

func TestRead_EmptyInputs(t *testing.T) {
	for _, enc := range []Encoding{CSV, JSONLines, YAML} {
		recs, err := Read(strings.NewReader(""), enc)
		if err != nil || len(recs) != 0 {
			t.Fatalf("%s: got %v, %v", enc, recs, err)
		}
	}
	recs, err := Read(strings.NewReader("name,lat,lon\n"), CSV)
	if err != nil || len(recs) != 0 {
		t.Fatalf("header only: got %v, %v", recs, err)
	}
}

func TestConvert_EmptyCSV(t *testing.T) {
	dmm, dd := formats(t)
	var out bytes.Buffer
	res, err := Convert(context.Background(), strings.NewReader(""), &out, Options{From: dmm, To: dd, Input: CSV})
	if err != nil || res.Rows != 0 {
		t.Fatalf("got %+v, %v", res, err)
	}
	if out.String() != "name,lat,lon\n" {
		t.Fatalf("got %q", out.String())
	}
}

func TestWrite_EmptyCSVKeepsHeader(t *testing.T) {
	var out bytes.Buffer
	if err := Write(&out, CSV, nil); err != nil {
		t.Fatal(err)
	}
	if out.String() != "name,lat,lon\n" {
		t.Fatalf("got %q", out.String())
	}
}

func TestParseEncoding(t *testing.T) {
	cases := map[string]Encoding{"csv": CSV, ".ndjson": JSONLines, "json": JSONLines, "yml": YAML, ".yaml": YAML}
	for in, want := range cases {
		got, err := ParseEncoding(in)
		if err != nil || got != want {
			t.Fatalf("%q: got %q, %v", in, got, err)
		}
	}
	if _, err := ParseEncoding("xml"); !errors.Is(err, ErrUnknownEncoding) {
		t.Fatalf("expected ErrUnknownEncoding, got %v", err)
	}
}
