package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/reoring/latlngfmt"
	"github.com/reoring/latlngfmt/batch"
	"github.com/reoring/latlngfmt/codec"
	"github.com/reoring/latlngfmt/config"
	"github.com/reoring/latlngfmt/i18n"
	"github.com/reoring/latlngfmt/jsonschema"
	"github.com/reoring/latlngfmt/prompt"
)

const (
	exitOK      = 0
	exitInvalid = 1
	exitUsage   = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	os.Exit(run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// env bundles what every subcommand needs.
type env struct {
	ctx    context.Context
	stdin  io.Reader
	stdout io.Writer
	log    *logrus.Logger
}

type command func(e *env, args []string) int

var commands = map[string]command{
	"format":   formatCmd,
	"parse":    parseCmd,
	"validate": validateCmd,
	"convert":  convertCmd,
	"batch":    batchCmd,
	"schema":   schemaCmd,
	"prompt":   promptCmd,
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) < 1 {
		usage(stderr)
		return exitUsage
	}
	cmd, ok := commands[args[0]]
	if !ok {
		usage(stderr)
		return exitUsage
	}
	log := logrus.New()
	log.SetOutput(stderr)
	log.SetLevel(logrus.WarnLevel)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	return cmd(&env{ctx: ctx, stdin: stdin, stdout: stdout, log: log}, args[1:])
}

func usage(w io.Writer) {
	fmt.Fprintln(w, `latlngfmt: format, parse and convert latitude/longitude text

Usage:
  latlngfmt format   [-axis lat|lon] [-display] DEGREES...
  latlngfmt parse    [-axis lat|lon] [-display] TEXT...
  latlngfmt validate [-axis lat|lon] TEXT...
  latlngfmt convert  -from NOTATION [-axis lat|lon] TEXT...
  latlngfmt batch    -from NOTATION [-in FILE] [-out FILE] [-input csv|jsonl|yaml] [-output csv|jsonl|yaml]
  latlngfmt schema   [-axis lat|lon|pair]
  latlngfmt prompt   [-choose]

Common flags:
  -notation dms|dmm|dd  -sep CHAR  -config FILE  -lang en|da  -v

Without TEXT arguments, values are read from stdin, one per line.`)
}

// common holds the flags shared by every subcommand.
type common struct {
	notation string
	sep      string
	cfgPath  string
	lang     string
	verbose  bool
}

func (c *common) register(fs *flag.FlagSet) {
	fs.StringVar(&c.notation, "notation", "", "notation: dms, dmm or dd (default from config, else dmm)")
	fs.StringVar(&c.sep, "sep", "", "decimal separator (default from config, else locale)")
	fs.StringVar(&c.cfgPath, "config", "latlngfmt.yaml", "YAML config file")
	fs.StringVar(&c.lang, "lang", "", "message language: en or da")
	fs.BoolVar(&c.verbose, "v", false, "enable verbose logs")
}

// format resolves settings (config file, .env, environment, then flags) and
// builds the Format they describe.
func (c *common) format(e *env) (*latlngfmt.Format, error) {
	if c.verbose {
		e.log.SetLevel(logrus.DebugLevel)
	}
	s, err := config.Load(c.cfgPath, ".env")
	if err != nil {
		return nil, err
	}
	if c.notation != "" {
		s.Notation = c.notation
	}
	if c.sep != "" {
		s.DecimalSeparator = c.sep
	}
	if c.lang != "" {
		s.Language = c.lang
	}
	if s.Language != "" {
		i18n.SetLanguage(s.Language)
	}
	f, err := s.Build()
	if err != nil {
		return nil, err
	}
	cfg := f.Config()
	e.log.WithFields(logrus.Fields{
		"notation": cfg.Notation.String(),
		"sep":      string(cfg.DecimalSeparator),
		"glyph":    cfg.DegreeGlyph,
		"lang":     s.Language,
	}).Debug("format ready")
	return f, nil
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

// setup parses args and builds the Format. It returns a non-zero exit code
// when the command cannot proceed.
func setup(e *env, fs *flag.FlagSet, c *common, args []string) (*latlngfmt.Format, int) {
	if err := fs.Parse(args); err != nil {
		e.log.WithField("cmd", fs.Name()).Error(err)
		return nil, exitUsage
	}
	f, err := c.format(e)
	if err != nil {
		reportErr(e, err)
		return nil, exitUsage
	}
	return f, exitOK
}

func axisFlag(fs *flag.FlagSet) *string {
	return fs.String("axis", "lat", "axis: lat or lon")
}

func parseAxis(e *env, s string) (latlngfmt.Axis, bool) {
	a, err := latlngfmt.ParseAxis(s)
	if err != nil {
		e.log.WithField("axis", s).Error(err)
		return 0, false
	}
	return a, true
}

func formatCmd(e *env, args []string) int {
	fs := newFlagSet("format")
	var c common
	c.register(fs)
	axisName := axisFlag(fs)
	display := fs.Bool("display", false, "use the display template")
	f, code := setup(e, fs, &c, args)
	if code != exitOK {
		return code
	}
	axis, ok := parseAxis(e, *axisName)
	if !ok {
		return exitUsage
	}
	cd := codec.Coordinate(f, axis)
	if *display {
		cd = codec.Display(f, axis)
	}
	return eachInput(e, fs.Args(), func(in string) (string, error) {
		v, err := strconv.ParseFloat(strings.TrimSpace(in), 64)
		if err != nil {
			return "", latlngfmt.Issues{{Path: "/", Code: latlngfmt.CodeNotANumber, Message: i18n.T(latlngfmt.CodeNotANumber, nil), Input: in, Cause: err}}
		}
		return cd.Encode(e.ctx, v)
	})
}

func parseCmd(e *env, args []string) int {
	fs := newFlagSet("parse")
	var c common
	c.register(fs)
	axisName := axisFlag(fs)
	display := fs.Bool("display", false, "accept display text")
	f, code := setup(e, fs, &c, args)
	if code != exitOK {
		return code
	}
	axis, ok := parseAxis(e, *axisName)
	if !ok {
		return exitUsage
	}
	cd := codec.Coordinate(f, axis)
	if *display {
		cd = codec.Display(f, axis)
	}
	return eachInput(e, fs.Args(), func(in string) (string, error) {
		v, err := cd.Decode(e.ctx, in)
		if err != nil {
			return "", err
		}
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	})
}

func validateCmd(e *env, args []string) int {
	fs := newFlagSet("validate")
	var c common
	c.register(fs)
	axisName := axisFlag(fs)
	f, code := setup(e, fs, &c, args)
	if code != exitOK {
		return code
	}
	axis, ok := parseAxis(e, *axisName)
	if !ok {
		return exitUsage
	}
	cd := codec.Coordinate(f, axis)
	return eachInput(e, fs.Args(), func(in string) (string, error) {
		if _, err := cd.Decode(e.ctx, in); err != nil {
			return "", err
		}
		return "ok", nil
	})
}

func convertCmd(e *env, args []string) int {
	fs := newFlagSet("convert")
	var c common
	c.register(fs)
	axisName := axisFlag(fs)
	from := fs.String("from", "", "notation of the input text")
	f, code := setup(e, fs, &c, args)
	if code != exitOK {
		return code
	}
	axis, ok := parseAxis(e, *axisName)
	if !ok {
		return exitUsage
	}
	src, ok := sourceFormat(e, f, *from)
	if !ok {
		return exitUsage
	}
	cd := codec.Transcode(src, f, axis)
	return eachInput(e, fs.Args(), func(in string) (string, error) {
		return cd.Decode(e.ctx, in)
	})
}

func batchCmd(e *env, args []string) int {
	fs := newFlagSet("batch")
	var c common
	c.register(fs)
	from := fs.String("from", "", "notation of the input rows")
	inPath := fs.String("in", "", "input file (default stdin)")
	outPath := fs.String("out", "", "output file (default stdout)")
	input := fs.String("input", "", "input encoding: csv, jsonl or yaml (default from -in extension, else csv)")
	output := fs.String("output", "", "output encoding (default: same as input)")
	f, code := setup(e, fs, &c, args)
	if code != exitOK {
		return code
	}
	src, ok := sourceFormat(e, f, *from)
	if !ok {
		return exitUsage
	}

	opts := batch.Options{From: src, To: f}
	var err error
	if opts.Input, err = encodingFor(*input, *inPath); err != nil {
		e.log.Error(err)
		return exitUsage
	}
	if opts.Output, err = encodingFor(*output, *outPath); err != nil {
		e.log.Error(err)
		return exitUsage
	}
	if *output == "" && *outPath == "" {
		opts.Output = opts.Input
	}

	r := e.stdin
	if *inPath != "" {
		fh, err := os.Open(*inPath)
		if err != nil {
			e.log.WithField("in", *inPath).Error(err)
			return exitInvalid
		}
		defer fh.Close()
		r = fh
	}
	w := e.stdout
	var outFile *os.File
	if *outPath != "" {
		fh, err := os.Create(*outPath)
		if err != nil {
			e.log.WithField("out", *outPath).Error(err)
			return exitInvalid
		}
		outFile, w = fh, fh
	}

	res, err := batch.Convert(e.ctx, r, w, opts)
	if outFile != nil {
		if cerr := outFile.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	if err != nil {
		e.log.Error(err)
		return exitInvalid
	}
	e.log.WithFields(logrus.Fields{
		"rows":      res.Rows,
		"converted": res.Converted,
		"from":      src.Notation().String(),
		"to":        f.Notation().String(),
	}).Info("batch done")
	if len(res.Issues) > 0 {
		reportErr(e, res.Issues)
		return exitInvalid
	}
	return exitOK
}

func schemaCmd(e *env, args []string) int {
	fs := newFlagSet("schema")
	var c common
	c.register(fs)
	target := fs.String("axis", "pair", "lat, lon or pair")
	f, code := setup(e, fs, &c, args)
	if code != exitOK {
		return code
	}
	var s *jsonschema.Schema
	if *target == "pair" {
		s = f.PairSchema()
	} else {
		axis, ok := parseAxis(e, *target)
		if !ok {
			return exitUsage
		}
		s = f.JSONSchema(axis)
	}
	raw, err := jsonschema.Marshal(s)
	if err != nil {
		e.log.Error(err)
		return exitInvalid
	}
	if _, err := e.stdout.Write(raw); err != nil {
		e.log.Error(err)
		return exitInvalid
	}
	return exitOK
}

func promptCmd(e *env, args []string) int {
	fs := newFlagSet("prompt")
	var c common
	c.register(fs)
	choose := fs.Bool("choose", false, "pick the notation interactively")
	f, code := setup(e, fs, &c, args)
	if code != exitOK {
		return code
	}
	d := prompt.NewSurveyDriver()
	if *choose {
		n, err := prompt.Notation(e.ctx, d, f.Notation())
		if err != nil {
			return promptErr(e, err)
		}
		if f, err = f.WithNotation(n); err != nil {
			e.log.Error(err)
			return exitUsage
		}
	}
	pos, err := prompt.Pair(e.ctx, d, f)
	if err != nil {
		return promptErr(e, err)
	}
	texts := f.FormatPair(pos, false)
	fmt.Fprintf(e.stdout, "%s %s\n", texts[0], texts[1])
	return exitOK
}

func promptErr(e *env, err error) int {
	if errors.Is(err, prompt.ErrAborted) {
		e.log.Debug("aborted")
		return exitInvalid
	}
	e.log.Error(err)
	return exitInvalid
}

// ---- helpers ----

// eachInput applies fn to every argument, or to every stdin line when there
// are none, and prints results in order. Failed inputs are reported and make
// the command exit with exitInvalid.
func eachInput(e *env, args []string, fn func(string) (string, error)) int {
	code := exitOK
	handle := func(in string) {
		out, err := fn(in)
		if err != nil {
			reportErr(e, err)
			code = exitInvalid
			return
		}
		fmt.Fprintln(e.stdout, out)
	}
	if len(args) > 0 {
		for _, a := range args {
			handle(a)
		}
		return code
	}
	sc := bufio.NewScanner(e.stdin)
	for sc.Scan() {
		if e.ctx.Err() != nil {
			e.log.Error(e.ctx.Err())
			return exitInvalid
		}
		handle(sc.Text())
	}
	if err := sc.Err(); err != nil {
		e.log.Error(err)
		return exitInvalid
	}
	return code
}

func reportErr(e *env, err error) {
	iss, ok := latlngfmt.AsIssues(err)
	if !ok {
		e.log.Error(err)
		return
	}
	for _, it := range iss {
		fields := logrus.Fields{"path": it.Path, "code": it.Code}
		if it.Input != "" {
			fields["input"] = it.Input
		}
		if it.Hint != "" {
			fields["hint"] = it.Hint
		}
		e.log.WithFields(fields).Error(it.Message)
	}
}

func sourceFormat(e *env, dst *latlngfmt.Format, name string) (*latlngfmt.Format, bool) {
	if name == "" {
		e.log.Error("-from is required")
		return nil, false
	}
	n, err := latlngfmt.ParseNotation(name)
	if err != nil {
		e.log.WithField("from", name).Error(err)
		return nil, false
	}
	src, err := dst.WithNotation(n)
	if err != nil {
		e.log.Error(err)
		return nil, false
	}
	return src, true
}

func encodingFor(flagValue, path string) (batch.Encoding, error) {
	if flagValue != "" {
		return batch.ParseEncoding(flagValue)
	}
	if ext := filepath.Ext(path); ext != "" {
		return batch.ParseEncoding(ext)
	}
	return batch.CSV, nil
}
