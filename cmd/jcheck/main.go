// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Program jcheck reports whether its input is valid JSON.
//
// Usage:
//
//	jcheck -f input.json
//	jcheck -r '{"raw": "json"}'
//
// Exactly one of -f and -r must be given. On success jcheck prints
// "JSON is valid" and exits 0. If the input is not valid JSON, it prints a
// diagnostic to stderr and exits 1. Usage errors exit 2.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/creachadair/jcheck"
	"github.com/creachadair/jcheck/ast"
	"github.com/jessevdk/go-flags"
	"github.com/op/go-logging"
	"github.com/tailscale/hujson"
)

var log = logging.MustGetLogger("jcheck")

var logFormat = logging.MustStringFormatter(
	`%{time:15:04:05.000} [%{shortfunc}] [%{level}] %{message}`,
)

type options struct {
	File          string `short:"f" long:"file" value-name:"PATH" description:"Input JSON file"`
	Raw           string `short:"r" long:"raw" value-name:"TEXT" description:"Raw JSON input"`
	LogLevel      string `short:"l" long:"loglevel" env:"JCHECK_LOGLEVEL" default:"warning" description:"Set the logging level [debug, info, notice, warning, error, critical]"`
	Relaxed       bool   `long:"relaxed" description:"Accept comments and trailing commas (JWCC)"`
	AllowTrailing bool   `long:"allow-trailing" description:"Ignore input following the first value"`
	MaxDepth      int    `long:"max-depth" env:"JCHECK_MAX_DEPTH" default:"10000" description:"Maximum nesting depth of arrays and objects (0 for no limit)"`
	Quiet         bool   `short:"q" long:"quiet" description:"Do not report success"`
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the program with the given arguments and returns its exit
// status.
func run(args []string, stdout, stderr io.Writer) int {
	var opts options
	parser := flags.NewParser(&opts, flags.HelpFlag|flags.PassDoubleDash)
	parser.Name = "jcheck"
	parser.Usage = "[OPTIONS] (-f PATH | -r TEXT)"

	if _, err := parser.ParseArgs(args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			fmt.Fprintln(stdout, err)
			return 0
		}
		fmt.Fprintf(stderr, "jcheck: %v\n", err)
		return 2
	}
	hasFile := parser.FindOptionByLongName("file").IsSet()
	hasRaw := parser.FindOptionByLongName("raw").IsSet()
	if hasFile == hasRaw {
		fmt.Fprintln(stderr, "jcheck: exactly one of --file or --raw is required")
		return 2
	}
	if err := setupLogging(stderr, opts.LogLevel); err != nil {
		fmt.Fprintf(stderr, "jcheck: %v\n", err)
		return 2
	}

	var src []byte
	if hasFile {
		log.Debugf("Reading input from %q", opts.File)
		data, err := os.ReadFile(opts.File)
		if err != nil {
			fmt.Fprintf(stderr, "jcheck: %v\n", err)
			return 1
		}
		src = data
	} else {
		src = []byte(opts.Raw)
	}

	if err := check(src, opts); err != nil {
		log.Debugf("Validation failed: %v", err)
		fmt.Fprintf(stderr, "jcheck: %s\n", describe(src, err))
		return 1
	}
	if !opts.Quiet {
		fmt.Fprintln(stdout, "JSON is valid")
	}
	return 0
}

func setupLogging(w io.Writer, name string) error {
	level, err := logging.LogLevel(name)
	if err != nil {
		return fmt.Errorf("invalid log level %q", name)
	}
	backend := logging.NewLogBackend(w, "", 0)
	logging.SetBackend(logging.NewBackendFormatter(backend, logFormat))
	logging.SetLevel(level, "")
	return nil
}

// check reports whether src is a single valid JSON value under opts.
func check(src []byte, opts options) error {
	log.Debugf("Content (%d bytes): %s", len(src), src)
	if opts.Relaxed {
		// Comments and trailing commas become spaces, so offsets are preserved.
		// Input hujson rejects is checked as written, so that empty input,
		// trailing data, and the diagnostics below are handled the same way
		// in both modes.
		if std, err := hujson.Standardize(append([]byte(nil), src...)); err != nil {
			log.Debugf("Checking input as written: %v", err)
		} else {
			src = std
		}
	}

	toks, err := jcheck.Tokenize(src)
	if err != nil {
		return err
	}
	log.Debugf("Tokens (%d): %v", len(toks), toks)

	p := ast.NewParser(toks)
	p.AllowTrailingData(opts.AllowTrailing)
	p.SetMaxDepth(opts.MaxDepth)
	v, err := p.Parse()
	if err != nil {
		return err
	}
	if v == nil {
		log.Info("Input is empty")
	} else {
		log.Infof("Parsed %v", v)
	}
	return nil
}

// describe renders err for the user, including the line and column of the
// error in src if known.
func describe(src []byte, err error) string {
	var terr *jcheck.TokenError
	if errors.As(err, &terr) {
		return fmt.Sprintf("invalid token at %v: %v", jcheck.Locate(src, terr.Offset), err)
	}
	var perr *ast.ParseError
	if errors.As(err, &perr) && perr.Offset >= 0 {
		return fmt.Sprintf("at %v: %v", jcheck.Locate(src, perr.Offset), err)
	}
	return err.Error()
}
