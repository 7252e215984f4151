// Copyright (C) 2022 Sneller, Inc.
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

// Command dump reads a stream of JSON values and re-encodes
// each one as ion text (or, with -json, down-converts it back
// to the RFC 8259 subset of JSON that a compact ion-text
// writer also happens to produce). It exists mainly to drive
// the ion.Writer API end to end from the command line.
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"math/big"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/SnellerInc/ion-text-writer/compr"
	"github.com/SnellerInc/ion-text-writer/ion"
)

var (
	flagPretty    = flag.Bool("pretty", false, "pretty-print output")
	flagTabs      = flag.Bool("tabs", false, "indent with tabs instead of spaces (implies -pretty)")
	flagIndent    = flag.Int("indent", 2, "spaces per indent level")
	flagEscapeAll = flag.Bool("escape-all", false, "numerically escape every non-ASCII scalar")
	flagJSON      = flag.Bool("json", false, "down-convert output to plain JSON")
	flagFlush     = flag.Bool("flush-every-value", false, "flush the output after every value and container open")
	flagConfig    = flag.String("config", "", "path to a YAML WriterOptions file (overrides the flags above)")
	flagCompress  = flag.String("compress", "", "stream the output through a compressor (\"zstd\" or \"s2\")")
)

func main() {
	flag.Parse()
	runID := uuid.New().String()
	log.SetPrefix("dump[" + runID[:8] + "] ")

	opts, err := writerOptions()
	if err != nil {
		log.Fatalf("options: %s", err)
	}

	out, err := openOutput(*flagCompress)
	if err != nil {
		log.Fatalf("output: %s", err)
	}
	defer func() {
		if err := out.Close(); err != nil {
			log.Fatalf("closing output: %s", err)
		}
	}()

	args := flag.Args()
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		if err := dumpFile(arg, out, opts); err != nil {
			log.Fatalf("input %s: %s", arg, err)
		}
	}
}

// writerOptions builds the WriterOptions the encoder uses,
// preferring a config file (if one was given) over the
// individual command-line flags.
func writerOptions() (*ion.WriterOptions, error) {
	if *flagConfig != "" {
		return ion.LoadWriterOptions(*flagConfig)
	}
	return &ion.WriterOptions{
		PrettyPrint:       *flagPretty || *flagTabs,
		IndentWithTabs:    *flagTabs,
		IndentSize:        *flagIndent,
		EscapeAllNonASCII: *flagEscapeAll,
		JSONDowncovert:    *flagJSON,
		FlushEveryValue:   *flagFlush,
	}, nil
}

// closeableWriter is a bufio-flushed io.Writer that may also
// need a Close call to flush a streaming compressor's final
// frame.
type closeableWriter struct {
	*bufio.Writer
	underlying io.Closer
}

func (c closeableWriter) Close() error {
	if err := c.Flush(); err != nil {
		return err
	}
	if c.underlying != nil {
		return c.underlying.Close()
	}
	return nil
}

func openOutput(compressName string) (closeableWriter, error) {
	if compressName == "" {
		return closeableWriter{Writer: bufio.NewWriter(os.Stdout)}, nil
	}
	sw, err := compr.NewStreamWriter(compressName, os.Stdout)
	if err != nil {
		return closeableWriter{}, err
	}
	return closeableWriter{Writer: bufio.NewWriter(sw), underlying: sw}, nil
}

func dumpFile(arg string, out io.Writer, opts *ion.WriterOptions) error {
	var in io.Reader
	if arg == "-" {
		in = os.Stdin
	} else {
		f, err := os.Open(arg)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}
	w := ion.NewWriter(out, opts)
	dec := json.NewDecoder(bufio.NewReader(in))
	dec.UseNumber()
	for {
		var v interface{}
		err := dec.Decode(&v)
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		if err := encodeValue(w, v); err != nil {
			return err
		}
	}
	return w.Close()
}

// encodeValue writes v, the result of decoding one JSON value
// with json.Decoder.UseNumber, through w. Maps are written in
// Go's randomized map iteration order, since JSON objects carry
// no defined field order of their own.
func encodeValue(w *ion.Writer, v interface{}) error {
	switch val := v.(type) {
	case nil:
		return w.WriteNull()
	case bool:
		return w.WriteBool(val)
	case json.Number:
		return encodeNumber(w, val)
	case string:
		return w.WriteString(val)
	case []interface{}:
		if err := w.BeginList(); err != nil {
			return err
		}
		for _, elem := range val {
			if err := encodeValue(w, elem); err != nil {
				return err
			}
		}
		return w.EndList()
	case map[string]interface{}:
		if err := w.BeginStruct(); err != nil {
			return err
		}
		for field, elem := range val {
			if err := w.FieldName(field); err != nil {
				return err
			}
			if err := encodeValue(w, elem); err != nil {
				return err
			}
		}
		return w.EndStruct()
	default:
		return fmt.Errorf("dump: unexpected decoded type %T", v)
	}
}

// encodeNumber writes a json.Number as an ion int or decimal,
// whichever it would have to be to round-trip exactly: a JSON
// number with no "." or exponent is an arbitrary-precision
// integer, and anything else is written as a decimal rather
// than a binary float so that its exact digits survive.
func encodeNumber(w *ion.Writer, n json.Number) error {
	s := string(n)
	if !strings.ContainsAny(s, ".eE") {
		v, ok := new(big.Int).SetString(s, 10)
		if !ok {
			return fmt.Errorf("dump: malformed integer literal %q", s)
		}
		return w.WriteBigInt(v)
	}
	coeff, exp, err := splitDecimal(s)
	if err != nil {
		return err
	}
	return w.WriteDecimal(ion.NewDecimal(coeff, exp))
}

// splitDecimal parses a JSON number literal into a decimal
// coefficient and exponent, the same shape ion.Decimal wants.
func splitDecimal(s string) (*big.Int, int, error) {
	mantissa, expPart := s, "0"
	if i := strings.IndexAny(s, "eE"); i >= 0 {
		mantissa, expPart = s[:i], s[i+1:]
	}
	exp, ok := new(big.Int).SetString(expPart, 10)
	if !ok {
		return nil, 0, fmt.Errorf("dump: malformed exponent in %q", s)
	}
	frac := 0
	if i := strings.IndexByte(mantissa, '.'); i >= 0 {
		frac = len(mantissa) - i - 1
		mantissa = mantissa[:i] + mantissa[i+1:]
	}
	coeff, ok := new(big.Int).SetString(mantissa, 10)
	if !ok {
		return nil, 0, fmt.Errorf("dump: malformed mantissa in %q", s)
	}
	return coeff, int(exp.Int64()) - frac, nil
}
