// SPDX-License-Identifier: MIT

// Package dyn: text-format construction. The wire grammar is the only
// persisted format in scope: columns separated by one delimiter (";" by
// default), elements within a column by whitespace. Every element is parsed
// independently; a single malformed token fails the whole parse with ErrParse
// naming the token and its position — a bad cell is never papered over with a
// default value.
package dyn

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/linal/scalar"
)

// DefaultColumnDelimiter separates columns in the matrix wire format.
const DefaultColumnDelimiter = ";"

// ParseOption configures parsing. Options follow the functional pattern:
// zero options mean the documented defaults, and constructors panic on
// nonsensical values (programmer error).
type ParseOption func(*parseConfig)

type parseConfig struct {
	colDelim string
}

// WithColumnDelimiter overrides the column separator. Panics on an empty
// delimiter, which would make the grammar ambiguous.
func WithColumnDelimiter(d string) ParseOption {
	if d == "" {
		panic("dyn: empty column delimiter")
	}
	return func(pc *parseConfig) { pc.colDelim = d }
}

// gatherParseOptions folds opts over the defaults.
func gatherParseOptions(opts []ParseOption) parseConfig {
	pc := parseConfig{colDelim: DefaultColumnDelimiter}
	for _, o := range opts {
		o(&pc)
	}

	return pc
}

// parseToken converts one token into T. Integer instantiations parse as
// base-10 integers (so "2.5" is a parse failure, not a silent truncation),
// and a token outside T's own range is a parse failure, never a wrap-around;
// float instantiations parse as float64 and convert.
// The integer/float split keys off T's own division semantics: T(1)/T(2) is
// zero exactly for integer types. Unsignedness keys off wrap-around below
// the zero value.
func parseToken[T scalar.Scalar](tok string) (T, error) {
	var zero T
	if T(1)/T(2) == T(0) {
		if zero-T(1) > zero { // unsigned: "-1" must not become the max value
			u, err := strconv.ParseUint(tok, 10, 64)
			if err != nil {
				return zero, err
			}
			if uint64(T(u)) != u {
				return zero, strconv.ErrRange
			}
			return T(u), nil
		}
		i, err := strconv.ParseInt(tok, 10, 64)
		if err != nil {
			return zero, err
		}
		if int64(T(i)) != i {
			return zero, strconv.ErrRange
		}
		return T(i), nil
	}
	f, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return zero, err
	}

	return T(f), nil
}

// ParseVector builds a vector from whitespace-separated numeric tokens,
// e.g. "4 3 2". Repeated spaces between tokens are tolerated.
// Returns ErrParse for empty input or any malformed token (the wrapped
// message names the token and its zero-based position).
// Complexity: O(len(s)).
func ParseVector[T scalar.Scalar](s string) (*Vector[T], error) {
	toks := strings.Fields(s)
	if len(toks) == 0 {
		return nil, fmt.Errorf("ParseVector: empty input: %w", ErrParse)
	}
	data := make([]T, len(toks))
	for i, tok := range toks {
		v, err := parseToken[T](tok)
		if err != nil {
			return nil, fmt.Errorf("ParseVector: token %q at position %d: %w", tok, i, ErrParse)
		}
		data[i] = v
	}

	return &Vector[T]{data: data, n: len(data)}, nil
}

// ParseMatrix builds a matrix from the column wire format, e.g.
// "4 3 2;2 2 -1" — two columns of three rows.
// Stage 1 (Split): cut into column strings on the configured delimiter, then
// each column into whitespace-separated tokens.
// Stage 2 (Validate): non-empty input; every column must match the first
// column's token count (ErrRaggedInput otherwise).
// Stage 3 (Parse): convert each token; any failure aborts the whole parse
// with ErrParse naming the token and its (column, row) position.
// Complexity: O(len(s)).
func ParseMatrix[T scalar.Scalar](s string, opts ...ParseOption) (*Matrix[T], error) {
	pc := gatherParseOptions(opts)

	if strings.TrimSpace(s) == "" {
		return nil, fmt.Errorf("ParseMatrix: empty input: %w", ErrParse)
	}

	colStrs := strings.Split(s, pc.colDelim)
	rows := len(strings.Fields(colStrs[0]))
	data := make([][]T, len(colStrs))
	for ci, colStr := range colStrs {
		toks := strings.Fields(colStr)
		if len(toks) != rows {
			return nil, fmt.Errorf("ParseMatrix: column %d has %d elements, want %d: %w", ci, len(toks), rows, ErrRaggedInput)
		}
		col := make([]T, rows)
		for ri, tok := range toks {
			v, err := parseToken[T](tok)
			if err != nil {
				return nil, fmt.Errorf("ParseMatrix: token %q at column %d, row %d: %w", tok, ci, ri, ErrParse)
			}
			col[ri] = v
		}
		data[ci] = col
	}

	return &Matrix[T]{data: data, rows: rows, cols: len(data)}, nil
}
