// SPDX-License-Identifier: MIT
// Package codec: text-format decode/encode for sparse matrices.

package codec

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/sparsemat/sparse"
	"github.com/katalvlaran/sparsemat/store"
)

// ErrFormat indicates malformed input text: missing or misordered header,
// malformed entry line, non-integer field or wrong field count. Match with
// errors.Is; the wrapped message names the offending line.
var ErrFormat = errors.New("codec: input has wrong format")

// Header line prefixes, in mandatory order.
const (
	rowsPrefix = "rows="
	colsPrefix = "cols="
)

// maxLineBytes caps a single input line; matrix entry lines are tiny, so
// this only guards against garbage input.
const maxLineBytes = 1 << 20

// line pairs trimmed text with its 1-based position for error context.
type line struct {
	text string
	no   int
}

// Decode parses the text format from r into a fresh matrix.
// Stage 1 (Scan): collect non-blank lines, trimmed.
// Stage 2 (Header): first two lines must be rows= then cols=.
// Stage 3 (Entries): apply each (r, c, v) line via Set in file order.
// Errors: ErrFormat (malformed text), or the reader's error verbatim.
// Complexity: O(total input length).
func Decode(r io.Reader) (*sparse.Matrix, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxLineBytes)

	var (
		lines []line
		no    int
	)
	for sc.Scan() {
		no++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		lines = append(lines, line{text: text, no: no})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	if len(lines) < 2 {
		return nil, fmt.Errorf("missing %q/%q header lines: %w", rowsPrefix, colsPrefix, ErrFormat)
	}
	rows, err := parseHeader(lines[0], rowsPrefix)
	if err != nil {
		return nil, err
	}
	cols, err := parseHeader(lines[1], colsPrefix)
	if err != nil {
		return nil, err
	}

	m := sparse.New(rows, cols)
	for _, ln := range lines[2:] {
		er, ec, ev, err := parseEntry(ln)
		if err != nil {
			return nil, err
		}
		m.Set(er, ec, ev) // file order: last write wins, zero removes
	}

	return m, nil
}

// parseHeader extracts the integer from a "rows=N" / "cols=M" line.
func parseHeader(ln line, prefix string) (int, error) {
	if !strings.HasPrefix(ln.text, prefix) {
		return 0, fmt.Errorf("line %d: expected %q header, got %q: %w", ln.no, prefix, ln.text, ErrFormat)
	}
	n, err := strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(ln.text, prefix)))
	if err != nil {
		return 0, fmt.Errorf("line %d: non-integer dimension in %q: %w", ln.no, ln.text, ErrFormat)
	}

	return n, nil
}

// parseEntry parses one "(r, c, v)" line into its three integers.
func parseEntry(ln line) (row, col int, v int64, err error) {
	if !strings.HasPrefix(ln.text, "(") || !strings.HasSuffix(ln.text, ")") {
		return 0, 0, 0, fmt.Errorf("line %d: entry %q not parenthesized: %w", ln.no, ln.text, ErrFormat)
	}
	parts := strings.Split(ln.text[1:len(ln.text)-1], ",")
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("line %d: entry %q has %d fields, want 3: %w", ln.no, ln.text, len(parts), ErrFormat)
	}
	if row, err = strconv.Atoi(strings.TrimSpace(parts[0])); err != nil {
		return 0, 0, 0, fmt.Errorf("line %d: non-integer row in %q: %w", ln.no, ln.text, ErrFormat)
	}
	if col, err = strconv.Atoi(strings.TrimSpace(parts[1])); err != nil {
		return 0, 0, 0, fmt.Errorf("line %d: non-integer column in %q: %w", ln.no, ln.text, ErrFormat)
	}
	if v, err = strconv.ParseInt(strings.TrimSpace(parts[2]), 10, 64); err != nil {
		return 0, 0, 0, fmt.Errorf("line %d: non-integer value in %q: %w", ln.no, ln.text, ErrFormat)
	}

	return row, col, v, nil
}

// Encode writes the canonical text form of m to w.
// Errors: sparse.ErrNilMatrix, or the writer's error verbatim.
// Complexity: O(nnz·log nnz).
func Encode(w io.Writer, m *sparse.Matrix) error {
	if m == nil {
		return sparse.ErrNilMatrix
	}
	if _, err := io.WriteString(w, m.String()); err != nil {
		return err
	}

	return nil
}

// Unmarshal decodes a matrix from an in-memory byte slice.
func Unmarshal(b []byte) (*sparse.Matrix, error) {
	return Decode(bytes.NewReader(b))
}

// Marshal encodes m into its canonical byte form.
func Marshal(m *sparse.Matrix) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, m); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// Load reads the named blob from st and decodes it.
// Storage failures carry store.ErrStorage, malformed content ErrFormat.
func Load(ctx context.Context, st store.Store, name string) (*sparse.Matrix, error) {
	b, err := st.Load(ctx, name)
	if err != nil {
		return nil, err
	}

	return Unmarshal(b)
}

// Save encodes m and writes it to st under the given name.
func Save(ctx context.Context, st store.Store, name string, m *sparse.Matrix) error {
	b, err := Marshal(m)
	if err != nil {
		return err
	}

	return st.Save(ctx, name, b)
}
