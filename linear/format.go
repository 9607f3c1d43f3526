// SPDX-License-Identifier: MIT
// Package: lvmath/linear
//
// format.go: text form of vectors, matrices and quaternions.
//
// Canonical form (String, MarshalText):
//   - Vector, Quaternion: "[1, 2, 3]".
//   - Matrix: one stored column per line, matching the column-major layout:
//
//	[
//	 [1, 0, 0],
//	 [0, 1, 0],
//	 [0, 0, 1]
//	]
//
// Parsing:
//   - Default (best-effort): brackets, parentheses, commas, semicolons and
//     whitespace are all separators; only the number of scalars must match.
//   - WithStrict(): the exact bracket nesting and comma separation of the
//     canonical form is required; whitespace is free.
//   - Integer element types accept decimal integers, falling back to
//     truncated floating-point text.

package linear

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/katalvlaran/lvmath/numeric"
)

// appendScalar formats x in the shortest form that round-trips.
func appendScalar[T numeric.Number](b []byte, x T) []byte {
	switch v := any(x).(type) {
	case float32:
		return strconv.AppendFloat(b, float64(v), 'g', -1, 32)
	case float64:
		return strconv.AppendFloat(b, v, 'g', -1, 64)
	}
	switch {
	case numeric.IsFloat[T]():
		return strconv.AppendFloat(b, float64(x), 'g', -1, 64)
	case x < 0:
		return strconv.AppendInt(b, int64(x), 10)
	}

	return strconv.AppendUint(b, uint64(x), 10)
}

func appendList[T numeric.Number](b []byte, xs ...T) []byte {
	b = append(b, '[')
	for i, x := range xs {
		if i > 0 {
			b = append(b, ", "...)
		}
		b = appendScalar(b, x)
	}

	return append(b, ']')
}

// String formats v as "[x, y, …]".
func (v Vector[T, A]) String() string { return string(appendList(nil, v.Slice()...)) }

// MarshalText implements encoding.TextMarshaler.
func (v Vector[T, A]) MarshalText() ([]byte, error) { return appendList(nil, v.Slice()...), nil }

// UnmarshalText implements encoding.TextUnmarshaler with the best-effort parser.
func (v *Vector[T, A]) UnmarshalText(text []byte) error {
	p, err := ParseVector[T, A](string(text))
	if err != nil {
		return err
	}
	*v = p

	return nil
}

// String formats m one column per line.
func (m Matrix[T, A, G]) String() string { return string(m.appendText(nil)) }

// MarshalText implements encoding.TextMarshaler.
func (m Matrix[T, A, G]) MarshalText() ([]byte, error) { return m.appendText(nil), nil }

// UnmarshalText implements encoding.TextUnmarshaler with the best-effort parser.
func (m *Matrix[T, A, G]) UnmarshalText(text []byte) error {
	p, err := ParseMatrix[T, A, G](string(text))
	if err != nil {
		return err
	}
	*m = p

	return nil
}

func (m Matrix[T, A, G]) appendText(b []byte) []byte {
	n := m.Order()
	b = append(b, "[\n"...)
	for c := 0; c < n; c++ {
		b = append(b, ' ')
		b = appendList(b, m.Col(c).Slice()...)
		if c < n-1 {
			b = append(b, ',')
		}
		b = append(b, '\n')
	}

	return append(b, ']')
}

// String formats q as "[x, y, z, w]".
func (q Quaternion[T]) String() string { return string(appendList(nil, q[:]...)) }

// MarshalText implements encoding.TextMarshaler.
func (q Quaternion[T]) MarshalText() ([]byte, error) { return appendList(nil, q[:]...), nil }

// UnmarshalText implements encoding.TextUnmarshaler with the best-effort parser.
func (q *Quaternion[T]) UnmarshalText(text []byte) error {
	p, err := ParseQuaternion[T](string(text))
	if err != nil {
		return err
	}
	*q = p

	return nil
}

// ParseVector reads an N-component vector.
//
// Errors:
//   - ErrParse for malformed text; together with ErrSpanMismatch or
//     ErrSpanOverflow when only the count is wrong.
func ParseVector[T numeric.Number, A Array[T]](s string, opts ...Option) (Vector[T, A], error) {
	var v Vector[T, A]
	n := len(v.e)
	xs, err := parseScalars[T](s, []int{n}, gatherOptions(opts...).strict)
	if err != nil {
		return v, linearErrorf(opParseVector, err)
	}
	for i := 0; i < n; i++ {
		v.e[i] = xs[i]
	}

	return v, nil
}

// ParseMatrix reads an N×N matrix, column-major (the String layout).
//
// Errors:
//   - As ParseVector; strict mode also requires N bracketed columns of N.
func ParseMatrix[T numeric.Number, A Array[T], G Array[T]](s string, opts ...Option) (Matrix[T, A, G], error) {
	var m Matrix[T, A, G]
	n := m.Order()
	xs, err := parseScalars[T](s, []int{n, n}, gatherOptions(opts...).strict)
	if err != nil {
		return m, linearErrorf(opParseMatrix, err)
	}
	store(&m.e, xs)

	return m, nil
}

// ParseQuaternion reads "[x, y, z, w]".
func ParseQuaternion[T numeric.Number](s string, opts ...Option) (Quaternion[T], error) {
	var q Quaternion[T]
	xs, err := parseScalars[T](s, []int{4}, gatherOptions(opts...).strict)
	if err != nil {
		return q, linearErrorf(opParseQuaternion, err)
	}
	copy(q[:], xs)

	return q, nil
}

// parseScalars returns exactly Π shape scalars or an error.
func parseScalars[T numeric.Number](s string, shape []int, strict bool) ([]T, error) {
	want := 1
	for _, k := range shape {
		want *= k
	}
	var toks []string
	if strict {
		p := strictParser{s: s, shape: shape}
		if err := p.parse(); err != nil {
			return nil, err
		}
		toks = p.toks
	} else {
		toks = strings.FieldsFunc(s, isSeparator)
		if err := checkSpan(len(toks), want); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrParse, err)
		}
	}
	out := make([]T, len(toks))
	for i, tok := range toks {
		x, err := parseScalar[T](tok)
		if err != nil {
			return nil, err
		}
		out[i] = x
	}

	return out, nil
}

func isSeparator(r rune) bool {
	switch r {
	case '[', ']', '(', ')', ',', ';':
		return true
	}

	return unicode.IsSpace(r)
}

func parseScalar[T numeric.Number](tok string) (T, error) {
	if !numeric.IsFloat[T]() {
		if T(0)-1 < 0 {
			if i, err := strconv.ParseInt(tok, 10, 64); err == nil {
				return T(i), nil
			}
		} else if u, err := strconv.ParseUint(tok, 10, 64); err == nil {
			return T(u), nil
		}
	}
	f, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrParse, tok)
	}

	return T(f), nil
}

// strictParser accepts exactly the canonical nesting: one bracketed,
// comma-separated list per shape level with shape[level] items.
type strictParser struct {
	s     string
	pos   int
	shape []int
	toks  []string
}

func (p *strictParser) parse() error {
	if err := p.list(0); err != nil {
		return err
	}
	p.skipSpace()
	if p.pos != len(p.s) {
		return p.errorf("trailing text")
	}

	return nil
}

func (p *strictParser) list(level int) error {
	if !p.accept('[') {
		return p.errorf("expected '['")
	}
	for i := 0; i < p.shape[level]; i++ {
		if i > 0 && !p.accept(',') {
			return p.errorf("expected ','")
		}
		if level+1 < len(p.shape) {
			if err := p.list(level + 1); err != nil {
				return err
			}
			continue
		}
		if err := p.number(); err != nil {
			return err
		}
	}
	if !p.accept(']') {
		return p.errorf("expected ']'")
	}

	return nil
}

func (p *strictParser) number() error {
	p.skipSpace()
	start := p.pos
	for p.pos < len(p.s) && !isSeparator(rune(p.s[p.pos])) {
		p.pos++
	}
	if start == p.pos {
		return p.errorf("expected a number")
	}
	p.toks = append(p.toks, p.s[start:p.pos])

	return nil
}

func (p *strictParser) accept(c byte) bool {
	p.skipSpace()
	if p.pos < len(p.s) && p.s[p.pos] == c {
		p.pos++
		return true
	}

	return false
}

func (p *strictParser) skipSpace() {
	for p.pos < len(p.s) && unicode.IsSpace(rune(p.s[p.pos])) {
		p.pos++
	}
}

func (p *strictParser) errorf(what string) error {
	return fmt.Errorf("%w: %s at offset %d", ErrParse, what, p.pos)
}
