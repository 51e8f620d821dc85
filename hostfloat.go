package snfmt

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"strconv"
)

var (
	errFloatPattern = errors.New("malformed float pattern")
	errStarOperand  = errors.New("'*' has no operand in a float pattern")
)

// HostFloat is the default FloatFormatter. It reads a C float specifier in
// the Host encoding, renders the value with C printf semantics and writes the
// text back in the Host encoding. A nil Host means Identity.
//
// Supported: the flags "-+ #0", width, precision, the ignored length
// modifiers "l", "L" and "h", and the conversions e E f F g G. Infinities and
// NaNs print as inf and nan, upper-cased for E F G.
type HostFloat struct {
	Host Transcoder
}

// FormatFloat implements FloatFormatter.
func (h HostFloat) FormatFloat(dst, pattern []byte, v float64) (int, error) {
	host := h.Host
	if host == nil {
		host = Identity
	}

	in := getBuffer()
	defer in.free()
	var err error
	in.b, err = host.FromHost(in.b[:0], pattern)
	if err != nil {
		return -1, err
	}
	fp, err := parseFloatPattern(in.b)
	if err != nil {
		return -1, err
	}

	text := getBuffer()
	defer text.free()
	text.b = fp.append(text.b[:0], v)

	out := getBuffer()
	defer out.free()
	out.b, err = host.ToHost(out.b[:0], text.b)
	if err != nil {
		return -1, err
	}

	if len(dst) > 0 {
		k := copy(dst[:len(dst)-1], out.b)
		dst[k] = 0
	}
	return len(out.b), nil
}

type floatPattern struct {
	flags []byte
	width int
	prec  int // -1 when absent
	verb  byte
}

func (fp floatPattern) has(flag byte) bool {
	return bytes.IndexByte(fp.flags, flag) >= 0
}

func parseFloatPattern(p []byte) (floatPattern, error) {
	fp := floatPattern{prec: -1}
	if bytes.IndexByte(p, '*') >= 0 {
		return fp, fmt.Errorf("%w: %q", errStarOperand, p)
	}
	if len(p) < 2 || p[0] != '%' {
		return fp, fmt.Errorf("%w: %q", errFloatPattern, p)
	}
	i := 1
	for i < len(p) && bytes.IndexByte([]byte("-+ #0"), p[i]) >= 0 {
		fp.flags = append(fp.flags, p[i])
		i++
	}
	for i < len(p) && p[i] >= '0' && p[i] <= '9' {
		fp.width = fp.width*10 + int(p[i]-'0')
		i++
	}
	if i < len(p) && p[i] == '.' {
		i++
		fp.prec = 0
		for i < len(p) && p[i] >= '0' && p[i] <= '9' {
			fp.prec = fp.prec*10 + int(p[i]-'0')
			i++
		}
	}
	for i < len(p) && (p[i] == 'l' || p[i] == 'L' || p[i] == 'h') {
		i++
	}
	if i != len(p)-1 {
		return fp, fmt.Errorf("%w: %q", errFloatPattern, p)
	}
	switch p[i] {
	case 'e', 'E', 'f', 'F', 'g', 'G':
		fp.verb = p[i]
	default:
		return fp, fmt.Errorf("%w: %q", errFloatPattern, p)
	}
	return fp, nil
}

// append renders v. Go's %e, %f and %g agree with C once the precision is
// explicit; C's %g defaults to 6 significant digits where Go's is shortest.
func (fp floatPattern) append(dst []byte, v float64) []byte {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return fp.appendSpecial(dst, v)
	}
	prec := fp.prec
	if prec < 0 {
		prec = 6
	}
	goPat := make([]byte, 0, 16)
	goPat = append(goPat, '%')
	goPat = append(goPat, fp.flags...)
	if fp.width > 0 {
		goPat = strconv.AppendInt(goPat, int64(fp.width), 10)
	}
	goPat = append(goPat, '.')
	goPat = strconv.AppendInt(goPat, int64(prec), 10)
	goPat = append(goPat, fp.verb)
	return fmt.Appendf(dst, string(goPat), v)
}

func (fp floatPattern) appendSpecial(dst []byte, v float64) []byte {
	var word string
	switch {
	case math.IsNaN(v):
		word = "nan"
	case v < 0:
		word = "-inf"
	case fp.has('+'):
		word = "+inf"
	case fp.has(' '):
		word = " inf"
	default:
		word = "inf"
	}
	if fp.verb == 'E' || fp.verb == 'F' || fp.verb == 'G' {
		word = string(bytes.ToUpper([]byte(word)))
	}
	pad := fp.width - len(word)
	if !fp.has('-') {
		dst = append(dst, bytes.Repeat([]byte{' '}, max(pad, 0))...)
	}
	dst = append(dst, word...)
	if fp.has('-') {
		dst = append(dst, bytes.Repeat([]byte{' '}, max(pad, 0))...)
	}
	return dst
}
