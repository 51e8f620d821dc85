package snfmt

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
)

// Sentinel errors for programmatic error handling. Every failure of a
// formatting call wraps exactly one of them.
var (
	ErrUnterminated    = errors.New("unterminated specifier")
	ErrUnknownVerb     = errors.New("unrecognized conversion")
	ErrNilString       = errors.New("nil string operand")
	ErrDigitOverflow   = errors.New("integer digit overflow")
	ErrFloatFormat     = errors.New("float formatter failed")
	ErrTranscode       = errors.New("transcoding failed")
	ErrMissingArgument = errors.New("missing operand")
	ErrArgumentType    = errors.New("operand type mismatch")
)

// NullTemplate replaces a nil template.
const NullTemplate = "[null]"

// Printer renders C-style templates into bounded buffers. A Printer holds
// only configuration; every call owns its own output state, so a Printer is
// safe for concurrent use as long as its Transcoder and FloatFormatter are.
type Printer struct {
	codec    Transcoder
	float    FloatFormatter
	longBits int
	null     string
}

// Option configures a Printer.
type Option func(*Printer)

// WithTranscoder sets the transcoder the floating-point bridge uses to talk
// to the float formatter. Default: Identity.
func WithTranscoder(t Transcoder) Option {
	return func(p *Printer) { p.codec = t }
}

// WithFloatFormatter sets the formatter behind e/E/f/F/g/G. Default: a
// HostFloat speaking the Printer's transcoder encoding.
func WithFloatFormatter(f FloatFormatter) Option {
	return func(p *Printer) { p.float = f }
}

// WithLongBits sets the width of an "l" integer operand. 32 selects an
// ILP32/LLP64 long; any other value selects 64 (LP64, the default).
func WithLongBits(bits int) Option {
	return func(p *Printer) {
		if bits == 32 {
			p.longBits = 32
		} else {
			p.longBits = 64
		}
	}
}

// WithNullTemplate sets the text rendered in place of a nil template.
func WithNullTemplate(s string) Option {
	return func(p *Printer) { p.null = s }
}

// New returns a Printer configured by opts.
func New(opts ...Option) *Printer {
	p := &Printer{
		codec:    Identity,
		longBits: 64,
		null:     NullTemplate,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.codec == nil {
		p.codec = Identity
	}
	if p.float == nil {
		p.float = HostFloat{Host: p.codec}
	}
	return p
}

var std = New()

// Snprintf formats with the default Printer. See [Printer.Snprintf].
func Snprintf(dst []byte, format string, args ...any) (int, error) {
	return std.Snprintf(dst, format, args...)
}

// Bsnprintf formats with the default Printer. See [Printer.Bsnprintf].
func Bsnprintf(dst []byte, format []byte, args ...any) (int, error) {
	return std.Bsnprintf(dst, format, args...)
}

// Sprintf formats with the default Printer. See [Printer.Sprintf].
func Sprintf(format string, args ...any) (string, error) {
	return std.Sprintf(format, args...)
}

// Appendf formats with the default Printer. See [Printer.Appendf].
func Appendf(dst []byte, format string, args ...any) ([]byte, error) {
	return std.Appendf(dst, format, args...)
}

// Fprintf formats with the default Printer. See [Printer.Fprintf].
func Fprintf(w io.Writer, format string, args ...any) (int, error) {
	return std.Fprintf(w, format, args...)
}

// Snprintf renders format into dst, whose length is the capacity. At most
// len(dst)-1 bytes of output are stored, followed by a NUL; a zero-length
// dst receives nothing. The result is the length of the untruncated output,
// not counting the NUL, so n >= len(dst) signals truncation.
//
// On failure n is -1 and the contents of dst are unspecified.
func (p *Printer) Snprintf(dst []byte, format string, args ...any) (int, error) {
	return p.render(dst, format, args)
}

// Bsnprintf is Snprintf with a byte-slice template. A nil template renders
// the Printer's null template.
func (p *Printer) Bsnprintf(dst []byte, format []byte, args ...any) (int, error) {
	if format == nil {
		return p.render(dst, p.null, args)
	}
	return p.render(dst, string(format), args)
}

// Sprintf measures the output, then renders it into a buffer of exactly
// that size.
func (p *Printer) Sprintf(format string, args ...any) (string, error) {
	n, err := p.render(nil, format, args)
	if err != nil {
		return "", err
	}
	buf := make([]byte, n+1)
	if _, err := p.render(buf, format, args); err != nil {
		return "", err
	}
	return string(buf[:n]), nil
}

// Appendf appends the output to dst and returns the extended slice.
func (p *Printer) Appendf(dst []byte, format string, args ...any) ([]byte, error) {
	base := len(dst)
	n, err := p.render(dst[base:cap(dst)], format, args)
	if err != nil {
		return dst, err
	}
	if n < cap(dst)-base {
		return dst[:base+n], nil
	}
	dst = slices.Grow(dst, n+1)
	if _, err := p.render(dst[base:base+n+1], format, args); err != nil {
		return dst[:base], err
	}
	return dst[:base+n], nil
}

// Fprintf renders format and writes the output to w.
func (p *Printer) Fprintf(w io.Writer, format string, args ...any) (int, error) {
	b := getBuffer()
	defer b.free()
	var err error
	b.b, err = p.Appendf(b.b[:0], format, args...)
	if err != nil {
		return 0, err
	}
	return w.Write(b.b)
}

// state is the working set of one call. It is never shared.
type state struct {
	p    *Printer
	out  sink
	args argList
	scan scanner
}

func (p *Printer) render(dst []byte, format string, args []any) (int, error) {
	st := state{
		p:    p,
		out:  sink{buf: dst},
		args: argList{args: args},
		scan: scanner{src: format},
	}
	for {
		c, ok := st.scan.next()
		if !ok {
			break
		}
		if c != '%' {
			st.out.put(c)
			continue
		}
		sp, err := parseSpec(&st.scan, st.args.star)
		if err != nil {
			return -1, err
		}
		if err := st.convert(sp); err != nil {
			return -1, fmt.Errorf("%w (%q at offset %d)", err, sp.text, sp.off)
		}
	}
	st.out.terminate()
	return st.out.n, nil
}

func (st *state) convert(sp spec) error {
	switch sp.operand() {
	case OperandNone:
		st.out.put('%')
	case OperandString:
		s, err := st.args.string()
		if err != nil {
			return err
		}
		writeString(&st.out, s, sp)
	case OperandChar:
		v, err := st.args.integer()
		if err != nil {
			return err
		}
		st.out.put(byte(v))
	case OperandInt:
		return st.integer(sp, 32)
	case OperandLong:
		return st.integer(sp, st.p.longBits)
	case OperandInt64:
		return st.integer(sp, 64)
	case OperandPointer:
		v, err := st.args.pointer()
		if err != nil {
			return err
		}
		if strconv.IntSize == 32 {
			return writeInteger[int32, uint32](&st.out, int32(v), sp)
		}
		return writeInteger[int64, uint64](&st.out, int64(v), sp)
	case OperandFloat:
		return st.floating(sp)
	}
	return nil
}

func (st *state) integer(sp spec, bits int) error {
	v, err := st.args.integer()
	if err != nil {
		return err
	}
	if bits == 64 {
		return writeInteger[int64, uint64](&st.out, v, sp)
	}
	return writeInteger[int32, uint32](&st.out, int32(v), sp)
}
