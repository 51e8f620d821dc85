package snfmt

import "fmt"

type lengthMod uint8

const (
	modNone lengthMod = iota
	modLong
	modLongLong
)

// spec is one parsed %... token. The parser builds it and hands it by value
// to whichever renderer owns the conversion.
type spec struct {
	left  bool // '-' seen: pad after the content
	zero  bool // leading '0': pad numbers with zeros
	width int
	prec  int // -1 when absent
	mod   lengthMod
	verb  byte
	off   int    // offset of the '%' in the template
	text  string // the token from '%' through verb
}

// scanner walks a template one byte at a time. The template ends at its
// first NUL. One byte can be pushed back and is returned by the next call to
// next before the template resumes.
type scanner struct {
	src  string
	pos  int
	hold byte
	held bool
}

func (s *scanner) next() (byte, bool) {
	if s.held {
		s.held = false
		return s.hold, true
	}
	if s.pos >= len(s.src) || s.src[s.pos] == 0 {
		return 0, false
	}
	c := s.src[s.pos]
	s.pos++
	return c, true
}

func (s *scanner) unread(c byte) {
	s.hold = c
	s.held = true
}

// parseSpec reads a specifier after its '%'. star supplies the value of a
// '*' width or precision.
//
// A conversion byte that is not recognized after "ll" is taken as an implied
// "%lld": the byte is pushed back so it is emitted as literal text.
func parseSpec(sc *scanner, star func() (int, error)) (spec, error) {
	sp := spec{prec: -1, off: sc.pos - 1}
	inPrec := false
	for {
		c, ok := sc.next()
		if !ok {
			return sp, fmt.Errorf("%w: %q at offset %d", ErrUnterminated, sc.src[sp.off:sc.pos], sp.off)
		}
		switch c {
		case '-':
			sp.left = true
		case '+':
			sp.left = false
		case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
			if c == '0' && sp.width == 0 {
				sp.zero = true
			}
			if inPrec {
				sp.prec = sp.prec*10 + int(c-'0')
			} else {
				sp.width = sp.width*10 + int(c-'0')
			}
		case '.':
			inPrec = true
			sp.prec = 0
		case '*':
			v, err := star()
			if err != nil {
				return sp, fmt.Errorf("%w: '*' at offset %d", err, sp.off)
			}
			if inPrec {
				sp.prec = v
			} else {
				sp.width = v
			}
		case 'l':
			if sp.mod == modNone {
				sp.mod = modLong
			} else {
				sp.mod = modLongLong
			}
		default:
			sp.verb = c
			sp.text = sc.src[sp.off:sc.pos]
			if isVerb(c) {
				return sp, nil
			}
			if sp.mod == modLongLong {
				sc.unread(c)
				sp.verb = 'd'
				sp.text = sc.src[sp.off : sc.pos-1]
				return sp, nil
			}
			return sp, fmt.Errorf("%w: %q at offset %d", ErrUnknownVerb, sp.text, sp.off)
		}
	}
}

func isVerb(c byte) bool {
	switch c {
	case 's', 'c', '%',
		'd', 'D', 'i', 'I', 'u', 'U', 'o', 'O', 'x', 'X', 'p',
		'e', 'E', 'f', 'F', 'g', 'G':
		return true
	}
	return false
}

// Operand is the kind of argument a conversion consumes.
type Operand int

const (
	OperandNone    Operand = iota // "%%"
	OperandInt                    // 32-bit integer
	OperandLong                   // C long, see WithLongBits
	OperandInt64                  // "ll" integer
	OperandChar                   // integer whose low byte is printed
	OperandString                 // %s
	OperandPointer                // %p
	OperandFloat                  // e E f F g G, always a float64
	OperandStar                   // '*' width or precision
)

var operandNames = [...]string{
	OperandNone:    "none",
	OperandInt:     "int",
	OperandLong:    "long",
	OperandInt64:   "int64",
	OperandChar:    "char",
	OperandString:  "string",
	OperandPointer: "pointer",
	OperandFloat:   "float",
	OperandStar:    "star",
}

// String returns the operand kind name.
func (o Operand) String() string {
	if o < 0 || int(o) >= len(operandNames) {
		return fmt.Sprintf("Operand(%d)", int(o))
	}
	return operandNames[o]
}

// operand reports what sp consumes. Floating conversions ignore the length
// modifier.
func (sp spec) operand() Operand {
	switch sp.verb {
	case 's':
		return OperandString
	case 'c':
		return OperandChar
	case 'p':
		return OperandPointer
	case 'e', 'E', 'f', 'F', 'g', 'G':
		return OperandFloat
	case '%':
		return OperandNone
	}
	switch sp.mod {
	case modLong:
		return OperandLong
	case modLongLong:
		return OperandInt64
	default:
		return OperandInt
	}
}

// Operands returns the argument kinds format consumes, in order, without
// rendering anything. '*' widths and precisions appear as OperandStar before
// the operand of their conversion.
func Operands(format string) ([]Operand, error) {
	var ops []Operand
	star := func() (int, error) {
		ops = append(ops, OperandStar)
		return 0, nil
	}
	sc := scanner{src: format}
	for {
		c, ok := sc.next()
		if !ok {
			return ops, nil
		}
		if c != '%' {
			continue
		}
		sp, err := parseSpec(&sc, star)
		if err != nil {
			return nil, err
		}
		if op := sp.operand(); op != OperandNone {
			ops = append(ops, op)
		}
	}
}
