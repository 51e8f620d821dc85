package snfmt

const (
	// maxDigits bounds the scratch space of one integer conversion.
	maxDigits = 32

	lowerDigits = "0123456789abcdef"
	upperDigits = "0123456789ABCDEF"
)

type radix struct {
	base   uint8
	signed bool
	upper  bool
}

func radixOf(verb byte) radix {
	switch verb {
	case 'o', 'O':
		return radix{base: 8}
	case 'd', 'D', 'i', 'I':
		return radix{base: 10, signed: true}
	case 'X', 'p':
		return radix{base: 16, upper: true}
	case 'x':
		return radix{base: 16}
	default:
		return radix{base: 10}
	}
}

// writeInteger renders v in the base selected by sp.verb. S and U are the
// signed and unsigned forms of the operand width; only the signed decimal
// verbs print a minus sign, every other verb prints the two's complement bits.
func writeInteger[S int32 | int64, U uint32 | uint64](out *sink, v S, sp spec) error {
	r := radixOf(sp.verb)
	alphabet := lowerDigits
	if r.upper {
		alphabet = upperDigits
	}

	u := U(v)
	neg := r.signed && v < 0
	if neg {
		u = -u
	}

	var digits [maxDigits]byte
	n := 0
	base := U(r.base)
	for {
		if n == maxDigits {
			return ErrDigitOverflow
		}
		digits[n] = alphabet[int(u%base)]
		n++
		u /= base
		if u == 0 {
			break
		}
	}

	zeros := 0
	if sp.prec > 0 {
		zeros = sp.prec - n
	} else if sp.zero && !sp.left {
		zeros = sp.width - n
		if neg {
			zeros--
		}
	}
	zeros = max(zeros, 0)

	spaces := sp.width - n - zeros
	if neg {
		spaces--
	}

	if !sp.left {
		out.pad(' ', spaces)
	}
	if neg {
		out.put('-')
	}
	out.pad('0', zeros)
	for n > 0 {
		n--
		out.put(digits[n])
	}
	if sp.left {
		out.pad(' ', spaces)
	}
	return nil
}
