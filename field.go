package snfmt

// writeString renders a %s field. A non-negative precision caps the bytes
// taken from str; the source also ends at its first NUL.
func writeString(out *sink, str string, sp spec) {
	n := 0
	for (n < sp.prec || sp.prec < 0) && n < len(str) && str[n] != 0 {
		n++
	}
	pad := sp.width - n
	if !sp.left {
		out.pad(' ', pad)
	}
	for i := range n {
		out.put(str[i])
	}
	if sp.left {
		out.pad(' ', pad)
	}
}
