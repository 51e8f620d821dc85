package snfmt

import "fmt"

// FloatFormatter is the platform formatter behind the e/E/f/F/g/G
// conversions. It follows the C snprintf contract: pattern is a single
// specifier in the host encoding, at most len(dst)-1 bytes are stored in dst
// followed by a NUL when len(dst) > 0, and the result is the length the
// untruncated output would have.
type FloatFormatter interface {
	FormatFloat(dst, pattern []byte, v float64) (int, error)
}

// floating runs the bridge for one float specifier: the specifier text goes
// to the host encoding, the host formatter renders straight into the unused
// part of the output, and the result is transcoded back in place when it
// fits. The cursor advances by the reported length either way.
func (st *state) floating(sp spec) error {
	v, err := st.args.float()
	if err != nil {
		return err
	}

	pat := getBuffer()
	defer pat.free()
	pat.b, err = st.p.codec.ToHost(pat.b[:0], []byte(sp.text))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrTranscode, err)
	}

	room := st.out.room()
	need, err := st.p.float.FormatFloat(room, pat.b, v)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFloatFormat, err)
	}
	if need < 0 {
		return fmt.Errorf("%w: reported length %d", ErrFloatFormat, need)
	}

	if need > 0 && len(room) > need {
		back := getBuffer()
		defer back.free()
		back.b, err = st.p.codec.FromHost(back.b[:0], room[:need])
		if err != nil {
			return fmt.Errorf("%w: %w", ErrTranscode, err)
		}
		if len(back.b) != need {
			return fmt.Errorf("%w: %d bytes came back for %d", ErrTranscode, len(back.b), need)
		}
		copy(room, back.b)
		room[need] = 0
	}
	st.out.skip(need)
	return nil
}
