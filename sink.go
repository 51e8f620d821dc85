package snfmt

// sink is the output of one formatting call. A byte is stored only while the
// cursor is inside buf, but the cursor always advances, so n ends up as the
// length the untruncated result would have.
type sink struct {
	buf []byte
	n   int
}

func (s *sink) put(c byte) {
	if s.n < len(s.buf) {
		s.buf[s.n] = c
	}
	s.n++
}

func (s *sink) pad(c byte, count int) {
	for ; count > 0; count-- {
		s.put(c)
	}
}

// room returns the unwritten tail of buf. It is empty once the cursor has
// reached the end.
func (s *sink) room() []byte {
	if s.n >= len(s.buf) {
		return nil
	}
	return s.buf[s.n:]
}

func (s *sink) skip(k int) {
	s.n += k
}

// terminate writes the NUL at the cursor, or over the last byte when the
// cursor ran past the end. A zero-capacity buffer is left alone.
func (s *sink) terminate() {
	if len(s.buf) == 0 {
		return
	}
	if s.n < len(s.buf) {
		s.buf[s.n] = 0
		return
	}
	s.buf[len(s.buf)-1] = 0
}
