package snfmt

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// Transcoder converts text between the formatter's encoding and the encoding
// the host float formatter speaks. Both methods append the converted src to
// dst and return the extended slice. FromHost must map one byte to one byte.
type Transcoder interface {
	ToHost(dst, src []byte) ([]byte, error)
	FromHost(dst, src []byte) ([]byte, error)
}

type identity struct{}

func (identity) ToHost(dst, src []byte) ([]byte, error)   { return append(dst, src...), nil }
func (identity) FromHost(dst, src []byte) ([]byte, error) { return append(dst, src...), nil }
func (identity) String() string                           { return "identity" }

// Identity is the Transcoder of a host whose text is already ASCII.
var Identity Transcoder = identity{}

// sub is the ASCII substitute control character.
const sub = 0x1a

// byteTable maps every byte value to one byte.
type byteTable [256]byte

// Transform implements transform.Transformer.
func (t *byteTable) Transform(dst, src []byte, _ bool) (nDst, nSrc int, err error) {
	n := min(len(dst), len(src))
	for i, c := range src[:n] {
		dst[i] = t[c]
	}
	if n < len(src) {
		err = transform.ErrShortDst
	}
	return n, n, err
}

// Reset implements transform.Transformer.
func (*byteTable) Reset() {}

// CodePage transcodes between ISO-8859-1 and an 8-bit host code page such as
// EBCDIC 1047. Bytes with no counterpart become the substitute character of
// the receiving side.
type CodePage struct {
	name     string
	toHost   byteTable
	fromHost byteTable
}

// NewCodePage builds the byte tables for cm.
func NewCodePage(cm *charmap.Charmap) *CodePage {
	cp := &CodePage{name: cm.String()}
	hostSub, ok := cm.EncodeRune(sub)
	if !ok {
		hostSub = '?'
	}
	for i := range 256 {
		if b, ok := cm.EncodeRune(rune(i)); ok {
			cp.toHost[i] = b
		} else {
			cp.toHost[i] = hostSub
		}
		if r := cm.DecodeByte(byte(i)); r < 0x100 {
			cp.fromHost[i] = byte(r)
		} else {
			cp.fromHost[i] = sub
		}
	}
	return cp
}

// ToHost implements Transcoder.
func (cp *CodePage) ToHost(dst, src []byte) ([]byte, error) {
	out, _, err := transform.Append(&cp.toHost, dst, src)
	return out, err
}

// FromHost implements Transcoder.
func (cp *CodePage) FromHost(dst, src []byte) ([]byte, error) {
	out, _, err := transform.Append(&cp.fromHost, dst, src)
	return out, err
}

// String returns the code page name.
func (cp *CodePage) String() string { return cp.name }

var codePages = map[string]*charmap.Charmap{
	"ibm037":       charmap.CodePage037,
	"cp037":        charmap.CodePage037,
	"ibm1047":      charmap.CodePage1047,
	"cp1047":       charmap.CodePage1047,
	"ibm1140":      charmap.CodePage1140,
	"cp1140":       charmap.CodePage1140,
	"ibm437":       charmap.CodePage437,
	"cp437":        charmap.CodePage437,
	"ibm850":       charmap.CodePage850,
	"cp850":        charmap.CodePage850,
	"latin1":       charmap.ISO8859_1,
	"iso-8859-1":   charmap.ISO8859_1,
	"windows-1252": charmap.Windows1252,
}

// LookupCodePage returns the Transcoder for a code page name. "ascii",
// "identity" and "" select Identity. Names are case-insensitive.
func LookupCodePage(name string) (Transcoder, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	switch key {
	case "", "ascii", "identity":
		return Identity, nil
	}
	cm, ok := codePages[key]
	if !ok {
		return nil, fmt.Errorf("%w: unknown code page %q", ErrTranscode, name)
	}
	return NewCodePage(cm), nil
}

// CodePageNames lists the names LookupCodePage accepts besides "ascii".
func CodePageNames() []string {
	names := make([]string, 0, len(codePages))
	for name := range codePages {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
