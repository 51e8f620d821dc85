// Package snfmt renders C printf-style templates into fixed-size buffers.
//
// It is a self-contained implementation of the truncating snprintf contract
// for code that cannot call the platform formatter for most conversions.
// The output is always NUL-terminated inside the buffer when the buffer is
// not empty, and the result is the length the untruncated output would have:
//
//	buf := make([]byte, 4)
//	n, err := snfmt.Snprintf(buf, "%d", 12345) // n == 5, buf == "123\x00"
//
// # Conversions
//
// The recognized template language is a subset of printf:
//
//   - flags "-" (pad after) and "+" (pad before, the default); a leading "0"
//     pads numbers with zeros
//   - width and precision as digits or "*" (taken from the operands)
//   - "l" for a C long and "ll" for a 64-bit integer
//   - s, c, %, d D i I u U o O x X, p, and e E f F g G
//
// "%ll" followed by any other byte is read as "%lld" and the byte is printed
// as ordinary text. Any other unknown conversion fails the call.
//
// # Operands
//
// Operands are consumed left to right. Integer conversions accept any Go
// integer kind and truncate it to the operand width: 32 bits with no
// modifier, [WithLongBits] with "l", 64 bits with "ll". [Operands] reports
// what a template will consume without rendering it.
//
// # Floating point
//
// The floating conversions are delegated to a [FloatFormatter]. The
// specifier text goes through [Transcoder.ToHost] first and the formatted
// text comes back through [Transcoder.FromHost], so the formatter may speak
// a different 8-bit encoding, such as EBCDIC via [NewCodePage]. The default
// formatter is [HostFloat].
//
// # Errors
//
// Failures return -1 and wrap one of the sentinel errors:
//
//   - [ErrUnterminated]: the template ends inside a specifier
//   - [ErrUnknownVerb]: unrecognized conversion byte
//   - [ErrNilString]: nil operand for %s
//   - [ErrDigitOverflow]: integer digits exceed the scratch space
//   - [ErrFloatFormat]: the float formatter failed
//   - [ErrTranscode]: a transcoding step failed
//   - [ErrMissingArgument], [ErrArgumentType]: operand list problems
//
// Truncation is not an error.
package snfmt
