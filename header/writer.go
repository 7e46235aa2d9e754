/*
Package header serializes compiled word arrays into the C header text
consumed by the PixelRoot32 build.

Output is deterministic and append-only. Each array becomes a static
const uint16_t declaration with one word per line, rendered as an
uppercase 4-digit hex literal with a trailing comma. An empty array
still gets a declaration with an empty body.
*/
package header

import (
	"bufio"
	"fmt"
	"io"
)

// Writer emits the header document. Errors are sticky: after the first
// write failure every method is a no-op and Flush reports the error.
type Writer struct {
	w   *bufio.Writer
	err error
}

// NewWriter returns a Writer emitting to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

// Comment writes a single "// " comment line.
func (hw *Writer) Comment(format string, args ...interface{}) {
	hw.printf("// "+format+"\n", args...)
}

// Blank writes an empty line.
func (hw *Writer) Blank() {
	hw.printf("\n")
}

// Array writes one static const uint16_t declaration.
func (hw *Writer) Array(name string, words []uint16) {
	hw.printf("static const uint16_t %s[] = {\n", name)
	for _, w := range words {
		hw.printf("    0x%04X,\n", w)
	}
	hw.printf("};\n\n")
}

// Flush drains the buffer and returns the first error encountered.
func (hw *Writer) Flush() error {
	if hw.err != nil {
		return hw.err
	}
	return hw.w.Flush()
}

func (hw *Writer) printf(format string, args ...interface{}) {
	if hw.err != nil {
		return
	}
	_, hw.err = fmt.Fprintf(hw.w, format, args...)
}
