package receipt

import (
	"bytes"
	"strings"
)

// ESC/POS control bytes.
const (
	esc = 0x1B
	gs  = 0x1D
	lf  = 0x0A
)

// Alignment values for Document.Align.
const (
	AlignLeft   = 0
	AlignCenter = 1
	AlignRight  = 2
)

// Document builds an ESC/POS byte stream for a thermal receipt printer.
// The zero value is not usable; call NewDocument.
type Document struct {
	buf   bytes.Buffer
	width int
}

// NewDocument returns an initialized document for the given character width.
// 32 suits 58mm paper, 48 suits 80mm paper.
func NewDocument(width int) *Document {
	if width <= 0 {
		width = 32
	}
	d := &Document{width: width}
	d.buf.Write([]byte{esc, '@'}) // initialize printer
	return d
}

// Align sets text alignment for subsequent lines.
func (d *Document) Align(a int) *Document {
	d.buf.Write([]byte{esc, 'a', byte(a)})
	return d
}

// Bold toggles emphasized printing.
func (d *Document) Bold(on bool) *Document {
	b := byte(0)
	if on {
		b = 1
	}
	d.buf.Write([]byte{esc, 'E', b})
	return d
}

// Line writes a line of text followed by a line feed.
func (d *Document) Line(s string) *Document {
	d.buf.WriteString(s)
	d.buf.WriteByte(lf)
	return d
}

// Rule prints a dashed separator across the full width.
func (d *Document) Rule() *Document {
	return d.Line(strings.Repeat("-", d.width))
}

// Pair prints a left-aligned label and a right-aligned value on one line.
func (d *Document) Pair(label, value string) *Document {
	pad := d.width - len([]rune(label)) - len([]rune(value))
	if pad < 1 {
		pad = 1
	}
	d.buf.WriteString(label)
	d.buf.WriteString(strings.Repeat(" ", pad))
	d.buf.WriteString(value)
	d.buf.WriteByte(lf)
	return d
}

// Feed advances the paper by n lines.
func (d *Document) Feed(n int) *Document {
	for range n {
		d.buf.WriteByte(lf)
	}
	return d
}

// Cut sends the paper cut command.
func (d *Document) Cut() *Document {
	d.buf.Write([]byte{gs, 'V', 0x00})
	return d
}

// Bytes returns the accumulated ESC/POS stream.
func (d *Document) Bytes() []byte {
	return d.buf.Bytes()
}
