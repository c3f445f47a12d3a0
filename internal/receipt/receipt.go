// Package receipt formats committed invoices for printing.
package receipt

import (
	"fmt"
	"strings"

	"github.com/abdalahsamh/New-cashir/internal/invoice"
)

// Header carries the shop identity printed on top of every receipt.
type Header struct {
	ShopName string
	Phones   []string
}

// Receipt pairs a committed invoice with the shop header for rendering.
type Receipt struct {
	Header  Header
	Invoice invoice.Invoice
}

const paperWidth = 48

// Render produces an ESC/POS stream for an 80mm thermal printer.
func Render(r Receipt) []byte {
	inv := r.Invoice
	d := NewDocument(paperWidth)

	d.Align(AlignCenter).Bold(true).Line(r.Header.ShopName).Bold(false)
	d.Align(AlignLeft).Rule()

	d.Pair("فاتورة", inv.Number)
	d.Pair("التاريخ", inv.CreatedAt.Format("2006-01-02 15:04"))
	if inv.Customer != "" {
		d.Pair("العميل", inv.Customer)
	}
	d.Pair("الحلاق", inv.Barber)
	d.Pair("الكرسي", string(inv.Chair))
	d.Rule()

	for _, item := range inv.Services {
		d.Pair(item.Name, item.Price.StringFixed(2))
	}
	d.Rule()

	if inv.Discount > 0 {
		d.Pair("الإجمالي", inv.Subtotal.StringFixed(2))
		d.Pair("الخصم", fmt.Sprintf("%d%%", inv.Discount))
		d.Bold(true).Pair("الصافي", inv.Total.StringFixed(2)).Bold(false)
	} else {
		d.Bold(true).Pair("الإجمالي", inv.Total.StringFixed(2)).Bold(false)
	}

	d.Rule()
	d.Align(AlignCenter)
	for _, phone := range r.Header.Phones {
		d.Line(phone)
	}
	d.Line("شكراً لزيارتكم")
	d.Feed(3).Cut()

	return d.Bytes()
}

// Text renders the receipt as plain UTF-8 text with the same layout as
// Render, for previews and exports that bypass the printer.
func Text(r Receipt) string {
	inv := r.Invoice
	var b strings.Builder
	rule := strings.Repeat("-", paperWidth)

	line := func(s string) {
		b.WriteString(s)
		b.WriteByte('\n')
	}
	pair := func(label, value string) {
		pad := paperWidth - len([]rune(label)) - len([]rune(value))
		if pad < 1 {
			pad = 1
		}
		b.WriteString(label)
		b.WriteString(strings.Repeat(" ", pad))
		b.WriteString(value)
		b.WriteByte('\n')
	}

	line(r.Header.ShopName)
	line(rule)
	pair("فاتورة", inv.Number)
	pair("التاريخ", inv.CreatedAt.Format("2006-01-02 15:04"))
	if inv.Customer != "" {
		pair("العميل", inv.Customer)
	}
	pair("الحلاق", inv.Barber)
	pair("الكرسي", string(inv.Chair))
	line(rule)
	for _, item := range inv.Services {
		pair(item.Name, item.Price.StringFixed(2))
	}
	line(rule)
	if inv.Discount > 0 {
		pair("الإجمالي", inv.Subtotal.StringFixed(2))
		pair("الخصم", fmt.Sprintf("%d%%", inv.Discount))
		pair("الصافي", inv.Total.StringFixed(2))
	} else {
		pair("الإجمالي", inv.Total.StringFixed(2))
	}
	line(rule)
	for _, phone := range r.Header.Phones {
		line(phone)
	}
	line("شكراً لزيارتكم")

	return b.String()
}
