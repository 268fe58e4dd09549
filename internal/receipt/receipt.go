// Package receipt renders a sale as a fixed-width text document sized for
// 80mm thermal stock. It is a pure transformation: callers resolve the sale
// (fresh checkout preview or historical transaction) into Lines first, and
// nothing here touches storage.
package receipt

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

const (
	// Width is the printable character width of the page.
	Width = 42

	nameColWidth   = 19
	qtyColWidth    = 10
	amountColWidth = 13

	truncMarker = "..."
)

// Line is one item row. Amount is the extended line value (price already
// multiplied by quantity), not the unit price.
type Line struct {
	Name     string
	Quantity float64
	Unit     string
	Amount   float64
}

// Receipt is the fully-resolved input to Render.
type Receipt struct {
	RestaurantName string
	Address        string
	Phone          string
	ReceiptNumber  string
	Date           string
	Time           string
	Currency       string
	Lines          []Line
	Total          float64
	Footer         string

	// LinesPerPage caps the number of text lines per page. Zero means one
	// unbounded page, the natural mode for roll stock; a positive cap
	// paginates for fixed-height pages.
	LinesPerPage int
}

// Document is the rendered output, one string per page.
type Document struct {
	Pages []string
}

// String joins the pages with form feeds, ready to hand to a printer spooler.
func (d Document) String() string {
	return strings.Join(d.Pages, "\f")
}

// Render lays out the receipt. Header and footer are separated from the item
// block by dashed rules; item rows use three columns (name / quantity+unit /
// line value) with long names truncated to keep the columns aligned.
func Render(r Receipt) Document {
	header := renderHeader(r)
	rows := make([]string, 0, len(r.Lines))
	for _, l := range r.Lines {
		rows = append(rows, renderLine(r.Currency, l))
	}
	trailer := renderTrailer(r)

	if r.LinesPerPage <= 0 {
		var page []string
		page = append(page, header...)
		page = append(page, columnHeader()...)
		page = append(page, rows...)
		page = append(page, trailer...)
		return Document{Pages: []string{strings.Join(page, "\n")}}
	}
	return paginate(header, rows, trailer, r)
}

func renderHeader(r Receipt) []string {
	name := r.RestaurantName
	if name == "" {
		name = "Restaurant Management System"
	}
	lines := []string{center(name)}
	if r.Address != "" {
		for _, l := range wrap(r.Address, Width) {
			lines = append(lines, center(l))
		}
	}
	if r.Phone != "" {
		lines = append(lines, center("Tel: "+r.Phone))
	}
	lines = append(lines, center(fmt.Sprintf("Date: %s  Time: %s", r.Date, r.Time)))
	lines = append(lines, center("Receipt #: "+r.ReceiptNumber))
	return lines
}

func columnHeader() []string {
	return []string{
		rule(),
		pad("Item", nameColWidth) + colCenter("Qty", qtyColWidth) + rightAlign("Price", amountColWidth),
	}
}

func renderLine(currency string, l Line) string {
	qty := formatQuantity(l.Quantity)
	if l.Unit != "" {
		qty += " " + l.Unit
	}
	return pad(truncate(l.Name, nameColWidth-1), nameColWidth) +
		colCenter(qty, qtyColWidth) +
		rightAlign(Money(currency, l.Amount), amountColWidth)
}

func renderTrailer(r Receipt) []string {
	lines := []string{
		rule(),
		pad("Total", Width-amountColWidth) + rightAlign(Money(r.Currency, r.Total), amountColWidth),
	}
	if r.Footer != "" {
		lines = append(lines, rule())
		for _, l := range wrap(r.Footer, Width) {
			lines = append(lines, center(l))
		}
	}
	return lines
}

// paginate splits the item block across pages. The full header appears on
// the first page only; continuation pages repeat the column header; the
// total and footer close the last page.
func paginate(header, rows, trailer []string, r Receipt) Document {
	perPage := r.LinesPerPage
	contHeader := []string{
		center("Receipt #: " + r.ReceiptNumber + " (cont.)"),
	}

	var pages []string
	var page []string
	page = append(page, header...)
	page = append(page, columnHeader()...)

	for _, row := range rows {
		// Never break before the first row of a page.
		if len(page) >= perPage && len(page) > len(header)+len(columnHeader()) {
			pages = append(pages, strings.Join(page, "\n"))
			page = nil
			page = append(page, contHeader...)
			page = append(page, columnHeader()...)
		}
		page = append(page, row)
	}
	page = append(page, trailer...)
	pages = append(pages, strings.Join(page, "\n"))
	return Document{Pages: pages}
}

// Money renders a monetary value as "CUR 12.34".
func Money(currency string, amount float64) string {
	return fmt.Sprintf("%s %.2f", currency, amount)
}

// formatQuantity trims meaningless trailing zeros: 3 not 3.0, but 0.5 stays.
func formatQuantity(q float64) string {
	return strconv.FormatFloat(q, 'f', -1, 64)
}

func truncate(s string, budget int) string {
	runes := []rune(s)
	if len(runes) <= budget {
		return s
	}
	return string(runes[:budget-len(truncMarker)]) + truncMarker
}

// runeLen measures layout width in runes, not bytes, so non-ASCII product
// names keep the columns aligned.
func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}

func pad(s string, width int) string {
	if runeLen(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-runeLen(s))
}

func rightAlign(s string, width int) string {
	if runeLen(s) >= width {
		return s
	}
	return strings.Repeat(" ", width-runeLen(s)) + s
}

// center positions a header line without right-padding it; trailing spaces
// confuse some spoolers.
func center(s string) string {
	if runeLen(s) >= Width {
		return s
	}
	return strings.Repeat(" ", (Width-runeLen(s))/2) + s
}

// colCenter pads both sides so the next column starts at a fixed offset.
func colCenter(s string, width int) string {
	if runeLen(s) >= width {
		return s
	}
	left := (width - runeLen(s)) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-runeLen(s)-left)
}

func rule() string {
	return strings.Repeat("-", Width)
}

func wrap(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}
	var lines []string
	current := words[0]
	for _, w := range words[1:] {
		if runeLen(current)+1+runeLen(w) > width {
			lines = append(lines, current)
			current = w
			continue
		}
		current += " " + w
	}
	return append(lines, current)
}
