// SPDX-License-Identifier: Apache-2.0

package quote

import (
	"golang.org/x/net/html"

	"github.com/edsblocks/quoteblock/internal/dom"
)

// ResolveRow peels at most one wrapper layer: a row whose only child itself
// has more than one child is read through that child.
func ResolveRow(row *html.Node) Row {
	cells := dom.Children(row)
	if len(cells) == 1 && dom.ChildCount(cells[0]) > 1 {
		return Row{Source: row, Wrapper: cells[0], Fields: dom.Children(cells[0])}
	}
	return Row{Source: row, Fields: cells}
}

// Peeled reports whether ResolveRow would read row through a wrapper.
func Peeled(row *html.Node) bool {
	return ResolveRow(row).Wrapper != nil
}

// FieldCount is the number of field cells row resolves to.
func FieldCount(row *html.Node) int {
	return len(ResolveRow(row).Fields)
}

// FlatRows resolves every row independently, so mixed shapes are tolerated.
func FlatRows(rows []*html.Node) []Row {
	out := make([]Row, 0, len(rows))
	for _, r := range rows {
		out = append(out, ResolveRow(r))
	}
	return out
}
