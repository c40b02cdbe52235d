// SPDX-License-Identifier: Apache-2.0

package layouts

import (
	"golang.org/x/net/html"

	"github.com/edsblocks/quoteblock/internal/quote"
)

// GroupedSingleRow handles blocks whose whole collection sits in one row,
// with one wrapper cell per item instead of one row per item.
type GroupedSingleRow struct{}

func NewGroupedSingleRow() *GroupedSingleRow {
	return &GroupedSingleRow{}
}

func (l *GroupedSingleRow) Variant() quote.Variant {
	return quote.GroupedSingleRow
}

// CanHandle accepts a single row resolving to more than the two cells of a
// quote/author pair.
func (l *GroupedSingleRow) CanHandle(rows []*html.Node) bool {
	return len(rows) == 1 && quote.FieldCount(rows[0]) > 2
}

// Resolve reads each cell as its own item. The outer row is not an item
// and its metadata is not carried onto any of them.
func (l *GroupedSingleRow) Resolve(rows []*html.Node) quote.Resolution {
	outer := quote.ResolveRow(rows[0])
	return quote.Resolution{Rows: quote.FlatRows(outer.Fields)}
}
