// SPDX-License-Identifier: Apache-2.0

package layouts

import (
	"golang.org/x/net/html"

	"github.com/edsblocks/quoteblock/internal/quote"
)

// maxTrailingRows bounds the collection metadata rows: author, then style.
const maxTrailingRows = 2

// TrailingMetadataRows handles pair rows followed by one or two single-cell
// rows that describe the whole collection. A row without cells is a freshly
// inserted item, never metadata.
type TrailingMetadataRows struct{}

func NewTrailingMetadataRows() *TrailingMetadataRows {
	return &TrailingMetadataRows{}
}

func (l *TrailingMetadataRows) Variant() quote.Variant {
	return quote.TrailingMetadataRows
}

// CanHandle only accepts when every row before the trailing ones is a
// quote/author pair, so a short last item is never taken for metadata.
func (l *TrailingMetadataRows) CanHandle(rows []*html.Node) bool {
	_, trailing := l.split(rows)
	return len(trailing) > 0
}

func (l *TrailingMetadataRows) Resolve(rows []*html.Node) quote.Resolution {
	body, trailing := l.split(rows)
	res := quote.Resolution{Rows: quote.FlatRows(body)}
	if len(trailing) > 0 {
		res.Author = trailing[0]
	}
	if len(trailing) > 1 {
		res.Style = trailing[1]
	}
	return res
}

func (l *TrailingMetadataRows) split(rows []*html.Node) (body, trailing []*html.Node) {
	end := len(rows)
	for end > 1 && len(rows)-end < maxTrailingRows && quote.FieldCount(rows[end-1]) == 1 {
		end--
	}
	if end == len(rows) {
		return rows, nil
	}
	for _, r := range rows[:end] {
		if quote.FieldCount(r) != 2 {
			return rows, nil
		}
	}
	return rows[:end], rows[end:]
}
