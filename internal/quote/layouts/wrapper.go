// SPDX-License-Identifier: Apache-2.0

package layouts

import (
	"golang.org/x/net/html"

	"github.com/edsblocks/quoteblock/internal/quote"
)

// WrapperIndirection handles rows that each hold one wrapper cell around the
// field cells, as produced by the visual editor.
type WrapperIndirection struct{}

func NewWrapperIndirection() *WrapperIndirection {
	return &WrapperIndirection{}
}

func (l *WrapperIndirection) Variant() quote.Variant {
	return quote.WrapperIndirection
}

func (l *WrapperIndirection) CanHandle(rows []*html.Node) bool {
	if len(rows) == 0 {
		return false
	}
	for _, r := range rows {
		if !quote.Peeled(r) {
			return false
		}
	}
	return true
}

func (l *WrapperIndirection) Resolve(rows []*html.Node) quote.Resolution {
	return quote.Resolution{Rows: quote.FlatRows(rows)}
}
