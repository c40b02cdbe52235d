// SPDX-License-Identifier: Apache-2.0

package layouts

import (
	"golang.org/x/net/html"

	"github.com/edsblocks/quoteblock/internal/quote"
)

// PerRowFields is the document-authored shape: one row per item, cells as
// fields. It accepts any input, and still peels a wrapper row when it meets
// one so mixed blocks degrade gracefully.
type PerRowFields struct{}

func NewPerRowFields() *PerRowFields {
	return &PerRowFields{}
}

func (l *PerRowFields) Variant() quote.Variant {
	return quote.PerRowFields
}

func (l *PerRowFields) CanHandle([]*html.Node) bool {
	return true
}

func (l *PerRowFields) Resolve(rows []*html.Node) quote.Resolution {
	return quote.Resolution{Rows: quote.FlatRows(rows)}
}
