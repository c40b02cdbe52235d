// SPDX-License-Identifier: Apache-2.0

// Package layouts holds one detector per authoring shape of the quote block.
package layouts

import "github.com/edsblocks/quoteblock/internal/quote"

// Default returns the detectors in priority order. More specific shapes come
// first; PerRowFields accepts anything and must stay last.
func Default() []quote.Layout {
	return []quote.Layout{
		NewGroupedSingleRow(),
		NewTrailingMetadataRows(),
		NewWrapperIndirection(),
		NewPerRowFields(),
	}
}
