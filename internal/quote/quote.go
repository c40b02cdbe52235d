// SPDX-License-Identifier: Apache-2.0

package quote

import (
	"golang.org/x/net/html"

	"github.com/edsblocks/quoteblock/internal/dom"
)

// Variant names the row-nesting shape a block was authored in.
type Variant string

const (
	PerRowFields         Variant = "per-row-fields"
	WrapperIndirection   Variant = "wrapper-indirection"
	GroupedSingleRow     Variant = "grouped-single-row"
	TrailingMetadataRows Variant = "trailing-metadata-rows"
)

// Markers shared between the renderer and the relay. The index marker is the
// only join key between items and rendered containers.
const (
	IndexAttr = "data-quote-index"
	FieldAttr = "data-quote-field"

	FieldQuote            = "quote"
	FieldAuthor           = "author"
	FieldCollectionAuthor = "collection-author"
)

// Row is one item as authored, after any wrapper layer has been peeled.
type Row struct {
	// Source is the node the editor addresses as the item.
	Source *html.Node
	// Wrapper is the peeled intermediate node, nil for flat rows.
	Wrapper *html.Node
	// Fields holds the field cells: quote first, author second.
	Fields []*html.Node
}

// Resolution is what a Layout makes of the block's rows.
type Resolution struct {
	Rows []Row
	// Author and Style are whole-collection metadata rows, nil when absent.
	Author *html.Node
	Style  *html.Node
}

// Layout recognises one authoring shape. Detection must look at node shape
// only, never at content.
type Layout interface {
	Variant() Variant
	CanHandle(rows []*html.Node) bool
	Resolve(rows []*html.Node) Resolution
}

// Instrumentation is the editor metadata captured for one item before the
// block is rebuilt.
type Instrumentation struct {
	Row    dom.Attrs
	Quote  dom.Attrs
	Author dom.Attrs
}

// Item is a normalized quote record.
type Item struct {
	Quote  string `json:"quote" yaml:"quote"`
	Author string `json:"author" yaml:"author"`

	// SourceRow is a weak reference to the authored row; the block owns it.
	SourceRow  *html.Node      `json:"-" yaml:"-"`
	QuoteNode  *html.Node      `json:"-" yaml:"-"`
	AuthorNode *html.Node      `json:"-" yaml:"-"`
	Meta       Instrumentation `json:"-" yaml:"-"`
}

// Empty reports whether both quote and author are blank.
func (it Item) Empty() bool {
	return it.Quote == "" && it.Author == ""
}

// Result is the output of one normalization.
type Result struct {
	Variant Variant `json:"variant" yaml:"variant"`
	Items   []Item  `json:"items" yaml:"items"`
	Style   string  `json:"style,omitempty" yaml:"style,omitempty"`
	// Author is the collection-wide byline from a trailing metadata row.
	Author     string    `json:"author,omitempty" yaml:"author,omitempty"`
	AuthorMeta dom.Attrs `json:"-" yaml:"-"`
}
