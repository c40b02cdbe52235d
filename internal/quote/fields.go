// SPDX-License-Identifier: Apache-2.0

package quote

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/edsblocks/quoteblock/internal/dom"
)

// AuthorContent selects how bylines are read.
type AuthorContent string

const (
	// AuthorText keeps trimmed text only.
	AuthorText AuthorContent = "text"
	// AuthorHTML keeps the byline markup.
	AuthorHTML AuthorContent = "html"
)

// fieldReader turns resolved rows into items. Missing cells read as empty.
type fieldReader struct {
	authorContent AuthorContent
	prefixes      []string
}

func (f fieldReader) item(row Row) Item {
	var quoteNode, authorNode *html.Node
	if len(row.Fields) > 0 {
		quoteNode = row.Fields[0]
	}
	if len(row.Fields) > 1 {
		authorNode = row.Fields[1]
	}

	return Item{
		Quote:      strings.TrimSpace(dom.InnerHTML(quoteNode)),
		Author:     f.author(authorNode),
		SourceRow:  row.Source,
		QuoteNode:  quoteNode,
		AuthorNode: authorNode,
		Meta: Instrumentation{
			Row:    dom.Capture(row.Source, f.prefixes).Merge(dom.Capture(row.Wrapper, f.prefixes)),
			Quote:  dom.Capture(quoteNode, f.prefixes),
			Author: dom.Capture(authorNode, f.prefixes),
		},
	}
}

func (f fieldReader) author(n *html.Node) string {
	if n == nil {
		return ""
	}
	if f.authorContent == AuthorHTML {
		return strings.TrimSpace(dom.InnerHTML(n))
	}
	return strings.TrimSpace(dom.TextContent(n))
}

// collectionAuthor reads a trailing author row together with its single cell,
// the cell's metadata winning.
func (f fieldReader) collectionAuthor(row *html.Node) (string, dom.Attrs) {
	if row == nil {
		return "", nil
	}
	meta := dom.Capture(row, f.prefixes)
	cell := row
	if cells := dom.Children(row); len(cells) == 1 {
		cell = cells[0]
		meta = meta.Merge(dom.Capture(cell, f.prefixes))
	}
	return f.author(cell), meta
}

// styleToken reads the first word of a trailing style row.
func styleToken(row *html.Node) string {
	words := strings.Fields(dom.TextContent(row))
	if len(words) == 0 {
		return ""
	}
	return words[0]
}
