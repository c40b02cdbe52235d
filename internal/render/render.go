// SPDX-License-Identifier: Apache-2.0

// Package render builds the presentation fragment for a normalized quote
// block. Every item gets exactly one container, tagged with its position.
package render

import (
	"strconv"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/edsblocks/quoteblock/internal/dom"
	"github.com/edsblocks/quoteblock/internal/quote"
)

const (
	ContainerClass = "quote-container"
	ListClass      = "quotes-list"
	ItemClass      = "quote-item"
)

// Renderer produces a fresh, detached tree on every call.
type Renderer struct {
	authorContent quote.AuthorContent
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithAuthorContent must match the mode the items were normalized with.
func WithAuthorContent(mode quote.AuthorContent) Option {
	return func(r *Renderer) {
		r.authorContent = mode
	}
}

// New returns a Renderer emitting plain-text bylines.
func New(opts ...Option) *Renderer {
	r := &Renderer{authorContent: quote.AuthorText}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render returns the root of the new fragment. Items are emitted in order;
// a byline is only rendered for a non-empty author.
func (r *Renderer) Render(res quote.Result) *html.Node {
	rootClass := ContainerClass
	if res.Style != "" {
		rootClass += " " + res.Style
	}
	root := dom.Element(atom.Div, html.Attribute{Key: "class", Val: rootClass})
	list := dom.Element(atom.Div, html.Attribute{Key: "class", Val: ListClass})
	root.AppendChild(list)

	for i, item := range res.Items {
		container := dom.Element(atom.Div,
			html.Attribute{Key: "class", Val: ItemClass},
			html.Attribute{Key: quote.IndexAttr, Val: strconv.Itoa(i)},
		)
		body := dom.Element(atom.Blockquote, html.Attribute{Key: quote.FieldAttr, Val: quote.FieldQuote})
		dom.AppendFragment(body, item.Quote)
		container.AppendChild(body)
		if item.Author != "" {
			container.AppendChild(r.byline(item.Author, quote.FieldAuthor))
		}
		list.AppendChild(container)
	}

	if res.Author != "" {
		root.AppendChild(r.byline(res.Author, quote.FieldCollectionAuthor))
	}
	return root
}

func (r *Renderer) byline(author, field string) *html.Node {
	cite := dom.Element(atom.Cite, html.Attribute{Key: quote.FieldAttr, Val: field})
	cite.AppendChild(dom.Text("- "))
	if r.authorContent == quote.AuthorHTML {
		dom.AppendFragment(cite, author)
	} else {
		cite.AppendChild(dom.Text(author))
	}
	return cite
}
