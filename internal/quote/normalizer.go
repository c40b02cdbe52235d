// SPDX-License-Identifier: Apache-2.0

package quote

import (
	"io"
	"log/slog"
	"strings"

	"golang.org/x/net/html"

	"github.com/edsblocks/quoteblock/internal/dom"
)

// EmptyItems selects what happens to items with neither quote nor author.
type EmptyItems string

const (
	// RetainEmpty keeps them, so a freshly inserted row still gets a container.
	RetainEmpty EmptyItems = "retain"
	// DropEmpty removes them, for read-only views.
	DropEmpty EmptyItems = "drop"
)

const (
	DefaultStylePrefix = "bg-"
)

// DefaultMetadataPrefixes are the attribute families owned by the editor.
var DefaultMetadataPrefixes = []string{"data-aue-", "data-richtext-"}

// Normalizer turns a block's rows into ordered items.
type Normalizer struct {
	layouts       []Layout
	stylePrefix   string
	prefixes      []string
	authorContent AuthorContent
	emptyItems    EmptyItems
	logger        *slog.Logger
}

// Option configures a Normalizer.
type Option func(*Normalizer)

// WithStylePrefix sets the class prefix that marks a style token. Defaults
// to DefaultStylePrefix.
func WithStylePrefix(prefix string) Option {
	return func(n *Normalizer) {
		n.stylePrefix = prefix
	}
}

// WithMetadataPrefixes sets the attribute prefixes captured for the relay.
func WithMetadataPrefixes(prefixes ...string) Option {
	return func(n *Normalizer) {
		n.prefixes = prefixes
	}
}

// WithAuthorContent selects whether author fields are read as text or markup.
func WithAuthorContent(mode AuthorContent) Option {
	return func(n *Normalizer) {
		n.authorContent = mode
	}
}

// WithEmptyItems selects whether items with neither quote nor author are kept.
func WithEmptyItems(mode EmptyItems) Option {
	return func(n *Normalizer) {
		n.emptyItems = mode
	}
}

// WithLogger sets the logger for layout selection. Defaults to a discard logger.
func WithLogger(logger *slog.Logger) Option {
	return func(n *Normalizer) {
		n.logger = logger
	}
}

// NewNormalizer creates a Normalizer trying layouts in the given order.
// Rows no layout accepts are read as flat per-row fields.
func NewNormalizer(layouts []Layout, opts ...Option) *Normalizer {
	n := &Normalizer{
		layouts:       layouts,
		stylePrefix:   DefaultStylePrefix,
		prefixes:      DefaultMetadataPrefixes,
		authorContent: AuthorText,
		emptyItems:    RetainEmpty,
	}
	for _, opt := range opts {
		opt(n)
	}
	if n.logger == nil {
		n.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return n
}

// Normalize reads block without modifying it. Malformed rows degrade to
// empty or partial items; there is no error path.
func (n *Normalizer) Normalize(block *html.Node) Result {
	rows := dom.Children(block)

	variant := PerRowFields
	var res Resolution
	if layout := n.selectLayout(rows); layout != nil {
		variant = layout.Variant()
		res = layout.Resolve(rows)
	} else {
		res = Resolution{Rows: FlatRows(rows)}
	}

	reader := fieldReader{authorContent: n.authorContent, prefixes: n.prefixes}
	items := make([]Item, 0, len(res.Rows))
	for i, row := range res.Rows {
		item := reader.item(row)
		if n.emptyItems == DropEmpty && item.Empty() {
			n.logger.Debug("dropping empty quote item", "row", i)
			continue
		}
		items = append(items, item)
	}

	out := Result{
		Variant: variant,
		Items:   items,
		Style:   n.style(block, res.Style),
	}
	out.Author, out.AuthorMeta = reader.collectionAuthor(res.Author)

	n.logger.Debug("normalized quote block",
		"variant", variant,
		"rows", len(rows),
		"items", len(items),
		"style", out.Style,
	)
	return out
}

// selectLayout returns the first registered layout that accepts rows.
func (n *Normalizer) selectLayout(rows []*html.Node) Layout {
	for _, l := range n.layouts {
		if l.CanHandle(rows) {
			return l
		}
	}
	return nil
}

// style prefers the block's own class list over a trailing style row.
func (n *Normalizer) style(block *html.Node, styleRow *html.Node) string {
	if n.stylePrefix != "" {
		for _, c := range dom.ClassList(block) {
			if strings.HasPrefix(c, n.stylePrefix) {
				return c
			}
		}
	}
	return styleToken(styleRow)
}

// RegisteredLayouts returns the variants in detection order.
func (n *Normalizer) RegisteredLayouts() []Variant {
	names := make([]Variant, len(n.layouts))
	for i, l := range n.layouts {
		names[i] = l.Variant()
	}
	return names
}
