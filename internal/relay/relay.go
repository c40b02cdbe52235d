// SPDX-License-Identifier: Apache-2.0

// Package relay copies editor metadata from the authored rows of a quote
// block onto the containers rendered for them.
package relay

import (
	"io"
	"log/slog"
	"strconv"

	"golang.org/x/net/html"

	"github.com/edsblocks/quoteblock/internal/dom"
	"github.com/edsblocks/quoteblock/internal/quote"
)

// Relay joins items to rendered containers by their index marker only.
type Relay struct {
	prefixes []string
	logger   *slog.Logger
}

// Option configures a Relay.
type Option func(*Relay)

// WithMetadataPrefixes sets the prefixes used when an item carries no
// snapshot and metadata has to be read from its live source nodes.
func WithMetadataPrefixes(prefixes ...string) Option {
	return func(r *Relay) {
		r.prefixes = prefixes
	}
}

// WithLogger sets the logger for join mismatches. Defaults to a discard logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Relay) {
		r.logger = logger
	}
}

// New returns a Relay reading the default editor prefixes.
func New(opts ...Option) *Relay {
	r := &Relay{prefixes: quote.DefaultMetadataPrefixes}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil {
		r.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return r
}

// Report summarises one relay pass.
type Report struct {
	// Bound is the number of containers matched to an item.
	Bound int `json:"bound" yaml:"bound"`
	// Skipped counts containers with a missing, malformed or out of range index.
	Skipped int `json:"skipped" yaml:"skipped"`
	// Unmatched counts items no container pointed at.
	Unmatched int `json:"unmatched" yaml:"unmatched"`
	// Attributes is the number of attribute writes performed.
	Attributes int `json:"attributes" yaml:"attributes"`
}

// Apply instruments every outermost indexed container below root (root
// included). Field regions are the container's direct children.
// Mismatches skip the affected container only. Values are overwritten, so
// running Apply twice leaves the same attributes as running it once.
func (r *Relay) Apply(items []quote.Item, root *html.Node) Report {
	var rep Report
	seen := make([]bool, len(items))

	for _, c := range containers(root) {
		raw, _ := dom.Attr(c, quote.IndexAttr)
		idx, err := strconv.Atoi(raw)
		if err != nil || idx < 0 || idx >= len(items) {
			r.logger.Debug("no item for rendered container", "index", raw, "items", len(items))
			rep.Skipped++
			continue
		}
		rep.Attributes += r.bind(items[idx], c)
		rep.Bound++
		seen[idx] = true
	}

	for i, ok := range seen {
		if !ok {
			r.logger.Debug("no rendered container for item", "index", i)
			rep.Unmatched++
		}
	}
	return rep
}

// ApplyCollection instruments the collection byline, if one was rendered as
// a direct child of root.
func (r *Relay) ApplyCollection(meta dom.Attrs, root *html.Node) int {
	target := field(root, quote.FieldCollectionAuthor)
	if target == nil {
		return 0
	}
	return meta.ApplyTo(target)
}

func (r *Relay) bind(item quote.Item, container *html.Node) int {
	meta := r.snapshot(item)
	written := meta.Row.ApplyTo(container)
	if n := field(container, quote.FieldQuote); n != nil {
		written += meta.Quote.ApplyTo(n)
	}
	if n := field(container, quote.FieldAuthor); n != nil {
		written += meta.Author.ApplyTo(n)
	}
	return written
}

// snapshot prefers metadata captured at normalize time and falls back to the
// live source nodes for items built elsewhere.
func (r *Relay) snapshot(item quote.Item) quote.Instrumentation {
	meta := item.Meta
	if meta.Row == nil {
		meta.Row = dom.Capture(item.SourceRow, r.prefixes)
	}
	if meta.Quote == nil {
		meta.Quote = dom.Capture(item.QuoteNode, r.prefixes)
	}
	if meta.Author == nil {
		meta.Author = dom.Capture(item.AuthorNode, r.prefixes)
	}
	return meta
}

func isContainer(n *html.Node) bool {
	_, ok := dom.Attr(n, quote.IndexAttr)
	return ok
}

// containers collects the outermost indexed elements at or below root. The
// walk stops at each container, so markers inside authored quote markup are
// never taken for containers.
func containers(root *html.Node) []*html.Node {
	if root == nil {
		return nil
	}
	if root.Type == html.ElementNode && isContainer(root) {
		return []*html.Node{root}
	}
	var out []*html.Node
	for _, c := range dom.Children(root) {
		out = append(out, containers(c)...)
	}
	return out
}

// field looks at the direct children of parent only, for the same reason.
func field(parent *html.Node, name string) *html.Node {
	for _, c := range dom.Children(parent) {
		if v, _ := dom.Attr(c, quote.FieldAttr); v == name {
			return c
		}
	}
	return nil
}
