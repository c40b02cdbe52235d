// SPDX-License-Identifier: Apache-2.0

// Package decorate runs one decoration pass per quote block: normalize,
// render, replace the block's children, then relay editor metadata.
package decorate

import (
	"io"
	"log/slog"

	"golang.org/x/net/html"

	"github.com/edsblocks/quoteblock/internal/dom"
	"github.com/edsblocks/quoteblock/internal/quote"
	"github.com/edsblocks/quoteblock/internal/quote/layouts"
	"github.com/edsblocks/quoteblock/internal/relay"
	"github.com/edsblocks/quoteblock/internal/render"
)

// Renderer builds the presentation fragment. It must emit one container per
// item, in item order, tagged with quote.IndexAttr.
type Renderer interface {
	Render(res quote.Result) *html.Node
}

// Report describes one decorated block.
type Report struct {
	Variant quote.Variant `json:"variant" yaml:"variant"`
	Items   int           `json:"items" yaml:"items"`
	Style   string        `json:"style,omitempty" yaml:"style,omitempty"`
	Relay   relay.Report  `json:"relay" yaml:"relay"`
}

// Decorator applies the normalize, render and relay steps to quote blocks.
type Decorator struct {
	normalizer *quote.Normalizer
	renderer   Renderer
	relay      *relay.Relay
	blockClass string
	logger     *slog.Logger
}

// Option configures a Decorator.
type Option func(*Decorator)

// WithNormalizer replaces the default normalizer, which tries every built-in layout.
func WithNormalizer(n *quote.Normalizer) Option {
	return func(d *Decorator) {
		d.normalizer = n
	}
}

// WithRenderer replaces the built-in renderer.
func WithRenderer(r Renderer) Option {
	return func(d *Decorator) {
		d.renderer = r
	}
}

// WithRelay replaces the default metadata relay.
func WithRelay(r *relay.Relay) Option {
	return func(d *Decorator) {
		d.relay = r
	}
}

// WithBlockClass sets the class that marks quote blocks inside a document.
func WithBlockClass(class string) Option {
	return func(d *Decorator) {
		d.blockClass = class
	}
}

// WithLogger sets the logger shared with default collaborators.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Decorator) {
		d.logger = logger
	}
}

// DefaultBlockClass marks quote blocks in a page.
const DefaultBlockClass = "quotes"

// New creates a Decorator. Collaborators that are not supplied get their
// defaults, sharing the decorator's logger.
func New(opts ...Option) *Decorator {
	d := &Decorator{blockClass: DefaultBlockClass}
	for _, opt := range opts {
		opt(d)
	}
	if d.logger == nil {
		d.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if d.normalizer == nil {
		d.normalizer = quote.NewNormalizer(layouts.Default(), quote.WithLogger(d.logger))
	}
	if d.renderer == nil {
		d.renderer = render.New()
	}
	if d.relay == nil {
		d.relay = relay.New(relay.WithLogger(d.logger))
	}
	return d
}

// Normalize reads block without touching it.
func (d *Decorator) Normalize(block *html.Node) quote.Result {
	return d.normalizer.Normalize(block)
}

// Decorate rebuilds block in place. Metadata is snapshotted during
// normalization, so clearing the old rows before the relay is safe.
func (d *Decorator) Decorate(block *html.Node) Report {
	res := d.normalizer.Normalize(block)
	rep := Report{Variant: res.Variant, Items: len(res.Items), Style: res.Style}

	fragment := d.renderer.Render(res)
	if fragment == nil {
		d.logger.Warn("renderer produced no fragment, leaving block untouched", "variant", res.Variant)
		return rep
	}

	dom.RemoveChildren(block)
	block.AppendChild(fragment)

	rep.Relay = d.relay.Apply(res.Items, fragment)
	rep.Relay.Attributes += d.relay.ApplyCollection(res.AuthorMeta, fragment)

	d.logger.Info("decorated quote block",
		"variant", rep.Variant,
		"items", rep.Items,
		"bound", rep.Relay.Bound,
		"skipped", rep.Relay.Skipped,
	)
	return rep
}
