// SPDX-License-Identifier: Apache-2.0

package decorate

import (
	"log/slog"

	"github.com/edsblocks/quoteblock/internal/config"
	"github.com/edsblocks/quoteblock/internal/quote"
	"github.com/edsblocks/quoteblock/internal/quote/layouts"
	"github.com/edsblocks/quoteblock/internal/relay"
	"github.com/edsblocks/quoteblock/internal/render"
)

// FromConfig wires a Decorator from validated settings.
func FromConfig(cfg config.Config, logger *slog.Logger) *Decorator {
	if logger == nil {
		logger = slog.Default()
	}
	authorContent := quote.AuthorContent(cfg.AuthorContent)
	return New(
		WithLogger(logger),
		WithBlockClass(cfg.BlockClass),
		WithNormalizer(quote.NewNormalizer(layouts.Default(),
			quote.WithStylePrefix(cfg.StylePrefix),
			quote.WithMetadataPrefixes(cfg.MetadataPrefixes...),
			quote.WithAuthorContent(authorContent),
			quote.WithEmptyItems(quote.EmptyItems(cfg.EmptyItems)),
			quote.WithLogger(logger),
		)),
		WithRenderer(render.New(render.WithAuthorContent(authorContent))),
		WithRelay(relay.New(
			relay.WithMetadataPrefixes(cfg.MetadataPrefixes...),
			relay.WithLogger(logger),
		)),
	)
}
