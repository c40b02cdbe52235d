// SPDX-License-Identifier: Apache-2.0

package tool

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/edsblocks/quoteblock/internal/config"
	"github.com/edsblocks/quoteblock/internal/decorate"
	"github.com/edsblocks/quoteblock/internal/quote"
)

var quoteBlockInputSchema = map[string]interface{}{
	"type":     "object",
	"required": []string{"html"},
	"properties": map[string]interface{}{
		"html": map[string]interface{}{
			"type":        "string",
			"description": "Markup holding one or more quote blocks. A bare block fragment is accepted as is.",
		},
		"author_content": map[string]interface{}{
			"type":        "string",
			"description": "How bylines are read: text (default) keeps trimmed text, html keeps markup.",
			"enum":        []string{"text", "html"},
		},
		"empty_items": map[string]interface{}{
			"type":        "string",
			"description": "Whether items with neither quote nor author are kept (retain, default) or dropped (drop).",
			"enum":        []string{"retain", "drop"},
		},
	},
}

// MetadataNormalizeQuoteBlock describes the normalize_quote_block tool.
var MetadataNormalizeQuoteBlock = &mcp.Tool{
	Name: "normalize_quote_block",
	Description: "Read authored quote blocks and return their normalized quote/author records. " +
		"The detected authoring shape is reported per block, together with the style token, " +
		"the collection byline and the editor metadata found on each source row.",
	InputSchema: quoteBlockInputSchema,
}

// MetadataDecorateQuoteBlock describes the decorate_quote_block tool.
var MetadataDecorateQuoteBlock = &mcp.Tool{
	Name: "decorate_quote_block",
	Description: "Rebuild authored quote blocks into their presentation markup and relay editor " +
		"metadata from the authored rows onto the rebuilt items.",
	InputSchema: quoteBlockInputSchema,
}

// InputQuoteBlock is the input shared by both quote block tools.
type InputQuoteBlock struct {
	HTML          string `json:"html"`
	AuthorContent string `json:"author_content"`
	EmptyItems    string `json:"empty_items"`
}

// ItemView is one normalized item as returned by normalize_quote_block.
type ItemView struct {
	Index    int               `json:"index"`
	Quote    string            `json:"quote"`
	Author   string            `json:"author"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

// BlockView is one normalized block.
type BlockView struct {
	Variant string     `json:"variant"`
	Style   string     `json:"style,omitempty"`
	Author  string     `json:"author,omitempty"`
	Items   []ItemView `json:"items"`
}

// OutputNormalizeQuoteBlock is the output for the NormalizeQuoteBlock tool.
type OutputNormalizeQuoteBlock struct {
	Blocks []BlockView `json:"blocks"`
}

// OutputDecorateQuoteBlock is the output for the DecorateQuoteBlock tool.
type OutputDecorateQuoteBlock struct {
	// HTML is the rewritten markup.
	HTML    string            `json:"html"`
	Reports []decorate.Report `json:"reports"`
}

// Handlers serves the quote block tools from a base configuration, usually
// the one the server was started with.
type Handlers struct {
	cfg    config.Config
	logger *slog.Logger
}

// NewHandlers creates Handlers. A nil logger falls back to slog.Default().
func NewHandlers(cfg config.Config, logger *slog.Logger) *Handlers {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handlers{cfg: cfg, logger: logger}
}

// decorator layers the per-call overrides on the base config and wires a
// Decorator from the result.
func (h *Handlers) decorator(input InputQuoteBlock) (*decorate.Decorator, error) {
	if input.HTML == "" {
		return nil, fmt.Errorf("html is required")
	}
	cfg := h.cfg
	if input.AuthorContent != "" {
		cfg.AuthorContent = input.AuthorContent
	}
	if input.EmptyItems != "" {
		cfg.EmptyItems = input.EmptyItems
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return decorate.FromConfig(cfg, h.logger), nil
}

// NormalizeQuoteBlock returns the normalized records of every block in the input.
func (h *Handlers) NormalizeQuoteBlock(ctx context.Context, _ *mcp.CallToolRequest, input InputQuoteBlock) (*mcp.CallToolResult, OutputNormalizeQuoteBlock, error) {
	d, err := h.decorator(input)
	if err != nil {
		return nil, OutputNormalizeQuoteBlock{}, err
	}
	results, err := d.NormalizeHTML(ctx, input.HTML)
	if err != nil {
		return nil, OutputNormalizeQuoteBlock{}, err
	}

	out := OutputNormalizeQuoteBlock{Blocks: make([]BlockView, 0, len(results))}
	for _, res := range results {
		out.Blocks = append(out.Blocks, blockView(res))
	}
	return nil, out, nil
}

// DecorateQuoteBlock rewrites every block in the input.
func (h *Handlers) DecorateQuoteBlock(ctx context.Context, _ *mcp.CallToolRequest, input InputQuoteBlock) (*mcp.CallToolResult, OutputDecorateQuoteBlock, error) {
	d, err := h.decorator(input)
	if err != nil {
		return nil, OutputDecorateQuoteBlock{}, err
	}
	markup, reports, err := d.DecorateHTML(ctx, input.HTML)
	if err != nil {
		return nil, OutputDecorateQuoteBlock{}, err
	}
	return nil, OutputDecorateQuoteBlock{HTML: markup, Reports: reports}, nil
}

func blockView(res quote.Result) BlockView {
	view := BlockView{
		Variant: string(res.Variant),
		Style:   res.Style,
		Author:  res.Author,
		Items:   make([]ItemView, 0, len(res.Items)),
	}
	for i, it := range res.Items {
		item := ItemView{Index: i, Quote: it.Quote, Author: it.Author}
		if len(it.Meta.Row) > 0 {
			item.Metadata = make(map[string]string, len(it.Meta.Row))
			for _, a := range it.Meta.Row {
				item.Metadata[a.Key] = a.Val
			}
		}
		view.Items = append(view.Items, item)
	}
	return view
}

// Register adds the quote block tools to server, serving them from cfg.
func Register(server *mcp.Server, cfg config.Config, logger *slog.Logger) {
	h := NewHandlers(cfg, logger)
	mcp.AddTool(server, MetadataNormalizeQuoteBlock, h.NormalizeQuoteBlock)
	mcp.AddTool(server, MetadataDecorateQuoteBlock, h.DecorateQuoteBlock)
}
