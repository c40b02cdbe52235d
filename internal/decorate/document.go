// SPDX-License-Identifier: Apache-2.0

package decorate

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"golang.org/x/net/html"

	"github.com/edsblocks/quoteblock/internal/dom"
	"github.com/edsblocks/quoteblock/internal/quote"
)

// page is parsed markup, either a full document or a body fragment.
type page struct {
	nodes []*html.Node
}

func parsePage(markup string) (*page, error) {
	head := strings.ToLower(strings.TrimSpace(markup))
	if strings.HasPrefix(head, "<!doctype") || strings.HasPrefix(head, "<html") {
		doc, err := html.Parse(strings.NewReader(markup))
		if err != nil {
			return nil, fmt.Errorf("failed to parse document: %w", err)
		}
		return &page{nodes: []*html.Node{doc}}, nil
	}
	nodes, err := dom.ParseFragment(strings.NewReader(markup))
	if err != nil {
		return nil, err
	}
	return &page{nodes: nodes}, nil
}

// blocks returns every element carrying class. When none does, the first
// top-level element is taken as the block, so a bare block fragment works.
func (p *page) blocks(class string) []*html.Node {
	var out []*html.Node
	for _, n := range p.nodes {
		if n.Type == html.ElementNode && dom.HasClass(n, class) {
			out = append(out, n)
		}
		out = append(out, dom.Find(n, func(x *html.Node) bool { return dom.HasClass(x, class) })...)
	}
	if len(out) > 0 {
		return out
	}
	for _, n := range p.nodes {
		if n.Type == html.ElementNode {
			return []*html.Node{n}
		}
	}
	return nil
}

func (p *page) render() (string, error) {
	var buf bytes.Buffer
	for _, n := range p.nodes {
		if err := html.Render(&buf, n); err != nil {
			return "", fmt.Errorf("failed to render page: %w", err)
		}
	}
	return buf.String(), nil
}

// DecorateHTML decorates every block found in markup and returns the
// rewritten markup with one report per block.
func (d *Decorator) DecorateHTML(ctx context.Context, markup string) (string, []Report, error) {
	p, err := parsePage(markup)
	if err != nil {
		return "", nil, err
	}
	var reports []Report
	for _, block := range p.blocks(d.blockClass) {
		if err := ctx.Err(); err != nil {
			return "", nil, err
		}
		reports = append(reports, d.Decorate(block))
	}
	out, err := p.render()
	if err != nil {
		return "", nil, err
	}
	return out, reports, nil
}

// NormalizeHTML normalizes every block found in markup.
func (d *Decorator) NormalizeHTML(ctx context.Context, markup string) ([]quote.Result, error) {
	p, err := parsePage(markup)
	if err != nil {
		return nil, err
	}
	var results []quote.Result
	for _, block := range p.blocks(d.blockClass) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		results = append(results, d.Normalize(block))
	}
	return results, nil
}
