// SPDX-License-Identifier: Apache-2.0

package quote_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	"github.com/edsblocks/quoteblock/internal/dom"
	"github.com/edsblocks/quoteblock/internal/quote"
	"github.com/edsblocks/quoteblock/internal/quote/layouts"
)

func parseBlock(t *testing.T, markup string) *html.Node {
	t.Helper()
	nodes, err := dom.ParseFragment(strings.NewReader(markup))
	require.NoError(t, err)
	require.NotEmpty(t, nodes)
	return nodes[0]
}

type pair struct {
	quote  string
	author string
}

func pairs(items []quote.Item) []pair {
	out := make([]pair, 0, len(items))
	for _, it := range items {
		out = append(out, pair{quote: it.Quote, author: it.Author})
	}
	return out
}

const flatBlock = `<div class="quotes">` +
	`<div><div><p>A</p></div><div></div></div>` +
	`<div><div><p>B</p></div><div>X</div></div>` +
	`</div>`

func TestNormalize_Variants(t *testing.T) {
	n := quote.NewNormalizer(layouts.Default())

	tests := []struct {
		name        string
		markup      string
		wantVariant quote.Variant
		wantItems   []pair
		wantAuthor  string
		wantStyle   string
	}{
		{
			name:        "flat rows yield one item per row",
			markup:      flatBlock,
			wantVariant: quote.PerRowFields,
			wantItems:   []pair{{"<p>A</p>", ""}, {"<p>B</p>", "X"}},
		},
		{
			name: "wrapper rows are peeled",
			markup: `<div class="quotes">` +
				`<div><div class="quoteitem"><div><p>A</p></div><div>Ann</div></div></div>` +
				`<div><div class="quoteitem"><div><p>B</p></div><div>Bob</div></div></div>` +
				`</div>`,
			wantVariant: quote.WrapperIndirection,
			wantItems:   []pair{{"<p>A</p>", "Ann"}, {"<p>B</p>", "Bob"}},
		},
		{
			name: "single grouped row is split into its item wrappers",
			markup: `<div class="quotes"><div>` +
				`<div><div><p>A</p></div><div>Ann</div></div>` +
				`<div><div><p>B</p></div><div>Bob</div></div>` +
				`<div><div><p>C</p></div><div>Cy</div></div>` +
				`</div></div>`,
			wantVariant: quote.GroupedSingleRow,
			wantItems:   []pair{{"<p>A</p>", "Ann"}, {"<p>B</p>", "Bob"}, {"<p>C</p>", "Cy"}},
		},
		{
			name: "trailing author and style rows apply to the collection",
			markup: `<div class="quotes">` +
				`<div><div><p>A</p></div><div>Ann</div></div>` +
				`<div><div><p>B</p></div><div>Bob</div></div>` +
				`<div><div>Everyone</div></div>` +
				`<div><div>bg-blue</div></div>` +
				`</div>`,
			wantVariant: quote.TrailingMetadataRows,
			wantItems:   []pair{{"<p>A</p>", "Ann"}, {"<p>B</p>", "Bob"}},
			wantAuthor:  "Everyone",
			wantStyle:   "bg-blue",
		},
		{
			name: "block class wins over trailing style row",
			markup: `<div class="quotes bg-dark">` +
				`<div><div><p>A</p></div><div>Ann</div></div>` +
				`<div><div>Everyone</div></div>` +
				`<div><div>bg-blue</div></div>` +
				`</div>`,
			wantVariant: quote.TrailingMetadataRows,
			wantItems:   []pair{{"<p>A</p>", "Ann"}},
			wantAuthor:  "Everyone",
			wantStyle:   "bg-dark",
		},
		{
			name: "single-cell rows among others are items, not metadata",
			markup: `<div class="quotes">` +
				`<div><div><p>A</p></div></div>` +
				`<div><div><p>B</p></div><div>Bob</div></div>` +
				`<div><div><p>C</p></div></div>` +
				`</div>`,
			wantVariant: quote.PerRowFields,
			wantItems:   []pair{{"<p>A</p>", ""}, {"<p>B</p>", "Bob"}, {"<p>C</p>", ""}},
		},
		{
			name: "single-cell quote rows with a closing author row stay per-row items",
			markup: `<div class="quotes">` +
				`<div><div><p>A</p></div></div>` +
				`<div><div><p>B</p></div></div>` +
				`<div><div>Everyone</div></div>` +
				`</div>`,
			wantVariant: quote.PerRowFields,
			wantItems:   []pair{{"<p>A</p>", ""}, {"<p>B</p>", ""}, {"Everyone", ""}},
		},
		{
			name:        "row without children degrades to an empty item",
			markup:      `<div class="quotes"><div></div></div>`,
			wantVariant: quote.PerRowFields,
			wantItems:   []pair{{"", ""}},
		},
		{
			name:        "block without rows yields no items",
			markup:      `<div class="quotes bg-light"></div>`,
			wantVariant: quote.PerRowFields,
			wantItems:   []pair{},
			wantStyle:   "bg-light",
		},
		{
			name: "rich quote markup is preserved",
			markup: `<div class="quotes">` +
				`<div><div><p>Read <a href="/doc">the <em>docs</em></a></p></div><div> Ann </div></div>` +
				`<div><div><p>B</p></div><div>Bob</div></div>` +
				`</div>`,
			wantVariant: quote.PerRowFields,
			wantItems:   []pair{{`<p>Read <a href="/doc">the <em>docs</em></a></p>`, "Ann"}, {"<p>B</p>", "Bob"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := n.Normalize(parseBlock(t, tt.markup))

			assert.Equal(t, tt.wantVariant, res.Variant)
			assert.Equal(t, tt.wantItems, pairs(res.Items))
			assert.Equal(t, tt.wantAuthor, res.Author)
			assert.Equal(t, tt.wantStyle, res.Style)
		})
	}
}

func TestNormalize_GroupedMatchesFlat(t *testing.T) {
	n := quote.NewNormalizer(layouts.Default())

	grouped := n.Normalize(parseBlock(t, `<div class="quotes"><div data-aue-resource="urn:outer">`+
		`<div><div><p>A</p></div><div>Ann</div></div>`+
		`<div><div><p>B</p></div><div>Bob</div></div>`+
		`<div><div><p>C</p></div><div>Cy</div></div>`+
		`</div></div>`))
	flat := n.Normalize(parseBlock(t, `<div class="quotes">`+
		`<div><div><p>A</p></div><div>Ann</div></div>`+
		`<div><div><p>B</p></div><div>Bob</div></div>`+
		`<div><div><p>C</p></div><div>Cy</div></div>`+
		`</div>`))

	assert.Equal(t, pairs(flat.Items), pairs(grouped.Items))
	for _, it := range grouped.Items {
		_, ok := it.Meta.Row.Get("data-aue-resource")
		assert.False(t, ok, "outer row metadata must not reach items")
	}
}

func TestNormalize_SourceRowsFollowInputOrder(t *testing.T) {
	n := quote.NewNormalizer(layouts.Default())
	block := parseBlock(t, flatBlock)

	res := n.Normalize(block)
	rows := dom.Children(block)
	require.Len(t, res.Items, len(rows))
	for i, it := range res.Items {
		assert.Same(t, rows[i], it.SourceRow)
		assert.Same(t, dom.Children(rows[i])[0], it.QuoteNode)
	}
}

func TestNormalize_SnapshotsMetadata(t *testing.T) {
	n := quote.NewNormalizer(layouts.Default())
	block := parseBlock(t, `<div class="quotes">`+
		`<div class="row" data-aue-resource="urn:row0" data-aue-type="component">`+
		`<div data-aue-prop="quote" data-aue-type="richtext"><p>A</p></div>`+
		`<div data-richtext-prop="author">Ann</div>`+
		`</div></div>`)

	res := n.Normalize(block)
	// the snapshot must outlive the authored rows
	dom.RemoveChildren(block)

	require.Len(t, res.Items, 1)
	meta := res.Items[0].Meta
	assert.Equal(t, dom.Attrs{
		{Key: "data-aue-resource", Val: "urn:row0"},
		{Key: "data-aue-type", Val: "component"},
	}, meta.Row)
	assert.Equal(t, dom.Attrs{
		{Key: "data-aue-prop", Val: "quote"},
		{Key: "data-aue-type", Val: "richtext"},
	}, meta.Quote)
	assert.Equal(t, dom.Attrs{{Key: "data-richtext-prop", Val: "author"}}, meta.Author)
}

func TestNormalize_WrapperMetadataOverlaysRow(t *testing.T) {
	n := quote.NewNormalizer(layouts.Default())
	block := parseBlock(t, `<div class="quotes">`+
		`<div data-aue-resource="urn:row"><div data-aue-resource="urn:item" data-aue-label="Quote">`+
		`<div><p>A</p></div><div>Ann</div>`+
		`</div></div></div>`)

	res := n.Normalize(block)
	require.Len(t, res.Items, 1)
	assert.Equal(t, dom.Attrs{
		{Key: "data-aue-resource", Val: "urn:item"},
		{Key: "data-aue-label", Val: "Quote"},
	}, res.Items[0].Meta.Row)
}

func TestNormalize_CollectionAuthorMetadata(t *testing.T) {
	n := quote.NewNormalizer(layouts.Default())
	block := parseBlock(t, `<div class="quotes">`+
		`<div><div><p>A</p></div><div>Ann</div></div>`+
		`<div data-aue-resource="urn:byline"><div data-aue-prop="author">Everyone</div></div>`+
		`</div>`)

	res := n.Normalize(block)
	assert.Equal(t, quote.TrailingMetadataRows, res.Variant)
	assert.Equal(t, "Everyone", res.Author)
	assert.Equal(t, dom.Attrs{
		{Key: "data-aue-resource", Val: "urn:byline"},
		{Key: "data-aue-prop", Val: "author"},
	}, res.AuthorMeta)
}

func TestNormalize_EmptyItemsMode(t *testing.T) {
	markup := `<div class="quotes">` +
		`<div><div><p>A</p></div><div>Ann</div></div>` +
		`<div><div></div><div> </div></div>` +
		`</div>`

	retained := quote.NewNormalizer(layouts.Default()).Normalize(parseBlock(t, markup))
	assert.Len(t, retained.Items, 2)
	assert.True(t, retained.Items[1].Empty())

	dropped := quote.NewNormalizer(layouts.Default(), quote.WithEmptyItems(quote.DropEmpty)).Normalize(parseBlock(t, markup))
	assert.Equal(t, []pair{{"<p>A</p>", "Ann"}}, pairs(dropped.Items))
}

func TestNormalize_AuthorContent(t *testing.T) {
	markup := `<div class="quotes"><div><div><p>A</p></div><div><a href="/ann">Ann</a> Lee</div></div></div>`

	text := quote.NewNormalizer(layouts.Default()).Normalize(parseBlock(t, markup))
	require.Len(t, text.Items, 1)
	assert.Equal(t, "Ann Lee", text.Items[0].Author)

	rich := quote.NewNormalizer(layouts.Default(), quote.WithAuthorContent(quote.AuthorHTML)).Normalize(parseBlock(t, markup))
	require.Len(t, rich.Items, 1)
	assert.Equal(t, `<a href="/ann">Ann</a> Lee`, rich.Items[0].Author)
}

func TestNormalize_StylePrefix(t *testing.T) {
	block := `<div class="quotes theme-dark bg-light"></div>`

	assert.Equal(t, "bg-light", quote.NewNormalizer(nil).Normalize(parseBlock(t, block)).Style)
	assert.Equal(t, "theme-dark", quote.NewNormalizer(nil, quote.WithStylePrefix("theme-")).Normalize(parseBlock(t, block)).Style)
}

func TestNormalize_NoLayoutsFallsBackToFlatRows(t *testing.T) {
	res := quote.NewNormalizer(nil).Normalize(parseBlock(t, flatBlock))
	assert.Equal(t, quote.PerRowFields, res.Variant)
	assert.Len(t, res.Items, 2)
}

func TestNormalize_NilBlock(t *testing.T) {
	res := quote.NewNormalizer(layouts.Default()).Normalize(nil)
	assert.Empty(t, res.Items)
	assert.Empty(t, res.Style)
}

func TestNormalizer_RegisteredLayouts(t *testing.T) {
	n := quote.NewNormalizer(layouts.Default())
	assert.Equal(t, []quote.Variant{
		quote.GroupedSingleRow,
		quote.TrailingMetadataRows,
		quote.WrapperIndirection,
		quote.PerRowFields,
	}, n.RegisteredLayouts())
}
