package token

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogTerminalsUnique(t *testing.T) {
	terms := Default().Terminals()
	seen := make(map[string]struct{}, len(terms))
	for _, term := range terms {
		_, dup := seen[term]
		require.False(t, dup, "terminal %s declared twice", term)
		seen[term] = struct{}{}
	}
}

func TestCatalogContents(t *testing.T) {
	c := Default()
	terms := c.Terminals()
	set := make(map[string]struct{}, len(terms))
	for _, term := range terms {
		set[term] = struct{}{}
	}

	for _, want := range []string{
		Document, DocumentEnd, PageBreak,
		"<text>", "</text>", "<title>", "</title>",
		"<section_header_level_1>", "</section_header_level_6>",
		"<loc_0>", "<loc_499>",
		Table, TableEnd, RowBreak, "<fcel>", "<xcel>",
		Code, CodeEnd, "<_Python_>", "<_unknown_>",
		Picture, PictureEnd, "<other>", "<pie_chart>",
		Smiles, SmilesEnd,
		OrderedList, UnorderedListEnd, ListItem, ListItemEnd,
		Inline, InlineEnd, Caption, CaptionEnd,
	} {
		_, found := set[want]
		assert.True(t, found, "catalog misses %s", want)
	}

	_, found := set["<loc_500>"]
	assert.False(t, found)
}

func TestCatalogLocationCount(t *testing.T) {
	c := New(10)
	locs := c.LocationTags()
	require.Len(t, locs, 10)
	assert.Equal(t, "<loc_0>", locs[0])
	assert.Equal(t, "<loc_9>", locs[9])
}

func TestTextLabels(t *testing.T) {
	labels := Default().TextLabels()
	assert.Contains(t, labels, "caption")
	assert.Contains(t, labels, "formula")
	headers := 0
	for _, l := range labels {
		if strings.HasPrefix(l, "section_header_level_") {
			headers++
		}
	}
	assert.Equal(t, SectionHeaderLevels, headers)
}

func TestTagHelpers(t *testing.T) {
	assert.Equal(t, "<text>", Open("text"))
	assert.Equal(t, "</text>", Close("text"))
	assert.Equal(t, "<loc_42>", Location(42))
}
