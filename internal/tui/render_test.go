package tui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/wordbook/internal/dictionary"
	"github.com/alexisbeaulieu97/wordbook/internal/theme"
)

func TestRenderEntryFallsBackToTopLevelPhonetic(t *testing.T) {
	t.Parallel()

	e := dictionary.WordEntry{
		Word:      "hello",
		Phonetic:  "/həˈloʊ/",
		Phonetics: []dictionary.Phonetic{{Audio: ""}},
	}
	out := RenderEntry(theme.StylesFor(theme.Light), e)
	assert.Contains(t, out, "Phonetic:")
	assert.Contains(t, out, "/həˈloʊ/")
	assert.NotContains(t, out, "Audio:")
}

func TestRenderEntriesOneBlockPerEntry(t *testing.T) {
	t.Parallel()

	entries := []dictionary.WordEntry{{Word: "bank"}, {Word: "bank"}}
	out := RenderEntries(theme.StylesFor(theme.Dark), entries, -1)
	assert.Equal(t, 2, strings.Count(out, "bank"))
	assert.NotContains(t, out, "Add to favorites")

	out = RenderEntries(theme.StylesFor(theme.Dark), entries, 1)
	assert.Equal(t, 1, strings.Count(out, "Add to favorites"))
}

func TestFavoriteBlocksIncludeExamples(t *testing.T) {
	t.Parallel()

	favs := []dictionary.WordEntry{{
		Word: "kitten",
		Meanings: []dictionary.Meaning{{
			PartOfSpeech: "noun",
			Definitions: []dictionary.Definition{
				{Definition: "A young cat.", Example: "The kitten purred."},
				{Definition: "A young rabbit."},
			},
		}},
	}}

	blocks := favoriteBlocks(theme.StylesFor(theme.Light), favs, -1)
	require.Len(t, blocks, 1)
	assert.Contains(t, blocks[0], "- A young cat.")
	assert.Contains(t, blocks[0], "- A young rabbit.")
	assert.Equal(t, 1, strings.Count(blocks[0], "Example:"))
	assert.NotContains(t, blocks[0], "[d] Delete")

	blocks = favoriteBlocks(theme.StylesFor(theme.Light), favs, 0)
	assert.Contains(t, blocks[0], "[d] Delete")
}

func TestLayoutBlocksSpans(t *testing.T) {
	t.Parallel()

	content, spans := layoutBlocks(40, []string{"a\nb", "c", "d\ne\nf"}, 1)
	assert.Equal(t, []span{{start: 0, end: 1}, {start: 3, end: 3}, {start: 5, end: 7}}, spans)
	assert.Equal(t, 8, strings.Count(content, "\n")+1)
}

func TestRenderNotFound(t *testing.T) {
	t.Parallel()

	out := RenderNotFound(theme.StylesFor(theme.Light), dictionary.DefaultNotFound())
	assert.Contains(t, out, "No Definitions Found")
	assert.Contains(t, out, "try the search again")
}
