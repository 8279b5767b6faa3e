package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/wordbook/internal/dictionary"
	"github.com/alexisbeaulieu97/wordbook/internal/theme"
)

// FavoritesLabel heads the favorites pane whether or not it has entries.
const FavoritesLabel = "Favorites"

// RenderEntry renders one result block: the word as heading, phonetic and
// audio lines when the entry has phonetics, origin, then every meaning.
func RenderEntry(st theme.Styles, e dictionary.WordEntry) string {
	lines := []string{st.Word.Render(e.Word)}

	if e.HasPhonetics() {
		text := e.PhoneticText()
		if text == "" {
			text = e.Phonetic
		}
		lines = append(lines, field(st, "Phonetic:", text))
		if audio := e.AudioURL(); audio != "" {
			lines = append(lines, field(st, "Audio:", st.Link.Render("▶ "+audio)))
		}
	}

	if e.Origin != "" {
		lines = append(lines, field(st, "Origin:", e.Origin))
	}

	for _, meaning := range e.Meanings {
		lines = append(lines, field(st, "Part of Speech:", meaning.PartOfSpeech))
		for _, d := range meaning.Definitions {
			lines = append(lines, "  "+field(st, "Definition:", d.Definition))
			if d.Example != "" {
				lines = append(lines, "  "+field(st, "Example:", d.Example))
			}
		}
	}

	return strings.Join(lines, "\n")
}

// RenderEntries renders every entry, highlighting the one at selected.
// Pass a negative selected to highlight nothing.
func RenderEntries(st theme.Styles, entries []dictionary.WordEntry, selected int) string {
	return strings.Join(entryBlocks(st, entries, selected), "\n\n")
}

func entryBlocks(st theme.Styles, entries []dictionary.WordEntry, selected int) []string {
	blocks := make([]string, 0, len(entries))
	for i, e := range entries {
		block := RenderEntry(st, e)
		if i == selected {
			block = st.Selected.Render(block + "\n" + st.Muted.Render("[a] Add to favorites"))
		}
		blocks = append(blocks, block)
	}
	return blocks
}

// RenderNotFound renders the service's "no definitions" payload.
func RenderNotFound(st theme.Styles, p dictionary.ErrorPayload) string {
	lines := []string{st.Error.Render(p.Title)}
	if p.Message != "" {
		lines = append(lines, st.Value.Render(p.Message))
	}
	if p.Resolution != "" {
		lines = append(lines, st.Muted.Render(p.Resolution))
	}
	return strings.Join(lines, "\n")
}

// favoriteBlocks renders one block per saved entry: the word as heading, then
// each definition with its example.
func favoriteBlocks(st theme.Styles, favs []dictionary.WordEntry, selected int) []string {
	blocks := make([]string, 0, len(favs))
	for i, e := range favs {
		lines := []string{st.Word.Render(e.Word)}
		for _, meaning := range e.Meanings {
			for _, d := range meaning.Definitions {
				lines = append(lines, st.Value.Render("- "+d.Definition))
				if d.Example != "" {
					lines = append(lines, "  "+field(st, "Example:", d.Example))
				}
			}
		}
		block := strings.Join(lines, "\n")
		if i == selected {
			block = st.Selected.Render(block + "\n" + st.Muted.Render("[d] Delete"))
		}
		blocks = append(blocks, block)
	}
	return blocks
}

func field(st theme.Styles, label, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, st.Label.Render(label), " ", st.Value.Render(value))
}
